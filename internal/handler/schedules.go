package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/MyRealChoco/ArbeitMate/internal/utils"
)

func (h *Handler) CreateWorkRole(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	role := &domain.WorkRole{
		CompanyID: company.ID,
		Name:      req.Name,
	}

	if err := h.repository.CreateWorkRole(role); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "work_roles_company_id_name_key":
				h.errorResponse(w, r, "이미 존재하는 역할 이름입니다")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "역할 등록에 성공했습니다", role)
}

func (h *Handler) GetWorkRoles(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	roles, err := h.repository.GetCompanyWorkRoles(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "역할 목록 조회에 성공했습니다", roles)
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	var req struct {
		RoleID            uuid.UUID `json:"roleID" validate:"required"`
		WorkDate          string    `json:"workDate" validate:"required"`
		StartTime         string    `json:"startTime" validate:"required"`
		EndTime           string    `json:"endTime" validate:"required"`
		RequiredHeadcount int32     `json:"requiredHeadcount" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := &domain.Schedule{
		CompanyID:         company.ID,
		RoleID:            req.RoleID,
		WorkDate:          req.WorkDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		RequiredHeadcount: req.RequiredHeadcount,
	}

	// 날짜/시간 형식과 순서 검사
	if err := utils.ValidateScheduleTime(schedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateSchedule(schedule); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedules_role_id_fkey":
				h.errorResponse(w, r, "역할을 찾을 수 없습니다")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "근무 슬롯 등록에 성공했습니다", schedule)
}

func (h *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if err := utils.ValidateDateRange(from, to); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedules, err := h.repository.GetCompanySchedules(company.ID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무표 조회에 성공했습니다", schedules)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	scheduleID, err := uuid.Parse(chi.URLParam(r, "scheduleID"))
	if err != nil {
		h.errorResponse(w, r, "근무 슬롯 ID가 올바르지 않습니다")
		return
	}

	schedule, err := h.repository.GetScheduleByID(scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "근무 슬롯을 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if schedule.CompanyID != company.ID {
		h.errorResponse(w, r, "해당 매장의 근무 슬롯이 아닙니다")
		return
	}

	if err := h.repository.DeleteSchedule(scheduleID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무 슬롯 삭제에 성공했습니다", nil)
}

func (h *Handler) AssignWorker(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	scheduleID, err := uuid.Parse(chi.URLParam(r, "scheduleID"))
	if err != nil {
		h.errorResponse(w, r, "근무 슬롯 ID가 올바르지 않습니다")
		return
	}

	var req struct {
		MemberID uuid.UUID `json:"memberID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule, err := h.repository.GetScheduleByID(scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "근무 슬롯을 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if schedule.CompanyID != company.ID {
		h.errorResponse(w, r, "해당 매장의 근무 슬롯이 아닙니다")
		return
	}

	// 매장 구성원만 배정할 수 있다
	isMember, err := h.repository.IsCompanyMember(company.ID, req.MemberID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !isMember {
		h.errorResponse(w, r, "해당 매장의 구성원이 아닙니다")
		return
	}

	assignment := &domain.ScheduleAssignment{
		ScheduleID: scheduleID,
		CompanyID:  company.ID,
		MemberID:   req.MemberID,
	}

	if err := h.repository.CreateScheduleAssignment(assignment); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_assignments_schedule_id_member_id_key":
				h.errorResponse(w, r, "이미 해당 슬롯에 배정된 근무자입니다")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "근무자 배정에 성공했습니다", assignment)
}

func (h *Handler) UnassignWorker(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	assignmentID, err := uuid.Parse(chi.URLParam(r, "assignmentID"))
	if err != nil {
		h.errorResponse(w, r, "배정 ID가 올바르지 않습니다")
		return
	}

	assignment, err := h.repository.GetScheduleAssignmentByID(assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "배정 정보를 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if assignment.CompanyID != company.ID {
		h.errorResponse(w, r, "해당 매장의 배정이 아닙니다")
		return
	}

	if err := h.repository.DeleteScheduleAssignment(assignmentID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무자 배정 해제에 성공했습니다", nil)
}

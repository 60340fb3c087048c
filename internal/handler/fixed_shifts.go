package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/MyRealChoco/ArbeitMate/internal/utils"
)

func (h *Handler) GetFixedShifts(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	memberID, err := uuid.Parse(chi.URLParam(r, "companyMemberID"))
	if err != nil {
		h.errorResponse(w, r, "회원 ID가 올바르지 않습니다")
		return
	}

	// 본인 설정이거나 사장님만 볼 수 있다
	if memberID != myInfo.ID && company.OwnerID != myInfo.ID {
		h.errorResponse(w, r, "권한이 없습니다")
		return
	}

	shifts, err := h.repository.GetFixedShifts(company.ID, memberID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "고정 근무 설정 조회에 성공했습니다", shifts)
}

func (h *Handler) UpdateFixedShifts(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	memberID, err := uuid.Parse(chi.URLParam(r, "companyMemberID"))
	if err != nil {
		h.errorResponse(w, r, "회원 ID가 올바르지 않습니다")
		return
	}

	isMember, err := h.repository.IsCompanyMember(company.ID, memberID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !isMember {
		h.errorResponse(w, r, "해당 매장의 구성원이 아닙니다")
		return
	}

	var req []struct {
		RoleID    uuid.UUID `json:"roleID" validate:"required"`
		Weekday   int32     `json:"weekday" validate:"required,min=1,max=7"`
		StartTime string    `json:"startTime" validate:"required"`
		EndTime   string    `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts := make([]*domain.FixedShift, len(req))
	for i, item := range req {
		if err := h.validate.Struct(item); err != nil {
			h.badRequest(w, r, err)
			return
		}
		shifts[i] = &domain.FixedShift{
			RoleID:    item.RoleID,
			Weekday:   item.Weekday,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		}
		if err := utils.ValidateTimeRange(item.StartTime, item.EndTime); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	// 설정 전체를 교체한다
	if err := h.repository.ReplaceFixedShifts(company.ID, memberID, shifts); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "고정 근무 설정이 저장되었습니다", shifts)
}

package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

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

	// 매장을 만든 사람이 사장님이 된다
	company := &domain.Company{
		Name:    req.Name,
		OwnerID: myInfo.ID,
	}

	if err := h.repository.CreateCompany(company); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "매장 등록에 성공했습니다", company)
}

func (h *Handler) GetMyCompanies(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

	companies, err := h.repository.GetMyCompanies(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "내 매장 목록 조회에 성공했습니다", companies)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	h.successResponse(w, r, "매장 조회에 성공했습니다", company)
}

func (h *Handler) AddWorker(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member, err := h.repository.GetMemberByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "해당 이메일의 회원을 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.AddCompanyMember(company.ID, member.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "company_members_pkey":
				h.errorResponse(w, r, "이미 매장에 소속된 회원입니다")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "알바생 등록에 성공했습니다", nil)
}

func (h *Handler) GetWorkers(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	members, err := h.repository.GetCompanyMembers(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "매장 구성원 조회에 성공했습니다", members)
}

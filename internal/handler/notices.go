package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func (h *Handler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	var req struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	notice := &domain.Notice{
		CompanyID:   company.ID,
		Title:       req.Title,
		Content:     req.Content,
		CreatedByID: myInfo.ID,
		WriterName:  myInfo.Name,
	}

	if err := h.repository.CreateNotice(notice); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "공지 등록에 성공했습니다", notice)
}

func (h *Handler) GetNotices(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	notices, err := h.repository.GetCompanyNotices(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "공지 목록 조회에 성공했습니다", notices)
}

func (h *Handler) loadCompanyNotice(w http.ResponseWriter, r *http.Request) *domain.Notice {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	noticeID, err := uuid.Parse(chi.URLParam(r, "noticeID"))
	if err != nil {
		h.errorResponse(w, r, "공지 ID가 올바르지 않습니다")
		return nil
	}

	notice, err := h.repository.GetNoticeByID(noticeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "공지를 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}
	if notice.CompanyID != company.ID {
		h.errorResponse(w, r, "해당 매장의 공지가 아닙니다")
		return nil
	}

	return notice
}

func (h *Handler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	notice := h.loadCompanyNotice(w, r)
	if notice == nil {
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Content != nil {
		notice.Content = *req.Content
	}

	if err := h.repository.UpdateNotice(notice); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "공지 수정에 성공했습니다", notice)
}

func (h *Handler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	notice := h.loadCompanyNotice(w, r)
	if notice == nil {
		return
	}

	if err := h.repository.DeleteNotice(notice.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "공지 삭제에 성공했습니다", nil)
}

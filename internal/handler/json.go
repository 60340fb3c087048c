package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("서버 내부 오류", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "서버 내부 오류", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "서버 내부 오류",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// domainErrorResponse 는 스왑 서비스가 반환하는 오류 분류를 사용자 메시지로
// 바꾼다. 분류 밖의 오류는 서버 내부 오류로 처리한다.
func (h *Handler) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.errorResponse(w, r, "대상을 찾을 수 없습니다")
	case errors.Is(err, domain.ErrForbidden):
		h.errorResponse(w, r, "권한이 없습니다")
	case errors.Is(err, domain.ErrIllegalStateTransition):
		h.errorResponse(w, r, "이미 처리되었거나 수행할 수 없는 요청입니다")
	case errors.Is(err, domain.ErrInvalidInput):
		h.errorResponse(w, r, "요청 형식이 올바르지 않습니다")
	case errors.Is(err, domain.ErrConflict):
		h.errorResponse(w, r, "근무 배정이 변경되어 승인할 수 없습니다. 요청을 다시 확인해 주세요")
	default:
		h.internalServerError(w, r, err)
	}
}

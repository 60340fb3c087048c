package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/MyRealChoco/ArbeitMate/internal/swap"
)

// CreateSwapRequest 는 교환/대타 요청 생성이다 (알바생).
func (h *Handler) CreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	var req struct {
		Type             domain.SwapType `json:"type" validate:"required,oneof=GIVE_AWAY DIRECT_SWAP"`
		FromAssignmentID uuid.UUID       `json:"fromAssignmentID" validate:"required"`
		ToAssignmentID   *uuid.UUID      `json:"toAssignmentID"`
		TargetMemberID   *uuid.UUID      `json:"targetMemberID"`
		Reason           string          `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requestID, err := h.swapService.CreateRequest(myInfo.ID, company.ID, swap.CreateRequestInput{
		Type:             req.Type,
		FromAssignmentID: req.FromAssignmentID,
		ToAssignmentID:   req.ToAssignmentID,
		TargetMemberID:   req.TargetMemberID,
		Reason:           req.Reason,
	})
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.successResponse(w, r, "교환 요청 생성에 성공했습니다", map[string]any{"requestID": requestID})
}

func (h *Handler) swapRequestID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		h.errorResponse(w, r, "요청 ID가 올바르지 않습니다")
		return uuid.Nil, false
	}
	return requestID, true
}

// AcceptSwapRequest 는 요청 수락이다 (대상 알바생). 수락 즉시 사장님 승인
// 대기 상태가 된다.
func (h *Handler) AcceptSwapRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

	requestID, ok := h.swapRequestID(w, r)
	if !ok {
		return
	}

	if err := h.swapService.AcceptRequest(myInfo.ID, requestID); err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.successResponse(w, r, "요청을 수락했습니다. 사장님 승인을 기다립니다", nil)
}

// ApproveSwapRequest 는 최종 승인이다 (사장님). 이때 실제 근무표가 바뀐다.
func (h *Handler) ApproveSwapRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

	requestID, ok := h.swapRequestID(w, r)
	if !ok {
		return
	}

	if err := h.swapService.ApproveRequest(myInfo.ID, requestID); err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.successResponse(w, r, "최종 승인이 완료되어 근무표가 변경되었습니다", nil)
}

// DeclineSwapRequest 는 거절이다 (참여자 또는 사장님).
func (h *Handler) DeclineSwapRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

	requestID, ok := h.swapRequestID(w, r)
	if !ok {
		return
	}

	if err := h.swapService.DeclineRequest(myInfo.ID, requestID); err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.successResponse(w, r, "요청을 거절했습니다", nil)
}

func (h *Handler) GetMySwapRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	summaries, err := h.swapService.MyRequests(myInfo.ID, company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "내 교환 요청 조회에 성공했습니다", summaries)
}

func (h *Handler) GetCompanySwapRequests(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	summaries, err := h.swapService.CompanyRequests(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "매장 교환 요청 조회에 성공했습니다", summaries)
}

package handler

import (
	"net/http"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)

	h.successResponse(w, r, "회원 정보 조회에 성공했습니다", myInfo)
}

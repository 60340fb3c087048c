package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("요청 처리 완료", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog 로 찍으면 읽기 어렵다
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 쿠키에서 토큰을 꺼낸다
		cookie, err := r.Cookie("__arbeitmate_token")
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "로그인이 필요합니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 토큰 검증
		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "유효하지 않은 토큰입니다")
			return
		}

		// claims 의 sub(회원 ID)를 context 에 붙인다
		ctx := context.WithValue(r.Context(), SubCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) myInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subString := r.Context().Value(SubCtxKey).(string)

		sub, err := uuid.Parse(subString)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		myInfo, err := h.repository.GetMemberByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "회원 정보가 존재하지 않습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), MyInfoCtx, myInfo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// company 는 URL 의 companyID 로 매장을 불러오고, 요청자가 그 매장의
// 구성원인지 확인한다. 매장 범위 밖의 접근은 여기서 모두 차단된다.
func (h *Handler) company(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyIDParam := chi.URLParam(r, "companyID")
		companyID, err := uuid.Parse(companyIDParam)
		if err != nil {
			h.errorResponse(w, r, "매장 ID가 올바르지 않습니다")
			return
		}

		company, err := h.repository.GetCompanyByID(companyID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "매장을 찾을 수 없습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
		isMember, err := h.repository.IsCompanyMember(company.ID, myInfo.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !isMember {
			h.errorResponse(w, r, "해당 매장의 구성원이 아닙니다")
			return
		}

		ctx := context.WithValue(r.Context(), CompanyCtx, company)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requireCompanyOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		myInfo := r.Context().Value(MyInfoCtx).(*domain.Member)
		company := r.Context().Value(CompanyCtx).(*domain.Company)

		if company.OwnerID != myInfo.ID {
			h.errorResponse(w, r, "사장님만 사용할 수 있는 기능입니다")
			return
		}
		next.ServeHTTP(w, r)
	})
}

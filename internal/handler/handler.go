package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/MyRealChoco/ArbeitMate/internal/config"
	"github.com/MyRealChoco/ArbeitMate/internal/repository"
	"github.com/MyRealChoco/ArbeitMate/internal/swap"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	swapService *swap.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, swapService *swap.Service, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		swapService: swapService,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 인증 관련
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 아래 API 는 로그인 후에만 호출할 수 있다
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.myInfo)

		r.Get("/my-info", h.GetMyInfo)

		r.Route("/companies", func(r chi.Router) {
			r.Post("/", h.CreateCompany)
			r.Get("/", h.GetMyCompanies)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Use(h.company)
				r.Get("/", h.GetCompany)

				r.Route("/workers", func(r chi.Router) {
					r.With(h.requireCompanyOwner).Post("/", h.AddWorker)
					r.Get("/", h.GetWorkers)
					r.Route("/{companyMemberID}/fixed-shifts", func(r chi.Router) {
						r.Get("/", h.GetFixedShifts)
						r.With(h.requireCompanyOwner).Put("/", h.UpdateFixedShifts)
					})
				})

				r.Route("/roles", func(r chi.Router) {
					r.With(h.requireCompanyOwner).Post("/", h.CreateWorkRole)
					r.Get("/", h.GetWorkRoles)
				})

				r.Route("/schedules", func(r chi.Router) {
					r.With(h.requireCompanyOwner).Post("/", h.CreateSchedule)
					r.Get("/", h.GetSchedules)
					r.With(h.requireCompanyOwner).Delete("/{scheduleID}", h.DeleteSchedule)
					r.With(h.requireCompanyOwner).Post("/{scheduleID}/assignments", h.AssignWorker)
					r.With(h.requireCompanyOwner).Delete("/assignments/{assignmentID}", h.UnassignWorker)
				})

				r.Route("/notices", func(r chi.Router) {
					r.With(h.requireCompanyOwner).Post("/", h.CreateNotice)
					r.Get("/", h.GetNotices)
					r.With(h.requireCompanyOwner).Patch("/{noticeID}", h.UpdateNotice)
					r.With(h.requireCompanyOwner).Delete("/{noticeID}", h.DeleteNotice)
				})

				r.Route("/swaps", func(r chi.Router) {
					r.Post("/", h.CreateSwapRequest)
					r.With(h.requireCompanyOwner).Get("/", h.GetCompanySwapRequests) // 매장 전체 요청은 사장님만 볼 수 있다
					r.Get("/my", h.GetMySwapRequests)
					r.Post("/{requestID}/accept", h.AcceptSwapRequest)
					r.Post("/{requestID}/approve", h.ApproveSwapRequest)
					r.Post("/{requestID}/decline", h.DeclineSwapRequest)
				})
			})
		})
	})
}

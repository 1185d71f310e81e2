package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/calendar"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/config"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/events"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	events      *events.Publisher
	calendar    *calendar.Calendar

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, pub *events.Publisher) (*Handler, error) {
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
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		events:      pub,
		calendar:    calendar.New(cfg.Dispatch.ExtraHolidays...),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a verified session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Get("/redirect", h.GetMyRedirect)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialManager).With(h.RequiredRole([]domain.Role{domain.RoleManager})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialManager).With(h.RequiredRole([]domain.Role{domain.RoleManager})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/", h.CreateJob)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Get("/", h.GetAllJobs)
			r.With(h.myInfo).Get("/my", h.GetMyJobs)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.job)
				r.Get("/", h.GetJob)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Delete("/", h.DeleteJob)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/assign", h.AssignStaff)
				r.Group(func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.preventInactiveStaff)
					r.Post("/accept", h.AcceptJob)
					r.Post("/reject", h.RejectJob)
					r.Post("/complete", h.CompleteJob)
				})
			})
		})

		r.Route("/availability", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.myInfo)
				r.Use(h.preventInactiveStaff)
				r.Put("/", h.SaveMyAvailability)
				r.Get("/", h.GetMyAvailability)
			})
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Get("/{userID}", h.GetUserAvailability)
		})

		r.Route("/routes", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/", h.CreateRoute)
			r.With(h.myInfo).Get("/my", h.GetMyRoutes)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleManager}))
			r.Get("/workload", h.GetWorkloadOverview)
		})
	})
}

package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/jobportal-dev/job-board/backend/internal/config"
	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/notification"
	"github.com/jobportal-dev/job-board/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	engine     *notification.Engine
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, engine *notification.Engine) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		engine:     engine,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// Everything below requires a signed-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.ListJobs)
			r.With(h.RequiredRole([]domain.Role{domain.RoleRecruiter, domain.RoleAdmin})).Post("/", h.CreateJob)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.jobInfo)
				r.Get("/", h.GetJob)
				r.With(h.myInfo).Patch("/", h.UpdateJob)
				r.With(h.myInfo).Get("/applications", h.ListJobApplications)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.ListApplications)
			r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Post("/", h.Apply)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.applicationInfo)
				r.With(h.RequiredRole([]domain.Role{domain.RoleRecruiter, domain.RoleAdmin})).Patch("/status", h.UpdateApplicationStatus)
			})
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetProfile)
			r.Patch("/", h.UpdateProfile)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.ListNotifications)
			r.Get("/unread-count", h.UnreadCount)
			r.Post("/read-all", h.MarkAllRead)
			r.Post("/{id}/read", h.MarkOneRead)
		})

		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/analytics", h.Analytics)
	})
}

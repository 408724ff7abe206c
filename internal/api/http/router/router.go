// Package router assembles the HTTP route tree and middleware chain.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TsubasaK111/ConferenceCentral/internal/api/http/handler"
	"github.com/TsubasaK111/ConferenceCentral/internal/api/http/middleware"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// Config collects the dependencies of the route tree.
type Config struct {
	ProfileService      handler.ProfileService
	ConferenceService   handler.ConferenceService
	RegistrationService handler.RegistrationService
	AnnouncementService handler.AnnouncementService
	Pinger              handler.Pinger
	IdentityResolver    model.IdentityResolver
	ContextManager      model.ContextManager
	Logger              *logger.Logger
}

// New builds the HTTP handler with all routes registered. The health
// endpoint is open; every other route requires a valid bearer token.
func New(cfg Config) http.Handler {
	profileHandler := handler.NewProfile(cfg.ProfileService, cfg.ContextManager, cfg.Logger)
	conferenceHandler := handler.NewConference(cfg.ConferenceService, cfg.ContextManager, cfg.Logger)
	registrationHandler := handler.NewRegistration(cfg.RegistrationService, cfg.ContextManager, cfg.Logger)
	announcementHandler := handler.NewAnnouncement(cfg.AnnouncementService, cfg.Logger)
	healthHandler := handler.NewHealth(cfg.Pinger)

	authenticate := middleware.NewAuthenticate(cfg.IdentityResolver, cfg.ContextManager, cfg.Logger)
	requestLogger := middleware.NewRequestLogger(cfg.Logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger.Handle)

	r.Get("/health", healthHandler.Check)

	r.Group(func(r chi.Router) {
		r.Use(authenticate.Handle)

		r.Get("/profile", profileHandler.Get)
		r.Post("/profile", profileHandler.Save)

		r.Post("/conferences", conferenceHandler.Create)
		r.Post("/conferences/query", conferenceHandler.Query)
		r.Get("/conferences/created", conferenceHandler.Created)
		r.Get("/conferences/attending", conferenceHandler.ToAttend)

		r.Post("/conferences/{conferenceID}/registration", registrationHandler.Register)
		r.Delete("/conferences/{conferenceID}/registration", registrationHandler.Unregister)

		r.Get("/announcement", announcementHandler.Get)
	})

	return r
}

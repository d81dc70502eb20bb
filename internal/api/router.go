package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/lmehta/cohortplan/internal/boundary"
	"github.com/lmehta/cohortplan/internal/schedule"
	"github.com/lmehta/cohortplan/internal/store"
)

// NewRouter creates the chi router with all routes and middleware.
func NewRouter(composer *schedule.Composer, detector *boundary.Detector, sessions store.SessionRepo, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	h := NewScheduleHandler(composer, detector, sessions)

	r.Get("/health", h.Health)
	r.Patch("/sessions/{sessionID}", h.UpdateSession)
	r.Route("/cohorts/{cohortID}/epics/{epicID}", func(r chi.Router) {
		r.Post("/compose", h.Compose)
		r.Get("/boundaries", h.Boundaries)
		r.Post("/can-move", h.CanMove)
	})

	return r
}

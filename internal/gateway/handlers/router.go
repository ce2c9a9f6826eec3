package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API routes behind the global middleware stack
func NewRouter(site *SiteHandler, status *StatusHandler, mw *Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(mw.SecurityHeaders)
	r.Use(mw.CORSMiddleware)
	r.Use(mw.TrackRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", site.HandleGenerate)
		r.Post("/set-provider", site.HandleSetProvider)
		r.Get("/analytics", status.HandleAnalytics)
		r.Get("/health", status.HandleHealth)
	})

	return r
}

// Package httpapi assembles the chi router and middleware chain.
package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"headshotai/internal/http/handlers"
	"headshotai/internal/infra"
	"headshotai/internal/middleware"
)

// NewRouter builds the HTTP routing tree for the service.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Get("/styles", app.Styles)
		if cfg.RateLimitPerMin > 0 {
			r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).Post("/generate", app.Generate)
		} else {
			r.Post("/generate", app.Generate)
		}
	})

	// Serve the front-end build when configured; otherwise answer / with the
	// service descriptor.
	if cfg.StaticDir != "" {
		r.Handle("/*", stdhttp.FileServer(stdhttp.Dir(cfg.StaticDir)))
	} else {
		r.Get("/", app.Root)
	}

	return r
}

// Package handlers implements the HTTP surface: the generate pipeline plus
// the health and style endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"headshotai/internal/imageprep"
	"headshotai/internal/infra"
	"headshotai/internal/providers/headshot"
	"headshotai/internal/uploads"
)

// App bundles the dependencies the handlers need. All fields are read-only
// after construction, so a single App serves concurrent requests.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Uploads   *uploads.Store
	Preparer  *imageprep.Preparer
	Generator headshot.Generator
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, store *uploads.Store, preparer *imageprep.Preparer, generator headshot.Generator) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Uploads:   store,
		Preparer:  preparer,
		Generator: generator,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// clientError reports an input problem: {"error": msg} with a 4xx status.
func (a *App) clientError(w http.ResponseWriter, msg string) {
	a.json(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// serverError reports a pipeline or provider failure:
// {"error": label, "message": detail}.
func (a *App) serverError(w http.ResponseWriter, code int, label, detail string) {
	a.json(w, code, map[string]string{"error": label, "message": detail})
}

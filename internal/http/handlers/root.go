package handlers

import "net/http"

// Root handles GET / with a small service descriptor for anyone poking the
// API by hand.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"message": "Professional Headshot AI - Backend Server",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":   "/api/health",
			"generate": "POST /api/generate",
			"styles":   "/api/styles",
		},
	})
}

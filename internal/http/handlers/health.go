package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
}

// Health handles GET /api/health. It reports whether the provider credential
// is present so probes can tell a misconfigured instance from a healthy one.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, healthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		APIKeyConfigured: a.Config.GoogleAPIKey != "",
	})
}

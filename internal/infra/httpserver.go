package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer wraps http.Server with timeouts sized for a pipeline whose
// slowest step is a remote image-generation call.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the server from config. The write timeout is raised
// above the Gemini timeout when needed: the response cannot be cut off while
// the provider is still rendering.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	writeTimeout := cfg.HTTPWriteTimeout
	if writeTimeout <= cfg.GeminiTimeout {
		writeTimeout = cfg.GeminiTimeout + 30*time.Second
	}

	return &HTTPServer{server: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}}
}

// Start runs the HTTP server in the current goroutine.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

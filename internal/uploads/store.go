// Package uploads owns the short-lived files a generate request leaves on
// disk: the raw upload and its normalized copy. Files get unique names so
// concurrent requests never collide, and deletion is always best effort.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store writes temp files into Dir and deletes them after Delay.
type Store struct {
	Dir    string
	Delay  time.Duration
	Logger zerolog.Logger
}

// NewStore creates the upload directory if needed.
func NewStore(dir string, delay time.Duration, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, Delay: delay, Logger: logger}, nil
}

// Save writes the incoming part to disk under a unique name, keeping the
// original extension for readability. Returns the absolute path.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	if len(ext) > 10 {
		ext = ext[:10]
	}

	path := filepath.Join(s.Dir, "upload-"+uuid.NewString()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// Discard deletes a temp file. A missing file is not an error; any other
// failure is logged and swallowed so cleanup can never break the request
// path that triggered it.
func (s *Store) Discard(path string) {
	if path == "" {
		return
	}
	err := os.Remove(path)
	switch {
	case err == nil:
		s.Logger.Debug().Str("path", path).Msg("uploads: removed temp file")
	case os.IsNotExist(err):
	default:
		s.Logger.Warn().Err(err).Str("path", path).Msg("uploads: failed to remove temp file")
	}
}

// ScheduleCleanup arranges for the given files to be discarded after the
// configured delay, independent of the response lifecycle. The delay is a
// safety margin against a downstream read still in flight.
func (s *Store) ScheduleCleanup(paths ...string) {
	targets := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		return
	}

	time.AfterFunc(s.Delay, func() {
		for _, p := range targets {
			s.Discard(p)
		}
	})
}

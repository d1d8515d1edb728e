package headshot

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"headshotai/internal/providers/genai"
	"headshotai/internal/styles"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := genai.NewClient(genai.Options{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Logger:  zerolog.New(io.Discard),
	})
	return NewGeminiGenerator(client, zerolog.New(io.Discard))
}

func writeImageFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "optimized.jpg")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write image file: %v", err)
	}
	return path
}

func inlineImageResponse(mime string, data []byte) string {
	out, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"parts": []any{
					map[string]any{"inlineData": map[string]any{
						"mimeType": mime,
						"data":     base64.StdEncoding.EncodeToString(data),
					}},
				},
			},
		}},
	})
	return string(out)
}

func TestGenerateReturnsImagePayloadUnchanged(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, inlineImageResponse("image/png", pngBytes))
	})

	result, err := gen.Generate(context.Background(), writeImageFile(t, []byte("jpegdata")), "executive", "image/jpeg")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Kind != ResultImage {
		t.Fatalf("Kind = %v, want ResultImage", result.Kind)
	}
	if result.MIMEType != "image/png" {
		t.Fatalf("MIMEType = %q, want image/png", result.MIMEType)
	}
	if !bytes.Equal(result.Image, pngBytes) {
		t.Fatalf("image bytes altered: %v", result.Image)
	}
	if result.Note == "" {
		t.Fatalf("success note missing")
	}
}

func TestGeneratePromptCarriesStyleAndSuffix(t *testing.T) {
	var prompt string
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text       string `json:"text"`
					InlineData *struct {
						MimeType string `json:"mimeType"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		for _, part := range body.Contents[0].Parts {
			if part.Text != "" {
				prompt = part.Text
			} else if part.InlineData == nil || part.InlineData.MimeType != "image/jpeg" {
				t.Errorf("image part missing or wrong mime: %+v", part)
			}
		}
		io.WriteString(w, inlineImageResponse("image/png", []byte{1}))
	})

	if _, err := gen.Generate(context.Background(), writeImageFile(t, []byte("x")), "creative", "image/jpeg"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(prompt, styles.Lookup("creative").Prompt) {
		t.Fatalf("prompt does not contain the creative style template")
	}
	if !strings.Contains(prompt, "not a description") {
		t.Fatalf("prompt missing the image-output instruction suffix")
	}
}

func TestGenerateTextOnlyIsDegradedNotFailed(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"This photo shows a person"},{"text":"wearing a blue shirt."}]}}]}`)
	})

	result, err := gen.Generate(context.Background(), writeImageFile(t, []byte("x")), "corporate", "image/jpeg")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Kind != ResultText {
		t.Fatalf("Kind = %v, want ResultText", result.Kind)
	}
	if !strings.Contains(result.Text, "blue shirt") {
		t.Fatalf("text payload lost: %q", result.Text)
	}
	if !strings.Contains(result.Note, "text analysis") {
		t.Fatalf("degraded note missing: %q", result.Note)
	}
}

func TestGenerateProviderErrorIsSurfaced(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":{"code":500,"message":"backend unavailable"}}`)
	})

	_, err := gen.Generate(context.Background(), writeImageFile(t, []byte("x")), "corporate", "image/jpeg")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "backend unavailable") {
		t.Fatalf("provider message lost: %v", err)
	}
}

func TestGenerateEmptyResponseIsError(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[{"finishReason":"SAFETY","content":{"parts":[]}}]}`)
	})

	if _, err := gen.Generate(context.Background(), writeImageFile(t, []byte("x")), "corporate", "image/jpeg"); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

func TestGenerateMissingFile(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("provider must not be called when the file is missing")
	})

	if _, err := gen.Generate(context.Background(), filepath.Join(t.TempDir(), "gone.jpg"), "corporate", "image/jpeg"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

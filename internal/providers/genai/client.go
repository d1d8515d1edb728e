// Package genai is a lightweight HTTP client for the Gemini generateContent
// API. It speaks the wire format directly so the base URL can be pointed at
// a fake server in tests.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client provides a thin facade over the generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Blob is inline binary content exchanged with the model.
type Blob struct {
	MIMEType string
	Data     []byte
}

// Part is one element of a multimodal request or response. Exactly one of
// Text or Inline is set.
type Part struct {
	Text   string
	Inline *Blob
}

// GenerationConfig carries the sampling parameters for a request.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Response is the first candidate of a generateContent call, with inline
// payloads already base64-decoded.
type Response struct {
	Parts        []Part
	FinishReason string
}

type wireInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type wirePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *wireInlineData `json:"inlineData,omitempty"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts,omitempty"`
}

type wireGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type wireRequest struct {
	Contents         []wireContent         `json:"contents"`
	GenerationConfig *wireGenerationConfig `json:"generationConfig,omitempty"`
}

type wireCandidate struct {
	Content      wireContent `json:"content"`
	FinishReason string      `json:"finishReason,omitempty"`
}

type wireResponse struct {
	Candidates []wireCandidate `json:"candidates"`
}

type wireError struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may
// provide a nil HTTP client; one with the configured timeout is created.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent submits the parts under the given sampling config and
// returns the first candidate. No retries: the caller decides whether to
// surface or mask failures.
func (c *Client) GenerateContent(ctx context.Context, parts []Part, cfg GenerationConfig) (*Response, error) {
	wireParts := make([]wirePart, 0, len(parts))
	for _, part := range parts {
		if part.Inline != nil {
			wireParts = append(wireParts, wirePart{InlineData: &wireInlineData{
				MimeType: part.Inline.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(part.Inline.Data),
			}})
			continue
		}
		wireParts = append(wireParts, wirePart{Text: part.Text})
	}

	payload := wireRequest{
		Contents: []wireContent{{Role: "user", Parts: wireParts}},
		GenerationConfig: &wireGenerationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			TopK:            cfg.TopK,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}

	var wire wireResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, path, payload, &wire); err != nil {
		return nil, err
	}

	if len(wire.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	candidate := wire.Candidates[0]
	out := &Response{FinishReason: candidate.FinishReason}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decode inline data: %w", err)
			}
			out.Parts = append(out.Parts, Part{Inline: &Blob{MIMEType: part.InlineData.MimeType, Data: data}})
			continue
		}
		if part.Text != "" {
			out.Parts = append(out.Parts, Part{Text: part.Text})
		}
	}

	c.logger.Debug().
		Str("model", c.model).
		Str("finish_reason", candidate.FinishReason).
		Int("parts", len(out.Parts)).
		Msg("genai: generateContent completed")

	return out, nil
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		q := req.URL.Query()
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr wireError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

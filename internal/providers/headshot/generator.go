// Package headshot turns a normalized photo plus a style key into a
// generation result by driving the Gemini image model.
package headshot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"headshotai/internal/providers/genai"
	"headshotai/internal/styles"
)

// ResultKind discriminates the non-error outcomes of a generation call.
type ResultKind int

const (
	// ResultImage means the provider returned transformed image bytes.
	ResultImage ResultKind = iota
	// ResultText means the provider returned a textual analysis instead of
	// an image. This is a degraded but successful outcome, not a failure.
	ResultText
)

// Result is what a generation call produced. Image and MIMEType are set for
// ResultImage; Text for ResultText. A provider failure is reported as an
// error instead, so callers switch on Kind only after checking err.
type Result struct {
	Kind     ResultKind
	Image    []byte
	MIMEType string
	Text     string
	Note     string
}

// Generator produces a headshot from a prepared image file.
type Generator interface {
	Generate(ctx context.Context, imagePath, styleKey, mimeType string) (Result, error)
}

// Sampling parameters chosen for deterministic-leaning, high-fidelity output.
var generationConfig = genai.GenerationConfig{
	Temperature:     0.4,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 8192,
}

// generationSuffix steers the model towards returning a transformed image
// rather than describing the input.
const generationSuffix = `IMPORTANT: Generate a new professional headshot image based on the provided photo. The output should be a transformed professional headshot, not a description. Maintain facial features, ethnicity, and natural appearance while applying the professional styling described above.`

const (
	imageNote = "Image generated successfully using Gemini 2.5 Flash Image"
	textNote  = "Model returned text analysis instead of image. This may be a limitation of the current model."
)

// GeminiGenerator implements Generator on top of the genai client.
type GeminiGenerator struct {
	client *genai.Client
	logger zerolog.Logger
}

// NewGeminiGenerator constructs a Gemini-backed headshot generator.
func NewGeminiGenerator(client *genai.Client, logger zerolog.Logger) *GeminiGenerator {
	return &GeminiGenerator{client: client, logger: logger}
}

// Generate reads the prepared image, attaches it to the style prompt and
// interprets the provider response. Unrecognized style keys resolve to the
// default style; strict validation happens at the HTTP layer.
func (g *GeminiGenerator) Generate(ctx context.Context, imagePath, styleKey, mimeType string) (Result, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return Result{}, fmt.Errorf("read prepared image: %w", err)
	}

	prompt := styles.Lookup(styleKey).Prompt + "\n\n" + generationSuffix

	g.logger.Info().
		Str("style", styleKey).
		Str("model", g.client.Model()).
		Int("image_bytes", len(data)).
		Msg("headshot: requesting generation")

	resp, err := g.client.GenerateContent(ctx, []genai.Part{
		{Inline: &genai.Blob{MIMEType: mimeType, Data: data}},
		{Text: prompt},
	}, generationConfig)
	if err != nil {
		return Result{}, fmt.Errorf("generate headshot: %w", err)
	}

	// Primary success path: any part carrying inline image data.
	for _, part := range resp.Parts {
		if part.Inline != nil && strings.HasPrefix(part.Inline.MIMEType, "image/") {
			g.logger.Info().Str("style", styleKey).Str("mime", part.Inline.MIMEType).Msg("headshot: image returned")
			return Result{
				Kind:     ResultImage,
				Image:    part.Inline.Data,
				MIMEType: part.Inline.MIMEType,
				Note:     imageNote,
			}, nil
		}
	}

	// Degraded outcome: the model answered in prose. Capability gating and
	// safety filters legitimately produce this, so it is not an error.
	var texts []string
	for _, part := range resp.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	if len(texts) > 0 {
		g.logger.Warn().Str("style", styleKey).Msg("headshot: provider returned text instead of an image")
		return Result{
			Kind: ResultText,
			Text: strings.Join(texts, "\n"),
			Note: textNote,
		}, nil
	}

	return Result{}, fmt.Errorf("generate headshot: empty response (finish reason %q)", resp.FinishReason)
}

var _ Generator = (*GeminiGenerator)(nil)

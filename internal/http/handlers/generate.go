package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"headshotai/internal/imageprep"
	"headshotai/internal/providers/headshot"
	"headshotai/internal/styles"
)

const (
	errNoImage      = "No image file uploaded"
	errInvalidStyle = "Invalid style. Must be: corporate, creative, or executive"
	errGenerate     = "Failed to generate headshot"
)

type generateResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Style          string `json:"style"`
	GeneratedImage string `json:"generatedImage"`
	Note           string `json:"note"`
	Prompt         string `json:"prompt"`
	AIAnalysis     string `json:"aiAnalysis,omitempty"`
}

// multipartOverhead leaves room for boundaries and the style field on top of
// the image payload itself.
const multipartOverhead = 1 << 20

// Generate handles POST /api/generate: one multipart image part plus a style
// field in, one JSON envelope out. Both temp files this request creates are
// scheduled for delayed cleanup on every exit path.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	// Cap the body before parsing so an oversize upload is aborted mid-stream
	// instead of being spooled to disk and rejected afterwards.
	r.Body = http.MaxBytesReader(w, r.Body, imageprep.MaxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(imageprep.MaxUploadBytes + multipartOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			a.clientError(w, imageprep.ErrTooLarge.Error())
			return
		}
		a.clientError(w, errNoImage)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		a.clientError(w, errNoImage)
		return
	}
	defer file.Close()

	style := r.FormValue("style")
	if !styles.Valid(style) {
		a.clientError(w, errInvalidStyle)
		return
	}
	def := styles.Lookup(style)

	var uploadPath, normalizedPath string
	defer func() {
		a.Uploads.ScheduleCleanup(uploadPath, normalizedPath)
	}()

	uploadPath, err = a.Uploads.Save(file, header.Filename)
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate: saving upload failed")
		a.serverError(w, http.StatusInternalServerError, errGenerate, err.Error())
		return
	}

	report, err := a.Preparer.Validate(uploadPath)
	if err != nil {
		switch {
		case errors.Is(err, imageprep.ErrTooLarge):
			a.clientError(w, imageprep.ErrTooLarge.Error())
		case errors.Is(err, imageprep.ErrUnsupportedFormat):
			a.clientError(w, imageprep.ErrUnsupportedFormat.Error())
		default:
			a.serverError(w, http.StatusInternalServerError, errGenerate, err.Error())
		}
		return
	}
	a.Logger.Info().
		Str("style", style).
		Str("format", report.Format).
		Int("width", report.Width).
		Int("height", report.Height).
		Int64("bytes", report.Bytes).
		Msg("generate: upload validated")

	normalizedPath, err = a.Preparer.Normalize(uploadPath)
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate: normalization failed")
		a.serverError(w, http.StatusInternalServerError, errGenerate, err.Error())
		return
	}

	result, err := a.Generator.Generate(r.Context(), normalizedPath, style, imageprep.NormalizedMIMEType)
	if err != nil {
		a.Logger.Error().Err(err).Str("style", style).Msg("generate: provider call failed")
		a.serverError(w, http.StatusInternalServerError, errGenerate, err.Error())
		return
	}

	switch result.Kind {
	case headshot.ResultImage:
		a.json(w, http.StatusOK, generateResponse{
			Success:        true,
			Message:        "Headshot generated successfully",
			Style:          style,
			GeneratedImage: fmt.Sprintf("data:%s;base64,%s", result.MIMEType, base64.StdEncoding.EncodeToString(result.Image)),
			Note:           result.Note,
			Prompt:         def.Prompt,
		})

	case headshot.ResultText:
		if !a.Config.PlaceholderFallback {
			a.serverError(w, http.StatusBadGateway, errGenerate, "provider returned text instead of an image")
			return
		}
		a.json(w, http.StatusOK, generateResponse{
			Success:        true,
			Message:        "Headshot generated successfully",
			Style:          style,
			GeneratedImage: def.FallbackImage,
			Note:           result.Note + " - Using sample images for demonstration.",
			Prompt:         def.Prompt,
			AIAnalysis:     result.Text,
		})

	default:
		a.serverError(w, http.StatusInternalServerError, errGenerate, fmt.Sprintf("unexpected result kind %d", result.Kind))
	}
}

// Package imageprep validates uploaded photos and re-encodes them into a
// canonical, dimension-bounded JPEG before they are shipped to the image
// model. Nothing here talks to the network.
package imageprep

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// Decoder registrations for the supported upload formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// MaxUploadBytes is the upload size ceiling (10 MiB).
	MaxUploadBytes = 10 << 20

	// maxDimension bounds the longest side of the normalized image so the
	// outbound payload stays inside the provider's practical envelope.
	maxDimension = 2048

	jpegQuality = 90

	// NormalizedMIMEType is the mime type of every normalized asset.
	NormalizedMIMEType = "image/jpeg"
)

// Sentinel reasons for validation failures. Handlers match on these to pick
// the HTTP status.
var (
	ErrTooLarge          = errors.New("file size exceeds 10MB limit")
	ErrUnsupportedFormat = errors.New("invalid file format, please upload JPEG, PNG, or WEBP")
)

var supportedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// Report describes a validated upload.
type Report struct {
	Format string
	Width  int
	Height int
	Bytes  int64
}

// Preparer validates and normalizes uploaded images.
type Preparer struct {
	// OutputDir receives normalized files. Must exist.
	OutputDir string
	// MaxBytes overrides the upload ceiling; zero means MaxUploadBytes.
	MaxBytes int64
}

// Validate decodes the asset's metadata and confirms size and format before
// anything is passed downstream.
func (p *Preparer) Validate(path string) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, fmt.Errorf("stat upload: %w", err)
	}

	maxBytes := p.MaxBytes
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	if info.Size() > maxBytes {
		return Report{}, fmt.Errorf("validate %s: %w", filepath.Base(path), ErrTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Report{}, fmt.Errorf("validate %s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	if !supportedFormats[format] {
		return Report{}, fmt.Errorf("validate %s (%s): %w", filepath.Base(path), format, ErrUnsupportedFormat)
	}

	return Report{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  info.Size(),
	}, nil
}

// Normalize re-encodes the asset as JPEG with neither dimension exceeding
// the bound, preserving aspect ratio and never upscaling. The result is
// written to OutputDir under a fresh unique name; the input file is left
// untouched.
func (p *Preparer) Normalize(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("decode upload: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	out := filepath.Join(p.OutputDir, "optimized-"+uuid.NewString()+".jpg")
	if err := imaging.Save(img, out, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode normalized image: %w", err)
	}
	return out, nil
}

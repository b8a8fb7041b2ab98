package imagex

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
)

// ValidatorConfig bounds what the intake accepts. Zero values are filled with
// the defaults used across the service.
type ValidatorConfig struct {
	MaxUploadBytes int64
	MinDimension   int
	MaxDimension   int
	MaxPixels      int64
}

type Validator struct {
	cfg ValidatorConfig
	log *slog.Logger
}

func NewValidator(cfg ValidatorConfig, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20 << 20
	}
	if cfg.MinDimension <= 0 {
		cfg.MinDimension = 32
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = 10000
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = 48_000_000
	}
	return &Validator{cfg: cfg, log: logger}
}

// Validate confirms the byte stream decodes as a supported raster image within
// the configured bounds. It decodes only the header, never the pixel data, so
// oversized payloads are rejected before any allocation proportional to their
// dimensions. Pure; no side effects beyond logging.
func (v *Validator) Validate(data []byte, declaredMIME string) (*Asset, error) {
	if len(data) == 0 {
		return nil, &InvalidImageError{Reason: "empty image payload"}
	}
	if int64(len(data)) > v.cfg.MaxUploadBytes {
		return nil, &InvalidImageError{
			Reason: fmt.Sprintf("file size %d exceeds limit of %d bytes", len(data), v.cfg.MaxUploadBytes),
		}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		v.log.Warn("image.validate.decode_failed", "declared_mime", declaredMIME, "error", err)
		return nil, &InvalidImageError{Reason: "the file is not a valid image", Err: err}
	}
	if _, ok := constants.AllowedImageFormats[format]; !ok {
		return nil, &InvalidImageError{Reason: "unsupported image format: " + format}
	}

	if cfg.Width < v.cfg.MinDimension || cfg.Height < v.cfg.MinDimension {
		return nil, &InvalidImageError{
			Reason: fmt.Sprintf("image too small to assess: %dx%d (min %dpx per side)", cfg.Width, cfg.Height, v.cfg.MinDimension),
		}
	}
	if cfg.Width > v.cfg.MaxDimension || cfg.Height > v.cfg.MaxDimension {
		return nil, &InvalidImageError{
			Reason: fmt.Sprintf("image dimensions exceed limit: %dx%d (max %dpx per side)", cfg.Width, cfg.Height, v.cfg.MaxDimension),
		}
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > v.cfg.MaxPixels {
		return nil, &InvalidImageError{
			Reason: fmt.Sprintf("pixel count %d exceeds limit of %d", px, v.cfg.MaxPixels),
		}
	}

	v.log.Debug("image.validate.ok",
		"format", format, "width", cfg.Width, "height", cfg.Height, "bytes", len(data))

	return &Asset{
		Data:   data,
		Format: format,
		MIME:   constants.MIMEForFormat(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

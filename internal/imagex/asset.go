// Package imagex handles intake validation, transmission-budget normalization,
// and form-legibility enhancement for claim images.
package imagex

import "fmt"

// Asset is a validated raster image. It is immutable once created and lives
// only for the duration of the request that produced it.
type Asset struct {
	Data   []byte
	Format string // as reported by image.DecodeConfig: "jpeg", "png", ...
	MIME   string
	Width  int
	Height int
}

func (a *Asset) Size() int64 { return int64(len(a.Data)) }

// InvalidImageError reports input the caller can fix: not an image, an
// unsupported format, or dimensions outside the configured bounds.
type InvalidImageError struct {
	Reason string
	Err    error
}

func (e *InvalidImageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid image: %s: %v", e.Reason, e.Err)
	}
	return "invalid image: " + e.Reason
}

func (e *InvalidImageError) Unwrap() error { return e.Err }

// UnprocessableImageError means the normalizer could not bring the image under
// the transmission budget within its attempt ladder.
type UnprocessableImageError struct {
	Budget   int64
	BestSize int64
}

func (e *UnprocessableImageError) Error() string {
	return fmt.Sprintf("image could not be reduced under %d bytes (best attempt %d bytes)", e.Budget, e.BestSize)
}

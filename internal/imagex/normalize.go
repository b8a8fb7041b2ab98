package imagex

import (
	"bytes"
	"image/jpeg"
	"log/slog"

	"github.com/disintegration/imaging"
)

// attempt is one rung of the re-encode ladder: bound the longest side, then
// JPEG-encode at the given quality.
type attempt struct {
	maxDim  int
	quality int
}

// The ladder converges for any input the validator admits; the last rung
// (1024px at q40) lands well under a multi-megabyte budget.
var reencodeLadder = []attempt{
	{2048, 85},
	{2048, 70},
	{1600, 60},
	{1280, 50},
	{1024, 40},
}

type Normalizer struct {
	log *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{log: logger}
}

// Normalize returns the asset unchanged when it already fits the transmission
// budget, otherwise walks the re-encode ladder until a result fits. Aspect
// ratio is preserved throughout. The output is always JPEG when any re-encode
// happened.
func (n *Normalizer) Normalize(asset *Asset, budgetBytes int64) (*Asset, error) {
	if budgetBytes <= 0 || asset.Size() <= budgetBytes {
		return asset, nil
	}

	img, err := imaging.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		// The validator already decoded the header; a full decode failing here
		// means truncated pixel data.
		return nil, &InvalidImageError{Reason: "image data is truncated or corrupt", Err: err}
	}

	var bestSize int64
	for _, a := range reencodeLadder {
		candidate := img
		if asset.Width > a.maxDim || asset.Height > a.maxDim {
			candidate = imaging.Fit(img, a.maxDim, a.maxDim, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, candidate, &jpeg.Options{Quality: a.quality}); err != nil {
			return nil, &InvalidImageError{Reason: "re-encode failed", Err: err}
		}
		size := int64(buf.Len())
		if bestSize == 0 || size < bestSize {
			bestSize = size
		}
		if size <= budgetBytes {
			b := candidate.Bounds()
			n.log.Info("image.normalize.ok",
				"from_bytes", asset.Size(), "to_bytes", size,
				"max_dim", a.maxDim, "quality", a.quality)
			return &Asset{
				Data:   buf.Bytes(),
				Format: "jpeg",
				MIME:   "image/jpeg",
				Width:  b.Dx(),
				Height: b.Dy(),
			}, nil
		}
	}

	n.log.Warn("image.normalize.exhausted", "budget", budgetBytes, "best", bestSize)
	return nil, &UnprocessableImageError{Budget: budgetBytes, BestSize: bestSize}
}

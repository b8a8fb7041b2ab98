package imagex

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// EnhanceForm prepares a photographed paper form for OCR: grayscale to drop
// color noise, a contrast bump so faint pen strokes survive binarization, and
// a light sharpen for small print. PNG output keeps the text edges lossless.
func EnhanceForm(asset *Asset) (*Asset, error) {
	img, err := imaging.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return nil, &InvalidImageError{Reason: "image data is truncated or corrupt", Err: err}
	}

	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 18)
	out = imaging.Sharpen(out, 0.6)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, &InvalidImageError{Reason: "png encode failed", Err: err}
	}
	b := out.Bounds()
	return &Asset{
		Data:   buf.Bytes(),
		Format: "png",
		MIME:   "image/png",
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

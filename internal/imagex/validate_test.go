package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, w, h, quality int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8((x + y) * 3), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateAcceptsJPEG(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	asset, err := v.Validate(encodeJPEG(t, 640, 480, 80), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg", asset.Format)
	assert.Equal(t, "image/jpeg", asset.MIME)
	assert.Equal(t, 640, asset.Width)
	assert.Equal(t, 480, asset.Height)
}

func TestValidateAcceptsPNG(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	asset, err := v.Validate(encodePNG(t, 200, 100), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "png", asset.Format)
	assert.Equal(t, "image/png", asset.MIME)
}

func TestValidateRejectsEmptyPayload(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	_, err := v.Validate(nil, "image/jpeg")
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "empty")
}

func TestValidateRejectsGarbage(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	_, err := v.Validate([]byte("definitely not an image"), "image/jpeg")
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "not a valid image")
}

func TestValidateRejectsTinyImage(t *testing.T) {
	v := NewValidator(ValidatorConfig{MinDimension: 32}, nil)

	_, err := v.Validate(encodePNG(t, 8, 8), "image/png")
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "too small")
}

func TestValidateRejectsOversizedUpload(t *testing.T) {
	data := encodeJPEG(t, 640, 480, 90)
	v := NewValidator(ValidatorConfig{MaxUploadBytes: int64(len(data)) - 1}, nil)

	_, err := v.Validate(data, "image/jpeg")
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "file size")
}

func TestValidateRejectsExcessivePixelCount(t *testing.T) {
	v := NewValidator(ValidatorConfig{MaxPixels: 100 * 100}, nil)

	_, err := v.Validate(encodePNG(t, 200, 200), "image/png")
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "pixel count")
}

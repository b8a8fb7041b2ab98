package imagex

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceFormProducesPNG(t *testing.T) {
	asset := validatedAsset(t, encodeJPEG(t, 400, 300, 80))

	out, err := EnhanceForm(asset)
	require.NoError(t, err)
	assert.Equal(t, "png", out.Format)
	assert.Equal(t, "image/png", out.MIME)
	assert.Equal(t, asset.Width, out.Width)
	assert.Equal(t, asset.Height, out.Height)
}

func TestDataURL(t *testing.T) {
	asset := &Asset{Data: []byte{0x01, 0x02}, MIME: "image/jpeg"}

	url := DataURL(asset)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(asset.Data), url)
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	raw := []byte("hello claim image")
	b64 := base64.StdEncoding.EncodeToString(raw)

	t.Run("bare base64", func(t *testing.T) {
		data, mime, err := DecodeBase64MaybeDataURL(b64)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Empty(t, mime)
	})

	t.Run("data URL", func(t *testing.T) {
		data, mime, err := DecodeBase64MaybeDataURL("data:image/png;base64," + b64)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, _, err := DecodeBase64MaybeDataURL("%%% not base64 %%%")
		var invalid *InvalidImageError
		require.ErrorAs(t, err, &invalid)
	})
}

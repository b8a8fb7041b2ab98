package imagex

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURL wraps the asset bytes in a data: URL suitable for multimodal chat
// message parts.
func DataURL(asset *Asset) string {
	return fmt.Sprintf("data:%s;base64,%s", asset.MIME, base64.StdEncoding.EncodeToString(asset.Data))
}

// DecodeBase64MaybeDataURL accepts either a bare base64 payload or a full
// data: URL and returns the raw bytes plus the declared MIME type when one
// was present.
func DecodeBase64MaybeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	mime := ""
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, "", &InvalidImageError{Reason: "malformed data URL"}
		}
		header := s[len("data:"):comma]
		if semi := strings.IndexByte(header, ';'); semi >= 0 {
			mime = header[:semi]
		} else {
			mime = header
		}
		s = s[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Some clients send URL-safe base64.
		data, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return nil, "", &InvalidImageError{Reason: "invalid base64 payload", Err: err}
		}
	}
	return data, mime, nil
}

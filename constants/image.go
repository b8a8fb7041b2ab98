package constants

import "strings"

// AllowedImageFormats holds the raster formats the intake accepts, keyed by
// the format name reported by image.DecodeConfig.
var AllowedImageFormats = map[string]struct{}{
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// MIMEForFormat maps a decoded format name to its canonical MIME type.
func MIMEForFormat(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

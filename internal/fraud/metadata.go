// Package fraud scores claim images for signs of post-capture manipulation
// using embedded metadata. Scoring is heuristic: it never rejects on the
// absence of metadata, only on positive evidence of editing.
package fraud

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// MetadataRecord collects every metadata field the scorer looks at. Empty
// fields mean the source simply does not carry them.
type MetadataRecord struct {
	Software           string
	ProcessingSoftware string
	XMPCreatorTool     string
	PNGSoftware        string
	DateTimeOriginal   *time.Time
	DateTime           *time.Time
	HasGPS             bool
}

const exifTimeLayout = "2006:01:02 15:04:05"

// ExtractMetadata pulls EXIF, XMP, and PNG text-chunk metadata out of the raw
// image bytes. Extraction is best effort and never fails: a stripped or
// malformed image yields a zero record.
func ExtractMetadata(data []byte, logger *slog.Logger) MetadataRecord {
	if logger == nil {
		logger = slog.Default()
	}
	var rec MetadataRecord

	if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
		rec.Software = exifString(x, exif.Software)
		rec.ProcessingSoftware = exifString(x, exif.FieldName("ProcessingSoftware"))
		rec.DateTime = exifTime(x, exif.DateTime)
		rec.DateTimeOriginal = exifTime(x, exif.DateTimeOriginal)
		if _, err := x.Get(exif.GPSLatitude); err == nil {
			rec.HasGPS = true
		}
	}

	rec.XMPCreatorTool = scanXMPCreatorTool(data)
	rec.PNGSoftware = scanPNGSoftware(data)

	logger.Debug("fraud.metadata.extracted",
		"exif_software", rec.Software,
		"xmp_creator", rec.XMPCreatorTool,
		"png_software", rec.PNGSoftware,
		"has_gps", rec.HasGPS)
	return rec
}

func exifString(x *exif.Exif, field exif.FieldName) string {
	tag, err := x.Get(field)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func exifTime(x *exif.Exif, field exif.FieldName) *time.Time {
	s := exifString(x, field)
	if s == "" {
		return nil
	}
	t, err := time.Parse(exifTimeLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// XMP packets embed CreatorTool either as an attribute or as an element. Both
// forms appear in the wild, often inside JPEG APP1 segments.
var (
	xmpCreatorAttr = regexp.MustCompile(`xmp:CreatorTool\s*=\s*"([^"]+)"`)
	xmpCreatorElem = regexp.MustCompile(`<xmp:CreatorTool>([^<]+)</xmp:CreatorTool>`)
)

func scanXMPCreatorTool(data []byte) string {
	if m := xmpCreatorAttr.FindSubmatch(data); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	if m := xmpCreatorElem.FindSubmatch(data); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	return ""
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// scanPNGSoftware walks the PNG chunk stream looking for an uncompressed
// Software keyword in tEXt or iTXt chunks. EXIF libraries ignore PNG, so this
// is the only place a PNG export records its producing tool.
func scanPNGSoftware(data []byte) string {
	if !bytes.HasPrefix(data, pngSignature) {
		return ""
	}
	off := len(pngSignature)
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		chunkType := string(data[off+4 : off+8])
		body := off + 8
		if length < 0 || body+length > len(data) {
			return ""
		}
		chunk := data[body : body+length]
		switch chunkType {
		case "tEXt":
			// keyword NUL text
			if i := bytes.IndexByte(chunk, 0); i > 0 && string(chunk[:i]) == "Software" {
				return strings.TrimSpace(string(chunk[i+1:]))
			}
		case "iTXt":
			// keyword NUL compFlag compMethod NUL lang NUL translated NUL text
			if v := itxtValue(chunk, "Software"); v != "" {
				return v
			}
		case "IEND":
			return ""
		}
		off = body + length + 4 // skip CRC
	}
	return ""
}

func itxtValue(chunk []byte, keyword string) string {
	i := bytes.IndexByte(chunk, 0)
	if i <= 0 || string(chunk[:i]) != keyword {
		return ""
	}
	rest := chunk[i+1:]
	if len(rest) < 2 || rest[0] != 0 { // only uncompressed text
		return ""
	}
	rest = rest[2:]
	for i := 0; i < 2; i++ { // skip language tag and translated keyword
		j := bytes.IndexByte(rest, 0)
		if j < 0 {
			return ""
		}
		rest = rest[j+1:]
	}
	return strings.TrimSpace(string(rest))
}

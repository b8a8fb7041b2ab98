package fraud

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Signal is one tamper heuristic that fired, with the weight it carries.
type Signal struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Detail string  `json:"detail"`
}

// Verdict is the scoring outcome for one image. Reason is set only when the
// image is suspicious and names the strongest signal in user-facing terms.
type Verdict struct {
	IsSuspicious bool     `json:"is_suspicious"`
	Reason       *string  `json:"reason,omitempty"`
	Signals      []Signal `json:"signals,omitempty"`
}

// editorNames are substring-matched case-insensitively against every software
// field. Each entry is the display name used when building the reason string.
var editorNames = []string{
	"Photoshop",
	"GIMP",
	"Lightroom",
	"Affinity",
	"Snapseed",
	"Pixelmator",
	"Canva",
}

// modifiedAfterCaptureThreshold separates in-camera processing timestamps from
// a later editing session on another device.
const modifiedAfterCaptureThreshold = 48 * time.Hour

type Scorer struct {
	log *slog.Logger
}

func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{log: logger}
}

// Inspect extracts metadata from the raw image bytes and scores it in one
// step. This is the entry point the pipeline uses.
func (s *Scorer) Inspect(data []byte) Verdict {
	return s.Score(ExtractMetadata(data, s.log))
}

// Score evaluates the tamper heuristics in a fixed order and returns every
// signal that fired. The reason is built from the first, highest-weighted
// match so callers always report the same message for the same metadata.
func (s *Scorer) Score(rec MetadataRecord) Verdict {
	var signals []Signal

	if name := matchEditor(rec.Software); name == "" {
		if name = matchEditor(rec.ProcessingSoftware); name != "" {
			signals = append(signals, Signal{Name: "exif-software-editor", Weight: 0.9, Detail: rec.ProcessingSoftware})
		}
	} else {
		signals = append(signals, Signal{Name: "exif-software-editor", Weight: 0.9, Detail: rec.Software})
	}
	if matchEditor(rec.XMPCreatorTool) != "" {
		signals = append(signals, Signal{Name: "xmp-creator-editor", Weight: 0.8, Detail: rec.XMPCreatorTool})
	}
	if matchEditor(rec.PNGSoftware) != "" {
		signals = append(signals, Signal{Name: "png-software-editor", Weight: 0.7, Detail: rec.PNGSoftware})
	}
	if rec.DateTime != nil && rec.DateTimeOriginal != nil {
		if delta := rec.DateTime.Sub(*rec.DateTimeOriginal); delta > modifiedAfterCaptureThreshold {
			signals = append(signals, Signal{
				Name:   "modified-after-capture",
				Weight: 0.6,
				Detail: fmt.Sprintf("modified %s after capture", delta.Round(time.Hour)),
			})
		}
	}

	if len(signals) == 0 {
		return Verdict{}
	}

	reason := reasonFor(signals[0])
	s.log.Info("fraud.score.suspicious", "reason", reason, "signal_count", len(signals))
	return Verdict{IsSuspicious: true, Reason: &reason, Signals: signals}
}

func reasonFor(sig Signal) string {
	switch sig.Name {
	case "modified-after-capture":
		return "image metadata shows it was " + sig.Detail
	default:
		return "image appears to be edited with " + sig.Detail
	}
}

func matchEditor(software string) string {
	if software == "" {
		return ""
	}
	lower := strings.ToLower(software)
	for _, name := range editorNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

// Package ocr runs tesseract over enhanced accident-statement photos and turns
// the raw text into field hints for the report prompt. OCR output is advisory
// context for the model, so every failure degrades to an empty Context rather
// than an error.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	// Languages joined with '+', e.g. "eng+nld+deu+fra". European accident
	// statements routinely mix the form language with the driver's own.
	Lang string

	TessdataDir         string
	EnableTSVConfidence bool

	PSM int // 6 works well for the boxed layout of the statement form
	OEM int // 1 = LSTM; leave 0 to use default

	WorkDir string // temp files for image bytes; default os.TempDir()
}

// FieldHint is one labeled region recovered from the form. Text carries the
// value written after the label; Checked is set for checkbox rows.
type FieldHint struct {
	Text    *string `json:"text,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
}

// Context is what OCR recovered from one image. A zero Context is valid and
// means nothing legible was found.
type Context struct {
	RawText     string               `json:"raw_text"`
	Fields      map[string]FieldHint `json:"fields,omitempty"`
	BoxesMarked int                  `json:"boxes_marked"`
	Confidence  float32              `json:"confidence"`
}

func (c Context) Empty() bool { return c.RawText == "" && len(c.Fields) == 0 }

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng+nld+deu+fra"
	}
	if cfg.PSM == 0 {
		cfg.PSM = 6
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	return &Extractor{cfg: cfg, runner: execRunner{log: logger}, logger: logger}
}

// ExtractContext OCRs the asset and parses field hints out of the text. It
// never returns an error: a missing binary, an unreadable image, or garbage
// output all collapse to an empty Context.
func (e *Extractor) ExtractContext(ctx context.Context, asset *imagex.Asset) Context {
	path, cleanup, err := e.spool(asset)
	if err != nil {
		e.logger.Warn("ocr.extract.spool_failed", "error", err)
		return Context{}
	}
	defer cleanup()

	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		e.logger.Warn("ocr.extract.failed", "error", err)
		return Context{}
	}
	txt = normalizeText(txt)
	if txt == "" {
		return Context{}
	}

	fields, boxes := parseFields(txt)

	var conf float32
	if e.cfg.EnableTSVConfidence {
		if c, err := e.tesseractTSVConfidence(ctx, path); err == nil && c > 0 {
			conf = 0.7*c + 0.3*heuristicConfidence(txt, fields)
		}
	}
	if conf == 0 {
		conf = heuristicConfidence(txt, fields)
	}

	e.logger.Debug("ocr.extract.ok",
		"chars", len(txt), "fields", len(fields), "boxes_marked", boxes, "confidence", conf)
	return Context{RawText: txt, Fields: fields, BoxesMarked: boxes, Confidence: conf}
}

// spool writes the asset bytes to a temp file because tesseract only reads
// from paths.
func (e *Extractor) spool(asset *imagex.Asset) (string, func(), error) {
	name := filepath.Join(e.cfg.WorkDir, "claim-ocr-"+uuid.NewString()+"."+asset.Format)
	if err := os.WriteFile(name, asset.Data, 0o600); err != nil {
		return "", nil, err
	}
	return name, func() { _ = os.Remove(name) }, nil
}

func (e *Extractor) baseArgs(path string) []string {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, e.baseArgs(path)...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, error) {
	args := append(e.baseArgs(path), "tsv")
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, fmt.Errorf("tesseract tsv: %w", err)
	}

	var sum, n float64
	for i, ln := range strings.Split(string(out), "\n") {
		if i == 0 || ln == "" { // header
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[len(cols)-2]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float32(sum / n / 100.0), nil
}

func heuristicConfidence(txt string, fields map[string]FieldHint) float32 {
	score := float32(0.2)
	score += 0.1 * float32(len(fields))
	if len(txt) > 200 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimRight(ln, " \t")
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

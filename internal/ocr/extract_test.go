package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
)

type stubRunner struct {
	stdout map[string][]byte // keyed by last arg ("tsv" or "") to split modes
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	s.calls++
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	key := ""
	if args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return s.stdout[key], nil, nil
}

const formText = `EUROPEAN ACCIDENT STATEMENT
Date of accident: 12-03-2026
Locality: Utrecht
Country: Netherlands
Injuries, even slight [ ]
Witnesses: J. de Vries, Oudegracht 12
Make, type: Volkswagen Golf
Registration number: AB-123-C
Insurance company: Achmea
Policy number: 99887766
Driver: M. Jansen
17. ☒ was parking
18. ☒ opening a door
19. ☐ changing lanes
Remarks: other driver admitted fault
`

func testAsset() *imagex.Asset {
	return &imagex.Asset{Data: []byte("not real pixels"), Format: "png", MIME: "image/png"}
}

func TestExtractContextParsesForm(t *testing.T) {
	e := NewExtractor(Config{WorkDir: t.TempDir()}, nil)
	e.runner = &stubRunner{stdout: map[string][]byte{"": []byte(formText)}}

	got := e.ExtractContext(context.Background(), testAsset())

	require.False(t, got.Empty())
	assert.Contains(t, got.RawText, "EUROPEAN ACCIDENT STATEMENT")
	assert.Equal(t, 2, got.BoxesMarked)
	assert.Greater(t, got.Confidence, float32(0.2))

	require.NotNil(t, got.Fields["accident_date"].Text)
	assert.Equal(t, "12-03-2026", *got.Fields["accident_date"].Text)
	assert.Equal(t, "Utrecht", *got.Fields["locality"].Text)
	assert.Equal(t, "Achmea", *got.Fields["insurance_company"].Text)

	require.NotNil(t, got.Fields["injuries"].Checked)
	assert.False(t, *got.Fields["injuries"].Checked)
}

func TestExtractContextRunnerFailure(t *testing.T) {
	e := NewExtractor(Config{WorkDir: t.TempDir()}, nil)
	e.runner = &stubRunner{err: errors.New("exec: tesseract not found")}

	got := e.ExtractContext(context.Background(), testAsset())
	assert.True(t, got.Empty())
	assert.Zero(t, got.Confidence)
}

func TestExtractContextEmptyOutput(t *testing.T) {
	e := NewExtractor(Config{WorkDir: t.TempDir()}, nil)
	e.runner = &stubRunner{stdout: map[string][]byte{"": []byte("   \n\n  ")}}

	got := e.ExtractContext(context.Background(), testAsset())
	assert.True(t, got.Empty())
}

func TestExtractContextTSVConfidence(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t90\tDate",
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t80\tof",
		"5\t1\t1\t1\t1\t3\t130\t10\t50\t20\t-1\t",
	}, "\n")
	e := NewExtractor(Config{WorkDir: t.TempDir(), EnableTSVConfidence: true}, nil)
	e.runner = &stubRunner{stdout: map[string][]byte{
		"":    []byte(formText),
		"tsv": []byte(tsv),
	}}

	got := e.ExtractContext(context.Background(), testAsset())
	// mean word conf is 0.85, blended 70/30 with the heuristic score
	assert.InDelta(t, 0.7*0.85, got.Confidence, 0.31)
	assert.Greater(t, got.Confidence, float32(0.6))
}

func TestParseFieldsFirstLabelWins(t *testing.T) {
	fields, _ := parseFields("Driver: A. First\nDriver: B. Second")
	require.NotNil(t, fields["driver"].Text)
	assert.Equal(t, "A. First", *fields["driver"].Text)
}

func TestParseFieldsNothingRecognized(t *testing.T) {
	fields, boxes := parseFields("lorem ipsum dolor sit amet")
	assert.Nil(t, fields)
	assert.Zero(t, boxes)
}

package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
)

func TestBuildDamagePrompt(t *testing.T) {
	p := BuildDamagePrompt(nil)

	assert.Contains(t, p.System, `"vehicle_info"`)
	assert.Contains(t, p.System, `"cost_breakdown"`)
	assert.Contains(t, p.System, `"Minor", "Moderate", or "Severe"`)
	assert.Contains(t, p.User, "damage assessment")
	assert.NotContains(t, p.User, "manipulated")
}

func TestBuildDamagePromptWithFraudNote(t *testing.T) {
	note := "image appears to be edited with Adobe Photoshop 23.3"
	p := BuildDamagePrompt(&note)

	assert.Contains(t, p.User, note)
	assert.Contains(t, p.User, "possibly manipulated")
}

func TestBuildReportPromptLanguages(t *testing.T) {
	for lang, marker := range map[constants.Language]string{
		constants.LanguageEN: `"accident_statement"`,
		constants.LanguageNL: `"ongevalsaangifte"`,
		constants.LanguageDE: `"unfallbericht"`,
	} {
		p := BuildReportPrompt(lang, ocr.Context{}, nil)
		assert.Contains(t, p.System, marker, "language %s", lang)
		assert.Contains(t, p.System, "Return ONLY the JSON object")
	}
}

func TestBuildReportPromptFoldsOCRContext(t *testing.T) {
	text := "Polisnummer: 99887766"
	hint := "99887766"
	ctx := ocr.Context{
		RawText:     text,
		Fields:      map[string]ocr.FieldHint{"policy_number": {Text: &hint}},
		BoxesMarked: 3,
		Confidence:  0.72,
	}

	p := BuildReportPrompt(constants.LanguageNL, ctx, nil)
	assert.Contains(t, p.User, "policy_number")
	assert.Contains(t, p.User, "99887766")
	assert.Contains(t, p.User, "3 marked checkboxes")
	assert.Contains(t, p.User, text)
}

func TestBuildReportPromptCapsOCRText(t *testing.T) {
	ctx := ocr.Context{RawText: strings.Repeat("x", 10_000)}

	p := BuildReportPrompt(constants.LanguageEN, ctx, nil)
	assert.Less(t, len(p.User), 5000)
	assert.Contains(t, p.User, "(truncated)")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(StripCodeFences([]byte("```json\n{\"a\":1}\n```"))))
	assert.Equal(t, `{"a":1}`, string(StripCodeFences([]byte(`{"a":1}`))))
	assert.Equal(t, `{"a":1}`, string(StripCodeFences([]byte("```\n{\"a\":1}\n```"))))
}

package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
)

const ocrTextCap = 3000

// BuildDamagePrompt composes the prompts for the damage-assessment task.
// fraudNote, when set, is surfaced to the model so the written assessment can
// flag the suspected manipulation.
func BuildDamagePrompt(fraudNote *string) PromptPair {
	system := strings.Join([]string{
		"You are an expert car damage assessor specialized in insurance claims.",
		"Analyze the attached car image in detail to identify:",
		"1. Vehicle details (make, model, year, color, type, trim if visible).",
		"2. Comprehensive damage assessment (location, type, severity, repair approach).",
		"3. Detailed repair cost breakdown with itemized services and parts.",
		"",
		"Your response MUST be a single JSON object with exactly two keys, \"vehicle_info\" and \"damage_data\", structured like this example:",
		"",
		damageShape,
		"",
		`Use "Minor", "Moderate", or "Severe" for damage severity.`,
		`Give every cost line item an expected "cost" plus a realistic "min_cost"/"max_cost" range; the totals must be the sums of their line items.`,
		`Provide "make_certainty" and "model_certainty" as confidence percentages (0-100), lower when the image is unclear, partially visible, or several similar models could match.`,
		"Return ONLY the JSON object, no prose and no code fences.",
	}, "\n")

	var b strings.Builder
	b.WriteString("Analyze this car image and provide a detailed damage assessment with cost breakdown.")
	if fraudNote != nil && *fraudNote != "" {
		b.WriteString("\n\nNote: automated checks flagged this image as possibly manipulated (")
		b.WriteString(*fraudNote)
		b.WriteString("). Assess it anyway and do not let the flag change your cost estimates.")
	}
	return PromptPair{System: system, User: b.String()}
}

// BuildReportPrompt composes the prompts for the accident-report task in the
// requested language, folding in whatever OCR recovered from the form.
func BuildReportPrompt(lang constants.Language, ocrCtx ocr.Context, fraudNote *string) PromptPair {
	shape, langName := reportShapeEN, "English"
	switch lang {
	case constants.LanguageNL:
		shape, langName = reportShapeNL, "Dutch"
	case constants.LanguageDE:
		shape, langName = reportShapeDE, "German"
	}

	system := strings.Join([]string{
		"You are an insurance claims clerk transcribing a handwritten European Accident Statement form from a photo.",
		"Read every legible field and produce the complete " + langName + " report record.",
		"Your response MUST be a single JSON object structured exactly like this template (party B has the same structure as party A):",
		"",
		shape,
		"",
		"Copy handwritten values verbatim; use an empty string for anything illegible or not filled in, never null.",
		"For the numbered circumstance checkboxes, set a field to true only when its box is clearly marked.",
		"Return ONLY the JSON object, no prose and no code fences.",
	}, "\n")

	var b strings.Builder
	b.WriteString("Transcribe this accident statement form into the " + langName + " report record.")
	if !ocrCtx.Empty() {
		b.WriteString("\n\nA separate OCR pass read the same form. Use it to cross-check hard-to-read handwriting; the image remains the source of truth.")
		if len(ocrCtx.Fields) > 0 {
			if hints, err := json.Marshal(ocrCtx.Fields); err == nil {
				b.WriteString("\nOCR field hints: ")
				b.Write(hints)
			}
		}
		if ocrCtx.BoxesMarked > 0 {
			fmt.Fprintf(&b, "\nOCR counted %d marked checkboxes in total.", ocrCtx.BoxesMarked)
		}
		txt := strings.TrimSpace(ocrCtx.RawText)
		if len(txt) > ocrTextCap {
			txt = txt[:ocrTextCap] + "\n...(truncated)"
		}
		if txt != "" {
			b.WriteString("\nOCR text (first ~3k chars):\n")
			b.WriteString(txt)
		}
	}
	if fraudNote != nil && *fraudNote != "" {
		b.WriteString("\n\nNote: automated checks flagged this image as possibly manipulated (")
		b.WriteString(*fraudNote)
		b.WriteString("). Transcribe it anyway.")
	}
	return PromptPair{System: system, User: b.String()}
}

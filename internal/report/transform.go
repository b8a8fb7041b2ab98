package report

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
)

// Transform shapes raw model output into a complete accident report for the
// requested language. Missing sections come back as empty strings and false
// checkboxes rather than nulls, the boilerplate texts are restored when the
// model dropped them, and the checked-box totals are recomputed when absent.
func Transform(lang constants.Language, raw []byte, logger *slog.Logger) (any, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := singleObject(llm.StripCodeFences(raw))
	if err != nil {
		logger.Error("report.transform.malformed", "language", string(lang), "error", err)
		return nil, &llm.MalformedModelResponseError{Reason: err.Error(), Raw: raw}
	}

	switch lang {
	case constants.LanguageNL:
		r := NewReportNL()
		if err := json.Unmarshal(doc, r); err != nil {
			return nil, &llm.MalformedModelResponseError{Reason: "not a Dutch accident report: " + err.Error(), Raw: raw}
		}
		r.finalize()
		return r, nil
	case constants.LanguageDE:
		r := NewReportDE()
		if err := json.Unmarshal(doc, r); err != nil {
			return nil, &llm.MalformedModelResponseError{Reason: "not a German accident report: " + err.Error(), Raw: raw}
		}
		r.finalize()
		return r, nil
	default:
		r := NewReportEN()
		if err := json.Unmarshal(doc, r); err != nil {
			return nil, &llm.MalformedModelResponseError{Reason: "not an English accident report: " + err.Error(), Raw: raw}
		}
		r.finalize()
		return r, nil
	}
}

// singleObject unwraps the occasional single-element array the model emits
// instead of a bare object.
func singleObject(doc []byte) (json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(doc, &probe); err != nil {
		return nil, fmt.Errorf("output is not JSON: %w", err)
	}
	switch probe.(type) {
	case map[string]any:
		return doc, nil
	case []any:
		var list []json.RawMessage
		if err := json.Unmarshal(doc, &list); err != nil || len(list) == 0 {
			return nil, fmt.Errorf("output is an empty or invalid JSON array")
		}
		if _, err := singleObject(list[0]); err != nil {
			return nil, fmt.Errorf("first array element is not an object")
		}
		return list[0], nil
	default:
		return nil, fmt.Errorf("output is not a JSON object")
	}
}

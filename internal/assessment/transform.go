package assessment

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
)

type Transformer struct {
	currency string
	log      *slog.Logger
}

func NewTransformer(currencyCode string, logger *slog.Logger) *Transformer {
	if currencyCode == "" {
		currencyCode = "EUR"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{currency: currencyCode, log: logger}
}

// Transform parses raw model output into a DamageAssessment, normalizes every
// field, and recomputes the cost aggregates. Output that lacks the two
// top-level sections is malformed; everything below them degrades to empty
// values instead of failing.
func (t *Transformer) Transform(raw []byte) (*DamageAssessment, error) {
	doc, err := singleObject(llm.StripCodeFences(raw))
	if err != nil {
		t.log.Error("assessment.transform.malformed", "error", err)
		return nil, &llm.MalformedModelResponseError{Reason: err.Error(), Raw: raw}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(doc, &probe); err != nil {
		return nil, &llm.MalformedModelResponseError{Reason: "not a JSON object: " + err.Error(), Raw: raw}
	}
	if _, ok := probe["vehicle_info"]; !ok {
		return nil, &llm.MalformedModelResponseError{Reason: "missing vehicle_info", Raw: raw}
	}
	dd, ok := probe["damage_data"]
	if !ok {
		return nil, &llm.MalformedModelResponseError{Reason: "missing damage_data", Raw: raw}
	}
	var ddProbe map[string]json.RawMessage
	if err := json.Unmarshal(dd, &ddProbe); err != nil {
		return nil, &llm.MalformedModelResponseError{Reason: "damage_data is not an object: " + err.Error(), Raw: raw}
	}
	if _, ok := ddProbe["cost_breakdown"]; !ok {
		return nil, &llm.MalformedModelResponseError{Reason: "missing cost_breakdown", Raw: raw}
	}

	var a DamageAssessment
	if err := json.Unmarshal(doc, &a); err != nil {
		return nil, &llm.MalformedModelResponseError{Reason: "unexpected shape: " + err.Error(), Raw: raw}
	}

	t.normalize(&a)

	out, err := json.Marshal(&a)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(BuildAssessmentSchema(), out); err != nil {
		t.log.Error("assessment.transform.schema_failed", "error", err)
		return nil, &llm.MalformedModelResponseError{Reason: err.Error(), Raw: raw}
	}

	t.log.Debug("assessment.transform.ok",
		"damaged_parts", len(a.DamageData.DamagedParts),
		"expected_total", float64(a.DamageData.CostBreakdown.TotalEstimate.Expected))
	return &a, nil
}

func (t *Transformer) normalize(a *DamageAssessment) {
	a.VehicleInfo.MakeCertainty = normalizeCertainty(a.VehicleInfo.MakeCertainty)
	a.VehicleInfo.ModelCertainty = normalizeCertainty(a.VehicleInfo.ModelCertainty)

	if a.DamageData.DamagedParts == nil {
		a.DamageData.DamagedParts = []DamagedPart{}
	}
	for i := range a.DamageData.DamagedParts {
		p := &a.DamageData.DamagedParts[i]
		sev, known := constants.CanonicalizeSeverity(string(p.Severity))
		if !known {
			t.log.Debug("assessment.transform.severity_fallback", "raw", string(p.Severity))
		}
		p.Severity = sev
	}

	cb := &a.DamageData.CostBreakdown
	if cb.Parts == nil {
		cb.Parts = []PartCost{}
	}
	if cb.Labor == nil {
		cb.Labor = []LaborCost{}
	}
	if cb.AdditionalFees == nil {
		cb.AdditionalFees = []AdditionalFee{}
	}
	for i := range cb.Labor {
		l := &cb.Labor[i]
		if l.Cost == 0 && l.Hours > 0 && l.Rate > 0 {
			l.Cost = l.Hours * l.Rate
		}
	}

	recomputeAggregates(cb, t.currency)
}

// normalizeCertainty maps model confidences onto [0,1]. Values above 1 are
// treated as percentages; absent or negative values become 0.
func normalizeCertainty(v Number) Number {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v /= 100
	}
	if v > 1 {
		v = 1
	}
	return v
}

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
		return list[0], nil
	default:
		return nil, fmt.Errorf("output is not a JSON object")
	}
}

// Package assessment turns raw model output into the canonical damage
// assessment record, recomputing every cost aggregate locally so the numbers
// in the response are always arithmetically consistent.
package assessment

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
)

// Number tolerates the model emitting numbers as JSON strings ("127.50") and
// null for absent values.
type Number float64

func (m *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" {
		*m = 0
		return nil
	}
	// tolerate currency symbols and thousands separators
	s = strings.TrimLeft(s, "€$£ ")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Number(v)
	return nil
}

type VehicleInfo struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	Color          string `json:"color"`
	Type           string `json:"type,omitempty"`
	Trim           string `json:"trim,omitempty"`
	MakeCertainty  Number `json:"make_certainty"`
	ModelCertainty Number `json:"model_certainty"`
}

type DamagedPart struct {
	Part         string             `json:"part"`
	DamageType   string             `json:"damage_type"`
	Severity     constants.Severity `json:"severity"`
	RepairAction string             `json:"repair_action"`
}

// A cost line item carries the expected cost plus a [min_cost, max_cost]
// band. Bands the model omits collapse onto the expected value.
type PartCost struct {
	Name    string `json:"name"`
	Cost    Number `json:"cost"`
	MinCost Number `json:"min_cost"`
	MaxCost Number `json:"max_cost"`
}

type LaborCost struct {
	Service string `json:"service"`
	Hours   Number `json:"hours"`
	Rate    Number `json:"rate"`
	Cost    Number `json:"cost"`
	MinCost Number `json:"min_cost"`
	MaxCost Number `json:"max_cost"`
}

type AdditionalFee struct {
	Description string `json:"description"`
	Cost        Number `json:"cost"`
	MinCost     Number `json:"min_cost"`
	MaxCost     Number `json:"max_cost"`
}

// CostAggregate summarizes a set of line items. Invariant: Min <= Expected <= Max.
type CostAggregate struct {
	Min      Number `json:"min"`
	Max      Number `json:"max"`
	Expected Number `json:"expected"`
	Currency string `json:"currency"`
}

type CostBreakdown struct {
	Parts          []PartCost      `json:"parts"`
	Labor          []LaborCost     `json:"labor"`
	AdditionalFees []AdditionalFee `json:"additional_fees"`
	PartsTotal     CostAggregate   `json:"parts_total"`
	LaborTotal     CostAggregate   `json:"labor_total"`
	FeesTotal      CostAggregate   `json:"fees_total"`
	TotalEstimate  CostAggregate   `json:"total_estimate"`
}

type DamageData struct {
	DamagedParts  []DamagedPart `json:"damaged_parts"`
	CostBreakdown CostBreakdown `json:"cost_breakdown"`
}

// DamageAssessment is the canonical record delivered to callers.
type DamageAssessment struct {
	VehicleInfo VehicleInfo `json:"vehicle_info"`
	DamageData  DamageData  `json:"damage_data"`
}

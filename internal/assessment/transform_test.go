package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
)

const modelOutput = `{
  "vehicle_info": {
    "make": "Toyota",
    "model": "Corolla",
    "year": "2019",
    "color": "Blue",
    "type": "Sedan",
    "make_certainty": 95.5,
    "model_certainty": 87.3
  },
  "damage_data": {
    "damaged_parts": [
      {"part": "Front Bumper", "damage_type": "Scratch", "severity": "Moderate", "repair_action": "Repaint"},
      {"part": "Hood", "damage_type": "Dent", "severity": "light", "repair_action": "Repair and Repaint"}
    ],
    "cost_breakdown": {
      "parts": [
        {"name": "Paint supplies", "cost": 150, "min_cost": 120, "max_cost": 180},
        {"name": "Primer", "cost": 50}
      ],
      "labor": [
        {"service": "Dent repair", "hours": 2, "rate": 90, "cost": 180, "min_cost": 150, "max_cost": 220},
        {"service": "Painting", "hours": 2.5, "rate": 85, "cost": 212.5}
      ],
      "additional_fees": [
        {"description": "Shop supplies", "cost": 35, "min_cost": 40, "max_cost": 30}
      ],
      "parts_total": {"min": 1, "max": 2, "expected": 3, "currency": "USD"},
      "total_estimate": {"min": 800, "max": 500, "expected": 9999, "currency": ""}
    }
  }
}`

func TestTransformRecomputesAggregates(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte(modelOutput))
	require.NoError(t, err)

	cb := got.DamageData.CostBreakdown

	// the model's own totals are discarded; every aggregate is the item sum
	assert.Equal(t, CostAggregate{Min: 170, Max: 230, Expected: 200, Currency: "EUR"}, cb.PartsTotal)
	assert.Equal(t, CostAggregate{Min: 362.5, Max: 432.5, Expected: 392.5, Currency: "EUR"}, cb.LaborTotal)
	// the inverted fee band gets swapped before summing
	assert.Equal(t, CostAggregate{Min: 30, Max: 40, Expected: 35, Currency: "EUR"}, cb.FeesTotal)

	est := cb.TotalEstimate
	assert.Equal(t, Number(627.5), est.Expected)
	assert.Equal(t, Number(562.5), est.Min)
	assert.Equal(t, Number(702.5), est.Max)
	assert.Equal(t, "EUR", est.Currency)

	assert.Equal(t, est.Expected, cb.PartsTotal.Expected+cb.LaborTotal.Expected+cb.FeesTotal.Expected)
	assert.Equal(t, est.Min, cb.PartsTotal.Min+cb.LaborTotal.Min+cb.FeesTotal.Min)
	assert.Equal(t, est.Max, cb.PartsTotal.Max+cb.LaborTotal.Max+cb.FeesTotal.Max)
}

func TestTransformCollapsesMissingBands(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte(modelOutput))
	require.NoError(t, err)

	primer := got.DamageData.CostBreakdown.Parts[1]
	assert.Equal(t, Number(50), primer.MinCost)
	assert.Equal(t, Number(50), primer.MaxCost)
}

func TestTransformScalesCertaintiesToUnitInterval(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte(modelOutput))
	require.NoError(t, err)

	assert.InDelta(t, 0.955, float64(got.VehicleInfo.MakeCertainty), 0.0001)
	assert.InDelta(t, 0.873, float64(got.VehicleInfo.ModelCertainty), 0.0001)
}

func TestTransformDefaultsMissingCertaintiesToZero(t *testing.T) {
	raw := `{"vehicle_info": {"make": "BMW", "model": "320i"}, "damage_data": {"damaged_parts": [], "cost_breakdown": {}}}`
	got, err := NewTransformer("EUR", nil).Transform([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, Number(0), got.VehicleInfo.MakeCertainty)
	assert.Equal(t, Number(0), got.VehicleInfo.ModelCertainty)
}

func TestTransformCanonicalizesSeverity(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte(modelOutput))
	require.NoError(t, err)

	require.Len(t, got.DamageData.DamagedParts, 2)
	assert.Equal(t, constants.SeverityModerate, got.DamageData.DamagedParts[0].Severity)
	// "light" is not canon and maps onto Minor
	assert.Equal(t, constants.SeverityMinor, got.DamageData.DamagedParts[1].Severity)
}

func TestTransformAcceptsSingleElementList(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte("[" + modelOutput + "]"))
	require.NoError(t, err)
	assert.Equal(t, "Toyota", got.VehicleInfo.Make)
}

func TestTransformStripsCodeFences(t *testing.T) {
	got, err := NewTransformer("EUR", nil).Transform([]byte("```json\n" + modelOutput + "\n```"))
	require.NoError(t, err)
	assert.Equal(t, "Corolla", got.VehicleInfo.Model)
}

func TestTransformStringCosts(t *testing.T) {
	raw := `{
	  "vehicle_info": {"make": "Audi", "model": "A4"},
	  "damage_data": {
	    "damaged_parts": [{"part": "Door", "severity": "Severe"}],
	    "cost_breakdown": {
	      "parts": [{"name": "Door panel", "cost": "1,250.50"}],
	      "labor": [{"service": "Fitting", "hours": "2", "rate": "80"}],
	      "additional_fees": []
	    }
	  }
	}`
	got, err := NewTransformer("EUR", nil).Transform([]byte(raw))
	require.NoError(t, err)

	cb := got.DamageData.CostBreakdown
	assert.Equal(t, Number(1250.50), cb.PartsTotal.Expected)
	// labor cost derived from hours x rate when the model omits it
	assert.Equal(t, Number(160), cb.LaborTotal.Expected)
}

func TestTransformMissingVehicleInfoIsMalformed(t *testing.T) {
	_, err := NewTransformer("EUR", nil).Transform([]byte(`{"damage_data": {}}`))
	var malformed *llm.MalformedModelResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "vehicle_info")
}

func TestTransformMissingCostBreakdownIsMalformed(t *testing.T) {
	raw := `{"vehicle_info": {"make": "BMW"}, "damage_data": {"damaged_parts": []}}`
	_, err := NewTransformer("EUR", nil).Transform([]byte(raw))
	var malformed *llm.MalformedModelResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "cost_breakdown")
}

func TestTransformProseIsMalformed(t *testing.T) {
	_, err := NewTransformer("EUR", nil).Transform([]byte("The image shows a blue sedan with minor damage."))
	var malformed *llm.MalformedModelResponseError
	require.ErrorAs(t, err, &malformed)
	assert.NotEmpty(t, malformed.Raw)
}

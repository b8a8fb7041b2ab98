package assessment

import "github.com/karthik1609/car-insurance-claims-ai-agent/constants"

// BuildAssessmentSchema returns the JSON Schema (draft 2020-12 subset) the
// canonical assessment is validated against before it leaves the service.
func BuildAssessmentSchema() map[string]any {
	costItem := func(nameKey string) map[string]any {
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				nameKey:    map[string]any{"type": "string"},
				"cost":     nonNegativeNumber(),
				"min_cost": nonNegativeNumber(),
				"max_cost": nonNegativeNumber(),
			},
			"required": []string{nameKey, "cost", "min_cost", "max_cost"},
		}
	}

	laborItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"service":  map[string]any{"type": "string"},
			"hours":    nonNegativeNumber(),
			"rate":     nonNegativeNumber(),
			"cost":     nonNegativeNumber(),
			"min_cost": nonNegativeNumber(),
			"max_cost": nonNegativeNumber(),
		},
		"required": []string{"service", "cost", "min_cost", "max_cost"},
	}

	damagedPart := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"part":          map[string]any{"type": "string", "minLength": 1},
			"damage_type":   map[string]any{"type": "string"},
			"severity":      map[string]any{"type": "string", "enum": constants.SeveritiesAsStrings()},
			"repair_action": map[string]any{"type": "string"},
		},
		"required": []string{"part", "severity"},
	}

	aggregate := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"min":      nonNegativeNumber(),
			"max":      nonNegativeNumber(),
			"expected": nonNegativeNumber(),
			"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		},
		"required": []string{"min", "max", "expected", "currency"},
	}

	costBreakdown := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"parts":           map[string]any{"type": "array", "items": costItem("name")},
			"labor":           map[string]any{"type": "array", "items": laborItem},
			"additional_fees": map[string]any{"type": "array", "items": costItem("description")},
			"parts_total":     aggregate,
			"labor_total":     aggregate,
			"fees_total":      aggregate,
			"total_estimate":  aggregate,
		},
		"required": []string{"parts", "labor", "additional_fees", "parts_total", "labor_total", "fees_total", "total_estimate"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vehicle_info": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"make":            map[string]any{"type": "string"},
					"model":           map[string]any{"type": "string"},
					"year":            map[string]any{"type": "string"},
					"color":           map[string]any{"type": "string"},
					"type":            map[string]any{"type": "string"},
					"trim":            map[string]any{"type": "string"},
					"make_certainty":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"model_certainty": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
				},
				"required": []string{"make", "model", "make_certainty", "model_certainty"},
			},
			"damage_data": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"damaged_parts":  map[string]any{"type": "array", "items": damagedPart},
					"cost_breakdown": costBreakdown,
				},
				"required": []string{"damaged_parts", "cost_breakdown"},
			},
		},
		"required": []string{"vehicle_info", "damage_data"},
	}
}

func nonNegativeNumber() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}

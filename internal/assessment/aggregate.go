package assessment

// normalizeBand forces min <= expected <= max on a line item. A missing band
// collapses onto the expected cost; an inverted band is swapped, then clamped.
func normalizeBand(expected Number, min, max *Number) {
	if *min <= 0 {
		*min = expected
	}
	if *max <= 0 {
		*max = expected
	}
	if *min > *max {
		*min, *max = *max, *min
	}
	if *min > expected {
		*min = expected
	}
	if *max < expected {
		*max = expected
	}
}

// recomputeAggregates derives the four totals from the itemized costs. The
// model's own totals are never trusted; each aggregate is the componentwise
// sum of its items' expected/min/max, and the grand total is the sum of the
// three category aggregates.
func recomputeAggregates(cb *CostBreakdown, currency string) {
	var parts, labor, fees CostAggregate

	for i := range cb.Parts {
		p := &cb.Parts[i]
		normalizeBand(p.Cost, &p.MinCost, &p.MaxCost)
		parts.Expected += p.Cost
		parts.Min += p.MinCost
		parts.Max += p.MaxCost
	}
	for i := range cb.Labor {
		l := &cb.Labor[i]
		normalizeBand(l.Cost, &l.MinCost, &l.MaxCost)
		labor.Expected += l.Cost
		labor.Min += l.MinCost
		labor.Max += l.MaxCost
	}
	for i := range cb.AdditionalFees {
		f := &cb.AdditionalFees[i]
		normalizeBand(f.Cost, &f.MinCost, &f.MaxCost)
		fees.Expected += f.Cost
		fees.Min += f.MinCost
		fees.Max += f.MaxCost
	}

	parts.Currency = currency
	labor.Currency = currency
	fees.Currency = currency

	cb.PartsTotal = parts
	cb.LaborTotal = labor
	cb.FeesTotal = fees
	cb.TotalEstimate = CostAggregate{
		Min:      parts.Min + labor.Min + fees.Min,
		Max:      parts.Max + labor.Max + fees.Max,
		Expected: parts.Expected + labor.Expected + fees.Expected,
		Currency: currency,
	}
}

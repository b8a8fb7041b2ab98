package telegram

import (
	"fmt"
	"strings"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/assessment"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

// FormatOutcome renders a pipeline outcome as a Markdown chat message.
func FormatOutcome(out *pipeline.Outcome) string {
	var b strings.Builder

	if out.Warning != nil {
		b.WriteString("⚠️ *WARNING*: ")
		b.WriteString(*out.Warning)
		b.WriteString("\n\n")
	}
	if out.Status == pipeline.StatusWithheld || out.Assessment == nil {
		b.WriteString("The assessment was withheld. ")
		b.WriteString(out.Message)
		return b.String()
	}

	a, ok := out.Assessment.(*assessment.DamageAssessment)
	if !ok {
		b.WriteString("Assessment complete.")
		return b.String()
	}
	b.WriteString(formatAssessment(a))
	return b.String()
}

func formatAssessment(a *assessment.DamageAssessment) string {
	var b strings.Builder

	vi := a.VehicleInfo
	b.WriteString("🚗 *VEHICLE DETAILS*\n")
	fmt.Fprintf(&b, "Make: %s (%.0f%%)\n", orUnknown(vi.Make), float64(vi.MakeCertainty)*100)
	fmt.Fprintf(&b, "Model: %s (%.0f%%)\n", orUnknown(vi.Model), float64(vi.ModelCertainty)*100)
	fmt.Fprintf(&b, "Year: %s\n", orUnknown(vi.Year))
	fmt.Fprintf(&b, "Color: %s\n", orUnknown(vi.Color))

	b.WriteString("\n🔧 *DAMAGE ASSESSMENT*\n")
	if len(a.DamageData.DamagedParts) == 0 {
		b.WriteString("No visible damage detected.\n")
	}
	for i, part := range a.DamageData.DamagedParts {
		fmt.Fprintf(&b, "%d. %s: %s %s\n", i+1, orUnknown(part.Part), part.Severity, orUnknown(part.DamageType))
		if part.RepairAction != "" {
			fmt.Fprintf(&b, "   Repair action: %s\n", part.RepairAction)
		}
	}

	cb := a.DamageData.CostBreakdown
	est := cb.TotalEstimate
	b.WriteString("\n💰 *COST ESTIMATE*\n")
	fmt.Fprintf(&b, "Parts: %.2f\n", float64(cb.PartsTotal.Expected))
	fmt.Fprintf(&b, "Labor: %.2f\n", float64(cb.LaborTotal.Expected))
	fmt.Fprintf(&b, "Fees: %.2f\n", float64(cb.FeesTotal.Expected))
	fmt.Fprintf(&b, "Total: %.2f %s\n", float64(est.Expected), est.Currency)
	fmt.Fprintf(&b, "Range: %.2f-%.2f %s", float64(est.Min), float64(est.Max), est.Currency)

	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

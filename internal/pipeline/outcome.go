package pipeline

import "github.com/karthik1609/car-insurance-claims-ai-agent/internal/fraud"

// Status describes how the request ended. A withheld outcome is still a
// successful request: the caller gets an explanation instead of a record.
type Status string

const (
	StatusDelivered            Status = "delivered"
	StatusDeliveredWithWarning Status = "delivered_with_warning"
	StatusWithheld             Status = "withheld"
)

// Outcome is the pipeline result for one claim image.
type Outcome struct {
	Status  Status  `json:"status"`
	Message string  `json:"message,omitempty"`
	Warning *string `json:"warning,omitempty"`

	// Fraud carries the full verdict when the tamper check ran and fired.
	Fraud *fraud.Verdict `json:"fraud,omitempty"`

	// Assessment is a *assessment.DamageAssessment or one of the report
	// records depending on the requested task; nil when withheld.
	Assessment any `json:"assessment"`
}

package domain

const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// ComplianceFlag is a regulatory follow-up surfaced on the dashboard.
type ComplianceFlag struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Severity    string  `json:"severity"`
	Status      string  `json:"status"`
}

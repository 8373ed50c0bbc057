package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finxpert/advisor-api/internal/domain"
)

func TestSummarizeFlags(t *testing.T) {
	flags := []domain.ComplianceFlag{
		{ID: "f-1", Severity: domain.SeverityHigh, Status: "OPEN"},
		{ID: "f-2", Severity: domain.SeverityHigh, Status: "RESOLVED"},
		{ID: "f-3", Severity: domain.SeverityMedium, Status: "OPEN"},
		{ID: "f-4", Severity: domain.SeverityLow, Status: "OPEN"},
	}

	summary := summarizeFlags(flags)

	assert.Equal(t, 4, summary["total_flags"])
	assert.Equal(t, 3, summary["open_flags"])
	assert.Equal(t, 1, summary["open_high"])
	assert.Equal(t, 1, summary["open_medium"])
	assert.Equal(t, 1, summary["open_low"])
}

func TestSummarizeFlagsEmpty(t *testing.T) {
	summary := summarizeFlags(nil)

	assert.Equal(t, 0, summary["total_flags"])
	assert.Equal(t, 0, summary["open_flags"])
}

package portfolio

import (
	"context"

	"github.com/finxpert/advisor-api/internal/domain"
)

// InsightRunner produces the agent insight embedded in the dashboard.
type InsightRunner interface {
	RunAgent(ctx context.Context, prompt string) (*domain.AgentResponse, error)
}

// Aggregator builds the per-client and dashboard aggregations.
type Aggregator interface {
	// ClientPortfolio returns nil when the client cannot be resolved from
	// either the backing store or the static fallback table.
	ClientPortfolio(ctx context.Context, clientID string) (*domain.ClientPortfolio, error)

	// CampaignTemplates lists the advisor's templates, substituting the
	// mock list when the store is absent or failing.
	CampaignTemplates(ctx context.Context) ([]domain.CampaignTemplate, error)

	// ComplianceFlags lists regulatory follow-ups, mock-backed like
	// CampaignTemplates.
	ComplianceFlags(ctx context.Context) ([]domain.ComplianceFlag, error)

	// Dashboard assembles the landing-page aggregate in one fan-out.
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

package adapters

import (
	"context"

	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
)

// positionSource reads holdings of one type from the backing store, scoped
// to the advisor carried by the context. A nil repository means the store
// is not configured and the source always falls through.
type positionSource struct {
	repo        repository.PositionRepository
	productType domain.ProductType
}

func (s positionSource) Name() string {
	return ""
}

func (s positionSource) Fetch(ctx context.Context) ([]domain.ProductSnapshot, error) {
	if s.repo == nil {
		return nil, errors.New("backing store not configured")
	}

	return s.repo.ListByType(ctx, advisor.FromContext(ctx), s.productType)
}

// alternativeSource reads AIF holdings from the backing store.
type alternativeSource struct {
	repo repository.PositionRepository
}

func (s alternativeSource) Name() string {
	return ""
}

func (s alternativeSource) Fetch(ctx context.Context) ([]domain.ProductSnapshot, error) {
	if s.repo == nil {
		return nil, errors.New("backing store not configured")
	}

	return s.repo.ListAlternative(ctx, advisor.FromContext(ctx))
}

// policyProvider matches the insurance integrator clients.
type policyProvider interface {
	Configured() bool
	FetchPolicies(ctx context.Context) ([]domain.ProductSnapshot, error)
}

// providerSource polls an external insurance provider API.
type providerSource struct {
	name     string
	provider policyProvider
}

func (s providerSource) Name() string {
	return s.name
}

func (s providerSource) Fetch(ctx context.Context) ([]domain.ProductSnapshot, error) {
	if s.provider == nil || !s.provider.Configured() {
		return nil, errors.Errorf("%s provider credentials not configured", s.name)
	}

	return s.provider.FetchPolicies(ctx)
}

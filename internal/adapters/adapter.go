// Package adapters produces normalized holdings per product type. Each
// adapter polls an ordered chain of sources and the first one returning a
// non-empty list wins; when every source fails or comes back empty the
// adapter degrades to its fixed mock list. An empty live result is treated
// exactly like a failed one, so a legitimately empty account and a
// misconfigured integration both land on mock data; only the warning log
// tells them apart.
package adapters

import (
	"context"
	"time"

	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

// Source is one place holdings can come from: a provider API or the
// backing store. Name is appended to the adapter name when the source wins;
// the default store uses the empty name.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.ProductSnapshot, error)
}

// Fetcher is the adapter contract consumed by the aggregation layer.
type Fetcher interface {
	Fetch(ctx context.Context) domain.AdapterResult
}

// Adapter tries its sources in priority order and never fails: exhaustion
// degrades to the mock list after a small artificial delay that stands in
// for provider latency.
type Adapter struct {
	name      string
	sources   []Source
	mock      []domain.ProductSnapshot
	mockDelay time.Duration
}

func New(name string, sources []Source, mock []domain.ProductSnapshot, mockDelay time.Duration) *Adapter {
	return &Adapter{
		name:      name,
		sources:   sources,
		mock:      mock,
		mockDelay: mockDelay,
	}
}

func (a *Adapter) Fetch(ctx context.Context) domain.AdapterResult {
	logger := log.ForContext(ctx)

	for _, source := range a.sources {
		data, err := source.Fetch(ctx)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"adapter": a.name,
				"source":  source.Name(),
			}).Warn("adapter source failed, trying next")
			continue
		}

		if len(data) == 0 {
			continue
		}

		name := a.name
		if source.Name() != "" {
			name = a.name + "-" + source.Name()
		}

		return domain.AdapterResult{
			Adapter:   name,
			Data:      data,
			FetchedAt: time.Now().UTC(),
		}
	}

	logger.WithField("adapter", a.name).
		Warn("all adapter sources exhausted, falling back to mock data")

	time.Sleep(a.mockDelay)

	return domain.AdapterResult{
		Adapter:   a.name,
		Data:      a.mock,
		FetchedAt: time.Now().UTC(),
	}
}

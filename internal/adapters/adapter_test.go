package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

type stubSource struct {
	name string
	data []domain.ProductSnapshot
	err  error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(_ context.Context) ([]domain.ProductSnapshot, error) {
	return s.data, s.err
}

func snapshot(clientID, code string) domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ClientID:       clientID,
		ProductCode:    code,
		ProductName:    "Test Product",
		Type:           domain.ProductTypeMutualFund,
		AmountInvested: 1000,
		CurrentValue:   1100,
	}
}

func TestAdapterFetch(t *testing.T) {
	log.SetupTestLogger()

	live := []domain.ProductSnapshot{snapshot("CLT-001", "MF-X-01")}
	secondary := []domain.ProductSnapshot{snapshot("CLT-002", "MF-Y-02")}
	mock := []domain.ProductSnapshot{snapshot("CLT-009", "MF-MOCK-01")}

	tests := []struct {
		name        string
		sources     []Source
		wantAdapter string
		wantData    []domain.ProductSnapshot
	}{
		{
			name:        "first source wins",
			sources:     []Source{stubSource{data: live}, stubSource{data: secondary}},
			wantAdapter: "testAdapter",
			wantData:    live,
		},
		{
			name: "failed source falls through to the next",
			sources: []Source{
				stubSource{name: "setu", err: errors.New("timeout")},
				stubSource{data: secondary},
			},
			wantAdapter: "testAdapter",
			wantData:    secondary,
		},
		{
			name: "empty result is treated like a failure",
			sources: []Source{
				stubSource{data: []domain.ProductSnapshot{}},
				stubSource{data: secondary},
			},
			wantAdapter: "testAdapter",
			wantData:    secondary,
		},
		{
			name: "winning named source suffixes the adapter name",
			sources: []Source{
				stubSource{name: "setu", data: live},
			},
			wantAdapter: "testAdapter-setu",
			wantData:    live,
		},
		{
			name: "exhausted chain degrades to mock data",
			sources: []Source{
				stubSource{err: errors.New("store down")},
				stubSource{name: "setu", err: errors.New("no credentials")},
			},
			wantAdapter: "testAdapter",
			wantData:    mock,
		},
		{
			name:        "no sources at all degrades to mock data",
			sources:     nil,
			wantAdapter: "testAdapter",
			wantData:    mock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := New("testAdapter", tt.sources, mock, time.Millisecond)

			before := time.Now().UTC()
			result := adapter.Fetch(context.Background())

			assert.Equal(t, tt.wantAdapter, result.Adapter)
			assert.Equal(t, tt.wantData, result.Data)
			assert.False(t, result.FetchedAt.Before(before))
		})
	}
}

func TestCatalogNames(t *testing.T) {
	log.SetupTestLogger()

	// With no store and no providers configured every adapter serves its
	// mock list under its plain name.
	tests := []struct {
		adapter  *Adapter
		wantName string
		wantData []domain.ProductSnapshot
	}{
		{NewMutualFundAdapter(nil), "mutualFundAdapter", mockMutualFunds},
		{NewLoanAdapter(nil), "loanAdapter", mockLoans},
		{NewAIFAdapter(nil), "aifAdapter", mockAIF},
	}

	for _, tt := range tests {
		result := tt.adapter.Fetch(context.Background())
		assert.Equal(t, tt.wantName, result.Adapter)
		assert.Equal(t, tt.wantData, result.Data)
	}
}

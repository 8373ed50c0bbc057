package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finxpert/advisor-api/infrastructure/repository/mocks"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

type stubFetcher struct {
	name string
	data []domain.ProductSnapshot
}

func (f stubFetcher) Fetch(_ context.Context) domain.AdapterResult {
	return domain.AdapterResult{
		Adapter:   f.name,
		Data:      f.data,
		FetchedAt: time.Now().UTC(),
	}
}

func testContext() context.Context {
	return advisor.NewContext(context.Background(), "ADV-001", "TEN-001")
}

func TestClientPortfolioAggregation(t *testing.T) {
	log.SetupTestLogger()

	mutualFunds := stubFetcher{name: "mutualFundAdapter", data: []domain.ProductSnapshot{
		{ClientID: "CLT-001", ProductCode: "MF-A", Type: domain.ProductTypeMutualFund, AmountInvested: 100000, CurrentValue: 110000},
		{ClientID: "CLT-002", ProductCode: "MF-B", Type: domain.ProductTypeMutualFund, AmountInvested: 50000, CurrentValue: 51000},
		{ClientID: "CLT-001", ProductCode: "MF-C", Type: domain.ProductTypeMutualFund, AmountInvested: 20000, CurrentValue: 19000},
	}}
	loans := stubFetcher{name: "loanAdapter", data: []domain.ProductSnapshot{
		{ClientID: "CLT-001", ProductCode: "LOAN-A", Type: domain.ProductTypeLoan, AmountInvested: 0, CurrentValue: -850000},
	}}

	service := NewService(mutualFunds, loans, nil, nil, nil, nil, nil, nil)

	result, err := service.ClientPortfolio(testContext(), "CLT-001")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Riya Malhotra", result.Client.Name)
	assert.Len(t, result.Positions, 3)

	// Exposure equals the sums over the filtered positions.
	assert.Equal(t, 120000.0, result.Exposure.Invested)
	assert.Equal(t, -721000.0, result.Exposure.Current)

	// Mix keeps first-encounter order and its counts sum to len(positions).
	require.Len(t, result.ProductMix, 2)
	assert.Equal(t, domain.ProductMixEntry{Type: domain.ProductTypeMutualFund, Count: 2}, result.ProductMix[0])
	assert.Equal(t, domain.ProductMixEntry{Type: domain.ProductTypeLoan, Count: 1}, result.ProductMix[1])
}

func TestClientPortfolioResolution(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empty := stubFetcher{}

	t.Run("unknown client without store resolves to nil", func(t *testing.T) {
		service := NewService(empty, empty, nil, nil, nil, nil, nil, nil)

		result, err := service.ClientPortfolio(testContext(), "CLT-999")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("store row wins over the fallback table", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		clientRepo.EXPECT().
			GetClient(gomock.Any(), "ADV-001", "CLT-001").
			Return(&domain.ClientProfile{ID: "CLT-001", Name: "Riya M.", Segment: "HNI"}, nil)

		service := NewService(empty, empty, nil, nil, clientRepo, nil, nil, nil)

		result, err := service.ClientPortfolio(testContext(), "CLT-001")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Riya M.", result.Client.Name)
	})

	t.Run("store error degrades to the fallback table", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		clientRepo.EXPECT().
			GetClient(gomock.Any(), "ADV-001", "CLT-002").
			Return(nil, errors.New("connection refused"))

		service := NewService(empty, empty, nil, nil, clientRepo, nil, nil, nil)

		result, err := service.ClientPortfolio(testContext(), "CLT-002")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Arjun Sinha", result.Client.Name)
	})
}

func TestCampaignTemplates(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("no store serves the mock list", func(t *testing.T) {
		service := NewService(nil, nil, nil, nil, nil, nil, nil, nil)

		templates, err := service.CampaignTemplates(testContext())
		require.NoError(t, err)
		assert.Equal(t, mockCampaignTemplates, templates)
	})

	t.Run("query failure serves the mock list", func(t *testing.T) {
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().
			ListTemplates(gomock.Any(), "ADV-001").
			Return(nil, errors.New("relation does not exist"))

		service := NewService(nil, nil, nil, nil, nil, campaignRepo, nil, nil)

		templates, err := service.CampaignTemplates(testContext())
		require.NoError(t, err)
		assert.Equal(t, mockCampaignTemplates, templates)
	})

	t.Run("store rows pass through", func(t *testing.T) {
		stored := []domain.CampaignTemplate{{ID: "tmpl-1", Channel: domain.ChannelEmail, Title: "Quarterly review"}}
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().
			ListTemplates(gomock.Any(), "ADV-001").
			Return(stored, nil)

		service := NewService(nil, nil, nil, nil, nil, campaignRepo, nil, nil)

		templates, err := service.CampaignTemplates(testContext())
		require.NoError(t, err)
		assert.Equal(t, stored, templates)
	})
}

func TestComplianceFlags(t *testing.T) {
	log.SetupTestLogger()

	service := NewService(nil, nil, nil, nil, nil, nil, nil, nil)

	flags, err := service.ComplianceFlags(testContext())
	require.NoError(t, err)
	assert.Equal(t, mockComplianceFlags, flags)
}

type stubInsight struct{}

func (stubInsight) RunAgent(_ context.Context, prompt string) (*domain.AgentResponse, error) {
	return &domain.AgentResponse{Summary: "summary for " + prompt}, nil
}

func TestDashboard(t *testing.T) {
	log.SetupTestLogger()

	mf := stubFetcher{name: "mutualFundAdapter"}
	loan := stubFetcher{name: "loanAdapter"}
	insurance := stubFetcher{name: "insuranceAdapter"}
	aif := stubFetcher{name: "aifAdapter"}

	service := NewService(mf, loan, insurance, aif, nil, nil, nil, stubInsight{})

	dashboard, err := service.Dashboard(testContext())
	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, "summary for "+dashboardPrompt, dashboard.Agent.Summary)
	require.Len(t, dashboard.Holdings, 4)
	assert.Equal(t, "mutualFundAdapter", dashboard.Holdings[0].Adapter)
	assert.Equal(t, "aifAdapter", dashboard.Holdings[3].Adapter)
	assert.Equal(t, mockCampaignTemplates, dashboard.CampaignTemplates)
	assert.Equal(t, mockComplianceFlags, dashboard.ComplianceFlags)
	assert.Equal(t, clientFocus, dashboard.ClientFocus)
}

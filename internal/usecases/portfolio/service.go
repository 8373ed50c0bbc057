package portfolio

import (
	"context"
	"sync"

	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/adapters"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

const dashboardPrompt = "Surface the most urgent advisor actions for today."

type Service struct {
	mutualFundAdapter    adapters.Fetcher
	loanAdapter          adapters.Fetcher
	insuranceAdapter     adapters.Fetcher
	aifAdapter           adapters.Fetcher
	clientRepository     repository.ClientRepository
	campaignRepository   repository.CampaignRepository
	complianceRepository repository.ComplianceRepository
	insight              InsightRunner
}

func NewService(
	mutualFundAdapter adapters.Fetcher,
	loanAdapter adapters.Fetcher,
	insuranceAdapter adapters.Fetcher,
	aifAdapter adapters.Fetcher,
	clientRepo repository.ClientRepository,
	campaignRepo repository.CampaignRepository,
	complianceRepo repository.ComplianceRepository,
	insight InsightRunner,
) Aggregator {
	return &Service{
		mutualFundAdapter:    mutualFundAdapter,
		loanAdapter:          loanAdapter,
		insuranceAdapter:     insuranceAdapter,
		aifAdapter:           aifAdapter,
		clientRepository:     clientRepo,
		campaignRepository:   campaignRepo,
		complianceRepository: complianceRepo,
		insight:              insight,
	}
}

// ClientPortfolio resolves the client profile, fetches mutual fund and loan
// holdings in parallel and folds them into exposure totals and a product
// mix histogram. Mix entries keep the order types are first encountered in.
func (s *Service) ClientPortfolio(ctx context.Context, clientID string) (*domain.ClientPortfolio, error) {
	profile := s.resolveClient(ctx, clientID)
	if profile == nil {
		return nil, nil
	}

	var (
		wg          sync.WaitGroup
		mutualFunds domain.AdapterResult
		loans       domain.AdapterResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		mutualFunds = s.mutualFundAdapter.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		loans = s.loanAdapter.Fetch(ctx)
	}()
	wg.Wait()

	positions := make([]domain.ProductSnapshot, 0, len(mutualFunds.Data)+len(loans.Data))
	for _, position := range append(mutualFunds.Data, loans.Data...) {
		if position.ClientID == clientID {
			positions = append(positions, position)
		}
	}

	exposure := domain.Exposure{}
	mixIndex := map[domain.ProductType]int{}
	productMix := []domain.ProductMixEntry{}

	for _, position := range positions {
		exposure.Invested += position.AmountInvested
		exposure.Current += position.CurrentValue

		if i, seen := mixIndex[position.Type]; seen {
			productMix[i].Count++
			continue
		}
		mixIndex[position.Type] = len(productMix)
		productMix = append(productMix, domain.ProductMixEntry{Type: position.Type, Count: 1})
	}

	return &domain.ClientPortfolio{
		Client:     *profile,
		Positions:  positions,
		Exposure:   exposure,
		ProductMix: productMix,
	}, nil
}

func (s *Service) CampaignTemplates(ctx context.Context) ([]domain.CampaignTemplate, error) {
	if s.campaignRepository == nil {
		return mockCampaignTemplates, nil
	}

	templates, err := s.campaignRepository.ListTemplates(ctx, advisor.FromContext(ctx))
	if err != nil {
		log.ForContext(ctx).WithError(err).
			Warn("campaign_templates query failed, returning mock data")
		return mockCampaignTemplates, nil
	}

	return templates, nil
}

func (s *Service) ComplianceFlags(ctx context.Context) ([]domain.ComplianceFlag, error) {
	if s.complianceRepository == nil {
		return mockComplianceFlags, nil
	}

	flags, err := s.complianceRepository.ListFlags(ctx, advisor.FromContext(ctx))
	if err != nil {
		log.ForContext(ctx).WithError(err).
			Warn("compliance_flags query failed, returning mock data")
		return mockComplianceFlags, nil
	}

	return flags, nil
}

// Dashboard fans out the agent run, all four adapters, templates and flags
// concurrently and assembles the landing-page payload.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		wg        sync.WaitGroup
		agent     *domain.AgentResponse
		agentErr  error
		holdings  = make([]domain.AdapterResult, 4)
		templates []domain.CampaignTemplate
		flags     []domain.ComplianceFlag
	)

	wg.Add(7)
	go func() {
		defer wg.Done()
		agent, agentErr = s.insight.RunAgent(ctx, dashboardPrompt)
	}()
	for i, fetcher := range []adapters.Fetcher{
		s.mutualFundAdapter,
		s.loanAdapter,
		s.insuranceAdapter,
		s.aifAdapter,
	} {
		go func(i int, fetcher adapters.Fetcher) {
			defer wg.Done()
			holdings[i] = fetcher.Fetch(ctx)
		}(i, fetcher)
	}
	go func() {
		defer wg.Done()
		templates, _ = s.CampaignTemplates(ctx)
	}()
	go func() {
		defer wg.Done()
		flags, _ = s.ComplianceFlags(ctx)
	}()
	wg.Wait()

	if agentErr != nil {
		return nil, agentErr
	}

	return &domain.Dashboard{
		Agent:             *agent,
		Holdings:          holdings,
		CampaignTemplates: templates,
		ComplianceFlags:   flags,
		ClientFocus:       clientFocus,
	}, nil
}

// resolveClient tries the backing store first and the static fallback table
// second. Store errors downgrade to the fallback with a warning.
func (s *Service) resolveClient(ctx context.Context, clientID string) *domain.ClientProfile {
	if s.clientRepository != nil {
		profile, err := s.clientRepository.GetClient(ctx, advisor.FromContext(ctx), clientID)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("clientID", clientID).
				Warn("failed to fetch client profile")
		} else if profile != nil {
			return profile
		}
	}

	if fallback, ok := fallbackClients[clientID]; ok {
		return &fallback
	}

	return nil
}

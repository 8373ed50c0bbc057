package adapters

import (
	"time"

	"github.com/finxpert/advisor-api/infrastructure/integrator/icicipru"
	"github.com/finxpert/advisor-api/infrastructure/integrator/setu"
	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/domain"
)

const (
	mutualFundAdapterName = "mutualFundAdapter"
	loanAdapterName       = "loanAdapter"
	insuranceAdapterName  = "insuranceAdapter"
	aifAdapterName        = "aifAdapter"
)

func NewMutualFundAdapter(repo repository.PositionRepository) *Adapter {
	return New(
		mutualFundAdapterName,
		[]Source{positionSource{repo: repo, productType: domain.ProductTypeMutualFund}},
		mockMutualFunds,
		50*time.Millisecond,
	)
}

func NewLoanAdapter(repo repository.PositionRepository) *Adapter {
	return New(
		loanAdapterName,
		[]Source{positionSource{repo: repo, productType: domain.ProductTypeLoan}},
		mockLoans,
		30*time.Millisecond,
	)
}

// NewInsuranceAdapter polls Setu first, ICICI Prudential second and the
// backing store last.
func NewInsuranceAdapter(setuClient setu.Client, iciciClient icicipru.Client, repo repository.PositionRepository) *Adapter {
	return New(
		insuranceAdapterName,
		[]Source{
			providerSource{name: "setu", provider: setuClient},
			providerSource{name: "icici", provider: iciciClient},
			positionSource{repo: repo, productType: domain.ProductTypeInsurance},
		},
		mockInsurance,
		50*time.Millisecond,
	)
}

func NewAIFAdapter(repo repository.PositionRepository) *Adapter {
	return New(
		aifAdapterName,
		[]Source{alternativeSource{repo: repo}},
		mockAIF,
		50*time.Millisecond,
	)
}

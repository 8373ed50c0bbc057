// Package transacting executes mutual fund and loan transactions against
// partner APIs and records every completed one in the append-only
// transactions table. There is no idempotency key: resubmitting the same
// request books a second transaction.
package transacting

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/integrator/bsestar"
	"github.com/finxpert/advisor-api/infrastructure/integrator/loanpartner"
	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

// MutualFundRequest is the fixed schema for BSE Star transactions.
type MutualFundRequest struct {
	ClientID        string  `json:"clientId" validate:"required"`
	ProductCode     string  `json:"productCode" validate:"required"`
	TransactionType string  `json:"transactionType" validate:"required,oneof=PURCHASE REDEMPTION SWITCH"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	FolioNumber     string  `json:"folioNumber,omitempty"`
}

// LoanRequest is the fixed schema for loan partner transactions.
type LoanRequest struct {
	ClientID        string  `json:"clientId" validate:"required"`
	LoanProductCode string  `json:"loanProductCode" validate:"required"`
	TransactionType string  `json:"transactionType" validate:"required,oneof=DISBURSEMENT REPAYMENT PREPAYMENT"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// Executor runs partner transactions on behalf of the advisor.
type Executor interface {
	ExecuteMutualFund(ctx context.Context, request MutualFundRequest) (*domain.TransactionResult, error)
	ExecuteLoan(ctx context.Context, request LoanRequest) (*domain.TransactionResult, error)
}

type Service struct {
	clientRepository      repository.ClientRepository
	transactionRepository repository.TransactionRepository
	bseStar               bsestar.Client
	loanPartner           loanpartner.Client
	validate              *validator.Validate
}

func NewService(
	clientRepo repository.ClientRepository,
	transactionRepo repository.TransactionRepository,
	bseStarClient bsestar.Client,
	loanPartnerClient loanpartner.Client,
) Executor {
	return &Service{
		clientRepository:      clientRepo,
		transactionRepository: transactionRepo,
		bseStar:               bseStarClient,
		loanPartner:           loanPartnerClient,
		validate:              validator.New(),
	}
}

// ExecuteMutualFund settles a purchase, redemption or switch through BSE
// Star. Steps run in a fixed order and the first failure short-circuits;
// in particular the partner is never called for an invalid payload or a
// client the advisor does not own.
func (s *Service) ExecuteMutualFund(ctx context.Context, request MutualFundRequest) (*domain.TransactionResult, error) {
	if s.clientRepository == nil || s.transactionRepository == nil {
		return nil, ErrDatabaseNotConfigured
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if err := s.verifyOwnership(ctx, request.ClientID); err != nil {
		return nil, err
	}

	if !s.bseStar.Configured() {
		return nil, errors.Wrap(ErrPartnerNotConfigured, "BSE Star API")
	}

	response, err := s.bseStar.ExecuteTransaction(ctx, bsestar.TransactionRequest{
		ClientID:        request.ClientID,
		SchemeCode:      request.ProductCode,
		TransactionType: request.TransactionType,
		Amount:          request.Amount,
		FolioNumber:     request.FolioNumber,
	})
	if err != nil {
		return nil, err
	}

	s.recordTransaction(ctx, domain.Transaction{
		ClientID:              request.ClientID,
		ProductCode:           request.ProductCode,
		TransactionType:       request.TransactionType,
		Amount:                request.Amount,
		Status:                domain.TxStatusCompleted,
		ExternalTransactionID: response.TransactionID,
		Metadata:              response.Raw,
	})

	return &domain.TransactionResult{
		TransactionID: response.TransactionID,
		Status:        domain.TxStatusCompleted,
	}, nil
}

// ExecuteLoan runs a disbursement, repayment or prepayment through the
// lending partner. Same step order as ExecuteMutualFund.
func (s *Service) ExecuteLoan(ctx context.Context, request LoanRequest) (*domain.TransactionResult, error) {
	if s.clientRepository == nil || s.transactionRepository == nil {
		return nil, ErrDatabaseNotConfigured
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if err := s.verifyOwnership(ctx, request.ClientID); err != nil {
		return nil, err
	}

	if !s.loanPartner.Configured() {
		return nil, errors.Wrap(ErrPartnerNotConfigured, "loan partner API")
	}

	response, err := s.loanPartner.ExecuteTransaction(ctx, loanpartner.TransactionRequest{
		ClientID:        request.ClientID,
		LoanProductCode: request.LoanProductCode,
		TransactionType: request.TransactionType,
		Amount:          request.Amount,
	})
	if err != nil {
		return nil, err
	}

	s.recordTransaction(ctx, domain.Transaction{
		ClientID:              request.ClientID,
		ProductCode:           request.LoanProductCode,
		TransactionType:       request.TransactionType,
		Amount:                request.Amount,
		Status:                domain.TxStatusCompleted,
		ExternalTransactionID: response.TransactionID,
		Metadata:              response.Raw,
	})

	return &domain.TransactionResult{
		TransactionID: response.TransactionID,
		Status:        domain.TxStatusCompleted,
	}, nil
}

func (s *Service) verifyOwnership(ctx context.Context, clientID string) error {
	client, err := s.clientRepository.GetClient(ctx, advisor.FromContext(ctx), clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	return nil
}

// recordTransaction appends the completed transaction. A failed append is
// logged but does not undo the partner call, which already settled.
func (s *Service) recordTransaction(ctx context.Context, transaction domain.Transaction) {
	transaction.AdvisorID = advisor.FromContext(ctx)
	transaction.CreatedAt = time.Now().UTC()

	if _, err := s.transactionRepository.Append(ctx, transaction); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"clientID":              transaction.ClientID,
			"externalTransactionID": transaction.ExternalTransactionID,
		}).Error("failed to record completed transaction")
	}
}

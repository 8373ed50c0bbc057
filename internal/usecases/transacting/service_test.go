package transacting

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finxpert/advisor-api/infrastructure/integrator"
	"github.com/finxpert/advisor-api/infrastructure/integrator/bsestar"
	bsestarmocks "github.com/finxpert/advisor-api/infrastructure/integrator/bsestar/mocks"
	"github.com/finxpert/advisor-api/infrastructure/integrator/loanpartner"
	loanpartnermocks "github.com/finxpert/advisor-api/infrastructure/integrator/loanpartner/mocks"
	"github.com/finxpert/advisor-api/infrastructure/repository/mocks"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

func testContext() context.Context {
	return advisor.NewContext(context.Background(), "ADV-001", "TEN-001")
}

func ownedClient(repo *mocks.MockClientRepository, clientID string) {
	repo.EXPECT().
		GetClient(gomock.Any(), "ADV-001", clientID).
		Return(&domain.ClientProfile{ID: clientID, Name: "Riya Malhotra"}, nil)
}

func TestExecuteMutualFund(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validRequest := MutualFundRequest{
		ClientID:        "CLT-001",
		ProductCode:     "MF-BAL-01",
		TransactionType: domain.TxPurchase,
		Amount:          25000,
		FolioNumber:     "FOLIO-9",
	}

	t.Run("completed transaction is recorded", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		ownedClient(clientRepo, "CLT-001")

		bseClient := bsestarmocks.NewMockClient(ctrl)
		bseClient.EXPECT().Configured().Return(true)
		bseClient.EXPECT().
			ExecuteTransaction(gomock.Any(), bsestar.TransactionRequest{
				ClientID:        "CLT-001",
				SchemeCode:      "MF-BAL-01",
				TransactionType: domain.TxPurchase,
				Amount:          25000,
				FolioNumber:     "FOLIO-9",
			}).
			Return(&bsestar.TransactionResponse{
				TransactionID: "BSE-42",
				Raw:           map[string]any{"transaction_id": "BSE-42", "order_status": "OK"},
			}, nil)

		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		transactionRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transaction domain.Transaction) (string, error) {
				assert.Equal(t, "CLT-001", transaction.ClientID)
				assert.Equal(t, "ADV-001", transaction.AdvisorID)
				assert.Equal(t, domain.TxStatusCompleted, transaction.Status)
				assert.Equal(t, "BSE-42", transaction.ExternalTransactionID)
				assert.Equal(t, "OK", transaction.Metadata["order_status"])
				return "tx-1", nil
			})

		service := NewService(clientRepo, transactionRepo, bseClient, nil)

		result, err := service.ExecuteMutualFund(testContext(), validRequest)
		require.NoError(t, err)
		assert.Equal(t, &domain.TransactionResult{TransactionID: "BSE-42", Status: domain.TxStatusCompleted}, result)
	})

	t.Run("non-positive amount is rejected before any partner call", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		bseClient := bsestarmocks.NewMockClient(ctrl)

		service := NewService(clientRepo, transactionRepo, bseClient, nil)

		request := validRequest
		request.Amount = -100

		_, err := service.ExecuteMutualFund(testContext(), request)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("unknown transaction type is rejected", func(t *testing.T) {
		service := NewService(mocks.NewMockClientRepository(ctrl), mocks.NewMockTransactionRepository(ctrl), bsestarmocks.NewMockClient(ctrl), nil)

		request := validRequest
		request.TransactionType = "TRANSFER"

		_, err := service.ExecuteMutualFund(testContext(), request)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("foreign client yields not found and no partner call", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		clientRepo.EXPECT().
			GetClient(gomock.Any(), "ADV-001", "CLT-001").
			Return(nil, nil)

		service := NewService(clientRepo, mocks.NewMockTransactionRepository(ctrl), bsestarmocks.NewMockClient(ctrl), nil)

		_, err := service.ExecuteMutualFund(testContext(), validRequest)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("missing partner key is a configuration error", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		ownedClient(clientRepo, "CLT-001")

		bseClient := bsestarmocks.NewMockClient(ctrl)
		bseClient.EXPECT().Configured().Return(false)

		service := NewService(clientRepo, mocks.NewMockTransactionRepository(ctrl), bseClient, nil)

		_, err := service.ExecuteMutualFund(testContext(), validRequest)
		assert.ErrorIs(t, err, ErrPartnerNotConfigured)
	})

	t.Run("partner rejection is forwarded and nothing is recorded", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		ownedClient(clientRepo, "CLT-001")

		partnerErr := &integrator.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "scheme suspended"}

		bseClient := bsestarmocks.NewMockClient(ctrl)
		bseClient.EXPECT().Configured().Return(true)
		bseClient.EXPECT().ExecuteTransaction(gomock.Any(), gomock.Any()).Return(nil, partnerErr)

		service := NewService(clientRepo, mocks.NewMockTransactionRepository(ctrl), bseClient, nil)

		_, err := service.ExecuteMutualFund(testContext(), validRequest)

		var apiErr *integrator.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "scheme suspended", apiErr.Message)
	})

	t.Run("no backing store is a configuration error", func(t *testing.T) {
		service := NewService(nil, nil, bsestarmocks.NewMockClient(ctrl), nil)

		_, err := service.ExecuteMutualFund(testContext(), validRequest)
		assert.ErrorIs(t, err, ErrDatabaseNotConfigured)
	})
}

func TestExecuteLoan(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validRequest := LoanRequest{
		ClientID:        "CLT-003",
		LoanProductCode: "LOAN-HL-01",
		TransactionType: domain.TxPrepayment,
		Amount:          150000,
	}

	t.Run("completed transaction is recorded", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		ownedClient(clientRepo, "CLT-003")

		loanClient := loanpartnermocks.NewMockClient(ctrl)
		loanClient.EXPECT().Configured().Return(true)
		loanClient.EXPECT().
			ExecuteTransaction(gomock.Any(), loanpartner.TransactionRequest{
				ClientID:        "CLT-003",
				LoanProductCode: "LOAN-HL-01",
				TransactionType: domain.TxPrepayment,
				Amount:          150000,
			}).
			Return(&loanpartner.TransactionResponse{TransactionID: "LP-77", Raw: map[string]any{"transaction_id": "LP-77"}}, nil)

		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		transactionRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transaction domain.Transaction) (string, error) {
				assert.Equal(t, "LOAN-HL-01", transaction.ProductCode)
				assert.Equal(t, domain.TxPrepayment, transaction.TransactionType)
				return "tx-2", nil
			})

		service := NewService(clientRepo, transactionRepo, nil, loanClient)

		result, err := service.ExecuteLoan(testContext(), validRequest)
		require.NoError(t, err)
		assert.Equal(t, "LP-77", result.TransactionID)
		assert.Equal(t, domain.TxStatusCompleted, result.Status)
	})

	t.Run("mutual fund enum is not accepted for loans", func(t *testing.T) {
		service := NewService(mocks.NewMockClientRepository(ctrl), mocks.NewMockTransactionRepository(ctrl), nil, loanpartnermocks.NewMockClient(ctrl))

		request := validRequest
		request.TransactionType = domain.TxPurchase

		_, err := service.ExecuteLoan(testContext(), request)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("record failure does not fail the settled transaction", func(t *testing.T) {
		clientRepo := mocks.NewMockClientRepository(ctrl)
		ownedClient(clientRepo, "CLT-003")

		loanClient := loanpartnermocks.NewMockClient(ctrl)
		loanClient.EXPECT().Configured().Return(true)
		loanClient.EXPECT().
			ExecuteTransaction(gomock.Any(), gomock.Any()).
			Return(&loanpartner.TransactionResponse{TransactionID: "LP-88"}, nil)

		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		transactionRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			Return("", errInsertFailed)

		service := NewService(clientRepo, transactionRepo, nil, loanClient)

		result, err := service.ExecuteLoan(testContext(), validRequest)
		require.NoError(t, err)
		assert.Equal(t, "LP-88", result.TransactionID)
	})
}

var errInsertFailed = errors.New("insert failed")

package advising

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finxpert/advisor-api/infrastructure/integrator/gemini"
	geminimocks "github.com/finxpert/advisor-api/infrastructure/integrator/gemini/mocks"
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

var (
	testMutualFunds = stubFetcher{name: "mutualFundAdapter", data: []domain.ProductSnapshot{
		{ClientID: "CLT-001", ProductCode: "MF-A", Type: domain.ProductTypeMutualFund},
		{ClientID: "CLT-002", ProductCode: "MF-B", Type: domain.ProductTypeMutualFund},
	}}
	testLoans = stubFetcher{name: "loanAdapter", data: []domain.ProductSnapshot{
		{ClientID: "CLT-003", ProductCode: "LOAN-A", Type: domain.ProductTypeLoan},
	}}
)

func testContext() context.Context {
	return advisor.NewContext(context.Background(), "ADV-001", "TEN-001")
}

func TestRunAgent(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("splits the model reply on the rationale delimiter", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return("Focus on CLT-001 today.\n\nRationale: Two holdings drifted past target.", nil)

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		response, err := service.RunAgent(testContext(), "What matters today?")
		require.NoError(t, err)

		assert.Equal(t, "Focus on CLT-001 today.", response.Summary)
		assert.Equal(t, "Two holdings drifted past target.", response.Rationale)
		assert.Len(t, response.SourceData, 3)
	})

	t.Run("missing delimiter falls back to deterministic counts", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return("A reply without the expected structure.", nil)

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		response, err := service.RunAgent(testContext(), "prompt")
		require.NoError(t, err)

		assert.Equal(t, "Monitor 1 loan accounts for cash stress and rebalance 2 mutual fund holdings showing >8% gain.", response.Summary)
		assert.Equal(t, fallbackRationale, response.Rationale)
	})

	t.Run("model failure falls back to deterministic counts", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return("", errors.New("quota exceeded"))

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		response, err := service.RunAgent(testContext(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, fallbackRationale, response.Rationale)
	})

	t.Run("unconfigured key never calls the model", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(false)

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		response, err := service.RunAgent(testContext(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, fallbackRationale, response.Rationale)
	})

	t.Run("invocation is logged with advisor identity", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(false)

		agentLogRepo := mocks.NewMockAgentLogRepository(ctrl)
		agentLogRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry domain.AgentLogEntry) error {
				assert.Equal(t, agentScope, entry.Scope)
				assert.Equal(t, "prompt", entry.Prompt)
				assert.Equal(t, "ADV-001", entry.AdvisorID)
				assert.Equal(t, "TEN-001", entry.TenantID)
				return nil
			})

		service := NewService(geminiClient, testMutualFunds, testLoans, agentLogRepo)

		_, err := service.RunAgent(testContext(), "prompt")
		require.NoError(t, err)
	})

	t.Run("log persistence failure is swallowed", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(false)

		agentLogRepo := mocks.NewMockAgentLogRepository(ctrl)
		agentLogRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			Return(errors.New("table missing"))

		service := NewService(geminiClient, testMutualFunds, testLoans, agentLogRepo)

		response, err := service.RunAgent(testContext(), "prompt")
		require.NoError(t, err)
		assert.NotEmpty(t, response.Summary)
	})
}

func TestChat(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unconfigured key returns the fixed apology", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(false)

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		reply, err := service.Chat(testContext(), "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, chatNotConfiguredReply, reply)
	})

	t.Run("forwards only the last ten history turns", func(t *testing.T) {
		history := make([]domain.ChatMessage, 14)
		for i := range history {
			role := domain.ChatRoleUser
			if i%2 == 1 {
				role = domain.ChatRoleAssistant
			}
			history[i] = domain.ChatMessage{Role: role, Content: "turn"}
		}

		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request gemini.GenerateRequest) (string, error) {
				assert.Len(t, request.Contents, 11)
				assert.Equal(t, 0.7, request.Temperature)
				assert.Equal(t, 1024, request.MaxOutputTokens)
				assert.Equal(t, "user", request.Contents[len(request.Contents)-1].Role)
				return "Here is my take.", nil
			})

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		reply, err := service.Chat(testContext(), "latest question", history)
		require.NoError(t, err)
		assert.Equal(t, "Here is my take.", reply)
	})

	t.Run("model failure returns the fixed error reply", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return("", errors.New("network down"))

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		reply, err := service.Chat(testContext(), "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, chatErrorReply, reply)
	})

	t.Run("empty completion returns the fixed empty reply", func(t *testing.T) {
		geminiClient := geminimocks.NewMockClient(ctrl)
		geminiClient.EXPECT().Configured().Return(true)
		geminiClient.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", nil)

		service := NewService(geminiClient, testMutualFunds, testLoans, nil)

		reply, err := service.Chat(testContext(), "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, chatEmptyReply, reply)
	})
}

func TestDescribeHoldings(t *testing.T) {
	positions := []domain.ProductSnapshot{
		{Type: domain.ProductTypeMutualFund},
		{Type: domain.ProductTypeLoan},
		{Type: domain.ProductTypeMutualFund},
	}

	assert.Equal(t, "2 mutual_fund items, 1 loan items", describeHoldings(positions))
	assert.Equal(t, "", describeHoldings(nil))
}

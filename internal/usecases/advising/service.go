// Package advising runs the LLM-backed insight generator and the advisor
// chat assistant. Both degrade to fixed deterministic replies when the
// model is unconfigured or failing; neither ever surfaces a model error to
// the caller.
package advising

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/finxpert/advisor-api/infrastructure/integrator/gemini"
	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/adapters"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

const (
	agentScope = "finxpert-agent"

	agentInstruction = "You are FinXpert, an AI assistant helping financial advisors prioritize actions across mutual funds, loans, insurance, and alternate products. Respond with concise summaries and rationales."

	chatInstruction = "You are FinXpert, an AI assistant for financial advisors. You help advisors manage their clients, understand portfolios, execute transactions, and stay compliant. Be concise, professional, and helpful. When asked about specific data, mention that you can help interpret it but the advisor should verify details in the dashboard."

	chatNotConfiguredReply = "I'm sorry, but the AI service is not configured. Please add GEMINI_API_KEY to your environment variables."
	chatEmptyReply         = "I apologize, but I couldn't generate a response. Please try again."
	chatErrorReply         = "I encountered an error processing your request. Please try again or check your connection."

	unparsableSummary   = "Unable to parse AI response. Please review the advisor dashboard manually."
	missingRationale    = "LLM returned no rationale. Validate data sources before taking action."
	fallbackRationale   = "Fallback guidance because the LLM is unavailable. Focus on overlapping clients across loans + MFs to protect AUM."
	rationaleDelimiter  = "\n\nRationale:"
	chatHistoryMaxTurns = 10
)

// Advisor is the insight and chat contract consumed by the handlers.
type Advisor interface {
	RunAgent(ctx context.Context, prompt string) (*domain.AgentResponse, error)
	Chat(ctx context.Context, message string, history []domain.ChatMessage) (string, error)
}

type Service struct {
	gemini             gemini.Client
	mutualFundAdapter  adapters.Fetcher
	loanAdapter        adapters.Fetcher
	agentLogRepository repository.AgentLogRepository
}

func NewService(
	geminiClient gemini.Client,
	mutualFundAdapter adapters.Fetcher,
	loanAdapter adapters.Fetcher,
	agentLogRepo repository.AgentLogRepository,
) Advisor {
	return &Service{
		gemini:             geminiClient,
		mutualFundAdapter:  mutualFundAdapter,
		loanAdapter:        loanAdapter,
		agentLogRepository: agentLogRepo,
	}
}

// RunAgent fetches mutual fund and loan holdings in parallel, asks the
// model for a summary and rationale and records the invocation in the
// agent log. The log write never fails the call.
func (s *Service) RunAgent(ctx context.Context, prompt string) (*domain.AgentResponse, error) {
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

	flattened := make([]domain.ProductSnapshot, 0, len(mutualFunds.Data)+len(loans.Data))
	flattened = append(flattened, mutualFunds.Data...)
	flattened = append(flattened, loans.Data...)

	holdingsSummary := describeHoldings(flattened)
	summary, rationale := s.buildInsight(
		ctx,
		prompt+"\n\nHoldings summary: "+holdingsSummary,
		flattened,
		holdingsSummary,
	)

	response := &domain.AgentResponse{
		Summary:    summary,
		Rationale:  rationale,
		SourceData: flattened,
	}

	s.logInvocation(ctx, domain.AgentLogEntry{
		Scope:  agentScope,
		Prompt: prompt,
		Payload: map[string]any{
			"adapterInput": []domain.AdapterResult{mutualFunds, loans},
			"output":       response,
		},
	})

	return response, nil
}

// Chat answers one stateless chat turn. Only the last 10 history turns are
// forwarded to the model.
func (s *Service) Chat(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	if !s.gemini.Configured() {
		return chatNotConfiguredReply, nil
	}

	if len(history) > chatHistoryMaxTurns {
		history = history[len(history)-chatHistoryMaxTurns:]
	}

	contents := make([]gemini.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.Role == domain.ChatRoleUser {
			role = "user"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: message}},
	})

	text, err := s.gemini.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: chatInstruction,
		Temperature:       0.7,
		MaxOutputTokens:   1024,
		Contents:          contents,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("chat completion failed")
		return chatErrorReply, nil
	}

	if text == "" {
		return chatEmptyReply, nil
	}

	return text, nil
}

// buildInsight asks the model for a "summary\n\nRationale: rationale" reply
// and splits it. A missing key, failed call or missing delimiter all land
// on the deterministic fallback built from local position counts.
func (s *Service) buildInsight(ctx context.Context, prompt string, positions []domain.ProductSnapshot, holdingsSummary string) (string, string) {
	logger := log.ForContext(ctx)

	if !s.gemini.Configured() {
		logger.Warn("GEMINI_API_KEY is missing, falling back to deterministic insight")
		return fallbackInsight(positions)
	}

	payload, err := json.Marshal(map[string]any{
		"prompt":          prompt,
		"positions":       positions,
		"holdingsSummary": holdingsSummary,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to encode insight payload, reverting to fallback insight")
		return fallbackInsight(positions)
	}

	text, err := s.gemini.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: agentInstruction,
		Temperature:       0.4,
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: string(payload)}}},
		},
	})
	if err != nil {
		logger.WithError(err).Warn("Gemini completion failed, reverting to fallback insight")
		return fallbackInsight(positions)
	}

	parts := strings.SplitN(text, rationaleDelimiter, 2)
	if len(parts) < 2 {
		return fallbackInsight(positions)
	}

	summary := strings.TrimSpace(parts[0])
	rationale := strings.TrimSpace(parts[1])
	if summary == "" {
		summary = unparsableSummary
	}
	if rationale == "" {
		rationale = missingRationale
	}

	return summary, rationale
}

func fallbackInsight(positions []domain.ProductSnapshot) (string, string) {
	mfPositions := 0
	loanPositions := 0
	for _, position := range positions {
		switch position.Type {
		case domain.ProductTypeMutualFund:
			mfPositions++
		case domain.ProductTypeLoan:
			loanPositions++
		}
	}

	summary := fmt.Sprintf(
		"Monitor %d loan accounts for cash stress and rebalance %d mutual fund holdings showing >8%% gain.",
		loanPositions, mfPositions,
	)

	return summary, fallbackRationale
}

// describeHoldings renders a type histogram like "2 mutual_fund items,
// 1 loan items", keeping first-encounter order.
func describeHoldings(positions []domain.ProductSnapshot) string {
	counts := map[domain.ProductType]int{}
	order := []domain.ProductType{}
	for _, position := range positions {
		if _, seen := counts[position.Type]; !seen {
			order = append(order, position.Type)
		}
		counts[position.Type]++
	}

	described := make([]string, 0, len(order))
	for _, productType := range order {
		described = append(described, fmt.Sprintf(
			"%d %s items", counts[productType], strings.ToLower(string(productType)),
		))
	}

	return strings.Join(described, ", ")
}

// logInvocation appends the invocation to agent_logs. Failures downgrade
// to a warning so the insight itself is never lost.
func (s *Service) logInvocation(ctx context.Context, entry domain.AgentLogEntry) {
	if s.agentLogRepository == nil {
		return
	}

	entry.AdvisorID = advisor.FromContext(ctx)
	entry.TenantID = advisor.TenantFromContext(ctx)
	entry.CreatedAt = time.Now().UTC()

	if err := s.agentLogRepository.Append(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Warn("failed to persist agent log")
	}
}

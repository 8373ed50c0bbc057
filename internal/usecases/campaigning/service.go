// Package campaigning dispatches personalized campaign messages to a set
// of clients over one channel. Recipients are processed concurrently and
// independently; there is no partial-batch rollback.
package campaigning

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/messaging"
	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

var (
	// ErrDatabaseNotConfigured means templates and clients cannot be
	// resolved without a backing store.
	ErrDatabaseNotConfigured = errors.New("backing store not configured")

	// ErrInvalidPayload wraps schema validation failures.
	ErrInvalidPayload = errors.New("invalid campaign payload")

	// ErrTemplateNotFound means the template does not exist under the
	// requesting advisor.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrChannelNotSupported means no sender is wired for the channel.
	ErrChannelNotSupported = errors.New("channel not supported")
)

// Request is the fixed schema for one campaign send.
type Request struct {
	TemplateID string   `json:"templateId" validate:"required"`
	ClientIDs  []string `json:"clientIds" validate:"required,min=1"`
	Channel    string   `json:"channel" validate:"required,oneof=WhatsApp SMS Email"`
}

// Dispatcher sends one campaign to many recipients.
type Dispatcher interface {
	SendCampaign(ctx context.Context, request Request) (*domain.CampaignDispatchResult, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	clientRepository   repository.ClientRepository
	senders            map[domain.Channel]messaging.Sender
	validate           *validator.Validate
}

func NewService(
	campaignRepo repository.CampaignRepository,
	clientRepo repository.ClientRepository,
	senders ...messaging.Sender,
) Dispatcher {
	byChannel := make(map[domain.Channel]messaging.Sender, len(senders))
	for _, sender := range senders {
		byChannel[sender.Channel()] = sender
	}

	return &Service{
		campaignRepository: campaignRepo,
		clientRepository:   clientRepo,
		senders:            byChannel,
		validate:           validator.New(),
	}
}

// SendCampaign resolves the template and recipient rows under the
// requesting advisor, personalizes the body per recipient and dispatches
// concurrently. Every attempt is recorded in campaign_sends regardless of
// outcome, and every resolved recipient yields exactly one result entry.
func (s *Service) SendCampaign(ctx context.Context, request Request) (*domain.CampaignDispatchResult, error) {
	if s.campaignRepository == nil || s.clientRepository == nil {
		return nil, ErrDatabaseNotConfigured
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	channel := domain.Channel(request.Channel)
	sender, ok := s.senders[channel]
	if !ok {
		return nil, errors.Wrapf(ErrChannelNotSupported, "%s", channel)
	}

	advisorID := advisor.FromContext(ctx)

	template, err := s.campaignRepository.GetTemplate(ctx, advisorID, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	clients, err := s.clientRepository.ListClientsByIDs(ctx, advisorID, request.ClientIDs)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	results := make([]domain.SendOutcome, len(clients))

	wg.Add(len(clients))
	for i, client := range clients {
		go func(i int, client domain.ClientProfile) {
			defer wg.Done()
			results[i] = s.dispatch(ctx, sender, channel, *template, client)
		}(i, client)
	}
	wg.Wait()

	dispatchResult := &domain.CampaignDispatchResult{Results: results}
	for _, outcome := range results {
		if outcome.Success {
			dispatchResult.Sent++
		} else {
			dispatchResult.Failed++
		}
	}

	return dispatchResult, nil
}

func (s *Service) dispatch(
	ctx context.Context,
	sender messaging.Sender,
	channel domain.Channel,
	template domain.CampaignTemplate,
	client domain.ClientProfile,
) domain.SendOutcome {
	body := personalize(template.Body, client)

	messageID, err := sender.Send(ctx, messaging.Message{
		To:      destination(channel, client),
		ToName:  client.Name,
		Subject: template.Title,
		Body:    body,
	})

	outcome := domain.SendOutcome{
		ClientID:  client.ID,
		Success:   err == nil,
		MessageID: messageID,
	}

	sendLog := domain.CampaignSendLog{
		TemplateID: template.ID,
		ClientID:   client.ID,
		Channel:    channel,
		AdvisorID:  advisor.FromContext(ctx),
		Status:     "SENT",
		SentAt:     time.Now().UTC(),
	}
	if err != nil {
		outcome.Error = err.Error()
		sendLog.Status = "FAILED"
		sendLog.Error = &outcome.Error
	}

	if logErr := s.campaignRepository.AppendSendLog(ctx, sendLog); logErr != nil {
		log.ForContext(ctx).WithError(logErr).WithFields(log.Fields{
			"templateID": template.ID,
			"clientID":   client.ID,
		}).Warn("failed to append campaign send log")
	}

	return outcome
}

// personalize substitutes the {{name}} and {{clientId}} placeholders.
func personalize(body string, client domain.ClientProfile) string {
	body = strings.ReplaceAll(body, "{{name}}", client.Name)
	return strings.ReplaceAll(body, "{{clientId}}", client.ID)
}

// destination picks the channel address. Clients without a phone number on
// file fall back to a deterministic placeholder so the provider error
// stays attributable to the recipient.
func destination(channel domain.Channel, client domain.ClientProfile) string {
	if channel == domain.ChannelEmail {
		return client.Email
	}
	if client.Phone != "" {
		return client.Phone
	}
	return "+91" + client.ID
}

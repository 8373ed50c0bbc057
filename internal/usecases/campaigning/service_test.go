package campaigning

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finxpert/advisor-api/infrastructure/messaging"
	messagingmocks "github.com/finxpert/advisor-api/infrastructure/messaging/mocks"
	"github.com/finxpert/advisor-api/infrastructure/repository/mocks"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

func testContext() context.Context {
	return advisor.NewContext(context.Background(), "ADV-001", "TEN-001")
}

func whatsappSender(ctrl *gomock.Controller) *messagingmocks.MockSender {
	sender := messagingmocks.NewMockSender(ctrl)
	sender.EXPECT().Channel().Return(domain.ChannelWhatsApp).AnyTimes()
	return sender
}

func TestSendCampaign(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	template := &domain.CampaignTemplate{
		ID:      "tmpl-wa",
		Channel: domain.ChannelWhatsApp,
		Title:   "MF Top-Up Reminder",
		Body:    "Hi {{name}}, ref {{clientId}}: top up your SIP.",
	}

	clients := []domain.ClientProfile{
		{ID: "CLT-001", Name: "Riya Malhotra", Phone: "+919800000001"},
		{ID: "CLT-002", Name: "Arjun Sinha", Phone: "+919800000002"},
		{ID: "CLT-003", Name: "Sanjay Iyer"},
	}

	request := Request{
		TemplateID: "tmpl-wa",
		ClientIDs:  []string{"CLT-001", "CLT-002", "CLT-003"},
		Channel:    "WhatsApp",
	}

	t.Run("every recipient yields one result and one send log", func(t *testing.T) {
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().GetTemplate(gomock.Any(), "ADV-001", "tmpl-wa").Return(template, nil)
		campaignRepo.EXPECT().
			AppendSendLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sendLog domain.CampaignSendLog) error {
				assert.Equal(t, "tmpl-wa", sendLog.TemplateID)
				assert.Equal(t, "ADV-001", sendLog.AdvisorID)
				return nil
			}).
			Times(3)

		clientRepo := mocks.NewMockClientRepository(ctrl)
		clientRepo.EXPECT().
			ListClientsByIDs(gomock.Any(), "ADV-001", request.ClientIDs).
			Return(clients, nil)

		sender := whatsappSender(ctrl)
		sender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message messaging.Message) (string, error) {
				if message.To == "+919800000002" {
					return "", errors.New("number opted out")
				}
				return "wamid-" + message.To, nil
			}).
			Times(3)

		service := NewService(campaignRepo, clientRepo, sender)

		result, err := service.SendCampaign(testContext(), request)
		require.NoError(t, err)

		assert.Len(t, result.Results, 3)
		assert.Equal(t, 2, result.Sent)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, len(result.Results), result.Sent+result.Failed)

		byClient := map[string]domain.SendOutcome{}
		for _, outcome := range result.Results {
			byClient[outcome.ClientID] = outcome
		}
		assert.True(t, byClient["CLT-001"].Success)
		assert.False(t, byClient["CLT-002"].Success)
		assert.Equal(t, "number opted out", byClient["CLT-002"].Error)
	})

	t.Run("body placeholders are personalized per recipient", func(t *testing.T) {
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().GetTemplate(gomock.Any(), "ADV-001", "tmpl-wa").Return(template, nil)
		campaignRepo.EXPECT().AppendSendLog(gomock.Any(), gomock.Any()).Return(nil)

		clientRepo := mocks.NewMockClientRepository(ctrl)
		clientRepo.EXPECT().
			ListClientsByIDs(gomock.Any(), "ADV-001", []string{"CLT-001"}).
			Return(clients[:1], nil)

		sender := whatsappSender(ctrl)
		sender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message messaging.Message) (string, error) {
				assert.Equal(t, "Hi Riya Malhotra, ref CLT-001: top up your SIP.", message.Body)
				assert.Equal(t, "+919800000001", message.To)
				return "wamid-1", nil
			})

		service := NewService(campaignRepo, clientRepo, sender)

		_, err := service.SendCampaign(testContext(), Request{
			TemplateID: "tmpl-wa",
			ClientIDs:  []string{"CLT-001"},
			Channel:    "WhatsApp",
		})
		require.NoError(t, err)
	})

	t.Run("unknown template is not found", func(t *testing.T) {
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().GetTemplate(gomock.Any(), "ADV-001", "tmpl-wa").Return(nil, nil)

		service := NewService(campaignRepo, mocks.NewMockClientRepository(ctrl), whatsappSender(ctrl))

		_, err := service.SendCampaign(testContext(), request)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("invalid channel is rejected", func(t *testing.T) {
		service := NewService(mocks.NewMockCampaignRepository(ctrl), mocks.NewMockClientRepository(ctrl), whatsappSender(ctrl))

		_, err := service.SendCampaign(testContext(), Request{
			TemplateID: "tmpl-wa",
			ClientIDs:  []string{"CLT-001"},
			Channel:    "Pigeon",
		})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("empty recipient list is rejected", func(t *testing.T) {
		service := NewService(mocks.NewMockCampaignRepository(ctrl), mocks.NewMockClientRepository(ctrl), whatsappSender(ctrl))

		_, err := service.SendCampaign(testContext(), Request{
			TemplateID: "tmpl-wa",
			Channel:    "WhatsApp",
		})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("channel without a wired sender is rejected", func(t *testing.T) {
		service := NewService(mocks.NewMockCampaignRepository(ctrl), mocks.NewMockClientRepository(ctrl), whatsappSender(ctrl))

		_, err := service.SendCampaign(testContext(), Request{
			TemplateID: "tmpl-wa",
			ClientIDs:  []string{"CLT-001"},
			Channel:    "Email",
		})
		assert.ErrorIs(t, err, ErrChannelNotSupported)
	})

	t.Run("no backing store is a configuration error", func(t *testing.T) {
		service := NewService(nil, nil, whatsappSender(ctrl))

		_, err := service.SendCampaign(testContext(), request)
		assert.ErrorIs(t, err, ErrDatabaseNotConfigured)
	})
}

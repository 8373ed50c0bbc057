package domain

import "time"

// Channel is an outbound campaign channel.
type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelSMS      Channel = "SMS"
	ChannelEmail    Channel = "Email"
)

// CampaignTemplate is a reusable message body with {{name}} and {{clientId}}
// placeholders substituted per recipient at send time.
type CampaignTemplate struct {
	ID      string  `json:"id"`
	Channel Channel `json:"channel"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	CTA     *string `json:"cta,omitempty"`
}

// SendOutcome reports the result of delivering a campaign to one recipient.
type SendOutcome struct {
	ClientID  string `json:"clientId"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CampaignDispatchResult is the overall response for one campaign send.
// Sent + Failed always equals len(Results).
type CampaignDispatchResult struct {
	Results []SendOutcome `json:"results"`
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
}

// CampaignSendLog is the append-only record of one delivery attempt.
type CampaignSendLog struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"templateId"`
	ClientID   string    `json:"clientId"`
	Channel    Channel   `json:"channel"`
	AdvisorID  string    `json:"advisorId"`
	Status     string    `json:"status"`
	Error      *string   `json:"error,omitempty"`
	SentAt     time.Time `json:"sentAt"`
}

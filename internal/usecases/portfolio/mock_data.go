package portfolio

import "github.com/finxpert/advisor-api/internal/domain"

// fallbackClients serves client profiles when the backing store is not
// configured or holds no row for the requested ID.
var fallbackClients = map[string]domain.ClientProfile{
	"CLT-001": {
		ID:      "CLT-001",
		Name:    "Riya Malhotra",
		Segment: "HNI",
		Notes:   "Owns MF + LAP products; open to PMS migration.",
	},
	"CLT-002": {
		ID:      "CLT-002",
		Name:    "Arjun Sinha",
		Segment: "Mass Affluent",
		Notes:   "Hybrid MF SIP plus term + health cover.",
	},
	"CLT-003": {
		ID:      "CLT-003",
		Name:    "Sanjay Iyer",
		Segment: "HNI",
		Notes:   "Large home loan with rate-switch opportunity.",
	},
}

func strPtr(s string) *string { return &s }

var mockCampaignTemplates = []domain.CampaignTemplate{
	{
		ID:      "tmpl-wa",
		Channel: domain.ChannelWhatsApp,
		Title:   "MF Top-Up Reminder",
		Body:    "Hi {{name}}, your SIP is on track. Invest an extra ₹5K this month to stay ahead of your retirement target.",
		CTA:     strPtr("Launch WhatsApp Flow"),
	},
	{
		ID:      "tmpl-sms",
		Channel: domain.ChannelSMS,
		Title:   "Loan EMI Alert",
		Body:    "Reminder: EMI for {{product}} is due on {{date}}. Reply YES to schedule auto-pay.",
		CTA:     strPtr("Send SMS"),
	},
	{
		ID:      "tmpl-email",
		Channel: domain.ChannelEmail,
		Title:   "AIF Discovery Call",
		Body:    "Invite HNI clients to a 15-min call on curated AIF opportunities with higher yield potential.",
		CTA:     strPtr("Send Email"),
	},
}

var mockComplianceFlags = []domain.ComplianceFlag{
	{
		ID:          "flag-1",
		Title:       "SEBI risk profile refresh",
		Description: strPtr("12 clients have outdated risk profiles (>12 months). Collect updated MFD declarations."),
		Severity:    domain.SeverityHigh,
		Status:      "OPEN",
	},
	{
		ID:          "flag-2",
		Title:       "AMFI ARN renewal",
		Description: strPtr("ARN-12345 expires in 45 days. Submit documents to avoid MF transaction blocks."),
		Severity:    domain.SeverityMedium,
		Status:      "OPEN",
	},
}

// clientFocus is the curated opportunity list shown on the dashboard.
var clientFocus = []domain.ClientFocusEntry{
	{
		ID:          "CLT-001",
		Name:        "Riya Malhotra",
		Opportunity: "Rebalance MF + LAP exposure",
		Value:       "₹18.5L AUM",
	},
	{
		ID:          "CLT-002",
		Name:        "Arjun Sinha",
		Opportunity: "Upsell to Hybrid MF + Insurance",
		Value:       "₹9.2L AUM",
	},
	{
		ID:          "CLT-003",
		Name:        "Sanjay Iyer",
		Opportunity: "Home Loan rate switch opportunity",
		Value:       "₹32L liability",
	},
}

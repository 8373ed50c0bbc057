package domain

// ClientFocusEntry is one of the opportunities highlighted on the dashboard.
type ClientFocusEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Opportunity string `json:"opportunity"`
	Value       string `json:"value"`
}

// Dashboard is the landing-page aggregate: agent insight, raw holdings per
// adapter, campaign templates, compliance flags and the focus list.
type Dashboard struct {
	Agent             AgentResponse      `json:"agent"`
	Holdings          []AdapterResult    `json:"holdings"`
	CampaignTemplates []CampaignTemplate `json:"campaignTemplates"`
	ComplianceFlags   []ComplianceFlag   `json:"complianceFlags"`
	ClientFocus       []ClientFocusEntry `json:"clientFocus"`
}

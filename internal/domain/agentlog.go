package domain

import "time"

// AgentLogEntry records one insight-generator invocation, successful or not.
type AgentLogEntry struct {
	Scope     string         `json:"scope"`
	Prompt    string         `json:"prompt,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	Error     *string        `json:"error,omitempty"`
	AdvisorID string         `json:"advisorId"`
	TenantID  string         `json:"tenantId"`
	CreatedAt time.Time      `json:"createdAt"`
}

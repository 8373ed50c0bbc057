package domain

// AgentResponse is the two-part insight produced for a dashboard load.
type AgentResponse struct {
	Summary    string            `json:"summary"`
	Rationale  string            `json:"rationale"`
	SourceData []ProductSnapshot `json:"sourceData"`
}

// ChatMessage is one turn of the advisor chat. Conversations are stateless
// on the server; the caller resupplies recent history with every request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

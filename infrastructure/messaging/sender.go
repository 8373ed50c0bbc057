// Package messaging holds the outbound channel senders used by campaign
// dispatch. Each sender is an independent external API call; a missing
// credential makes the sender fail per message instead of crashing startup.
package messaging

import (
	"context"

	"github.com/finxpert/advisor-api/internal/domain"
)

// Message is one personalized outbound message.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers a message over one channel and returns the provider's
// message ID.
type Sender interface {
	Channel() domain.Channel
	Send(ctx context.Context, message Message) (string, error)
}

package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(ctx context.Context, messageID string, body []byte) error
}

// URLMatchingCommander sends url matching commands.
type URLMatchingCommander struct {
	sender Sender
}

// NewURLMatchingCommander returns new URLMatchingCommander using provided sender for sending messages.
func NewURLMatchingCommander(sender Sender) URLMatchingCommander {
	return URLMatchingCommander{
		sender: sender,
	}
}

// SendResolveURLCommand sends command requesting resolution of manually submitted url.
// Message ID is the url matching ID so consumers can drop redeliveries.
func (c URLMatchingCommander) SendResolveURLCommand(ctx context.Context, cmd ResolveURLCommand) error {
	if cmd.ManualURLMatchingID == uuid.Nil {
		return fmt.Errorf("resolve url command without url matching id")
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal resolve url command: %w", err)
	}

	return c.sender.Send(ctx, cmd.ManualURLMatchingID.String(), cmdMsg)
}

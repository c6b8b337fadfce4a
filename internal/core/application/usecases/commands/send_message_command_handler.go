package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// SendMessageCommandHandler forwards the message to the notifier. Unlike the
// order notifications, a delivery failure is the result of this command and
// is returned to the caller.
type SendMessageCommandHandler struct {
	notifier ports.Notifier
}

func NewSendMessageCommandHandler(notifier ports.Notifier) SendMessageCommandHandler {
	return SendMessageCommandHandler{notifier: notifier}
}

// Handle returns the provider-assigned delivery id.
func (h SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.notifier.Send(ctx, cmd.To(), cmd.Message())
}

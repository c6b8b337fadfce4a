package ports

import "context"

// Notifier delivers a text message through the messaging provider with a
// fixed sender identity. It makes a single attempt and returns the
// provider-assigned delivery id. Rejections are *errs.DeliveryFailedError.
type Notifier interface {
	Send(ctx context.Context, to, body string) (string, error)
}

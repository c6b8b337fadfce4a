// Package twilio delivers operator notifications through the Twilio
// Messages API.
package twilio

import (
	"context"
	"errors"
	"strings"

	"ordertracker/internal/pkg/errs"

	twiliosdk "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Channel selects the address scheme used by the provider.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"

	whatsAppPrefix = "whatsapp:"
)

// ParseChannel maps a configuration value onto a Channel. Empty selects
// WhatsApp.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChannelWhatsApp:
		return ChannelWhatsApp, nil
	case ChannelSMS:
		return ChannelSMS, nil
	default:
		return "", errs.NewValueIsInvalidError("channel")
	}
}

// Address applies the channel scheme to a raw address.
func (c Channel) Address(addr string) string {
	addr = strings.TrimSpace(addr)
	if c != ChannelWhatsApp || addr == "" || strings.HasPrefix(addr, whatsAppPrefix) {
		return addr
	}
	return whatsAppPrefix + addr
}

type Config struct {
	AccountSID string
	AuthToken  string
	From       string
	Channel    Channel
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Notifier implements ports.Notifier. Each Send is a single attempt.
type Notifier struct {
	api     messageCreator
	from    string
	channel Channel
	logger  *zap.Logger
}

func NewNotifier(cfg Config, logger *zap.Logger) (*Notifier, error) {
	if strings.TrimSpace(cfg.From) == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	client := twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newNotifier(client.Api, cfg, logger), nil
}

func newNotifier(api messageCreator, cfg Config, logger *zap.Logger) *Notifier {
	channel := cfg.Channel
	if channel == "" {
		channel = ChannelWhatsApp
	}
	return &Notifier{
		api:     api,
		from:    channel.Address(cfg.From),
		channel: channel,
		logger:  logger.With(zap.String("component", "twilio_notifier")),
	}
}

// Send returns the provider message SID.
func (n *Notifier) Send(ctx context.Context, to, body string) (string, error) {
	recipient := n.channel.Address(to)
	if recipient == "" {
		return "", errs.NewDeliveryFailedError(to, errs.NewValueIsRequiredError("to"))
	}
	if err := ctx.Err(); err != nil {
		return "", errs.NewDeliveryFailedError(recipient, err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return "", errs.NewDeliveryFailedError(recipient, err)
	}
	if resp == nil || resp.Sid == nil {
		return "", errs.NewDeliveryFailedError(recipient, errors.New("provider returned no message sid"))
	}

	n.logger.Debug("message sent", zap.String("to", recipient), zap.String("sid", *resp.Sid))
	return *resp.Sid, nil
}

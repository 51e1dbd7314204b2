package channel

import (
	"context"
	"fmt"

	"alert-srv/config"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// smsAPI is the slice of the Twilio client the sender needs; narrowed for
// testability.
type smsAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type smsSender struct {
	l    log.Logger
	from string
	api  smsAPI
}

// NewSMSSender returns a Sender that delivers through Twilio.
func NewSMSSender(l log.Logger, cfg config.TwilioConfig) Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &smsSender{
		l:    l,
		from: cfg.From,
		api:  client.Api,
	}
}

func (s *smsSender) Channel() model.Channel {
	return model.ChannelSMS
}

func (s *smsSender) Send(ctx context.Context, target Target, payload Payload) error {
	if target.Address == "" {
		return ErrEmptyAddress
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(target.Address)
	params.SetFrom(s.from)
	params.SetBody(renderSMSBody(payload))

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", target.Address, err)
	}
	if resp.ErrorCode != nil {
		return fmt.Errorf("twilio rejected message to %s: code %d", target.Address, *resp.ErrorCode)
	}
	return nil
}

// renderSMSBody keeps the message inside a single SMS segment where
// possible.
func renderSMSBody(p Payload) string {
	body := fmt.Sprintf("%s ALERT: %s - %s", p.Severity, p.Title, p.Message)
	const maxLen = 320
	if len(body) > maxLen {
		body = body[:maxLen-3] + "..."
	}
	return body
}

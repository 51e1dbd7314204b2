package channel

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"

	"alert-srv/config"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"

	"gopkg.in/gomail.v2"
)

type emailSender struct {
	l    log.Logger
	cfg  config.SMTPConfig
	dial func() (gomail.SendCloser, error)
}

// NewEmailSender returns a Sender that delivers through an SMTP relay.
func NewEmailSender(l log.Logger, cfg config.SMTPConfig) Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.NoVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &emailSender{
		l:    l,
		cfg:  cfg,
		dial: func() (gomail.SendCloser, error) { return d.Dial() },
	}
}

func (s *emailSender) Channel() model.Channel {
	return model.ChannelEmail
}

func (s *emailSender) Send(ctx context.Context, target Target, payload Payload) error {
	if target.Address == "" {
		return ErrEmptyAddress
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", target.Address)
	m.SetHeader("Subject", fmt.Sprintf("[%s ALERT] %s", payload.Severity, payload.Title))
	m.SetBody("text/plain", renderEmailBody(payload))

	sc, err := s.dial()
	if err != nil {
		// A dead relay affects every recipient on this channel.
		if isConnErr(err) {
			return fmt.Errorf("%w: smtp dial: %v", ErrProviderUnavailable, err)
		}
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer sc.Close()

	if err := gomail.Send(sc, m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", target.Address, err)
	}
	return nil
}

func renderEmailBody(p Payload) string {
	return fmt.Sprintf("%s\n\nType: %s\nSeverity: %s\n\nIssued by the Office of Disaster Preparedness and Emergency Management.",
		p.Message, p.Type, p.Severity)
}

func isConnErr(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

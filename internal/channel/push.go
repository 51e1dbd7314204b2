package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alert-srv/config"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"
)

type pushSender struct {
	l      log.Logger
	url    string
	apiKey string
	client *http.Client
}

// NewPushSender returns a Sender that posts notifications to an HTTP push
// gateway.
func NewPushSender(l log.Logger, cfg config.PushConfig) Sender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &pushSender{
		l:      l,
		url:    cfg.GatewayURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *pushSender) Channel() model.Channel {
	return model.ChannelPush
}

type pushRequest struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority int    `json:"priority"`
	AlertID  string `json:"alert_id"`
}

func (s *pushSender) Send(ctx context.Context, target Target, payload Payload) error {
	if target.Address == "" {
		return ErrEmptyAddress
	}

	body, err := json.Marshal(pushRequest{
		Token:    target.Address,
		Title:    payload.Title,
		Body:     payload.Message,
		Priority: pushPriority(payload.Severity),
		AlertID:  payload.AlertID,
	})
	if err != nil {
		return fmt.Errorf("marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		// Gateway unreachable: every remaining push in this dispatch would hit
		// the same wall.
		return fmt.Errorf("%w: push gateway: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: push gateway returned %d", ErrProviderUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push gateway rejected token %s: %s", target.Address, decodeGatewayError(resp.Body, resp.StatusCode))
	}
	return nil
}

// pushPriority maps alert severity to the gateway's priority scale.
func pushPriority(sev model.Severity) int {
	switch sev {
	case model.SeverityHigh:
		return 1
	case model.SeverityMedium:
		return 0
	default:
		return -1
	}
}

func decodeGatewayError(r io.Reader, status int) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return fmt.Sprintf("status %d", status)
	}
	gatewayResp := struct {
		Errors []string `json:"errors"`
	}{}
	if err := json.Unmarshal(body, &gatewayResp); err != nil || len(gatewayResp.Errors) == 0 {
		return fmt.Sprintf("status %d: %s", status, string(body))
	}
	return fmt.Sprintf("status %d: %s", status, strings.Join(gatewayResp.Errors, ", "))
}

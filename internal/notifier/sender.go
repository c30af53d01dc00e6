package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// WebhookSender posts notifications as JSON to a configured endpoint.
type WebhookSender struct {
	url    string
	client *http.Client
}

// NewWebhookSender creates a new WebhookSender with a bounded client
// timeout so a slow endpoint cannot hold deliveries indefinitely.
func NewWebhookSender(url string, timeout time.Duration) *WebhookSender {
	return &WebhookSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	TransactionID string `json:"transaction_id"`
	Account       string `json:"account"`
	Counterparty  string `json:"counterparty"`
	Direction     string `json:"direction"`
	Amount        string `json:"amount"`
}

// Send posts the notification.
func (s *WebhookSender) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(webhookPayload{
		TransactionID: n.TransactionID,
		Account:       n.AccountNumber,
		Counterparty:  n.Counterparty,
		Direction:     string(n.Direction),
		Amount:        n.Amount.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}

	return nil
}

// LogSender writes notifications to the log. Used when no webhook
// endpoint is configured.
type LogSender struct {
	logger zerolog.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the notification.
func (s *LogSender) Send(ctx context.Context, n Notification) error {
	s.logger.Info().
		Str("transaction_id", n.TransactionID).
		Str("account", n.AccountNumber).
		Str("counterparty", n.Counterparty).
		Str("direction", string(n.Direction)).
		Str("amount", n.Amount.String()).
		Msg("transfer notification")
	return nil
}

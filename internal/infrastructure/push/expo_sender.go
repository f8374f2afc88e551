// Package push delivers notifications through the Expo push HTTP API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainpush "complainthub.backend/internal/domain/push"
)

// DefaultEndpoint is the Expo push service URL.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// ExpoSender posts messages to the Expo push service.
type ExpoSender struct {
	endpoint string
	client   *http.Client
}

// NewExpoSender creates a sender against the given endpoint; an empty
// endpoint selects the Expo default.
func NewExpoSender(endpoint string) *ExpoSender {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &ExpoSender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one message. The Expo API accepts a batch, so the single
// message is wrapped in an array.
func (s *ExpoSender) Send(ctx context.Context, msg domainpush.Message) error {
	body, err := json.Marshal([]domainpush.Message{msg})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}

// NopSender discards every message. Used when push delivery is disabled.
type NopSender struct{}

// Send implements push.Sender.
func (NopSender) Send(ctx context.Context, msg domainpush.Message) error {
	return nil
}

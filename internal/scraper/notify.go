package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WebhookNotifier tells the API server that a scrape run finished so it can
// drop cached recommendations and push a websocket event.
type WebhookNotifier struct {
	client   *http.Client
	endpoint string
	token    string
}

func NewWebhookNotifier(endpoint, token string) *WebhookNotifier {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &WebhookNotifier{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
		token:    strings.TrimSpace(token),
	}
}

type scrapeCompletedPayload struct {
	JobsUpserted int       `json:"jobs_upserted"`
	CompletedAt  time.Time `json:"completed_at"`
}

func (n *WebhookNotifier) NotifyCompleted(ctx context.Context, jobsUpserted int) error {
	if n == nil {
		return nil
	}

	body, err := json.Marshal(scrapeCompletedPayload{
		JobsUpserted: jobsUpserted,
		CompletedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("X-Internal-Token", n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

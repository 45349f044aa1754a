package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"asha/config"
)

// ForwardService pushes volunteer applications and contact messages to
// configured webhooks (typically a Google Apps Script feeding a spreadsheet).
// Forwarding is best effort: the submission is already stored locally, so a
// webhook failure is logged, not surfaced to the visitor.
type ForwardService struct {
	cfg    *config.ForwardConfig
	client *http.Client
}

func NewForwardService(cfg *config.ForwardConfig) *ForwardService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ForwardService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *ForwardService) ForwardVolunteer(ctx context.Context, payload interface{}) error {
	return s.post(ctx, s.cfg.VolunteerWebhookURL, "volunteer", payload)
}

func (s *ForwardService) ForwardContact(ctx context.Context, payload interface{}) error {
	return s.post(ctx, s.cfg.ContactWebhookURL, "contact", payload)
}

func (s *ForwardService) post(ctx context.Context, url, kind string, payload interface{}) error {
	if url == "" {
		return nil // forwarding disabled
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[FORWARD] %s webhook: %v", kind, err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("[FORWARD] %s webhook: status %d", kind, resp.StatusCode)
		return fmt.Errorf("%s webhook: status %d", kind, resp.StatusCode)
	}
	return nil
}

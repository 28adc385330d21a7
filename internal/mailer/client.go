package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIMailer delivers emails through a JSON-over-HTTP transactional email
// endpoint (Brevo-style /send API).
type APIMailer struct {
	url    string // e.g. "https://api.example.com/v3/smtp/email"
	apiKey string
	client *http.Client // reused across calls
}

// Compile-time check: *APIMailer satisfies the Mailer interface.
var _ Mailer = (*APIMailer)(nil)

// SendError is returned when delivery fails so the caller can distinguish
// between "the API rejected the message" and "the API was unreachable."
type SendError struct {
	Reason  string
	Wrapped error
}

func (e *SendError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("send failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("send failed: %s", e.Reason)
}

func (e *SendError) Unwrap() error {
	return e.Wrapped
}

// NewAPIMailer creates a mailer that posts to the given endpoint. The
// client timeout bounds every delivery attempt so the async send tail can
// never block indefinitely.
func NewAPIMailer(url, apiKey string) *APIMailer {
	return &APIMailer{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send posts the email to the delivery API. It retries once on a 5xx or
// transport error; 4xx responses are not retried.
func (m *APIMailer) Send(ctx context.Context, e Email) error {
	payload, err := json.Marshal(sendRequest{
		From:    e.From,
		To:      e.To,
		ReplyTo: e.ReplyTo,
		Subject: e.Subject,
		Text:    e.Body,
	})
	if err != nil {
		return &SendError{Reason: "encoding request", Wrapped: err}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		retryable, err := m.post(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}

func (m *APIMailer) post(ctx context.Context, payload []byte) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return false, &SendError{Reason: "building request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("api-key", m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return true, &SendError{Reason: "calling delivery API", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	sendErr := &SendError{Reason: fmt.Sprintf("delivery API returned %d: %s", resp.StatusCode, body)}
	return resp.StatusCode >= 500, sendErr
}

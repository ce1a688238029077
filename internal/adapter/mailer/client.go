package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Mailer sends a single HTML email. Callers treat failures as non-fatal.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// HTTPMailer implements Mailer over a JSON mail relay API.
type HTTPMailer struct {
	baseURL    *url.URL
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewHTTPMailer creates a mail relay client with default timeout.
func NewHTTPMailer(baseURL, apiKey, from string, logger *slog.Logger) (*HTTPMailer, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mailer url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mailer url must be absolute")
	}
	return &HTTPMailer{
		baseURL: parsed,
		apiKey:  apiKey,
		from:    from,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the message to the relay and fails on any non-2xx response.
func (m *HTTPMailer) Send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(message{From: m.from, To: to, Subject: subject, HTML: html})
	if err != nil {
		return err
	}

	endpoint := *m.baseURL
	endpoint.Path = "/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		m.logger.Error("mail relay rejected message", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return fmt.Errorf("mail relay: %s", resp.Status)
	}
	return nil
}

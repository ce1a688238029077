package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const timestampLayout = "20060102150405"

// Client exposes operations against the M-Pesa Daraja API.
type Client interface {
	STKPush(ctx context.Context, req STKPushRequest) (*STKPushResponse, error)
}

// STKPushRequest describes a payment prompt sent to a customer's phone.
type STKPushRequest struct {
	PhoneNumber      string
	AmountCents      int64
	AccountReference string
	Description      string
}

// STKPushResponse mirrors the gateway acknowledgement of an initiated push.
type STKPushResponse struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResponseCode      string `json:"ResponseCode"`
	CustomerMessage   string `json:"CustomerMessage"`
}

// Credentials holds the Daraja app and shortcode secrets.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
}

// HTTPClient implements Client via the Daraja REST API.
type HTTPClient struct {
	baseURL    *url.URL
	creds      Credentials
	httpClient *http.Client
	logger     *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// NewHTTPClient creates a Daraja client with default timeout.
func NewHTTPClient(baseURL string, creds Credentials, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse daraja url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("daraja url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		creds:   creds,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// STKPush initiates a payment prompt for the given phone number.
// AmountCents must be a whole-shilling value; the gateway accepts no
// fractional units, and callers validate totals before reaching here.
func (c *HTTPClient) STKPush(ctx context.Context, push STKPushRequest) (*STKPushResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	timestamp := now.Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(c.creds.Shortcode + c.creds.Passkey + timestamp))

	payload := stkPushPayload{
		BusinessShortCode: c.creds.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            push.AmountCents / 100,
		PartyA:            push.PhoneNumber,
		PartyB:            c.creds.Shortcode,
		PhoneNumber:       push.PhoneNumber,
		CallBackURL:       c.creds.CallbackURL,
		AccountReference:  push.AccountReference,
		TransactionDesc:   push.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint("/mpesa/stkpush/v1/processrequest")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("stk push failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("daraja stk push: %s", resp.Status)
	}

	var result STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// accessToken returns a cached OAuth token, refreshing it when close to expiry.
func (c *HTTPClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.token, nil
	}

	endpoint := c.endpoint("/oauth/v1/generate") + "?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.creds.ConsumerKey, c.creds.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("daraja token request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return "", fmt.Errorf("daraja token: %s", resp.Status)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("daraja token: empty access token")
	}

	ttl := 3600 * time.Second
	if seconds, err := time.ParseDuration(tok.ExpiresIn + "s"); err == nil && seconds > 0 {
		ttl = seconds
	}
	c.token = tok.AccessToken
	c.tokenExpiry = time.Now().Add(ttl)
	return c.token, nil
}

func (c *HTTPClient) endpoint(p string) string {
	endpoint := *c.baseURL
	endpoint.Path = p
	return endpoint.String()
}

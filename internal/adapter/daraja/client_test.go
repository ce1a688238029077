package daraja

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testCreds() Credentials {
	return Credentials{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Shortcode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://example.com/api/mpesa/callback",
	}
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testCreds(), testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testCreds(), testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPClientSTKPush(t *testing.T) {
	var tokenRequests int32
	var captured stkPushPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/oauth/v1/generate"):
			atomic.AddInt32(&tokenRequests, 1)
			user, pass, ok := r.BasicAuth()
			if !ok || user != "key" || pass != "secret" {
				t.Errorf("unexpected basic auth %q %q", user, pass)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "expires_in": "3599"})
		case r.URL.Path == "/mpesa/stkpush/v1/processrequest":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Errorf("unexpected authorization %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Errorf("decode push payload: %v", err)
			}
			_ = json.NewEncoder(w).Encode(STKPushResponse{
				MerchantRequestID: "m-1",
				CheckoutRequestID: "c-1",
				ResponseCode:      "0",
				CustomerMessage:   "Success. Request accepted for processing",
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testCreds(), testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.STKPush(context.Background(), STKPushRequest{
		PhoneNumber:      "254712345678",
		AmountCents:      50000,
		AccountReference: "42",
		Description:      "TechReads order",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CheckoutRequestID != "c-1" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if captured.Amount != 500 {
		t.Fatalf("expected 500 whole shillings, got %d", captured.Amount)
	}
	if captured.PartyA != "254712345678" || captured.PhoneNumber != "254712345678" {
		t.Fatalf("unexpected payer fields %+v", captured)
	}
	if captured.PartyB != "174379" || captured.BusinessShortCode != "174379" {
		t.Fatalf("unexpected shortcode fields %+v", captured)
	}
	if captured.TransactionType != "CustomerPayBillOnline" {
		t.Fatalf("unexpected transaction type %q", captured.TransactionType)
	}
	if captured.AccountReference != "42" {
		t.Fatalf("unexpected account reference %q", captured.AccountReference)
	}
	if captured.CallBackURL != "https://example.com/api/mpesa/callback" {
		t.Fatalf("unexpected callback url %q", captured.CallBackURL)
	}

	raw, err := base64.StdEncoding.DecodeString(captured.Password)
	if err != nil {
		t.Fatalf("decode password: %v", err)
	}
	if want := "174379" + "passkey" + captured.Timestamp; string(raw) != want {
		t.Fatalf("unexpected password %q, want %q", raw, want)
	}

	// Second push reuses the cached token.
	if _, err := client.STKPush(context.Background(), STKPushRequest{PhoneNumber: "254712345678", AmountCents: 100, AccountReference: "7"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&tokenRequests); got != 1 {
		t.Fatalf("expected one token request, got %d", got)
	}
}

func TestHTTPClientSTKPushGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}
		http.Error(w, `{"errorCode":"500.001.1001"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testCreds(), testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.STKPush(context.Background(), STKPushRequest{PhoneNumber: "254712345678", AmountCents: 100}); err == nil {
		t.Fatal("expected error for gateway failure")
	}
}

func TestHTTPClientTokenFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testCreds(), testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.STKPush(context.Background(), STKPushRequest{PhoneNumber: "254712345678", AmountCents: 100}); err == nil {
		t.Fatal("expected error for rejected credentials")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": ""})
	}))
	defer empty.Close()

	client, err = NewHTTPClient(empty.URL, testCreds(), testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.STKPush(context.Background(), STKPushRequest{PhoneNumber: "254712345678", AmountCents: 100}); err == nil {
		t.Fatal("expected error for empty access token")
	}
}

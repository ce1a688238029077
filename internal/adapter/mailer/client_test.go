package mailer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPMailerValidatesURL(t *testing.T) {
	if _, err := NewHTTPMailer("://bad-url", "key", "orders@example.com", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPMailer("/relative", "key", "orders@example.com", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPMailerSend(t *testing.T) {
	var captured message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer relay-key" {
			t.Errorf("unexpected authorization %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode message: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := NewHTTPMailer(server.URL, "relay-key", "orders@techreads.example", testLogger())
	if err != nil {
		t.Fatalf("failed to create mailer: %v", err)
	}

	if err := client.Send(context.Background(), "reader@example.com", "Your order #42 is now Paid", "<p>Paid</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.From != "orders@techreads.example" || captured.To != "reader@example.com" {
		t.Fatalf("unexpected addressing %+v", captured)
	}
	if captured.Subject != "Your order #42 is now Paid" || captured.HTML != "<p>Paid</p>" {
		t.Fatalf("unexpected content %+v", captured)
	}
}

func TestHTTPMailerSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid recipient"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, err := NewHTTPMailer(server.URL, "relay-key", "orders@techreads.example", testLogger())
	if err != nil {
		t.Fatalf("failed to create mailer: %v", err)
	}
	if err := client.Send(context.Background(), "bad", "subject", "body"); err == nil {
		t.Fatal("expected error for rejected message")
	}
}

package test

import (
	"context"
	"sync"

	"github.com/techreads/backend/internal/adapter/daraja"
	"github.com/techreads/backend/internal/domain/model"
)

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	PushFn   func(context.Context, daraja.STKPushRequest) (*daraja.STKPushResponse, error)
	Requests []daraja.STKPushRequest
	Err      error
}

// STKPush records the request and returns a configured acknowledgement.
func (s *GatewayStub) STKPush(ctx context.Context, req daraja.STKPushRequest) (*daraja.STKPushResponse, error) {
	s.Requests = append(s.Requests, req)
	if s.PushFn != nil {
		return s.PushFn(ctx, req)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &daraja.STKPushResponse{
		MerchantRequestID: "m-1",
		CheckoutRequestID: "c-1",
		ResponseCode:      "0",
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil
}

// SentMessage captures one delivered email.
type SentMessage struct {
	To      string
	Subject string
	HTML    string
}

// MailerStub records outgoing messages for assertions.
type MailerStub struct {
	SendFn func(context.Context, string, string, string) error
	Err    error

	mu   sync.Mutex
	Sent []SentMessage
}

// Send records the message or delegates to the override.
func (s *MailerStub) Send(ctx context.Context, to, subject, html string) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, to, subject, html)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentMessage{To: to, Subject: subject, HTML: html})
	return nil
}

// Messages returns a snapshot of delivered messages.
func (s *MailerStub) Messages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMessage, len(s.Sent))
	copy(out, s.Sent)
	return out
}

// NotificationCall captures one status change notification.
type NotificationCall struct {
	Email   string
	OrderID int64
	Status  model.OrderStatus
}

// StatusNotifierStub records notifications without delivering anything.
type StatusNotifierStub struct {
	mu    sync.Mutex
	Calls []NotificationCall
}

// NotifyStatusChange records the notification.
func (s *StatusNotifierStub) NotifyStatusChange(email string, orderID int64, status model.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, NotificationCall{Email: email, OrderID: orderID, Status: status})
}

// Notifications returns a snapshot of recorded calls.
func (s *StatusNotifierStub) Notifications() []NotificationCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]NotificationCall, len(s.Calls))
	copy(out, s.Calls)
	return out
}

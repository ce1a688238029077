package model

import "time"

// PaymentStatus describes the settlement state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment records a settlement attempt tied to one order.
type Payment struct {
	ID            int64
	OrderID       int64
	Method        string
	AmountCents   int64
	Status        PaymentStatus
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

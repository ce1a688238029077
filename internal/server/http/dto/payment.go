package dto

import "time"

// SubmitPaymentRequest records a client-reported settlement.
type SubmitPaymentRequest struct {
	OrderID       int64  `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// STKPushRequest initiates a mobile payment prompt for an order.
type STKPushRequest struct {
	OrderID     int64  `json:"orderId"`
	PhoneNumber string `json:"phoneNumber"`
}

// STKPushResponse acknowledges an initiated payment prompt.
type STKPushResponse struct {
	MerchantRequestID string `json:"merchantRequestId"`
	CheckoutRequestID string `json:"checkoutRequestId"`
	CustomerMessage   string `json:"customerMessage"`
}

// PaymentResponse describes a settlement record.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"orderId"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CallbackAck is the acknowledgement body the gateway expects.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

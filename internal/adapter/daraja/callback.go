package daraja

import (
	"math"
	"strconv"
)

// Metadata item names used by the gateway on successful payments.
const (
	MetadataAmount           = "Amount"
	MetadataReceiptNumber    = "MpesaReceiptNumber"
	MetadataAccountReference = "AccountReference"
)

// CallbackEnvelope is the webhook body posted by the gateway after an
// STK push completes or fails.
type CallbackEnvelope struct {
	Body struct {
		STKCallback STKCallback `json:"stkCallback"`
	} `json:"Body"`
}

// STKCallback carries the payment outcome. ResultCode zero means success.
type STKCallback struct {
	MerchantRequestID string           `json:"MerchantRequestID"`
	CheckoutRequestID string           `json:"CheckoutRequestID"`
	ResultCode        int              `json:"ResultCode"`
	ResultDesc        string           `json:"ResultDesc"`
	CallbackMetadata  CallbackMetadata `json:"CallbackMetadata"`
}

// CallbackMetadata is a flat list of named values.
type CallbackMetadata struct {
	Items []MetadataItem `json:"Item"`
}

// MetadataItem holds one named value; Value is a string or a number
// depending on the item.
type MetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// Succeeded reports whether the gateway confirmed the payment.
func (c STKCallback) Succeeded() bool {
	return c.ResultCode == 0
}

// String returns the named metadata value rendered as a string.
func (m CallbackMetadata) String(name string) (string, bool) {
	for _, item := range m.Items {
		if item.Name != name {
			continue
		}
		switch v := item.Value.(type) {
		case string:
			return v, true
		case float64:
			if v == math.Trunc(v) {
				return strconv.FormatInt(int64(v), 10), true
			}
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

// AmountCents returns the Amount item scaled from whole shillings to cents.
func (m CallbackMetadata) AmountCents() (int64, bool) {
	for _, item := range m.Items {
		if item.Name != MetadataAmount {
			continue
		}
		switch v := item.Value.(type) {
		case float64:
			return int64(math.Round(v * 100)), true
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return int64(math.Round(parsed * 100)), true
			}
		}
	}
	return 0, false
}

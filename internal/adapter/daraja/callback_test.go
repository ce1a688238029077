package daraja

import (
	"encoding/json"
	"testing"
)

const successCallbackBody = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 0,
      "ResultDesc": "The service request is processed successfully.",
      "CallbackMetadata": {
        "Item": [
          {"Name": "Amount", "Value": 500.0},
          {"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
          {"Name": "AccountReference", "Value": "42"},
          {"Name": "PhoneNumber", "Value": 254712345678}
        ]
      }
    }
  }
}`

const failureCallbackBody = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 1032,
      "ResultDesc": "Request cancelled by user."
    }
  }
}`

func TestCallbackEnvelopeSuccess(t *testing.T) {
	var envelope CallbackEnvelope
	if err := json.Unmarshal([]byte(successCallbackBody), &envelope); err != nil {
		t.Fatalf("unmarshal callback: %v", err)
	}

	callback := envelope.Body.STKCallback
	if !callback.Succeeded() {
		t.Fatal("expected callback to report success")
	}

	receipt, ok := callback.CallbackMetadata.String(MetadataReceiptNumber)
	if !ok || receipt != "NLJ7RT61SV" {
		t.Fatalf("unexpected receipt %q ok=%v", receipt, ok)
	}

	reference, ok := callback.CallbackMetadata.String(MetadataAccountReference)
	if !ok || reference != "42" {
		t.Fatalf("unexpected reference %q ok=%v", reference, ok)
	}

	cents, ok := callback.CallbackMetadata.AmountCents()
	if !ok || cents != 50000 {
		t.Fatalf("unexpected amount %d ok=%v", cents, ok)
	}

	phone, ok := callback.CallbackMetadata.String("PhoneNumber")
	if !ok || phone != "254712345678" {
		t.Fatalf("unexpected phone %q ok=%v", phone, ok)
	}
}

func TestCallbackEnvelopeFailure(t *testing.T) {
	var envelope CallbackEnvelope
	if err := json.Unmarshal([]byte(failureCallbackBody), &envelope); err != nil {
		t.Fatalf("unmarshal callback: %v", err)
	}

	callback := envelope.Body.STKCallback
	if callback.Succeeded() {
		t.Fatal("expected callback to report failure")
	}
	if callback.ResultCode != 1032 {
		t.Fatalf("unexpected result code %d", callback.ResultCode)
	}
	if _, ok := callback.CallbackMetadata.String(MetadataReceiptNumber); ok {
		t.Fatal("expected no receipt on failed callback")
	}
	if _, ok := callback.CallbackMetadata.AmountCents(); ok {
		t.Fatal("expected no amount on failed callback")
	}
}

func TestCallbackMetadataStringFormatting(t *testing.T) {
	metadata := CallbackMetadata{Items: []MetadataItem{
		{Name: "Amount", Value: 499.5},
		{Name: "Reference", Value: "ORD-9"},
		{Name: "Odd", Value: true},
	}}

	if got, ok := metadata.String("Amount"); !ok || got != "499.5" {
		t.Fatalf("unexpected fractional render %q ok=%v", got, ok)
	}
	if got, ok := metadata.String("Reference"); !ok || got != "ORD-9" {
		t.Fatalf("unexpected string render %q ok=%v", got, ok)
	}
	if _, ok := metadata.String("Odd"); ok {
		t.Fatal("expected unsupported value type to be skipped")
	}
	if _, ok := metadata.String("Missing"); ok {
		t.Fatal("expected missing item to report absence")
	}

	if cents, ok := metadata.AmountCents(); !ok || cents != 49950 {
		t.Fatalf("unexpected cents %d ok=%v", cents, ok)
	}
}

func TestCallbackMetadataAmountFromString(t *testing.T) {
	metadata := CallbackMetadata{Items: []MetadataItem{{Name: MetadataAmount, Value: "750"}}}
	if cents, ok := metadata.AmountCents(); !ok || cents != 75000 {
		t.Fatalf("unexpected cents %d ok=%v", cents, ok)
	}

	metadata = CallbackMetadata{Items: []MetadataItem{{Name: MetadataAmount, Value: "not-a-number"}}}
	if _, ok := metadata.AmountCents(); ok {
		t.Fatal("expected unparseable amount to report absence")
	}
}

package model

import "encoding/json"

// Currency for all payments. The shop sells in rubles only.
const Currency = "RUB"

// Amount is the YooKassa money shape: fixed-point decimal string plus currency code.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Confirmation tells the gateway how the customer confirms the payment.
// Only the redirect flow is used.
type Confirmation struct {
	Type      string `json:"type"`
	ReturnURL string `json:"return_url,omitempty"`
}

// PaymentMetadata travels to the gateway on creation and comes back unmodified
// inside webhook payloads. Deliveries is the order's delivery schedule
// serialized as a JSON string, since the gateway only accepts flat string values.
type PaymentMetadata struct {
	OrderID       string `json:"order_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Plan          string `json:"plan"`
	Deliveries    string `json:"deliveries"`
}

// PaymentRequest is the body of a YooKassa create-payment call.
type PaymentRequest struct {
	Amount       Amount          `json:"amount"`
	Confirmation Confirmation    `json:"confirmation"`
	Capture      bool            `json:"capture"`
	Description  string          `json:"description"`
	Metadata     PaymentMetadata `json:"metadata"`
}

// PaymentResult is what the gateway returns on creation. It is handed back
// to the storefront verbatim; this service never interprets Status.
type PaymentResult struct {
	ID              string
	ConfirmationURL string
	Status          string
}

// EventKind is the closed set of webhook event types this service reacts to.
// Anything else decodes to EventUnknown, which is acknowledged but ignored so
// the gateway does not retry unmodeled events forever.
type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment.succeeded"
	EventPaymentCanceled  EventKind = "payment.canceled"
	EventRefundSucceeded  EventKind = "refund.succeeded"
	EventUnknown          EventKind = ""
)

// ParseEventKind maps a raw webhook event string onto the closed set.
func ParseEventKind(s string) EventKind {
	switch EventKind(s) {
	case EventPaymentSucceeded, EventPaymentCanceled, EventRefundSucceeded:
		return EventKind(s)
	default:
		return EventUnknown
	}
}

// WebhookNotification is the outer shape of a gateway callback.
// Object stays raw until the event kind determines how to decode it.
type WebhookNotification struct {
	Event  string          `json:"event"`
	Object json.RawMessage `json:"object"`
}

// PaymentMethod describes how the customer paid. The gateway may omit it.
type PaymentMethod struct {
	Type string `json:"type"`
}

// PaymentObject is the webhook payload for payment.* events. Every field is
// optional on the wire; renderers substitute documented fallbacks for holes.
type PaymentObject struct {
	ID            string          `json:"id"`
	Amount        Amount          `json:"amount"`
	Metadata      PaymentMetadata `json:"metadata"`
	PaymentMethod *PaymentMethod  `json:"payment_method"`
	CreatedAt     string          `json:"created_at"`
}

// RefundObject is the webhook payload for refund.succeeded.
type RefundObject struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    Amount `json:"amount"`
}

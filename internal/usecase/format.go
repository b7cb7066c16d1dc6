package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flower-subscription-payments/internal/domain/model"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━"

// deliveriesParseError replaces the itemized schedule when the metadata
// string does not decode. Partial information beats a lost notification.
const deliveriesParseError = "Delivery schedule parsing error"

const timestampLayout = "02.01.2006, 15:04:05"

// moscow is the fixed rendering zone for notification timestamps.
// Falls back to UTC when tzdata is unavailable.
var moscow = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// renderDeliveries itemizes the delivery schedule carried in payment
// metadata. The input is the JSON string the gateway echoed back.
func renderDeliveries(deliveriesJSON string) string {
	var deliveries []model.Delivery
	if err := json.Unmarshal([]byte(deliveriesJSON), &deliveries); err != nil {
		return deliveriesParseError
	}

	var b strings.Builder
	for i, d := range deliveries {
		fmt.Fprintf(&b, "\n<b>Delivery %d</b>\n", i+1)
		fmt.Fprintf(&b, "Date: <b>%s</b>\n", d.Date)
		fmt.Fprintf(&b, "Event: <b>%s</b>\n", d.Event)
		fmt.Fprintf(&b, "Recipient: <b>%s</b>\n", d.RecipientName)
		fmt.Fprintf(&b, "Phone: <b>%s</b>\n", d.RecipientPhone)
		fmt.Fprintf(&b, "Address: <b>%s</b>\n", d.RecipientAddress)
		fmt.Fprintf(&b, "Wishes: %s\n", orDefault(d.Wishes, "None provided"))
		b.WriteString(separator)
	}
	return b.String()
}

// renderTimestamp formats the gateway's created_at in the fixed zone.
// An unparseable value is rendered verbatim rather than dropped.
func renderTimestamp(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.In(moscow).Format(timestampLayout)
}

func renderPaymentSucceeded(p *model.PaymentObject) string {
	method := "Unknown"
	if p.PaymentMethod != nil && p.PaymentMethod.Type != "" {
		method = p.PaymentMethod.Type
	}

	deliveriesInfo := ""
	if p.Metadata.Deliveries != "" {
		deliveriesInfo = renderDeliveries(p.Metadata.Deliveries)
	}

	var b strings.Builder
	b.WriteString("<b>PAYMENT SUCCESSFUL</b>\n\n")
	b.WriteString("<b>CUSTOMER INFO</b>\n")
	fmt.Fprintf(&b, "Name: <b>%s</b>\n", orDefault(p.Metadata.CustomerName, "Not provided"))
	fmt.Fprintf(&b, "Phone: <b>%s</b>\n", orDefault(p.Metadata.CustomerPhone, "Not provided"))
	fmt.Fprintf(&b, "Email: <b>%s</b>\n\n", orDefault(p.Metadata.CustomerEmail, "Not provided"))
	b.WriteString(separator + "\n\n")
	b.WriteString("<b>PAYMENT DETAILS</b>\n")
	fmt.Fprintf(&b, "Amount: <b>%s %s</b>\n", p.Amount.Value, p.Amount.Currency)
	fmt.Fprintf(&b, "Payment ID: <b>%s</b>\n", p.ID)
	fmt.Fprintf(&b, "Order number: <b>%s</b>\n", orDefault(p.Metadata.OrderID, "No data"))
	fmt.Fprintf(&b, "Payment method: <b>%s</b>\n", method)
	b.WriteString("Status: <b>PAID</b>\n\n")
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "<b>DELIVERY SCHEDULE</b>%s\n\n", deliveriesInfo)
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "Time: <b>%s</b>\n\n", renderTimestamp(p.CreatedAt))
	b.WriteString("Order is ready for processing!")
	return b.String()
}

func renderPaymentCanceled(p *model.PaymentObject) string {
	var b strings.Builder
	b.WriteString("<b>PAYMENT CANCELED</b>\n\n")
	fmt.Fprintf(&b, "Order number: <b>%s</b>\n", orDefault(p.Metadata.OrderID, "No data"))
	fmt.Fprintf(&b, "Amount: <b>%s %s</b>\n", p.Amount.Value, p.Amount.Currency)
	fmt.Fprintf(&b, "Payment ID: <b>%s</b>\n\n", p.ID)
	b.WriteString("Customer canceled the payment")
	return b.String()
}

func renderRefundSucceeded(r *model.RefundObject) string {
	var b strings.Builder
	b.WriteString("<b>REFUND COMPLETED</b>\n\n")
	fmt.Fprintf(&b, "Payment ID: <b>%s</b>\n", r.PaymentID)
	fmt.Fprintf(&b, "Refund amount: <b>%s %s</b>\n", r.Amount.Value, r.Amount.Currency)
	fmt.Fprintf(&b, "Refund ID: <b>%s</b>", r.ID)
	return b.String()
}

package usecase

import (
	"context"

	"flower-subscription-payments/internal/domain/model"
)

// Gateway creates payments at the external payment provider.
type Gateway interface {
	// CreatePayment submits a payment request under the given Idempotence-Key.
	// The key travels as a header, not as part of the body.
	CreatePayment(ctx context.Context, req *model.PaymentRequest, idempotenceKey string) (*model.PaymentResult, error)
}

// Notifier delivers a formatted message to the staff channel, best-effort.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

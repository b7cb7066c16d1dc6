// File: internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"flower-subscription-payments/internal/domain"
	"flower-subscription-payments/internal/domain/model"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

type PaymentUseCase interface {
	// Create validates the order, prices it and creates the payment at the
	// gateway. Validation failures are domain sentinel errors; anything else
	// is a gateway failure.
	Create(ctx context.Context, order *model.Order) (*model.PaymentResult, error)
}

type paymentUC struct {
	gateway   Gateway
	returnURL string
	log       *zerolog.Logger
}

func NewPaymentUseCase(gateway Gateway, returnURL string, logger *zerolog.Logger) *paymentUC {
	return &paymentUC{gateway: gateway, returnURL: returnURL, log: logger}
}

// BuildPayment validates an order against the tariff table and constructs the
// gateway request body. It is pure: no network, no randomness.
func BuildPayment(order *model.Order, returnURL string) (*model.PaymentRequest, error) {
	if order == nil || order.ID == "" || order.CustomerName == "" || order.PlanKey == "" {
		return nil, domain.ErrMissingParameters
	}
	price, ok := model.PlanPrice(order.PlanKey)
	if !ok {
		return nil, domain.ErrInvalidPlan
	}
	if len(order.Deliveries) == 0 {
		return nil, domain.ErrNoDeliveries
	}

	total := price * int64(len(order.Deliveries))

	// The delivery schedule rides along as a JSON string so the gateway can
	// echo it back unmodified in webhook metadata.
	deliveriesJSON, err := json.Marshal(order.Deliveries)
	if err != nil {
		return nil, fmt.Errorf("marshal deliveries: %w", err)
	}

	return &model.PaymentRequest{
		Amount: model.Amount{
			Value:    FormatAmount(total),
			Currency: model.Currency,
		},
		Confirmation: model.Confirmation{
			Type:      "redirect",
			ReturnURL: returnURL,
		},
		Capture:     true,
		Description: fmt.Sprintf("Flower subscription - %d deliveries", len(order.Deliveries)),
		Metadata: model.PaymentMetadata{
			OrderID:       order.ID,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			CustomerPhone: order.CustomerPhone,
			Plan:          order.PlanKey,
			Deliveries:    string(deliveriesJSON),
		},
	}, nil
}

// FormatAmount renders whole rubles as the gateway's fixed-point decimal
// string with two fraction digits. Tariffs are integral, so the fraction is
// always ".00"; integer math keeps float drift out entirely.
func FormatAmount(rubles int64) string {
	return strconv.FormatInt(rubles, 10) + ".00"
}

func (u *paymentUC) Create(ctx context.Context, order *model.Order) (*model.PaymentResult, error) {
	req, err := BuildPayment(order, u.returnURL)
	if err != nil {
		return nil, err
	}

	// Fresh key per call. Retried submissions of the same logical order get
	// distinct keys here; dedup of true duplicates is the gateway's job.
	idempotenceKey := uuid.NewString()

	u.log.Info().
		Str("order_id", order.ID).
		Str("plan", order.PlanKey).
		Int("deliveries", len(order.Deliveries)).
		Str("amount", req.Amount.Value).
		Msg("creating payment")

	res, err := u.gateway.CreatePayment(ctx, req, idempotenceKey)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", order.ID).Msg("payment creation failed")
		return nil, err
	}

	u.log.Info().Str("order_id", order.ID).Str("payment_id", res.ID).Msg("payment created")
	return res, nil
}

//go:build !integration

package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"flower-subscription-payments/internal/domain"
	"flower-subscription-payments/internal/domain/model"
	"flower-subscription-payments/internal/usecase"
)

func validOrder() *model.Order {
	return &model.Order{
		ID:            "order-1",
		CustomerName:  "Ann",
		CustomerEmail: "ann@example.com",
		CustomerPhone: "+10000000001",
		PlanKey:       "standard",
		Deliveries: []model.Delivery{
			{Date: "2024-01-01", Event: "Birthday", RecipientName: "Bob", RecipientPhone: "+1", RecipientAddress: "Addr"},
			{Date: "2024-02-01", Event: "Anniversary", RecipientName: "Eve", RecipientPhone: "+2", RecipientAddress: "Addr 2", Wishes: "roses"},
		},
	}
}

func TestBuildPayment_Validation(t *testing.T) {
	t.Run("should reject missing customer name", func(t *testing.T) {
		order := validOrder()
		order.CustomerName = ""

		_, err := usecase.BuildPayment(order, "https://shop.example/success")
		if !errors.Is(err, domain.ErrMissingParameters) {
			t.Fatalf("expected ErrMissingParameters, got: %v", err)
		}
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		order := validOrder()
		order.ID = ""

		_, err := usecase.BuildPayment(order, "")
		if !errors.Is(err, domain.ErrMissingParameters) {
			t.Fatalf("expected ErrMissingParameters, got: %v", err)
		}
	})

	t.Run("should reject unknown plan", func(t *testing.T) {
		order := validOrder()
		order.PlanKey = "gold"

		_, err := usecase.BuildPayment(order, "")
		if !errors.Is(err, domain.ErrInvalidPlan) {
			t.Fatalf("expected ErrInvalidPlan, got: %v", err)
		}
	})

	t.Run("should reject empty delivery schedule", func(t *testing.T) {
		order := validOrder()
		order.Deliveries = nil

		_, err := usecase.BuildPayment(order, "")
		if !errors.Is(err, domain.ErrNoDeliveries) {
			t.Fatalf("expected ErrNoDeliveries, got: %v", err)
		}
	})
}

func TestBuildPayment_Amount(t *testing.T) {
	// amount = unit price * delivery count, always with two fraction digits
	cases := []struct {
		plan  string
		price int64
	}{
		{"basic", 500},
		{"standard", 750},
		{"premium", 1000},
	}
	for _, tc := range cases {
		for n := 1; n <= 12; n++ {
			order := validOrder()
			order.PlanKey = tc.plan
			order.Deliveries = make([]model.Delivery, n)
			for i := range order.Deliveries {
				order.Deliveries[i] = model.Delivery{Date: "2024-01-01"}
			}

			req, err := usecase.BuildPayment(order, "")
			if err != nil {
				t.Fatalf("plan %s, n=%d: unexpected error: %v", tc.plan, n, err)
			}
			want := fmt.Sprintf("%d.00", tc.price*int64(n))
			if req.Amount.Value != want {
				t.Errorf("plan %s, n=%d: amount = %q, want %q", tc.plan, n, req.Amount.Value, want)
			}
			if req.Amount.Currency != "RUB" {
				t.Errorf("currency = %q, want RUB", req.Amount.Currency)
			}
		}
	}
}

func TestBuildPayment_Request(t *testing.T) {
	order := validOrder()

	req, err := usecase.BuildPayment(order, "https://shop.example/success")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.Capture {
		t.Error("expected auto-capture to be enabled")
	}
	if req.Confirmation.Type != "redirect" {
		t.Errorf("confirmation type = %q, want redirect", req.Confirmation.Type)
	}
	if req.Confirmation.ReturnURL != "https://shop.example/success" {
		t.Errorf("return url = %q", req.Confirmation.ReturnURL)
	}
	if req.Description != "Flower subscription - 2 deliveries" {
		t.Errorf("description = %q", req.Description)
	}
	if req.Metadata.OrderID != "order-1" || req.Metadata.Plan != "standard" {
		t.Errorf("metadata = %+v", req.Metadata)
	}

	// The delivery schedule must survive a serialization round trip so the
	// webhook side can itemize it later.
	var decoded []model.Delivery
	if err := json.Unmarshal([]byte(req.Metadata.Deliveries), &decoded); err != nil {
		t.Fatalf("metadata deliveries do not decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].RecipientName != "Bob" || decoded[1].Wishes != "roses" {
		t.Errorf("decoded deliveries = %+v", decoded)
	}
}

func TestPaymentUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a payment successfully", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{}
		uc := usecase.NewPaymentUseCase(gw, "https://shop.example/success", newTestLogger())

		// --- Act ---
		res, err := uc.Create(ctx, validOrder())

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if res.ID != "pay_test" || res.Status != "pending" {
			t.Errorf("unexpected result: %+v", res)
		}
		if len(gw.Keys) != 1 || gw.Keys[0] == "" {
			t.Fatalf("expected one non-empty idempotence key, got %v", gw.Keys)
		}
	})

	t.Run("should use a fresh idempotence key per call", func(t *testing.T) {
		gw := &MockGateway{}
		uc := usecase.NewPaymentUseCase(gw, "", newTestLogger())

		order := validOrder()
		if _, err := uc.Create(ctx, order); err != nil {
			t.Fatalf("first call: %v", err)
		}
		if _, err := uc.Create(ctx, order); err != nil {
			t.Fatalf("second call: %v", err)
		}

		if len(gw.Keys) != 2 {
			t.Fatalf("expected two keys, got %d", len(gw.Keys))
		}
		if gw.Keys[0] == gw.Keys[1] {
			t.Errorf("idempotence key reused across calls: %q", gw.Keys[0])
		}
	})

	t.Run("should not call the gateway on validation failure", func(t *testing.T) {
		gw := &MockGateway{}
		uc := usecase.NewPaymentUseCase(gw, "", newTestLogger())

		order := validOrder()
		order.PlanKey = "gold"

		_, err := uc.Create(ctx, order)
		if !errors.Is(err, domain.ErrInvalidPlan) {
			t.Fatalf("expected ErrInvalidPlan, got: %v", err)
		}
		if len(gw.Keys) != 0 {
			t.Errorf("gateway was called %d times", len(gw.Keys))
		}
	})

	t.Run("should surface gateway errors unchanged", func(t *testing.T) {
		gwErr := errors.New("yookassa error: Invalid shop credentials")
		gw := &MockGateway{
			CreatePaymentFunc: func(ctx context.Context, req *model.PaymentRequest, key string) (*model.PaymentResult, error) {
				return nil, gwErr
			},
		}
		uc := usecase.NewPaymentUseCase(gw, "", newTestLogger())

		_, err := uc.Create(ctx, validOrder())
		if !errors.Is(err, gwErr) {
			t.Fatalf("expected gateway error, got: %v", err)
		}
	})
}

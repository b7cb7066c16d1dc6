//go:build !integration

package usecase_test

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"flower-subscription-payments/internal/domain/model"
)

// --- Mock collaborators (ports) ---

type MockGateway struct {
	mu       sync.Mutex
	Keys     []string
	Requests []*model.PaymentRequest
	// CreatePaymentFunc overrides the default canned response.
	CreatePaymentFunc func(ctx context.Context, req *model.PaymentRequest, key string) (*model.PaymentResult, error)
}

func (m *MockGateway) CreatePayment(ctx context.Context, req *model.PaymentRequest, key string) (*model.PaymentResult, error) {
	m.mu.Lock()
	m.Keys = append(m.Keys, key)
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req, key)
	}
	return &model.PaymentResult{
		ID:              "pay_test",
		ConfirmationURL: "https://gateway.example/confirm/pay_test",
		Status:          "pending",
	}, nil
}

type MockNotifier struct {
	mu   sync.Mutex
	Sent []string
	// SendFunc simulates delivery failures.
	SendFunc func(ctx context.Context, text string) error
}

func (m *MockNotifier) Send(ctx context.Context, text string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, text)
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, text)
	}
	return nil
}

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

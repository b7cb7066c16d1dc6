package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"flower-subscription-payments/internal/usecase"
)

type Server struct {
	paymentUC usecase.PaymentUseCase
	notifUC   usecase.NotificationUseCase
	log       *zerolog.Logger
}

func NewServer(
	paymentUC usecase.PaymentUseCase,
	notifUC usecase.NotificationUseCase,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		paymentUC: paymentUC,
		notifUC:   notifUC,
		log:       logger,
	}
}

// Register attaches handlers to the provided mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/payments/create", s.handleCreatePayment)
	mux.HandleFunc("/api/webhooks/yookassa", s.handleWebhook)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", promhttp.Handler())
}

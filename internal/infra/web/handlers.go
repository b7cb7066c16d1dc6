package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"flower-subscription-payments/internal/domain"
	"flower-subscription-payments/internal/domain/model"
	"flower-subscription-payments/internal/infra/metrics"
)

// createPaymentResponse is the storefront-facing result of payment creation.
type createPaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentID  string `json:"paymentId,omitempty"`
	PaymentURL string `json:"paymentUrl,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body createPaymentResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleCreatePayment accepts a storefront order and creates the payment at
// the gateway. The storefront calls this from the browser, hence CORS.
func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, createPaymentResponse{Success: false, Error: "Method Not Allowed"})
		return
	}

	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, createPaymentResponse{Success: false, Error: "invalid request body"})
		return
	}

	result, err := s.paymentUC.Create(r.Context(), &order)
	metrics.ObservePaymentCreated(err == nil)
	if err != nil {
		if errors.Is(err, domain.ErrMissingParameters) ||
			errors.Is(err, domain.ErrInvalidPlan) ||
			errors.Is(err, domain.ErrNoDeliveries) {
			writeJSON(w, http.StatusBadRequest, createPaymentResponse{Success: false, Error: err.Error()})
			return
		}
		// Gateway/transport failure. The gateway's own description, when it
		// was decodable, is already part of the error text.
		writeJSON(w, http.StatusInternalServerError, createPaymentResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{
		Success:    true,
		PaymentID:  result.ID,
		PaymentURL: result.ConfirmationURL,
		Status:     result.Status,
	})
}

// handleWebhook receives gateway callbacks. Once the body shape is valid the
// response is 200 "OK" no matter what happened downstream: a non-2xx here
// would make the gateway retry the callback indefinitely.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var notification model.WebhookNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if notification.Event == "" || len(notification.Object) == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	metrics.ObserveWebhookEvent(string(model.ParseEventKind(notification.Event)))

	if err := s.notifUC.HandleEvent(r.Context(), notification.Event, notification.Object); err != nil {
		s.log.Error().Err(err).Str("event", notification.Event).Msg("webhook processing failed")
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

package usecase

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"flower-subscription-payments/internal/domain/model"
)

// Compile-time check
var _ NotificationUseCase = (*notificationUC)(nil)

type NotificationUseCase interface {
	// HandleEvent routes a webhook notification by event kind and relays a
	// formatted message to the notifier. Unrecognized kinds, undecodable
	// object payloads and notifier failures are all logged and swallowed:
	// a non-nil return is reserved for unexpected internal failures, since
	// it makes the webhook answer non-2xx and the gateway retry.
	HandleEvent(ctx context.Context, event string, object json.RawMessage) error
}

type notificationUC struct {
	notifier Notifier
	log      *zerolog.Logger
}

func NewNotificationUseCase(notifier Notifier, logger *zerolog.Logger) *notificationUC {
	return &notificationUC{notifier: notifier, log: logger}
}

func (n *notificationUC) HandleEvent(ctx context.Context, event string, object json.RawMessage) error {
	kind := model.ParseEventKind(event)

	var text string
	switch kind {
	case model.EventPaymentSucceeded:
		var p model.PaymentObject
		if err := json.Unmarshal(object, &p); err != nil {
			n.logUndecodable(event, err)
			return nil
		}
		n.log.Info().Str("event", event).Str("payment_id", p.ID).Msg("webhook event")
		text = renderPaymentSucceeded(&p)

	case model.EventPaymentCanceled:
		var p model.PaymentObject
		if err := json.Unmarshal(object, &p); err != nil {
			n.logUndecodable(event, err)
			return nil
		}
		n.log.Info().Str("event", event).Str("payment_id", p.ID).Msg("webhook event")
		text = renderPaymentCanceled(&p)

	case model.EventRefundSucceeded:
		var r model.RefundObject
		if err := json.Unmarshal(object, &r); err != nil {
			n.logUndecodable(event, err)
			return nil
		}
		n.log.Info().Str("event", event).Str("refund_id", r.ID).Msg("webhook event")
		text = renderRefundSucceeded(&r)

	default:
		n.log.Info().Str("event", event).Msg("unhandled webhook event kind")
		return nil
	}

	// Best-effort delivery. A failed send must never bubble up, or the
	// gateway would treat the acknowledgment as failed and retry forever.
	if err := n.notifier.Send(ctx, text); err != nil {
		n.log.Error().Err(err).Str("event", event).Msg("notification send failed")
		return nil
	}
	return nil
}

// logUndecodable records an object payload that does not match the expected
// shape for its event kind. The event is still acknowledged: an error here
// would make the gateway retry a payload that will never decode.
func (n *notificationUC) logUndecodable(event string, err error) {
	n.log.Error().Err(err).Str("event", event).Msg("undecodable webhook object, skipping notification")
}

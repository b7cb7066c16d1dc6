package telegram

import (
	"context"

	"github.com/rs/zerolog"
)

// NoopNotifier is used when Telegram credentials are not configured.
// It logs the skipped message instead of sending anything; an unconfigured
// notifier is a valid deployment, not an error.
type NoopNotifier struct {
	log *zerolog.Logger
}

func NewNoopNotifier(logger *zerolog.Logger) *NoopNotifier {
	return &NoopNotifier{log: logger}
}

func (n *NoopNotifier) Send(ctx context.Context, text string) error {
	n.log.Info().Int("len", len(text)).Msg("telegram not configured, dropping notification")
	return nil
}

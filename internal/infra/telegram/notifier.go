package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"flower-subscription-payments/internal/infra/metrics"
)

// Notifier relays staff notifications to a Telegram chat using tgbotapi.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zerolog.Logger
}

// NewNotifier creates a Telegram notifier for the given bot token and chat.
func NewNotifier(token string, chatID int64, logger *zerolog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, log: logger}, nil
}

// Send delivers one HTML-formatted message to the configured chat.
// tgbotapi has no context support on Send; the ctx check keeps canceled
// requests from producing late messages.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		metrics.ObserveNotificationSent(false)
		return fmt.Errorf("telegram send: %w", err)
	}
	metrics.ObserveNotificationSent(true)
	n.log.Debug().Int64("chat_id", n.chatID).Msg("notification delivered")
	return nil
}

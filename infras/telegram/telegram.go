package telegram

//go:generate go run go.uber.org/mock/mockgen -source=./telegram.go -destination=./mocks/telegram_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Notifier sends short housekeeping messages to the staff chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type botNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

type noopNotifier struct{}

func (noopNotifier) Notify(_ context.Context, _ string) error {
	return nil
}

// New returns a Telegram notifier, or one that drops messages when
// notifications are disabled or the bot cannot be authorised.
func New(config *config.Config) Notifier {
	tg := config.Notification.Telegram
	if !tg.Enable {
		return noopNotifier{}
	}

	api, err := tgbotapi.NewBotAPI(tg.Token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to authorise Telegram bot, notifications disabled")

		return noopNotifier{}
	}

	log.Info().Str("bot", api.Self.UserName).Int64("chatID", tg.ChatID).Msg("Telegram notifier initialized")

	return &botNotifier{api: api, chatID: tg.ChatID}
}

func (b *botNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	msg := tgbotapi.NewMessage(b.chatID, text)

	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chatID", b.chatID).Msg("Failed to send Telegram message")

		return fmt.Errorf("telegram send: %w", err)
	}

	return nil
}

// Package telegram forwards new-order batches to a staff chat.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

//go:generate mockgen -source internal/telegram/telegram.go -destination=internal/telegram/telegram_mock_test.go -package=telegram

const maxListed = 10

type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier struct {
	api    BotAPI
	chatID int64
	logger *zap.Logger
}

// Connect authorises the bot token against the Telegram API.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return api, nil
}

func NewNotifier(api BotAPI, chatID int64, logger *zap.Logger) *Notifier {
	return &Notifier{api: api, chatID: chatID, logger: logger}
}

// Send posts one message per batch. The bot API has no context support, so
// ctx only short-circuits a call that is already too late.
func (n *Notifier) Send(ctx context.Context, batch []domain.Notification) error {
	if len(batch) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, FormatBatch(batch))
	msg.DisableWebPagePreview = true

	sent, err := n.api.Send(msg)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	n.logger.Debug("telegram message sent",
		zap.Int64("chat_id", n.chatID),
		zap.Int("message_id", sent.MessageID),
		zap.Int("orders", len(batch)),
	)
	return nil
}

// Publish lets the notifier sit directly behind the console dispatcher.
func (n *Notifier) Publish(ctx context.Context, batch []domain.Notification) error {
	return n.Send(ctx, batch)
}

// FormatBatch renders the preview card as plain text.
func FormatBatch(batch []domain.Notification) string {
	var b strings.Builder
	if len(batch) == 1 {
		b.WriteString("🔔 New Order\n")
	} else {
		fmt.Fprintf(&b, "🔔 %d New Orders\n", len(batch))
	}
	for i, n := range batch {
		if i == maxListed {
			fmt.Fprintf(&b, "…and %d more orders\n", len(batch)-maxListed)
			break
		}
		fmt.Fprintf(&b, "#%d %s: %s", n.ID, n.Customer, n.Summary)
		if !n.OrderTime.IsZero() {
			fmt.Fprintf(&b, " (%s)", n.OrderTime.Format("15:04"))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

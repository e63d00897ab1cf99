package notification

import (
	"context"
	"fmt"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRentalBooked(ctx context.Context, user *domain.User, item *domain.Item, rental *domain.Rental) {
	n.send(ctx, user.TelegramChatID, bookedText(item, rental))
}

func (n *TelegramNotifier) NotifyRentalCancelled(ctx context.Context, user *domain.User, item *domain.Item, rental *domain.Rental) {
	n.send(ctx, user.TelegramChatID, cancelledText(item, rental))
}

func bookedText(item *domain.Item, rental *domain.Rental) string {
	return fmt.Sprintf(
		"*Аренда оформлена!*\n\n"+"Инструмент: %s (%s)\n"+"Начало: %s\n"+"Цена за сутки: %s",
		item.Name, item.Category,
		rental.StartDate.Format(dateLayout),
		formatCents(item.DailyPriceCents),
	)
}

func cancelledText(item *domain.Item, rental *domain.Rental) string {
	text := fmt.Sprintf(
		"*Аренда завершена*\n\n"+"Инструмент: %s\n"+"Период: %s",
		item.Name, rental.StartDate.Format(dateLayout),
	)
	if rental.EndDate != nil {
		text += " - " + rental.EndDate.Format(dateLayout)
	}
	if rental.TotalPriceCents != nil {
		text += "\nИтого: " + formatCents(*rental.TotalPriceCents)
	}
	return text
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, organizer notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyApplicationReceived(
	ctx context.Context,
	organizer *domain.User,
	meet *domain.Meet,
	attendee *domain.MeetAttendee,
) {
	text := fmt.Sprintf(
		"*New application*\n\n"+"Meet: %s\n"+"Applicant: %s\n"+"Status: %s",
		escape(meet.Name), escape(attendee.Name), attendee.Status,
	)
	if attendee.Guests > 0 {
		text += fmt.Sprintf("\nGuests: %d", attendee.Guests)
	}
	n.send(ctx, organizer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWaitlistPromoted(
	ctx context.Context,
	organizer *domain.User,
	meet *domain.Meet,
	attendee *domain.MeetAttendee,
) {
	text := fmt.Sprintf(
		"*Waitlist promotion*\n\n"+"Meet: %s\n"+"%s moved off the waitlist and is now confirmed.",
		escape(meet.Name), escape(attendee.Name),
	)
	n.send(ctx, organizer.TelegramChatID, text)
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

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

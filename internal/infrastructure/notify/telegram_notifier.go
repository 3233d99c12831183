package notify

import (
	"context"
	"fmt"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/go-telegram/bot"
)

// TelegramNotifier posts the lead to the workshop chat.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
}

var _ interfaces.IOwnerNotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(token string, chatID int64, opts ...bot.Option) (*TelegramNotifier, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *TelegramNotifier) NotifyContact(ctx context.Context, lead entities.ContactRequest) error {
	if _, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   leadSubject(lead) + "\n\n" + leadText(lead),
	}); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

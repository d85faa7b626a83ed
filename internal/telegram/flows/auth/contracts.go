package auth

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Markello93/orders-bot/internal/telegram/states"
)

type botApi interface {
	Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error)
}

type stateManager interface {
	SetState(userID int64, state states.State)
	Clear(userID int64)
}

type accessChecker interface {
	CheckAccess(ctx context.Context, phoneNumber string, userID int64) (bool, error)
}

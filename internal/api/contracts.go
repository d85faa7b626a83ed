package api

import (
	"context"
	"encoding/json"

	"github.com/Markello93/orders-bot/internal/orders"
)

type notifier interface {
	SendOrder(ctx context.Context, chatID int64, rawOrder json.RawMessage) (int, error)
	EditOrder(ctx context.Context, chatID int64, messageID int, rawOrder json.RawMessage) error
	Remove(ctx context.Context, chatID int64, messageID int) error
}

type accessChecker interface {
	CheckAccess(phoneNumber string, userID int64) bool
}

type statusForwarder interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status orders.Status) error
}

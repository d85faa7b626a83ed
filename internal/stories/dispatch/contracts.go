package dispatch

import (
	"context"

	"github.com/Markello93/orders-bot/internal/orders"
)

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status orders.Status) error
}

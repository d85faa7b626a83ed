package dispatch

import (
	"context"
	"log/slog"

	"github.com/Markello93/orders-bot/internal/metrics"
	"github.com/Markello93/orders-bot/internal/orders"
	"github.com/Markello93/orders-bot/internal/telegram/messages"
)

// Service проводит нажатие inline-кнопки до бэкенда заказов. Вызов
// fire-and-forget: без ретраев и ключей идемпотентности, результат сразу
// уходит пользователю текстом для answerCallbackQuery.
type Service struct {
	backend StatusUpdater
	logger  *slog.Logger
}

func NewService(backend StatusUpdater, logger *slog.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}

// Dispatch разбирает callback-токен "<action>:<order_id>", выставляет заказу
// целевой статус и возвращает текст подтверждения для пользователя.
// Нераспознанное действие всё равно уезжает на бэкенд со статусом UNKNOWN -
// отказ бэкенда вернётся пользователю как общая ошибка.
func (s *Service) Dispatch(ctx context.Context, token string) string {
	action, ok := orders.ParseActionToken(token)
	if !ok {
		s.logger.Warn("некорректный callback-токен", slog.String("token", token))
		metrics.DispatchesTotal.WithLabelValues("malformed", metrics.ResultError).Inc()
		return messages.ActionFailed
	}

	status := action.TargetStatus()
	if err := s.backend.UpdateOrderStatus(ctx, action.OrderID, status); err != nil {
		s.logger.Error("не удалось обновить статус заказа",
			slog.String("order_id", action.OrderID),
			slog.String("action", string(action.Kind)),
			slog.Any("error", err))
		metrics.DispatchesTotal.WithLabelValues(string(action.Kind), metrics.ResultError).Inc()
		return messages.ActionFailed
	}

	metrics.DispatchesTotal.WithLabelValues(string(action.Kind), metrics.ResultOK).Inc()
	s.logger.Info("статус заказа отправлен на бэкенд",
		slog.String("order_id", action.OrderID),
		slog.String("action", string(action.Kind)),
		slog.String("status", string(status)))

	return ackText(action.Kind)
}

func ackText(kind orders.ActionKind) string {
	switch kind {
	case orders.ActionConfirm:
		return messages.ActionConfirmed
	case orders.ActionCancel:
		return messages.ActionCancelled
	case orders.ActionComplete:
		return messages.ActionCompleted
	}
	return messages.ActionDone
}

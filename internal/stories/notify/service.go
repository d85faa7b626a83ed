package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/Markello93/orders-bot/internal/metrics"
	"github.com/Markello93/orders-bot/internal/orders"
)

// Service превращает заказ в уведомление и доставляет его в чат персонала.
// История уведомлений нигде не хранится: пара (chat_id, message_id) живёт
// на стороне бэкенда, который прислал заказ.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

func NewService(gateway Gateway, logger *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// SendOrder рендерит заказ и отправляет уведомление, возвращая message_id.
func (s *Service) SendOrder(ctx context.Context, chatID int64, rawOrder json.RawMessage) (int, error) {
	order, text, markup, err := s.prepare(rawOrder)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("send", metrics.ResultError).Inc()
		return 0, err
	}

	messageID, err := s.gateway.SendOrderMessage(ctx, chatID, text, markup)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("send", metrics.ResultError).Inc()
		return 0, err
	}

	metrics.NotificationsTotal.WithLabelValues("send", metrics.ResultOK).Inc()
	s.logger.Info("уведомление о заказе отправлено",
		slog.String("delivery_id", uuid.NewString()),
		slog.Int64("chat_id", chatID),
		slog.Int("message_id", messageID),
		slog.Int("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)),
		slog.String("total", orders.TotalWithDelivery(order).String()))

	return messageID, nil
}

// EditOrder перерисовывает ранее отправленное уведомление под новый статус.
func (s *Service) EditOrder(ctx context.Context, chatID int64, messageID int, rawOrder json.RawMessage) error {
	order, text, markup, err := s.prepare(rawOrder)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("edit", metrics.ResultError).Inc()
		return err
	}

	if err := s.gateway.EditOrderMessage(ctx, chatID, messageID, text, markup); err != nil {
		metrics.NotificationsTotal.WithLabelValues("edit", metrics.ResultError).Inc()
		return err
	}

	metrics.NotificationsTotal.WithLabelValues("edit", metrics.ResultOK).Inc()
	s.logger.Info("уведомление о заказе обновлено",
		slog.Int64("chat_id", chatID),
		slog.Int("message_id", messageID),
		slog.Int("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)))

	return nil
}

// Remove удаляет уведомление из чата.
func (s *Service) Remove(ctx context.Context, chatID int64, messageID int) error {
	if err := s.gateway.DeleteMessage(ctx, chatID, messageID); err != nil {
		metrics.NotificationsTotal.WithLabelValues("delete", metrics.ResultError).Inc()
		return err
	}

	metrics.NotificationsTotal.WithLabelValues("delete", metrics.ResultOK).Inc()
	s.logger.Info("уведомление о заказе удалено",
		slog.Int64("chat_id", chatID),
		slog.Int("message_id", messageID))

	return nil
}

func (s *Service) prepare(rawOrder json.RawMessage) (*orders.Order, string, *tgbotapi.InlineKeyboardMarkup, error) {
	order, err := orders.Parse(rawOrder)
	if err != nil {
		return nil, "", nil, err
	}

	text, controls, err := orders.Render(order)
	if err != nil {
		return nil, "", nil, fmt.Errorf("render order %d: %w", order.OrderNumber, err)
	}

	return order, text, Keyboard(controls), nil
}

// Keyboard переводит дескриптор кнопок рендерера в inline-клавиатуру Telegram.
// Для терминальных статусов возвращает nil - сообщение уходит без кнопок.
func Keyboard(controls []orders.Control) *tgbotapi.InlineKeyboardMarkup {
	if len(controls) == 0 {
		return nil
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, len(controls))
	for _, control := range controls {
		if control.URL != "" {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(control.Text, control.URL))
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(control.Text, control.CallbackData))
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(row)
	return &markup
}

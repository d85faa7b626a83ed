package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// GatewayError - ошибка исходящего вызова к Telegram Bot API. Наружу за
// границу обработчика она не выходит: хендлеры превращают её в структурный
// ответ {status, message}.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("telegram gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

type Client struct {
	api     *tgbotapi.BotAPI
	timeout time.Duration
	logger  *slog.Logger
	limiter *rate.Limiter
	updates <-chan tgbotapi.Update
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewClient(token string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	// Тот же http-клиент обслуживает и long polling, поэтому его таймаут
	// должен быть больше окна ожидания обновлений.
	httpClient := &http.Client{Timeout: timeout + 10*time.Second}

	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("создание telegram бота: %w", err)
	}

	// Rate limiting - 30 сообщений в секунду
	limiter := rate.NewLimiter(30, 1)

	return &Client{
		api:     bot,
		timeout: timeout,
		logger:  logger,
		limiter: limiter,
	}, nil
}

// Start начинает получение обновлений (long polling)
func (c *Client) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(c.timeout.Seconds())

	updateChan := c.api.GetUpdatesChan(u)
	c.updates = updateChan

	c.logger.Info("Telegram бот запущен")
	return nil
}

// Stop останавливает получение обновлений
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.api.StopReceivingUpdates()
	c.logger.Info("Telegram бот остановлен")
}

// GetUpdates возвращает канал с обновлениями
func (c *Client) GetUpdates() <-chan tgbotapi.Update {
	return c.updates
}

// SendOrderMessage отправляет уведомление о заказе с Markdown-разметкой и
// inline-кнопками, возвращает message_id для последующего редактирования.
func (c *Client) SendOrderMessage(ctx context.Context, chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiting: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		c.logger.Error("ошибка отправки уведомления",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()))
		return 0, &GatewayError{Op: "sendMessage", Err: err}
	}

	return sent.MessageID, nil
}

// EditOrderMessage редактирует ранее отправленное уведомление вместе с кнопками.
func (c *Client) EditOrderMessage(ctx context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiting: %w", err)
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = markup

	if _, err := c.api.Send(edit); err != nil {
		c.logger.Error("ошибка редактирования уведомления",
			slog.Int64("chat_id", chatID),
			slog.Int("message_id", messageID),
			slog.String("error", err.Error()))
		return &GatewayError{Op: "editMessageText", Err: err}
	}

	return nil
}

// DeleteMessage удаляет уведомление из чата.
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiting: %w", err)
	}

	del := tgbotapi.NewDeleteMessage(chatID, messageID)
	if _, err := c.api.Request(del); err != nil {
		c.logger.Error("ошибка удаления уведомления",
			slog.Int64("chat_id", chatID),
			slog.Int("message_id", messageID),
			slog.String("error", err.Error()))
		return &GatewayError{Op: "deleteMessage", Err: err}
	}

	return nil
}

// Send отправляет любое сообщение с rate limiting (для интерфейса botApi)
func (c *Client) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiting: %w", err)
	}

	message, err := c.api.Send(chattable)
	if err != nil {
		c.logger.Error("ошибка отправки", slog.Any("error", err))
		return tgbotapi.Message{}, fmt.Errorf("отправка: %w", err)
	}

	return message, nil
}

// Request отправляет запрос к API (для интерфейса botApi)
func (c *Client) Request(chattable tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w", err)
	}

	resp, err := c.api.Request(chattable)
	if err != nil {
		c.logger.Error("ошибка запроса к API", slog.Any("error", err))
		return nil, fmt.Errorf("запрос к API: %w", err)
	}

	return resp, nil
}

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Markello93/orders-bot/internal/orders"
)

// Client ходит в бэкенд управления заказами: обновление статуса заказа и
// проверка телефона по списку доступа. Таймауты и ретраи не настраиваются -
// политика целиком на стороне http-клиента по умолчанию.
type Client struct {
	http           *resty.Client
	checkAccessURL string
	logger         *slog.Logger
}

func NewClient(baseURL, checkAccessURL string, timeout time.Duration, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:           httpClient,
		checkAccessURL: checkAccessURL,
		logger:         logger,
	}
}

// UpdateOrderStatus выставляет заказу новый статус на бэкенде.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status orders.Status) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("order_id", orderID).
		SetQueryParam("status", string(status)).
		Put("/orders/{order_id}/status")
	if err != nil {
		return fmt.Errorf("put order status: %w", err)
	}

	if resp.IsError() {
		c.logger.Error("бэкенд отклонил смену статуса",
			slog.String("order_id", orderID),
			slog.String("status", string(status)),
			slog.Int("code", resp.StatusCode()))
		return fmt.Errorf("order status update rejected: %s", resp.Status())
	}

	c.logger.Info("статус заказа обновлён",
		slog.String("order_id", orderID),
		slog.String("status", string(status)))
	return nil
}

type checkAccessRequest struct {
	PhoneNumber string `json:"phone_number"`
	UserID      int64  `json:"user_id"`
}

type checkAccessResponse struct {
	Authorized bool `json:"authorized"`
}

// CheckAccess проверяет телефон по списку доступа через HTTP-сервис реле.
func (c *Client) CheckAccess(ctx context.Context, phoneNumber string, userID int64) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(checkAccessRequest{PhoneNumber: phoneNumber, UserID: userID}).
		Post(c.checkAccessURL)
	if err != nil {
		return false, fmt.Errorf("post check access: %w", err)
	}

	if resp.IsError() {
		return false, fmt.Errorf("check access rejected: %s", resp.Status())
	}

	var result checkAccessResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("decode check access response: %w", err)
	}

	return result.Authorized, nil
}

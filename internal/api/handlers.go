package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/Markello93/orders-bot/internal/orders"
)

// Handlers - HTTP-поверхность для бэкенда заказов: отправка, правка и
// удаление уведомлений, проверка телефона и проброс смены статуса.
type Handlers struct {
	notifier notifier
	access   accessChecker
	backend  statusForwarder
	logger   *slog.Logger
}

func NewHandlers(notifier notifier, access accessChecker, backend statusForwarder, logger *slog.Logger) *Handlers {
	return &Handlers{
		notifier: notifier,
		access:   access,
		backend:  backend,
		logger:   logger,
	}
}

var allowedForwardStatuses = []orders.Status{
	orders.StatusInProgress,
	orders.StatusCancelledByProvider,
	orders.StatusCompleted,
}

// CheckAccess отвечает на POST /check_access.
func (h *Handlers) CheckAccess(w http.ResponseWriter, r *http.Request) {
	var req checkAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid request body: "+err.Error(), 0)
		return
	}

	authorized := h.access.CheckAccess(req.PhoneNumber, req.UserID)
	h.writeJSON(w, http.StatusOK, checkAccessResponse{Authorized: authorized})
}

// SendChat отвечает на POST /send_chat.
func (h *Handlers) SendChat(w http.ResponseWriter, r *http.Request) {
	var req sendChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid request body: "+err.Error(), 0)
		return
	}

	messageID, err := h.notifier.SendOrder(r.Context(), req.ChatID, req.Message)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, "Message sent to Telegram successfully.", messageID)
}

// EditChat отвечает на POST /edit_chat.
func (h *Handlers) EditChat(w http.ResponseWriter, r *http.Request) {
	var req editChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid request body: "+err.Error(), 0)
		return
	}

	if err := h.notifier.EditOrder(r.Context(), req.ChatID, req.MessageID, req.Message); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, "Message edited successfully.", req.MessageID)
}

// DeleteMessage отвечает на DELETE /delete_message?chat_id=&message_id=.
func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(r.URL.Query().Get("chat_id"), 10, 64)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid chat_id", 0)
		return
	}
	messageID, err := strconv.Atoi(r.URL.Query().Get("message_id"))
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid message_id", 0)
		return
	}

	if err := h.notifier.Remove(r.Context(), chatID, messageID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, "Message deleted successfully.", 0)
}

// UpdateOrderStatus отвечает на PUT /orders/{order_id}/status?status=.
func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	status := orders.Status(r.URL.Query().Get("status"))

	if !lo.Contains(allowedForwardStatuses, status) {
		h.writeStatus(w, http.StatusBadRequest, "status must be one of IN_PROGRESS, CANCELLED_BY_PROVIDER, COMPLETED", 0)
		return
	}

	if err := h.backend.UpdateOrderStatus(r.Context(), orderID, status); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, "Order status updated.", 0)
}

// writeError переводит ошибку нижних слоёв в структурный ответ. Ошибки данных
// заказа - вина клиента (400, без ретрая), всё остальное - 500 с текстом
// ошибки, как и в прежних версиях сервиса.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var malformed *orders.MalformedOrderError
	if errors.As(err, &malformed) {
		h.writeStatus(w, http.StatusBadRequest, malformed.Error(), 0)
		return
	}

	var formatErr *orders.FormatError
	if errors.As(err, &formatErr) {
		h.writeStatus(w, http.StatusBadRequest, err.Error(), 0)
		return
	}

	h.logger.Error("ошибка обработки запроса", slog.Any("error", err))
	h.writeStatus(w, http.StatusInternalServerError, "An error occurred: "+err.Error(), 0)
}

func (h *Handlers) writeStatus(w http.ResponseWriter, code int, message string, messageID int) {
	h.writeJSON(w, code, statusResponse{Status: code, Message: message, MessageID: messageID})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("ошибка записи ответа", slog.Any("error", err))
	}
}

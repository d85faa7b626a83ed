package auth

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Markello93/orders-bot/internal/telegram/messages"
	"github.com/Markello93/orders-bot/internal/telegram/states"
)

// Handler ведёт сценарий авторизации: приветствие, приём номера телефона
// (контактом или текстом) и проверка его по списку доступа.
type Handler struct {
	bot          botApi
	stateManager stateManager
	access       accessChecker
	logger       *slog.Logger
}

func NewHandler(bot botApi, sm stateManager, access accessChecker, logger *slog.Logger) *Handler {
	return &Handler{
		bot:          bot,
		stateManager: sm,
		access:       access,
		logger:       logger,
	}
}

// Start начинает сценарий: переводит пользователя в ожидание номера и
// предлагает поделиться контактом.
func (h *Handler) Start(userID, chatID int64) error {
	h.stateManager.SetState(userID, states.StateAwaitingPhone)

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(messages.ButtonSharePhone),
		),
	)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, messages.Greeting)
	msg.ReplyMarkup = keyboard
	_, err := h.bot.Send(msg)
	return err
}

// Cancel прерывает сценарий в любой точке.
func (h *Handler) Cancel(userID, chatID int64) error {
	h.stateManager.Clear(userID)

	msg := tgbotapi.NewMessage(chatID, messages.Cancel)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	_, err := h.bot.Send(msg)
	return err
}

// Handle обрабатывает сообщение в состоянии ожидания номера.
func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update) error {
	if update.Message == nil {
		return nil
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	// Нативная отправка контакта: телефон приходит уже без ручного ввода,
	// формат не проверяем.
	if update.Message.Contact != nil {
		return h.authorize(ctx, update.Message.Contact.PhoneNumber, userID, chatID)
	}

	text := strings.TrimSpace(update.Message.Text)
	if !IsValidPhoneText(text) {
		msg := tgbotapi.NewMessage(chatID, messages.InvalidPhone)
		_, err := h.bot.Send(msg)
		return err
	}

	return h.authorize(ctx, text, userID, chatID)
}

// authorize проверяет номер через сервис доступа. Состояние очищается в любом
// исходе: повторная попытка начинается заново с /start.
func (h *Handler) authorize(ctx context.Context, phoneNumber string, userID, chatID int64) error {
	defer h.stateManager.Clear(userID)

	checking := tgbotapi.NewMessage(chatID, messages.CheckingPhone)
	checking.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	if _, err := h.bot.Send(checking); err != nil {
		return err
	}

	authorized, err := h.access.CheckAccess(ctx, phoneNumber, userID)
	if err != nil {
		h.logger.Error("ошибка проверки номера",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		_, sendErr := h.bot.Send(tgbotapi.NewMessage(chatID, messages.AuthorizationFailed))
		return sendErr
	}

	reply := messages.NotAuthorized
	if authorized {
		reply = messages.Authorized
	}

	h.logger.Info("авторизация по номеру завершена",
		slog.Int64("user_id", userID),
		slog.Bool("authorized", authorized))

	_, err = h.bot.Send(tgbotapi.NewMessage(chatID, reply))
	return err
}

package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Markello93/orders-bot/internal/telegram/flows/auth"
	"github.com/Markello93/orders-bot/internal/telegram/messages"
	"github.com/Markello93/orders-bot/internal/telegram/states"
)

// Router разбирает обновления Telegram: команды, нажатия inline-кнопок заказа
// и сообщения активного сценария авторизации.
type Router struct {
	bot          botApi
	stateManager stateManager
	authHandler  *auth.Handler
	dispatcher   dispatcher
	logger       *slog.Logger
}

type botApi interface {
	Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(chattable tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type stateManager interface {
	GetState(userID int64) states.State
	Clear(userID int64)
}

type dispatcher interface {
	Dispatch(ctx context.Context, token string) string
}

// NewRouter создает новый роутер с зависимостями
func NewRouter(
	bot botApi,
	stateManager stateManager,
	authHandler *auth.Handler,
	dispatcher dispatcher,
	logger *slog.Logger,
) *Router {
	return &Router{
		bot:          bot,
		stateManager: stateManager,
		authHandler:  authHandler,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (r *Router) Route(update *tgbotapi.Update) error {
	ctx := context.Background()

	// Нажатия кнопок заказа обрабатываются независимо от состояния сценария.
	if update.CallbackQuery != nil {
		return r.handleCallback(ctx, update.CallbackQuery)
	}

	if update.Message == nil {
		return nil
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	// Команды имеют приоритет и прерывают любой сценарий.
	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			return r.authHandler.Start(userID, chatID)
		case "cancel":
			return r.authHandler.Cancel(userID, chatID)
		default:
			_, err := r.bot.Send(tgbotapi.NewMessage(chatID, messages.NotUnderstood))
			return err
		}
	}

	if r.stateManager.GetState(userID) == states.StateAwaitingPhone {
		return r.authHandler.Handle(ctx, update)
	}

	// Нет активного сценария - подсказываем с чего начать.
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, messages.Idle))
	return err
}

// handleCallback проводит нажатие кнопки до бэкенда и отвечает на callback
// query текстом результата. Обновлённое уведомление бэкенд пришлёт сам через
// /edit_chat.
func (r *Router) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	ack := r.dispatcher.Dispatch(ctx, query.Data)

	callback := tgbotapi.NewCallback(query.ID, ack)
	if _, err := r.bot.Request(callback); err != nil {
		r.logger.Error("ошибка ответа на callback",
			slog.String("callback_id", query.ID),
			slog.Any("error", err))
		return err
	}
	return nil
}

// SetupBotCommands устанавливает команды для меню бота
func (r *Router) SetupBotCommands() error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Начать авторизацию",
		},
		{
			Command:     "cancel",
			Description: "Отменить авторизацию",
		},
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(commands...)
	_, err := r.bot.Request(setCommandsConfig)
	return err
}

package environment

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/Markello93/orders-bot/internal/config"
	"github.com/Markello93/orders-bot/internal/stories/access"
	"github.com/Markello93/orders-bot/internal/stories/dispatch"
	"github.com/Markello93/orders-bot/internal/stories/notify"
	"github.com/Markello93/orders-bot/internal/telegram"
	"github.com/Markello93/orders-bot/internal/telegram/flows/auth"
	"github.com/Markello93/orders-bot/internal/telegram/states"
	"github.com/Markello93/orders-bot/internal/workers"
	"github.com/Markello93/orders-bot/internal/workers/sessioncleanup"
)

type Services struct {
	TelegramRouter *telegram.Router
	Notify         *notify.Service
	Access         *access.Service
	Dispatch       *dispatch.Service
	Workers        *workers.Manager
}

func newServices(clients *Clients, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	var s Services

	if clients.TelegramBot == nil {
		return nil, errors.New("telegram bot не инициализирован")
	}

	// Список доступа загружается один раз на старте.
	allowList, err := access.LoadAllowList(cfg.Access.ListPath, cfg.Access.Phones)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load phone allow list")
	}
	s.Access = access.NewService(allowList, logger)

	s.Notify = notify.NewService(clients.TelegramBot, logger)
	s.Dispatch = dispatch.NewService(clients.Backend, logger)

	// Создаем StateManager
	stateManager := states.NewManager()

	// Сценарий авторизации: проверка телефона идет через HTTP-сервис реле,
	// тем же путем что и внешние клиенты.
	authHandler := auth.NewHandler(
		clients.TelegramBot,
		stateManager,
		clients.Backend,
		logger,
	)

	// Создаем роутер
	s.TelegramRouter = telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		authHandler,
		s.Dispatch,
		logger,
	)

	sessionSweeper := sessioncleanup.NewWorker(
		stateManager,
		cfg.Sessions.SweepSchedule,
		cfg.Sessions.MaxAge,
		logger,
	)

	s.Workers = workers.NewManager(logger, sessionSweeper)

	return &s, nil
}

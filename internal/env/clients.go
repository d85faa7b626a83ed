package environment

import (
	"log/slog"

	"github.com/Markello93/orders-bot/internal/config"
	"github.com/Markello93/orders-bot/internal/infra/backend"
	"github.com/Markello93/orders-bot/internal/infra/telegram"
)

type Clients struct {
	TelegramBot *telegram.Client
	Backend     *backend.Client
}

func newClients(cfg config.Config, logger *slog.Logger) (*Clients, error) {
	telegramBot, err := provideTelegramBot(cfg, logger)
	if err != nil {
		return nil, err
	}

	backendClient := backend.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.CheckAccessURL,
		cfg.Backend.Timeout,
		logger.WithGroup("backend"),
	)

	return &Clients{
		TelegramBot: telegramBot,
		Backend:     backendClient,
	}, nil
}

func provideTelegramBot(cfg config.Config, logger *slog.Logger) (*telegram.Client, error) {
	// Check if token is provided
	if cfg.Telegram.BotToken == "" {
		// Return nil client if no token provided (will be handled gracefully)
		return nil, nil
	}

	client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.Timeout, logger)
	if err != nil {
		return nil, err
	}

	return client, nil
}

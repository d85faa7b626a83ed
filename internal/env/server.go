package environment

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Markello93/orders-bot/internal/api"
	"github.com/Markello93/orders-bot/internal/config"
)

type Servers struct {
	HTTP struct {
		Observability *http.Server
		API           *http.Server
	}
}

func newServers(ctx context.Context, cfg config.Config, logger *slog.Logger, clients *Clients, services *Services) *Servers {
	var servers Servers

	handlers := api.NewHandlers(
		services.Notify,
		services.Access,
		clients.Backend,
		logger.WithGroup("api"),
	)

	servers.HTTP.API = &http.Server{
		Handler:           api.NewRouter(handlers),
		Addr:              cfg.API.ADDR(),
		ReadTimeout:       cfg.API.ReadTimeout,
		WriteTimeout:      cfg.API.WriteTimeout,
		IdleTimeout:       cfg.API.IdleTimeout,
		ReadHeaderTimeout: cfg.API.ReadTimeout,
	}
	servers.HTTP.Observability = initObservability(ctx, logger.WithGroup("http"), clients, cfg)

	return &servers
}

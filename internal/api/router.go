package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter собирает маршруты API. CORS открыт для всех источников - сервис
// живёт внутри периметра и вызывается только бэкендом заказов.
func NewRouter(handlers *Handlers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Post("/check_access", handlers.CheckAccess)
	router.Post("/send_chat", handlers.SendChat)
	router.Post("/edit_chat", handlers.EditChat)
	router.Delete("/delete_message", handlers.DeleteMessage)
	router.Put("/orders/{order_id}/status", handlers.UpdateOrderStatus)

	return router
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsTotal считает исходящие операции с уведомлениями в чате.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordersbot_notifications_total",
		Help: "Order chat notifications by operation and result.",
	}, []string{"op", "result"})

	// DispatchesTotal считает нажатия inline-кнопок, дошедшие до бэкенда.
	DispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordersbot_status_dispatches_total",
		Help: "Order status dispatches by action and result.",
	}, []string{"action", "result"})
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

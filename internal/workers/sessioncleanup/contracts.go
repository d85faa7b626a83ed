package sessioncleanup

import "time"

type (
	// Sessions хранит состояния сценариев авторизации
	Sessions interface {
		ClearStale(maxAge time.Duration) int
	}
)

package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env              string                  `env:"ENV,default=local"`
	Logger           LoggerConfig            `env:",prefix=LOGGER_"`
	Observability    ObservabilityHTTPConfig `env:",prefix=OBSERVABILITY_"`
	API              APIHTTPConfig           `env:",prefix=API_"`
	ShutdownDuration time.Duration           `env:"SHUTDOWN_DURATION,default=30s"`
	Telegram         TelegramConfig          `env:",prefix=TELEGRAM_"`
	Backend          BackendConfig           `env:",prefix=BACKEND_"`
	Access           AccessConfig            `env:",prefix=ACCESS_"`
	Sessions         SessionsConfig          `env:",prefix=SESSIONS_"`
}

type TelegramConfig struct {
	BotToken string        `env:"BOT_TOKEN,required"`
	Timeout  time.Duration `env:"TIMEOUT,default=30s"`
}

// BackendConfig описывает бэкенд управления заказами, которому бот
// проксирует смены статусов.
type BackendConfig struct {
	BaseURL        string        `env:"BASE_URL,required"`
	CheckAccessURL string        `env:"CHECK_ACCESS_URL,default=http://127.0.0.1:8880/check_access"`
	Timeout        time.Duration `env:"TIMEOUT,default=30s"`
}

// AccessConfig задает источник списка разрешённых телефонов: YAML-файл, а при
// пустом пути - номера прямо из переменной окружения (через запятую).
type AccessConfig struct {
	ListPath string   `env:"LIST_PATH"`
	Phones   []string `env:"PHONES"`
}

// SessionsConfig управляет чисткой брошенных сценариев авторизации.
type SessionsConfig struct {
	MaxAge        time.Duration `env:"MAX_AGE,default=30m"`
	SweepSchedule string        `env:"SWEEP_SCHEDULE,default=*/10 * * * *"`
}

type LoggerConfig struct {
	Level string `env:"LEVEL,default=debug"`
}

type APIHTTPConfig struct {
	Host         string        `env:"HOST,default=0.0.0.0"`
	Port         uint16        `env:"PORT,default=8880"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a APIHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type ObservabilityHTTPConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8383"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a ObservabilityHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

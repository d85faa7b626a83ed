package access

import (
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// Service отвечает на вопрос "можно ли этому телефону получать уведомления".
// Список доступа статический: загружается один раз на старте процесса и
// дальше не меняется.
type Service struct {
	allowed []string
	logger  *slog.Logger
}

func NewService(allowList []string, logger *slog.Logger) *Service {
	normalized := lo.Map(allowList, func(phone string, _ int) string {
		return normalizePhone(phone)
	})

	return &Service{
		allowed: normalized,
		logger:  logger,
	}
}

// CheckAccess проверяет принадлежность номера списку доступа. Номер приводится
// к каноничному виду, чтобы "+7 (901) 725-00-82" и "79017250082" совпадали.
func (s *Service) CheckAccess(phoneNumber string, userID int64) bool {
	normalized := normalizePhone(phoneNumber)
	authorized := lo.Contains(s.allowed, normalized)

	s.logger.Info("проверка доступа по телефону",
		slog.Int64("user_id", userID),
		slog.Bool("authorized", authorized))

	return authorized
}

// normalizePhone убирает разделители и ведущий плюс, оставляя только цифры.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

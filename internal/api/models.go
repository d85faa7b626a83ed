package api

import "encoding/json"

type checkAccessRequest struct {
	PhoneNumber string `json:"phone_number"`
	UserID      int64  `json:"user_id"`
}

type checkAccessResponse struct {
	Authorized bool `json:"authorized"`
}

// Заказ внутри запроса не типизируется: схема заказа менялась от версии к версии,
// обязательные ключи проверяет orders.Parse.
type sendChatRequest struct {
	ChatID  int64           `json:"chat_id"`
	Message json.RawMessage `json:"message"`
}

type editChatRequest struct {
	ChatID    int64           `json:"chat_id"`
	MessageID int             `json:"message_id"`
	Message   json.RawMessage `json:"message"`
}

// statusResponse - единый конверт ответов: и успешных, и ошибочных.
type statusResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	MessageID int    `json:"message_id,omitempty"`
}

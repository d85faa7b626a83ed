package states

type State string

const (
	// StateIdle - у пользователя нет активного сценария.
	StateIdle State = "idle"
	// StateAwaitingPhone - бот ждёт номер телефона (контактом или текстом).
	StateAwaitingPhone State = "awaiting_phone"
)

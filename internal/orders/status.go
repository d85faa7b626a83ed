package orders

import "strings"

type Status string

const (
	StatusPaid                Status = "PAID"
	StatusInProgress          Status = "IN_PROGRESS"
	StatusCompleted           Status = "COMPLETED"
	StatusCancelledByClient   Status = "CANCELLED_BY_CLIENT"
	StatusCancelledByProvider Status = "CANCELLED_BY_PROVIDER"
	// Написание с одной L сохранено как на стороне бэкенда.
	StatusCancelledByTimeout Status = "CANCELED_BY_TIMEOUT"
	StatusUnknown            Status = "UNKNOWN"
)

// Terminal сообщает, что по заказу больше не ожидается действий персонала.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByClient, StatusCancelledByProvider, StatusCancelledByTimeout:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeCourier   DeliveryType = "DELIVERY"
	DeliveryTypeToOutside DeliveryType = "TO_OUTSIDE"
	DeliveryTypeOnPlace   DeliveryType = "ON_PLACE"
)

// Action - действие персонала над заказом, разобранное из callback-токена.
type Action struct {
	Kind ActionKind
	// Raw хранит исходное имя действия для неизвестных токенов.
	Raw     string
	OrderID string
}

type ActionKind string

const (
	ActionConfirm  ActionKind = "confirm"
	ActionCancel   ActionKind = "cancel"
	ActionComplete ActionKind = "complete"
	ActionUnknown  ActionKind = "unknown"
)

// TargetStatus возвращает статус, который действие устанавливает на бэкенде.
func (a Action) TargetStatus() Status {
	switch a.Kind {
	case ActionConfirm:
		return StatusInProgress
	case ActionCancel:
		return StatusCancelledByProvider
	case ActionComplete:
		return StatusCompleted
	}
	return StatusUnknown
}

// Token сериализует действие в callback-токен вида "<action>:<order_id>".
func (a Action) Token() string {
	name := string(a.Kind)
	if a.Kind == ActionUnknown {
		name = a.Raw
	}
	return name + ":" + a.OrderID
}

// ParseActionToken разбирает callback-токен. Неизвестное действие не считается
// ошибкой: оно сохраняется как есть и приведёт к статусу UNKNOWN при диспатче.
func ParseActionToken(token string) (Action, bool) {
	name, orderID, found := strings.Cut(token, ":")
	if !found || orderID == "" {
		return Action{}, false
	}

	switch ActionKind(name) {
	case ActionConfirm, ActionCancel, ActionComplete:
		return Action{Kind: ActionKind(name), OrderID: orderID}, true
	}
	return Action{Kind: ActionUnknown, Raw: name, OrderID: orderID}, true
}

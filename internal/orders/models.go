package orders

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ключи, без которых заказ не может быть отрисован. Всё остальное опционально:
// схема заказа менялась от версии к версии, поэтому рендерер ветвится по
// наличию полей, а не по версии схемы.
var requiredKeys = []string{
	"delivery",
	"products",
	"places",
	"status",
	"orderNumber",
	"customerInfo",
	"totalCost",
}

// MalformedOrderError возвращается, когда во входном JSON нет обязательных ключей.
type MalformedOrderError struct {
	Missing []string
}

func (e *MalformedOrderError) Error() string {
	return fmt.Sprintf("malformed order: missing required fields: %s", strings.Join(e.Missing, ", "))
}

type CustomerInfo struct {
	Name  string `json:"customerName"`
	Phone string `json:"customerPhone"`
	Email string `json:"customerEmail"`
}

type Courier struct {
	Name      string `json:"name"`
	Car       string `json:"car"`
	CarNumber string `json:"carNumber"`
}

func (c *Courier) Empty() bool {
	return c == nil || (c.Name == "" && c.Car == "" && c.CarNumber == "")
}

type Delivery struct {
	Type        DeliveryType     `json:"type"`
	Street      string           `json:"street"`
	Flat        string           `json:"flat"`
	Floor       string           `json:"floor"`
	Porch       string           `json:"porch"`
	DoorCode    string           `json:"doorCode"`
	PickupCode  string           `json:"pickupCode"`
	Price       *decimal.Decimal `json:"price"`
	TrackingURL string           `json:"trackingUrl"`
	Status      string           `json:"status"`
	Courier     *Courier         `json:"courier"`
}

type Addition struct {
	Title  string          `json:"title"`
	Amount int             `json:"amount"`
	Price  decimal.Decimal `json:"price"`
}

type Product struct {
	Title     string          `json:"title"`
	Amount    int             `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	Weight    string          `json:"weight"`
	Additions []Addition      `json:"additions"`
}

type Place struct {
	Title    string `json:"title"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Schedule string `json:"schedule"`
}

type Order struct {
	ID           string          `json:"id"`
	OrderNumber  int             `json:"orderNumber"`
	Status       Status          `json:"status"`
	CreatedAt    string          `json:"createdAt"`
	ReadyTime    string          `json:"readyTime"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PersonsCount int             `json:"personsCount"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Delivery     Delivery        `json:"delivery"`
	Products     []Product       `json:"products"`
	Place        Place           `json:"places"`

	// Прямые ссылки на действия из ранних версий схемы. Если они есть -
	// кнопки строятся как URL, иначе как callback-токены.
	OrderLink     string `json:"order_link"`
	OrderApprove  string `json:"order_approve"`
	OrderCancel   string `json:"order_cancel"`
	OrderComplete string `json:"order_completed"`
}

// Parse разбирает заказ из свободно типизированного JSON. Сначала проверяет
// наличие всех обязательных ключей и собирает список отсутствующих, чтобы
// бэкенд получил в 400-м ответе полный перечень, а не первый попавшийся.
func Parse(raw json.RawMessage) (*Order, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("decode order payload: %w", err)
	}

	var missing []string
	for _, key := range requiredKeys {
		value, ok := keys[key]
		if !ok || string(value) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MalformedOrderError{Missing: missing}
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode order fields: %w", err)
	}

	return &order, nil
}

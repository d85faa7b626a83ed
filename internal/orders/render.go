package orders

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySuffix = "₽"
	notSpecified   = "не указано"
)

// Control описывает одну inline-кнопку уведомления. Заполнено либо URL
// (ранняя версия схемы с прямыми ссылками), либо CallbackData с токеном
// "<action>:<order_id>".
type Control struct {
	Text         string
	URL          string
	CallbackData string
}

const (
	controlTextConfirm  = "✅ Подтвердить заказ"
	controlTextCancel   = "❌ Отменить заказ"
	controlTextComplete = "🏁 Завершить заказ"
)

var statusLabels = map[Status]string{
	StatusPaid:                "🆕 Новый заказ (оплачен)",
	StatusInProgress:          "👨‍🍳 Заказ готовится",
	StatusCompleted:           "✅ Заказ выполнен",
	StatusCancelledByClient:   "🚫 Отменён клиентом",
	StatusCancelledByProvider: "🚫 Отменён заведением",
	StatusCancelledByTimeout:  "⌛ Отменён по таймауту",
}

var deliveryTypeLabels = map[DeliveryType]string{
	DeliveryTypeCourier:   "🚗 Доставка курьером",
	DeliveryTypeToOutside: "🏃 Самовывоз",
	DeliveryTypeOnPlace:   "🍽 В заведении",
}

// Render собирает тело уведомления и набор кнопок по текущему статусу заказа.
// Результат детерминирован: один и тот же заказ всегда даёт байт-в-байт
// одинаковый текст и одинаковый набор кнопок. Текст уже экранирован для
// parse_mode=Markdown.
func Render(order *Order) (string, []Control, error) {
	var b strings.Builder

	readyTime := notSpecified
	if order.ReadyTime != "" {
		formatted, err := FormatTime(order.ReadyTime)
		if err != nil {
			return "", nil, fmt.Errorf("format ready time: %w", err)
		}
		readyTime = formatted
	}

	fmt.Fprintf(&b, "🔢 *Номер заказа*: %d\n", order.OrderNumber)
	fmt.Fprintf(&b, "🕒 *Время выдачи*: %s\n", readyTime)
	fmt.Fprintf(&b, "📦 *Способ получения*: %s\n", deliveryTypeLabel(order.Delivery.Type))
	fmt.Fprintf(&b, "📋 *Статус*: %s\n", statusLabel(order.Status))
	fmt.Fprintf(&b, "👤 *Клиент*: %s (%s)\n", order.CustomerInfo.Name, order.CustomerInfo.Phone)
	if order.PersonsCount > 0 {
		fmt.Fprintf(&b, "👥 *Количество персон*: %d\n", order.PersonsCount)
	}

	writePlaceBlock(&b, order.Place)
	writeDeliveryBlock(&b, order)
	writeProducts(&b, order.Products)

	if order.Delivery.Type == DeliveryTypeCourier && order.Delivery.Price != nil && order.Delivery.Price.IsPositive() {
		fmt.Fprintf(&b, "🚚 *Стоимость доставки*: %s%s\n", order.Delivery.Price.String(), currencySuffix)
	}
	fmt.Fprintf(&b, "💰 *Итого*: %s%s", order.TotalCost.String(), currencySuffix)

	if order.OrderLink != "" {
		fmt.Fprintf(&b, "\n🔗 [Открыть заказ](%s)", order.OrderLink)
	}

	// Экранируем ровно один раз и только готовое сообщение: собственные
	// жирные маркеры рендерера при узком наборе символов выживают.
	return EscapeMarkdown(b.String()), Controls(order), nil
}

// Controls возвращает кнопки, соответствующие статусу заказа. Терминальные и
// нераспознанные статусы кнопок не имеют.
func Controls(order *Order) []Control {
	switch order.Status {
	case StatusPaid:
		return []Control{
			control(controlTextConfirm, order.OrderApprove, ActionConfirm, order.ID),
			control(controlTextCancel, order.OrderCancel, ActionCancel, order.ID),
		}
	case StatusInProgress:
		return []Control{
			control(controlTextComplete, order.OrderComplete, ActionComplete, order.ID),
		}
	}
	return nil
}

func control(text, legacyURL string, kind ActionKind, orderID string) Control {
	if legacyURL != "" {
		return Control{Text: text, URL: legacyURL}
	}
	return Control{Text: text, CallbackData: Action{Kind: kind, OrderID: orderID}.Token()}
}

func statusLabel(status Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "❓ Статус неизвестен"
}

func deliveryTypeLabel(deliveryType DeliveryType) string {
	if label, ok := deliveryTypeLabels[deliveryType]; ok {
		return label
	}
	return "❓ Неизвестный способ получения"
}

func writePlaceBlock(b *strings.Builder, place Place) {
	if place.Title != "" {
		fmt.Fprintf(b, "🏠 *Заведение*: %s\n", place.Title)
	}

	var location []string
	if place.City != "" {
		location = append(location, "г. "+place.City)
	}
	if place.Address != "" {
		location = append(location, place.Address)
	}
	if len(location) > 0 {
		fmt.Fprintf(b, "📍 *Адрес заведения*: %s\n", strings.Join(location, ", "))
	}
	if place.Schedule != "" {
		fmt.Fprintf(b, "🕰 *Режим работы*: %s\n", place.Schedule)
	}
}

func writeDeliveryBlock(b *strings.Builder, order *Order) {
	delivery := order.Delivery

	switch delivery.Type {
	case DeliveryTypeCourier:
		fmt.Fprintf(b, "📍 *Адрес доставки*: %s\n", courierAddress(delivery))
		if courier := delivery.Courier; !courier.Empty() {
			var parts []string
			if courier.Name != "" {
				parts = append(parts, courier.Name)
			}
			if courier.Car != "" {
				parts = append(parts, courier.Car)
			}
			if courier.CarNumber != "" {
				parts = append(parts, courier.CarNumber)
			}
			fmt.Fprintf(b, "🚚 *Курьер*: %s\n", strings.Join(parts, ", "))
		}
		if delivery.TrackingURL != "" {
			fmt.Fprintf(b, "🛰 [Отследить доставку](%s)\n", delivery.TrackingURL)
		}
	case DeliveryTypeToOutside:
		if delivery.PickupCode != "" {
			fmt.Fprintf(b, "🏷 *Код выдачи*: %s\n", delivery.PickupCode)
		} else {
			b.WriteString("🏷 *Самовывоз*\n")
		}
	}
	// ON_PLACE и нераспознанные типы отдельного блока не имеют: адрес
	// заведения уже выведен выше.
}

// courierAddress собирает адресную строку только из заполненных полей,
// пропуская пустые без заглушек.
func courierAddress(delivery Delivery) string {
	var parts []string
	if delivery.Street != "" {
		parts = append(parts, "ул. "+delivery.Street)
	}
	if delivery.Flat != "" {
		parts = append(parts, "кв. "+delivery.Flat)
	}
	if delivery.Floor != "" {
		parts = append(parts, "этаж "+delivery.Floor)
	}
	if delivery.Porch != "" {
		parts = append(parts, "подъезд "+delivery.Porch)
	}
	if delivery.DoorCode != "" {
		parts = append(parts, "домофон "+delivery.DoorCode)
	}
	if len(parts) == 0 {
		return "Адрес не указан"
	}
	return strings.Join(parts, ", ")
}

func writeProducts(b *strings.Builder, products []Product) {
	b.WriteString("🛒 *Состав заказа*:\n")
	for _, product := range products {
		title := product.Title
		if product.Weight != "" {
			title += " (" + product.Weight + ")"
		}
		fmt.Fprintf(b, "- %s x%d — %s%s\n", title, product.Amount, product.Price.String(), currencySuffix)
		for _, addition := range product.Additions {
			fmt.Fprintf(b, "    + %s x%d — %s%s\n", addition.Title, addition.Amount, addition.Price.String(), currencySuffix)
		}
	}
}

// TotalWithDelivery считает итог с учётом стоимости доставки. Используется
// только для логов: тело уведомления всегда показывает totalCost как прислал
// бэкенд.
func TotalWithDelivery(order *Order) decimal.Decimal {
	total := order.TotalCost
	if order.Delivery.Price != nil && order.Delivery.Price.IsPositive() {
		total = total.Add(*order.Delivery.Price)
	}
	return total
}

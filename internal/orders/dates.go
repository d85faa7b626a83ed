package orders

import (
	"fmt"
	"time"
)

// Уведомления всегда показывают московское время вне зависимости от таймзоны
// хоста, на котором запущен сервис.
var displayZone = time.FixedZone("MSK", 3*60*60)

var monthAbbrevs = [12]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// FormatError возвращается, когда временная метка заказа не разбирается как ISO-8601.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unparseable timestamp %q: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FormatTime переводит ISO-8601 метку (суффикс "Z" трактуется как UTC) в
// строку вида "2 янв. 2024 00:00". День без ведущего нуля, часы и минуты -
// с ведущими нулями. Для отсутствующих полей вызывающий подставляет
// заглушку сам, сюда попадают только непустые значения.
func FormatTime(value string) (string, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Бэкенд иногда шлёт метки без смещения, считаем их UTC.
		parsed, err = time.Parse("2006-01-02T15:04:05", value)
		if err != nil {
			return "", &FormatError{Value: value, Err: err}
		}
		parsed = parsed.UTC()
	}

	local := parsed.In(displayZone)
	return fmt.Sprintf("%d %s %d %02d:%02d",
		local.Day(),
		monthAbbrevs[local.Month()-1],
		local.Year(),
		local.Hour(),
		local.Minute(),
	), nil
}

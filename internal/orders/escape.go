package orders

import "strings"

// Экранируемые символы Markdown. Набор сознательно узкий: `*` не экранируется,
// чтобы выжили собственные жирные маркеры рендерера, а `_`, `[` и `]` - чтобы
// адреса и названия блюд с подчёркиваниями и скобками отображались как есть.
const escapeSet = "~`>#=|{}"

var markdownEscaper *strings.Replacer

func init() {
	pairs := make([]string, 0, 2*len(escapeSet))
	for _, r := range escapeSet {
		pairs = append(pairs, string(r), `\`+string(r))
	}
	markdownEscaper = strings.NewReplacer(pairs...)
}

// EscapeMarkdown экранирует спецсимволы обратным слэшем. Функция не
// идемпотентна: повторный вызов даст двойное экранирование, поэтому она
// применяется ровно один раз к полностью собранному сообщению и никогда
// к отдельным фрагментам.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

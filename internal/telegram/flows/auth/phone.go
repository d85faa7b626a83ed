package auth

import "regexp"

// Разрешенные символы: цифры, +, -, (, )
var phonePattern = regexp.MustCompile(`^[\d+\-()]+$`)

// IsValidPhoneText проверяет введённый вручную номер по допустимому набору
// символов. Формат номера дальше не анализируется - окончательное решение
// принимает список доступа.
func IsValidPhoneText(text string) bool {
	return phonePattern.MatchString(text)
}

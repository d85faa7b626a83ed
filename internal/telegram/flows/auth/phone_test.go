package auth

import "testing"

func TestIsValidPhoneText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "digits only",
			input:    "79017250082",
			expected: true,
		},
		{
			name:     "with plus",
			input:    "+79017250082",
			expected: true,
		},
		{
			name:     "with dashes",
			input:    "+7-901-725-00-82",
			expected: true,
		},
		{
			name:     "with parentheses",
			input:    "+7(901)725-00-82",
			expected: true,
		},
		{
			name:     "spaces rejected",
			input:    "+7 901 725 00 82",
			expected: false,
		},
		{
			name:     "letters rejected",
			input:    "+7901abc0082",
			expected: false,
		},
		{
			name:     "empty string rejected",
			input:    "",
			expected: false,
		},
		{
			name:     "cyrillic rejected",
			input:    "восемь девятьсот",
			expected: false,
		},
		{
			name:     "only allowed punctuation",
			input:    "+-()",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidPhoneText(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidPhoneText(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

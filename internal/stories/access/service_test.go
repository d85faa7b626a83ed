package access

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCheckAccess(t *testing.T) {
	service := NewService([]string{"+7 (901) 725-00-82", "996555123456"}, testLogger())

	tests := []struct {
		name       string
		phone      string
		authorized bool
	}{
		{name: "exact digits", phone: "79017250082", authorized: true},
		{name: "with plus", phone: "+79017250082", authorized: true},
		{name: "with separators", phone: "+7 901 725-00-82", authorized: true},
		{name: "second entry", phone: "+996 555 123 456", authorized: true},
		{name: "unknown number", phone: "+79990000000", authorized: false},
		{name: "empty", phone: "", authorized: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.CheckAccess(tt.phone, 42); got != tt.authorized {
				t.Errorf("CheckAccess(%q) = %v, want %v", tt.phone, got, tt.authorized)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plus stripped", input: "+79017250082", expected: "79017250082"},
		{name: "separators stripped", input: "+7 (901) 725-00-82", expected: "79017250082"},
		{name: "digits untouched", input: "996555123456", expected: "996555123456"},
		{name: "letters dropped", input: "tel:79017250082", expected: "79017250082"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhone(tt.input); got != tt.expected {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadAllowList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	content := "phones:\n  - \"+79017250082\"\n  - \"996555123456\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	phones, err := LoadAllowList(path, nil)
	if err != nil {
		t.Fatalf("LoadAllowList returned error: %v", err)
	}
	if len(phones) != 2 || phones[0] != "+79017250082" || phones[1] != "996555123456" {
		t.Errorf("unexpected phones: %v", phones)
	}
}

func TestLoadAllowListFallback(t *testing.T) {
	fallback := []string{"12345"}
	phones, err := LoadAllowList("", fallback)
	if err != nil {
		t.Fatalf("LoadAllowList returned error: %v", err)
	}
	if len(phones) != 1 || phones[0] != "12345" {
		t.Errorf("unexpected phones: %v", phones)
	}
}

func TestLoadAllowListBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAllowList(path, nil); err == nil {
		t.Error("LoadAllowList expected error for malformed file")
	}
}

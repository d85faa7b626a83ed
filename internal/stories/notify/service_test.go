package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Markello93/orders-bot/internal/orders"
)

type fakeGateway struct {
	sentChatID  int64
	sentText    string
	sentMarkup  *tgbotapi.InlineKeyboardMarkup
	editedID    int
	deletedID   int
	sendErr     error
	nextMessage int
}

func (f *fakeGateway) SendOrderMessage(_ context.Context, chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sentChatID = chatID
	f.sentText = text
	f.sentMarkup = markup
	return f.nextMessage, nil
}

func (f *fakeGateway) EditOrderMessage(_ context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	f.sentChatID = chatID
	f.editedID = messageID
	f.sentText = text
	f.sentMarkup = markup
	return nil
}

func (f *fakeGateway) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	f.sentChatID = chatID
	f.deletedID = messageID
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

const paidOrderJSON = `{
	"id": "ord-1",
	"orderNumber": 73,
	"status": "PAID",
	"totalCost": 560,
	"customerInfo": {"customerName": "Иван", "customerPhone": "+79001234567", "customerEmail": "ivan@example.com"},
	"delivery": {"type": "TO_OUTSIDE", "pickupCode": "4821"},
	"products": [{"title": "Плов", "amount": 2, "price": 350, "additions": [{"title": "Соус", "amount": 1, "price": 50}]}],
	"places": {"title": "Чайхана"}
}`

func TestSendOrder(t *testing.T) {
	gateway := &fakeGateway{nextMessage: 555}
	service := NewService(gateway, testLogger())

	messageID, err := service.SendOrder(context.Background(), 100, json.RawMessage(paidOrderJSON))
	if err != nil {
		t.Fatalf("SendOrder returned error: %v", err)
	}
	if messageID != 555 {
		t.Errorf("messageID = %d, want 555", messageID)
	}
	if gateway.sentChatID != 100 {
		t.Errorf("chatID = %d, want 100", gateway.sentChatID)
	}
	if !strings.Contains(gateway.sentText, "Код выдачи") {
		t.Errorf("body missing pickup code:\n%s", gateway.sentText)
	}

	if gateway.sentMarkup == nil {
		t.Fatal("expected inline keyboard for PAID order")
	}
	row := gateway.sentMarkup.InlineKeyboard[0]
	if len(row) != 2 {
		t.Fatalf("got %d buttons, want 2", len(row))
	}
	if row[0].CallbackData == nil || *row[0].CallbackData != "confirm:ord-1" {
		t.Errorf("first button callback = %v, want confirm:ord-1", row[0].CallbackData)
	}
	if row[1].CallbackData == nil || *row[1].CallbackData != "cancel:ord-1" {
		t.Errorf("second button callback = %v, want cancel:ord-1", row[1].CallbackData)
	}
}

func TestSendOrderMalformed(t *testing.T) {
	gateway := &fakeGateway{}
	service := NewService(gateway, testLogger())

	_, err := service.SendOrder(context.Background(), 100, json.RawMessage(`{"orderNumber": 1}`))
	if err == nil {
		t.Fatal("SendOrder expected error for malformed order")
	}

	var malformed *orders.MalformedOrderError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T, want *MalformedOrderError", err)
	}
	if gateway.sentText != "" {
		t.Error("gateway called despite malformed order")
	}
}

func TestEditOrder(t *testing.T) {
	gateway := &fakeGateway{}
	service := NewService(gateway, testLogger())

	completed := strings.Replace(paidOrderJSON, `"PAID"`, `"COMPLETED"`, 1)
	if err := service.EditOrder(context.Background(), 100, 555, json.RawMessage(completed)); err != nil {
		t.Fatalf("EditOrder returned error: %v", err)
	}
	if gateway.editedID != 555 {
		t.Errorf("edited message = %d, want 555", gateway.editedID)
	}
	if gateway.sentMarkup != nil {
		t.Error("terminal status should carry no keyboard")
	}
}

func TestRemove(t *testing.T) {
	gateway := &fakeGateway{}
	service := NewService(gateway, testLogger())

	if err := service.Remove(context.Background(), 100, 555); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if gateway.deletedID != 555 {
		t.Errorf("deleted message = %d, want 555", gateway.deletedID)
	}
}

func TestKeyboardLegacyURLs(t *testing.T) {
	controls := []orders.Control{
		{Text: "ok", URL: "https://backend/approve"},
		{Text: "no", CallbackData: "cancel:ord-1"},
	}

	markup := Keyboard(controls)
	if markup == nil {
		t.Fatal("expected keyboard")
	}
	row := markup.InlineKeyboard[0]
	if row[0].URL == nil || *row[0].URL != "https://backend/approve" {
		t.Errorf("first button url = %v, want direct link", row[0].URL)
	}
	if row[1].CallbackData == nil || *row[1].CallbackData != "cancel:ord-1" {
		t.Errorf("second button callback = %v", row[1].CallbackData)
	}
}

func TestKeyboardEmpty(t *testing.T) {
	if Keyboard(nil) != nil {
		t.Error("Keyboard(nil) should be nil")
	}
}

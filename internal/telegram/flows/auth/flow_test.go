package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Markello93/orders-bot/internal/telegram/messages"
	"github.com/Markello93/orders-bot/internal/telegram/states"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeBot) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := chattable.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeBot) lastText() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1].Text
}

type fakeAccess struct {
	authorized bool
	err        error
	phone      string
	userID     int64
}

func (f *fakeAccess) CheckAccess(_ context.Context, phoneNumber string, userID int64) (bool, error) {
	f.phone = phoneNumber
	f.userID = userID
	return f.authorized, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(access *fakeAccess) (*Handler, *fakeBot, *states.Manager) {
	bot := &fakeBot{}
	sm := states.NewManager()
	return NewHandler(bot, sm, access, testLogger()), bot, sm
}

func textUpdate(userID, chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func TestStartSetsAwaitingPhone(t *testing.T) {
	handler, bot, sm := newHandler(&fakeAccess{})

	if err := handler.Start(1, 10); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if got := sm.GetState(1); got != states.StateAwaitingPhone {
		t.Errorf("state = %q, want %q", got, states.StateAwaitingPhone)
	}
	if bot.lastText() != messages.Greeting {
		t.Errorf("greeting = %q", bot.lastText())
	}

	keyboard, ok := bot.sent[0].ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	if !ok {
		t.Fatalf("reply markup = %T, want ReplyKeyboardMarkup", bot.sent[0].ReplyMarkup)
	}
	if !keyboard.Keyboard[0][0].RequestContact {
		t.Error("contact share button missing")
	}
}

func TestHandleContactAuthorized(t *testing.T) {
	access := &fakeAccess{authorized: true}
	handler, bot, sm := newHandler(access)
	sm.SetState(1, states.StateAwaitingPhone)

	update := textUpdate(1, 10, "")
	update.Message.Contact = &tgbotapi.Contact{PhoneNumber: "+79017250082"}

	if err := handler.Handle(context.Background(), update); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if access.phone != "+79017250082" || access.userID != 1 {
		t.Errorf("access called with (%q, %d)", access.phone, access.userID)
	}
	if bot.lastText() != messages.Authorized {
		t.Errorf("reply = %q, want authorized", bot.lastText())
	}
	if sm.GetState(1) != states.StateIdle {
		t.Error("state not cleared after authorization")
	}
}

func TestHandleTypedPhoneNotAuthorized(t *testing.T) {
	access := &fakeAccess{authorized: false}
	handler, bot, sm := newHandler(access)
	sm.SetState(1, states.StateAwaitingPhone)

	if err := handler.Handle(context.Background(), textUpdate(1, 10, "+7(901)725-00-82")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if bot.lastText() != messages.NotAuthorized {
		t.Errorf("reply = %q, want not authorized", bot.lastText())
	}
	if sm.GetState(1) != states.StateIdle {
		t.Error("state not cleared")
	}
}

func TestHandleInvalidPhoneKeepsSession(t *testing.T) {
	access := &fakeAccess{}
	handler, bot, sm := newHandler(access)
	sm.SetState(1, states.StateAwaitingPhone)

	if err := handler.Handle(context.Background(), textUpdate(1, 10, "не номер")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if bot.lastText() != messages.InvalidPhone {
		t.Errorf("reply = %q, want invalid phone prompt", bot.lastText())
	}
	// Ошибка формата не завершает сценарий - ждём повторный ввод.
	if sm.GetState(1) != states.StateAwaitingPhone {
		t.Error("session dropped on validation error")
	}
	if access.phone != "" {
		t.Error("access checked for invalid input")
	}
}

func TestHandleAccessError(t *testing.T) {
	access := &fakeAccess{err: errors.New("relay down")}
	handler, bot, sm := newHandler(access)
	sm.SetState(1, states.StateAwaitingPhone)

	if err := handler.Handle(context.Background(), textUpdate(1, 10, "+79017250082")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if bot.lastText() != messages.AuthorizationFailed {
		t.Errorf("reply = %q, want failure message", bot.lastText())
	}
	if sm.GetState(1) != states.StateIdle {
		t.Error("state not cleared after error")
	}
}

func TestCancel(t *testing.T) {
	handler, bot, sm := newHandler(&fakeAccess{})
	sm.SetState(1, states.StateAwaitingPhone)

	if err := handler.Cancel(1, 10); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if bot.lastText() != messages.Cancel {
		t.Errorf("reply = %q, want cancel message", bot.lastText())
	}
	if sm.GetState(1) != states.StateIdle {
		t.Error("state not cleared on cancel")
	}
}

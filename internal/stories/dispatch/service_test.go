package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/Markello93/orders-bot/internal/orders"
	"github.com/Markello93/orders-bot/internal/telegram/messages"
)

type fakeBackend struct {
	orderID string
	status  orders.Status
	err     error
	calls   int
}

func (f *fakeBackend) UpdateOrderStatus(_ context.Context, orderID string, status orders.Status) error {
	f.calls++
	f.orderID = orderID
	f.status = status
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus orders.Status
		wantAck    string
	}{
		{name: "confirm", token: "confirm:ord-1", wantStatus: orders.StatusInProgress, wantAck: messages.ActionConfirmed},
		{name: "cancel", token: "cancel:ord-2", wantStatus: orders.StatusCancelledByProvider, wantAck: messages.ActionCancelled},
		{name: "complete", token: "complete:ord-3", wantStatus: orders.StatusCompleted, wantAck: messages.ActionCompleted},
		{name: "unknown still dispatched", token: "reheat:ord-4", wantStatus: orders.StatusUnknown, wantAck: messages.ActionDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			service := NewService(backend, testLogger())

			ack := service.Dispatch(context.Background(), tt.token)
			if backend.calls != 1 {
				t.Fatalf("backend called %d times, want 1", backend.calls)
			}
			if backend.status != tt.wantStatus {
				t.Errorf("status = %q, want %q", backend.status, tt.wantStatus)
			}
			if ack != tt.wantAck {
				t.Errorf("ack = %q, want %q", ack, tt.wantAck)
			}
		})
	}
}

func TestDispatchBackendFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend down")}
	service := NewService(backend, testLogger())

	ack := service.Dispatch(context.Background(), "confirm:ord-1")
	if ack != messages.ActionFailed {
		t.Errorf("ack = %q, want generic failure", ack)
	}
}

func TestDispatchMalformedToken(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend, testLogger())

	ack := service.Dispatch(context.Background(), "confirm")
	if ack != messages.ActionFailed {
		t.Errorf("ack = %q, want generic failure", ack)
	}
	if backend.calls != 0 {
		t.Error("backend called for malformed token")
	}
}

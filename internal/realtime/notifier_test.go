package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type execRecorder struct {
	sql  string
	args []any
}

func (e *execRecorder) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (e *execRecorder) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (e *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = sql
	e.args = args
	return pgconn.CommandTag{}, nil
}
func (e *execRecorder) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (e *execRecorder) Ping(ctx context.Context) error            { return nil }
func (e *execRecorder) Close()                                    {}

func TestPublishSendsNotifyPayload(t *testing.T) {
	exec := &execRecorder{}
	n := NewNotifier(exec, nil, "bookings_changes", zap.NewNop())

	id := uuid.New()
	n.Publish(context.Background(), OpInsert, id)

	if len(exec.args) != 2 {
		t.Fatalf("Exec args = %d, want channel and payload", len(exec.args))
	}
	if exec.args[0] != "bookings_changes" {
		t.Errorf("channel = %v", exec.args[0])
	}

	var ev Event
	if err := json.Unmarshal([]byte(exec.args[1].(string)), &ev); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if ev.Op != OpInsert || ev.BookingID != id.String() {
		t.Errorf("event = %+v", ev)
	}
}

func TestSubscribeCoalescesPendingEvents(t *testing.T) {
	n := NewNotifier(nil, nil, "bookings_changes", zap.NewNop())

	events, cancel := n.Subscribe()
	defer cancel()

	// two broadcasts without a read in between collapse into one trigger
	n.broadcast(Event{Op: OpInsert})
	n.broadcast(Event{Op: OpUpdate})

	select {
	case ev := <-events:
		if ev.Op != OpInsert {
			t.Errorf("first event op = %s, want INSERT", ev.Op)
		}
	default:
		t.Fatal("expected a pending event")
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected second event %+v, want coalesced delivery", ev)
	default:
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	n := NewNotifier(nil, nil, "bookings_changes", zap.NewNop())

	events, cancel := n.Subscribe()
	cancel()

	if _, ok := <-events; ok {
		t.Error("channel should be closed after cancel")
	}

	// cancelling twice is harmless
	cancel()

	// broadcast after cancel must not panic or block
	n.broadcast(Event{Op: OpDelete})
}

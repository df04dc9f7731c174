package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/pkg/database"
	"github.com/vinodbargaje/happy-paws-connect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// Event is a change signal for the bookings table. It identifies the row and
// operation but carries no row data: subscribers re-fetch, they never patch.
type Event struct {
	Op        string `json:"op"`
	BookingID string `json:"booking_id"`
}

// Notifier bridges Postgres LISTEN/NOTIFY to in-process subscribers. Booking
// mutations publish on a single table-wide channel; every subscriber receives
// every event and re-fetches its own access-controlled view.
type Notifier struct {
	exec     database.PgxIface
	acquirer database.ConnAcquirer
	channel  string
	log      *zap.Logger

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewNotifier(exec database.PgxIface, acquirer database.ConnAcquirer, channel string, log *zap.Logger) *Notifier {
	return &Notifier{
		exec:     exec,
		acquirer: acquirer,
		channel:  channel,
		log:      log.With(zap.String("component", "notifier"), zap.String("channel", channel)),
		subs:     make(map[int]chan Event),
	}
}

// Publish emits a change event on the Postgres channel. Best-effort: a failed
// notify only costs other clients a refresh trigger, the mutation itself has
// already committed.
func (n *Notifier) Publish(ctx context.Context, op string, bookingID uuid.UUID) {
	payload, err := json.Marshal(Event{Op: op, BookingID: bookingID.String()})
	if err != nil {
		n.log.Error("Failed to encode change event", zap.Error(err))
		return
	}

	if _, err := n.exec.Exec(ctx, `SELECT pg_notify($1, $2)`, n.channel, string(payload)); err != nil {
		n.log.Warn("Failed to publish change event",
			zap.Error(err),
			zap.String("op", op),
			zap.String("booking_id", bookingID.String()),
		)
	}
}

// Subscribe registers a listener. The returned channel has capacity one and
// overlapping events coalesce: subscribers treat an event as a trigger to
// re-fetch, so dropped intermediate signals are harmless.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan Event, 1)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(ch)
		}
	}

	return ch, cancel
}

func (n *Notifier) broadcast(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			// subscriber already has a pending trigger
		}
	}
}

// Run listens on the Postgres channel for the process lifetime, reconnecting
// on failure until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	for {
		err := n.listen(ctx)
		if ctx.Err() != nil {
			n.log.Info("Notifier stopped")
			return
		}
		n.log.Warn("Listener disconnected, retrying", zap.Error(err))

		select {
		case <-time.After(3 * time.Second):
		case <-ctx.Done():
			n.log.Info("Notifier stopped")
			return
		}
	}
}

func (n *Notifier) listen(ctx context.Context) error {
	conn, err := n.acquirer.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// LISTEN binds to this dedicated session
	if _, err := conn.Exec(ctx, `LISTEN `+pgx.Identifier{n.channel}.Sanitize()); err != nil {
		return err
	}

	n.log.Info("Listening for booking changes")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			// unknown payload still triggers a refresh
			ev = Event{Op: OpUpdate}
		}

		metrics.RealtimeEvent(ev.Op)
		n.broadcast(ev)
	}
}

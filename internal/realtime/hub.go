package realtime

import (
	"context"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/dto/response"
	"github.com/vinodbargaje/happy-paws-connect/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

// StoreFactory builds a booking store scoped to one identity. Each websocket
// connection gets its own store instance.
type StoreFactory func(userID uuid.UUID) *store.BookingStore

// Hub serves dashboard sync connections. For every change event the client's
// store re-fetches its access-controlled list and a fresh snapshot is pushed;
// clients never receive other users' booking data, only their own refreshed
// view.
type Hub struct {
	notifier *Notifier
	stores   StoreFactory
	log      *zap.Logger
}

func NewHub(notifier *Notifier, stores StoreFactory, log *zap.Logger) *Hub {
	return &Hub{
		notifier: notifier,
		stores:   stores,
		log:      log.With(zap.String("component", "realtime_hub")),
	}
}

// HandleConn drives one dashboard connection until the client disconnects or
// ctx is cancelled. The subscription lives exactly as long as the connection.
func (h *Hub) HandleConn(ctx context.Context, conn *websocket.Conn, userID uuid.UUID) {
	defer conn.Close()

	log := h.log.With(zap.String("user_id", userID.String()))

	st := h.stores(userID)
	if err := st.Refresh(ctx); err != nil {
		log.Error("Initial refresh failed", zap.Error(err))
		return
	}

	if err := h.push(conn, st); err != nil {
		log.Warn("Failed to push initial snapshot", zap.Error(err))
		return
	}

	events, cancel := h.notifier.Subscribe()
	defer cancel()

	// Drain reads so close frames are processed; dashboard clients only
	// listen.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	log.Info("Dashboard sync connected")

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			log.Info("Dashboard sync disconnected")
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			if err := st.Refresh(ctx); err != nil {
				// keep the previous snapshot, retry on the next event
				continue
			}
			if err := h.push(conn, st); err != nil {
				log.Warn("Failed to push snapshot", zap.Error(err))
				return
			}
		}
	}
}

func (h *Hub) push(conn *websocket.Conn, st *store.BookingStore) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(response.SnapshotFromStore(st))
}

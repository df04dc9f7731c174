package adaptor

import (
	"net/http"

	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is already gated by the session token carried on the
	// upgrade request.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeHandler struct {
	hub *realtime.Hub
	log *zap.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, log *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		log: log.With(zap.String("handler", "realtime")),
	}
}

// Sync handles GET /api/bookings/sync (protected, websocket upgrade). The
// connection receives a full snapshot immediately and again after every
// booking change.
func (h *RealtimeHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.HandleConn(r.Context(), conn, userID)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dsheridan/abate/internal/metrics"
	"github.com/dsheridan/abate/internal/session"
	"github.com/dsheridan/abate/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is enforced by the CORS middleware on the REST
	// surface; the event stream accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PointerEvents returns the websocket handler for a session's pointer-event
// stream. The rendering surface sends down/move/up/leave/resize events; every
// event is answered with the resulting state (range, drag, hover, metrics).
// Events are processed strictly in arrival order.
func PointerEvents(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid session ID", http.StatusBadRequest)
			return
		}
		sess, ok := sessions.Get(sessionID)
		if !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Str("sessionID", sessionID.String()).Msg("WebSocket upgrade failed")
			return
		}
		defer conn.Close()

		log.Info().Str("sessionID", sessionID.String()).Msg("Pointer event stream opened")

		for {
			var ev models.PointerEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Str("sessionID", sessionID.String()).Msg("Pointer event stream error")
				}
				break
			}

			switch ev.Type {
			case "down", "move", "up", "leave", "resize":
			default:
				continue
			}
			metrics.PointerEvents.WithLabelValues(ev.Type).Inc()

			update := sess.Pointer(ev)
			if err := conn.WriteJSON(update); err != nil {
				log.Warn().Err(err).Str("sessionID", sessionID.String()).Msg("Pointer event write failed")
				break
			}
		}

		log.Info().Str("sessionID", sessionID.String()).Msg("Pointer event stream closed")
	}
}

package server

import (
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/mux"
)

// watchInterval matches the polling cadence the HTTP clients use.
const watchInterval = time.Second

// handleWatch upgrades to a websocket and pushes the requester's room
// snapshot once a second, skipping ticks where nothing changed. This
// is plain transport sugar over the same State read the polling
// endpoint serves; the core has no subscription concept.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	room, err := s.registry.GetRoom(mux.Vars(r)["code"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	playerID := r.URL.Query().Get("player_id")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close() //nolint:errcheck

	logger := s.logger.With("code", room.Code())
	logger.Debug("watch started")

	// Reads are only pumped to learn about the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	view := room.State(playerID)
	if err := conn.WriteJSON(view); err != nil {
		return
	}

	ticker := s.clock.NewTicker(watchInterval, "watch")
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			next := room.State(playerID)
			if reflect.DeepEqual(next, view) {
				continue
			}
			view = next
			if err := conn.WriteJSON(view); err != nil {
				logger.Debug("watch stopped", "error", err)
				return
			}
		case <-closed:
			logger.Debug("watch stopped")
			return
		case <-r.Context().Done():
			return
		}
	}
}

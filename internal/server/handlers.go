package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/game"
)

// Request/response shapes mirror the operations the core exposes; the
// route layout matches what the table frontend already speaks.

type createRoomRequest struct {
	PlayerName string `json:"player_name"`
	MaxPlayers int    `json:"max_players"`
}

type joinRoomRequest struct {
	PlayerName string `json:"player_name"`
}

type startRequest struct {
	PlayerID string `json:"player_id"`
}

type actionRequest struct {
	PlayerID string `json:"player_id"`
	Action   string `json:"action"`
}

type roomCreatedResponse struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	room, seat, err := s.registry.CreateRoom(req.PlayerName, req.MaxPlayers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, roomCreatedResponse{RoomID: room.Code(), PlayerID: seat.ID})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req joinRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	room, seat, err := s.registry.JoinRoom(mux.Vars(r)["code"], req.PlayerName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roomCreatedResponse{RoomID: room.Code(), PlayerID: seat.ID})
}

func (s *Server) handleStartRoom(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !s.decode(w, r, &req) {
		return
	}

	room, err := s.registry.GetRoom(mux.Vars(r)["code"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := room.Start(req.PlayerID); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("round started", "code", room.Code())
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if !s.decode(w, r, &req) {
		return
	}

	action, err := game.ParseAction(req.Action)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	room, err := s.registry.GetRoom(mux.Vars(r)["code"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := room.Act(req.PlayerID, action); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	room, err := s.registry.GetRoom(mux.Vars(r)["code"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	// player_id is optional; without it the caller gets the spectator
	// view, which masks the same hidden card.
	view := room.State(r.URL.Query().Get("player_id"))
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps core errors onto HTTP statuses. Deck exhaustion is
// an internal invariant violation, not a client mistake, so it is the
// one error that comes back as a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotCreator),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrUnknownPlayer):
		status = http.StatusForbidden
	case errors.Is(err, deck.ErrExhausted):
		status = http.StatusInternalServerError
		s.logger.Error("round aborted", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

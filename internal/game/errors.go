package game

import "errors"

// Request-rejection errors. Every operation on a room either fully
// succeeds or fails with one of these and leaves the room unchanged.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrWrongPhase      = errors.New("invalid action for current phase")
	ErrNotCreator      = errors.New("only the room creator can start the round")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidAction   = errors.New("seat has already finished its turn")
	ErrInvalidCapacity = errors.New("max players must be between 1 and 8")
	ErrUnknownPlayer   = errors.New("player not in room")

	// ErrNotEnoughPlayers rejects a start below the configured seat
	// threshold; with the default threshold of 1 it cannot trigger.
	ErrNotEnoughPlayers = errors.New("not enough players to start")

	// ErrInvalidName rejects empty or oversized display names.
	ErrInvalidName = errors.New("player name must be 1-30 characters")
)

package game

import "github.com/cardtable/blackjack/internal/deck"

// SeatStatus tracks a seat's progress through the round.
type SeatStatus int

const (
	SeatActive SeatStatus = iota
	SeatStanding
	SeatBusted
)

// String returns the string representation of a seat status
func (s SeatStatus) String() string {
	switch s {
	case SeatActive:
		return "active"
	case SeatStanding:
		return "standing"
	case SeatBusted:
		return "busted"
	default:
		return "unknown"
	}
}

// Result is a seat's outcome for the round, assigned exactly once when
// the dealer resolves.
type Result int

const (
	ResultUnset Result = iota
	ResultWin
	ResultLose
	ResultPush
	ResultBlackjack
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	case ResultPush:
		return "push"
	case ResultBlackjack:
		return "blackjack"
	default:
		return ""
	}
}

// Seat is one player's slot within a room for a round: identity, hand
// and status. Seats are created active with an empty hand and keep the
// index they were assigned at join time, which fixes the turn order.
type Seat struct {
	ID    string
	Name  string
	Index int

	Hand   []deck.Card
	Status SeatStatus
	Result Result
}

// receiveCard appends a card to the hand and busts the seat if the new
// total exceeds 21. Busted is terminal for the round.
func (s *Seat) receiveCard(card deck.Card) {
	s.Hand = append(s.Hand, card)
	if IsBust(s.Hand) {
		s.Status = SeatBusted
	}
}

// stand marks the seat standing. Only valid while active.
func (s *Seat) stand() error {
	if s.Status != SeatActive {
		return ErrInvalidAction
	}
	s.Status = SeatStanding
	return nil
}

// Score returns the seat's current best total.
func (s *Seat) Score() int {
	return Score(s.Hand)
}

// HasBlackjack reports whether the seat holds a natural.
func (s *Seat) HasBlackjack() bool {
	return IsBlackjack(s.Hand)
}

// resetForRound clears per-round state ahead of a new deal. Rooms only
// play a single round today, but the seat must not preclude another.
func (s *Seat) resetForRound() {
	s.Hand = s.Hand[:0]
	s.Status = SeatActive
	s.Result = ResultUnset
}

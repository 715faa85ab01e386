package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/randutil"
)

// Phase is the room state machine's current state. Transitions are
// strictly forward within a round: waiting → player_turns → results.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlayerTurns
	PhaseResults
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlayerTurns:
		return "player_turns"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Action is a player's move on their turn.
type Action int

const (
	Hit Action = iota
	Stand
)

// ParseAction maps the wire action names onto Actions.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit":
		return Hit, nil
	case "stand":
		return Stand, nil
	default:
		return 0, fmt.Errorf("action must be hit or stand, got %q", s)
	}
}

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// maxNameLen bounds display names in runes, matching the join form.
const maxNameLen = 30

// Room is a blackjack table shared by up to eight seats. All mutation
// happens under the room's own mutex so that operations against one
// room are serialized while other rooms proceed in parallel; readers
// always observe a pre- or post-operation snapshot, never a partial
// one. Seat 0 belongs to the creator, who alone may start the deal.
type Room struct {
	mu sync.Mutex

	code     string
	capacity int
	rules    Rules
	newDeck  func() *deck.Deck

	seats    []*Seat
	dealer   []deck.Card
	deck     *deck.Deck
	phase    Phase
	turn     int
	revealed bool
	aborted  bool
}

// RoomOption configures a Room at creation.
type RoomOption func(*Room)

// WithRules overrides the default table policy.
func WithRules(rules Rules) RoomOption {
	return func(r *Room) { r.rules = rules }
}

// WithRNG sets the RNG used to shuffle this room's decks.
func WithRNG(rng *rand.Rand) RoomOption {
	return func(r *Room) {
		r.newDeck = func() *deck.Deck { return deck.NewShuffled(rng) }
	}
}

// WithDeckFunc overrides deck creation entirely. Tests use this with
// deck.NewStacked to script exact deals.
func WithDeckFunc(fn func() *deck.Deck) RoomOption {
	return func(r *Room) { r.newDeck = fn }
}

// NewRoom creates a room in the waiting phase with the creator seated
// at index 0. Capacity is fixed for the life of the room.
func NewRoom(code, creatorID, creatorName string, maxPlayers int, opts ...RoomOption) (*Room, error) {
	if maxPlayers < MinCapacity || maxPlayers > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	name, err := cleanName(creatorName)
	if err != nil {
		return nil, err
	}

	r := &Room{
		code:     code,
		capacity: maxPlayers,
		rules:    DefaultRules(),
		turn:     -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.newDeck == nil {
		rng := randutil.NewFromTime()
		r.newDeck = func() *deck.Deck { return deck.NewShuffled(rng) }
	}

	r.seats = []*Seat{{ID: creatorID, Name: name, Index: 0}}
	return r, nil
}

// Code returns the room's join code.
func (r *Room) Code() string {
	return r.code
}

// Join seats a new player. Valid only while waiting and below capacity;
// the new seat takes the next index, which fixes its turn position.
func (r *Room) Join(playerID, playerName string) (*Seat, error) {
	name, err := cleanName(playerName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseWaiting {
		return nil, ErrWrongPhase
	}
	if len(r.seats) >= r.capacity {
		return nil, ErrRoomFull
	}

	seat := &Seat{ID: playerID, Name: name, Index: len(r.seats)}
	r.seats = append(r.seats, seat)
	return seat, nil
}

// Start deals the round: a fresh shuffled deck, two cards to each seat
// in turn order, then two to the dealer with the second kept hidden
// until reveal. Only the creator may start, and only from the waiting
// phase.
func (r *Room) Start(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseWaiting {
		return ErrWrongPhase
	}
	if r.seats[0].ID != playerID {
		return ErrNotCreator
	}
	if len(r.seats) < r.rules.MinPlayersToStart {
		return fmt.Errorf("%w: need %d players, have %d", ErrNotEnoughPlayers, r.rules.MinPlayersToStart, len(r.seats))
	}

	r.deck = r.newDeck()
	r.dealer = r.dealer[:0]
	r.revealed = false
	for _, seat := range r.seats {
		seat.resetForRound()
	}

	for _, seat := range r.seats {
		for i := 0; i < 2; i++ {
			card, err := r.deck.DealOne()
			if err != nil {
				return r.abortRound(err)
			}
			seat.receiveCard(card)
		}
	}
	for i := 0; i < 2; i++ {
		card, err := r.deck.DealOne()
		if err != nil {
			return r.abortRound(err)
		}
		r.dealer = append(r.dealer, card)
	}

	// Every seat starts active, so the first seat always has the turn.
	r.turn = 0
	r.phase = PhasePlayerTurns
	return nil
}

// Act applies a hit or stand for the seat that currently has the turn,
// then advances the turn to the next active seat. When no active seat
// remains ahead, dealer resolution and outcome assignment run within
// the same operation, so there is never an observable state with no
// current actor.
func (r *Room) Act(playerID string, action Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlayerTurns {
		return ErrWrongPhase
	}
	seat := r.findSeat(playerID)
	if seat == nil {
		return ErrUnknownPlayer
	}
	if seat.Index != r.turn {
		return ErrNotYourTurn
	}
	if seat.Status != SeatActive {
		return ErrInvalidAction
	}

	switch action {
	case Hit:
		card, err := r.deck.DealOne()
		if err != nil {
			return r.abortRound(err)
		}
		seat.receiveCard(card)
	case Stand:
		if err := seat.stand(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown action %d", action)
	}

	// A hit that keeps the seat under 22 leaves the turn in place.
	if seat.Status != SeatActive {
		r.advanceTurn(seat.Index)
	}
	if r.phase == PhasePlayerTurns && r.turn == -1 {
		return r.resolveDealer()
	}
	return nil
}

// advanceTurn moves the turn forward to the next active seat after
// from, never wrapping. turn becomes -1 when no active seat remains.
func (r *Room) advanceTurn(from int) {
	for i := from + 1; i < len(r.seats); i++ {
		if r.seats[i].Status == SeatActive {
			r.turn = i
			return
		}
	}
	r.turn = -1
}

// resolveDealer reveals the hidden card, runs the dealer's drawing
// policy and assigns every seat's result in one pass. If every seat
// busted the dealer reveals but draws nothing. Called with the room
// lock held.
func (r *Room) resolveDealer() error {
	r.revealed = true

	anyStanding := false
	for _, seat := range r.seats {
		if seat.Status != SeatBusted {
			anyStanding = true
			break
		}
	}

	if anyStanding {
		for r.rules.dealerShouldDraw(Score(r.dealer), IsSoft(r.dealer)) {
			card, err := r.deck.DealOne()
			if err != nil {
				return r.abortRound(err)
			}
			r.dealer = append(r.dealer, card)
		}
	}

	dealerScore := Score(r.dealer)
	dealerBust := dealerScore > 21
	dealerBlackjack := IsBlackjack(r.dealer)

	for _, seat := range r.seats {
		switch {
		case seat.Status == SeatBusted:
			seat.Result = ResultLose
		case seat.HasBlackjack() && dealerBlackjack:
			seat.Result = ResultPush
		case seat.HasBlackjack():
			seat.Result = ResultBlackjack
		case dealerBust:
			seat.Result = ResultWin
		case seat.Score() > dealerScore:
			seat.Result = ResultWin
		case seat.Score() < dealerScore:
			seat.Result = ResultLose
		default:
			seat.Result = ResultPush
		}
	}

	r.phase = PhaseResults
	r.turn = -1
	r.deck = nil
	return nil
}

// abortRound handles deck exhaustion, which cannot happen in normal
// single-deck play with at most eight seats. The round ends with no
// results assigned and the error is surfaced as fatal. Called with the
// room lock held.
func (r *Room) abortRound(err error) error {
	r.aborted = true
	r.revealed = true
	r.phase = PhaseResults
	r.turn = -1
	r.deck = nil
	return fmt.Errorf("round aborted: %w", err)
}

func (r *Room) findSeat(playerID string) *Seat {
	for _, seat := range r.seats {
		if seat.ID == playerID {
			return seat
		}
	}
	return nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return "", ErrInvalidName
	}
	return name, nil
}

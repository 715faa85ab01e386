package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cardtable/blackjack/internal/randutil"
	"github.com/cardtable/blackjack/internal/roomid"
)

// Registry is the process-wide table of active rooms, keyed by room
// code. It owns room creation and lookup but no game logic; entries
// live for the process lifetime. Construct one at startup and pass it
// to whatever serves requests — it is not a singleton.
type Registry struct {
	logger *log.Logger

	mu    sync.RWMutex
	rooms map[string]*Room

	codes *roomid.Generator
	rules Rules

	// seedRNG derives a shuffle seed per room so a fixed registry seed
	// reproduces every deal in order.
	seedMu  sync.Mutex
	seedRNG *rand.Rand
}

// RegistryOption configures a Registry at creation.
type RegistryOption func(*Registry)

// WithRegistryRules sets the table policy applied to every new room.
func WithRegistryRules(rules Rules) RegistryOption {
	return func(r *Registry) { r.rules = rules }
}

// WithSeed makes room codes stay random but deck shuffles reproducible.
func WithSeed(seed int64) RegistryOption {
	return func(r *Registry) { r.seedRNG = randutil.New(seed) }
}

// NewRegistry constructs an empty registry.
func NewRegistry(logger *log.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		logger: logger.WithPrefix("registry"),
		rooms:  make(map[string]*Room),
		codes:  roomid.NewGenerator(nil),
		rules:  DefaultRules(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.seedRNG == nil {
		r.seedRNG = randutil.NewFromTime()
	}
	return r
}

// CreateRoom creates a room with a fresh collision-checked code, seats
// the creator at index 0 and returns both.
func (r *Registry) CreateRoom(playerName string, maxPlayers int) (*Room, *Seat, error) {
	playerID := newPlayerID()

	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.newCode()
	if err != nil {
		return nil, nil, err
	}

	room, err := NewRoom(code, playerID, playerName, maxPlayers,
		WithRules(r.rules), WithRNG(r.roomRNG()))
	if err != nil {
		return nil, nil, err
	}

	r.rooms[code] = room
	r.logger.Info("room created", "code", code, "creator", playerName, "max_players", maxPlayers)
	return room, room.seats[0], nil
}

// GetRoom looks up a room by code, tolerating lowercase and the usual
// transcription mixups.
func (r *Registry) GetRoom(code string) (*Room, error) {
	code = roomid.Normalize(code)

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom seats a new player in the room with the given code.
func (r *Registry) JoinRoom(code, playerName string) (*Room, *Seat, error) {
	room, err := r.GetRoom(code)
	if err != nil {
		return nil, nil, err
	}

	seat, err := room.Join(newPlayerID(), playerName)
	if err != nil {
		return nil, nil, err
	}

	r.logger.Info("player joined", "code", room.Code(), "player", seat.Name, "seat", seat.Index)
	return room, seat, nil
}

// Len returns the number of active rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// newCode generates a room code that is not already in use. Called
// with the write lock held.
func (r *Registry) newCode() (string, error) {
	for attempt := 0; attempt < 20; attempt++ {
		code := r.codes.Generate()
		if _, taken := r.rooms[code]; !taken {
			return code, nil
		}
	}
	// ~1e9 code space; twenty straight collisions means something is
	// badly wrong with the randomness source.
	return "", fmt.Errorf("could not generate an unused room code")
}

func (r *Registry) roomRNG() *rand.Rand {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()
	return randutil.New(r.seedRNG.Int64())
}

// newPlayerID mints the opaque per-player token.
func newPlayerID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

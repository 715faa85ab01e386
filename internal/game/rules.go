package game

// Capacity bounds for a room, fixed by the table format.
const (
	MinCapacity = 1
	MaxCapacity = 8
)

// Rules holds the table policy knobs that change outcomes and so must
// be explicit rather than implied.
type Rules struct {
	// MinPlayersToStart is the seat count required before the creator
	// may deal. 1 allows single-player practice against the dealer.
	MinPlayersToStart int

	// DealerHitsSoft17 selects the soft-17 policy. The default is the
	// "stands on all 17s" rule: the dealer draws while below 17 and
	// stops at any 17, soft or hard.
	DealerHitsSoft17 bool
}

// DefaultRules returns the table policy used unless configured otherwise.
func DefaultRules() Rules {
	return Rules{
		MinPlayersToStart: 1,
		DealerHitsSoft17:  false,
	}
}

// dealerShouldDraw applies the drawing policy to the dealer's hand.
func (r Rules) dealerShouldDraw(score int, soft bool) bool {
	if score < 17 {
		return true
	}
	return score == 17 && soft && r.DealerHitsSoft17
}

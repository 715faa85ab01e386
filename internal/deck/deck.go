package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a deal is requested after all 52 cards
// have been dealt. A single-deck round with at most eight seats should
// never hit this in normal play, so callers treat it as fatal for the
// round rather than reshuffling.
var ErrExhausted = errors.New("deck exhausted")

// Deck is a single shuffled 52-card deck. A cursor marks the next card
// to deal; each card is dealt at most once.
type Deck struct {
	cards [52]Card
	next  int
}

// NewShuffled creates a full deck permuted with a Fisher-Yates shuffle
// driven by the provided RNG.
func NewShuffled(rng *rand.Rand) *Deck {
	d := &Deck{}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(suit, rank)
			i++
		}
	}

	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewStacked creates a deck that deals the given cards in order. Only
// used by tests that need a known sequence; the cards are followed by
// nothing, so over-drawing returns ErrExhausted just like a real deck.
// Panics if given more than 52 cards.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{}
	if len(cards) > len(d.cards) {
		panic("deck: stacked with more than 52 cards")
	}
	d.next = len(d.cards) - len(cards)
	copy(d.cards[d.next:], cards)
	return d
}

// DealOne returns the next card and advances the cursor.
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

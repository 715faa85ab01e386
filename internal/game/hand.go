package game

import "github.com/cardtable/blackjack/internal/deck"

// Score computes the best blackjack total for a hand. Aces start at 11
// and are demoted to 1 one at a time while the total busts. The result
// may exceed 21, which signals a bust; with no non-bust total possible
// the lowest busting total is returned.
func Score(cards []deck.Card) int {
	total, _ := scoreWithAces(cards)
	return total
}

// IsSoft reports whether the hand's best total counts an ace as 11.
func IsSoft(cards []deck.Card) bool {
	total, elevens := scoreWithAces(cards)
	return elevens > 0 && total <= 21
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21.
func IsBlackjack(cards []deck.Card) bool {
	return len(cards) == 2 && Score(cards) == 21
}

// IsBust reports whether the hand's best total exceeds 21.
func IsBust(cards []deck.Card) bool {
	return Score(cards) > 21
}

// scoreWithAces returns the best total and how many aces are still
// counted as 11 in it.
func scoreWithAces(cards []deck.Card) (total, elevens int) {
	for _, c := range cards {
		total += c.BlackjackValue()
		if c.IsAce() {
			elevens++
		}
	}
	for total > 21 && elevens > 0 {
		total -= 10
		elevens--
	}
	return total, elevens
}

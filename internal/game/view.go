package game

import "github.com/cardtable/blackjack/internal/deck"

// CardView is the wire form of a card. A hidden card carries no rank
// or suit at all, so the dealer's hole card can never leak through a
// snapshot taken before reveal.
type CardView struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Hidden bool   `json:"hidden"`
}

// SeatView is a read-only snapshot of one seat.
type SeatView struct {
	Name   string     `json:"name"`
	Index  int        `json:"index"`
	Cards  []CardView `json:"cards"`
	Score  int        `json:"score"`
	Status string     `json:"status"`
	Result string     `json:"result,omitempty"`
}

// DealerView is a read-only snapshot of the dealer's hand. Before
// reveal the score covers only the visible card.
type DealerView struct {
	Cards []CardView `json:"cards"`
	Score int        `json:"score"`
}

// RoomView is the full snapshot a client polls for. YourSeatIndex is
// nil when the requester is spectating. Aborted marks a round that
// ended on a dealing failure rather than dealer resolution; such a
// round reaches the results phase with no results assigned.
type RoomView struct {
	RoomID           string     `json:"room_id"`
	Phase            string     `json:"phase"`
	Aborted          bool       `json:"aborted,omitempty"`
	MaxPlayers       int        `json:"max_players"`
	CurrentTurnIndex int        `json:"current_turn_index"`
	YourSeatIndex    *int       `json:"your_seat_index,omitempty"`
	CanStart         bool       `json:"can_start"`
	CanAct           bool       `json:"can_act"`
	Players          []SeatView `json:"players"`
	Dealer           DealerView `json:"dealer"`
}

// State produces an atomic snapshot of the room for the requesting
// player, or for a spectator when playerID is empty. Hidden-card
// masking is derived from the room's phase on every call rather than
// stored on the card, so concurrent readers can never diverge.
func (r *Room) State(playerID string) RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := RoomView{
		RoomID:           r.code,
		Phase:            r.phase.String(),
		Aborted:          r.aborted,
		MaxPlayers:       r.capacity,
		CurrentTurnIndex: r.turn,
		Players:          make([]SeatView, 0, len(r.seats)),
	}

	var requester *Seat
	if playerID != "" {
		if requester = r.findSeat(playerID); requester != nil {
			idx := requester.Index
			view.YourSeatIndex = &idx
		}
	}
	if requester != nil {
		view.CanStart = r.phase == PhaseWaiting && requester.Index == 0
		view.CanAct = r.phase == PhasePlayerTurns && requester.Index == r.turn
	}

	for _, seat := range r.seats {
		sv := SeatView{
			Name:   seat.Name,
			Index:  seat.Index,
			Cards:  make([]CardView, 0, len(seat.Hand)),
			Score:  seat.Score(),
			Status: seat.Status.String(),
			Result: seat.Result.String(),
		}
		for _, card := range seat.Hand {
			sv.Cards = append(sv.Cards, cardView(card))
		}
		view.Players = append(view.Players, sv)
	}

	view.Dealer = r.dealerView()
	return view
}

// dealerView masks the dealer's second card until reveal. Called with
// the room lock held.
func (r *Room) dealerView() DealerView {
	dv := DealerView{Cards: make([]CardView, 0, len(r.dealer))}

	visible := make([]deck.Card, 0, len(r.dealer))
	for i, card := range r.dealer {
		if !r.revealed && i == 1 {
			dv.Cards = append(dv.Cards, CardView{Hidden: true})
			continue
		}
		dv.Cards = append(dv.Cards, cardView(card))
		visible = append(visible, card)
	}
	dv.Score = Score(visible)
	return dv
}

func cardView(card deck.Card) CardView {
	return CardView{
		Rank: card.Rank.String(),
		Suit: card.Suit.Name(),
	}
}

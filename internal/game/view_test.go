package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cardtable/blackjack/internal/deck"
)

func TestStateMasksDealerHoleCardUntilReveal(t *testing.T) {
	room, seats := stackedRoom(t, 1, []string{"Alice"},
		card(deck.Spades, deck.King), card(deck.Spades, deck.Queen), // Alice: 20
		card(deck.Hearts, deck.Nine), card(deck.Hearts, deck.Eight), // dealer: 17
	)
	if err := room.Start(seats[0].ID); err != nil {
		t.Fatal(err)
	}

	view := room.State(seats[0].ID)
	if len(view.Dealer.Cards) != 2 {
		t.Fatalf("expected 2 dealer cards, got %d", len(view.Dealer.Cards))
	}
	up, hole := view.Dealer.Cards[0], view.Dealer.Cards[1]
	if up.Hidden || up.Rank != "9" {
		t.Errorf("upcard should be visible, got %+v", up)
	}
	if !hole.Hidden || hole.Rank != "" || hole.Suit != "" {
		t.Errorf("hole card leaked: %+v", hole)
	}
	if view.Dealer.Score != 9 {
		t.Errorf("pre-reveal dealer score should cover the upcard only, got %d", view.Dealer.Score)
	}

	// The serialized form must not carry the hole card either.
	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "8♥") || strings.Contains(string(raw), `"rank":"8"`) {
		t.Errorf("hole card leaked through JSON: %s", raw)
	}

	if err := room.Act(seats[0].ID, Stand); err != nil {
		t.Fatal(err)
	}

	view = room.State(seats[0].ID)
	if view.Phase != "results" {
		t.Fatalf("expected results, got %s", view.Phase)
	}
	hole = view.Dealer.Cards[1]
	if hole.Hidden || hole.Rank != "8" {
		t.Errorf("hole card should be revealed in results, got %+v", hole)
	}
	if view.Dealer.Score != 17 {
		t.Errorf("expected revealed dealer score 17, got %d", view.Dealer.Score)
	}
}

func TestStateFlagsAndSeatIndex(t *testing.T) {
	room, _ := NewRoom("TEST01", "p0", "Alice", 2)
	bob, err := room.Join("p1", "Bob")
	if err != nil {
		t.Fatal(err)
	}

	creatorView := room.State("p0")
	if !creatorView.CanStart {
		t.Error("creator should be able to start in waiting phase")
	}
	if creatorView.CanAct {
		t.Error("nobody can act in waiting phase")
	}
	if creatorView.YourSeatIndex == nil || *creatorView.YourSeatIndex != 0 {
		t.Errorf("expected seat index 0, got %v", creatorView.YourSeatIndex)
	}

	bobView := room.State(bob.ID)
	if bobView.CanStart {
		t.Error("non-creator must not be able to start")
	}
	if bobView.YourSeatIndex == nil || *bobView.YourSeatIndex != 1 {
		t.Errorf("expected seat index 1, got %v", bobView.YourSeatIndex)
	}

	spectator := room.State("")
	if spectator.YourSeatIndex != nil {
		t.Error("spectator view should have no seat index")
	}
	if spectator.CanStart || spectator.CanAct {
		t.Error("spectator can neither start nor act")
	}
}

func TestStateCanActFollowsTurn(t *testing.T) {
	room, seats := stackedRoom(t, 2, []string{"Alice", "Bob"},
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six),
		card(deck.Clubs, deck.King), card(deck.Diamonds, deck.Queen),
		card(deck.Spades, deck.Nine), card(deck.Hearts, deck.Eight),
	)
	if err := room.Start(seats[0].ID); err != nil {
		t.Fatal(err)
	}

	if !room.State(seats[0].ID).CanAct {
		t.Error("seat 0 should have the turn after start")
	}
	if room.State(seats[1].ID).CanAct {
		t.Error("seat 1 must not have the turn yet")
	}

	if err := room.Act(seats[0].ID, Stand); err != nil {
		t.Fatal(err)
	}
	if room.State(seats[0].ID).CanAct {
		t.Error("seat 0 is standing, can_act should drop")
	}
	if !room.State(seats[1].ID).CanAct {
		t.Error("seat 1 should now have the turn")
	}
}

func TestStateWaitingPhaseShape(t *testing.T) {
	room, _ := NewRoom("TEST01", "p0", "Alice", 2)
	view := room.State("p0")

	if view.Phase != "waiting" {
		t.Errorf("expected waiting, got %s", view.Phase)
	}
	if view.CurrentTurnIndex != -1 {
		t.Errorf("no turn is meaningful while waiting, got %d", view.CurrentTurnIndex)
	}
	if len(view.Players) != 1 || view.Players[0].Name != "Alice" {
		t.Errorf("unexpected players: %+v", view.Players)
	}
	if len(view.Dealer.Cards) != 0 || view.Dealer.Score != 0 {
		t.Errorf("dealer should be empty while waiting: %+v", view.Dealer)
	}
}

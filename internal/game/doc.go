// Package game implements the core blackjack table logic: hand
// scoring, seats, the room state machine and the process-wide room
// registry.
//
// The main type is Room, which owns a round's seats, dealer hand and
// deck and moves through three phases: waiting (players join), player
// turns (one seat acts at a time, in join order) and results (dealer
// resolved, outcomes assigned). The final player action triggers
// dealer resolution within the same operation, so a snapshot can never
// observe a round with no current actor.
//
// # Basic Usage
//
// Create a registry at startup and drive rooms through it:
//
//	reg := game.NewRegistry(logger)
//	room, creator, _ := reg.CreateRoom("Alice", 4)
//	_, bob, _ := reg.JoinRoom(room.Code(), "Bob")
//	_ = room.Start(creator.ID)
//	_ = room.Act(creator.ID, game.Stand)
//	_ = room.Act(bob.ID, game.Hit)
//	view := room.State(bob.ID)
//
// # Deterministic Testing
//
// Shuffles are reproducible from a seed via game.WithSeed on the
// registry, or per room with game.WithRNG. For exact deals, stack a
// deck:
//
//	d := deck.NewStacked(cards...)
//	room, _ := game.NewRoom(code, id, "Alice", 2,
//	    game.WithDeckFunc(func() *deck.Deck { return d }))
//
// # Concurrency
//
// Each Room serializes its own operations behind a mutex; operations
// against different rooms run fully in parallel. The Registry guards
// its code→room table separately. No operation blocks: everything is
// in-memory computation, so there is no context plumbing here.
package game

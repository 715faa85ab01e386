package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRegistryCreateAndGet(t *testing.T) {
	reg := NewRegistry(testLogger(), WithSeed(42))

	room, seat, err := reg.CreateRoom("Alice", 4)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if seat.Index != 0 || seat.Name != "Alice" {
		t.Errorf("unexpected creator seat: %+v", seat)
	}
	if seat.ID == "" {
		t.Error("creator should get an opaque player id")
	}
	if len(room.Code()) != 6 {
		t.Errorf("expected 6-character room code, got %q", room.Code())
	}

	got, err := reg.GetRoom(room.Code())
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got != room {
		t.Error("GetRoom returned a different room")
	}

	// Lookup tolerates lowercase input.
	if _, err := reg.GetRoom(strings.ToLower(room.Code())); err != nil {
		t.Errorf("lowercase lookup failed: %v", err)
	}
}

func TestRegistryGetUnknownCode(t *testing.T) {
	reg := NewRegistry(testLogger())
	if _, err := reg.GetRoom("ZZZZZZ"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRegistryJoinRoom(t *testing.T) {
	reg := NewRegistry(testLogger(), WithSeed(42))
	room, creator, err := reg.CreateRoom("Alice", 2)
	if err != nil {
		t.Fatal(err)
	}

	joined, seat, err := reg.JoinRoom(room.Code(), "Bob")
	if err != nil {
		t.Fatalf("JoinRoom failed: %v", err)
	}
	if joined != room {
		t.Error("joined a different room")
	}
	if seat.Index != 1 {
		t.Errorf("expected seat 1, got %d", seat.Index)
	}
	if seat.ID == creator.ID {
		t.Error("player ids must be distinct")
	}

	if _, _, err := reg.JoinRoom("ZZZZZZ", "Carol"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
	if _, _, err := reg.JoinRoom(room.Code(), "Carol"); !errors.Is(err, ErrRoomFull) {
		t.Errorf("expected ErrRoomFull, got %v", err)
	}
}

func TestRegistryCreateRoomValidation(t *testing.T) {
	reg := NewRegistry(testLogger())

	if _, _, err := reg.CreateRoom("Alice", 9); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
	if _, _, err := reg.CreateRoom("  ", 2); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("failed creations must not leave rooms behind, have %d", reg.Len())
	}
}

func TestRegistryConcurrentCreates(t *testing.T) {
	reg := NewRegistry(testLogger())

	const n = 50
	var wg sync.WaitGroup
	codes := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room, _, err := reg.CreateRoom(fmt.Sprintf("Player %d", i), 4)
			if err != nil {
				t.Errorf("create %d failed: %v", i, err)
				return
			}
			codes <- room.Code()
		}(i)
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		if seen[code] {
			t.Errorf("duplicate room code %s", code)
		}
		seen[code] = true
	}
	if reg.Len() != n {
		t.Errorf("expected %d rooms, got %d", n, reg.Len())
	}
}

func TestRegistrySeedReproducesDeals(t *testing.T) {
	deal := func() string {
		reg := NewRegistry(testLogger(), WithSeed(7))
		room, creator, err := reg.CreateRoom("Alice", 1)
		if err != nil {
			t.Fatal(err)
		}
		if err := room.Start(creator.ID); err != nil {
			t.Fatal(err)
		}
		view := room.State(creator.ID)
		var cards []string
		for _, c := range view.Players[0].Cards {
			cards = append(cards, c.Rank+c.Suit)
		}
		return strings.Join(cards, ",")
	}

	if first, second := deal(), deal(); first != second {
		t.Errorf("seeded registries dealt different hands: %s vs %s", first, second)
	}
}

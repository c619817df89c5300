package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

func TestCreateBeastRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	id, err := store.CreateBeast(ctx, storage.Beast{
		EventID:            eventID,
		Species:            arena.SpeciesLion,
		Count:              2,
		Strength:           9,
		Speed:              7,
		EntertainmentValue: 10,
	})
	if err != nil {
		t.Fatalf("create beast: %v", err)
	}

	records, err := store.ListBeastsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list beasts: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 beast, got %d", len(records))
	}
	record := records[0]
	if record.ID != id {
		t.Fatalf("expected id %d, got %d", id, record.ID)
	}
	if record.Species != arena.SpeciesLion {
		t.Fatalf("unexpected species %q", record.Species)
	}
	if record.Count != 2 || record.Strength != 9 || record.Speed != 7 || record.EntertainmentValue != 10 {
		t.Fatalf("unexpected values: %+v", record)
	}
}

func TestCreateBeastRejectsNegativeCount(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	_, err := store.CreateBeast(ctx, storage.Beast{
		EventID: eventID,
		Species: arena.SpeciesJackal,
		Count:   -3,
	})
	if !errors.Is(err, storage.ErrValidation) {
		t.Fatalf("expected ErrValidation from the count guard trigger, got %v", err)
	}
	if !strings.Contains(err.Error(), "beast count must not be negative") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCreateBeastRejectsNegativeAttributes(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	tests := []struct {
		name   string
		record storage.Beast
	}{
		{"strength", storage.Beast{EventID: eventID, Species: arena.SpeciesLion, Count: 1, Strength: -1}},
		{"speed", storage.Beast{EventID: eventID, Species: arena.SpeciesLion, Count: 1, Speed: -2}},
		{"entertainment value", storage.Beast{EventID: eventID, Species: arena.SpeciesLion, Count: 1, EntertainmentValue: -5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := store.CreateBeast(ctx, test.record)
			if !errors.Is(err, storage.ErrConstraint) {
				t.Fatalf("expected ErrConstraint, got %v", err)
			}
		})
	}
}

func TestCreateBeastRejectsUnknownSpecies(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	_, err := store.CreateBeast(ctx, storage.Beast{
		EventID: eventID,
		Species: arena.Species("elephant"),
		Count:   1,
	})
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestCreateBeastRejectsUnknownEvent(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.CreateBeast(context.Background(), storage.Beast{
		EventID: 404,
		Species: arena.SpeciesBaboon,
		Count:   1,
	})
	if !errors.Is(err, storage.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestListBeastsByEventOrdersBySpecies(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	for _, species := range []arena.Species{arena.SpeciesLion, arena.SpeciesBaboon, arena.SpeciesJackal} {
		if _, err := store.CreateBeast(ctx, storage.Beast{EventID: eventID, Species: species, Count: 1}); err != nil {
			t.Fatalf("create %s: %v", species, err)
		}
	}

	records, err := store.ListBeastsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list beasts: %v", err)
	}
	want := []arena.Species{arena.SpeciesBaboon, arena.SpeciesJackal, arena.SpeciesLion}
	if len(records) != len(want) {
		t.Fatalf("expected %d beasts, got %d", len(want), len(records))
	}
	for i, species := range want {
		if records[i].Species != species {
			t.Fatalf("position %d: expected %s, got %s", i, species, records[i].Species)
		}
	}
}

package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

func TestCreateArenaRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateArena(ctx, storage.Arena{
		Name:     "  Римский Колизей  ",
		City:     "Рим",
		Capacity: 50000,
	})
	if err != nil {
		t.Fatalf("create arena: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	record, err := store.GetArena(ctx, id)
	if err != nil {
		t.Fatalf("get arena: %v", err)
	}
	if record.Name != "Римский Колизей" {
		t.Fatalf("expected trimmed name, got %q", record.Name)
	}
	if record.City != "Рим" {
		t.Fatalf("unexpected city %q", record.City)
	}
	if record.Capacity != 50000 {
		t.Fatalf("unexpected capacity %d", record.Capacity)
	}
	if record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestCreateArenaRequiredFields(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateArena(ctx, storage.Arena{City: "Рим", Capacity: 100}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := store.CreateArena(ctx, storage.Arena{Name: "Колизей", Capacity: 100}); err == nil {
		t.Fatal("expected error for missing city")
	}
}

func TestCreateArenaRejectsNonPositiveCapacity(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	for _, capacity := range []int64{0, -1, -50000} {
		_, err := store.CreateArena(ctx, storage.Arena{
			Name:     "Малый цирк",
			City:     "Рим",
			Capacity: capacity,
		})
		if !errors.Is(err, storage.ErrConstraint) {
			t.Fatalf("capacity %d: expected ErrConstraint, got %v", capacity, err)
		}
	}
}

func TestGetArenaNotFound(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.GetArena(context.Background(), 404)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListArenasOrdersByName(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Циркус Максимус", "Амфитеатр Капуи", "Римский Колизей"} {
		if _, err := store.CreateArena(ctx, storage.Arena{Name: name, City: "Италия", Capacity: 10000}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	arenas, err := store.ListArenas(ctx)
	if err != nil {
		t.Fatalf("list arenas: %v", err)
	}
	if len(arenas) != 3 {
		t.Fatalf("expected 3 arenas, got %d", len(arenas))
	}
	want := []string{"Амфитеатр Капуи", "Римский Колизей", "Циркус Максимус"}
	for i, name := range want {
		if arenas[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, arenas[i].Name)
		}
	}
}

func TestDeleteArenaNotFound(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.DeleteArena(context.Background(), 404)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArenaCascadesToAllDescendants(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	keptArenaID, err := store.CreateArena(ctx, storage.Arena{Name: "Циркус Максимус", City: "Рим", Capacity: 150000})
	if err != nil {
		t.Fatalf("create second arena: %v", err)
	}

	eventID := createTestEvent(t, store, arenaID)
	keptEventID, err := store.CreateEvent(ctx, storage.Event{
		ArenaID:   keptArenaID,
		Date:      time.Date(81, time.March, 15, 0, 0, 0, 0, time.UTC),
		EventType: "гонки колесниц",
	})
	if err != nil {
		t.Fatalf("create second event: %v", err)
	}

	createTestParticipant(t, store, eventID, arena.ParticipantTypeGladiator, 4)
	createTestParticipant(t, store, keptEventID, arena.ParticipantTypeCharioteer, 6)

	if _, err := store.CreateBeast(ctx, storage.Beast{
		EventID: eventID, Species: arena.SpeciesLion, Count: 2,
		Strength: 8, Speed: 7, EntertainmentValue: 9,
	}); err != nil {
		t.Fatalf("create beast: %v", err)
	}
	if _, err := store.CreateBattleResult(ctx, storage.BattleResult{
		EventID: eventID, ParticipantType: "gladiator", Survived: 2,
	}); err != nil {
		t.Fatalf("create battle result: %v", err)
	}

	if err := store.DeleteArena(ctx, arenaID); err != nil {
		t.Fatalf("delete arena: %v", err)
	}

	db := openRawDB(t, path)
	if got := queryCount(t, db, "SELECT COUNT(*) FROM events WHERE arena_id = ?", arenaID); got != 0 {
		t.Fatalf("expected no events for deleted arena, got %d", got)
	}
	if got := queryCount(t, db, "SELECT COUNT(*) FROM participants WHERE event_id = ?", eventID); got != 0 {
		t.Fatalf("expected no participants for deleted event, got %d", got)
	}
	if got := queryCount(t, db, "SELECT COUNT(*) FROM beasts WHERE event_id = ?", eventID); got != 0 {
		t.Fatalf("expected no beasts for deleted event, got %d", got)
	}
	if got := queryCount(t, db, "SELECT COUNT(*) FROM battle_results WHERE event_id = ?", eventID); got != 0 {
		t.Fatalf("expected no battle results for deleted event, got %d", got)
	}

	// The sibling arena and its descendants are untouched.
	if got := queryCount(t, db, "SELECT COUNT(*) FROM events WHERE arena_id = ?", keptArenaID); got != 1 {
		t.Fatalf("expected surviving event, got %d", got)
	}
	if got := queryCount(t, db, "SELECT COUNT(*) FROM participants WHERE event_id = ?", keptEventID); got != 1 {
		t.Fatalf("expected surviving participant, got %d", got)
	}
}

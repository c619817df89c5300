package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

func TestCreateParticipantRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	id, err := store.CreateParticipant(ctx, storage.Participant{
		EventID:       eventID,
		Type:          arena.ParticipantTypeRetiarius,
		Count:         2,
		StrengthLevel: arena.StrengthLevelNovice,
		Cost:          80,
		Age:           19,
		BattlesCount:  1,
	})
	if err != nil {
		t.Fatalf("create participant: %v", err)
	}

	records, err := store.ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(records))
	}
	record := records[0]
	if record.ID != id {
		t.Fatalf("expected id %d, got %d", id, record.ID)
	}
	if record.Type != arena.ParticipantTypeRetiarius {
		t.Fatalf("unexpected type %q", record.Type)
	}
	if record.Count != 2 || record.Cost != 80 || record.Age != 19 || record.BattlesCount != 1 {
		t.Fatalf("unexpected values: %+v", record)
	}
	if record.StrengthLevel != arena.StrengthLevelNovice {
		t.Fatalf("unexpected strength level %q", record.StrengthLevel)
	}
}

func TestCreateParticipantAllowsDuplicateTypeRows(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	createTestParticipant(t, store, eventID, arena.ParticipantTypeGladiator, 4)
	createTestParticipant(t, store, eventID, arena.ParticipantTypeGladiator, 3)

	records, err := store.ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows for the same type, got %d", len(records))
	}
}

func TestCreateParticipantRejectsNegativeCount(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	_, err := store.CreateParticipant(ctx, storage.Participant{
		EventID:       eventID,
		Type:          arena.ParticipantTypeGladiator,
		Count:         -1,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if !errors.Is(err, storage.ErrValidation) {
		t.Fatalf("expected ErrValidation from the count guard trigger, got %v", err)
	}
	if !strings.Contains(err.Error(), "participant count must not be negative") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestParticipantCountCheckBacksTheTrigger(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	// Remove the guard triggers so the insert reaches the CHECK constraint.
	db := openRawDB(t, path)
	for _, trigger := range []string{"trg_participants_count_guard_insert", "trg_participants_count_guard_update"} {
		if _, err := db.Exec("DROP TRIGGER " + trigger); err != nil {
			t.Fatalf("drop trigger %s: %v", trigger, err)
		}
	}

	_, err := store.CreateParticipant(ctx, storage.Participant{
		EventID:       eventID,
		Type:          arena.ParticipantTypeGladiator,
		Count:         -1,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint from the CHECK layer, got %v", err)
	}
}

func TestCreateParticipantRejectsNegativeAttributes(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	tests := []struct {
		name   string
		record storage.Participant
	}{
		{"cost", storage.Participant{EventID: eventID, Type: arena.ParticipantTypeGladiator, Count: 1, StrengthLevel: arena.StrengthLevelNovice, Cost: -10}},
		{"age", storage.Participant{EventID: eventID, Type: arena.ParticipantTypeGladiator, Count: 1, StrengthLevel: arena.StrengthLevelNovice, Age: -1}},
		{"battles count", storage.Participant{EventID: eventID, Type: arena.ParticipantTypeGladiator, Count: 1, StrengthLevel: arena.StrengthLevelNovice, BattlesCount: -5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := store.CreateParticipant(ctx, test.record)
			if !errors.Is(err, storage.ErrConstraint) {
				t.Fatalf("expected ErrConstraint, got %v", err)
			}
		})
	}
}

func TestCreateParticipantRejectsUnknownEnumValues(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	_, err := store.CreateParticipant(ctx, storage.Participant{
		EventID:       eventID,
		Type:          arena.ParticipantType("senator"),
		Count:         1,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint for unknown type, got %v", err)
	}

	_, err = store.CreateParticipant(ctx, storage.Participant{
		EventID:       eventID,
		Type:          arena.ParticipantTypeGladiator,
		Count:         1,
		StrengthLevel: arena.StrengthLevel("legendary"),
	})
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint for unknown strength level, got %v", err)
	}
}

func TestCreateParticipantRejectsUnknownEvent(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.CreateParticipant(context.Background(), storage.Participant{
		EventID:       404,
		Type:          arena.ParticipantTypeGladiator,
		Count:         1,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if !errors.Is(err, storage.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestUpsertParticipantInsertsWhenMissing(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	err := store.UpsertParticipant(ctx, storage.UpsertParticipantParams{
		EventID:       eventID,
		Type:          arena.ParticipantTypeBarbarian,
		Count:         8,
		StrengthLevel: arena.StrengthLevelVeteran,
		Cost:          30,
		Age:           32,
		BattlesCount:  12,
	})
	if err != nil {
		t.Fatalf("upsert participant: %v", err)
	}

	db := openRawDB(t, path)
	got := queryCount(t, db, "SELECT COUNT(*) FROM participants WHERE event_id = ? AND type = ?", eventID, "barbarian")
	if got != 1 {
		t.Fatalf("expected exactly one row, got %d", got)
	}
}

func TestUpsertParticipantReplacesInPlace(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	first := storage.UpsertParticipantParams{
		EventID:       eventID,
		Type:          arena.ParticipantTypeGladiator,
		Count:         4,
		StrengthLevel: arena.StrengthLevelExperienced,
		Cost:          120,
		Age:           27,
		BattlesCount:  9,
	}
	if err := store.UpsertParticipant(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	db := openRawDB(t, path)
	var id, createdAt int64
	if err := db.QueryRow("SELECT id, created_at FROM participants WHERE event_id = ? AND type = ?",
		eventID, "gladiator").Scan(&id, &createdAt); err != nil {
		t.Fatalf("read inserted row: %v", err)
	}

	second := first
	second.Count = 6
	second.StrengthLevel = arena.StrengthLevelVeteran
	second.Cost = 200
	if err := store.UpsertParticipant(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	records, err := store.ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one row after rewrite, got %d", len(records))
	}
	record := records[0]
	if record.ID != id {
		t.Fatalf("expected row %d to be kept, got %d", id, record.ID)
	}
	if record.Count != 6 || record.Cost != 200 || record.StrengthLevel != arena.StrengthLevelVeteran {
		t.Fatalf("expected last write to win, got %+v", record)
	}

	var keptCreatedAt int64
	if err := db.QueryRow("SELECT created_at FROM participants WHERE id = ?", id).Scan(&keptCreatedAt); err != nil {
		t.Fatalf("read rewritten row: %v", err)
	}
	if keptCreatedAt != createdAt {
		t.Fatalf("expected created_at to be preserved, got %d != %d", keptCreatedAt, createdAt)
	}
}

func TestUpsertParticipantConvergesDuplicateRows(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	arenaID := createTestArena(t, store)
	eventID := createTestEvent(t, store, arenaID)

	createTestParticipant(t, store, eventID, arena.ParticipantTypeArcher, 5)
	createTestParticipant(t, store, eventID, arena.ParticipantTypeArcher, 7)

	err := store.UpsertParticipant(ctx, storage.UpsertParticipantParams{
		EventID:       eventID,
		Type:          arena.ParticipantTypeArcher,
		Count:         2,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if err != nil {
		t.Fatalf("upsert participant: %v", err)
	}

	records, err := store.ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected both rows to survive, got %d", len(records))
	}
	for _, record := range records {
		if record.Count != 2 {
			t.Fatalf("expected every row to carry the new count, got %+v", record)
		}
	}
}

func TestUpsertParticipantRejectsUnknownEvent(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.UpsertParticipant(context.Background(), storage.UpsertParticipantParams{
		EventID:       404,
		Type:          arena.ParticipantTypeGladiator,
		Count:         1,
		StrengthLevel: arena.StrengthLevelNovice,
	})
	if !errors.Is(err, storage.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

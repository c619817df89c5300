package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/telemetry"
)

const dateLayout = "2006-01-02"

// emitAudit records an audit event for a completed write. Audit failures
// are logged instead of failing the tool call: the mutation already
// happened.
func emitAudit(ctx context.Context, emitter *telemetry.Emitter, record storage.AuditEvent) {
	if err := emitter.Emit(ctx, record); err != nil {
		log.Printf("audit emit failed: action=%s err=%v", record.Action, err)
	}
}

// ArenaCreateHandler registers a new arena.
func ArenaCreateHandler(store storage.ArenaStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[ArenaCreateInput, ArenaCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArenaCreateInput) (*mcp.CallToolResult, ArenaCreateResult, error) {
		id, err := store.CreateArena(ctx, storage.Arena{
			Name:     input.Name,
			City:     input.City,
			Capacity: input.Capacity,
		})
		if err != nil {
			return nil, ArenaCreateResult{}, fmt.Errorf("arena create failed: %w", err)
		}
		record, err := store.GetArena(ctx, id)
		if err != nil {
			return nil, ArenaCreateResult{}, fmt.Errorf("load created arena: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:   "arena_created",
			Entity:   "arena",
			EntityID: id,
			Detail:   fmt.Sprintf("%s (%s), capacity %d", record.Name, record.City, record.Capacity),
		})
		return nil, ArenaCreateResult{
			ID:       record.ID,
			Name:     record.Name,
			City:     record.City,
			Capacity: record.Capacity,
		}, nil
	}
}

// ArenaListHandler lists registered arenas.
func ArenaListHandler(store storage.ArenaStore) mcp.ToolHandlerFor[ArenaListInput, ArenaListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ArenaListInput) (*mcp.CallToolResult, ArenaListResult, error) {
		records, err := store.ListArenas(ctx)
		if err != nil {
			return nil, ArenaListResult{}, fmt.Errorf("arena list failed: %w", err)
		}

		result := ArenaListResult{Arenas: make([]ArenaRow, 0, len(records)), Count: len(records)}
		for _, record := range records {
			result.Arenas = append(result.Arenas, ArenaRow{
				ID:       record.ID,
				Name:     record.Name,
				City:     record.City,
				Capacity: record.Capacity,
			})
		}
		return nil, result, nil
	}
}

// EventCreateHandler schedules an event at an arena.
func EventCreateHandler(store storage.EventStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[EventCreateInput, EventCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventCreateInput) (*mcp.CallToolResult, EventCreateResult, error) {
		if input.ArenaID <= 0 {
			return nil, EventCreateResult{}, fmt.Errorf("arena_id is required")
		}
		date, err := time.ParseInLocation(dateLayout, input.Date, time.UTC)
		if err != nil {
			return nil, EventCreateResult{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}

		id, err := store.CreateEvent(ctx, storage.Event{
			ArenaID:   input.ArenaID,
			Date:      date,
			EventType: input.EventType,
		})
		if err != nil {
			return nil, EventCreateResult{}, fmt.Errorf("event create failed: %w", err)
		}
		record, err := store.GetEvent(ctx, id)
		if err != nil {
			return nil, EventCreateResult{}, fmt.Errorf("load created event: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:   "event_created",
			Entity:   "event",
			EntityID: id,
			EventID:  id,
			Detail:   fmt.Sprintf("%s on %s", record.EventType, record.Date.Format(dateLayout)),
		})
		return nil, EventCreateResult{
			ID:        record.ID,
			ArenaID:   record.ArenaID,
			Date:      record.Date.Format(dateLayout),
			EventType: record.EventType,
		}, nil
	}
}

// EventDeleteHandler removes an event and its recorded details. Unknown
// events report deleted=false; repeating the call is harmless.
func EventDeleteHandler(store storage.EventStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[EventDeleteInput, EventDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventDeleteInput) (*mcp.CallToolResult, EventDeleteResult, error) {
		if input.EventID <= 0 {
			return nil, EventDeleteResult{}, fmt.Errorf("event_id is required")
		}

		record, err := store.GetEvent(ctx, input.EventID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, EventDeleteResult{EventID: input.EventID}, nil
		}
		if err != nil {
			return nil, EventDeleteResult{}, fmt.Errorf("load event: %w", err)
		}
		if err := store.DeleteEvent(ctx, input.EventID); err != nil {
			return nil, EventDeleteResult{}, fmt.Errorf("event delete failed: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:   "event_deleted",
			Entity:   "event",
			EntityID: input.EventID,
			EventID:  input.EventID,
			Detail:   fmt.Sprintf("%s on %s", record.EventType, record.Date.Format(dateLayout)),
		})
		return nil, EventDeleteResult{EventID: input.EventID, Deleted: true}, nil
	}
}

// EventDetailsHandler reads one event joined with its arena.
func EventDetailsHandler(store storage.ViewStore) mcp.ToolHandlerFor[EventDetailsInput, EventDetailsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventDetailsInput) (*mcp.CallToolResult, EventDetailsResult, error) {
		if input.EventID <= 0 {
			return nil, EventDetailsResult{}, fmt.Errorf("event_id is required")
		}

		details, err := store.GetEventDetails(ctx, input.EventID)
		if err != nil {
			return nil, EventDetailsResult{}, fmt.Errorf("event details failed: %w", err)
		}
		return nil, EventDetailsResult{
			EventID:   details.EventID,
			Date:      details.Date.Format(dateLayout),
			EventType: details.EventType,
			Arena:     details.ArenaName,
			City:      details.City,
		}, nil
	}
}

// ParticipantUpsertHandler records a participant contingent, replacing any
// existing rows of the same type for the event.
func ParticipantUpsertHandler(store storage.ParticipantStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[ParticipantUpsertInput, ParticipantUpsertResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantUpsertInput) (*mcp.CallToolResult, ParticipantUpsertResult, error) {
		if input.EventID <= 0 {
			return nil, ParticipantUpsertResult{}, fmt.Errorf("event_id is required")
		}
		participantType, err := arena.ParticipantTypeFromLabel(input.Type)
		if err != nil {
			return nil, ParticipantUpsertResult{}, err
		}
		strength, err := arena.StrengthLevelFromLabel(input.Strength)
		if err != nil {
			return nil, ParticipantUpsertResult{}, err
		}

		params := storage.UpsertParticipantParams{
			EventID:       input.EventID,
			Type:          participantType,
			Count:         input.Count,
			StrengthLevel: strength,
			Cost:          input.Cost,
			Age:           input.Age,
			BattlesCount:  input.Battles,
		}
		if err := store.UpsertParticipant(ctx, params); err != nil {
			return nil, ParticipantUpsertResult{}, fmt.Errorf("participant upsert failed: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:  "participant_upserted",
			Entity:  "participant",
			EventID: input.EventID,
			Detail:  fmt.Sprintf("%s x%d (%s)", participantType, input.Count, strength),
		})
		return nil, ParticipantUpsertResult{
			EventID:  input.EventID,
			Type:     string(participantType),
			Count:    input.Count,
			Strength: string(strength),
			Cost:     input.Cost,
			Age:      input.Age,
			Battles:  input.Battles,
		}, nil
	}
}

// ParticipantListHandler lists the participant contingents of an event.
func ParticipantListHandler(store storage.ParticipantStore) mcp.ToolHandlerFor[ParticipantListInput, ParticipantListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantListInput) (*mcp.CallToolResult, ParticipantListResult, error) {
		if input.EventID <= 0 {
			return nil, ParticipantListResult{}, fmt.Errorf("event_id is required")
		}

		records, err := store.ListParticipantsByEvent(ctx, input.EventID)
		if err != nil {
			return nil, ParticipantListResult{}, fmt.Errorf("participant list failed: %w", err)
		}

		result := ParticipantListResult{
			EventID:      input.EventID,
			Participants: make([]ParticipantRow, 0, len(records)),
			Count:        len(records),
		}
		for _, record := range records {
			result.Participants = append(result.Participants, ParticipantRow{
				ID:       record.ID,
				Type:     string(record.Type),
				Count:    record.Count,
				Strength: string(record.StrengthLevel),
				Cost:     record.Cost,
				Age:      record.Age,
				Battles:  record.BattlesCount,
			})
		}
		return nil, result, nil
	}
}

// BeastAddHandler adds a group of beasts to an event.
func BeastAddHandler(store storage.BeastStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[BeastAddInput, BeastAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BeastAddInput) (*mcp.CallToolResult, BeastAddResult, error) {
		if input.EventID <= 0 {
			return nil, BeastAddResult{}, fmt.Errorf("event_id is required")
		}
		species, err := arena.SpeciesFromLabel(input.Species)
		if err != nil {
			return nil, BeastAddResult{}, err
		}

		id, err := store.CreateBeast(ctx, storage.Beast{
			EventID:            input.EventID,
			Species:            species,
			Count:              input.Count,
			Strength:           input.Strength,
			Speed:              input.Speed,
			EntertainmentValue: input.Entertainment,
		})
		if err != nil {
			return nil, BeastAddResult{}, fmt.Errorf("beast add failed: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:   "beast_created",
			Entity:   "beast",
			EntityID: id,
			EventID:  input.EventID,
			Detail:   fmt.Sprintf("%s x%d", species, input.Count),
		})
		return nil, BeastAddResult{
			ID:            id,
			EventID:       input.EventID,
			Species:       string(species),
			Count:         input.Count,
			Strength:      input.Strength,
			Speed:         input.Speed,
			Entertainment: input.Entertainment,
		}, nil
	}
}

// BeastListHandler lists the beast groups of an event.
func BeastListHandler(store storage.BeastStore) mcp.ToolHandlerFor[BeastListInput, BeastListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BeastListInput) (*mcp.CallToolResult, BeastListResult, error) {
		if input.EventID <= 0 {
			return nil, BeastListResult{}, fmt.Errorf("event_id is required")
		}

		records, err := store.ListBeastsByEvent(ctx, input.EventID)
		if err != nil {
			return nil, BeastListResult{}, fmt.Errorf("beast list failed: %w", err)
		}

		result := BeastListResult{
			EventID: input.EventID,
			Beasts:  make([]BeastRow, 0, len(records)),
			Count:   len(records),
		}
		for _, record := range records {
			result.Beasts = append(result.Beasts, BeastRow{
				ID:            record.ID,
				Species:       string(record.Species),
				Count:         record.Count,
				Strength:      record.Strength,
				Speed:         record.Speed,
				Entertainment: record.EntertainmentValue,
			})
		}
		return nil, result, nil
	}
}

// BattleResultRecordHandler records survivors for a labeled group. The
// label is free text: results may name species or groups without
// participant rows, and those skip the survivor cap.
func BattleResultRecordHandler(store storage.BattleResultStore, emitter *telemetry.Emitter) mcp.ToolHandlerFor[BattleResultRecordInput, BattleResultRecordResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattleResultRecordInput) (*mcp.CallToolResult, BattleResultRecordResult, error) {
		if input.EventID <= 0 {
			return nil, BattleResultRecordResult{}, fmt.Errorf("event_id is required")
		}

		id, err := store.CreateBattleResult(ctx, storage.BattleResult{
			EventID:         input.EventID,
			ParticipantType: input.Label,
			Survived:        input.Survived,
		})
		if err != nil {
			return nil, BattleResultRecordResult{}, fmt.Errorf("battle result record failed: %w", err)
		}

		emitAudit(ctx, emitter, storage.AuditEvent{
			Action:   "battle_result_recorded",
			Entity:   "battle_result",
			EntityID: id,
			EventID:  input.EventID,
			Detail:   fmt.Sprintf("%s survived %d", arena.NormalizeLabel(input.Label), input.Survived),
		})
		return nil, BattleResultRecordResult{
			ID:       id,
			EventID:  input.EventID,
			Label:    arena.NormalizeLabel(input.Label),
			Survived: input.Survived,
		}, nil
	}
}

// SummaryParticipantsHandler sums participant counts per event and type.
func SummaryParticipantsHandler(store storage.ViewStore) mcp.ToolHandlerFor[SummaryParticipantsInput, SummaryParticipantsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SummaryParticipantsInput) (*mcp.CallToolResult, SummaryParticipantsResult, error) {
		var (
			records []storage.ParticipantsSummary
			err     error
		)
		if input.EventID > 0 {
			records, err = store.ListParticipantsSummaryByEvent(ctx, input.EventID)
		} else {
			records, err = store.ListParticipantsSummary(ctx)
		}
		if err != nil {
			return nil, SummaryParticipantsResult{}, fmt.Errorf("participants summary failed: %w", err)
		}

		result := SummaryParticipantsResult{
			Rows:  make([]ParticipantsSummaryRow, 0, len(records)),
			Count: len(records),
		}
		for _, record := range records {
			result.Rows = append(result.Rows, ParticipantsSummaryRow{
				EventID:    record.EventID,
				Type:       string(record.Type),
				TotalCount: record.TotalCount,
			})
		}
		return nil, result, nil
	}
}

// SummaryBeastsHandler sums beast counts per event and species.
func SummaryBeastsHandler(store storage.ViewStore) mcp.ToolHandlerFor[SummaryBeastsInput, SummaryBeastsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SummaryBeastsInput) (*mcp.CallToolResult, SummaryBeastsResult, error) {
		var (
			records []storage.BeastSummary
			err     error
		)
		if input.EventID > 0 {
			records, err = store.ListBeastSummaryByEvent(ctx, input.EventID)
		} else {
			records, err = store.ListBeastSummary(ctx)
		}
		if err != nil {
			return nil, SummaryBeastsResult{}, fmt.Errorf("beast summary failed: %w", err)
		}

		result := SummaryBeastsResult{
			Rows:  make([]BeastSummaryRow, 0, len(records)),
			Count: len(records),
		}
		for _, record := range records {
			result.Rows = append(result.Rows, BeastSummaryRow{
				EventID:    record.EventID,
				Species:    string(record.Species),
				TotalCount: record.TotalCount,
			})
		}
		return nil, result, nil
	}
}

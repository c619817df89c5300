package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

// GetEventDetails loads one row of the event_details view.
func (s *Store) GetEventDetails(ctx context.Context, eventID int64) (storage.EventDetails, error) {
	if s == nil || s.sqlDB == nil {
		return storage.EventDetails{}, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return storage.EventDetails{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT event_id, date, event_type, arena_name, city FROM event_details WHERE event_id = ?", eventID)
	record, err := scanEventDetails(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.EventDetails{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.EventDetails{}, fmt.Errorf("get event details: %w", err)
	}
	return record, nil
}

// ListEventDetails returns the event_details view ordered by event id.
func (s *Store) ListEventDetails(ctx context.Context) ([]storage.EventDetails, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT event_id, date, event_type, arena_name, city FROM event_details ORDER BY event_id")
	if err != nil {
		return nil, fmt.Errorf("list event details: %w", err)
	}
	defer rows.Close()

	var records []storage.EventDetails
	for rows.Next() {
		record, err := scanEventDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event details: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event details: %w", err)
	}
	return records, nil
}

// ListParticipantsSummary returns the participants_summary view ordered
// by event id, then type.
func (s *Store) ListParticipantsSummary(ctx context.Context) ([]storage.ParticipantsSummary, error) {
	return s.listParticipantsSummary(ctx, "SELECT event_id, type, total_count FROM participants_summary ORDER BY event_id, type")
}

// ListParticipantsSummaryByEvent returns one event's participant summary
// rows ordered by type.
func (s *Store) ListParticipantsSummaryByEvent(ctx context.Context, eventID int64) ([]storage.ParticipantsSummary, error) {
	return s.listParticipantsSummary(ctx,
		"SELECT event_id, type, total_count FROM participants_summary WHERE event_id = ? ORDER BY type", eventID)
}

func (s *Store) listParticipantsSummary(ctx context.Context, query string, args ...any) ([]storage.ParticipantsSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list participants summary: %w", err)
	}
	defer rows.Close()

	var records []storage.ParticipantsSummary
	for rows.Next() {
		var record storage.ParticipantsSummary
		var participantType string
		if err := rows.Scan(&record.EventID, &participantType, &record.TotalCount); err != nil {
			return nil, fmt.Errorf("scan participants summary: %w", err)
		}
		record.Type = arena.ParticipantType(participantType)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants summary: %w", err)
	}
	return records, nil
}

// ListBeastSummary returns the beast_summary view ordered by event id,
// then species.
func (s *Store) ListBeastSummary(ctx context.Context) ([]storage.BeastSummary, error) {
	return s.listBeastSummary(ctx, "SELECT event_id, species, total_count FROM beast_summary ORDER BY event_id, species")
}

// ListBeastSummaryByEvent returns one event's beast summary rows ordered
// by species.
func (s *Store) ListBeastSummaryByEvent(ctx context.Context, eventID int64) ([]storage.BeastSummary, error) {
	return s.listBeastSummary(ctx,
		"SELECT event_id, species, total_count FROM beast_summary WHERE event_id = ? ORDER BY species", eventID)
}

func (s *Store) listBeastSummary(ctx context.Context, query string, args ...any) ([]storage.BeastSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beast summary: %w", err)
	}
	defer rows.Close()

	var records []storage.BeastSummary
	for rows.Next() {
		var record storage.BeastSummary
		var species string
		if err := rows.Scan(&record.EventID, &species, &record.TotalCount); err != nil {
			return nil, fmt.Errorf("scan beast summary: %w", err)
		}
		record.Species = arena.Species(species)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate beast summary: %w", err)
	}
	return records, nil
}

func scanEventDetails(sc scanner) (storage.EventDetails, error) {
	var record storage.EventDetails
	var date string
	if err := sc.Scan(&record.EventID, &date, &record.EventType, &record.ArenaName, &record.City); err != nil {
		return storage.EventDetails{}, err
	}
	parsed, err := textToDate(date)
	if err != nil {
		return storage.EventDetails{}, err
	}
	record.Date = parsed
	return record, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

const eventColumns = "id, arena_id, date, event_type, created_at, updated_at"

// CreateEvent inserts an event and returns its id. A missing arena
// surfaces as storage.ErrInvalidReference from the foreign key.
func (s *Store) CreateEvent(ctx context.Context, record storage.Event) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	eventType := arena.NormalizeLabel(record.EventType)
	if eventType == "" {
		return 0, fmt.Errorf("event type is required")
	}
	if record.Date.IsZero() {
		return 0, fmt.Errorf("event date is required")
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO events (arena_id, date, event_type, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		record.ArenaID, dateToText(record.Date), eventType, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", classifyConstraintError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read event id: %w", err)
	}
	return id, nil
}

// GetEvent loads one event by id.
func (s *Store) GetEvent(ctx context.Context, id int64) (storage.Event, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Event{}, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return storage.Event{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	record, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Event{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Event{}, fmt.Errorf("get event: %w", err)
	}
	return record, nil
}

// ListEventsByArena returns an arena's events ordered by date, then id.
func (s *Store) ListEventsByArena(ctx context.Context, arenaID int64) ([]storage.Event, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE arena_id = ? ORDER BY date, id", arenaID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var records []storage.Event
	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return records, nil
}

// DeleteEvent removes an event; cascades take its participants, beasts,
// and battle results with it. Deleting a missing id is a silent no-op.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete event: %w", classifyConstraintError(err))
	}
	return nil
}

func scanEvent(sc scanner) (storage.Event, error) {
	var record storage.Event
	var date string
	var createdAt, updatedAt int64
	if err := sc.Scan(&record.ID, &record.ArenaID, &date, &record.EventType, &createdAt, &updatedAt); err != nil {
		return storage.Event{}, err
	}
	parsed, err := textToDate(date)
	if err != nil {
		return storage.Event{}, err
	}
	record.Date = parsed
	record.CreatedAt = unixMillisToTime(createdAt)
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, nil
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

const beastColumns = "id, event_id, species, count, strength, speed, entertainment_value, created_at, updated_at"

// CreateBeast inserts a beast group as-is. Species membership and value
// bounds are enforced by the schema.
func (s *Store) CreateBeast(ctx context.Context, record storage.Beast) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO beasts (event_id, species, count, strength, speed, entertainment_value, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.EventID,
		string(record.Species),
		record.Count,
		record.Strength,
		record.Speed,
		record.EntertainmentValue,
		now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert beast: %w", classifyConstraintError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read beast id: %w", err)
	}
	return id, nil
}

// ListBeastsByEvent returns an event's beast groups ordered by species,
// then id.
func (s *Store) ListBeastsByEvent(ctx context.Context, eventID int64) ([]storage.Beast, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+beastColumns+" FROM beasts WHERE event_id = ? ORDER BY species, id", eventID)
	if err != nil {
		return nil, fmt.Errorf("list beasts: %w", err)
	}
	defer rows.Close()

	var records []storage.Beast
	for rows.Next() {
		record, err := scanBeast(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beast: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate beasts: %w", err)
	}
	return records, nil
}

func scanBeast(sc scanner) (storage.Beast, error) {
	var record storage.Beast
	var species string
	var createdAt, updatedAt int64
	if err := sc.Scan(
		&record.ID,
		&record.EventID,
		&species,
		&record.Count,
		&record.Strength,
		&record.Speed,
		&record.EntertainmentValue,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Beast{}, err
	}
	record.Species = arena.Species(species)
	record.CreatedAt = unixMillisToTime(createdAt)
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, nil
}

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

const arenaColumns = "id, name, city, capacity, created_at, updated_at"

// CreateArena inserts an arena and returns its id. Capacity bounds are
// enforced by the schema, not here.
func (s *Store) CreateArena(ctx context.Context, record storage.Arena) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	name := arena.NormalizeLabel(record.Name)
	if name == "" {
		return 0, fmt.Errorf("arena name is required")
	}
	city := arena.NormalizeLabel(record.City)
	if city == "" {
		return 0, fmt.Errorf("arena city is required")
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO arenas (name, city, capacity, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		name, city, record.Capacity, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert arena: %w", classifyConstraintError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read arena id: %w", err)
	}
	return id, nil
}

// GetArena loads one arena by id.
func (s *Store) GetArena(ctx context.Context, id int64) (storage.Arena, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Arena{}, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return storage.Arena{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+arenaColumns+" FROM arenas WHERE id = ?", id)
	record, err := scanArena(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Arena{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Arena{}, fmt.Errorf("get arena: %w", err)
	}
	return record, nil
}

// ListArenas returns every arena ordered by name.
func (s *Store) ListArenas(ctx context.Context) ([]storage.Arena, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, "SELECT "+arenaColumns+" FROM arenas ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("list arenas: %w", err)
	}
	defer rows.Close()

	var records []storage.Arena
	for rows.Next() {
		record, err := scanArena(rows)
		if err != nil {
			return nil, fmt.Errorf("scan arena: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate arenas: %w", err)
	}
	return records, nil
}

// DeleteArena removes an arena; cascades take its events and their
// children with it. Missing ids return storage.ErrNotFound.
func (s *Store) DeleteArena(ctx context.Context, id int64) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM arenas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete arena: %w", classifyConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("count deleted arenas: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanArena(sc scanner) (storage.Arena, error) {
	var record storage.Arena
	var createdAt, updatedAt int64
	if err := sc.Scan(&record.ID, &record.Name, &record.City, &record.Capacity, &createdAt, &updatedAt); err != nil {
		return storage.Arena{}, err
	}
	record.CreatedAt = unixMillisToTime(createdAt)
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, nil
}

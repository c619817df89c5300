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

const participantColumns = "id, event_id, type, count, strength_level, cost, age, battles_count, created_at, updated_at"

// CreateParticipant inserts a participant row as-is. Enum membership and
// value bounds are enforced by the schema; duplicate (event, type) pairs
// are legal and add up in summaries.
func (s *Store) CreateParticipant(ctx context.Context, record storage.Participant) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO participants (event_id, type, count, strength_level, cost, age, battles_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.EventID,
		string(record.Type),
		record.Count,
		string(record.StrengthLevel),
		record.Cost,
		record.Age,
		record.BattlesCount,
		now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert participant: %w", classifyConstraintError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read participant id: %w", err)
	}
	return id, nil
}

// UpsertParticipant overwrites every row matching (event, type) with the
// given values, or inserts one row when none match. The search and the
// write share one transaction; last write wins. A missing event fails the
// insert's foreign key with storage.ErrInvalidReference.
func (s *Store) UpsertParticipant(ctx context.Context, params storage.UpsertParticipantParams) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert participant: %w", err)
	}
	rollbackWith := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback upsert participant: %v", cause, rollbackErr)
		}
		return cause
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := tx.ExecContext(ctx, `
UPDATE participants
SET count = ?, strength_level = ?, cost = ?, age = ?, battles_count = ?, updated_at = ?
WHERE event_id = ? AND type = ?`,
		params.Count,
		string(params.StrengthLevel),
		params.Cost,
		params.Age,
		params.BattlesCount,
		now,
		params.EventID,
		string(params.Type),
	)
	if err != nil {
		return rollbackWith(fmt.Errorf("update participant: %w", classifyConstraintError(err)))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return rollbackWith(fmt.Errorf("count updated participants: %w", err))
	}

	if affected == 0 {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO participants (event_id, type, count, strength_level, cost, age, battles_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			params.EventID,
			string(params.Type),
			params.Count,
			string(params.StrengthLevel),
			params.Cost,
			params.Age,
			params.BattlesCount,
			now, now,
		); err != nil {
			return rollbackWith(fmt.Errorf("insert participant: %w", classifyConstraintError(err)))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert participant: %w", err)
	}
	return nil
}

// ListParticipantsByEvent returns an event's participant rows ordered by
// type, then id.
func (s *Store) ListParticipantsByEvent(ctx context.Context, eventID int64) ([]storage.Participant, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE event_id = ? ORDER BY type, id", eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var records []storage.Participant
	for rows.Next() {
		record, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return records, nil
}

func scanParticipant(sc scanner) (storage.Participant, error) {
	var record storage.Participant
	var participantType, strengthLevel string
	var createdAt, updatedAt int64
	if err := sc.Scan(
		&record.ID,
		&record.EventID,
		&participantType,
		&record.Count,
		&strengthLevel,
		&record.Cost,
		&record.Age,
		&record.BattlesCount,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Participant{}, err
	}
	record.Type = arena.ParticipantType(participantType)
	record.StrengthLevel = arena.StrengthLevel(strengthLevel)
	record.CreatedAt = unixMillisToTime(createdAt)
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, nil
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
)

const battleResultColumns = "id, event_id, participant_type, survived, created_at"

// CreateBattleResult inserts a battle result. The survivor-cap trigger
// rejects survivors above the matching participant count with
// storage.ErrValidation; labels with no matching participants pass
// unchecked.
func (s *Store) CreateBattleResult(ctx context.Context, record storage.BattleResult) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	label := arena.NormalizeLabel(record.ParticipantType)
	if label == "" {
		return 0, fmt.Errorf("participant type label is required")
	}

	now := timeToUnixMillis(time.Now().UTC())
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO battle_results (event_id, participant_type, survived, created_at)
VALUES (?, ?, ?, ?)`,
		record.EventID, label, record.Survived, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert battle result: %w", classifyConstraintError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read battle result id: %w", err)
	}
	return id, nil
}

// ListBattleResultsByEvent returns an event's battle results ordered by
// label, then id.
func (s *Store) ListBattleResultsByEvent(ctx context.Context, eventID int64) ([]storage.BattleResult, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+battleResultColumns+" FROM battle_results WHERE event_id = ? ORDER BY participant_type, id", eventID)
	if err != nil {
		return nil, fmt.Errorf("list battle results: %w", err)
	}
	defer rows.Close()

	var records []storage.BattleResult
	for rows.Next() {
		record, err := scanBattleResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan battle result: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate battle results: %w", err)
	}
	return records, nil
}

func scanBattleResult(sc scanner) (storage.BattleResult, error) {
	var record storage.BattleResult
	var createdAt int64
	if err := sc.Scan(
		&record.ID,
		&record.EventID,
		&record.ParticipantType,
		&record.Survived,
		&createdAt,
	); err != nil {
		return storage.BattleResult{}, err
	}
	record.CreatedAt = unixMillisToTime(createdAt)
	return record, nil
}

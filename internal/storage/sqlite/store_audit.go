package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/ludus/internal/storage"
)

// AppendAuditEvent writes one audit row. Severity defaults to info and
// the timestamp to now; zero ids and blank strings store as NULL.
func (s *Store) AppendAuditEvent(ctx context.Context, record storage.AuditEvent) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if strings.TrimSpace(record.Action) == "" {
		return 0, fmt.Errorf("audit action is required")
	}
	if strings.TrimSpace(record.Entity) == "" {
		return 0, fmt.Errorf("audit entity is required")
	}
	severity := strings.TrimSpace(record.Severity)
	if severity == "" {
		severity = "info"
	}
	occurredAt := record.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO audit_events (occurred_at, severity, action, entity, entity_id, event_id, detail, trace_id, span_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		timeToUnixMillis(occurredAt),
		severity,
		record.Action,
		record.Entity,
		toNullInt64(record.EntityID),
		toNullInt64(record.EventID),
		toNullString(record.Detail),
		toNullString(record.TraceID),
		toNullString(record.SpanID),
	)
	if err != nil {
		return 0, fmt.Errorf("insert audit event: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read audit event id: %w", err)
	}
	return id, nil
}

// ListAuditEvents returns the newest audit rows, newest first. A limit
// of zero or less falls back to 50.
func (s *Store) ListAuditEvents(ctx context.Context, limit int) ([]storage.AuditEvent, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, occurred_at, severity, action, entity, entity_id, event_id, detail, trace_id, span_id
FROM audit_events
ORDER BY occurred_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var records []storage.AuditEvent
	for rows.Next() {
		var record storage.AuditEvent
		var occurredAt int64
		var entityID, eventID sql.NullInt64
		var detail, traceID, spanID sql.NullString
		if err := rows.Scan(
			&record.ID,
			&occurredAt,
			&record.Severity,
			&record.Action,
			&record.Entity,
			&entityID,
			&eventID,
			&detail,
			&traceID,
			&spanID,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		record.OccurredAt = unixMillisToTime(occurredAt)
		record.EntityID = entityID.Int64
		record.EventID = eventID.Int64
		record.Detail = detail.String
		record.TraceID = traceID.String
		record.SpanID = spanID.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return records, nil
}

// GetStatistics counts rows per table and events per arena.
func (s *Store) GetStatistics(ctx context.Context) (storage.Statistics, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Statistics{}, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return storage.Statistics{}, err
	}

	var stats storage.Statistics
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT
    (SELECT COUNT(*) FROM arenas),
    (SELECT COUNT(*) FROM events),
    (SELECT COUNT(*) FROM participants),
    (SELECT COUNT(*) FROM beasts),
    (SELECT COUNT(*) FROM battle_results),
    (SELECT COUNT(*) FROM audit_events)`)
	if err := row.Scan(
		&stats.ArenaCount,
		&stats.EventCount,
		&stats.ParticipantCount,
		&stats.BeastCount,
		&stats.BattleResultCount,
		&stats.AuditEventCount,
	); err != nil {
		return storage.Statistics{}, fmt.Errorf("count rows: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT a.id, a.name, a.city, COUNT(e.id)
FROM arenas a
LEFT JOIN events e ON e.arena_id = a.id
GROUP BY a.id, a.name, a.city
ORDER BY a.id`)
	if err != nil {
		return storage.Statistics{}, fmt.Errorf("count events by arena: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var count storage.ArenaEventCount
		if err := rows.Scan(&count.ArenaID, &count.ArenaName, &count.City, &count.EventCount); err != nil {
			return storage.Statistics{}, fmt.Errorf("scan arena event count: %w", err)
		}
		stats.EventsByArena = append(stats.EventsByArena, count)
	}
	if err := rows.Err(); err != nil {
		return storage.Statistics{}, fmt.Errorf("iterate arena event counts: %w", err)
	}
	return stats, nil
}

// CheckIntegrity audits the database for conditions the live constraints
// cannot see anymore: dangling foreign keys, battle results stranded
// above the current participant count, and negative quantities.
func (s *Store) CheckIntegrity(ctx context.Context) (storage.IntegrityReport, error) {
	if s == nil || s.sqlDB == nil {
		return storage.IntegrityReport{}, fmt.Errorf("storage is not configured")
	}
	if err := ctx.Err(); err != nil {
		return storage.IntegrityReport{}, err
	}

	var report storage.IntegrityReport

	fkFindings, err := s.checkForeignKeys(ctx)
	if err != nil {
		return storage.IntegrityReport{}, err
	}
	report.Findings = append(report.Findings, fkFindings...)

	overageFindings, err := s.checkSurvivorOverages(ctx)
	if err != nil {
		return storage.IntegrityReport{}, err
	}
	report.Findings = append(report.Findings, overageFindings...)

	negativeFindings, err := s.checkNegativeValues(ctx)
	if err != nil {
		return storage.IntegrityReport{}, err
	}
	report.Findings = append(report.Findings, negativeFindings...)

	return report, nil
}

func (s *Store) checkForeignKeys(ctx context.Context) ([]storage.IntegrityFinding, error) {
	rows, err := s.sqlDB.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return nil, fmt.Errorf("check foreign keys: %w", err)
	}
	defer rows.Close()

	var findings []storage.IntegrityFinding
	for rows.Next() {
		var table, parent string
		var rowID sql.NullInt64
		var fkIndex int64
		if err := rows.Scan(&table, &rowID, &parent, &fkIndex); err != nil {
			return nil, fmt.Errorf("scan foreign key finding: %w", err)
		}
		findings = append(findings, storage.IntegrityFinding{
			Kind:   storage.FindingForeignKey,
			Table:  table,
			RowID:  rowID.Int64,
			Detail: fmt.Sprintf("row references missing %s", parent),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foreign key findings: %w", err)
	}
	return findings, nil
}

func (s *Store) checkSurvivorOverages(ctx context.Context) ([]storage.IntegrityFinding, error) {
	// Unresolvable labels are not findings: the survivor cap only ever
	// bound results with matching participant rows.
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT br.id, br.participant_type, br.survived, grouped.total_count
FROM battle_results br
JOIN (
    SELECT event_id, type, SUM(count) AS total_count
    FROM participants
    GROUP BY event_id, type
) grouped ON grouped.event_id = br.event_id AND grouped.type = br.participant_type
WHERE br.survived > grouped.total_count
ORDER BY br.id`)
	if err != nil {
		return nil, fmt.Errorf("check survivor overages: %w", err)
	}
	defer rows.Close()

	var findings []storage.IntegrityFinding
	for rows.Next() {
		var id, survived, totalCount int64
		var label string
		if err := rows.Scan(&id, &label, &survived, &totalCount); err != nil {
			return nil, fmt.Errorf("scan survivor overage: %w", err)
		}
		findings = append(findings, storage.IntegrityFinding{
			Kind:   storage.FindingSurvivorOverage,
			Table:  "battle_results",
			RowID:  id,
			Detail: fmt.Sprintf("%s survivors %d exceed participant count %d", label, survived, totalCount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate survivor overages: %w", err)
	}
	return findings, nil
}

func (s *Store) checkNegativeValues(ctx context.Context) ([]storage.IntegrityFinding, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT 'participants', id, count FROM participants WHERE count < 0
UNION ALL
SELECT 'beasts', id, count FROM beasts WHERE count < 0
UNION ALL
SELECT 'battle_results', id, survived FROM battle_results WHERE survived < 0
ORDER BY 1, 2`)
	if err != nil {
		return nil, fmt.Errorf("check negative values: %w", err)
	}
	defer rows.Close()

	var findings []storage.IntegrityFinding
	for rows.Next() {
		var table string
		var id, value int64
		if err := rows.Scan(&table, &id, &value); err != nil {
			return nil, fmt.Errorf("scan negative value: %w", err)
		}
		findings = append(findings, storage.IntegrityFinding{
			Kind:   storage.FindingNegativeValue,
			Table:  table,
			RowID:  id,
			Detail: fmt.Sprintf("negative value %d", value),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate negative values: %w", err)
	}
	return findings, nil
}

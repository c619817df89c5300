// Package storage defines the persistence contract for arena history:
// record structs, summary view rows, store interfaces, and the sentinel
// errors implementations translate database failures into.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint indicates a declarative schema rejection, such as a
	// CHECK or NOT NULL violation.
	ErrConstraint = errors.New("constraint violated")
	// ErrInvalidReference indicates a foreign key rejection: the
	// referenced arena or event does not exist.
	ErrInvalidReference = errors.New("referenced record missing")
	// ErrValidation indicates a trigger-raised rejection. The wrapped
	// message carries the trigger's reason.
	ErrValidation = errors.New("validation rejected")
)

// Arena is a venue hosting events.
type Arena struct {
	ID        int64
	Name      string
	City      string
	Capacity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is one spectacle hosted at an arena on a given day.
type Event struct {
	ID      int64
	ArenaID int64
	// Date has day precision and is normalized to UTC midnight.
	Date      time.Time
	EventType string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Participant is a contingent of fighters of one type at one event, not
// an individual. Several rows may describe the same (event, type) pair;
// summaries add them up.
type Participant struct {
	ID            int64
	EventID       int64
	Type          arena.ParticipantType
	Count         int64
	StrengthLevel arena.StrengthLevel
	Cost          float64
	Age           int64
	BattlesCount  int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Beast is a group of animals of one species exhibited at one event.
type Beast struct {
	ID                 int64
	EventID            int64
	Species            arena.Species
	Count              int64
	Strength           int64
	Speed              int64
	EntertainmentValue int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BattleResult records how many members of a labeled group survived an
// event. ParticipantType is free text and may name groups outside the
// participant vocabulary (beast species results are stored this way).
type BattleResult struct {
	ID              int64
	EventID         int64
	ParticipantType string
	Survived        int64
	CreatedAt       time.Time
}

// UpsertParticipantParams carries the arguments of UpsertParticipant.
type UpsertParticipantParams struct {
	EventID       int64
	Type          arena.ParticipantType
	Count         int64
	StrengthLevel arena.StrengthLevel
	Cost          float64
	Age           int64
	BattlesCount  int64
}

// EventDetails is a row of the event_details view.
type EventDetails struct {
	EventID   int64
	Date      time.Time
	EventType string
	ArenaName string
	City      string
}

// ParticipantsSummary is a row of the participants_summary view: the
// summed participant count for one (event, type) pair.
type ParticipantsSummary struct {
	EventID    int64
	Type       arena.ParticipantType
	TotalCount int64
}

// BeastSummary is a row of the beast_summary view: the summed beast
// count for one (event, species) pair.
type BeastSummary struct {
	EventID    int64
	Species    arena.Species
	TotalCount int64
}

// AuditEvent is an operational audit record. Audit rows carry no foreign
// keys so they survive the deletions they describe.
type AuditEvent struct {
	ID         int64
	OccurredAt time.Time
	Severity   string
	Action     string
	Entity     string
	// EntityID is the affected row id, zero when not applicable.
	EntityID int64
	// EventID scopes the audit row to an event, zero when not applicable.
	EventID int64
	Detail  string
	TraceID string
	SpanID  string
}

// ArenaEventCount pairs an arena with the number of events it hosted.
type ArenaEventCount struct {
	ArenaID    int64
	ArenaName  string
	City       string
	EventCount int64
}

// Statistics aggregates row counts for reporting.
type Statistics struct {
	ArenaCount        int64
	EventCount        int64
	ParticipantCount  int64
	BeastCount        int64
	BattleResultCount int64
	AuditEventCount   int64
	EventsByArena     []ArenaEventCount
}

// Integrity finding kinds reported by CheckIntegrity.
const (
	// FindingForeignKey marks a row whose foreign key no longer resolves.
	FindingForeignKey = "foreign_key"
	// FindingSurvivorOverage marks a battle result whose survivors exceed
	// the current participant count for its label.
	FindingSurvivorOverage = "survivor_overage"
	// FindingNegativeValue marks a row holding a negative quantity.
	FindingNegativeValue = "negative_value"
)

// IntegrityFinding describes one consistency violation.
type IntegrityFinding struct {
	Kind   string
	Table  string
	RowID  int64
	Detail string
}

// IntegrityReport collects the findings of a consistency audit.
type IntegrityReport struct {
	Findings []IntegrityFinding
}

// Clean reports whether the audit found nothing.
func (r IntegrityReport) Clean() bool {
	return len(r.Findings) == 0
}

// ArenaStore persists arenas.
type ArenaStore interface {
	CreateArena(ctx context.Context, record Arena) (int64, error)
	GetArena(ctx context.Context, id int64) (Arena, error)
	ListArenas(ctx context.Context) ([]Arena, error)
	// DeleteArena removes an arena and, through cascades, everything it
	// hosted. Missing ids return ErrNotFound.
	DeleteArena(ctx context.Context, id int64) error
}

// EventStore persists events.
type EventStore interface {
	CreateEvent(ctx context.Context, record Event) (int64, error)
	GetEvent(ctx context.Context, id int64) (Event, error)
	ListEventsByArena(ctx context.Context, arenaID int64) ([]Event, error)
	// DeleteEvent removes an event and its children. Deleting a missing
	// id is a silent no-op.
	DeleteEvent(ctx context.Context, id int64) error
}

// ParticipantStore persists participant contingents.
type ParticipantStore interface {
	CreateParticipant(ctx context.Context, record Participant) (int64, error)
	// UpsertParticipant overwrites every row matching (event, type) with
	// the given values, or inserts one row when none match. Last write
	// wins.
	UpsertParticipant(ctx context.Context, params UpsertParticipantParams) error
	ListParticipantsByEvent(ctx context.Context, eventID int64) ([]Participant, error)
}

// BeastStore persists beast groups.
type BeastStore interface {
	CreateBeast(ctx context.Context, record Beast) (int64, error)
	ListBeastsByEvent(ctx context.Context, eventID int64) ([]Beast, error)
}

// BattleResultStore persists battle results.
type BattleResultStore interface {
	CreateBattleResult(ctx context.Context, record BattleResult) (int64, error)
	ListBattleResultsByEvent(ctx context.Context, eventID int64) ([]BattleResult, error)
}

// ViewStore reads the summary views.
type ViewStore interface {
	GetEventDetails(ctx context.Context, eventID int64) (EventDetails, error)
	ListEventDetails(ctx context.Context) ([]EventDetails, error)
	ListParticipantsSummary(ctx context.Context) ([]ParticipantsSummary, error)
	ListParticipantsSummaryByEvent(ctx context.Context, eventID int64) ([]ParticipantsSummary, error)
	ListBeastSummary(ctx context.Context) ([]BeastSummary, error)
	ListBeastSummaryByEvent(ctx context.Context, eventID int64) ([]BeastSummary, error)
}

// AuditStore persists audit events and answers operational queries.
type AuditStore interface {
	AppendAuditEvent(ctx context.Context, record AuditEvent) (int64, error)
	ListAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error)
	GetStatistics(ctx context.Context) (Statistics, error)
	CheckIntegrity(ctx context.Context) (IntegrityReport, error)
}

// Store bundles every persistence concern of the module.
type Store interface {
	ArenaStore
	EventStore
	ParticipantStore
	BeastStore
	BattleResultStore
	ViewStore
	AuditStore
	Close() error
}

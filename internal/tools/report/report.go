// Package report renders ledger reports from an arena database: event
// details with summed contingents, table statistics, the audit trail and
// the integrity audit.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/message"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/arena/i18n"
	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/storage/sqlite"
)

// ErrFindings marks a completed integrity audit that found problems.
// Command mains map it to a non-zero exit code.
var ErrFindings = errors.New("integrity findings present")

// Config holds report command configuration.
type Config struct {
	DBPath     string `env:"LUDUS_DB_PATH"`
	Locale     string `env:"LUDUS_LOCALE" envDefault:"en"`
	EventID    int64
	Stats      bool
	Audit      bool
	AuditLimit int
	Integrity  bool
	JSONOutput bool
}

type envConfig struct {
	DBPath string `env:"LUDUS_DB_PATH"`
	Locale string `env:"LUDUS_LOCALE" envDefault:"en"`
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		DBPath:     envCfg.DBPath,
		Locale:     envCfg.Locale,
		AuditLimit: 50,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "ludus.db")
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to arena sqlite database (default: LUDUS_DB_PATH or data/ludus.db)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output locale (en|ru)")
	fs.Int64Var(&cfg.EventID, "event", 0, "report a single event id (0 = all events)")
	fs.BoolVar(&cfg.Stats, "stats", false, "print table counts and per-arena event counts")
	fs.BoolVar(&cfg.Audit, "audit", false, "print the audit trail")
	fs.IntVar(&cfg.AuditLimit, "audit-limit", cfg.AuditLimit, "max audit rows to print")
	fs.BoolVar(&cfg.Integrity, "integrity", false, "run the integrity audit")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the report command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	modes := 0
	for _, enabled := range []bool{cfg.Stats, cfg.Audit, cfg.Integrity} {
		if enabled {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("-stats, -audit and -integrity are mutually exclusive")
	}
	if cfg.EventID > 0 && modes > 0 {
		return errors.New("-event cannot be combined with -stats, -audit or -integrity")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			fmt.Fprintf(errOut, "Error: close store: %v\n", closeErr)
		}
	}()

	printer := i18n.Printer(cfg.Locale)

	switch {
	case cfg.Stats:
		return runStats(ctx, store, printer, cfg.JSONOutput, out)
	case cfg.Audit:
		return runAudit(ctx, store, cfg.AuditLimit, cfg.JSONOutput, out)
	case cfg.Integrity:
		return runIntegrity(ctx, store, printer, cfg.JSONOutput, out)
	default:
		return runDetails(ctx, store, printer, cfg.EventID, cfg.JSONOutput, out)
	}
}

type participantRow struct {
	Type       string `json:"type"`
	TotalCount int64  `json:"total_count"`
}

type beastRow struct {
	Species    string `json:"species"`
	TotalCount int64  `json:"total_count"`
}

type eventReport struct {
	EventID      int64            `json:"event_id"`
	Date         string           `json:"date"`
	EventType    string           `json:"event_type"`
	Arena        string           `json:"arena"`
	City         string           `json:"city"`
	Participants []participantRow `json:"participants"`
	Beasts       []beastRow       `json:"beasts"`
}

func runDetails(ctx context.Context, store *sqlite.Store, printer *message.Printer, eventID int64, jsonOutput bool, out io.Writer) error {
	var details []storage.EventDetails
	if eventID > 0 {
		single, err := store.GetEventDetails(ctx, eventID)
		if err != nil {
			return fmt.Errorf("load event %d: %w", eventID, err)
		}
		details = []storage.EventDetails{single}
	} else {
		all, err := store.ListEventDetails(ctx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		details = all
	}

	reports := make([]eventReport, 0, len(details))
	for _, event := range details {
		participants, err := store.ListParticipantsSummaryByEvent(ctx, event.EventID)
		if err != nil {
			return fmt.Errorf("load participants for event %d: %w", event.EventID, err)
		}
		beasts, err := store.ListBeastSummaryByEvent(ctx, event.EventID)
		if err != nil {
			return fmt.Errorf("load beasts for event %d: %w", event.EventID, err)
		}

		report := eventReport{
			EventID:   event.EventID,
			Date:      event.Date.Format("2006-01-02"),
			EventType: event.EventType,
			Arena:     event.ArenaName,
			City:      event.City,
		}
		for _, row := range participants {
			report.Participants = append(report.Participants, participantRow{
				Type:       string(row.Type),
				TotalCount: row.TotalCount,
			})
		}
		for _, row := range beasts {
			report.Beasts = append(report.Beasts, beastRow{
				Species:    string(row.Species),
				TotalCount: row.TotalCount,
			})
		}
		reports = append(reports, report)
	}

	if jsonOutput {
		return writeJSON(out, reports)
	}

	if len(reports) == 0 {
		printer.Fprintf(out, i18n.ReportNoEventsKey)
		fmt.Fprintln(out)
		return nil
	}
	for i, event := range details {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printer.Fprintf(out, i18n.ReportEventHeadingKey,
			event.EventID, event.EventType, event.ArenaName, event.City,
			event.Date.Format("2006-01-02"))
		fmt.Fprintln(out)

		report := reports[i]
		if len(report.Participants) > 0 {
			printer.Fprintf(out, i18n.ReportParticipantsHeadingKey)
			fmt.Fprintln(out, ":")
			for _, row := range report.Participants {
				name := i18n.ParticipantTypeName(printer, row.Type)
				fmt.Fprintf(out, "  %s: %d\n", name, row.TotalCount)
			}
		}
		if len(report.Beasts) > 0 {
			printer.Fprintf(out, i18n.ReportBeastsHeadingKey)
			fmt.Fprintln(out, ":")
			for _, row := range report.Beasts {
				name := i18n.SpeciesName(printer, arena.Species(row.Species))
				fmt.Fprintf(out, "  %s: %d\n", name, row.TotalCount)
			}
		}
	}
	return nil
}

type statsReport struct {
	Arenas        int64            `json:"arenas"`
	Events        int64            `json:"events"`
	Participants  int64            `json:"participants"`
	Beasts        int64            `json:"beasts"`
	BattleResults int64            `json:"battle_results"`
	AuditEvents   int64            `json:"audit_events"`
	EventsByArena []arenaCountsRow `json:"events_by_arena"`
}

type arenaCountsRow struct {
	ArenaID    int64  `json:"arena_id"`
	Arena      string `json:"arena"`
	City       string `json:"city"`
	EventCount int64  `json:"event_count"`
}

func runStats(ctx context.Context, store *sqlite.Store, printer *message.Printer, jsonOutput bool, out io.Writer) error {
	stats, err := store.GetStatistics(ctx)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	report := statsReport{
		Arenas:        stats.ArenaCount,
		Events:        stats.EventCount,
		Participants:  stats.ParticipantCount,
		Beasts:        stats.BeastCount,
		BattleResults: stats.BattleResultCount,
		AuditEvents:   stats.AuditEventCount,
	}
	for _, row := range stats.EventsByArena {
		report.EventsByArena = append(report.EventsByArena, arenaCountsRow{
			ArenaID:    row.ArenaID,
			Arena:      row.ArenaName,
			City:       row.City,
			EventCount: row.EventCount,
		})
	}

	if jsonOutput {
		return writeJSON(out, report)
	}

	printer.Fprintf(out, i18n.ReportStatsHeadingKey)
	fmt.Fprintln(out, ":")
	fmt.Fprintf(out, "  arenas: %d\n", report.Arenas)
	fmt.Fprintf(out, "  events: %d\n", report.Events)
	fmt.Fprintf(out, "  participants: %d\n", report.Participants)
	fmt.Fprintf(out, "  beasts: %d\n", report.Beasts)
	fmt.Fprintf(out, "  battle_results: %d\n", report.BattleResults)
	fmt.Fprintf(out, "  audit_events: %d\n", report.AuditEvents)

	printer.Fprintf(out, i18n.ReportArenaEventsHeadingKey)
	fmt.Fprintln(out, ":")
	for _, row := range report.EventsByArena {
		fmt.Fprintf(out, "  %s (%s): %d\n", row.Arena, row.City, row.EventCount)
	}
	return nil
}

type auditRow struct {
	OccurredAt string `json:"occurred_at"`
	Severity   string `json:"severity"`
	Action     string `json:"action"`
	Entity     string `json:"entity"`
	EntityID   int64  `json:"entity_id,omitempty"`
	EventID    int64  `json:"event_id,omitempty"`
	Detail     string `json:"detail,omitempty"`
	TraceID    string `json:"trace_id,omitempty"`
}

func runAudit(ctx context.Context, store *sqlite.Store, limit int, jsonOutput bool, out io.Writer) error {
	records, err := store.ListAuditEvents(ctx, limit)
	if err != nil {
		return fmt.Errorf("load audit trail: %w", err)
	}

	rows := make([]auditRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, auditRow{
			OccurredAt: record.OccurredAt.UTC().Format(time.RFC3339),
			Severity:   record.Severity,
			Action:     record.Action,
			Entity:     record.Entity,
			EntityID:   record.EntityID,
			EventID:    record.EventID,
			Detail:     record.Detail,
			TraceID:    record.TraceID,
		})
	}

	if jsonOutput {
		return writeJSON(out, rows)
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s [%s] %s %s", row.OccurredAt, row.Severity, row.Action, row.Entity)
		if row.EntityID > 0 {
			fmt.Fprintf(out, "#%d", row.EntityID)
		}
		if row.Detail != "" {
			fmt.Fprintf(out, " %s", row.Detail)
		}
		fmt.Fprintln(out)
	}
	return nil
}

type findingRow struct {
	Kind   string `json:"kind"`
	Table  string `json:"table"`
	RowID  int64  `json:"row_id"`
	Detail string `json:"detail,omitempty"`
}

type integrityJSON struct {
	Clean    bool         `json:"clean"`
	Findings []findingRow `json:"findings"`
}

func runIntegrity(ctx context.Context, store *sqlite.Store, printer *message.Printer, jsonOutput bool, out io.Writer) error {
	report, err := store.CheckIntegrity(ctx)
	if err != nil {
		return fmt.Errorf("check integrity: %w", err)
	}

	payload := integrityJSON{Clean: report.Clean()}
	for _, finding := range report.Findings {
		payload.Findings = append(payload.Findings, findingRow{
			Kind:   finding.Kind,
			Table:  finding.Table,
			RowID:  finding.RowID,
			Detail: finding.Detail,
		})
	}

	if jsonOutput {
		if err := writeJSON(out, payload); err != nil {
			return err
		}
	} else if report.Clean() {
		printer.Fprintf(out, i18n.ReportNoFindingsKey)
		fmt.Fprintln(out)
	} else {
		printer.Fprintf(out, i18n.ReportFindingsHeadingKey)
		fmt.Fprintln(out, ":")
		for _, finding := range report.Findings {
			fmt.Fprintf(out, "  %s %s#%d: %s\n", finding.Kind, finding.Table, finding.RowID, finding.Detail)
		}
	}

	if !report.Clean() {
		return fmt.Errorf("%w: %d finding(s)", ErrFindings, len(report.Findings))
	}
	return nil
}

func writeJSON(out io.Writer, payload any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

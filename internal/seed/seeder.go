// Package seed populates an arena database with fixture or generated
// data. The colosseum preset loads a fixed historical scenario and is
// safe to re-run; the games preset rolls random arenas for development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/louisbranch/ludus/internal/arena"
	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/telemetry"
)

// Config holds seeder configuration.
type Config struct {
	Preset  Preset
	Seed    int64
	Arenas  int // Override preset's arena count (0 = use preset default)
	Verbose bool
}

// DefaultConfig returns configuration with common defaults.
func DefaultConfig() Config {
	return Config{
		Preset: PresetColosseum,
	}
}

// Seeder writes preset data through the store.
type Seeder struct {
	config  Config
	store   storage.Store
	emitter *telemetry.Emitter
	rng     *rand.Rand
}

// New creates a seeder over an open store. The emitter may be nil.
func New(store storage.Store, emitter *telemetry.Emitter, cfg Config) (*Seeder, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	return &Seeder{
		config:  cfg,
		store:   store,
		emitter: emitter,
		rng:     NewSeededRNG(cfg.Seed, cfg.Verbose),
	}, nil
}

// Run executes the configured preset.
func (s *Seeder) Run(ctx context.Context) error {
	switch s.config.Preset {
	case PresetColosseum, "":
		return s.seedFixture(ctx, ColosseumFixture())
	case PresetGames:
		return s.seedGames(ctx)
	default:
		return fmt.Errorf("unknown preset %q", s.config.Preset)
	}
}

// seedFixture loads fixed data once. A fixture whose arena already
// exists under the same name and city is left alone.
func (s *Seeder) seedFixture(ctx context.Context, fixture ArenaFixture) error {
	existing, err := s.store.ListArenas(ctx)
	if err != nil {
		return fmt.Errorf("list arenas: %w", err)
	}
	for _, record := range existing {
		if record.Name == fixture.Name && record.City == fixture.City {
			if s.config.Verbose {
				fmt.Fprintf(os.Stderr, "Arena %q already present, skipping\n", fixture.Name)
			}
			return nil
		}
	}

	arenaID, err := s.store.CreateArena(ctx, storage.Arena{
		Name:     fixture.Name,
		City:     fixture.City,
		Capacity: fixture.Capacity,
	})
	if err != nil {
		return fmt.Errorf("create arena %q: %w", fixture.Name, err)
	}
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "  Created arena: %s (%d)\n", fixture.Name, arenaID)
	}

	events := 0
	for _, event := range fixture.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.seedEvent(ctx, arenaID, event); err != nil {
			return err
		}
		events++
	}

	s.emitCompleted(ctx, fmt.Sprintf("preset %s: 1 arena, %d event(s)", PresetColosseum, events))
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "Seeding complete\n")
	}
	return nil
}

func (s *Seeder) seedEvent(ctx context.Context, arenaID int64, event EventFixture) error {
	eventID, err := s.store.CreateEvent(ctx, storage.Event{
		ArenaID:   arenaID,
		Date:      event.Date,
		EventType: event.EventType,
	})
	if err != nil {
		return fmt.Errorf("create event %q: %w", event.EventType, err)
	}
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "  Created event: %s (%d)\n", event.EventType, eventID)
	}

	for _, contingent := range event.Contingents {
		if err := s.store.UpsertParticipant(ctx, storage.UpsertParticipantParams{
			EventID:       eventID,
			Type:          contingent.Type,
			Count:         contingent.Count,
			StrengthLevel: contingent.Strength,
			Cost:          contingent.Cost,
			Age:           contingent.Age,
			BattlesCount:  contingent.Battles,
		}); err != nil {
			return fmt.Errorf("upsert %s contingent: %w", contingent.Type, err)
		}
	}
	for _, beast := range event.Beasts {
		if _, err := s.store.CreateBeast(ctx, storage.Beast{
			EventID:            eventID,
			Species:            beast.Species,
			Count:              beast.Count,
			Strength:           beast.Strength,
			Speed:              beast.Speed,
			EntertainmentValue: beast.Entertainment,
		}); err != nil {
			return fmt.Errorf("create %s beasts: %w", beast.Species, err)
		}
	}
	for _, result := range event.Results {
		if _, err := s.store.CreateBattleResult(ctx, storage.BattleResult{
			EventID:         eventID,
			ParticipantType: result.Label,
			Survived:        result.Survived,
		}); err != nil {
			return fmt.Errorf("record %s result: %w", result.Label, err)
		}
	}
	return nil
}

// seedGames generates random data within the preset's bounds.
func (s *Seeder) seedGames(ctx context.Context) error {
	presetCfg := GetPresetConfig(PresetGames)

	numArenas := presetCfg.Arenas
	if s.config.Arenas > 0 {
		numArenas = s.config.Arenas
	}
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "Running preset %q: %d arena(s)\n", PresetGames, numArenas)
	}

	for i := 0; i < numArenas; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.generateArena(ctx, presetCfg); err != nil {
			return fmt.Errorf("generate arena %d: %w", i+1, err)
		}
	}

	s.emitCompleted(ctx, fmt.Sprintf("preset %s: %d arena(s)", PresetGames, numArenas))
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "Generation complete: %d arena(s) created\n", numArenas)
	}
	return nil
}

func (s *Seeder) generateArena(ctx context.Context, cfg PresetConfig) error {
	site := arenaSites[s.rng.Intn(len(arenaSites))]
	arenaID, err := s.store.CreateArena(ctx, storage.Arena{
		Name:     site.Name,
		City:     site.City,
		Capacity: site.Capacity,
	})
	if err != nil {
		return fmt.Errorf("create arena: %w", err)
	}
	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "  Created arena: %s (%d)\n", site.Name, arenaID)
	}

	numEvents := s.between(cfg.EventsMin, cfg.EventsMax)
	for i := 0; i < numEvents; i++ {
		if err := s.generateEvent(ctx, arenaID, cfg); err != nil {
			return fmt.Errorf("generate event %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Seeder) generateEvent(ctx context.Context, arenaID int64, cfg PresetConfig) error {
	// Any day across the first-century heyday of the games.
	date := time.Date(70, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, s.rng.Intn(365*50))

	eventID, err := s.store.CreateEvent(ctx, storage.Event{
		ArenaID:   arenaID,
		Date:      date,
		EventType: eventProgrammes[s.rng.Intn(len(eventProgrammes))],
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	types := arena.ParticipantTypes()
	levels := arena.StrengthLevels()
	numContingents := s.between(cfg.ContingentsMin, cfg.ContingentsMax)
	if numContingents > len(types) {
		numContingents = len(types)
	}
	order := s.rng.Perm(len(types))

	type contingent struct {
		participantType arena.ParticipantType
		count           int64
	}
	contingents := make([]contingent, 0, numContingents)
	for i := 0; i < numContingents; i++ {
		participantType := types[order[i]]
		count := 1 + s.rng.Int63n(9)
		if _, err := s.store.CreateParticipant(ctx, storage.Participant{
			EventID:       eventID,
			Type:          participantType,
			Count:         count,
			StrengthLevel: levels[s.rng.Intn(len(levels))],
			Cost:          float64(10 + s.rng.Intn(191)),
			Age:           18 + s.rng.Int63n(30),
			BattlesCount:  s.rng.Int63n(40),
		}); err != nil {
			return fmt.Errorf("create %s contingent: %w", participantType, err)
		}
		contingents = append(contingents, contingent{participantType, count})
	}

	species := arena.AllSpecies()
	numBeasts := s.between(cfg.BeastsMin, cfg.BeastsMax)
	if numBeasts > len(species) {
		numBeasts = len(species)
	}
	beastOrder := s.rng.Perm(len(species))
	for i := 0; i < numBeasts; i++ {
		if _, err := s.store.CreateBeast(ctx, storage.Beast{
			EventID:            eventID,
			Species:            species[beastOrder[i]],
			Count:              1 + s.rng.Int63n(6),
			Strength:           s.rng.Int63n(11),
			Speed:              s.rng.Int63n(11),
			EntertainmentValue: s.rng.Int63n(11),
		}); err != nil {
			return fmt.Errorf("create beasts: %w", err)
		}
	}

	if cfg.RecordResults {
		for _, c := range contingents {
			// Survivors never exceed the contingent, so the write passes
			// the survivor cap.
			if _, err := s.store.CreateBattleResult(ctx, storage.BattleResult{
				EventID:         eventID,
				ParticipantType: string(c.participantType),
				Survived:        s.rng.Int63n(c.count + 1),
			}); err != nil {
				return fmt.Errorf("record %s result: %w", c.participantType, err)
			}
		}
	}
	return nil
}

func (s *Seeder) between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// emitCompleted records the seeding run on the audit trail. Audit
// failures are reported but never fail the run.
func (s *Seeder) emitCompleted(ctx context.Context, detail string) {
	if err := s.emitter.Emit(ctx, storage.AuditEvent{
		Action: "seed_completed",
		Entity: "database",
		Detail: detail,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "audit: %v\n", err)
	}
}

package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/ludus/internal/storage/sqlite"
)

func TestValidatePreset(t *testing.T) {
	if err := validatePreset("colosseum"); err != nil {
		t.Fatalf("expected colosseum to be valid: %v", err)
	}
	if err := validatePreset("games"); err != nil {
		t.Fatalf("expected games to be valid: %v", err)
	}
	if err := validatePreset("unknown"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != filepath.Join("data", "ludus.db") {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Preset != "colosseum" {
		t.Fatalf("expected colosseum preset, got %q", cfg.Preset)
	}
	if cfg.Seed != 0 || cfg.Arenas != 0 || cfg.List || cfg.Verbose {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("LUDUS_DB_PATH", "env.db")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	args := []string{"-preset", "games", "-seed", "7", "-arenas", "2", "-v"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "env.db" {
		t.Fatalf("expected env db path, got %q", cfg.DBPath)
	}
	if cfg.Preset != "games" {
		t.Fatalf("expected games preset, got %q", cfg.Preset)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}
	if cfg.Arenas != 2 {
		t.Fatalf("expected 2 arenas, got %d", cfg.Arenas)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose to be set")
	}
}

func TestRunListPresets(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{List: true}, &out, nil); err != nil {
		t.Fatalf("run list: %v", err)
	}
	for _, preset := range []string{"colosseum", "games"} {
		if !strings.Contains(out.String(), preset) {
			t.Fatalf("expected preset %q in listing:\n%s", preset, out.String())
		}
	}
}

func TestRunUnknownPreset(t *testing.T) {
	err := Run(context.Background(), Config{Preset: "stress-test"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("expected unknown preset error, got %v", err)
	}
}

func TestRunSeedsColosseumFixture(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ludus.db")
	cfg := Config{DBPath: dbPath, Preset: "colosseum"}

	if err := Run(ctx, cfg, nil, nil); err != nil {
		t.Fatalf("run seed: %v", err)
	}
	// Re-running the fixture must not duplicate the arena.
	if err := Run(ctx, cfg, nil, nil); err != nil {
		t.Fatalf("run seed again: %v", err)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	}()

	arenas, err := store.ListArenas(ctx)
	if err != nil {
		t.Fatalf("list arenas: %v", err)
	}
	if len(arenas) != 1 {
		t.Fatalf("expected 1 arena, got %d", len(arenas))
	}
	if arenas[0].Name != "Римский Колизей" {
		t.Fatalf("unexpected arena name %q", arenas[0].Name)
	}
}

// Package seed parses seed command flags and loads preset data into
// the arena database.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	platformcmd "github.com/louisbranch/ludus/internal/platform/cmd"
	"github.com/louisbranch/ludus/internal/seed"
	"github.com/louisbranch/ludus/internal/storage/sqlite"
	"github.com/louisbranch/ludus/internal/telemetry"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string `env:"LUDUS_DB_PATH"`
	Preset  string
	Seed    int64
	Arenas  int
	List    bool
	Verbose bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "ludus.db")
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to arena sqlite database (default: LUDUS_DB_PATH or data/ludus.db)")
	fs.StringVar(&cfg.Preset, "preset", string(seed.PresetColosseum), "seeding preset (colosseum, games)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Arenas, "arenas", 0, "number of arenas to generate (0 = use preset default)")
	fs.BoolVar(&cfg.List, "list", false, "list available presets")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if cfg.List {
		fmt.Fprintln(out, "Available presets:")
		fmt.Fprintln(out, "  colosseum - Fixed historical fixture: one arena, one event, recorded outcomes")
		fmt.Fprintln(out, "  games     - Random arenas, events and contingents for development")
		return nil
	}

	if err := validatePreset(seed.Preset(cfg.Preset)); err != nil {
		return err
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				fmt.Fprintf(errOut, "Error: close store: %v\n", closeErr)
			}
		}()

		seeder, err := seed.New(store, telemetry.NewEmitter(store), seed.Config{
			Preset:  seed.Preset(cfg.Preset),
			Seed:    cfg.Seed,
			Arenas:  cfg.Arenas,
			Verbose: cfg.Verbose,
		})
		if err != nil {
			return err
		}
		return seeder.Run(ctx)
	})
}

func validatePreset(preset seed.Preset) error {
	switch preset {
	case seed.PresetColosseum, seed.PresetGames, "":
		return nil
	}
	return fmt.Errorf("unknown preset %q (valid presets: colosseum, games)", preset)
}

// Package mcp parses MCP command flags and serves the arena tool set
// over stdio.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	mcpserver "github.com/louisbranch/ludus/internal/mcp"
	platformcmd "github.com/louisbranch/ludus/internal/platform/cmd"
	"github.com/louisbranch/ludus/internal/storage/sqlite"
	"github.com/louisbranch/ludus/internal/telemetry"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath string `env:"LUDUS_DB_PATH"`
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
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the arena store and serves MCP tools on stdin/stdout until
// the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		server, err := mcpserver.New(store, telemetry.NewEmitter(store))
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	})
}

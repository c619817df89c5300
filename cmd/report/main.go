package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/ludus/internal/platform/config"
	"github.com/louisbranch/ludus/internal/tools/report"
)

// main renders arena reports and audits from the ledger database.
func main() {
	cfg, err := report.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := report.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		// Findings were already printed; signal them through the exit code.
		if errors.Is(err, report.ErrFindings) {
			os.Exit(1)
		}
		config.Exitf("report: %v", err)
	}
}

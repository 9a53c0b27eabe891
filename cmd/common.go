package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ravener/Flowtime/internal/config"
	"github.com/ravener/Flowtime/internal/statistics"
	"github.com/ravener/Flowtime/internal/storage"
)

// loadStatistics resolves configuration, captures the reference clock and
// loads the day history. Failures are fatal to the command.
func loadStatistics() (*statistics.Statistics, time.Time) {
	cfg, err := config.Load()
	if err != nil {
		// Load always returns a usable Config, so a broken file only warns.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	now, err := cfg.ReferenceNow()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	base := cfg.DataDir
	if base == "" {
		base, err = storage.DataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	stats, err := storage.LoadStatistics(base, now, slog.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return stats, now
}

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ravener/Flowtime/internal/statistics"
)

// DataDir returns the root data directory, honoring XDG_DATA_HOME and
// falling back to ~/.local/share/flowtime.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowtime"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "flowtime"), nil
}

// StatisticsPath returns the path of the statistics document inside base.
func StatisticsPath(base string) string {
	return filepath.Join(base, "statistics.xml")
}

// LoadStatistics reads and parses the statistics document under base. A
// missing file is a first run and yields the empty state; any other open or
// parse failure aborts the load with no partial result. The file is closed
// on all exit paths.
func LoadStatistics(base string, now time.Time, log *slog.Logger) (*statistics.Statistics, error) {
	path := StatisticsPath(base)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return statistics.Empty(now), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := statistics.Parse(f, now, log)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return statistics.New(res), nil
}

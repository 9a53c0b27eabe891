package storage_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ravener/Flowtime/internal/statistics"
	"github.com/ravener/Flowtime/internal/storage"
)

var refNow = time.Date(2024, 5, 3, 14, 0, 0, 0, time.UTC)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadStatisticsMissingFile(t *testing.T) {
	base := t.TempDir()

	stats, err := storage.LoadStatistics(base, refNow, discard())
	require.NoError(t, err)

	// First run: only the synthesized record for the reference day.
	require.Len(t, stats.Days(), 1)
	require.True(t, stats.Today().On(refNow))
	require.EqualValues(t, 0, stats.Today().Worktime())
}

func TestLoadStatistics(t *testing.T) {
	base := t.TempDir()
	doc := `<statistics>
	<day date="2024-05-01">
		<worktime>3600</worktime>
		<breaktime>600</breaktime>
	</day>
</statistics>`
	require.NoError(t, os.WriteFile(storage.StatisticsPath(base), []byte(doc), 0o600))

	stats, err := storage.LoadStatistics(base, refNow, discard())
	require.NoError(t, err)

	days := stats.Days()
	require.Len(t, days, 2)
	require.EqualValues(t, 3600, days[0].Worktime())
	require.EqualValues(t, 600, days[0].Breaktime())
	require.True(t, stats.Today().On(refNow))
}

func TestLoadStatisticsMalformedDocument(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(storage.StatisticsPath(base), []byte(`<statistics><day`), 0o600))

	_, err := storage.LoadStatistics(base, refNow, discard())
	require.ErrorIs(t, err, statistics.ErrMalformedDocument)
}

func TestStatisticsPath(t *testing.T) {
	got := storage.StatisticsPath("/data/flowtime")
	want := filepath.Join("/data/flowtime", "statistics.xml")
	require.Equal(t, want, got)
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	base, err := storage.DataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg-data", "flowtime"), base)
}

package archive

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readManifest(t *testing.T, dir string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestManifestWriter_Append(t *testing.T) {
	t.Parallel()

	clock := fixedClock{t: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)}

	t.Run("header written once", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		w := NewManifestWriter(dir, clock, zap.NewNop())

		for i := 0; i < 3; i++ {
			err := w.Append(ManifestRecord{
				OriginalURL:   "https://example.com/news/item",
				ArchivedURL:   "https://web.archive.org/web/20240101120000/https://example.com/news/item",
				LocalFilename: "example.com_news_item_20240101120000.html",
				Timestamp:     ParseTimestamp("20240101120000"),
			})
			require.NoError(t, err)
		}

		rows := readManifest(t, dir)
		require.Len(t, rows, 4) // 1 header + 3 data rows
		require.Equal(t, []string{"captured_at", "original_url", "wayback_url", "local_filename"}, rows[0])
	})

	t.Run("well formed timestamp rendered as iso8601", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		w := NewManifestWriter(dir, clock, zap.NewNop())

		require.NoError(t, w.Append(ManifestRecord{
			OriginalURL: "https://example.com",
			Timestamp:   ParseTimestamp("20240101120000"),
		}))

		rows := readManifest(t, dir)
		require.Equal(t, "2024-01-01T12:00:00", rows[1][0])
	})

	t.Run("absent timestamp falls back to clock", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		w := NewManifestWriter(dir, clock, zap.NewNop())

		require.NoError(t, w.Append(ManifestRecord{OriginalURL: "https://example.com"}))

		rows := readManifest(t, dir)
		require.Equal(t, "2024-06-01T10:30:00", rows[1][0])
	})

	t.Run("malformed timestamp falls back to clock", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		w := NewManifestWriter(dir, clock, zap.NewNop())

		require.NoError(t, w.Append(ManifestRecord{
			OriginalURL: "https://example.com",
			Timestamp:   ParseTimestamp("garbage"),
		}))

		rows := readManifest(t, dir)
		require.Equal(t, "2024-06-01T10:30:00", rows[1][0])
	})

	t.Run("appends across writer instances", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		first := NewManifestWriter(dir, clock, zap.NewNop())
		require.NoError(t, first.Append(ManifestRecord{OriginalURL: "https://example.com/a"}))

		second := NewManifestWriter(dir, clock, zap.NewNop())
		require.NoError(t, second.Append(ManifestRecord{OriginalURL: "https://example.com/b"}))

		rows := readManifest(t, dir)
		require.Len(t, rows, 3)
		require.Equal(t, "https://example.com/a", rows[1][1])
		require.Equal(t, "https://example.com/b", rows[2][1])
	})

	t.Run("creates missing output dir", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := NewManifestWriter(dir, clock, zap.NewNop())

		require.NoError(t, w.Append(ManifestRecord{OriginalURL: "https://example.com"}))
		require.FileExists(t, filepath.Join(dir, ManifestName))
	})
}

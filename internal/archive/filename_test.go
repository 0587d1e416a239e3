package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotFilename(t *testing.T) {
	t.Parallel()

	t.Run("host path and timestamp", func(t *testing.T) {
		t.Parallel()
		got := SnapshotFilename("https://example.com/news/item", ParseTimestamp("20240101120000"))
		require.Equal(t, "example.com_news_item_20240101120000.html", got)
	})

	t.Run("host only without timestamp", func(t *testing.T) {
		t.Parallel()
		got := SnapshotFilename("https://example.com", Timestamp{})
		require.Equal(t, "example.com.html", got)
	})

	t.Run("trailing slash ignored", func(t *testing.T) {
		t.Parallel()
		got := SnapshotFilename("https://example.com/news/", Timestamp{})
		require.Equal(t, "example.com_news.html", got)
	})

	t.Run("port colon replaced", func(t *testing.T) {
		t.Parallel()
		got := SnapshotFilename("https://example.com:8443/a", Timestamp{})
		require.Equal(t, "example.com_8443_a.html", got)
		require.NotContains(t, got, ":")
	})

	t.Run("html suffix not doubled", func(t *testing.T) {
		t.Parallel()
		got := SnapshotFilename("https://example.com/page.html", Timestamp{})
		require.Equal(t, "example.com_page.html", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("20240101120000")
		first := SnapshotFilename("https://example.com/news/item", ts)
		second := SnapshotFilename("https://example.com/news/item", ts)
		require.Equal(t, first, second)
	})

	t.Run("always ends in html", func(t *testing.T) {
		t.Parallel()
		urls := []string{
			"https://example.com",
			"https://example.com/a/b/c",
			"https://example.com:9090/",
			"https://example.com/page.html",
		}
		for _, u := range urls {
			require.True(t, strings.HasSuffix(SnapshotFilename(u, Timestamp{}), ".html"), u)
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	t.Run("well formed", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("20240101120000")
		require.Equal(t, TimestampWellFormed, ts.Kind())
		parsed, ok := ts.Time()
		require.True(t, ok)
		require.Equal(t, 2024, parsed.Year())
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("")
		require.Equal(t, TimestampAbsent, ts.Kind())
		require.False(t, ts.Present())
		_, ok := ts.Time()
		require.False(t, ok)
	})

	t.Run("malformed length", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("2024010112000")
		require.Equal(t, TimestampMalformed, ts.Kind())
		require.True(t, ts.Present())
		_, ok := ts.Time()
		require.False(t, ok)
	})

	t.Run("malformed month", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("20241301120000")
		require.Equal(t, TimestampMalformed, ts.Kind())
	})

	t.Run("non numeric", func(t *testing.T) {
		t.Parallel()
		ts := ParseTimestamp("not-a-timestamp")
		require.Equal(t, TimestampMalformed, ts.Kind())
	})
}

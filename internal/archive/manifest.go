package archive

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ManifestName is the CSV manifest file kept inside the output directory.
const ManifestName = "archive_log.csv"

// manifestHeader is written exactly once, when the file is first created.
var manifestHeader = []string{"captured_at", "original_url", "wayback_url", "local_filename"}

// capturedAtLayout renders capture times as zone-less ISO-8601.
const capturedAtLayout = "2006-01-02T15:04:05"

// ManifestRecord is one durable row derived from a successful archival
// attempt.
type ManifestRecord struct {
	OriginalURL   string
	ArchivedURL   string
	LocalFilename string
	Timestamp     Timestamp
}

// ManifestWriter appends archival records to the CSV manifest. The file is
// append-only: rows are never rewritten, reordered, or deduplicated, so a URL
// archived across several runs appears once per run.
type ManifestWriter struct {
	dir    string
	clock  Clock
	logger *zap.Logger
}

// NewManifestWriter returns a writer rooted at dir.
func NewManifestWriter(dir string, clock Clock, logger *zap.Logger) *ManifestWriter {
	return &ManifestWriter{
		dir:    dir,
		clock:  clock,
		logger: logger,
	}
}

// Append writes one record, creating the directory and the header row on
// first use.
func (w *ManifestWriter) Append(rec ManifestRecord) error {
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, ManifestName)
	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open manifest %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if writeHeader {
		if err := cw.Write(manifestHeader); err != nil {
			f.Close() //nolint:errcheck // write error takes precedence
			return fmt.Errorf("write manifest header: %w", err)
		}
	}
	row := []string{w.capturedAt(rec.Timestamp), rec.OriginalURL, rec.ArchivedURL, rec.LocalFilename}
	if err := cw.Write(row); err != nil {
		f.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("write manifest row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close() //nolint:errcheck // flush error takes precedence
		return fmt.Errorf("flush manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}

	w.logger.Debug("Manifest row appended",
		zap.String("original_url", rec.OriginalURL),
		zap.String("wayback_url", rec.ArchivedURL),
	)
	return nil
}

// capturedAt renders a well-formed capture timestamp, falling back to the
// current UTC time for absent or malformed values.
func (w *ManifestWriter) capturedAt(ts Timestamp) string {
	if t, ok := ts.Time(); ok {
		return t.Format(capturedAtLayout)
	}
	return w.clock.Now().UTC().Format(capturedAtLayout)
}

// Package archive defines core types shared across the archival pipeline.
package archive

import (
	"net/http"
	"time"
)

// timestampLayout is the 14-digit capture time format used by the Wayback
// Machine (YYYYMMDDHHMMSS).
const timestampLayout = "20060102150405"

// TimestampKind classifies the capture timestamp returned by the snapshot
// service.
type TimestampKind int

// Timestamp kinds, in order of increasing trust.
const (
	TimestampAbsent TimestampKind = iota
	TimestampMalformed
	TimestampWellFormed
)

// Timestamp is the capture time of a snapshot. The service may omit it or
// return junk, so the raw value is kept alongside its classification and
// every consumer branches on the kind instead of re-parsing.
type Timestamp struct {
	kind TimestampKind
	raw  string
}

// ParseTimestamp classifies a raw capture timestamp string.
func ParseTimestamp(raw string) Timestamp {
	if raw == "" {
		return Timestamp{kind: TimestampAbsent}
	}
	if _, err := time.Parse(timestampLayout, raw); err != nil || len(raw) != 14 {
		return Timestamp{kind: TimestampMalformed, raw: raw}
	}
	return Timestamp{kind: TimestampWellFormed, raw: raw}
}

// Kind returns the classification of the timestamp.
func (t Timestamp) Kind() TimestampKind {
	return t.kind
}

// Raw returns the timestamp string exactly as the service returned it.
func (t Timestamp) Raw() string {
	return t.raw
}

// Present reports whether the service returned any timestamp value at all,
// well-formed or not.
func (t Timestamp) Present() bool {
	return t.kind != TimestampAbsent
}

// Time parses a well-formed timestamp. ok is false for absent or malformed
// values.
func (t Timestamp) Time() (parsed time.Time, ok bool) {
	if t.kind != TimestampWellFormed {
		return time.Time{}, false
	}
	parsed, err := time.Parse(timestampLayout, t.raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Page is the result of fetching a single URL over the transport.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Capture identifies a stored snapshot on the capture service.
type Capture struct {
	ArchivedURL string
	Timestamp   Timestamp
}

// CaptureResult records one successful archival of a URL. It is immutable
// after creation; failed attempts never produce one.
type CaptureResult struct {
	OriginalURL   string
	ArchivedURL   string
	LocalFilename string
	Timestamp     Timestamp
	LocalPath     string
	// Reused is true when the snapshot file already existed locally and no
	// download took place.
	Reused bool
}

// Summary tracks per-run outcome counters.
type Summary struct {
	SnapshotsStored int
	IdempotentHits  int
	Failures        int
	LinksDiscovered int
}

package archive

import (
	"context"
	"time"
)

// Fetcher fetches a URL and returns the body plus metadata.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}

// CaptureService requests a point-in-time capture of a URL from an external
// snapshot service and resolves its stable address.
type CaptureService interface {
	Save(ctx context.Context, rawURL string) (Capture, error)
}

// Snapshotter archives a single URL end to end: capture request, local
// idempotency check, content download, manifest row.
type Snapshotter interface {
	Archive(ctx context.Context, rawURL string) (CaptureResult, error)
}

// Extractor discovers related links in a page's HTML.
type Extractor interface {
	Extract(baseURL, html string, limit int) ([]string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces run IDs (UUIDs).
type IDGenerator interface {
	NewID() (string, error)
}

package archive

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ErrNoArchiveURL reports that the capture service answered but no stable
// snapshot address could be resolved from its response.
var ErrNoArchiveURL = errors.New("capture service returned no archive url")

// snapshotPathRe matches the 14-digit capture timestamp embedded in Wayback
// snapshot URLs (…/web/<timestamp>/<original url>).
var snapshotPathRe = regexp.MustCompile(`/web/(\d{14})`)

// WaybackClient implements CaptureService against the Wayback Machine's
// Save Page Now endpoint. The save request is a plain GET; the snapshot's
// stable address comes back either as a redirect to the /web/ URL or as a
// Content-Location header on the final response.
type WaybackClient struct {
	endpoint string
	fetcher  Fetcher
	logger   *zap.Logger
}

// NewWaybackClient returns a client that submits saves to endpoint through
// fetcher.
func NewWaybackClient(endpoint string, fetcher Fetcher, logger *zap.Logger) *WaybackClient {
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return &WaybackClient{
		endpoint: endpoint,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Save requests a capture of rawURL and resolves its stable address and
// timestamp.
func (c *WaybackClient) Save(ctx context.Context, rawURL string) (Capture, error) {
	page, err := c.fetcher.Fetch(ctx, c.endpoint+rawURL)
	if err != nil {
		return Capture{}, fmt.Errorf("request snapshot of %s: %w", rawURL, err)
	}

	archivedURL := resolveArchivedURL(page)
	if archivedURL == "" {
		return Capture{}, fmt.Errorf("resolve snapshot of %s: %w", rawURL, ErrNoArchiveURL)
	}

	ts := ParseTimestamp(timestampFromSnapshotURL(archivedURL))
	c.logger.Debug("Snapshot resolved",
		zap.String("url", rawURL),
		zap.String("wayback_url", archivedURL),
		zap.String("timestamp", ts.Raw()),
	)
	return Capture{ArchivedURL: archivedURL, Timestamp: ts}, nil
}

// resolveArchivedURL extracts the snapshot address from a save response.
// A Content-Location header wins; otherwise the post-redirect final URL is
// accepted when it points into the /web/ snapshot space.
func resolveArchivedURL(page Page) string {
	if loc := page.Headers.Get("Content-Location"); loc != "" {
		base, err := url.Parse(page.FinalURL)
		if err != nil {
			return ""
		}
		ref, err := url.Parse(loc)
		if err != nil {
			return ""
		}
		return base.ResolveReference(ref).String()
	}
	if snapshotPathRe.MatchString(page.FinalURL) {
		return page.FinalURL
	}
	return ""
}

func timestampFromSnapshotURL(archivedURL string) string {
	m := snapshotPathRe.FindStringSubmatch(archivedURL)
	if m == nil {
		return ""
	}
	return m[1]
}

package archive

import (
	"net/url"
	"strings"
)

// SnapshotFilename derives a deterministic, filesystem-safe filename for an
// archived snapshot of rawURL. The name is built from the URL's host and path
// segments, suffixed with the capture timestamp when the service returned
// one. Colons are replaced so host:port never produces an unsafe name, and
// the result always ends in ".html".
func SnapshotFilename(rawURL string, ts Timestamp) string {
	base := filenameBase(rawURL)
	if ts.Present() {
		base += "_" + ts.Raw()
	}
	base = strings.ReplaceAll(base, ":", "_")
	if !strings.HasSuffix(base, ".html") {
		base += ".html"
	}
	return base
}

func filenameBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Still deterministic: flatten the raw string instead.
		return strings.NewReplacer("/", "_", "?", "_", "#", "_").Replace(rawURL)
	}
	base := u.Host
	for _, seg := range strings.Split(strings.TrimRight(u.Path, "/"), "/") {
		if seg == "" {
			continue
		}
		base += "_" + seg
	}
	return base
}

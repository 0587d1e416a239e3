package archive

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkExtractor discovers same-host article links in a page's HTML using two
// ordered strategies. The primary strategy only trusts anchors inside the
// page's main content region; the fallback scans every anchor but admits
// off-path URLs only when they carry a recognized article-path marker, since
// listing pages often put article links in cards or teasers outside the
// content region.
type LinkExtractor struct {
	contentSelector string
	articleMarkers  []string
}

// NewLinkExtractor returns an extractor scoped to contentSelector for the
// primary pass and markers for the fallback admission rule.
func NewLinkExtractor(contentSelector string, markers []string) *LinkExtractor {
	return &LinkExtractor{
		contentSelector: contentSelector,
		articleMarkers:  markers,
	}
}

// Extract returns an ordered, deduplicated list of absolute same-host URLs
// discovered in html, capped at limit entries (limit <= 0 means unbounded).
// The normalized base URL itself is never returned.
func (e *LinkExtractor) Extract(baseURL, html string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %s: %w", baseURL, err)
	}

	c := &linkCollector{
		base:      base,
		baseClean: strings.TrimRight(baseURL, "/"),
		limit:     limit,
		seen:      make(map[string]struct{}),
	}

	doc.Find(e.contentSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		return c.admit(sel, nil)
	})

	if len(c.links) == 0 {
		doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			return c.admit(sel, e.articleMarkers)
		})
	}

	if limit > 0 && len(c.links) > limit {
		c.links = c.links[:limit]
	}
	return c.links, nil
}

// linkCollector accumulates normalized links in first-discovered order.
type linkCollector struct {
	base      *url.URL
	baseClean string
	limit     int
	seen      map[string]struct{}
	links     []string
}

// admit evaluates one anchor and reports whether scanning should continue.
// A non-nil markers slice enables the fallback admission rule for URLs whose
// normalized form does not extend the base URL.
func (c *linkCollector) admit(sel *goquery.Selection, markers []string) bool {
	href, ok := sel.Attr("href")
	if !ok {
		return true
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return true
	}
	resolved := c.base.ResolveReference(ref)
	if resolved.Host != c.base.Host {
		return true
	}

	resolved.Fragment = ""
	cleaned := strings.TrimRight(resolved.String(), "/")
	if cleaned == c.baseClean {
		return true
	}
	if markers != nil && !strings.HasPrefix(cleaned, c.baseClean) {
		if !pathHasMarker(resolved.Path, markers) {
			return true
		}
	}
	if _, dup := c.seen[cleaned]; dup {
		return true
	}

	c.seen[cleaned] = struct{}{}
	c.links = append(c.links, cleaned)
	return !(c.limit > 0 && len(c.links) >= c.limit)
}

func pathHasMarker(path string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(path, m) {
			return true
		}
	}
	return false
}

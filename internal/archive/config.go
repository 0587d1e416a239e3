package archive

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures every configuration knob that influences an archival run.
// All values originate from Viper so the archiver can be configured via files,
// env vars, or CLI flags.
type Config struct {
	SeedURL         string
	OutputDir       string
	MaxLinks        int
	UserAgent       string
	RequestTimeout  time.Duration
	ContentSelector string
	ArticleMarkers  []string
	SaveEndpoint    string
}

// LoadConfig constructs a Config by reading from Viper.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		SeedURL:         v.GetString("archiver.url"),
		OutputDir:       v.GetString("archiver.output_dir"),
		MaxLinks:        v.GetInt("archiver.max_links"),
		UserAgent:       v.GetString("archiver.user_agent"),
		RequestTimeout:  v.GetDuration("archiver.request_timeout"),
		ContentSelector: v.GetString("archiver.content_selector"),
		ArticleMarkers:  normalizeMarkers(v.GetStringSlice("archiver.article_markers")),
		SaveEndpoint:    v.GetString("wayback.save_endpoint"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.SeedURL == "" {
		return fmt.Errorf("archiver.url must be set")
	}
	u, err := url.Parse(c.SeedURL)
	if err != nil {
		return fmt.Errorf("archiver.url is not a valid URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("archiver.url must be an absolute, schemeful URL, got %q", c.SeedURL)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("archiver.output_dir must be set")
	}
	if c.MaxLinks < 0 {
		return fmt.Errorf("archiver.max_links must be >= 0 (0 means unlimited)")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("archiver.user_agent must be set")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("archiver.request_timeout must be > 0")
	}
	if c.ContentSelector == "" {
		return fmt.Errorf("archiver.content_selector must be set")
	}
	if c.SaveEndpoint == "" {
		return fmt.Errorf("wayback.save_endpoint must be set")
	}
	return nil
}

func normalizeMarkers(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{})
	for _, m := range in {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

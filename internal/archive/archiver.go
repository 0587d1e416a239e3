package archive

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Archiver orchestrates one archival run: fetch the seed page, snapshot it,
// discover related links in its HTML, and snapshot each of them in sequence.
// Only the seed fetch is fatal; every per-URL failure is reported and
// skipped so a batch run completes partially instead of aborting.
type Archiver struct {
	cfg         Config
	fetcher     Fetcher
	snapshotter Snapshotter
	extractor   Extractor
	ids         IDGenerator
	logger      *zap.Logger
}

// New assembles an Archiver from its collaborators.
func New(cfg Config, fetcher Fetcher, snapshotter Snapshotter, extractor Extractor, ids IDGenerator, logger *zap.Logger) *Archiver {
	return &Archiver{
		cfg:         cfg,
		fetcher:     fetcher,
		snapshotter: snapshotter,
		extractor:   extractor,
		ids:         ids,
		logger:      logger,
	}
}

// Run executes one archival run against the configured seed URL.
func (a *Archiver) Run(ctx context.Context) (Summary, error) {
	log := a.logger
	if runID, err := a.ids.NewID(); err == nil {
		log = log.With(zap.String("run_id", runID))
	}

	log.Info("Archiving main page", zap.String("url", a.cfg.SeedURL))
	seedPage, err := a.fetcher.Fetch(ctx, a.cfg.SeedURL)
	if err != nil {
		return Summary{}, fmt.Errorf("retrieve %s: %w", a.cfg.SeedURL, err)
	}

	var summary Summary
	a.archiveOne(ctx, a.cfg.SeedURL, &summary, log)

	log.Info("Extracting related links")
	links, err := a.extractor.Extract(a.cfg.SeedURL, string(seedPage.Body), a.cfg.MaxLinks)
	if err != nil {
		return summary, fmt.Errorf("extract related links: %w", err)
	}
	summary.LinksDiscovered = len(links)
	linksDiscovered.Add(float64(len(links)))
	log.Info("Found related links to archive", zap.Int("count", len(links)))

	for _, link := range links {
		a.archiveOne(ctx, link, &summary, log)
	}
	return summary, nil
}

// archiveOne snapshots a single URL, folding the outcome into the summary.
// Failures are logged and absorbed here; they never abort the run.
func (a *Archiver) archiveOne(ctx context.Context, rawURL string, summary *Summary, log *zap.Logger) {
	result, err := a.snapshotter.Archive(ctx, rawURL)
	if err != nil {
		summary.Failures++
		log.Warn("Failed to archive", zap.String("url", rawURL), zap.Error(err))
		return
	}
	if result.Reused {
		summary.IdempotentHits++
		return
	}
	summary.SnapshotsStored++
}

// Package cmd defines and implements the CLI commands for the sitearchiver executable.
package cmd

import (
	"fmt"

	"github.com/alphaO4/whitehouse-archive/internal/archive"
	"github.com/alphaO4/whitehouse-archive/internal/clock/system"
	"github.com/alphaO4/whitehouse-archive/internal/id/uuid"
	"github.com/alphaO4/whitehouse-archive/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newArchiveCmd creates and configures the 'archive' subcommand.
// It archives a seed URL plus the related article links discovered on it.
func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archives a seed page and its related links",
		Long: `Fetches the seed page, requests a Wayback Machine snapshot of it,
extracts same-domain article links from its HTML, and archives each of them.
Every archived snapshot is downloaded into the output directory and recorded
in an append-only CSV manifest.`,

		RunE: runArchiveCommand,
	}

	cmd.Flags().String("url", "", "Seed URL to archive (e.g. https://www.whitehouse.gov/news)")
	cmd.Flags().String("output-dir", "archived", "Directory to store archived HTML files")
	cmd.Flags().Int("max-links", 10, "Maximum number of related links to archive (0 for unlimited)")

	// Flags feed the same Viper keys the config file and env vars use, so the
	// usual precedence (flag > env > file > default) applies.
	mustBindFlag(cmd, "archiver.url", "url")
	mustBindFlag(cmd, "archiver.output_dir", "output-dir")
	mustBindFlag(cmd, "archiver.max_links", "max-links")

	return cmd
}

func mustBindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func runArchiveCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := archive.LoadConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load archiver config: %w", err)
	}

	archiver, err := buildArchiver(cfg, logging.L)
	if err != nil {
		return err
	}

	summary, err := archiver.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("run archiver: %w", err)
	}

	logging.L.Info("Archive command finished.",
		zap.Int("snapshots_stored", summary.SnapshotsStored),
		zap.Int("idempotent_hits", summary.IdempotentHits),
		zap.Int("failures", summary.Failures),
		zap.Int("links_discovered", summary.LinksDiscovered),
	)
	return nil
}

func buildArchiver(cfg archive.Config, logger *zap.Logger) (*archive.Archiver, error) {
	fetcher, err := archive.NewCollyFetcher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}

	wayback := archive.NewWaybackClient(cfg.SaveEndpoint, fetcher, logger)
	manifest := archive.NewManifestWriter(cfg.OutputDir, system.New(), logger)
	snapshotter := archive.NewSnapshotClient(wayback, fetcher, manifest, cfg.OutputDir, logger)
	extractor := archive.NewLinkExtractor(cfg.ContentSelector, cfg.ArticleMarkers)

	return archive.New(cfg, fetcher, snapshotter, extractor, uuid.New(), logger), nil
}

package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SnapshotClient archives one URL at a time: it requests a capture, derives
// the deterministic local filename, skips the download when the snapshot is
// already on disk, and appends a manifest row for every attempt that reaches
// a terminal success state. Failed attempts never touch the manifest.
type SnapshotClient struct {
	capture   CaptureService
	fetcher   Fetcher
	manifest  *ManifestWriter
	outputDir string
	logger    *zap.Logger
}

// NewSnapshotClient wires a capture service, transport, and manifest writer
// into a Snapshotter rooted at outputDir.
func NewSnapshotClient(capture CaptureService, fetcher Fetcher, manifest *ManifestWriter, outputDir string, logger *zap.Logger) *SnapshotClient {
	return &SnapshotClient{
		capture:   capture,
		fetcher:   fetcher,
		manifest:  manifest,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Archive captures rawURL and stores its content locally. Re-running against
// a URL that resolves to the same local path downloads nothing but still
// appends a manifest row, so the manifest stays a complete log of attempts.
func (s *SnapshotClient) Archive(ctx context.Context, rawURL string) (CaptureResult, error) {
	s.logger.Info("Requesting Wayback Machine snapshot", zap.String("url", rawURL))

	capture, err := s.capture.Save(ctx, rawURL)
	if err != nil {
		captureFailures.Inc()
		return CaptureResult{}, fmt.Errorf("capture %s: %w", rawURL, err)
	}

	filename := SnapshotFilename(rawURL, capture.Timestamp)
	if err := os.MkdirAll(s.outputDir, 0o750); err != nil {
		return CaptureResult{}, fmt.Errorf("create output dir %s: %w", s.outputDir, err)
	}
	destination := filepath.Join(s.outputDir, filename)

	result := CaptureResult{
		OriginalURL:   rawURL,
		ArchivedURL:   capture.ArchivedURL,
		LocalFilename: filename,
		Timestamp:     capture.Timestamp,
		LocalPath:     destination,
	}

	if _, err := os.Stat(destination); err == nil {
		s.logger.Info("Snapshot already stored",
			zap.String("url", rawURL),
			zap.String("path", destination),
		)
		idempotentHits.Inc()
		result.Reused = true
		if err := s.appendManifest(result); err != nil {
			return CaptureResult{}, err
		}
		return result, nil
	}

	page, err := s.fetcher.Fetch(ctx, capture.ArchivedURL)
	if err != nil {
		downloadFailures.Inc()
		return CaptureResult{}, fmt.Errorf("download archived content for %s: %w", rawURL, err)
	}
	if err := os.WriteFile(destination, page.Body, 0o600); err != nil {
		return CaptureResult{}, fmt.Errorf("write snapshot %s: %w", destination, err)
	}

	if err := s.appendManifest(result); err != nil {
		return CaptureResult{}, err
	}
	snapshotsStored.Inc()
	s.logger.Info("Archived",
		zap.String("url", rawURL),
		zap.String("wayback_url", capture.ArchivedURL),
		zap.String("path", destination),
	)
	return result, nil
}

func (s *SnapshotClient) appendManifest(result CaptureResult) error {
	rec := ManifestRecord{
		OriginalURL:   result.OriginalURL,
		ArchivedURL:   result.ArchivedURL,
		LocalFilename: result.LocalFilename,
		Timestamp:     result.Timestamp,
	}
	if err := s.manifest.Append(rec); err != nil {
		return fmt.Errorf("log archive of %s: %w", result.OriginalURL, err)
	}
	return nil
}

package archive

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// snapshotsStored tracks snapshots downloaded and written locally.
	snapshotsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiver_snapshots_stored_total",
		Help: "The total number of snapshots downloaded and stored locally.",
	})
	// idempotentHits tracks attempts resolved by an existing local snapshot.
	idempotentHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiver_idempotent_hits_total",
		Help: "The total number of attempts satisfied by an already-stored snapshot.",
	})
	// captureFailures tracks capture-service requests that failed or returned
	// no stable snapshot address.
	captureFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiver_capture_failures_total",
		Help: "The total number of failed capture-service requests.",
	})
	// downloadFailures tracks snapshot content downloads that failed.
	downloadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiver_download_failures_total",
		Help: "The total number of failed snapshot content downloads.",
	})
	// linksDiscovered tracks related links discovered on seed pages.
	linksDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiver_links_discovered_total",
		Help: "The total number of related links discovered on seed pages.",
	})
)

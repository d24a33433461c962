// Package metrics defines and registers the custom Prometheus metrics of the
// pillbox records API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pillbox"

// RecordsCreatedTotal counts persisted records.
// Label:
//   - entity: "doctor", "patient" or "pillbox"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// RecordsUpdatedTotal counts successful updates, owner assignment included.
var RecordsUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_updated_total",
		Help:      "Total number of records updated, by entity.",
	},
	[]string{"entity"},
)

// RecordsDeletedTotal counts successful deletes.
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)

// CredentialsIssuedTotal counts one-time credentials handed out at creation.
var CredentialsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credentials_issued_total",
		Help:      "Total number of one-time credentials issued, by entity.",
	},
	[]string{"entity"},
)

// PillboxReplaysTotal counts bulk creations answered from a previous batch
// with the same idempotency key. Replayed records are not counted as created.
var PillboxReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pillbox_replays_total",
		Help:      "Total number of bulk pillbox creations served as idempotent replays.",
	},
)

// PillboxBatchSize observes the requested size of bulk pillbox creations.
var PillboxBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pillbox_batch_size",
		Help:      "Requested number of pillboxes per bulk creation.",
		Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
	},
)

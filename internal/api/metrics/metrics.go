// Package metrics defines and registers all custom Prometheus metrics
// for the uybor API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "uybor"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// HousesCreatedTotal counts newly created listings.
// Label:
//   - category: listing category (e.g. "Apartment")
var HousesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "houses_created_total",
		Help:      "Total number of house listings created, by category.",
	},
	[]string{"category"},
)

// ActressesCreatedTotal counts newly created performer entries.
var ActressesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actresses_created_total",
		Help:      "Total number of performer catalog entries created.",
	},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityProcessedTotal counts trail entries that were persisted.
// Label:
//   - action: the recorded action (e.g. "house_created")
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity trail entries successfully recorded.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts trail entries that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity trail entries that failed to record.",
	},
)

// ActivityQueueDepth tracks the number of inputs waiting per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of inputs pending in each activity worker channel.",
	},
	[]string{"worker_id"},
)

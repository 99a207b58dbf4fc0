// Package metrics defines and registers all custom Prometheus metrics for
// the outreach API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "outreach"

// EmailsSentTotal counts individual delivery attempts.
// Label:
//   - status: "sent", "auth_failed", "network_error", "invalid_recipient"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of individual SMTP delivery attempts, by outcome.",
	},
	[]string{"status"},
)

// BulkSendsTotal counts bulk-send runs.
// Label:
//   - result: "completed", "save_failed" (partition returned, audit record
//     lost), "cancelled", "orphaned" (owner vanished before persistence)
var BulkSendsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bulk_sends_total",
		Help:      "Total number of bulk-send runs, by result.",
	},
	[]string{"result"},
)

// PreflightChecksTotal counts SMTP pre-flight decisions.
// Label:
//   - result: "ok", "failed", "cached"
var PreflightChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "preflight_checks_total",
		Help:      "Total number of SMTP pre-flight checks, by result.",
	},
	[]string{"result"},
)

// SendDuration measures one SMTP session end-to-end (dial to quit).
var SendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "send_duration_seconds",
		Help:      "Duration of a single SMTP delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// BulkRecipients tracks how many recipients each bulk run carries.
var BulkRecipients = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "bulk_recipients",
		Help:      "Number of parsed recipients per bulk-send run.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
	},
)

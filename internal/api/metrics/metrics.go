// Package metrics defines and registers all custom Prometheus metrics for the
// customer portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto
// at package load; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "validation_failed", "rejected", "profile_failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout requests. Logout never fails, so there is no
// result label.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout requests.",
	},
)

// GatekeeperDecisionsTotal counts edge authorization decisions.
// Labels:
//   - class: route classification ("public", "protected", "restricted")
//   - outcome: "allow", "redirect_login", "redirect_landing"
var GatekeeperDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gatekeeper_decisions_total",
		Help:      "Total number of gatekeeper decisions, by route class and outcome.",
	},
	[]string{"class", "outcome"},
)

// SessionReadsTotal counts session store reads at the edge.
// Label:
//   - result: "ok" or "none" (absent, malformed, expired and revoked all
//     count as "none" — the store does not distinguish them)
var SessionReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_reads_total",
		Help:      "Total number of session reads, by result.",
	},
	[]string{"result"},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// ERP client. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init;
// embedding applications can expose them through their own /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "erpclient"

// ── Session lifecycle metrics ─────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ForcedLogoutsTotal counts logouts the client imposed on itself, as opposed
// to user-initiated ones.
// Label:
//   - reason: "profile_fetch_failed" or "unauthorized_response"
var ForcedLogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of logouts forced by session invalidation.",
	},
	[]string{"reason"},
)

// CompanySwitchesTotal counts active-company changes.
// Label:
//   - result: "success" or "failure"
var CompanySwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "company_switches_total",
		Help:      "Total number of active-company switch attempts, by result.",
	},
	[]string{"result"},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// GuardDecisionsTotal counts navigation-guard outcomes.
// Label:
//   - decision: "proceed" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of navigation guard evaluations, by decision.",
	},
	[]string{"decision"},
)

// ── Transport metrics ─────────────────────────────────────────────────────────

// RequestDuration measures outbound gateway calls end-to-end, as observed by
// the auth interceptor.
// Labels:
//   - path: the request path
//   - status: numeric HTTP status, or "error" when the transport failed
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound API requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"path", "status"},
)

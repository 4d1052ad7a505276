// Package metrics defines all custom Prometheus metrics for the ledgerkeep
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledgerkeep"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "not_found", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RefreshesTotal counts refresh-token exchanges by outcome.
// Label:
//   - result: "success", "invalid", "expired"
var RefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshes_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// AccessTokensIssuedTotal counts successfully issued access tokens.
var AccessTokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AuthzDenialsTotal counts authorization denials.
// Label:
//   - reason: "forbidden", "invalid_role", "last_admin", "unauthenticated"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by reason.",
	},
	[]string{"reason"},
)

// SessionsRevokedTotal counts refresh sessions revoked via logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of refresh sessions revoked by logout.",
	},
)

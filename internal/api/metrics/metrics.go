// Package metrics defines and registers the custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at init via promauto; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

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

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// TokenVerificationsTotal counts access-gate token checks.
// Label:
//   - result: "success", "missing", "invalid", or "unknown_user"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// CatalogWritesTotal counts successful catalog mutations.
// Labels:
//   - entity: "brand", "type", "model", "year", "category", "feature", "spec", "price"
//   - op: "create", "update", or "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of successful catalog mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// PriceCacheTotal counts price list cache decisions.
// Label:
//   - result: "hit" or "miss"
var PriceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_cache_total",
		Help:      "Total number of price page cache lookups, by result.",
	},
	[]string{"result"},
)

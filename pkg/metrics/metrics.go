// Package metrics registers the service-level Prometheus collectors. All
// collectors use the default registry and are served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WagersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "wagers_total",
		Help:      "Settled wagers by game and result.",
	}, []string{"game", "result"})

	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "payments_total",
		Help:      "Payment notifications by outcome (applied, replayed, failed).",
	}, []string{"outcome"})

	ReconcileDrift = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "casino",
		Name:      "reconcile_drift_accounts",
		Help:      "Accounts whose ledger sum diverged from the stored balance in the last sweep.",
	})

	ReconcileRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "reconcile_runs_total",
		Help:      "Completed reconciliation sweeps.",
	})
)

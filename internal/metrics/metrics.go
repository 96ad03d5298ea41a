package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the service-level counters exposed on /metrics.
type Metrics struct {
	GamesCreated   prometheus.Counter
	GamesResolved  *prometheus.CounterVec
	DaresCreated   prometheus.Counter
	ClaimConflicts prometheus.Counter
	BlockedDenials prometheus.Counter
}

// M is the singleton set of registered metrics; call Init before use.
var M *Metrics

func Init(namespace string) {
	M = &Metrics{
		GamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Total number of switch games created",
		}),
		GamesResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_resolved_total",
			Help:      "Total number of switch games resolved, by outcome",
		}, []string{"outcome"}),
		DaresCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dares_created_total",
			Help:      "Total number of dares created",
		}),
		ClaimConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claim_conflicts_total",
			Help:      "Total number of claim or join attempts that lost a race",
		}),
		BlockedDenials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_denials_total",
			Help:      "Total number of actions denied by the block guard",
		}),
	}

	prometheus.MustRegister(
		M.GamesCreated,
		M.GamesResolved,
		M.DaresCreated,
		M.ClaimConflicts,
		M.BlockedDenials,
	)
}

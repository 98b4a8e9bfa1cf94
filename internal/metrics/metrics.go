package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "battleship"

const (
	ShotOutcomeHit     = "hit"
	ShotOutcomeMiss    = "miss"
	ShotOutcomeIgnored = "ignored"
)

// Collector exposes engine activity of the server. All
// methods are safe to call on a nil *Collector, which is
// what the request processor holds when metrics are off.
type Collector struct {
	enginesCreated prometheus.Counter
	shots          *prometheus.CounterVec
	shipsSunk      prometheus.Counter
	gamesWon       prometheus.Counter
	activeSessions prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		enginesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engines_created_total",
			Help:      "Number of battleship engines created.",
		}),
		shots: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shots_total",
			Help:      "Number of shots taken by outcome.",
		}, []string{"outcome"}),
		shipsSunk: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ships_sunk_total",
			Help:      "Number of ships sunk.",
		}),
		gamesWon: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_won_total",
			Help:      "Number of games where the whole fleet was sunk.",
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of open websocket sessions.",
		}),
	}
}

func (c *Collector) RecordEngineCreated() {
	if c == nil {
		return
	}
	c.enginesCreated.Inc()
}

func (c *Collector) RecordShot(outcome string) {
	if c == nil {
		return
	}
	c.shots.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordShipSunk() {
	if c == nil {
		return
	}
	c.shipsSunk.Inc()
}

func (c *Collector) RecordGameWon() {
	if c == nil {
		return
	}
	c.gamesWon.Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.activeSessions.Set(float64(n))
}

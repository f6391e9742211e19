package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	keeperResumes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "keeper",
		Name:      "resumes_total",
		Help:      "Count of pending order resumes by status.",
	}, []string{"status"})
	keeperPending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "keeper",
		Name:      "pending_orders",
		Help:      "Pending orders seen by the last tick.",
	})
	keeperLastTick = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "keeper",
		Name:      "last_tick_timestamp_seconds",
		Help:      "Unix time of the last completed tick.",
	})
)

// Keeper implements the keeper metrics.
type Keeper struct{}

func NewKeeper() *Keeper {
	return &Keeper{}
}

func (Keeper) ObserveResume(err error) {
	keeperResumes.WithLabelValues(statusLabel(err)).Inc()
}

func (Keeper) ObserveTick(pending int, at time.Time) {
	keeperPending.Set(float64(pending))
	keeperLastTick.Set(float64(at.Unix()))
}

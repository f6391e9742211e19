package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "balance",
		Name:      "settlements_total",
		Help:      "Count of balance settlement waits by result.",
	}, []string{"result"})
	settleAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "balance",
		Name:      "settlement_attempts",
		Help:      "Balance reads used by one settlement wait.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
	settleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "balance",
		Name:      "settlement_duration_seconds",
		Help:      "Duration of balance settlement waits.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// Balance implements the settlement tracker metrics.
type Balance struct{}

func NewBalance() *Balance {
	return &Balance{}
}

func (Balance) ObserveSettle(settled bool, attempts int, started time.Time) {
	result := "abandoned"
	if settled {
		result = "settled"
	}
	settleTotal.WithLabelValues(result).Inc()
	settleAttempts.Observe(float64(attempts))
	settleDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	senderOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sender",
		Name:      "outcomes_total",
		Help:      "Count of transaction outcomes by tag kind.",
	}, []string{"tag", "outcome", "failure"})
	senderConfirmDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sender",
		Name:      "confirm_duration_seconds",
		Help:      "Time from broadcast to a terminal outcome.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"tag", "outcome"})
	senderRebroadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sender",
		Name:      "rebroadcasts_total",
		Help:      "Count of rebroadcasts of already signed payloads.",
	}, []string{"tag", "status"})
)

// Sender implements the confirmation engine metrics.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (Sender) ObserveRebroadcast(tag txn.Tag, err error) {
	senderRebroadcastTotal.WithLabelValues(tagLabel(tag), statusLabel(err)).Inc()
}

func (Sender) ObserveOutcome(outcome txn.Outcome, started time.Time) {
	tag := tagLabel(outcome.Tag)
	status := outcome.Status.String()
	senderOutcomesTotal.WithLabelValues(tag, status, string(outcome.Kind)).Inc()
	senderConfirmDuration.WithLabelValues(tag, status).Observe(time.Since(started).Seconds())
}

// tagLabel keeps label cardinality bounded: assets and indexes are dropped.
func tagLabel(tag txn.Tag) string {
	if tag.IsZero() {
		return "none"
	}
	return tag.Kind.String()
}

// Package metrics exposes form submission lifecycles as Prometheus
// instruments. A Collector satisfies form.Observer; register it once per
// process and hand it to the form registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-formflow/pkg/form"
)

const namespace = "formflow"

// Collector counts submissions by form and outcome and records their
// duration.
type Collector struct {
	inFlight    *prometheus.GaugeVec
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ form.Observer = (*Collector)(nil)

// New creates the instruments and registers them with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "submissions_in_flight",
				Help:      "Number of submissions currently waiting for a response.",
			}, []string{"form"}),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Cumulative number of completed submissions by outcome.",
			}, []string{"form", "outcome"}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "submission_duration_seconds",
				Help:      "Time from submit to the end of the finalizer.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"form", "outcome"}),
	}
	for _, collector := range []prometheus.Collector{c.inFlight, c.submissions, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is New that panics on registration errors.
func MustNew(reg prometheus.Registerer) *Collector {
	c, err := New(reg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collector) SubmitStarted(formName string) {
	c.inFlight.WithLabelValues(formName).Inc()
}

func (c *Collector) SubmitFinished(formName string, outcome form.Outcome, elapsed time.Duration) {
	c.inFlight.WithLabelValues(formName).Dec()
	c.submissions.WithLabelValues(formName, outcome.String()).Inc()
	c.duration.WithLabelValues(formName, outcome.String()).Observe(elapsed.Seconds())
}

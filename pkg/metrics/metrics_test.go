package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-formflow/pkg/form"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c.SubmitStarted("ContactForm")
	if got := testutil.ToFloat64(c.inFlight.WithLabelValues("ContactForm")); got != 1 {
		t.Fatalf("in flight = %v", got)
	}
	c.SubmitFinished("ContactForm", form.OutcomeSucceeded, 150*time.Millisecond)
	c.SubmitStarted("ContactForm")
	c.SubmitFinished("ContactForm", form.OutcomeConnectionFailed, time.Second)

	if got := testutil.ToFloat64(c.inFlight.WithLabelValues("ContactForm")); got != 0 {
		t.Fatalf("in flight = %v", got)
	}
	if got := testutil.ToFloat64(c.submissions.WithLabelValues("ContactForm", "succeeded")); got != 1 {
		t.Fatalf("succeeded = %v", got)
	}
	if got := testutil.ToFloat64(c.submissions.WithLabelValues("ContactForm", "connection_failed")); got != 1 {
		t.Fatalf("connection_failed = %v", got)
	}
	if got := testutil.CollectAndCount(c.duration); got != 2 {
		t.Fatalf("histogram series = %d", got)
	}
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

package form

import (
	"time"

	"go.uber.org/zap"
)

// Observer is notified around every submission cycle. Implementations must
// be safe for concurrent use by several instances.
type Observer interface {
	SubmitStarted(form string)
	SubmitFinished(form string, outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) SubmitStarted(string)                          {}
func (nopObserver) SubmitFinished(string, Outcome, time.Duration) {}

// LogObserver writes the lifecycle to a zap logger.
type LogObserver struct {
	Logger *zap.Logger
}

func (o LogObserver) SubmitStarted(form string) {
	o.logger().Debug("submit started", zap.String("form", form))
}

func (o LogObserver) SubmitFinished(form string, outcome Outcome, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("form", form),
		zap.Stringer("outcome", outcome),
		zap.Duration("elapsed", elapsed),
	}
	if outcome == OutcomeConnectionFailed {
		o.logger().Warn("submit finished", fields...)
		return
	}
	o.logger().Debug("submit finished", fields...)
}

func (o LogObserver) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Observers fans out to several observers in order.
type Observers []Observer

func (m Observers) SubmitStarted(form string) {
	for _, o := range m {
		if o != nil {
			o.SubmitStarted(form)
		}
	}
}

func (m Observers) SubmitFinished(form string, outcome Outcome, elapsed time.Duration) {
	for _, o := range m {
		if o != nil {
			o.SubmitFinished(form, outcome, elapsed)
		}
	}
}

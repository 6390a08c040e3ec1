package usecase

import (
	"time"

	"estimate_engine/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Option configures the ambient collaborators shared by every use case.
type Option func(*deps)

type deps struct {
	logger  *zap.Logger
	metrics interfaces.IMetrics
	now     func() time.Time
}

func WithLogger(l *zap.Logger) Option {
	return func(d *deps) {
		if l != nil {
			d.logger = l
		}
	}
}

func WithMetrics(m interfaces.IMetrics) Option {
	return func(d *deps) {
		if m != nil {
			d.metrics = m
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *deps) {
		if now != nil {
			d.now = now
		}
	}
}

func newDeps(opts []Option) deps {
	d := deps{
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

type noopMetrics struct{}

func (noopMetrics) ObservePayment(string, float64)   {}
func (noopMetrics) ObserveTransition(string, string) {}

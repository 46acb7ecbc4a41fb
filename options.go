package mediator

import "log/slog"

// Option configures a Mediator.
type Option func(*Mediator)

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mediator) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithStrict makes Publish and Remove report misses as errors instead of
// silently doing nothing.
func WithStrict(strict bool) Option {
	return func(m *Mediator) {
		m.strict = strict
	}
}

// WithDelimiter sets the namespace hierarchy delimiter. Values that are not a
// single character are ignored; use NewFromConfig to get them rejected.
func WithDelimiter(d string) Option {
	return func(m *Mediator) {
		if validDelimiter(d) {
			m.delimiter = d
		}
	}
}

// WithIDGenerator sets the subscriber identifier generator. Nil is ignored.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Mediator) {
		if g != nil {
			m.newID = g
		}
	}
}

// WithMetricsCallback registers fn to observe subscriber count changes on every channel.
func WithMetricsCallback(fn MetricsCallback) Option {
	return func(m *Mediator) {
		m.metrics = fn
	}
}

package probemap

import "fmt"

type options struct {
	minSize  int
	growAt   int
	shrinkAt int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures Table construction.
type Option func(*options)

// WithMinSize configures the minimum base size of the table. Must be at
// least 2. The actual bucket count is the next prime at or above it.
// Shrinking never goes below the minimum.
func WithMinSize(n int) Option {
	return func(o *options) {
		o.minSize = n
	}
}

// WithGrowAt configures the load-factor percentage above which an insert
// grows the table first.
func WithGrowAt(pct int) Option {
	return func(o *options) {
		o.growAt = pct
	}
}

// WithShrinkAt configures the load-factor percentage below which a delete
// shrinks the table first. Must stay below the grow threshold; the gap
// between the two is the hysteresis that keeps small tables from bouncing
// between sizes.
func WithShrinkAt(pct int) Option {
	return func(o *options) {
		o.shrinkAt = pct
	}
}

// WithLogger configures structured logging for table operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		minSize:  DefaultMinSize,
		growAt:   DefaultGrowAt,
		shrinkAt: DefaultShrinkAt,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.minSize < 2 {
		return options{}, fmt.Errorf("%w: got %d", ErrInvalidMinSize, o.minSize)
	}
	if o.shrinkAt < 0 || o.shrinkAt >= o.growAt || o.growAt >= 100 {
		return options{}, fmt.Errorf("%w: got shrink %d, grow %d", ErrInvalidThresholds, o.shrinkAt, o.growAt)
	}

	return o, nil
}

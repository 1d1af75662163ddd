package fillbench

type options struct {
	logger    *Logger
	collector Collector
}

// Option configures Run.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithCollector sets the metrics collector. If nil is passed,
// NoopCollector is used.
func WithCollector(c Collector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopCollector{}
		}
		o.collector = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:    NoopLogger(),
		collector: NoopCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

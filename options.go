package simgo

import (
	"log/slog"

	"github.com/hupe1980/simgo/codec"
	"github.com/hupe1980/simgo/similarity"
)

type options struct {
	caseSensitive    bool
	stopWhitespace   bool
	stopWords        []string
	metric           similarity.Metric
	threshold        *float64 // nil means metric default
	codec            codec.Codec
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures an Engine at construction time.
//
// Options are independent and order-insensitive; each one sets a single
// named field. Invalid combinations are rejected by New with a
// descriptive error.
type Option func(*options)

// WithCaseSensitive sets whether the engine is case sensitive.
//
// Defaults to false: content and queries are lowercased before matching.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *options) {
		o.caseSensitive = caseSensitive
	}
}

// WithStopWhitespace sets whether tokenization splits on Unicode
// whitespace. The whitespace here includes tabs, returns and so forth.
//
// Defaults to true.
func WithStopWhitespace(stopWhitespace bool) Option {
	return func(o *options) {
		o.stopWhitespace = stopWhitespace
	}
}

// WithStopWords sets custom token stop words.
//
// Each stop word acts as an additional token separator and is removed
// from the tokens, applied in the given order:
//
//	engine, _ := simgo.New[uint32](simgo.WithStopWords("/", "\\"))
//	engine.Insert(1, "the old/man/and/the sea")
//	engine.Search("old") // => [1]
//
// Defaults to none.
func WithStopWords(stopWords ...string) Option {
	return func(o *options) {
		o.stopWords = stopWords
	}
}

// WithThreshold sets the score threshold for search matching.
//
// Only vocabulary tokens whose similarity to a query token is strictly
// greater than the threshold contribute to scoring. Must be within
// [0, 1].
//
// Defaults to the metric's recommended threshold (0.8 for Jaro-Winkler,
// 0.7 for Levenshtein).
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = &threshold
	}
}

// WithMetric sets the token similarity metric.
//
// MetricJaroWinkler (the default) is correct for arbitrary Unicode text.
// MetricLevenshtein compares raw bytes with a bounded edit distance and
// is only exact for ASCII content; see similarity.MetricLevenshtein.
func WithMetric(metric similarity.Metric) Option {
	return func(o *options) {
		o.metric = metric
	}
}

// WithCodec configures the codec used for snapshot state sections.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := simgo.NewJSONLogger(slog.LevelInfo)
//	engine, _ := simgo.New[uint32](simgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
//
//	metrics := &simgo.BasicMetricsCollector{}
//	engine, _ := simgo.New[uint32](simgo.WithMetricsCollector(metrics))
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		stopWhitespace:   true,
		metric:           similarity.MetricJaroWinkler,
		codec:            codec.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

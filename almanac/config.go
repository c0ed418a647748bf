package almanac

import "go.uber.org/zap"

type Config struct {
	Logger *zap.Logger

	// Coalesce merges touching and overlapping intervals between stages. It does
	// not change any answer, it only bounds the number of intervals in flight.
	Coalesce bool

	// Workers is the number of goroutines used to push seed intervals through the
	// pipeline. Values <= 1 run everything on the calling goroutine. With more
	// workers the location intervals of different seed intervals are not
	// coalesced with each other, which is fine for finding the lowest location.
	Workers int
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		Logger:   zap.NewNop(),
		Coalesce: true,
		Workers:  1,
	}
}

func newConfig(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func WithCoalesce(coalesce bool) Option {
	return func(c *Config) {
		c.Coalesce = coalesce
	}
}

func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

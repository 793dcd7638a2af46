package engine

import (
	"log/slog"
	"time"
)

// Clock abstracts the wall clock. The configured Clock is stored in the
// Validator's configuration, but no engine code path reads it: skolem IRIs
// are derived from graph IRIs and blank-node labels alone.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Validator, following the teacher's
// instance.ValidatorOption / schema/build.Builder fluent-functional-option
// style.
type Option func(*config)

type config struct {
	logger          *slog.Logger
	maxIssues       int
	withoutOptimizer bool
	skolemNamespace string
	clock           Clock
}

func defaultConfig() *config {
	return &config{
		maxIssues: 0, // unlimited
		clock:     systemClock{},
	}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithLogger provides a structured logger for parse/optimise/validate
// diagnostics. If not provided, the parser, the optimiser and the
// validation driver each log to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxIssues caps the number of results Validate returns: the run
// completes, then the result list is cut to its first n entries. Zero
// (the default) means unlimited.
func WithMaxIssues(n int) Option {
	return func(c *config) { c.maxIssues = n }
}

// WithoutOptimizer skips the optimize.Run pass, useful for isolating
// optimiser bugs by comparing validation output with and without it.
func WithoutOptimizer() Option {
	return func(c *config) { c.withoutOptimizer = true }
}

// WithSkolemNamespace overrides the namespace seed New passes to
// skolem.SkolemizeWithNamespace when it skolemises the data graph
// (default: the shapes graph IRI).
func WithSkolemNamespace(ns string) Option {
	return func(c *config) { c.skolemNamespace = ns }
}

// WithClock sets the Clock stored in the Validator's configuration; see
// Clock.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

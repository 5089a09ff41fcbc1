package operation

import (
	"slices"

	"github.com/go-logr/logr"
	metrics "github.com/rcrowley/go-metrics"
)

// Defaults.
const (
	// DefaultParallelism runs operator-dimension terms sequentially.
	DefaultParallelism = 1

	// DefaultSamples is the Monte Carlo sample count.
	DefaultSamples = 10000

	// DefaultSeed seeds the Monte Carlo generator.
	DefaultSeed uint64 = 1
)

const (
	panicParallelism = "operation: WithParallelism: n must be >= 1"
	panicSamples     = "operation: WithSamples: n must be >= 1"
)

// Option configures an operation.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	log      logr.Logger
	registry metrics.Registry
	order    []int
	coefs    []float64
	parallel int
	samples  int
	seed     uint64
}

func defaultOptions() Options {
	return Options{
		log:      logr.Discard(),
		registry: metrics.DefaultRegistry,
		parallel: DefaultParallelism,
		samples:  DefaultSamples,
		seed:     DefaultSeed,
	}
}

func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithMetrics sets the registry call timers are registered in. A nil
// registry keeps metrics.DefaultRegistry.
func WithMetrics(r metrics.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithDimensionOrder sets the order of hierarchisation passes. The order is
// validated against the grid dimension at construction.
func WithDimensionOrder(order []int) Option {
	cp := slices.Clone(order)
	return func(o *Options) { o.order = cp }
}

// WithCoefficients weights the per-dimension terms of Laplace and
// x-weighted mass operators. Validated against the grid dimension at
// construction.
func WithCoefficients(c []float64) Option {
	cp := slices.Clone(c)
	return func(o *Options) { o.coefs = cp }
}

// WithParallelism bounds the number of operator-dimension terms computed
// concurrently. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelism)
	}
	return func(o *Options) { o.parallel = n }
}

// WithSamples sets the Monte Carlo sample count. Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic(panicSamples)
	}
	return func(o *Options) { o.samples = n }
}

// WithSeed seeds the Monte Carlo generator.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

package solver

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxIterations bounds the deduction loop when no option overrides it.
const DefaultMaxIterations = 10

// Option configures a Solver.
type Option func(*options)

type options struct {
	maxIterations int
	lexico        bool
	logger        *zap.Logger
}

// WithMaxIterations caps the number of loop iterations. Panics if n < 1.
// At most n iterations run; the n-th is the last one started.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("solver: WithMaxIterations: n must be ≥ 1, got %d", n))
	}

	return func(o *options) { o.maxIterations = n }
}

// WithLexicographic toggles symmetry breaking on sorted hidden traits.
// It is on by default.
func WithLexicographic(on bool) Option {
	return func(o *options) { o.lexico = on }
}

// WithLogger routes pass diagnostics to l. A nil logger keeps the default no-op.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		lexico:        true,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

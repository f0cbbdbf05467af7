package catalog

// Defaults for Memory construction.
const (
	// DefaultMinSetSize is the smallest trait combination indexed.
	DefaultMinSetSize = 2

	// DefaultMaxSetSize is the largest trait combination indexed.
	DefaultMaxSetSize = 5
)

const (
	panicSetSizeInvalid = "catalog: WithSetSize: need 1 <= min <= max"
	panicRarityInvalid  = "catalog: WithRarity: need 0 <= min <= max"
)

// Option configures Memory construction.
type Option func(*options)

type options struct {
	minSetSize int
	maxSetSize int
	minRarity  int
	maxRarity  int // 0 = unbounded
}

// WithSetSize bounds the size of indexed trait combinations.
// Panics when the bounds are nonsensical (programmer error).
func WithSetSize(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(panicSetSizeInvalid)
	}

	return func(o *options) { o.minSetSize, o.maxSetSize = lo, hi }
}

// WithRarity keeps only crew whose rarity lies in [lo, hi].
// hi == 0 leaves the upper end unbounded.
func WithRarity(lo, hi int) Option {
	if lo < 0 || hi < 0 || (hi > 0 && hi < lo) {
		panic(panicRarityInvalid)
	}

	return func(o *options) { o.minRarity, o.maxRarity = lo, hi }
}

func gatherOptions(opts ...Option) options {
	o := options{minSetSize: DefaultMinSetSize, maxSetSize: DefaultMaxSetSize}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) rarityAllowed(r int) bool {
	if r < o.minRarity {
		return false
	}

	return o.maxRarity == 0 || r <= o.maxRarity
}

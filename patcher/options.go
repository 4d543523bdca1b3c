package patcher

// DefaultMaxDepth bounds nesting when building patchers.
const DefaultMaxDepth = 16

// DefaultMaxCount bounds the length of slices allocated by Apply.
const DefaultMaxCount = 1 << 24

// Option configures how patchers are built.
type Option func(*buildConfig)

type buildConfig struct {
	filters  []FieldPredicate
	maxDepth int
	maxCount int
}

func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{maxDepth: DefaultMaxDepth, maxCount: DefaultMaxCount}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFieldFilter adds a predicate a field must satisfy, in addition to
// IsSerializable, to be given a patcher.
func WithFieldFilter(p FieldPredicate) Option {
	return func(c *buildConfig) {
		if p != nil {
			c.filters = append(c.filters, p)
		}
	}
}

// WithMaxDepth sets how many levels of nested structs and collections are
// built below the root: with n levels, the fields of the root are at level 1
// and fields at level n+1 are dropped with ErrDepth.
func WithMaxDepth(n int) Option {
	return func(c *buildConfig) {
		c.maxDepth = n
	}
}

// WithMaxCount sets the largest Count for which Apply allocates a nil
// slice. Collection nodes declaring more elements are skipped.
func WithMaxCount(n int) Option {
	return func(c *buildConfig) {
		c.maxCount = n
	}
}

func (c *buildConfig) serializable(f Field) bool {
	if !IsSerializable(f) {
		return false
	}
	for _, p := range c.filters {
		if !p(f) {
			return false
		}
	}
	return true
}

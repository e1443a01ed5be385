package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label.
type IDFn func(idx int) string

// DecimalIDFn labels vertices "1", "2", ... like core.GenerateNodes.
func DecimalIDFn(idx int) string { return strconv.Itoa(idx + 1) }

// SymbolIDFn labels vertices "A".."Z". Presets never exceed 20 vertices.
func SymbolIDFn(idx int) string { return string(rune('A' + idx)) }

// WeightFn draws one positive edge weight.
type WeightFn func(rng *rand.Rand) int64

// UniformWeightFn draws integers uniformly from [lo, hi]. Bounds below 1
// are raised to 1 and hi < lo collapses to lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}

	return func(rng *rand.Rand) int64 {
		if hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}

// ConstantWeightFn always returns w (at least 1).
func ConstantWeightFn(w int64) WeightFn { return UniformWeightFn(w, w) }

const (
	defaultSeed      = int64(1)
	defaultMinWeight = int64(1)
	defaultMaxWeight = int64(9)
)

// builderConfig is resolved once per BuildInput call.
type builderConfig struct {
	idFn     IDFn
	labelled bool // idFn was set explicitly; emit Nodes instead of NodeCount
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption configures BuildInput.
type BuilderOption func(*builderConfig)

// WithSeed fixes the random source used for weights and random topologies.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme labels vertices with fn. The input then lists Nodes.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
			c.labelled = true
		}
	}
}

// WithWeightFn sets the weight policy for weighted algorithms.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DecimalIDFn,
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightFn: UniformWeightFn(defaultMinWeight, defaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

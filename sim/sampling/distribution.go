// Package sampling provides the random draws used by the cascade pipeline:
// categorical choices, discrete supports, piecewise-uniform segments and
// Bernoulli trials. Every sampler takes the *rand.Rand to draw from
// explicitly; none of them owns random state.
package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// SumTolerance is the absolute tolerance used when checking that weights sum to 1.
const SumTolerance = 1e-9

var (
	// ErrInvalidDistribution reports weights that are empty, negative,
	// non-finite, or do not sum to 1.
	ErrInvalidDistribution = errors.New("invalid probability distribution")

	// ErrLengthMismatch reports a support and weight vector of different lengths.
	ErrLengthMismatch = errors.New("support and probability length mismatch")

	// ErrInvalidSegmentBounds reports onset segments that do not tile [0, horizon).
	ErrInvalidSegmentBounds = errors.New("invalid segment bounds")
)

// CheckDistribution verifies that weights form a probability distribution.
func CheckDistribution(weights []float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: no weights", ErrInvalidDistribution)
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight[%d] must be finite, got %f", ErrInvalidDistribution, i, w)
		}
		if w < 0 {
			return fmt.Errorf("%w: weight[%d] must be non-negative, got %f", ErrInvalidDistribution, i, w)
		}
	}
	if sum := floats.Sum(weights); !scalar.EqualWithinAbs(sum, 1, SumTolerance) {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidDistribution, sum)
	}
	return nil
}

// CheckProbability verifies that p is a finite probability in [0, 1].
func CheckProbability(name string, p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %s must be in [0, 1], got %f", ErrInvalidDistribution, name, p)
	}
	return nil
}

// Bernoulli consumes one uniform draw and reports whether it fell below p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Categorical samples an index in [0, len(weights)) using inverse CDF via
// binary search. Zero-weight categories are never returned.
type Categorical struct {
	cdf []float64
}

// NewCategorical builds a Categorical from weights that must sum to 1.
func NewCategorical(weights []float64) (*Categorical, error) {
	if err := CheckDistribution(weights); err != nil {
		return nil, err
	}
	cdf := make([]float64, len(weights))
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		cdf[i] = cumulative
	}
	// Rounding can leave the last entry a hair below 1.0.
	cdf[len(cdf)-1] = 1.0
	return &Categorical{cdf: cdf}, nil
}

// Len returns the number of categories.
func (c *Categorical) Len() int {
	return len(c.cdf)
}

// Sample consumes one uniform draw u and returns the first index whose
// cumulative weight exceeds u.
func (c *Categorical) Sample(rng *rand.Rand) int {
	u := rng.Float64()
	return sort.Search(len(c.cdf), func(i int) bool { return c.cdf[i] > u })
}

// Discrete samples from a finite support of values with categorical weights.
type Discrete struct {
	support []float64
	weights *Categorical
}

// NewDiscrete pairs support values with their probabilities.
func NewDiscrete(support, probs []float64) (*Discrete, error) {
	if len(support) != len(probs) {
		return nil, fmt.Errorf("%w: %d values, %d probabilities", ErrLengthMismatch, len(support), len(probs))
	}
	for i, v := range support {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: support[%d] must be finite and non-negative, got %f", ErrInvalidDistribution, i, v)
		}
	}
	cat, err := NewCategorical(probs)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(support))
	copy(values, support)
	return &Discrete{support: values, weights: cat}, nil
}

// Sample consumes one uniform draw and returns a support value.
func (d *Discrete) Sample(rng *rand.Rand) float64 {
	return d.support[d.weights.Sample(rng)]
}

// Expect returns E[f(X)] over the support.
func (d *Discrete) Expect(f func(float64) float64) float64 {
	total := 0.0
	prev := 0.0
	for i, v := range d.support {
		total += (d.weights.cdf[i] - prev) * f(v)
		prev = d.weights.cdf[i]
	}
	return total
}

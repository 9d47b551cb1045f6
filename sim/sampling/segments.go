package sampling

import (
	"fmt"
	"math"
	"math/rand"
)

// Interval is a half-open time range [Lo, Hi) in hours.
type Interval struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Contains reports whether x lies in [Lo, Hi).
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lo && x < iv.Hi
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// Segments is a piecewise-uniform distribution: a categorical choice of
// segment followed by a uniform draw inside it. Segments tile [0, Horizon()).
type Segments struct {
	bounds []Interval
	choice *Categorical
}

// NewSegments validates that bounds are contiguous, start at 0 and have
// positive width, and that weights form a distribution over them.
func NewSegments(weights []float64, bounds []Interval) (*Segments, error) {
	if len(weights) != len(bounds) {
		return nil, fmt.Errorf("%w: %d segment weights, %d segment bounds", ErrLengthMismatch, len(weights), len(bounds))
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidSegmentBounds)
	}
	if bounds[0].Lo != 0 {
		return nil, fmt.Errorf("%w: first segment must start at 0, got %f", ErrInvalidSegmentBounds, bounds[0].Lo)
	}
	for i, b := range bounds {
		if math.IsNaN(b.Lo) || math.IsNaN(b.Hi) || math.IsInf(b.Hi, 0) {
			return nil, fmt.Errorf("%w: segment[%d] must be finite", ErrInvalidSegmentBounds, i)
		}
		if b.Hi <= b.Lo {
			return nil, fmt.Errorf("%w: segment[%d] [%v, %v) has non-positive width", ErrInvalidSegmentBounds, i, b.Lo, b.Hi)
		}
		if i > 0 && b.Lo != bounds[i-1].Hi {
			kind := "gap"
			if b.Lo < bounds[i-1].Hi {
				kind = "overlap"
			}
			return nil, fmt.Errorf("%w: %s between segment[%d] ending at %v and segment[%d] starting at %v",
				ErrInvalidSegmentBounds, kind, i-1, bounds[i-1].Hi, i, b.Lo)
		}
	}
	choice, err := NewCategorical(weights)
	if err != nil {
		return nil, err
	}
	cp := make([]Interval, len(bounds))
	copy(cp, bounds)
	return &Segments{bounds: cp, choice: choice}, nil
}

// Horizon returns the upper bound of the last segment.
func (s *Segments) Horizon() float64 {
	return s.bounds[len(s.bounds)-1].Hi
}

// Sample consumes two uniform draws: the segment index, then the position
// inside that segment.
func (s *Segments) Sample(rng *rand.Rand) float64 {
	b := s.bounds[s.choice.Sample(rng)]
	return b.Lo + rng.Float64()*b.Width()
}

// CDF returns P(X < x).
func (s *Segments) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	total := 0.0
	prev := 0.0
	for i, b := range s.bounds {
		w := s.choice.cdf[i] - prev
		prev = s.choice.cdf[i]
		switch {
		case x >= b.Hi:
			total += w
		case b.Contains(x):
			total += w * (x - b.Lo) / b.Width()
		}
	}
	return math.Min(total, 1)
}

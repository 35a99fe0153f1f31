// Package rng provides the bounded and weighted random draws used by the
// mock universe generator. Every draw flows through a seedable source so
// generation runs are reproducible in tests.
package rng

import "math/rand"

type Rand struct {
	src *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0,1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// IntBetween returns a uniform integer in [min, max], bounds inclusive.
func (r *Rand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max).
func (r *Rand) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.src.Float64()*(max-min)
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool {
	return r.src.Float64() < p
}

// Choice returns a uniform pick from items. Panics on an empty slice; the
// caller must guard.
func Choice[T any](r *Rand, items []T) T {
	return items[r.src.Intn(len(items))]
}

// Subset returns n distinct elements of items in shuffled order. When n
// exceeds the catalog it returns a full shuffle.
func Subset[T any](r *Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	r.src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// WeightedChoice draws one option given weights summing to ~1.0. It walks the
// cumulative weights against a uniform draw in [0,1) and returns the first
// bucket whose cumulative sum meets the draw. Floating-point shortfall falls
// through to the last option, so a valid option is always returned.
func (r *Rand) WeightedChoice(options []string, weights []float64) string {
	draw := r.src.Float64()
	cumulative := 0.0
	for i, opt := range options {
		cumulative += weights[i]
		if draw <= cumulative {
			return opt
		}
	}
	return options[len(options)-1]
}

// Pricing status and trend bucket weights are part of the generator's
// contract; downstream analyzers assume these proportions.
var (
	PricingStatusOptions = []string{"optimal", "underpriced", "overpriced"}
	PricingStatusWeights = []float64{0.60, 0.25, 0.15}

	TrendOptions = []string{"increasing", "stable", "declining"}
	TrendWeights = []float64{0.30, 0.50, 0.20}
)

// PricingStatus rolls the fixed optimal/underpriced/overpriced buckets.
func (r *Rand) PricingStatus() string {
	return r.WeightedChoice(PricingStatusOptions, PricingStatusWeights)
}

// Trend rolls the fixed increasing/stable/declining buckets.
func (r *Rand) Trend() string {
	return r.WeightedChoice(TrendOptions, TrendWeights)
}

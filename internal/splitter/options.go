package splitter

// Options configures one Splitter instance. Supplied at construction and
// immutable for the instance's lifetime.
type Options struct {
	// Weights overrides per-category base weights. Nil means defaults.
	Weights map[Category]float64

	// Scoring mixture coefficients.
	Alpha float64 // semantic term
	Beta  float64 // balance term
	Gamma float64 // density term
	Delta float64 // depth term

	// DensityCap is the local-density value mapped to a zero density term.
	DensityCap float64
	// DensityWindow is the character window around a node used to measure
	// local token density.
	DensityWindow int

	// Size and ratio constraints for valid splits.
	MinPrefixChars int
	MinSuffixChars int
	MinRatio       float64
	MaxRatio       float64

	// MinLines is the minimum document length worth splitting.
	MinLines int

	// Strategy selects among valid candidates. Nil picks the language
	// default: UniformRandomValid for python, HighestScore otherwise.
	Strategy SelectionStrategy

	// Seed for the random source used by UniformRandomValid. Zero means
	// a time-derived seed.
	Seed int64

	// Cache, when non-nil, memoizes extraction results by content hash.
	// Owned by the caller so tests and workers get isolated instances.
	Cache *ExtractionCache
}

// DefaultOptions returns the stock engine configuration.
func DefaultOptions() Options {
	return Options{
		Alpha:          1.0,
		Beta:           1.0,
		Gamma:          0.5,
		Delta:          0.3,
		DensityCap:     0.15,
		DensityWindow:  200,
		MinPrefixChars: 40,
		MinSuffixChars: 40,
		MinRatio:       0.08,
		MaxRatio:       0.92,
		MinLines:       3,
	}
}

// weight resolves a category's base weight under these options.
func (o Options) weight(c Category) float64 {
	if o.Weights != nil {
		if w, ok := o.Weights[c]; ok {
			return w
		}
	}
	return defaultWeights[c]
}

// maxWeight is the largest base weight across all categories, used to
// normalize the semantic term.
func (o Options) maxWeight() float64 {
	max := 0.0
	for c := range defaultWeights {
		if w := o.weight(c); w > max {
			max = w
		}
	}
	return max
}

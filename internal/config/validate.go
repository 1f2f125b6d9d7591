package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoefficients indicates a non-positive scoring mixture.
	ErrInvalidCoefficients = errors.New("invalid scoring coefficients")

	// ErrInvalidDensity indicates an invalid density cap or window.
	ErrInvalidDensity = errors.New("invalid density settings")

	// ErrInvalidLimits indicates invalid size floors.
	ErrInvalidLimits = errors.New("invalid size limits")

	// ErrInvalidRatio indicates an invalid split ratio range.
	ErrInvalidRatio = errors.New("invalid split ratio range")

	// ErrInvalidStrategy indicates an unknown selection strategy name.
	ErrInvalidStrategy = errors.New("invalid selection strategy")

	// ErrInvalidCacheSettings indicates invalid cache configuration.
	ErrInvalidCacheSettings = errors.New("invalid cache settings")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateScoring(&cfg.Scoring); err != nil {
		errs = append(errs, err)
	}
	if err := validateLimits(&cfg.Limits); err != nil {
		errs = append(errs, err)
	}
	if err := validateSelection(&cfg.Selection); err != nil {
		errs = append(errs, err)
	}
	if err := validateCache(&cfg.Cache); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateScoring(s *ScoringConfig) error {
	if s.Alpha < 0 || s.Beta < 0 || s.Gamma < 0 || s.Delta < 0 {
		return fmt.Errorf("%w: coefficients must be non-negative", ErrInvalidCoefficients)
	}
	if s.Alpha+s.Beta+s.Gamma+s.Delta <= 0 {
		return fmt.Errorf("%w: at least one coefficient must be positive", ErrInvalidCoefficients)
	}
	if s.DensityCap <= 0 {
		return fmt.Errorf("%w: density_cap must be positive", ErrInvalidDensity)
	}
	if s.DensityWindow <= 0 {
		return fmt.Errorf("%w: density_window must be positive", ErrInvalidDensity)
	}
	for name, weight := range s.Weights {
		if _, ok := categoryNames[name]; !ok {
			return fmt.Errorf("%w: unknown weight category %q", ErrInvalidCoefficients, name)
		}
		if weight <= 0 {
			return fmt.Errorf("%w: weight for %q must be positive", ErrInvalidCoefficients, name)
		}
	}
	return nil
}

func validateLimits(l *LimitsConfig) error {
	if l.MinPrefixChars <= 0 || l.MinSuffixChars <= 0 {
		return fmt.Errorf("%w: character floors must be positive", ErrInvalidLimits)
	}
	if l.MinLines < 2 {
		return fmt.Errorf("%w: min_lines must be at least 2", ErrInvalidLimits)
	}
	if l.MinRatio < 0 || l.MaxRatio > 1 || l.MinRatio >= l.MaxRatio {
		return fmt.Errorf("%w: need 0 <= min_ratio < max_ratio <= 1", ErrInvalidRatio)
	}
	return nil
}

func validateSelection(s *SelectionConfig) error {
	switch s.Strategy {
	case "", "highest-score", "uniform-random":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, s.Strategy)
	}
}

func validateCache(c *CacheConfig) error {
	if c.Enabled && c.MaxEntries <= 0 {
		return fmt.Errorf("%w: max_entries must be positive when enabled", ErrInvalidCacheSettings)
	}
	return nil
}

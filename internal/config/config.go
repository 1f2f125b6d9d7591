package config

import "github.com/mvp-joe/splitgen/internal/splitter"

// Config is the complete splitgen configuration. It can be loaded from
// .splitgen/config.yml with environment variable overrides.
type Config struct {
	Scoring   ScoringConfig   `yaml:"scoring" mapstructure:"scoring"`
	Limits    LimitsConfig    `yaml:"limits" mapstructure:"limits"`
	Selection SelectionConfig `yaml:"selection" mapstructure:"selection"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
}

// ScoringConfig holds the composite-score mixture and the per-category
// base weights.
type ScoringConfig struct {
	Alpha         float64            `yaml:"alpha" mapstructure:"alpha"`                   // semantic term
	Beta          float64            `yaml:"beta" mapstructure:"beta"`                     // balance term
	Gamma         float64            `yaml:"gamma" mapstructure:"gamma"`                   // density term
	Delta         float64            `yaml:"delta" mapstructure:"delta"`                   // depth term
	DensityCap    float64            `yaml:"density_cap" mapstructure:"density_cap"`       // density mapped to a zero term
	DensityWindow int                `yaml:"density_window" mapstructure:"density_window"` // chars around a node
	Weights       map[string]float64 `yaml:"weights" mapstructure:"weights"`               // category name -> base weight
}

// LimitsConfig bounds what counts as a legitimate split.
type LimitsConfig struct {
	MinPrefixChars int     `yaml:"min_prefix_chars" mapstructure:"min_prefix_chars"`
	MinSuffixChars int     `yaml:"min_suffix_chars" mapstructure:"min_suffix_chars"`
	MinRatio       float64 `yaml:"min_ratio" mapstructure:"min_ratio"`
	MaxRatio       float64 `yaml:"max_ratio" mapstructure:"max_ratio"`
	MinLines       int     `yaml:"min_lines" mapstructure:"min_lines"`
}

// SelectionConfig names the selection strategy and its random seed.
type SelectionConfig struct {
	Strategy string `yaml:"strategy" mapstructure:"strategy"` // "highest-score" or "uniform-random"
	Seed     int64  `yaml:"seed" mapstructure:"seed"`         // 0 means time-derived
}

// CacheConfig sizes the extraction cache.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" mapstructure:"enabled"`
	MaxEntries int  `yaml:"max_entries" mapstructure:"max_entries"`
}

// PathsConfig filters directory traversal.
type PathsConfig struct {
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// Default returns the stock configuration.
func Default() *Config {
	opts := splitter.DefaultOptions()
	return &Config{
		Scoring: ScoringConfig{
			Alpha:         opts.Alpha,
			Beta:          opts.Beta,
			Gamma:         opts.Gamma,
			Delta:         opts.Delta,
			DensityCap:    opts.DensityCap,
			DensityWindow: opts.DensityWindow,
		},
		Limits: LimitsConfig{
			MinPrefixChars: opts.MinPrefixChars,
			MinSuffixChars: opts.MinSuffixChars,
			MinRatio:       opts.MinRatio,
			MaxRatio:       opts.MaxRatio,
			MinLines:       opts.MinLines,
		},
		Selection: SelectionConfig{
			Strategy: "", // empty keeps the per-language default
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 100,
		},
		Paths: PathsConfig{
			Ignore: []string{
				"*_test.*",
				"*.min.js",
				".git",
				"node_modules",
				"vendor",
				"target",
				"__pycache__",
			},
		},
	}
}

// categoryNames maps configuration weight keys to categories.
var categoryNames = map[string]splitter.Category{
	"class":       splitter.ClassBoundary,
	"method":      splitter.MethodBoundary,
	"constructor": splitter.ConstructorBoundary,
	"field":       splitter.FieldBoundary,
	"control":     splitter.ControlBoundary,
	"statement":   splitter.StatementBoundary,
	"fallback":    splitter.Fallback,
}

// ToSplitterOptions converts the configuration into engine options. The
// cache, when non-nil, is owned by the caller.
func (c *Config) ToSplitterOptions(cache *splitter.ExtractionCache) splitter.Options {
	opts := splitter.Options{
		Alpha:          c.Scoring.Alpha,
		Beta:           c.Scoring.Beta,
		Gamma:          c.Scoring.Gamma,
		Delta:          c.Scoring.Delta,
		DensityCap:     c.Scoring.DensityCap,
		DensityWindow:  c.Scoring.DensityWindow,
		MinPrefixChars: c.Limits.MinPrefixChars,
		MinSuffixChars: c.Limits.MinSuffixChars,
		MinRatio:       c.Limits.MinRatio,
		MaxRatio:       c.Limits.MaxRatio,
		MinLines:       c.Limits.MinLines,
		Seed:           c.Selection.Seed,
		Cache:          cache,
	}

	if c.Selection.Strategy != "" {
		opts.Strategy = splitter.StrategyByName(c.Selection.Strategy)
	}

	if len(c.Scoring.Weights) > 0 {
		opts.Weights = make(map[splitter.Category]float64, len(c.Scoring.Weights))
		for name, weight := range c.Scoring.Weights {
			if category, ok := categoryNames[name]; ok {
				opts.Weights[category] = weight
			}
		}
	}
	return opts
}

// NewCache builds the extraction cache described by the configuration, or
// nil when caching is disabled.
func (c *Config) NewCache() (*splitter.ExtractionCache, error) {
	if !c.Cache.Enabled {
		return nil, nil
	}
	return splitter.NewExtractionCache(c.Cache.MaxEntries)
}

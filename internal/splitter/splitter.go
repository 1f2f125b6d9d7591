// Package splitter cuts a source file into a prefix and a suffix at a point
// that respects the language's syntax and structure. Candidates are
// extracted structurally (tree-sitter when a grammar exists, pattern
// scanning otherwise), scored by a composite of semantic weight, balance,
// local density and depth, filtered by size/ratio constraints and gated by
// syntactic-safety checks before a result is returned.
package splitter

import (
	"math/rand"
	"time"
)

// Mode selects what a split request returns.
type Mode string

const (
	// ModeBest returns the single top validated split.
	ModeBest Mode = "best"
	// ModeCandidates returns every size/ratio-valid candidate, ranked by
	// descending score. Result validation is left to the caller.
	ModeCandidates Mode = "candidates"
)

// Splitter is the split-point discovery engine for one language. It is
// synchronous, performs no I/O, and holds no mutable state across requests
// beyond the optional extraction cache supplied in Options.
type Splitter struct {
	lang      string
	opts      Options
	extractor StructuralExtractor
	scorer    *scorer
	validator *validator
	strategy  SelectionStrategy
	rng       *rand.Rand
}

// New builds a splitter for the given language tag. The extractor variant
// is chosen here, once, by probing grammar availability.
func New(lang string, opts Options) *Splitter {
	strategy := opts.Strategy
	if strategy == nil {
		if lang == LangPython {
			strategy = UniformRandomValid{}
		} else {
			strategy = HighestScore{}
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Splitter{
		lang:      lang,
		opts:      opts,
		extractor: newExtractor(lang, opts),
		scorer:    newScorer(opts),
		validator: newValidator(opts, rulesFor(lang)),
		strategy:  strategy,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Language returns the splitter's language tag.
func (s *Splitter) Language() string { return s.lang }

// ExtractorName identifies the active extractor variant.
func (s *Splitter) ExtractorName() string { return s.extractor.Name() }

// StrategyName identifies the active selection strategy.
func (s *Splitter) StrategyName() string { return s.strategy.Name() }

// Split runs the full pipeline. ModeBest yields one fully validated result;
// ModeCandidates yields all valid candidates ranked by score. With
// recursive set, prefix and suffix of the best split are re-split once more
// when they exceed twice the configured minimums; the top-level result
// comes first.
func (s *Splitter) Split(content string, mode Mode, recursive bool) ([]SplitResult, error) {
	if mode == ModeCandidates {
		return s.Candidates(content)
	}

	best, err := s.Best(content)
	if err != nil {
		return nil, err
	}
	results := []SplitResult{*best}

	if recursive {
		if len(best.Prefix) > 2*s.opts.MinPrefixChars {
			if nested, err := s.Best(best.Prefix); err == nil {
				results = append(results, *nested)
			}
		}
		if len(best.Suffix) > 2*s.opts.MinSuffixChars {
			if nested, err := s.Best(best.Suffix); err == nil {
				results = append(results, *nested)
			}
		}
	}
	return results, nil
}

// Best returns the single top validated split, or a no-split error.
func (s *Splitter) Best(content string) (*SplitResult, error) {
	doc := NewSourceDocument(content)
	valid, err := s.validCandidates(doc)
	if err != nil {
		return nil, err
	}

	// The strategy orders the attempts; the first candidate to survive the
	// stricter result validation wins.
	for _, c := range s.strategy.Order(valid, s.rng) {
		result := buildResult(doc, c, "file")
		if s.validator.validateResult(result.Prefix, result.Suffix) {
			return &result, nil
		}
	}
	return nil, ErrNoValidSplit
}

// Candidates returns every valid candidate ranked by descending score,
// without forcing result validation on all of them.
func (s *Splitter) Candidates(content string) ([]SplitResult, error) {
	doc := NewSourceDocument(content)
	valid, err := s.validCandidates(doc)
	if err != nil {
		return nil, err
	}

	results := make([]SplitResult, 0, len(valid))
	for _, c := range (HighestScore{}).Order(valid, nil) {
		results = append(results, buildResult(doc, c, "file"))
	}
	return results, nil
}

// validCandidates runs Extract → Score → Filter with the relaxed retry tier.
func (s *Splitter) validCandidates(doc *SourceDocument) ([]ScoredCandidate, error) {
	if doc.Lines() < s.opts.MinLines {
		return nil, ErrUnsplittableInput
	}

	candidates := s.extract(doc)
	scored := s.scorer.scoreAll(doc, candidates)

	valid := s.filter(doc, scored, false)
	if len(valid) == 0 {
		valid = s.filter(doc, scored, true)
	}
	if len(valid) == 0 {
		if onlyFallback(candidates) {
			return nil, ErrNoCandidateFound
		}
		return nil, ErrNoValidSplit
	}
	return valid, nil
}

// extract produces candidates, consulting the cache when one is configured.
// An empty extraction yields the single geometric-midpoint fallback.
func (s *Splitter) extract(doc *SourceDocument) []SplitCandidate {
	key := ""
	if s.opts.Cache != nil {
		key = contentKey(s.lang, doc.Content())
		if cached, ok := s.opts.Cache.get(key); ok {
			return cached
		}
	}

	candidates := s.extractor.Extract(doc)
	if len(candidates) == 0 {
		candidates = []SplitCandidate{s.midpointCandidate(doc)}
	}

	if s.opts.Cache != nil {
		s.opts.Cache.put(key, candidates)
	}
	return candidates
}

func (s *Splitter) midpointCandidate(doc *SourceDocument) SplitCandidate {
	line := doc.Lines() / 2
	if line < 1 {
		line = 1
	}
	return SplitCandidate{
		Line:        line,
		Category:    Fallback,
		BaseWeight:  s.opts.weight(Fallback),
		Description: "balanced midpoint",
	}
}

func (s *Splitter) filter(doc *SourceDocument, scored []ScoredCandidate, relax bool) []ScoredCandidate {
	valid := make([]ScoredCandidate, 0, len(scored))
	for _, c := range scored {
		if s.validator.isValid(doc, c.SplitCandidate, relax) {
			valid = append(valid, c)
		}
	}
	return valid
}

func onlyFallback(candidates []SplitCandidate) bool {
	for _, c := range candidates {
		if c.Category != Fallback {
			return false
		}
	}
	return true
}

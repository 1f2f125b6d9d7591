package splitter

import "regexp"

var tokenPattern = regexp.MustCompile(`\w+`)

// tokenDensity measures tokens per character in a window around [start, end)
// byte offsets of the content.
func tokenDensity(content string, start, end, window int) float64 {
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	hi := end + window
	if hi > len(content) {
		hi = len(content)
	}
	if hi <= lo {
		return 0
	}
	snippet := content[lo:hi]
	tokens := len(tokenPattern.FindAllStringIndex(snippet, -1))
	return float64(tokens) / float64(len(snippet))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// scorer computes the composite score for split candidates.
//
//	score = (α·semantic + β·balance + γ·density + δ·depth) / (α+β+γ+δ)
//
// Deterministic given identical candidates and configuration.
type scorer struct {
	alpha, beta, gamma, delta float64
	densityCap                float64
	maxWeight                 float64
}

func newScorer(opts Options) *scorer {
	return &scorer{
		alpha:      opts.Alpha,
		beta:       opts.Beta,
		gamma:      opts.Gamma,
		delta:      opts.Delta,
		densityCap: opts.DensityCap,
		maxWeight:  opts.maxWeight(),
	}
}

// scoreAll scores every candidate against the document.
func (s *scorer) scoreAll(doc *SourceDocument, candidates []SplitCandidate) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredCandidate{
			SplitCandidate: c,
			Score:          s.score(doc, c),
		})
	}
	return scored
}

func (s *scorer) score(doc *SourceDocument, c SplitCandidate) float64 {
	semantic := 0.0
	if s.maxWeight > 0 {
		semantic = c.BaseWeight / s.maxWeight
	}

	// Splits near the character midpoint score 1, splits at the extremes 0.
	balance := clamp(1.0-2.0*abs(doc.PrefixRatio(c.Line)-0.5), 0, 1)

	// Low lexical density around the boundary is rewarded: a sparse region
	// is less likely to be mid-expression.
	density := 1.0 - clamp(c.LocalDensity/s.densityCap, 0, 1)

	// Shallower nodes mark more structurally significant boundaries.
	depth := 1.0 / float64(1+c.Depth)

	raw := s.alpha*semantic + s.beta*balance + s.gamma*density + s.delta*depth

	denom := s.alpha + s.beta + s.gamma + s.delta
	if denom <= 0 {
		return 0
	}
	return raw / denom
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

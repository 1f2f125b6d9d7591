package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the composite scorer:
// - Scores always land in [0, 1] after normalization
// - A perfectly balanced, shallow, sparse class boundary scores 1
// - The balance term peaks at the character midpoint and decays linearly
// - The density term inverts local density and saturates at the cap
// - The depth term halves at depth 1 relative to depth 0
// - Identical candidates and configuration produce identical scores
// - tokenDensity measures tokens per character in a bounded window

func testDoc() *SourceDocument {
	// 10 lines of equal length so line index maps linearly onto ratio.
	return NewSourceDocument("aaaa\naaaa\naaaa\naaaa\naaaa\naaaa\naaaa\naaaa\naaaa\naaaa\n")
}

func TestScorer_PerfectCandidateScoresOne(t *testing.T) {
	t.Parallel()

	s := newScorer(DefaultOptions())
	c := SplitCandidate{
		Line:         5, // exact midpoint of the 10-line document
		Category:     ClassBoundary,
		BaseWeight:   defaultWeights[ClassBoundary],
		Depth:        0,
		LocalDensity: 0,
	}

	assert.InDelta(t, 1.0, s.score(testDoc(), c), 1e-9)
}

func TestScorer_ScoreWithinUnitInterval(t *testing.T) {
	t.Parallel()

	s := newScorer(DefaultOptions())
	doc := testDoc()

	for line := 1; line < doc.Lines(); line++ {
		for category, weight := range defaultWeights {
			c := SplitCandidate{Line: line, Category: category, BaseWeight: weight, Depth: line, LocalDensity: 0.3}
			score := s.score(doc, c)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestScorer_BalanceTermDecaysFromMidpoint(t *testing.T) {
	t.Parallel()

	s := newScorer(DefaultOptions())
	doc := testDoc()

	mid := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1}
	off := SplitCandidate{Line: 8, Category: Fallback, BaseWeight: 1}
	edge := SplitCandidate{Line: 9, Category: Fallback, BaseWeight: 1}

	require.Greater(t, s.score(doc, mid), s.score(doc, off))
	require.Greater(t, s.score(doc, off), s.score(doc, edge))
}

func TestScorer_DensityTermInverted(t *testing.T) {
	t.Parallel()

	s := newScorer(DefaultOptions())
	doc := testDoc()

	sparse := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, LocalDensity: 0.01}
	dense := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, LocalDensity: 0.14}
	saturated := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, LocalDensity: 0.5}

	assert.Greater(t, s.score(doc, sparse), s.score(doc, dense))
	// Beyond the cap the term bottoms out at zero.
	assert.InDelta(t, s.score(doc, SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, LocalDensity: 0.15}),
		s.score(doc, saturated), 1e-9)
}

func TestScorer_DepthTerm(t *testing.T) {
	t.Parallel()

	s := newScorer(DefaultOptions())
	doc := testDoc()

	shallow := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, Depth: 0}
	deep := SplitCandidate{Line: 5, Category: Fallback, BaseWeight: 1, Depth: 3}

	assert.Greater(t, s.score(doc, shallow), s.score(doc, deep))
}

func TestScorer_Deterministic(t *testing.T) {
	t.Parallel()

	doc := testDoc()
	c := SplitCandidate{Line: 3, Category: MethodBoundary, BaseWeight: 8, Depth: 2, LocalDensity: 0.05}

	first := newScorer(DefaultOptions()).score(doc, c)
	second := newScorer(DefaultOptions()).score(doc, c)
	assert.Equal(t, first, second)
}

func TestTokenDensity(t *testing.T) {
	t.Parallel()

	// 10 chars, 2 tokens ("ab", "cd") in the window.
	density := tokenDensity("ab cd     ", 0, 5, 100)
	assert.InDelta(t, 0.2, density, 1e-9)

	assert.Equal(t, 0.0, tokenDensity("", 0, 0, 100))
}

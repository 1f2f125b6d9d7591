package splitter

import (
	"math/rand"
	"sort"
)

// SelectionStrategy orders valid candidates into the sequence in which the
// splitter will attempt them. The first entry that passes result validation
// wins. The two policies are interchangeable and explicitly named so both
// can be tested as one component.
type SelectionStrategy interface {
	Name() string
	Order(valid []ScoredCandidate, rng *rand.Rand) []ScoredCandidate
}

// HighestScore attempts candidates in descending composite-score order.
// Deterministic: identical input and configuration yield identical output.
type HighestScore struct{}

func (HighestScore) Name() string { return "highest-score" }

func (HighestScore) Order(valid []ScoredCandidate, _ *rand.Rand) []ScoredCandidate {
	ordered := make([]ScoredCandidate, len(valid))
	copy(ordered, valid)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		// Tie-break on line so equal scores stay deterministic.
		return ordered[i].Line < ordered[j].Line
	})
	return ordered
}

// UniformRandomValid picks uniformly at random among all valid candidates.
// The randomness is intentional: repeated extractions of the same file visit
// different boundaries, which increases dataset diversity.
type UniformRandomValid struct{}

func (UniformRandomValid) Name() string { return "uniform-random" }

func (UniformRandomValid) Order(valid []ScoredCandidate, rng *rand.Rand) []ScoredCandidate {
	ordered := make([]ScoredCandidate, len(valid))
	copy(ordered, valid)
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}

// StrategyByName resolves a configured strategy name. Unknown names fall
// back to HighestScore.
func StrategyByName(name string) SelectionStrategy {
	if name == (UniformRandomValid{}).Name() {
		return UniformRandomValid{}
	}
	return HighestScore{}
}

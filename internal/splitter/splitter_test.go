package splitter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the split pipeline:
// - A well-formed Java class splits after a method body and the halves
//   reassemble into the original content
// - A tiny file yields a no-split error, never a degenerate result
// - Candidates mode ranks every valid boundary by descending score
// - The top-ranked candidate falls through to the next one when result
//   validation rejects it
// - When result validation rejects every ordered candidate, Best reports
//   no valid split
// - Recursive mode re-splits the halves and returns the file-level
//   result first
// - Keyword-free input falls back to the geometric midpoint
// - Only-fallback extractions that fail filtering report the dedicated
//   no-candidate error
// - Python defaults to the random strategy, everything else to the
//   deterministic one, and an explicit strategy wins over both

const greeterJava = `public class Greeter {
    private String name;

    public String greet() {
        return "Hello, " + name;
    }

    public void setName(String n) {
        this.name = n;
    }
}
`

// looseOptions keeps the scoring defaults but relaxes the size gates so
// small fixtures stay splittable.
func looseOptions() Options {
	opts := DefaultOptions()
	opts.MinPrefixChars = 10
	opts.MinSuffixChars = 10
	opts.MinRatio = 0.05
	opts.MaxRatio = 0.95
	opts.Seed = 1
	return opts
}

func TestBest_JavaMethodBoundary(t *testing.T) {
	t.Parallel()

	sp := New(LangJava, looseOptions())
	require.Equal(t, "tree-sitter/java", sp.ExtractorName())

	result, err := sp.Best(greeterJava)
	require.NoError(t, err)

	assert.Equal(t, MethodBoundary, result.Candidate.Category)
	assert.Equal(t, 6, result.SplitLine)
	assert.Equal(t, greeterJava, result.Prefix+result.Suffix)
	assert.Equal(t, "file", result.Level)
	assert.Greater(t, result.PrefixRatio, 0.0)
	assert.Less(t, result.PrefixRatio, 1.0)
}

func TestBest_TinyFileIsNoSplit(t *testing.T) {
	t.Parallel()

	sp := New(LangPython, DefaultOptions())

	// Three lines clear the line gate but fail every character floor,
	// even after the relaxed retry.
	_, err := sp.Best("x = 1\ny = 2\nz = 3\n")
	require.Error(t, err)
	assert.True(t, IsNoSplit(err))

	// Below the line gate the input is unsplittable outright.
	_, err = sp.Best("x = 1\ny = 2\n")
	require.ErrorIs(t, err, ErrUnsplittableInput)
	assert.True(t, IsNoSplit(err))
}

func TestCandidates_RankedMethodBoundaries(t *testing.T) {
	t.Parallel()

	content := `public class Calculator {
    private int last;

    public int add(int a, int b) {
        last = a + b;
        return last;
    }

    public int sub(int a, int b) {
        last = a - b;
        return last;
    }

    public int mul(int a, int b) {
        last = a * b;
        return last;
    }
}

class Helper {
    static int twice(int x) {
        return x + x;
    }
}
`
	sp := New(LangJava, looseOptions())
	results, err := sp.Candidates(content)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(results), 3)

	methodLines := map[int]bool{}
	for i, r := range results {
		assert.Equal(t, content, r.Prefix+r.Suffix)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Candidate.Score, r.Candidate.Score)
		}
		if r.Candidate.Category == MethodBoundary {
			methodLines[r.SplitLine] = true
		}
	}
	// One boundary per method body of Calculator.
	assert.True(t, methodLines[7])
	assert.True(t, methodLines[12])
	assert.True(t, methodLines[17])
}

func TestBest_FallsThroughOnResultValidation(t *testing.T) {
	t.Parallel()

	// The better-balanced boundary after the second signature leaves an
	// unterminated string in its prefix, so selection must fall through
	// to the boundary after the first signature.
	content := "function first() {\n" +
		"  value = \"unterminated string literal\n" +
		"  more body text on this line\n" +
		"}\n" +
		"function second() {\n" +
		"  plain body line goes here\n" +
		"}\n"

	sp := New("text", looseOptions())
	require.Equal(t, "pattern/text", sp.ExtractorName())

	result, err := sp.Best(content)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SplitLine)
	assert.Equal(t, content, result.Prefix+result.Suffix)
}

func TestBest_ExhaustsWhenEveryPrefixSplitsAString(t *testing.T) {
	t.Parallel()

	// Both boundaries leave an odd quote count in their prefix: the line
	// after the first signature cuts inside the broken string, and the
	// line after the second still carries that lone quote. Result
	// validation rejects each attempt in turn and selection runs dry.
	content := "function alpha() { s = \"broken one\n" +
		"  filler text line one\n" +
		"}\n" +
		"function beta() {\n" +
		"  filler text line two\n" +
		"}\n"

	sp := New("text", looseOptions())
	_, err := sp.Best(content)
	require.ErrorIs(t, err, ErrNoValidSplit)
	assert.True(t, IsNoSplit(err))
}

func TestSplit_Recursive(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("public class Big {\n")
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "\n    public int method%d(int x) {\n        int y = x + %d;\n        return y * %d;\n    }\n", i, i, i+1)
	}
	b.WriteString("}\n")
	content := b.String()

	opts := DefaultOptions()
	opts.Seed = 1
	sp := New(LangJava, opts)

	results, err := sp.Split(content, ModeBest, true)
	require.NoError(t, err)
	require.Greater(t, len(results), 1)

	// File-level result first; nested results reassemble into one half.
	assert.Equal(t, content, results[0].Prefix+results[0].Suffix)
	for _, r := range results[1:] {
		assert.Contains(t, content, r.Prefix+r.Suffix)
	}
}

func TestBest_MidpointFallback(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("alpha beta gamma\n", 6)
	sp := New("text", looseOptions())

	result, err := sp.Best(content)
	require.NoError(t, err)
	assert.Equal(t, Fallback, result.Candidate.Category)
	assert.Equal(t, 3, result.SplitLine)
	assert.Equal(t, content, result.Prefix+result.Suffix)
}

func TestBest_OnlyFallbackTooSmall(t *testing.T) {
	t.Parallel()

	sp := New("text", DefaultOptions())
	_, err := sp.Best("a\nb\nc\n")
	require.ErrorIs(t, err, ErrNoCandidateFound)
	assert.True(t, IsNoSplit(err))
}

func TestNew_StrategyDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uniform-random", New(LangPython, DefaultOptions()).StrategyName())
	assert.Equal(t, "highest-score", New(LangJava, DefaultOptions()).StrategyName())

	opts := DefaultOptions()
	opts.Strategy = UniformRandomValid{}
	assert.Equal(t, "uniform-random", New(LangJava, opts).StrategyName())
}

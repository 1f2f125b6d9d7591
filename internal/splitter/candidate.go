package splitter

// Category classifies the structural unit a split candidate sits after.
type Category int

const (
	ClassBoundary Category = iota
	MethodBoundary
	ConstructorBoundary
	FieldBoundary
	ControlBoundary
	StatementBoundary
	Fallback
)

// defaultWeights are the fixed per-category base weights used when the
// configuration does not override them.
var defaultWeights = map[Category]float64{
	ClassBoundary:       10.0,
	MethodBoundary:      8.0,
	ConstructorBoundary: 7.0,
	FieldBoundary:       4.0,
	ControlBoundary:     3.5,
	StatementBoundary:   2.0,
	Fallback:            1.0,
}

func (c Category) String() string {
	switch c {
	case ClassBoundary:
		return "class"
	case MethodBoundary:
		return "method"
	case ConstructorBoundary:
		return "constructor"
	case FieldBoundary:
		return "field"
	case ControlBoundary:
		return "control"
	case StatementBoundary:
		return "statement"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// SplitCandidate is a proposed line position dividing a document into
// prefix and suffix. Line is the index of the first suffix line.
type SplitCandidate struct {
	Line             int
	Category         Category
	BaseWeight       float64
	Depth            int     // nesting level of the originating node
	LocalDensity     float64 // tokens per character around the position
	SemanticBoundary bool
	Description      string
}

// ScoredCandidate is a SplitCandidate with its composite score attached.
// It only exists during ranking.
type ScoredCandidate struct {
	SplitCandidate
	Score float64
}

// SplitResult is the only value returned to external collaborators.
type SplitResult struct {
	Prefix      string
	Suffix      string
	SplitLine   int
	Candidate   ScoredCandidate
	PrefixRatio float64
	Level       string // "file", "declaration" or "member"
}

// buildResult assembles a SplitResult for a candidate on a document.
func buildResult(doc *SourceDocument, c ScoredCandidate, level string) SplitResult {
	return SplitResult{
		Prefix:      doc.Prefix(c.Line),
		Suffix:      doc.Suffix(c.Line),
		SplitLine:   c.Line,
		Candidate:   c,
		PrefixRatio: doc.PrefixRatio(c.Line),
		Level:       level,
	}
}

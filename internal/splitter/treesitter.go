package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// StructuralExtractor turns a document into a list of untested split
// candidates tagged by structural category. Two implementations exist:
// tree-backed (this file) and pattern-backed (pattern.go). The variant is
// chosen once at construction by probing grammar availability.
type StructuralExtractor interface {
	Name() string
	Extract(doc *SourceDocument) []SplitCandidate
}

// newExtractor selects the extractor for a language tag.
func newExtractor(lang string, opts Options) StructuralExtractor {
	if spec, ok := grammarFor(lang); ok {
		return newTreeExtractor(spec, opts)
	}
	return newPatternExtractor(lang, opts)
}

// treeExtractor walks a tree-sitter parse tree and emits one candidate per
// recognized node. The split position is the line after the entire node
// body (BoundaryAfterBody policy), applied uniformly across categories.
type treeExtractor struct {
	spec     grammarSpec
	opts     Options
	fallback *patternExtractor
}

func newTreeExtractor(spec grammarSpec, opts Options) *treeExtractor {
	return &treeExtractor{
		spec:     spec,
		opts:     opts,
		fallback: newPatternExtractor(spec.lang, opts),
	}
}

func (e *treeExtractor) Name() string { return "tree-sitter/" + e.spec.lang }

// Extract parses the document and collects candidates. A parse failure is
// downgraded to pattern-based extraction, never surfaced to the caller.
func (e *treeExtractor) Extract(doc *SourceDocument) []SplitCandidate {
	source := []byte(doc.Content())

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(e.spec.language); err != nil {
		return e.fallback.Extract(doc)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return e.fallback.Extract(doc)
	}
	defer tree.Close()

	var candidates []SplitCandidate
	e.walk(tree.RootNode(), 0, doc, &candidates)
	return candidates
}

// walk visits node and its children, emitting a candidate for every
// recognized kind.
func (e *treeExtractor) walk(node *sitter.Node, depth int, doc *SourceDocument, out *[]SplitCandidate) {
	if node == nil {
		return
	}

	kind := node.Kind()
	if category, ok := e.categorize(kind); ok {
		line := lineAfterNode(node, doc.Lines())
		if line > 0 {
			*out = append(*out, SplitCandidate{
				Line:             line,
				Category:         category,
				BaseWeight:       e.opts.weight(category),
				Depth:            depth,
				LocalDensity:     tokenDensity(doc.Content(), int(node.StartByte()), int(node.EndByte()), e.opts.DensityWindow),
				SemanticBoundary: category.semantic(),
				Description:      "after " + kind,
			})
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		e.walk(node.Child(uint(i)), depth+1, doc, out)
	}
}

// categorize maps a node kind to a boundary category.
func (e *treeExtractor) categorize(kind string) (Category, bool) {
	if category, ok := e.spec.categories[kind]; ok {
		return category, ok
	}
	if e.spec.statementSuffix && hasStatementSuffix(kind) {
		return ControlBoundary, true
	}
	return 0, false
}

func hasStatementSuffix(kind string) bool {
	const suffix = "_statement"
	return len(kind) > len(suffix) && kind[len(kind)-len(suffix):] == suffix
}

// lineAfterNode returns the line index just past the node's last line,
// clamped so both halves stay non-empty.
func lineAfterNode(node *sitter.Node, totalLines int) int {
	line := int(node.EndPosition().Row) + 1
	if line > totalLines-1 {
		line = totalLines - 1
	}
	if line < 1 {
		line = 1
	}
	return line
}

// semantic reports whether a category marks a structurally meaningful unit
// rather than an arbitrary line.
func (c Category) semantic() bool {
	switch c {
	case ClassBoundary, MethodBoundary, ConstructorBoundary:
		return true
	default:
		return false
	}
}

package splitter

import (
	"regexp"
	"strings"
)

// patternRule pairs a textual signature with the category it approximates.
type patternRule struct {
	re       *regexp.Regexp
	category Category
}

// Textual signatures for brace-delimited declarations. These approximate
// the tree-backed categories when no grammar is available or a parse fails.
var (
	javaClassPattern = regexp.MustCompile(
		`(?m)(?:public|protected|private)?\s*(?:abstract|final|sealed|static)?\s*(?:class|interface|enum|record|@interface)\s+\w+`)
	javaMethodPattern = regexp.MustCompile(
		`(?m)(?:public|protected|private)?\s*(?:static|final|synchronized|native|strictfp|default)?\s*(?:<[^>]*>)?\s*[\w\[\]<>]+\s+\w+\s*\([^;{)]*\)\s*(?:throws\s+[^{;]+)?\s*[{;]`)
	javaCtorPattern = regexp.MustCompile(
		`(?m)(?:public|protected|private)?\s*[A-Z]\w*\s*\([^)]*\)\s*(?:throws\s+[^{;]+)?\s*[{;]`)
)

// indentKeywords drive line scanning for indentation/keyword languages.
var indentKeywords = map[string]Category{
	"class":  ClassBoundary,
	"module": ClassBoundary,
	"def":    MethodBoundary,
	"if":     ControlBoundary,
	"for":    ControlBoundary,
	"while":  ControlBoundary,
	"try":    ControlBoundary,
	"with":   ControlBoundary,
	"async":  ControlBoundary,
	"begin":  ControlBoundary,
	"case":   ControlBoundary,
}

// genericKeywords cover languages with no dedicated ruleset.
var genericKeywords = map[string]Category{
	"class":     ClassBoundary,
	"struct":    ClassBoundary,
	"interface": ClassBoundary,
	"enum":      ClassBoundary,
	"impl":      ClassBoundary,
	"trait":     ClassBoundary,
	"module":    ClassBoundary,
	"func":      MethodBoundary,
	"fn":        MethodBoundary,
	"function":  MethodBoundary,
	"def":       MethodBoundary,
	"sub":       MethodBoundary,
}

// patternExtractor approximates structural extraction with textual
// signatures. Candidates land on the line after the matched signature, since
// body extents are unknown without a parse. Candidates are deduplicated by
// line, keeping the highest-weight entry.
type patternExtractor struct {
	lang     string
	opts     Options
	rules    []patternRule
	keywords map[string]Category

	// afterLine shifts keyword candidates to the line after the signature.
	// Indentation languages split before the construct instead, matching
	// their reference heuristics.
	afterLine bool
}

func newPatternExtractor(lang string, opts Options) *patternExtractor {
	e := &patternExtractor{lang: lang, opts: opts}

	switch lang {
	case LangJava, LangC, LangPHP, LangTypeScript, LangRust:
		e.rules = []patternRule{
			{re: javaClassPattern, category: ClassBoundary},
			{re: javaMethodPattern, category: MethodBoundary},
			{re: javaCtorPattern, category: ConstructorBoundary},
		}
	case LangPython, LangRuby:
		e.keywords = indentKeywords
	default:
		e.keywords = genericKeywords
		e.afterLine = true
	}
	return e
}

func (e *patternExtractor) Name() string { return "pattern/" + e.lang }

func (e *patternExtractor) Extract(doc *SourceDocument) []SplitCandidate {
	var candidates []SplitCandidate
	if e.rules != nil {
		candidates = e.scanPatterns(doc)
	} else {
		candidates = e.scanLines(doc)
	}
	return dedupeByLine(candidates)
}

// scanPatterns finds regex signatures and places a candidate on the line
// after each match.
func (e *patternExtractor) scanPatterns(doc *SourceDocument) []SplitCandidate {
	content := doc.Content()
	var candidates []SplitCandidate

	for _, rule := range e.rules {
		for _, loc := range rule.re.FindAllStringIndex(content, -1) {
			line := strings.Count(content[:loc[1]], "\n") + 1
			if line > doc.Lines()-1 {
				line = doc.Lines() - 1
			}
			if line < 1 {
				continue
			}
			candidates = append(candidates, SplitCandidate{
				Line:             line,
				Category:         rule.category,
				BaseWeight:       e.opts.weight(rule.category),
				Depth:            1,
				LocalDensity:     tokenDensity(content, loc[0], loc[1], e.opts.DensityWindow),
				SemanticBoundary: rule.category.semantic(),
				Description:      "pattern " + rule.category.String(),
			})
		}
	}
	return candidates
}

// scanLines walks declaration keywords for indentation languages. Keyword
// lines split before the construct; block-opening lines (":" suffix) split
// after.
func (e *patternExtractor) scanLines(doc *SourceDocument) []SplitCandidate {
	var candidates []SplitCandidate

	for i := 0; i < doc.Lines(); i++ {
		stripped := strings.TrimSpace(doc.Line(i))
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		fields := strings.Fields(stripped)
		if len(fields) == 0 {
			continue
		}

		if category, ok := e.keywords[fields[0]]; ok {
			line := i
			if e.afterLine {
				line = i + 1
			}
			if line >= 1 && line < doc.Lines() {
				candidates = append(candidates, e.lineCandidate(doc, line, i, category))
			}
			continue
		}

		if strings.HasSuffix(stripped, ":") && i+1 < doc.Lines() {
			candidates = append(candidates, e.lineCandidate(doc, i+1, i, StatementBoundary))
		}
	}
	return candidates
}

func (e *patternExtractor) lineCandidate(doc *SourceDocument, line, matchLine int, category Category) SplitCandidate {
	start := doc.PrefixChars(matchLine)
	end := start + len(doc.Line(matchLine))
	return SplitCandidate{
		Line:             line,
		Category:         category,
		BaseWeight:       e.opts.weight(category),
		Depth:            1,
		LocalDensity:     tokenDensity(doc.Content(), start, end, e.opts.DensityWindow),
		SemanticBoundary: category.semantic(),
		Description:      "pattern " + category.String(),
	}
}

// dedupeByLine keeps the highest-weight candidate per line, preserving
// first-seen order between distinct lines.
func dedupeByLine(candidates []SplitCandidate) []SplitCandidate {
	byLine := make(map[int]int, len(candidates))
	deduped := make([]SplitCandidate, 0, len(candidates))

	for _, c := range candidates {
		if idx, ok := byLine[c.Line]; ok {
			if c.BaseWeight > deduped[idx].BaseWeight {
				deduped[idx] = c
			}
			continue
		}
		byLine[c.Line] = len(deduped)
		deduped = append(deduped, c)
	}
	return deduped
}

package splitter

import (
	"regexp"
	"strings"
)

var escapePattern = regexp.MustCompile(`\\.`)

// validator applies the two validation tiers: isValid filters candidates by
// size and ratio, validateResult is the stricter syntactic-safety gate run
// on the chosen candidate before it is returned.
type validator struct {
	minPrefixChars int
	minSuffixChars int
	minRatio       float64
	maxRatio       float64
	rules          syntaxRules
}

func newValidator(opts Options, rules syntaxRules) *validator {
	return &validator{
		minPrefixChars: opts.MinPrefixChars,
		minSuffixChars: opts.MinSuffixChars,
		minRatio:       opts.MinRatio,
		maxRatio:       opts.MaxRatio,
		rules:          rules,
	}
}

// isValid checks a candidate's size and ratio constraints. relax halves the
// character minimums; it is the retry tier used when nothing qualifies.
func (v *validator) isValid(doc *SourceDocument, c SplitCandidate, relax bool) bool {
	if c.Line <= 0 || c.Line >= doc.Lines() {
		return false
	}

	minPref := v.minPrefixChars
	minSuf := v.minSuffixChars
	if relax {
		minPref /= 2
		minSuf /= 2
	}

	prefixChars := doc.PrefixChars(c.Line)
	suffixChars := doc.TotalChars() - prefixChars
	if prefixChars < minPref || suffixChars < minSuf {
		return false
	}

	ratio := doc.PrefixRatio(c.Line)
	return ratio >= v.minRatio && ratio <= v.maxRatio
}

// validateResult is the final gate on a chosen (prefix, suffix) pair. It
// rejects pairs whose prefix ends inside a string, comment or text block,
// and pairs whose suffix cannot possibly close the prefix's open braces.
func (v *validator) validateResult(prefix, suffix string) bool {
	if len(strings.TrimSpace(prefix)) < v.minPrefixChars ||
		len(strings.TrimSpace(suffix)) < v.minSuffixChars {
		return false
	}

	if v.rules.braceDelimited && !braceFeasible(prefix, suffix) {
		return false
	}

	return !v.splitInStringOrComment(prefix)
}

// braceFeasible checks that the suffix holds at least as many closing
// braces as the prefix leaves open.
func braceFeasible(prefix, suffix string) bool {
	open := strings.Count(prefix, "{") - strings.Count(prefix, "}")
	if open <= 0 {
		return true
	}
	return strings.Count(suffix, "}") >= open
}

// splitInStringOrComment reports whether the prefix ends inside an
// unterminated string, line comment, block comment or text block. These are
// heuristics, not a parse: escaped characters are stripped first and
// delimiter counts decide parity.
func (v *validator) splitInStringOrComment(prefix string) bool {
	trimmed := strings.TrimRight(prefix, " \t\r\n")

	if v.rules.lineComment != "" && strings.HasSuffix(trimmed, v.rules.lineComment) {
		return true
	}

	if v.rules.blockComments {
		lastOpen := strings.LastIndex(prefix, "/*")
		lastClose := strings.LastIndex(prefix, "*/")
		if lastOpen > lastClose {
			return true
		}
	}

	stripped := escapePattern.ReplaceAllString(prefix, "")

	// Text blocks first: an odd delimiter count means the prefix ends
	// inside one. The delimiters are then removed so their quote characters
	// do not disturb the plain-string parity check below.
	for _, delim := range v.rules.textBlockDelim {
		if strings.Count(stripped, delim)%2 == 1 {
			return true
		}
		stripped = strings.ReplaceAll(stripped, delim, "")
	}

	for _, q := range v.rules.quoteChars {
		if strings.Count(stripped, string(q))%2 == 1 {
			return true
		}
	}

	return false
}

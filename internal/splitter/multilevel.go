package splitter

import "strings"

// MultiLevel pre-generates coarse pairs at several granularities: the
// file-level best split, then one pair per detected declaration header and
// one per member header, without score-based competition. Header pairs are
// gated only by the character floors, so downstream dataset builders get
// class-level and method-level contexts even when the composite score would
// never pick them.
func (s *Splitter) MultiLevel(content string) ([]SplitResult, error) {
	doc := NewSourceDocument(content)
	if doc.Lines() < s.opts.MinLines {
		return nil, ErrUnsplittableInput
	}

	var results []SplitResult

	if best, err := s.Best(content); err == nil {
		results = append(results, *best)
	} else if !IsNoSplit(err) {
		return nil, err
	}

	// Header enumeration always uses the pattern extractor: headers are
	// textual signatures, and the mode must work identically with or
	// without a grammar.
	headers := newPatternExtractor(s.lang, s.opts).Extract(doc)
	scored := s.scorer.scoreAll(doc, headers)

	for _, c := range scored {
		level := ""
		switch c.Category {
		case ClassBoundary:
			level = "declaration"
		case MethodBoundary, ConstructorBoundary:
			level = "member"
		default:
			continue
		}

		result := buildResult(doc, c, level)
		if !s.headerFloors(result) {
			continue
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, ErrNoValidSplit
	}
	return results, nil
}

// headerFloors applies only the minimum character floors, not the ratio or
// syntactic gates.
func (s *Splitter) headerFloors(r SplitResult) bool {
	return len(strings.TrimSpace(r.Prefix)) >= s.opts.MinPrefixChars &&
		len(strings.TrimSpace(r.Suffix)) >= s.opts.MinSuffixChars
}

package splitter

import "strings"

// SourceDocument is an immutable, line-indexed view of one source file.
// Lines keep their original terminators so that joining any prefix/suffix
// pair reproduces the input byte for byte.
type SourceDocument struct {
	content string
	lines   []string
	offsets []int // offsets[i] = number of characters before line i
}

// NewSourceDocument builds a document from raw file content.
func NewSourceDocument(content string) *SourceDocument {
	lines := splitLines(content)

	offsets := make([]int, len(lines)+1)
	for i, line := range lines {
		offsets[i+1] = offsets[i] + len(line)
	}

	return &SourceDocument{
		content: content,
		lines:   lines,
		offsets: offsets,
	}
}

// splitLines splits content into lines with terminators preserved.
// A trailing newline does not produce an empty final line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Content returns the full original text.
func (d *SourceDocument) Content() string {
	return d.content
}

// Lines returns the number of lines in the document.
func (d *SourceDocument) Lines() int {
	return len(d.lines)
}

// Line returns the line at index i, terminator included.
func (d *SourceDocument) Line(i int) string {
	return d.lines[i]
}

// TotalChars returns the character length of the full content.
func (d *SourceDocument) TotalChars() int {
	return len(d.content)
}

// PrefixChars returns the character length of lines [0, line).
func (d *SourceDocument) PrefixChars(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.offsets) {
		return len(d.content)
	}
	return d.offsets[line]
}

// Prefix returns the text of lines [0, line).
func (d *SourceDocument) Prefix(line int) string {
	return d.content[:d.PrefixChars(line)]
}

// Suffix returns the text of lines [line, Lines()).
func (d *SourceDocument) Suffix(line int) string {
	return d.content[d.PrefixChars(line):]
}

// PrefixRatio returns PrefixChars(line) / TotalChars.
func (d *SourceDocument) PrefixRatio(line int) float64 {
	total := len(d.content)
	if total == 0 {
		return 0
	}
	return float64(d.PrefixChars(line)) / float64(total)
}

package brackets

import "fmt"

// Position represents a position in the sanitized text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based for characters; 0 means "before the first character of the line"
	Offset int // rune index into the sanitized text (0-based)
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d", p.Line, p.Column)
}

// Entry is a delimiter and the position where it was found.
// Openers are pushed onto the scanner's stack as entries.
type Entry struct {
	Delimiter rune
	Position
}

func (e Entry) String() string {
	return fmt.Sprintf("%c at %d %d", e.Delimiter, e.Line, e.Column)
}

// Span represents a range in the sanitized text: [Start, End) in runes.
type Span struct {
	Start int
	End   int

	// 1-based line and column of the *start* of the span.
	Line   int
	Column int
}

// spanFromEntry creates a Span that covers a single delimiter.
func spanFromEntry(e *Entry) Span {
	return Span{
		Start:  e.Offset,
		End:    e.Offset + 1,
		Line:   e.Line,
		Column: e.Column,
	}
}

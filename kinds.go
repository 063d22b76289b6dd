package brackets

//go:generate stringer --type Kind,Outcome

// Kind tags a rune as an opening delimiter, a closing delimiter, or neither.
type Kind int

const (
	NotDelimiter Kind = iota
	Opener
	Closer
)

// Outcome is the result of scanning a sanitized text.
type Outcome int

const (
	Balanced   Outcome = iota // every closer matched; the stack may still hold openers
	Unmatched                 // a closer arrived with an empty stack
	Mismatched                // a closer did not match the opener on top of the stack
)

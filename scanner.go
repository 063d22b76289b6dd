// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Scanner invariants and coordinate system
//
// The scanner walks sanitized text as a slice of runes, left to right, once.
//
//   r           - the current rune. Newlines are consumed by advance and
//                 never become the current rune.
//   posCurrRune - index into input of r.
//   posNextRune - index into input of the rune after r.
//   line        - 1-based line of r.
//   column      - column of r. It is reset to 0 by each newline and
//                 incremented before r is classified, so the first rune
//                 on a line is in column 1.
//
//   stack       - openers that have not been closed, bottom to top in
//                 nesting order. The top must match the next closer.
//
// The scan stops at the first closer that arrives with an empty stack or
// that does not match the top of the stack. The stack is discarded when the
// scan ends; the report keeps its depth and the last few entries.

type Scanner struct {
	name        string // name of the input source
	r           rune   // current rune
	line        int    // line number of current rune
	column      int    // column number of current rune
	posCurrRune int    // position of current rune
	posNextRune int    // position of next rune
	length      int    // length of input, in runes
	input       []rune

	stack []Entry

	contextRadius int
	stackTail     int

	// the report is built once; later calls to Scan return it
	report *Report

	// logging
	ctx    context.Context
	logger *slog.Logger
}

// NewScanner returns a scanner for text, which should already be sanitized.
func NewScanner(ctx context.Context, name string, text string, options ...Option) (*Scanner, error) {
	input := []rune(text)
	s := &Scanner{
		name:          name,
		input:         input,
		length:        len(input),
		line:          1,
		contextRadius: DefaultContextRadius,
		stackTail:     DefaultStackTail,
		ctx:           ctx,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Scan runs the scanner to the first error or to the end of input
// and returns the report.
//
// Once the scan has finished, Scan always returns the same report.
func (s *Scanner) Scan() *Report {
	if s.report != nil {
		return s.report
	}

	for s.advance() {
		switch KindOf(s.r) {
		case Opener:
			s.stack = append(s.stack, s.entry())
		case Closer:
			closer := s.entry()
			if len(s.stack) == 0 {
				return s.stop(Unmatched, nil, &closer)
			}
			opener := s.pop()
			if CloserOf(opener.Delimiter) != closer.Delimiter {
				return s.stop(Mismatched, &opener, &closer)
			}
		}
	}

	return s.stop(Balanced, nil, nil)
}

// advance moves to the next rune that is not a newline and updates line/col.
// It returns false at end of input.
func (s *Scanner) advance() bool {
	for s.posNextRune < s.length {
		s.posCurrRune = s.posNextRune
		s.posNextRune++
		s.r = s.input[s.posCurrRune]
		if s.r == LF {
			s.line++
			s.column = 0
			continue
		}
		s.column++
		return true
	}
	s.posCurrRune = s.length
	return false
}

// entry returns the current rune and its position.
func (s *Scanner) entry() Entry {
	return Entry{
		Delimiter: s.r,
		Position: Position{
			Line:   s.line,
			Column: s.column,
			Offset: s.posCurrRune,
		},
	}
}

func (s *Scanner) pop() Entry {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top
}

// stop builds the report and discards the stack.
func (s *Scanner) stop(outcome Outcome, opener, closer *Entry) *Report {
	rpt := &Report{
		Name:    s.name,
		Outcome: outcome,
		Opener:  opener,
		Closer:  closer,
		Depth:   len(s.stack),
	}
	if closer != nil {
		rpt.Context = s.contextWindow(closer.Offset)
	}
	if tail := min(s.stackTail, len(s.stack)); tail > 0 {
		rpt.Top = append([]Entry(nil), s.stack[len(s.stack)-tail:]...)
	}
	s.stack = nil
	s.report = rpt

	switch outcome {
	case Unmatched:
		s.debug("unmatched closing %c", closer.Delimiter)
	case Mismatched:
		s.debug("%c at %d:%d closed by %c", opener.Delimiter, opener.Line, opener.Column, closer.Delimiter)
	default:
		s.debug("end of input with %d open", rpt.Depth)
	}

	return rpt
}

// contextWindow returns the runes around offset, clamped to the input,
// with each newline rendered as the two characters `\n`.
func (s *Scanner) contextWindow(offset int) string {
	start := max(0, offset-s.contextRadius)
	end := min(s.length, offset+s.contextRadius)
	if start >= end {
		return ""
	}
	return strings.ReplaceAll(string(s.input[start:end]), "\n", `\n`)
}

func (s *Scanner) debug(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.DebugContext(s.ctx, fmt.Sprintf("%s:%d:%d: %s", s.name, s.line, s.column, fmt.Sprintf(format, args...)))
}

// Check sanitizes text and scans it.
// If sanitizer is nil, the default sanitizer is used.
func Check(ctx context.Context, name, text string, sanitizer *Sanitizer, options ...Option) (*Report, error) {
	if sanitizer == nil {
		sanitizer = NewSanitizer(false)
	}
	s, err := NewScanner(ctx, name, sanitizer.Sanitize(text), options...)
	if err != nil {
		return nil, err
	}
	return s.Scan(), nil
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Report is the result of one scan.
type Report struct {
	Name    string // name of the input source
	Outcome Outcome

	// Opener is set only when Outcome is Mismatched.
	Opener *Entry
	// Closer is the delimiter that stopped the scan.
	// It is nil when Outcome is Balanced.
	Closer *Entry

	// Context is the text surrounding Closer.
	Context string

	// Depth is the number of openers still on the stack when the scan ended.
	Depth int
	// Top holds the last few of those openers, innermost last.
	Top []Entry
}

// OK reports whether the scan reached the end of input without error.
// Leftover openers do not make a report fail.
func (r *Report) OK() bool {
	return r.Outcome == Balanced
}

// Write prints the report as plain-text lines.
func (r *Report) Write(w io.Writer) error {
	var err error
	switch r.Outcome {
	case Unmatched:
		_, err = fmt.Fprintf(w, "Unmatched closing %c at %d %d context: %s\n",
			r.Closer.Delimiter, r.Closer.Line, r.Closer.Column, r.Context)
	case Mismatched:
		_, err = fmt.Fprintf(w, "Mismatched %c at %d %d with %c at %d %d context: %s\n",
			r.Opener.Delimiter, r.Opener.Line, r.Opener.Column,
			r.Closer.Delimiter, r.Closer.Line, r.Closer.Column, r.Context)
	default:
		_, err = fmt.Fprintf(w, "OK, stack size %d\n", r.Depth)
		if err == nil && len(r.Top) != 0 {
			_, err = fmt.Fprintf(w, "Top of stack %s\n", joinEntries(r.Top))
		}
	}
	return err
}

func (r *Report) String() string {
	sb := &strings.Builder{}
	_ = r.Write(sb)
	return sb.String()
}

// Err returns the typed error for an Unmatched or Mismatched report, or nil.
func (r *Report) Err() error {
	switch r.Outcome {
	case Unmatched:
		return &UnmatchedError{Name: r.Name, Closer: *r.Closer}
	case Mismatched:
		return &MismatchedError{Name: r.Name, Opener: *r.Opener, Closer: *r.Closer}
	}
	return nil
}

// Diagnostics converts the report into diagnostics that point into the
// sanitized text.
func (r *Report) Diagnostics() []Diagnostic {
	switch r.Outcome {
	case Unmatched:
		return []Diagnostic{{
			Severity: slog.LevelError,
			Message:  fmt.Sprintf("unmatched closing %q", r.Closer.Delimiter),
			Span:     spanFromEntry(r.Closer),
		}}
	case Mismatched:
		return []Diagnostic{{
			Severity: slog.LevelError,
			Message:  fmt.Sprintf("mismatched %q: expected %q", r.Closer.Delimiter, CloserOf(r.Opener.Delimiter)),
			Span:     spanFromEntry(r.Closer),
			Notes:    []string{fmt.Sprintf("%q opened at %d:%d", r.Opener.Delimiter, r.Opener.Line, r.Opener.Column)},
		}}
	}

	var diags []Diagnostic
	for i := range r.Top {
		diags = append(diags, Diagnostic{
			Severity: slog.LevelWarn,
			Message:  fmt.Sprintf("unclosed %q", r.Top[i].Delimiter),
			Span:     spanFromEntry(&r.Top[i]),
		})
	}
	if hidden := r.Depth - len(r.Top); hidden > 0 && len(diags) != 0 {
		diags[0].Notes = append(diags[0].Notes, fmt.Sprintf("%d more unclosed delimiters not shown", hidden))
	}
	return diags
}

func joinEntries(entries []Entry) string {
	list := make([]string, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.String())
	}
	return strings.Join(list, ", ")
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"fmt"
	"io"
	"log/slog"
)

// Diagnostic represents a checker error/warning
// with a span in the sanitized text.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "unmatched closing ')'"
	Span     Span       // where in the text it occurred
	Notes    []string   // optional additional help messages
}

// PrintDiagnostic writes a compiler-style diagnostic. Only the first line
// of the span is shown.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, src []rune) error {
	// Header: file:line:column: error: message
	span := diag.Span
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column,
		diag.Severity.String(), diag.Message); err != nil {
		return err
	}

	line := findLine(src, span.Start)
	if _, err := fmt.Fprintf(w, "    %s\n", string(line)); err != nil {
		return err
	}

	// caret underline, copying tabs so the caret lines up with the source
	if _, err := fmt.Fprintf(w, "    %s^\n", caretIndent(line, span.Column)); err != nil {
		return err
	}

	for _, note := range diag.Notes {
		if _, err := fmt.Fprintf(w, "    note: %s\n", note); err != nil {
			return err
		}
	}
	return nil
}

// findLine returns the line containing the start rune.
// It searches backwards from start to find the start of the line,
// then forward until it hits end of input or finds a new-line.
// The returned line does not include the new-line. If start is
// out of range, returns an empty slice.
func findLine(src []rune, start int) []rune {
	if start < 0 || start >= len(src) {
		return []rune{}
	}

	lineStart := 0
	for i := start - 1; i >= 0; i-- {
		if src[i] == LF {
			lineStart = i + 1
			break
		}
	}

	lineEnd := len(src)
	for i := start; i < len(src); i++ {
		if src[i] == LF {
			lineEnd = i
			break
		}
	}

	return src[lineStart:lineEnd]
}

// caretIndent returns the padding that puts a caret under the rune at
// the 1-based column.
func caretIndent(line []rune, column int) string {
	indent := make([]rune, 0, column)
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			indent = append(indent, '\t')
		} else {
			indent = append(indent, ' ')
		}
	}
	return string(indent)
}

// WriteDiagnostics prints every diagnostic in the report.
// sanitized must be the text the report was scanned from.
func (r *Report) WriteDiagnostics(w io.Writer, sanitized string) error {
	diags := r.Diagnostics()
	if len(diags) == 0 && r.Depth != 0 {
		_, err := fmt.Fprintf(w, "%s: %d unclosed delimiters\n", r.Name, r.Depth)
		return err
	} else if len(diags) == 0 {
		_, err := fmt.Fprintf(w, "%s: ok\n", r.Name)
		return err
	}
	src := []rune(sanitized)
	for _, diag := range diags {
		if err := PrintDiagnostic(w, diag, r.Name, src); err != nil {
			return err
		}
	}
	return nil
}

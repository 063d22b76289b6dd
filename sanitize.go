// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"regexp"
	"strings"
)

// Sanitizer removes comments and the contents of quoted literals so that
// delimiters inside them never reach the scanner.
//
// It works by pattern substitution, not by lexing, and the passes run in
// a fixed order:
//
//  1. block comments  /* ... */   (may span lines; repeated until none remain)
//  2. line comments   // ...      (to end of line; the newline stays)
//  3. single quotes   '...'  -> ''
//  4. double quotes   "..."  -> ""
//  5. backticks       `...`  -> ``
//
// Each literal pattern accepts backslash escapes, so an escaped quote does
// not end the literal.
//
// Known limitations (these are approximations, not bugs to be patched):
//   - An unterminated literal does not match and is left in the text.
//     The quote and everything after it reach the scanner unchanged.
//   - Literals are stripped one kind at a time. A backtick template that
//     embeds a quoted string, or a quote inside a ${...} substitution, may be
//     cut in the wrong place.
//   - A "//" or "/*" inside a string literal is treated as a comment marker
//     because comments are stripped first.
//   - A backslash immediately before a newline stops a literal from matching.
type Sanitizer struct {
	preserveLines bool
}

var (
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComment  = regexp.MustCompile(`//.*`)
	reSingleQuoted = regexp.MustCompile(`'(?:\\.|[^'\\])*'`)
	reDoubleQuoted = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)
	reBackticked   = regexp.MustCompile("`(?:\\\\.|[^`\\\\])*`")
)

// NewSanitizer returns a Sanitizer.
// If preserveLines is true, block comments are replaced by the newlines they
// contained, so line numbers in the sanitized text match the original.
func NewSanitizer(preserveLines bool) *Sanitizer {
	return &Sanitizer{preserveLines: preserveLines}
}

// Sanitize returns text with comments removed and literal contents emptied.
// It never fails. Sanitize is idempotent.
func (s *Sanitizer) Sanitize(text string) string {
	text = s.stripBlockComments(text)
	text = reLineComment.ReplaceAllLiteralString(text, "")
	text = reSingleQuoted.ReplaceAllLiteralString(text, "''")
	text = reDoubleQuoted.ReplaceAllLiteralString(text, `""`)
	text = reBackticked.ReplaceAllLiteralString(text, "``")
	return text
}

// stripBlockComments removes block comments until none are left.
// Removing one comment can join a "/" before it to a "*" after it,
// as in "//*a*/*b*/", which opens a new comment.
// Every pass shortens the text, so the loop ends.
func (s *Sanitizer) stripBlockComments(text string) string {
	for reBlockComment.MatchString(text) {
		if s.preserveLines {
			text = reBlockComment.ReplaceAllStringFunc(text, func(comment string) string {
				return strings.Repeat("\n", strings.Count(comment, "\n"))
			})
		} else {
			text = reBlockComment.ReplaceAllLiteralString(text, "")
		}
	}
	return text
}

// Sanitize is a helper that sanitizes text with the default settings.
func Sanitize(text string) string {
	return NewSanitizer(false).Sanitize(text)
}

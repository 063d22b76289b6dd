// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mdhender/brackets"
)

func check(t *testing.T, text string, options ...brackets.Option) *brackets.Report {
	t.Helper()
	rpt, err := brackets.Check(context.Background(), "test", text, nil, options...)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return rpt
}

func TestCheck_Balanced(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"nested", "({[]})"},
		{"siblings", "()[]{}"},
		{"function", "function f(a, b) {\n  return [a, b].map((x) => x * 2);\n}\n"},
		{"string with paren", "func('(') {}"},
		{"line comment", "// (\n{}"},
		{"block comment", "/* ( [ { */ ()"},
		{"template literal", "const s = `${(}`; f()"},
		{"escaped quote", `f("\")") ()`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rpt := check(t, tc.input)
			if rpt.Outcome != brackets.Balanced {
				t.Fatalf("Outcome = %v, want %v: %s", rpt.Outcome, brackets.Balanced, rpt)
			}
			if rpt.Depth != 0 {
				t.Fatalf("Depth = %d, want 0", rpt.Depth)
			}
			if len(rpt.Top) != 0 {
				t.Fatalf("Top = %v, want empty", rpt.Top)
			}
			if rpt.Err() != nil {
				t.Fatalf("Err = %v, want nil", rpt.Err())
			}
		})
	}
}

func TestCheck_Mismatched(t *testing.T) {
	rpt := check(t, "(]")
	if rpt.Outcome != brackets.Mismatched {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Mismatched)
	}
	if got, want := rpt.Opener.Delimiter, '('; got != want {
		t.Fatalf("Opener = %q, want %q", got, want)
	}
	if rpt.Opener.Line != 1 || rpt.Opener.Column != 1 {
		t.Fatalf("Opener at %d %d, want 1 1", rpt.Opener.Line, rpt.Opener.Column)
	}
	if got, want := rpt.Closer.Delimiter, ']'; got != want {
		t.Fatalf("Closer = %q, want %q", got, want)
	}
	if rpt.Closer.Line != 1 || rpt.Closer.Column != 2 {
		t.Fatalf("Closer at %d %d, want 1 2", rpt.Closer.Line, rpt.Closer.Column)
	}
	if got, want := rpt.String(), "Mismatched ( at 1 1 with ] at 1 2 context: (]\n"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestCheck_Unmatched(t *testing.T) {
	rpt := check(t, ")")
	if rpt.Outcome != brackets.Unmatched {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Unmatched)
	}
	if rpt.Opener != nil {
		t.Fatalf("Opener = %v, want nil", rpt.Opener)
	}
	if rpt.Closer.Line != 1 || rpt.Closer.Column != 1 {
		t.Fatalf("Closer at %d %d, want 1 1", rpt.Closer.Line, rpt.Closer.Column)
	}
	if got, want := rpt.String(), "Unmatched closing ) at 1 1 context: )\n"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestCheck_StopsAtFirstError(t *testing.T) {
	// the second error must never be reported
	rpt := check(t, "a)\n(]")
	if rpt.Outcome != brackets.Unmatched {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Unmatched)
	}
	if rpt.Closer.Line != 1 || rpt.Closer.Column != 2 {
		t.Fatalf("Closer at %d %d, want 1 2", rpt.Closer.Line, rpt.Closer.Column)
	}
	if rpt.Depth != 0 {
		t.Fatalf("Depth = %d, want 0", rpt.Depth)
	}
}

func TestCheck_LineAndColumn(t *testing.T) {
	// column resets on every newline, and newlines are not counted
	rpt := check(t, "{\n  (\n\n\tx]")
	if rpt.Outcome != brackets.Mismatched {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Mismatched)
	}
	if got, want := rpt.Opener.Position.String(), "2 3"; got != want {
		t.Fatalf("Opener at %q, want %q", got, want)
	}
	if got, want := rpt.Closer.Position.String(), "4 3"; got != want {
		t.Fatalf("Closer at %q, want %q", got, want)
	}
	// ( is the 5th rune of the text
	if got, want := rpt.Opener.Offset, 4; got != want {
		t.Fatalf("Opener.Offset = %d, want %d", got, want)
	}
}

func TestCheck_ColumnsCountRunes(t *testing.T) {
	rpt := check(t, "\u00e9\u20ac)")
	if rpt.Outcome != brackets.Unmatched {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Unmatched)
	}
	if got, want := rpt.Closer.Column, 3; got != want {
		t.Fatalf("Closer.Column = %d, want %d", got, want)
	}
}

func TestCheck_LeftoverStack(t *testing.T) {
	rpt := check(t, "(\n[\n{{{{{")
	if rpt.Outcome != brackets.Balanced {
		t.Fatalf("Outcome = %v, want %v", rpt.Outcome, brackets.Balanced)
	}
	if !rpt.OK() {
		t.Fatalf("OK = false, want true")
	}
	if got, want := rpt.Depth, 7; got != want {
		t.Fatalf("Depth = %d, want %d", got, want)
	}
	if got, want := len(rpt.Top), brackets.DefaultStackTail; got != want {
		t.Fatalf("len(Top) = %d, want %d", got, want)
	}
	// innermost last
	if got, want := rpt.Top[4].Column, 5; got != want {
		t.Fatalf("Top[4].Column = %d, want %d", got, want)
	}
	want := "OK, stack size 7\n" +
		"Top of stack { at 3 1, { at 3 2, { at 3 3, { at 3 4, { at 3 5\n"
	if got := rpt.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestCheck_StackTail(t *testing.T) {
	rpt := check(t, "([{", brackets.WithStackTail(2))
	if got, want := rpt.Depth, 3; got != want {
		t.Fatalf("Depth = %d, want %d", got, want)
	}
	if got, want := len(rpt.Top), 2; got != want {
		t.Fatalf("len(Top) = %d, want %d", got, want)
	}
	if got, want := rpt.Top[0].Delimiter, '['; got != want {
		t.Fatalf("Top[0] = %q, want %q", got, want)
	}

	rpt = check(t, "([{", brackets.WithStackTail(0))
	if rpt.Top != nil {
		t.Fatalf("Top = %v, want nil", rpt.Top)
	}
	if got, want := rpt.String(), "OK, stack size 3\n"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestCheck_ContextWindow(t *testing.T) {
	input := strings.Repeat("a", 50) + ")" + strings.Repeat("b", 50)
	rpt := check(t, input)
	// 40 runes before the closer, the closer, and 39 after
	want := strings.Repeat("a", 40) + ")" + strings.Repeat("b", 39)
	if rpt.Context != want {
		t.Fatalf("Context = %q, want %q", rpt.Context, want)
	}

	rpt = check(t, "x\ny)", brackets.WithContextRadius(3))
	if got, want := rpt.Context, `x\ny)`; got != want {
		t.Fatalf("Context = %q, want %q", got, want)
	}

	rpt = check(t, ")", brackets.WithContextRadius(0))
	if rpt.Context != "" {
		t.Fatalf("Context = %q, want empty", rpt.Context)
	}
}

func TestNewScanner_RejectsNegativeOptions(t *testing.T) {
	if _, err := brackets.NewScanner(context.Background(), "test", "", brackets.WithContextRadius(-1)); err == nil {
		t.Fatalf("WithContextRadius(-1): want error, got nil")
	}
	if _, err := brackets.NewScanner(context.Background(), "test", "", brackets.WithStackTail(-1)); err == nil {
		t.Fatalf("WithStackTail(-1): want error, got nil")
	}
}

func TestScanner_ScanIsRepeatable(t *testing.T) {
	s, err := brackets.NewScanner(context.Background(), "test", "(]")
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	first, second := s.Scan(), s.Scan()
	if first != second {
		t.Fatalf("Scan returned a new report on the second call")
	}
}

func TestScanner_LogsAtDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := brackets.NewScanner(context.Background(), "input.tsx", "(]", brackets.WithLogger(logger))
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	s.Scan()
	if got := buf.String(); !strings.Contains(got, "input.tsx:1:2") {
		t.Fatalf("log = %q, want it to contain %q", got, "input.tsx:1:2")
	}
}

func TestKindOf(t *testing.T) {
	for _, tc := range []struct {
		ch     rune
		kind   brackets.Kind
		closer rune
	}{
		{'(', brackets.Opener, ')'},
		{'{', brackets.Opener, '}'},
		{'[', brackets.Opener, ']'},
		{')', brackets.Closer, 0},
		{'}', brackets.Closer, 0},
		{']', brackets.Closer, 0},
		{'<', brackets.NotDelimiter, 0},
		{'a', brackets.NotDelimiter, 0},
		{'（', brackets.NotDelimiter, 0},
		{-1, brackets.NotDelimiter, 0},
	} {
		if got := brackets.KindOf(tc.ch); got != tc.kind {
			t.Errorf("KindOf(%q) = %v, want %v", tc.ch, got, tc.kind)
		}
		if got := brackets.CloserOf(tc.ch); got != tc.closer {
			t.Errorf("CloserOf(%q) = %q, want %q", tc.ch, got, tc.closer)
		}
	}
}

func TestKindAndOutcomeString(t *testing.T) {
	for _, tc := range []struct {
		got  string
		want string
	}{
		{brackets.Opener.String(), "Opener"},
		{brackets.NotDelimiter.String(), "NotDelimiter"},
		{brackets.Kind(7).String(), "Kind(7)"},
		{brackets.Mismatched.String(), "Mismatched"},
		{brackets.Outcome(-1).String(), "Outcome(-1)"},
	} {
		if tc.got != tc.want {
			t.Errorf("String() = %q, want %q", tc.got, tc.want)
		}
	}
}

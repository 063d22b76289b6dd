// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"unicode/utf8"
)

const (
	// CR and LF are control characters, respectively coded 0x0D (13 decimal) and 0x0A (10 decimal).
	// Windows uses CR + LF, Unix/Mac uses LF, Classic Mac uses CR.
	// The source loader folds CR + LF and stray CR into LF before sanitizing.

	// CR is 0x0D or '\r'
	CR rune = rune(13)

	// LF is 0x0A or '\n'
	LF rune = rune(10)
)

func init() {
	for _, pair := range [][2]rune{{'(', ')'}, {'{', '}'}, {'[', ']'}} {
		kinds[pair[0]], kinds[pair[1]] = Opener, Closer
		closers[pair[0]] = pair[1]
	}
}

var (
	kinds   = [utf8.RuneSelf]Kind{}
	closers = [utf8.RuneSelf]rune{}
)

// KindOf returns the delimiter kind of ch.
// Every rune outside of ASCII is NotDelimiter.
func KindOf(ch rune) Kind {
	if 0 <= ch && ch < utf8.RuneSelf {
		return kinds[ch]
	}
	return NotDelimiter
}

// CloserOf returns the closing delimiter expected for the opener ch,
// or 0 if ch is not an opener.
func CloserOf(ch rune) rune {
	if KindOf(ch) != Opener {
		return 0
	}
	return closers[ch]
}

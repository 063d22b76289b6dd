// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package brackets checks that the (), {} and [] delimiters in a source
// file are closed and properly nested.
//
// The text is first sanitized: comments are removed and the contents of
// quoted and backtick literals are emptied, so delimiters inside them are
// ignored. The sanitized text is then scanned once, left to right, with a
// stack of open delimiters. The scan stops at the first closer that has no
// opener or that closes the wrong kind of opener.
//
// Line and column numbers in a report refer to the sanitized text. Block
// comments that span lines shift the line numbers unless the sanitizer
// was created with preserveLines set.
package brackets

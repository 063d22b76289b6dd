// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/htmlindex"
)

// ReadSource reads the file at path and returns its text.
// See DecodeSource for how the bytes are converted.
func ReadSource(fs afero.Fs, path, encoding string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", &ReadFileError{Op: "read", Path: path, Err: err}
	}
	return DecodeSource(data, encoding)
}

// DecodeSource converts data to text.
//
// An empty encoding means UTF-8. Other encodings are looked up by their
// WHATWG label ("latin1", "windows-1252", "utf-16le", "shift_jis", ...)
// and decoded first.
//
// Bytes that are not valid UTF-8 are dropped, not replaced. CR+LF and
// stray CR are both converted to LF.
func DecodeSource(data []byte, encoding string) (string, error) {
	if label := strings.TrimSpace(encoding); label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return "", &EncodingError{Name: encoding, Err: err}
		}
		if name, _ := htmlindex.Name(enc); name != "utf-8" {
			data, err = enc.NewDecoder().Bytes(data)
			if err != nil {
				return "", &EncodingError{Name: encoding, Err: err}
			}
		}
	}
	return NormalizeLineEndings(strings.ToValidUTF8(string(data), "")), nil
}

// NormalizeLineEndings replaces CR+LF and CR with LF.
func NormalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

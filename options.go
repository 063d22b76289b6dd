// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultContextRadius is the number of runes shown on each side of an error.
	DefaultContextRadius = 40
	// DefaultStackTail is the number of leftover openers shown after a clean scan.
	DefaultStackTail = 5
)

type Option func(s *Scanner) error

// WithContextRadius sets the number of runes shown before and after the
// delimiter that stopped the scan.
func WithContextRadius(n int) Option {
	return func(s *Scanner) error {
		if n < 0 {
			return fmt.Errorf("context radius: %d: must not be negative", n)
		}
		s.contextRadius = n
		return nil
	}
}

// WithStackTail sets the number of leftover openers kept for display.
func WithStackTail(n int) Option {
	return func(s *Scanner) error {
		if n < 0 {
			return fmt.Errorf("stack tail: %d: must not be negative", n)
		}
		s.stackTail = n
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) error {
		s.logger = logger
		return nil
	}
}

// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import "github.com/pkg/errors"

var (
	// ErrTooShort is returned for texts without room for a symbol and the sentinel.
	ErrTooShort       = errors.New("sais: text must hold at least one symbol and the sentinel")
	// ErrSentinel is returned when the text does not end with a unique 0.
	ErrSentinel       = errors.New("sais: text must end with a unique 0 sentinel")
	// ErrSymbolRange is returned for a symbol outside [0, k].
	ErrSymbolRange    = errors.New("sais: symbol out of alphabet range")
	// ErrBufferTooSmall is returned when sa is shorter than the text.
	ErrBufferTooSmall = errors.New("sais: suffix array buffer too small")
)

// Validate checks the construction contract of Build: text holds at least
// two symbols, every symbol lies in [0, k] and the last symbol is a 0 that
// appears nowhere else.
func Validate[S Symbol](text []S, k int) error {
	if len(text) < 2 {
		return errors.Wrapf(ErrTooShort, "got %d symbols", len(text))
	}
	last := len(text) - 1
	if text[last] != 0 {
		return errors.Wrapf(ErrSentinel, "last symbol is %d", int(text[last]))
	}
	for i, c := range text[:last] {
		v := int(c)
		if v == 0 {
			return errors.Wrapf(ErrSentinel, "sentinel repeated at position %d", i)
		}
		if v < 0 || v > k {
			return errors.Wrapf(ErrSymbolRange, "symbol %d at position %d, alphabet is [0, %d]", v, i, k)
		}
	}
	return nil
}

// BuildChecked validates text and sa before handing them to Build.
func BuildChecked[S Symbol](text []S, sa []int32, k int) error {
	if err := Validate(text, k); err != nil {
		return err
	}
	if len(sa) < len(text) {
		return errors.Wrapf(ErrBufferTooSmall, "need %d slots, got %d", len(text), len(sa))
	}
	Build(text, sa, k)
	return nil
}

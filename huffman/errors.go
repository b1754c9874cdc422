// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates a tree was requested for an empty frequency map.
	ErrEmptyInput = errors.New("huffman: empty frequency map")
	// ErrInvalidFrequency matches every *InvalidFrequencyError.
	ErrInvalidFrequency = errors.New("huffman: invalid frequency")
)

// InvalidFrequencyError reports a symbol whose frequency is not positive.
type InvalidFrequencyError struct {
	Symbol    any
	Frequency int64
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("huffman: invalid frequency %d for symbol %v", e.Frequency, e.Symbol)
}

// Is reports whether target is ErrInvalidFrequency.
func (e *InvalidFrequencyError) Is(target error) bool {
	return target == ErrInvalidFrequency
}

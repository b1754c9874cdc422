// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package fasthuff computes character frequencies of a text stream and the
// huffman prefix code built from them. The frequency and huffman packages
// hold the two halves of the pipeline; Analyze chains them.
package fasthuff

import (
	"fmt"
	"io"

	"github.com/intel/fasthuff/frequency"
	"github.com/intel/fasthuff/huffman"
)

// Result holds every stage of an analysis.
type Result struct {
	Frequencies frequency.Map
	Root        *huffman.Node[rune]
	Codes       huffman.Table[rune]
}

// EncodedBits returns the size in bits of the analyzed text once encoded
// with Codes.
func (r *Result) EncodedBits() uint64 {
	return r.Codes.EncodedBits(r.Frequencies)
}

// Analyze counts the characters of r and builds their code table.
// An input without characters fails with huffman.ErrEmptyInput; a read
// failure is returned as a *frequency.ReadError.
func Analyze(r io.Reader) (*Result, error) {
	freqs, err := frequency.FromReader(r)
	if err != nil {
		return nil, err
	}
	root, err := huffman.Build(freqs)
	if err != nil {
		return nil, fmt.Errorf("fasthuff: %w", err)
	}
	return &Result{
		Frequencies: freqs,
		Root:        root,
		Codes:       huffman.Codes(root),
	}, nil
}

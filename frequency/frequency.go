// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package frequency counts how often each character occurs in a text stream.
//
// A character is one decoded Unicode code point. Bytes that are not valid
// UTF-8 are counted as utf8.RuneError, the same way a range loop over a Go
// string decodes them.
package frequency

import (
	"maps"
	"slices"
	"unicode/utf8"
)

// Map maps a character to its number of occurrences.
// Characters that never occurred have no entry.
type Map map[rune]uint64

// Count returns the character counts of a single chunk.
func Count(s string) Map {
	m := make(Map)
	for _, r := range s {
		m[r]++
	}
	return m
}

// Total returns the number of characters counted.
func (m Map) Total() (n uint64) {
	for _, v := range m {
		n += v
	}
	return n
}

// Symbols returns the characters of m in ascending order.
func (m Map) Symbols() []rune {
	syms := make([]rune, 0, len(m))
	for r := range m {
		syms = append(syms, r)
	}
	slices.Sort(syms)
	return syms
}

// Merge adds the counts of o into m.
func (m Map) Merge(o Map) {
	for r, v := range o {
		m[r] += v
	}
}

// Clone returns a copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return make(Map)
	}
	return maps.Clone(m)
}

// Equal reports whether m and o hold the same counts.
func (m Map) Equal(o Map) bool {
	return maps.Equal(m, o)
}

// Aggregator accumulates character counts over a sequence of chunks.
// Splitting the same text into different chunks yields the same counts,
// including when a chunk boundary falls inside a multi-byte sequence.
//
// The zero value is ready to use. An Aggregator is not safe for
// concurrent use.
type Aggregator struct {
	counts Map
	// incomplete UTF-8 sequence at the end of the last chunk
	pending []byte
}

// Add counts the characters of chunk.
func (a *Aggregator) Add(chunk []byte) {
	if a.counts == nil {
		a.counts = make(Map)
	}
	if len(a.pending) > 0 {
		chunk = append(append(make([]byte, 0, len(a.pending)+len(chunk)), a.pending...), chunk...)
		a.pending = a.pending[:0]
	}
	for len(chunk) > 0 {
		if !utf8.FullRune(chunk) {
			a.pending = append(a.pending, chunk...)
			return
		}
		r, size := utf8.DecodeRune(chunk)
		a.counts[r]++
		chunk = chunk[size:]
	}
}

// AddString counts the characters of chunk.
func (a *Aggregator) AddString(chunk string) {
	if len(a.pending) == 0 && utf8.ValidString(chunk) {
		if a.counts == nil {
			a.counts = make(Map)
		}
		for _, r := range chunk {
			a.counts[r]++
		}
		return
	}
	a.Add([]byte(chunk))
}

// Map returns a copy of the counts accumulated so far. A trailing
// incomplete sequence is counted as if the stream ended here, but stays
// pending so that a later Add can still complete it.
func (a *Aggregator) Map() Map {
	m := a.counts.Clone()
	for p := a.pending; len(p) > 0; {
		r, size := utf8.DecodeRune(p)
		m[r]++
		p = p[size:]
	}
	return m
}

// Reset discards all counts.
func (a *Aggregator) Reset() {
	a.counts = nil
	a.pending = a.pending[:0]
}

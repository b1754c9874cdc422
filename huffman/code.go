// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Code is a prefix code written as a string of '0' and '1'.
type Code string

// Len returns the number of bits in c.
func (c Code) Len() int {
	return len(c)
}

// Bits returns c as an integer, first bit most significant.
// ok is false when c is longer than 64 bits.
func (c Code) Bits() (v uint64, ok bool) {
	if len(c) > 64 {
		return 0, false
	}
	for i := 0; i < len(c); i++ {
		v = v<<1 | uint64(c[i]-'0')
	}
	return v, true
}

// Table maps each symbol of a tree to its code.
type Table[S constraints.Ordered] map[S]Code

// Codes generates the code table of the tree rooted at root: the code of a
// symbol is its root-to-leaf path, 0 for left and 1 for right.
// A root that is itself a leaf gets the one-bit code "0".
func Codes[S constraints.Ordered](root *Node[S]) Table[S] {
	t := make(Table[S])
	if root == nil {
		return t
	}
	if root.Leaf() {
		t[root.symbol] = "0"
		return t
	}
	root.Walk(func(n *Node[S], path Code) bool {
		if n.Leaf() {
			t[n.symbol] = path
		}
		return true
	})
	return t
}

// Symbols returns the symbols of t in ascending order.
func (t Table[S]) Symbols() []S {
	syms := make([]S, 0, len(t))
	for s := range t {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Lengths returns the code length of each symbol.
func (t Table[S]) Lengths() map[S]int {
	lens := make(map[S]int, len(t))
	for s, c := range t {
		lens[s] = c.Len()
	}
	return lens
}

// PrefixFree reports whether no code of t is a prefix of another
// and no code is empty.
func (t Table[S]) PrefixFree() bool {
	codes := make([]string, 0, len(t))
	for _, c := range t {
		if c == "" {
			return false
		}
		codes = append(codes, string(c))
	}
	sort.Strings(codes)
	// a code that prefixes another also prefixes its sorted successor
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}

// EncodedBits returns the number of bits needed to encode every
// occurrence counted in freqs. Symbols missing from t are ignored.
func (t Table[S]) EncodedBits(freqs map[S]uint64) (n uint64) {
	for s, f := range freqs {
		n += f * uint64(len(t[s]))
	}
	return n
}

// Clone returns a copy of t.
func (t Table[S]) Clone() Table[S] {
	c := make(Table[S], len(t))
	for s, code := range t {
		c[s] = code
	}
	return c
}

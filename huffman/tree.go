// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"sort"

	"github.com/intel/fasthuff/huffman/internal/pqueue"
	"golang.org/x/exp/constraints"
)

// Build builds the huffman tree of freqs.
//
// Nodes are merged lowest frequency first; the first node taken becomes
// the left child. Ties are broken by nodeLess, so the tree depends only on
// the contents of freqs and never on map iteration order. A map with a
// single symbol yields a lone leaf as root.
func Build[S constraints.Ordered, F constraints.Integer](freqs map[S]F) (*Node[S], error) {
	leaves, err := newLeaves(freqs)
	if err != nil {
		return nil, err
	}

	q := pqueue.New(nodeLess[S], leaves...)
	seq := len(leaves)
	for q.Len() > 1 {
		a := q.Pop()
		b := q.Pop()
		q.Push(&Node[S]{left: a, right: b, freq: a.freq + b.freq, seq: seq})
		seq++
	}
	return q.Pop(), nil
}

// newLeaves validates freqs and returns one leaf per symbol, numbered in
// ascending symbol order.
func newLeaves[S constraints.Ordered, F constraints.Integer](freqs map[S]F) ([]*Node[S], error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}
	syms := make([]S, 0, len(freqs))
	for s := range freqs {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	leaves := make([]*Node[S], len(syms))
	for i, s := range syms {
		f := freqs[s]
		if f <= 0 {
			return nil, &InvalidFrequencyError{Symbol: s, Frequency: int64(f)}
		}
		leaves[i] = &Node[S]{symbol: s, freq: uint64(f), seq: i}
	}
	return leaves, nil
}

// nodeLess orders nodes by ascending frequency. Equal leaves go by
// ascending symbol; any other tie goes by creation order, which puts leaves
// before internal nodes and older internal nodes before newer ones.
func nodeLess[S constraints.Ordered](a, b *Node[S]) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.Leaf() && b.Leaf() {
		return a.symbol < b.symbol
	}
	return a.seq < b.seq
}

// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a node of a huffman tree. A leaf holds one symbol and its
// frequency; an internal node owns exactly two children and its frequency
// is the sum of theirs.
type Node[S constraints.Ordered] struct {
	left, right *Node[S]
	symbol      S
	freq        uint64
	// creation order, breaks frequency ties between non-leaf entries
	seq int
}

// Leaf reports whether n holds a symbol.
func (n *Node[S]) Leaf() bool {
	return n.left == nil
}

// Symbol returns the symbol of a leaf. It is the zero value for an
// internal node.
func (n *Node[S]) Symbol() S {
	return n.symbol
}

// Frequency returns the total frequency of all leaves beneath n.
func (n *Node[S]) Frequency() uint64 {
	return n.freq
}

// Left returns the child reached with a 0 bit, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the child reached with a 1 bit, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node[S]) Depth() int {
	if n.Leaf() {
		return 0
	}
	l, r := n.left.Depth(), n.right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Leaves returns the symbols of all leaves from left to right.
func (n *Node[S]) Leaves() []S {
	var syms []S
	n.Walk(func(m *Node[S], _ Code) bool {
		if m.Leaf() {
			syms = append(syms, m.symbol)
		}
		return true
	})
	return syms
}

// Walk visits n and its descendants depth first, left before right.
// path is the code of the visited node relative to n. Children of a node
// are skipped when fn returns false for it.
func (n *Node[S]) Walk(fn func(node *Node[S], path Code) bool) {
	buf := make([]byte, 0, 32)
	n.walk(fn, buf)
}

func (n *Node[S]) walk(fn func(*Node[S], Code) bool, path []byte) {
	if !fn(n, Code(path)) || n.Leaf() {
		return
	}
	n.left.walk(fn, append(path, '0'))
	n.right.walk(fn, append(path, '1'))
}

func (n *Node[S]) String() string {
	if n.Leaf() {
		return fmt.Sprintf("%v:%d", n.symbol, n.freq)
	}
	return fmt.Sprintf("(%v %v):%d", n.left, n.right, n.freq)
}

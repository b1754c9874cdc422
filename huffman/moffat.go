// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// OptimalBits returns the minimum number of bits any prefix code needs to
// encode freqs, computed with Moffat and Katajainen's In-Place Calculation
// of Minimum-Redundancy Codes. See http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
// A single symbol costs one bit per occurrence, matching Codes.
func OptimalBits[S constraints.Ordered, F constraints.Integer](freqs map[S]F) (uint64, error) {
	leaves, err := newLeaves(freqs)
	if err != nil {
		return 0, err
	}
	weights := make([]uint64, len(leaves))
	for i, l := range leaves {
		weights[i] = l.freq
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i] > weights[j] })

	lens := append([]uint64(nil), weights...)
	codeLens(lens)
	var total uint64
	for i, w := range weights {
		total += w * lens[i]
	}
	return total, nil
}

// codeLens replaces the non-increasing weights in w by their code lengths
// and returns the longest one.
func codeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] = w[leaf]
			leaf--
		}

		// second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2: internal node depths
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3: leaf depths
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}

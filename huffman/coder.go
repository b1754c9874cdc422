// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"crypto/sha256"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

// DefaultCacheSize is the number of code tables a Coder keeps by default.
const DefaultCacheSize = 128

type config struct {
	cacheSize int
}

// Option is a functional option for configuring a Coder.
type Option func(*config)

// WithCacheSize sets how many code tables the Coder remembers.
// Values below 1 fall back to DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// Coder builds code tables and remembers the most recently used ones.
// Since a table depends only on the frequencies it was built from, a
// repeated histogram is served from the cache.
//
// A Coder is safe for concurrent use. Every build uses its own queue, and
// callers always receive their own copy of a table.
type Coder[S constraints.Ordered, F constraints.Integer] struct {
	cache *lru.Cache[[sha256.Size]byte, Table[S]]
}

// NewCoder creates a new Coder with the given options.
func NewCoder[S constraints.Ordered, F constraints.Integer](opts ...Option) (*Coder[S, F], error) {
	cfg := config{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize < 1 {
		cfg.cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[[sha256.Size]byte, Table[S]](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("huffman: create table cache: %w", err)
	}
	return &Coder[S, F]{cache: cache}, nil
}

// Table returns the code table of freqs, building it on a cache miss.
func (c *Coder[S, F]) Table(freqs map[S]F) (Table[S], error) {
	key := fingerprint(freqs)
	if t, ok := c.cache.Get(key); ok {
		return t.Clone(), nil
	}
	root, err := Build(freqs)
	if err != nil {
		return nil, err
	}
	t := Codes(root)
	c.cache.Add(key, t)
	return t.Clone(), nil
}

// Len returns the number of cached tables.
func (c *Coder[S, F]) Len() int {
	return c.cache.Len()
}

// Purge drops every cached table.
func (c *Coder[S, F]) Purge() {
	c.cache.Purge()
}

// fingerprint hashes the contents of freqs independent of iteration order.
func fingerprint[S constraints.Ordered, F constraints.Integer](freqs map[S]F) [sha256.Size]byte {
	syms := make([]S, 0, len(freqs))
	for s := range freqs {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	h := sha256.New()
	for _, s := range syms {
		fmt.Fprintf(h, "%#v=%d,", s, freqs[s])
	}
	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	return sum
}

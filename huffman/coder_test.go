// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoderCache(t *testing.T) {
	c, err := NewCoder[rune, uint64](WithCacheSize(2))
	require.NoError(t, err)

	first, err := c.Table(scenarioFreqs())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	first['E'] = "changed"
	second, err := c.Table(scenarioFreqs())
	require.NoError(t, err)
	assert.Equal(t, Code("0"), second['E'])
	assert.Equal(t, 1, c.Len())

	for _, text := range []string{"aab", "abc", "xyzz"} {
		freqs := make(map[rune]uint64)
		for _, r := range text {
			freqs[r]++
		}
		_, err := c.Table(freqs)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Zero(t, c.Len())
}

func TestCoderErrors(t *testing.T) {
	c, err := NewCoder[string, int](WithCacheSize(0))
	require.NoError(t, err)

	_, err = c.Table(map[string]int{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = c.Table(map[string]int{"a": 0})
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.Zero(t, c.Len())
}

func TestCoderConcurrent(t *testing.T) {
	c, err := NewCoder[rune, uint64]()
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(9))
	inputs := make([]map[rune]uint64, 16)
	want := make([]Table[rune], len(inputs))
	for i := range inputs {
		inputs[i] = randomFreqs(rnd)
		root, err := Build(inputs[i])
		require.NoError(t, err)
		want[i] = Codes(root)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(inputs))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, freqs := range inputs {
				got, err := c.Table(freqs)
				if err != nil {
					errs <- err
					return
				}
				if !assert.Equal(t, want[i], got) {
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"z": 3, "y": 2, "x": 1}
	assert.Equal(t, fingerprint(a), fingerprint(b))
	assert.NotEqual(t, fingerprint(a), fingerprint(map[string]int{"x": 1, "y": 2, "z": 4}))
	assert.NotEqual(t, fingerprint(map[string]int{"a=1,b": 1}), fingerprint(map[string]int{"a": 1, "b": 1}))
}

// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLRU(t *testing.T) {
	cache := NewBasicLRU[int, int](2)

	assert.False(t, cache.Add(1, 10))
	assert.False(t, cache.Add(2, 20))

	// touch 1 so that 2 becomes the eviction candidate
	v, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, cache.Add(3, 30))
	assert.False(t, cache.Contains(2))
	assert.True(t, cache.Contains(1))
	assert.True(t, cache.Contains(3))
	assert.Equal(t, 2, cache.Len())

	assert.False(t, cache.Add(3, 31))
	v, _ = cache.Get(3)
	assert.Equal(t, 31, v)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	assert.False(t, cache.Add(4, 40))
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache[string, int](16)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				cache.Add(string(rune('a'+j%26)), n)
				cache.Get(string(rune('a' + j%26)))
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	cache.Add("z", 26)
	v, ok := cache.Get("z")
	assert.True(t, ok)
	assert.Equal(t, 26, v)
}

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

package abi

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/log"
	"golang.org/x/sync/singleflight"
)

// Cache holds parsed interfaces keyed by a stable contract identifier. An
// entry is loaded once on first access and never evicted. Concurrent first
// accesses to the same identifier share a single load.
// Cache 按稳定的合约标识符保存已解析的接口，首次访问时加载一次，永不淘汰。
type Cache struct {
	entries sync.Map // string -> *Interface
	loads   singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return new(Cache)
}

// Get returns the interface cached under id, calling load to create it if
// absent. Failed loads are not cached.
func (c *Cache) Get(id string, load func() (*Interface, error)) (*Interface, error) {
	if abi, ok := c.entries.Load(id); ok {
		return abi.(*Interface), nil
	}
	v, err, _ := c.loads.Do(id, func() (interface{}, error) {
		if abi, ok := c.entries.Load(id); ok {
			return abi, nil
		}
		abi, err := load()
		if err != nil {
			return nil, err
		}
		if abi == nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "nil interface loaded for %q", id)
		}
		c.entries.Store(id, abi)
		log.Debug("Cached contract interface", "id", id, "fragments", len(abi.Fragments))
		return abi, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Interface), nil
}

// Lookup returns the interface cached under id without loading it.
func (c *Cache) Lookup(id string) (*Interface, bool) {
	abi, ok := c.entries.Load(id)
	if !ok {
		return nil, false
	}
	return abi.(*Interface), true
}

// Len returns the number of cached interfaces.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

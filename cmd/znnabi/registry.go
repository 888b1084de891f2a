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

package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/accounts/abi"
	"github.com/znn-sdk/go-znn/embedded"
	"github.com/znn-sdk/go-znn/internal/flags"
	"github.com/znn-sdk/go-znn/log"
)

// registry resolves contract identifiers to parsed interfaces. Embedded
// contracts come first, then the ones listed in the config file.
type registry struct {
	files map[string]string
	abis  *abi.Cache
}

func newRegistry(dir string, contracts map[string]string) *registry {
	files := make(map[string]string, len(contracts))
	for id, path := range contracts {
		path = flags.ExpandPath(path)
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		files[id] = path
	}
	return &registry{files: files, abis: abi.NewCache()}
}

// contract returns the interface registered under id.
func (r *registry) contract(id string) (*abi.Interface, error) {
	if _, ok := embedded.Definition(id); ok {
		return embedded.ABI(id)
	}
	path, ok := r.files[id]
	if !ok {
		return nil, errors.Wrapf(embedded.ErrUnknownContract, "%q", id)
	}
	return r.abis.Get(id, func() (*abi.Interface, error) {
		return loadFile(path)
	})
}

// file returns the interface stored in the JSON file at path.
func (r *registry) file(path string) (*abi.Interface, error) {
	path = flags.ExpandPath(path)
	return r.abis.Get("file:"+path, func() (*abi.Interface, error) {
		return loadFile(path)
	})
}

// ids lists the configured contract identifiers in sorted order.
func (r *registry) ids() []string {
	ids := make([]string, 0, len(r.files))
	for id := range r.files {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func loadFile(path string) (*abi.Interface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	iface, err := abi.JSON(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Debug("Loaded contract interface", "path", path, "fragments", len(iface.Fragments))
	return iface, nil
}

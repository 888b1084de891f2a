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
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
)

// Result is the ordered output of decoding a parameter list or tuple. Values
// are positional, members whose name is unique within the list are also
// reachable by name.
// Result 是解码参数列表或元组的有序输出。值按位置排列，名称唯一的成员也可按名称访问。
type Result struct {
	Values []interface{}
	names  map[string]int
}

// newResult pairs values with their parameter names. Duplicate names are only
// accessible positionally, and "length" is exposed as "_length".
func newResult(values []interface{}, names []string) *Result {
	seen := mapset.NewThreadUnsafeSet[string]()
	dups := mapset.NewThreadUnsafeSet[string]()
	for _, name := range names {
		if name == "" {
			continue
		}
		if !seen.Add(name) {
			dups.Add(name)
		}
	}
	res := &Result{Values: values, names: make(map[string]int)}
	for i, name := range names {
		if name == "" || dups.Contains(name) {
			continue
		}
		if name == "length" {
			name = "_length"
		}
		res.names[name] = i
	}
	return res
}

// Len returns the number of values.
func (r *Result) Len() int {
	return len(r.Values)
}

// Index returns the i'th value.
func (r *Result) Index(i int) interface{} {
	return r.Values[i]
}

// Get returns the value of the uniquely named member.
func (r *Result) Get(name string) (interface{}, bool) {
	i, ok := r.names[name]
	if !ok {
		return nil, false
	}
	return r.Values[i], true
}

// Map returns the uniquely named members keyed by name.
func (r *Result) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(r.names))
	for name, i := range r.names {
		out[name] = r.Values[i]
	}
	return out
}

// MarshalJSON renders the positional values.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Values)
}

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
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// arrayCoder handles T[k] and T[]. Dynamic arrays carry a leading count word,
// the elements are packed as a tuple of identical members.
// arrayCoder 处理 T[k] 和 T[]。动态数组带有前导计数字，元素按相同成员的元组打包。
type arrayCoder struct {
	coderBase
	coder  Coder
	length int
}

func newArrayCoder(coder Coder, length int, localName string) *arrayCoder {
	return &arrayCoder{
		coderBase: coderBase{
			name:      "array",
			typ:       coder.Type() + arraySuffix(length),
			localName: localName,
			dynamic:   length < 0 || coder.Dynamic(),
		},
		coder:  coder,
		length: length,
	}
}

func (c *arrayCoder) DefaultValue() interface{} {
	if c.length < 0 {
		return []interface{}{}
	}
	values := make([]interface{}, c.length)
	for i := range values {
		values[i] = c.coder.DefaultValue()
	}
	return values
}

func (c *arrayCoder) Encode(w *Writer, value interface{}) (int, error) {
	values, err := toSlice(value)
	if err != nil {
		return 0, c.argumentError(value, "expected array value")
	}
	count := c.length
	n := 0
	if count < 0 {
		count = len(values)
		n = w.WriteValue(uint256.NewInt(uint64(count)))
	}
	switch {
	case len(values) < count:
		return 0, errors.Wrapf(ErrMissingArgument, "%s expects %d values, got %d", c.label(), count, len(values))
	case len(values) > count:
		return 0, errors.Wrapf(ErrTooManyArguments, "%s expects %d values, got %d", c.label(), count, len(values))
	}
	m, err := pack(w, c.elementCoders(count), values)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

func (c *arrayCoder) Decode(r *Reader) (interface{}, error) {
	count := c.length
	if count < 0 {
		word, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		// every element takes at least one word, reject counts the data cannot hold
		if !word.IsUint64() || word.Uint64() > uint64(len(r.Data())/WordSize) {
			return nil, errors.Wrapf(ErrBufferOverrun, "insufficient data length for %s elements", word.Dec())
		}
		count = int(word.Uint64())
	}
	res, err := unpack(r, c.elementCoders(count))
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, res.Values), nil
}

func (c *arrayCoder) elementCoders(count int) []Coder {
	coders := make([]Coder, count)
	for i := range coders {
		coders[i] = anonymousCoder{c.coder}
	}
	return coders
}

// tupleCoder packs its members head and tail.
type tupleCoder struct {
	coderBase
	coders []Coder
}

func newTupleCoder(coders []Coder, localName string) *tupleCoder {
	types := make([]string, len(coders))
	dynamic := false
	for i, coder := range coders {
		types[i] = coder.Type()
		if coder.Dynamic() {
			dynamic = true
		}
	}
	return &tupleCoder{
		coderBase: coderBase{
			name:      "tuple",
			typ:       "(" + strings.Join(types, ",") + ")",
			localName: localName,
			dynamic:   dynamic,
		},
		coders: coders,
	}
}

func (c *tupleCoder) DefaultValue() interface{} {
	values := make([]interface{}, len(c.coders))
	names := make([]string, len(c.coders))
	for i, coder := range c.coders {
		values[i] = coder.DefaultValue()
		names[i] = coder.LocalName()
	}
	return newResult(values, names)
}

func (c *tupleCoder) Encode(w *Writer, value interface{}) (int, error) {
	values, err := tupleValues(c.coders, value)
	if err != nil {
		return 0, err
	}
	return pack(w, c.coders, values)
}

func (c *tupleCoder) Decode(r *Reader) (interface{}, error) {
	res, err := unpack(r, c.coders)
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, res), nil
}

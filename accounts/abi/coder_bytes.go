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
	"strconv"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common"
)

// bytesCoder writes a length word followed by the padded payload.
type bytesCoder struct {
	coderBase
}

func newBytesCoder(localName string) *bytesCoder {
	return &bytesCoder{coderBase{name: "bytes", typ: "bytes", localName: localName, dynamic: true}}
}

func (c *bytesCoder) DefaultValue() interface{} { return []byte{} }

func (c *bytesCoder) Encode(w *Writer, value interface{}) (int, error) {
	b, ok := toBytes(value)
	if !ok {
		return 0, c.argumentError(value, "invalid bytes value")
	}
	return encodeDynamicBytes(w, b), nil
}

func (c *bytesCoder) Decode(r *Reader) (interface{}, error) {
	b, err := decodeDynamicBytes(r)
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, b), nil
}

func encodeDynamicBytes(w *Writer, b []byte) int {
	n := w.WriteValue(uint256.NewInt(uint64(len(b))))
	return n + w.WriteBytes(b)
}

func decodeDynamicBytes(r *Reader) ([]byte, error) {
	length, err := r.readLength()
	if err != nil {
		return nil, err
	}
	b, err := r.readBytes(length, true)
	if err != nil {
		return nil, err
	}
	return common.CopyBytes(b), nil
}

// stringCoder is the bytes coder over the UTF-8 form of a string.
type stringCoder struct {
	coderBase
}

func newStringCoder(localName string) *stringCoder {
	return &stringCoder{coderBase{name: "string", typ: "string", localName: localName, dynamic: true}}
}

func (c *stringCoder) DefaultValue() interface{} { return "" }

func (c *stringCoder) Encode(w *Writer, value interface{}) (int, error) {
	s, ok := value.(string)
	if !ok {
		return 0, c.argumentError(value, "invalid string value")
	}
	return encodeDynamicBytes(w, []byte(s)), nil
}

func (c *stringCoder) Decode(r *Reader) (interface{}, error) {
	b, err := decodeDynamicBytes(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errors.Wrap(ErrInvalidArgument, "invalid UTF-8 string")
	}
	return r.Coerce(c.name, string(b)), nil
}

// fixedBytesCoder handles bytes1 ... bytes32, left aligned in one word.
type fixedBytesCoder struct {
	coderBase
	size int
}

func newFixedBytesCoder(size int, localName string) *fixedBytesCoder {
	name := "bytes" + strconv.Itoa(size)
	return &fixedBytesCoder{coderBase: coderBase{name: name, typ: name, localName: localName}, size: size}
}

func (c *fixedBytesCoder) DefaultValue() interface{} { return make([]byte, c.size) }

func (c *fixedBytesCoder) Encode(w *Writer, value interface{}) (int, error) {
	b, ok := toBytes(value)
	if !ok {
		return 0, c.argumentError(value, "invalid bytes value")
	}
	if len(b) != c.size {
		return 0, c.argumentError(value, "incorrect data length")
	}
	return w.WriteBytes(b), nil
}

func (c *fixedBytesCoder) Decode(r *Reader) (interface{}, error) {
	b, err := r.ReadBytes(c.size)
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, common.CopyBytes(b)), nil
}

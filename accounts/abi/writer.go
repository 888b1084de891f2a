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
	"github.com/holiman/uint256"
	"github.com/znn-sdk/go-znn/common"
)

// WordSize is the width of one ABI slot in bytes.
const WordSize = 32

// Writer accumulates word aligned chunks. Its length is always a multiple of
// the word size.
// Writer 累积按字对齐的数据块，其长度始终是字长的整数倍。
type Writer struct {
	wordSize int
	data     [][]byte
	length   int
}

// NewWriter creates an empty writer with the default word size.
func NewWriter() *Writer {
	return &Writer{wordSize: WordSize}
}

// Bytes returns the concatenation of everything written so far.
func (w *Writer) Bytes() []byte {
	out := make([]byte, 0, w.length)
	for _, chunk := range w.data {
		out = append(out, chunk...)
	}
	return out
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.length
}

// Words returns the number of words written.
func (w *Writer) Words() int {
	return w.length / w.wordSize
}

func (w *Writer) writeData(data []byte) int {
	w.data = append(w.data, data)
	w.length += len(data)
	return len(data) / w.wordSize
}

// AppendWriter appends the content of other and returns its word count.
func (w *Writer) AppendWriter(other *Writer) int {
	return w.writeData(other.Bytes())
}

// WriteBytes writes b right padded with zeros to the next word boundary.
// An empty slice writes nothing.
func (w *Writer) WriteBytes(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	padded := make([]byte, common.AlignedLength(len(b), w.wordSize))
	copy(padded, b)
	return w.writeData(padded)
}

// WriteValue writes v as a single big endian word.
func (w *Writer) WriteValue(v *uint256.Int) int {
	word := v.Bytes32()
	return w.writeData(word[:])
}

// WriteUpdatableValue reserves a zero word and returns a function that
// overwrites it later. Tuple packing uses it to backfill tail offsets.
func (w *Writer) WriteUpdatableValue() func(v *uint256.Int) {
	offset := len(w.data)
	w.writeData(make([]byte, w.wordSize))
	return func(v *uint256.Int) {
		word := v.Bytes32()
		w.data[offset] = word[:]
	}
}

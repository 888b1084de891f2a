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
	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common"
)

// CoerceFunc post-processes every decoded value. It receives the coder name
// ("uint256", "address", "tuple", "array", ...) and the decoded value and
// returns the value handed to the caller.
// CoerceFunc 对每个解码值进行后处理。
type CoerceFunc func(typ string, value interface{}) interface{}

// Reader is a cursor over ABI encoded data.
// Reader 是 ABI 编码数据上的游标。
type Reader struct {
	data       []byte
	wordSize   int
	coerceFunc CoerceFunc
	allowLoose bool
	offset     int
}

// NewReader creates a reader positioned at the start of data. When
// allowLoose is set, reads that run past the end of the data are zero padded
// instead of failing.
func NewReader(data []byte, coerceFunc CoerceFunc, allowLoose bool) *Reader {
	return &Reader{
		data:       data,
		wordSize:   WordSize,
		coerceFunc: coerceFunc,
		allowLoose: allowLoose,
	}
}

// Data returns the underlying buffer.
func (r *Reader) Data() []byte {
	return r.data
}

// Consumed returns the cursor position in bytes.
func (r *Reader) Consumed() int {
	return r.offset
}

// Coerce applies the configured coerce function, the identity if none is set.
func (r *Reader) Coerce(typ string, value interface{}) interface{} {
	if r.coerceFunc == nil {
		return value
	}
	return r.coerceFunc(typ, value)
}

// peekBytes returns length bytes at the cursor plus the padding up to the next
// word boundary.
func (r *Reader) peekBytes(length int, loose bool) ([]byte, error) {
	aligned := common.AlignedLength(length, r.wordSize)
	if length < 0 || r.offset+aligned > len(r.data) {
		if r.allowLoose && loose && length >= 0 {
			padded := make([]byte, aligned)
			if r.offset < len(r.data) {
				copy(padded, r.data[r.offset:])
			}
			return padded, nil
		}
		return nil, errors.Wrapf(ErrBufferOverrun, "reading %d bytes at offset %d of %d", aligned, r.offset, len(r.data))
	}
	return r.data[r.offset : r.offset+aligned], nil
}

// ReadBytes returns the next length bytes and advances the cursor by the
// word aligned length.
// ReadBytes 返回接下来的 length 个字节，并按字对齐后的长度推进游标。
func (r *Reader) ReadBytes(length int) ([]byte, error) {
	return r.readBytes(length, false)
}

func (r *Reader) readBytes(length int, loose bool) ([]byte, error) {
	b, err := r.peekBytes(length, loose)
	if err != nil {
		return nil, err
	}
	r.offset += len(b)
	return b[:length], nil
}

// ReadValue reads one word as an unsigned big endian integer.
func (r *Reader) ReadValue() (*uint256.Int, error) {
	b, err := r.readBytes(r.wordSize, true)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

// readLength reads one word that must describe a byte offset or a count
// addressable within the data.
func (r *Reader) readLength() (int, error) {
	v, err := r.ReadValue()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() || v.Uint64() > uint64(len(r.data)) {
		return 0, errors.Wrapf(ErrBufferOverrun, "length or offset %s exceeds data size %d", v.Dec(), len(r.data))
	}
	return int(v.Uint64()), nil
}

// SubReader returns a reader over the same buffer starting offset bytes past
// the current cursor.
// SubReader 返回一个共享同一缓冲区、从当前游标之后 offset 字节处开始的读取器。
func (r *Reader) SubReader(offset int) (*Reader, error) {
	start := r.offset + offset
	if offset < 0 || start > len(r.data) {
		return nil, errors.Wrapf(ErrBufferOverrun, "offset %d exceeds data size %d", start, len(r.data))
	}
	return &Reader{
		data:       r.data[start:],
		wordSize:   r.wordSize,
		coerceFunc: r.coerceFunc,
		allowLoose: r.allowLoose,
	}, nil
}

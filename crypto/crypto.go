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

// Package crypto provides the digest used to derive selectors, event topics
// and hashed indexed values.
package crypto

import (
	"hash"

	"github.com/znn-sdk/go-znn/common"
	"golang.org/x/crypto/sha3"
)

// DigestLength is the byte length of a digest.
// DigestLength 摘要的字节长度。
const DigestLength = 32

// NewDigestState creates a fresh SHA3-256 state.
func NewDigestState() hash.Hash {
	return sha3.New256()
}

// DigestData hashes the provided data using the given state and returns a 32 byte hash.
// The state is reset before use.
func DigestData(d hash.Hash, data []byte) (h common.Hash) {
	d.Reset()
	d.Write(data)
	d.Sum(h[:0])
	return h
}

// Digest calculates and returns the SHA3-256 hash of the input data.
// Digest 计算并返回输入数据的 SHA3-256 哈希值。
func Digest(data ...[]byte) []byte {
	d := NewDigestState()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// DigestHash calculates and returns the SHA3-256 hash of the input data,
// converting it to an internal Hash data structure.
func DigestHash(data ...[]byte) (h common.Hash) {
	copy(h[:], Digest(data...))
	return h
}

// Id hashes the UTF-8 bytes of text. It is the identity function used for
// fragment signatures and for indexed string values.
// Id 对 text 的 UTF-8 字节进行哈希。
func Id(text string) common.Hash {
	return DigestHash([]byte(text))
}

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

package common

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
)

// Lengths of hashes, addresses and token standards in bytes.
const (
	// HashLength is the expected length of the hash
	HashLength = 32
	// AddressLength is the expected length of the address core
	AddressLength = 20
	// TokenStandardLength is the expected length of the token standard core
	TokenStandardLength = 10
)

// Human readable parts of the bech32 encoded identifiers.
const (
	AddressPrefix       = "z"
	TokenStandardPrefix = "zts"
)

var (
	ErrInvalidHash          = errors.New("invalid hash")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidTokenStandard = errors.New("invalid token standard")
)

/////////// Hash

// Hash represents the 32 byte digest of arbitrary data.
// Hash 表示任意数据的 32 字节摘要。
type Hash [HashLength]byte

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// ParseHash decodes a 64 character hex string, the 0x prefix is optional.
// ParseHash 解码 64 个字符的十六进制字符串，0x 前缀可选。
func ParseHash(s string) (Hash, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) != 2*HashLength {
		return Hash{}, errors.Wrapf(ErrInvalidHash, "expected %d hex characters, got %d", 2*HashLength, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, errors.Wrap(ErrInvalidHash, err.Error())
	}
	return BytesToHash(b), nil
}

// MustParseHash is like ParseHash but panics on malformed input.
func MustParseHash(s string) Hash {
	h, err := ParseHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex converts a hash to a 0x prefixed hex string.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String renders the hash as bare hex, the form used by the node APIs.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	parsed, err := ParseHash(string(input))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

/////////// Address

// Address represents the 20 byte core of a bech32 encoded account address.
// Address 表示 bech32 编码账户地址的 20 字节核心。
type Address [AddressLength]byte

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// ParseAddress decodes a bech32 address carrying the "z" human readable part.
// ParseAddress 解码带有 "z" 人类可读部分的 bech32 地址。
func ParseAddress(s string) (Address, error) {
	core, err := decodeBech32(s, AddressPrefix, AddressLength)
	if err != nil {
		return Address{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}
	return BytesToAddress(core), nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes gets the byte representation of the address core.
func (a Address) Bytes() []byte { return a[:] }

// String implements fmt.Stringer, rendering the bech32 form.
func (a Address) String() string { return encodeBech32(AddressPrefix, a[:]) }

// SetBytes sets the address to the value of b.
// If b is larger than len(a), b will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// MarshalText returns the bech32 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses an address in bech32 syntax.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

/////////// TokenStandard

// TokenStandard is the 10 byte core of a bech32 encoded token identifier.
// TokenStandard 是 bech32 编码代币标识符的 10 字节核心。
type TokenStandard [TokenStandardLength]byte

// BytesToTokenStandard returns TokenStandard with value b.
func BytesToTokenStandard(b []byte) TokenStandard {
	var zts TokenStandard
	if len(b) > len(zts) {
		b = b[len(b)-TokenStandardLength:]
	}
	copy(zts[TokenStandardLength-len(b):], b)
	return zts
}

// ParseTokenStandard decodes a bech32 token standard carrying the "zts" human readable part.
func ParseTokenStandard(s string) (TokenStandard, error) {
	core, err := decodeBech32(s, TokenStandardPrefix, TokenStandardLength)
	if err != nil {
		return TokenStandard{}, errors.Wrapf(ErrInvalidTokenStandard, "%q: %v", s, err)
	}
	return BytesToTokenStandard(core), nil
}

// MustParseTokenStandard is like ParseTokenStandard but panics on malformed input.
func MustParseTokenStandard(s string) TokenStandard {
	zts, err := ParseTokenStandard(s)
	if err != nil {
		panic(err)
	}
	return zts
}

// Bytes gets the byte representation of the token standard core.
func (zts TokenStandard) Bytes() []byte { return zts[:] }

// String implements fmt.Stringer, rendering the bech32 form.
func (zts TokenStandard) String() string { return encodeBech32(TokenStandardPrefix, zts[:]) }

// MarshalText returns the bech32 representation of zts.
func (zts TokenStandard) MarshalText() ([]byte, error) {
	return []byte(zts.String()), nil
}

// UnmarshalText parses a token standard in bech32 syntax.
func (zts *TokenStandard) UnmarshalText(input []byte) error {
	parsed, err := ParseTokenStandard(string(input))
	if err != nil {
		return err
	}
	*zts = parsed
	return nil
}

func decodeBech32(s, prefix string, length int) ([]byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, err
	}
	if hrp != prefix {
		return nil, errors.Errorf("unexpected prefix %q", hrp)
	}
	core, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(core) != length {
		return nil, errors.Errorf("expected %d bytes, got %d", length, len(core))
	}
	return core, nil
}

func encodeBech32(prefix string, core []byte) string {
	data, err := bech32.ConvertBits(core, 8, 5, true)
	if err != nil {
		panic(err)
	}
	s, err := bech32.Encode(prefix, data)
	if err != nil {
		panic(err)
	}
	return s
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && strings.ToLower(s[1:2]) == "x"
}

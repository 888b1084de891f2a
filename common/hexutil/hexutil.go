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

/*
Package hexutil implements hex encoding with 0x prefix.

Byte strings travel through the codec and the command line tools as 0x-prefixed
hex. Decoding tolerates an odd number of digits only when the caller opts in via
DecodeLoose, everything else is strict.
*/
package hexutil

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

var (
	ErrEmptyString   = errors.New("empty hex string")
	ErrMissingPrefix = errors.New("missing 0x prefix for hex data")
	ErrSyntax        = errors.New("invalid hex")
	ErrOddLength     = errors.New("hex string has odd length")
)

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !Has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	return decodeRaw(input[2:])
}

// DecodeLoose decodes a hex string where the 0x prefix is optional and an odd
// digit count is left padded with a zero nibble.
func DecodeLoose(input string) ([]byte, error) {
	if Has0xPrefix(input) {
		input = input[2:]
	}
	if len(input)%2 == 1 {
		input = "0" + input
	}
	return decodeRaw(input)
}

// MustDecode decodes a hex string with 0x prefix. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Has0xPrefix reports whether input starts with 0x or 0X.
func Has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// IsHex reports whether input is 0x-prefixed and made only of hex digits.
func IsHex(input string) bool {
	if !Has0xPrefix(input) {
		return false
	}
	for _, c := range []byte(input[2:]) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func decodeRaw(raw string) ([]byte, error) {
	if len(raw)%2 == 1 {
		return nil, ErrOddLength
	}
	dec, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return dec, nil
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

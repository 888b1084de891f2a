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

// Package math provides integer math utilities.
package math

import (
	"math/big"
	"regexp"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var (
	tt256 = BigPow(2, 256)

	// MaxBig256 is the largest value representable in a 256 bit word.
	MaxBig256 = new(big.Int).Sub(tt256, big.NewInt(1))
)

// ErrInvalidNumber is returned when a numeric string cannot be parsed.
var ErrInvalidNumber = errors.New("invalid number")

var (
	decimalRegex = regexp.MustCompile(`^-?[0-9]+$`)
	hexRegex     = regexp.MustCompile(`^-?0[xX][0-9a-fA-F]+$`)
)

// BigPow returns a ** b as a big integer.
func BigPow(a, b int64) *big.Int {
	r := big.NewInt(a)
	return r.Exp(r, big.NewInt(b), nil)
}

// BigFromString parses s as a signed decimal number, or as hex if it carries
// a 0x prefix after the optional sign.
// BigFromString 将 s 解析为有符号十进制数；若带有 0x 前缀则按十六进制解析。
func BigFromString(s string) (*big.Int, error) {
	switch {
	case decimalRegex.MatchString(s):
		n, _ := new(big.Int).SetString(s, 10)
		return n, nil
	case hexRegex.MatchString(s):
		neg := s[0] == '-'
		if neg {
			s = s[1:]
		}
		n, _ := new(big.Int).SetString(s[2:], 16)
		if neg {
			n.Neg(n)
		}
		return n, nil
	}
	return nil, errors.Wrapf(ErrInvalidNumber, "%q", s)
}

// MustBigFromString is like BigFromString but panics on malformed input.
func MustBigFromString(s string) *big.Int {
	n, err := BigFromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// BigFromBytes interprets b as an unsigned big endian integer.
func BigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BigFromInt64 returns v as a big integer.
func BigFromInt64(v int64) *big.Int {
	return big.NewInt(v)
}

// BigFromUint64 returns v as a big integer.
func BigFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// BigFromUint256 returns v as a big integer, nil maps to zero.
func BigFromUint256(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToBig()
}

// Mask keeps the low bits of x. Negative values are interpreted in two's
// complement, so the result is always in [0, 2**bits).
func Mask(x *big.Int, bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	m.Sub(m, big.NewInt(1))
	return m.And(x, m)
}

// ToTwos maps a negative x into its two's complement form of the given width.
// Non-negative values are returned unchanged.
// ToTwos 将负数 x 转换为给定位宽的二进制补码形式，非负数保持不变。
func ToTwos(x *big.Int, bits uint) *big.Int {
	if x.Sign() >= 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Add(x, new(big.Int).Lsh(big.NewInt(1), bits))
}

// FromTwos interprets the low bits of x as a two's complement number.
// FromTwos 将 x 的低位解释为二进制补码数。
func FromTwos(x *big.Int, bits uint) *big.Int {
	v := Mask(x, bits)
	if v.Bit(int(bits)-1) == 1 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	return v
}

// SignedBounds returns the inclusive range of a two's complement integer of the given width.
func SignedBounds(bits uint) (min, max *big.Int) {
	max = new(big.Int).Lsh(big.NewInt(1), bits-1)
	min = new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return min, max
}

// UnsignedMax returns the largest unsigned integer of the given width.
func UnsignedMax(bits uint) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return max.Sub(max, big.NewInt(1))
}

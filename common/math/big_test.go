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

package math

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigFromString(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-42", -42, true},
		{"0x2a", 42, true},
		{"-0x2A", -42, true},
		{"", 0, false},
		{"0x", 0, false},
		{"1e3", 0, false},
		{"--1", 0, false},
	}
	for _, tt := range tests {
		n, err := BigFromString(tt.input)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrInvalidNumber, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, n.Int64(), tt.input)
	}
}

func TestTwosComplement(t *testing.T) {
	minusTwo := big.NewInt(-2)

	twos := ToTwos(minusTwo, 8)
	assert.Equal(t, int64(0xfe), twos.Int64())
	assert.Equal(t, int64(-2), FromTwos(twos, 8).Int64())

	wide := ToTwos(minusTwo, 256)
	assert.Equal(t, new(big.Int).Sub(MaxBig256, big.NewInt(1)), wide)
	assert.Equal(t, int64(-2), FromTwos(wide, 256).Int64())

	assert.Equal(t, int64(0x7f), FromTwos(big.NewInt(0x7f), 8).Int64())
	assert.Equal(t, int64(-128), FromTwos(big.NewInt(0x80), 8).Int64())
}

func TestMask(t *testing.T) {
	assert.Equal(t, int64(0x34), Mask(big.NewInt(0x1234), 8).Int64())
	assert.Equal(t, int64(0xff), Mask(big.NewInt(-1), 8).Int64())
}

func TestBounds(t *testing.T) {
	min, max := SignedBounds(8)
	assert.Equal(t, int64(-128), min.Int64())
	assert.Equal(t, int64(127), max.Int64())
	assert.Equal(t, MaxBig256, UnsignedMax(256))
	assert.Equal(t, big.NewInt(7), BigFromUint256(uint256.NewInt(7)))
}

func TestBigHelpers(t *testing.T) {
	assert.Equal(t, "1024", BigPow(2, 10).String())
	assert.Equal(t, "258", BigFromBytes([]byte{1, 2}).String())
	assert.Equal(t, "-255", MustBigFromString("-0xff").String())
	assert.Panics(t, func() { MustBigFromString("1.5") })
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input string
		core  string
	}{
		{"z1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsggv2f", "0000000000000000000000000000000000000000"},
		{"z1qq9n7fpaqd8lpcljandzmx4xtku9w4ftwyg0mq", "000b3f243d034ff0e3f2ecda2d9aa65db857552b"},
		{"z1qzal6c5s9rjnnxd2z7dvdhjxpmmj4fmw56a0mz", "00bbfd629028e53999aa179ac6de460ef72aa76e"},
		{"z1qxemdeddedxplasmaxxxxxxxxxxxxxxxxsctrp", "01b3b6e5adcb4c1ff61be98c6318c6318c6318c6"},
	}
	for _, tt := range tests {
		addr, err := ParseAddress(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.core, hex.EncodeToString(addr.Bytes()))
		assert.Equal(t, tt.input, addr.String())
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"z1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsggv2g",   // bad checksum
		"zts1znnxxxxxxxxxxxxx9z4ulx",                 // wrong prefix
		"0x000b3f243d034ff0e3f2ecda2d9aa65db857552b", // not bech32
	} {
		_, err := ParseAddress(input)
		assert.ErrorIs(t, err, ErrInvalidAddress, input)
	}
}

func TestParseTokenStandard(t *testing.T) {
	tests := []struct {
		input string
		core  string
	}{
		{"zts1znnxxxxxxxxxxxxx9z4ulx", "14e66318c6318c6318c6"},
		{"zts1qsrxxxxxxxxxxxxxmrhjll", "04066318c6318c6318c6"},
		{"zts1qqqqqqqqqqqqqqqqtq587y", "00000000000000000000"},
	}
	for _, tt := range tests {
		zts, err := ParseTokenStandard(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.core, hex.EncodeToString(zts.Bytes()))
		assert.Equal(t, tt.input, zts.String())
	}
	_, err := ParseTokenStandard("z1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsggv2f")
	assert.ErrorIs(t, err, ErrInvalidTokenStandard)
}

func TestParseHash(t *testing.T) {
	raw := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	h, err := ParseHash(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, h.String())
	assert.Equal(t, "0x"+raw, h.Hex())

	prefixed, err := ParseHash("0x" + raw)
	require.NoError(t, err)
	assert.Equal(t, h, prefixed)

	_, err = ParseHash(raw[:62])
	assert.ErrorIs(t, err, ErrInvalidHash)
	_, err = ParseHash("zz" + raw[2:])
	assert.ErrorIs(t, err, ErrInvalidHash)

	assert.Equal(t, h, MustParseHash(raw))
	assert.Panics(t, func() { MustParseHash(raw[:2]) })
}

func TestTextMarshaling(t *testing.T) {
	addr := MustParseAddress("z1qq9n7fpaqd8lpcljandzmx4xtku9w4ftwyg0mq")
	text, err := addr.MarshalText()
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, addr, decoded)
}

func TestPadBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 1, 2}, LeftPadBytes([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2, 0, 0}, RightPadBytes([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2, 3}, LeftPadBytes([]byte{1, 2, 3}, 2))
	assert.Equal(t, 64, AlignedLength(33, 32))
	assert.Equal(t, 0, AlignedLength(0, 32))
}

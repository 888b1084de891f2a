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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		input   string
		kind    FragmentKind
		sig     string
		full    string
		minimal string
	}{
		{
			input:   "function transfer(address to, uint amount) returns (bool)",
			kind:    FunctionKind,
			sig:     "transfer(address,uint256)",
			full:    "function transfer(address to, uint256 amount) returns (bool)",
			minimal: "function transfer(address, uint256) returns (bool)",
		},
		{
			input:   "balanceOf(address owner) view returns (uint256 balance)",
			kind:    FunctionKind,
			sig:     "balanceOf(address)",
			full:    "function balanceOf(address owner) view returns (uint256 balance)",
			minimal: "function balanceOf(address) view returns (uint256)",
		},
		{
			input:   "function deposit() external payable",
			kind:    FunctionKind,
			sig:     "deposit()",
			full:    "function deposit() payable",
			minimal: "function deposit() payable",
		},
		{
			input:   "event Transfer(address indexed from, address indexed to, uint256 value)",
			kind:    EventKind,
			sig:     "Transfer(address,address,uint256)",
			full:    "event Transfer(address indexed from, address indexed to, uint256 value)",
			minimal: "event Transfer(address indexed, address indexed, uint256)",
		},
		{
			input:   "event Ping() anonymous",
			kind:    EventKind,
			sig:     "Ping()",
			full:    "event Ping() anonymous",
			minimal: "event Ping() anonymous",
		},
		{
			input:   "error Custom(uint256 code)",
			kind:    ErrorKind,
			sig:     "Custom(uint256)",
			full:    "error Custom(uint256 code)",
			minimal: "error Custom(uint256)",
		},
		{
			input:   "constructor(string name, tuple(uint8 a, bytes b) opts) payable",
			kind:    ConstructorKind,
			sig:     "constructor(string,(uint8,bytes))",
			full:    "constructor(string name, tuple(uint8 a, bytes b) opts) payable",
			minimal: "constructor(string, (uint8,bytes)) payable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			frag, err := ParseFragment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, frag.Kind())
			assert.Equal(t, tt.sig, frag.Signature())
			assert.Equal(t, tt.full, frag.Format(FormatFull))
			assert.Equal(t, tt.minimal, frag.Format(FormatMinimal))
		})
	}
}

func TestParseFragmentMutability(t *testing.T) {
	for input, want := range map[string]string{
		"function a()":          NonPayable,
		"function a() view":     View,
		"function a() pure":     Pure,
		"function a() constant": View,
		"function a() payable":  Payable,
	} {
		fn, err := ParseSelector(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, fn.StateMutability, input)
	}
}

func TestParseFragmentInvalid(t *testing.T) {
	for _, input := range []string{
		"function (uint256)",
		"function foo(uint256",
		"function foo(address indexed a)",
		"error Foo(uint256) view",
		"function foo() sideways",
		"foo(uint7)",
	} {
		_, err := ParseFragment(input)
		assert.Error(t, err, input)
	}
	_, err := ParseSelector("event Foo()")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFunctionSelector(t *testing.T) {
	fn, err := ParseSelector("transfer(address,uint256)")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4b, 0x40, 0xe9, 0x01}, fn.ID)
	assert.Equal(t, [4]byte{0x4b, 0x40, 0xe9, 0x01}, fn.Selector())

	ev, err := ParseFragment("event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	assert.Equal(t, "0xc17a9d92b89f27cb79cc390f23a1a5d302fefab8c7911075ede952ac2b5607a1", ev.(*Event).ID.Hex())
}

func TestNewFunction(t *testing.T) {
	inputs, err := NewArguments("address", "uint")
	require.NoError(t, err)
	outputs, err := NewArguments("bool")
	require.NoError(t, err)

	fn := NewFunction("transfer", inputs, outputs, "")
	assert.Equal(t, "transfer(address,uint256)", fn.Sig)
	assert.Equal(t, [4]byte{0x4b, 0x40, 0xe9, 0x01}, fn.Selector())
	assert.Equal(t, NonPayable, fn.StateMutability)
	assert.False(t, fn.IsPayable())
	assert.True(t, NewFunction("deposit", nil, nil, Payable).IsPayable())

	data, err := inputs.Pack(make([]byte, 20), 1)
	require.NoError(t, err)
	res, err := inputs.Unpack(data)
	require.NoError(t, err)
	assertBig(t, "1", res.Values[1])

	ctor := NewConstructor(outputs, "")
	assert.Equal(t, "constructor(bool)", ctor.Signature())
	assert.Equal(t, NonPayable, ctor.StateMutability)

	_, err = NewArguments("uint7")
	assert.True(t, errors.Is(err, ErrInvalidType), err)
}

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
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/znn-sdk/go-znn/common"
)

// word renders n as a single big endian word.
func word(n uint64) []byte {
	return common.LeftPadBytes(new(big.Int).SetUint64(n).Bytes(), WordSize)
}

func words(chunks ...[]byte) []byte {
	return bytes.Join(chunks, nil)
}

func assertBig(t *testing.T, want string, got interface{}) {
	t.Helper()
	v, ok := got.(*big.Int)
	require.Truef(t, ok, "expected *big.Int, got %T", got)
	assert.Equal(t, want, v.String())
}

func TestEncodeStaticLayout(t *testing.T) {
	coder := NewAbiCoder()

	out, err := coder.Encode([]string{"bool"}, []interface{}{true})
	require.NoError(t, err)
	assert.Equal(t, word(1), out)

	out, err = coder.Encode([]string{"bool[]"}, []interface{}{[]bool{true, false}})
	require.NoError(t, err)
	assert.Equal(t, words(word(0x20), word(2), word(1), word(0)), out)

	a := common.MustParseAddress("z1qq9n7fpaqd8lpcljandzmx4xtku9w4ftwyg0mq")
	b := common.MustParseAddress("z1qzal6c5s9rjnnxd2z7dvdhjxpmmj4fmw56a0mz")
	out, err = coder.Encode([]string{"address", "address"}, []interface{}{a, b.String()})
	require.NoError(t, err)
	want, _ := hex.DecodeString(
		"000000000000000000000000000b3f243d034ff0e3f2ecda2d9aa65db857552b" +
			"00000000000000000000000000bbfd629028e53999aa179ac6de460ef72aa76e")
	assert.Equal(t, want, out)
}

func TestEncodeDynamicLayout(t *testing.T) {
	out, err := DefaultAbiCoder.Encode([]string{"string"}, []interface{}{"hello"})
	require.NoError(t, err)
	assert.Equal(t, words(word(0x20), word(5), common.RightPadBytes([]byte("hello"), 32)), out)

	out, err = DefaultAbiCoder.Encode([]string{"uint256[]"}, []interface{}{[]interface{}{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, words(word(0x20), word(2), word(1), word(2)), out)

	// offsets are relative to the start of the enclosing tuple
	out, err = DefaultAbiCoder.Encode([]string{"uint8", "bytes", "string"}, []interface{}{7, []byte{0xaa}, ""})
	require.NoError(t, err)
	assert.Equal(t, words(
		word(7), word(0x60), word(0xa0),
		word(1), common.RightPadBytes([]byte{0xaa}, 32),
		word(0),
	), out)
}

func TestEncodeTwosComplement(t *testing.T) {
	allOnes := bytes.Repeat([]byte{0xff}, 32)

	out, err := DefaultAbiCoder.Encode([]string{"int8"}, []interface{}{-1})
	require.NoError(t, err)
	assert.Equal(t, allOnes, out)

	res, err := DefaultAbiCoder.Decode([]string{"int8"}, allOnes)
	require.NoError(t, err)
	assertBig(t, "-1", res.Values[0])

	minusTwo := append(bytes.Repeat([]byte{0xff}, 31), 0xfe)
	for _, typ := range []string{"int", "int8", "int64", "int256"} {
		out, err := DefaultAbiCoder.Encode([]string{typ}, []interface{}{big.NewInt(-2)})
		require.NoError(t, err, typ)
		assert.Equal(t, minusTwo, out, typ)
	}
	// only the low bytes of the declared width are significant
	res, err = DefaultAbiCoder.Decode([]string{"int8", "uint8"}, words(word(0x17f), word(0x1ff)))
	require.NoError(t, err)
	assertBig(t, "127", res.Values[0])
	assertBig(t, "255", res.Values[1])
}

func TestEncodeOutOfBounds(t *testing.T) {
	tests := []struct {
		typ   string
		value interface{}
	}{
		{"uint8", 256},
		{"uint8", -1},
		{"int8", 128},
		{"int8", -129},
		{"uint256", new(big.Int).Lsh(big.NewInt(1), 256)},
		{"int256", new(big.Int).Lsh(big.NewInt(1), 255)},
	}
	for _, tt := range tests {
		_, err := DefaultAbiCoder.Encode([]string{tt.typ}, []interface{}{tt.value})
		assert.Truef(t, errors.Is(err, ErrOutOfBounds), "%s %v: %v", tt.typ, tt.value, err)
	}
	for _, tt := range []struct {
		typ   string
		value interface{}
	}{
		{"uint8", 255},
		{"int8", -128},
		{"int8", 127},
		{"uint256", "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
	} {
		_, err := DefaultAbiCoder.Encode([]string{tt.typ}, []interface{}{tt.value})
		assert.NoError(t, err, tt.typ)
	}
}

func TestEncodeArrayArity(t *testing.T) {
	_, err := DefaultAbiCoder.Encode([]string{"uint256[2]"}, []interface{}{[]int{1}})
	assert.True(t, errors.Is(err, ErrMissingArgument), err)

	_, err = DefaultAbiCoder.Encode([]string{"uint256[2]"}, []interface{}{[]int{1, 2, 3}})
	assert.True(t, errors.Is(err, ErrTooManyArguments), err)

	out, err := DefaultAbiCoder.Encode([]string{"uint256[2]"}, []interface{}{[2]int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, words(word(1), word(2)), out)
}

func TestEncodeErrors(t *testing.T) {
	_, err := DefaultAbiCoder.Encode([]string{"uint256", "bool"}, []interface{}{1})
	assert.True(t, errors.Is(err, ErrLengthMismatch), err)

	_, err = DefaultAbiCoder.Encode([]string{"uint9"}, []interface{}{1})
	assert.True(t, errors.Is(err, ErrInvalidType), err)

	for typ, value := range map[string]interface{}{
		"bool":          1,
		"address":       "z1invalid",
		"tokenStandard": "zts1invalid",
		"hash":          "0x1234",
		"bytes4":        []byte{1, 2, 3},
		"uint256":       "ten",
		"uint256[]":     42,
		"":              0,
	} {
		_, err := DefaultAbiCoder.Encode([]string{typ}, []interface{}{value})
		assert.Truef(t, errors.Is(err, ErrInvalidArgument), "%q: %v", typ, err)
	}
}

func TestDecodeBufferOverrun(t *testing.T) {
	// length word claims two addresses, only one follows
	data := words(word(0x20), word(2), word(1))
	_, err := DefaultAbiCoder.Decode([]string{"address[]"}, data)
	assert.True(t, errors.Is(err, ErrBufferOverrun), err)

	// the count alone exceeds what the data could hold
	data = words(word(0x20), word(1000))
	_, err = DefaultAbiCoder.Decode([]string{"uint8[]"}, data)
	assert.True(t, errors.Is(err, ErrBufferOverrun), err)

	_, err = DefaultAbiCoder.Decode([]string{"uint256"}, make([]byte, 31))
	assert.True(t, errors.Is(err, ErrBufferOverrun), err)

	// offset pointing past the end
	_, err = DefaultAbiCoder.Decode([]string{"string"}, word(0x40))
	assert.True(t, errors.Is(err, ErrBufferOverrun), err)

	// string payload truncated
	_, err = DefaultAbiCoder.Decode([]string{"string"}, words(word(0x20), word(5)))
	assert.True(t, errors.Is(err, ErrBufferOverrun), err)
}

func TestDecodeLoose(t *testing.T) {
	data := words(word(0x20), word(5), []byte("hello"))

	_, err := DefaultAbiCoder.Decode([]string{"string"}, data)
	require.True(t, errors.Is(err, ErrBufferOverrun), err)

	res, err := DefaultAbiCoder.DecodeLoose([]string{"string"}, data)
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Values[0])

	res, err = DefaultAbiCoder.DecodeLoose([]string{"uint256", "bool"}, nil)
	require.NoError(t, err)
	assertBig(t, "0", res.Values[0])
	assert.Equal(t, false, res.Values[1])
}

func TestDecodeInvalidUTF8(t *testing.T) {
	data := words(word(0x20), word(2), common.RightPadBytes([]byte{0xc3, 0x28}, 32))
	_, err := DefaultAbiCoder.Decode([]string{"string"}, data)
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	res, err := DefaultAbiCoder.Decode([]string{"bytes"}, data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc3, 0x28}, res.Values[0])
}

func TestRoundTrip(t *testing.T) {
	addr := common.MustParseAddress("z1qxemdeddedxplasmaxxxxxxxxxxxxxxxxsctrp")
	zts := common.MustParseTokenStandard("zts1znnxxxxxxxxxxxxx9z4ulx")
	id := common.BytesToHash(bytes.Repeat([]byte{0xab}, 32))

	types := []string{
		"address", "tokenStandard", "hash", "bool", "string", "bytes", "bytes3",
		"uint64", "int32", "address[]", "string[2]", "(uint256 amount, string memo)", "",
	}
	values := []interface{}{
		addr, zts, id, true, "zenon", []byte{1, 2, 3, 4, 5}, [3]byte{7, 8, 9},
		uint64(1) << 63, int32(-42), []common.Address{addr, {}}, []string{"a", strings.Repeat("b", 40)},
		map[string]interface{}{"amount": big.NewInt(1000), "memo": "hi"}, nil,
	}
	data, err := DefaultAbiCoder.Encode(types, values)
	require.NoError(t, err)
	assert.Zero(t, len(data)%WordSize)

	res, err := DefaultAbiCoder.Decode(types, data)
	require.NoError(t, err)
	require.Equal(t, len(types), res.Len())

	assert.Equal(t, addr, res.Values[0])
	assert.Equal(t, zts, res.Values[1])
	assert.Equal(t, id, res.Values[2])
	assert.Equal(t, true, res.Values[3])
	assert.Equal(t, "zenon", res.Values[4])
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, res.Values[5])
	assert.Equal(t, []byte{7, 8, 9}, res.Values[6])
	assertBig(t, "9223372036854775808", res.Values[7])
	assertBig(t, "-42", res.Values[8])
	assert.Equal(t, []interface{}{addr, common.Address{}}, res.Values[9])
	assert.Equal(t, []interface{}{"a", strings.Repeat("b", 40)}, res.Values[10])
	assert.Nil(t, res.Values[12])

	tuple, ok := res.Values[11].(*Result)
	require.True(t, ok)
	amount, ok := tuple.Get("amount")
	require.True(t, ok)
	assertBig(t, "1000", amount)
	memo, _ := tuple.Get("memo")
	assert.Equal(t, "hi", memo)
}

func TestEncodeNullType(t *testing.T) {
	out, err := DefaultAbiCoder.Encode([]string{""}, []interface{}{nil})
	require.NoError(t, err)
	assert.Empty(t, out)

	res, err := DefaultAbiCoder.Decode([]string{""}, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{nil}, res.Values)
}

func TestEncodeTupleForms(t *testing.T) {
	type payment struct {
		Amount *big.Int
		Memo   string
	}
	types := []string{"(uint256 amount, string memo)"}
	want, err := DefaultAbiCoder.Encode(types, []interface{}{[]interface{}{5, "x"}})
	require.NoError(t, err)

	for _, value := range []interface{}{
		map[string]interface{}{"memo": "x", "amount": 5},
		payment{Amount: big.NewInt(5), Memo: "x"},
	} {
		out, err := DefaultAbiCoder.Encode(types, []interface{}{value})
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}

	_, err = DefaultAbiCoder.Encode(types, []interface{}{map[string]interface{}{"amount": 5}})
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = DefaultAbiCoder.Encode([]string{"(uint256 a, uint256 a)"}, []interface{}{map[string]interface{}{"a": 1}})
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = DefaultAbiCoder.Encode([]string{"(uint256,uint256)"}, []interface{}{map[string]interface{}{"a": 1}})
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)
}

func TestResultNames(t *testing.T) {
	res, err := DefaultAbiCoder.Decode(
		[]string{"uint8 a", "uint8 a", "uint8 length", "uint8"},
		words(word(1), word(2), word(3), word(4)),
	)
	require.NoError(t, err)

	_, ok := res.Get("a")
	assert.False(t, ok, "duplicate names are positional only")
	v, ok := res.Get("_length")
	require.True(t, ok)
	assertBig(t, "3", v)
	assert.Len(t, res.Map(), 1)
	assertBig(t, "4", res.Index(3))
}

func TestCoerceFunc(t *testing.T) {
	coder := NewAbiCoder(WithCoerceFunc(func(typ string, value interface{}) interface{} {
		if typ == "uint256" {
			return value.(*big.Int).String()
		}
		return value
	}))
	data, err := coder.Encode([]string{"uint256[]"}, []interface{}{[]int{1, 2}})
	require.NoError(t, err)

	res, err := coder.Decode([]string{"uint256[]"}, data)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"1", "2"}, res.Values[0])
}

func TestHexHelpers(t *testing.T) {
	out, err := DefaultAbiCoder.EncodeHex([]string{"uint8"}, []interface{}{1})
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"1", out)

	res, err := DefaultAbiCoder.DecodeHex([]string{"uint8"}, out)
	require.NoError(t, err)
	assertBig(t, "1", res.Values[0])

	_, err = DefaultAbiCoder.DecodeHex([]string{"uint8"}, "zz")
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)
}

func TestGetDefaultValue(t *testing.T) {
	res, err := DefaultAbiCoder.GetDefaultValue([]string{"uint8", "bool", "string", "address[2]", "(bytes b)"})
	require.NoError(t, err)

	assertBig(t, "0", res.Values[0])
	assert.Equal(t, false, res.Values[1])
	assert.Equal(t, "", res.Values[2])
	assert.Equal(t, []interface{}{common.Address{}, common.Address{}}, res.Values[3])
	inner := res.Values[4].(*Result)
	b, _ := inner.Get("b")
	assert.Equal(t, []byte{}, b)
}

func TestTypeCache(t *testing.T) {
	coder := NewAbiCoder(WithTypeCacheSize(1))
	first, err := coder.ParamType("uint")
	require.NoError(t, err)
	again, err := coder.ParamType("uint")
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, err = coder.ParamType("bool")
	require.NoError(t, err)
	evicted, err := coder.ParamType("uint")
	require.NoError(t, err)
	assert.NotSame(t, first, evicted)
	assert.Equal(t, first.Type, evicted.Type)
}

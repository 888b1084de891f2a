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
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common/math"
)

// numberCoder handles intN and uintN. Values are range checked against the
// declared width. Signed values are stored sign extended to the full word.
type numberCoder struct {
	coderBase
	size   int // in bytes
	signed bool
}

func newNumberCoder(size int, signed bool, localName string) *numberCoder {
	name := "uint" + strconv.Itoa(size*8)
	if signed {
		name = "int" + strconv.Itoa(size*8)
	}
	return &numberCoder{
		coderBase: coderBase{name: name, typ: name, localName: localName},
		size:      size,
		signed:    signed,
	}
}

func (c *numberCoder) DefaultValue() interface{} {
	return new(big.Int)
}

func (c *numberCoder) Encode(w *Writer, value interface{}) (int, error) {
	v, err := toBigInt(value)
	if err != nil {
		return 0, c.argumentError(value, err.Error())
	}
	bits := uint(c.size * 8)
	if c.signed {
		min, max := math.SignedBounds(bits)
		if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
			return 0, errors.Wrapf(ErrOutOfBounds, "%s out of range for %s", v, c.label())
		}
	} else if v.Sign() < 0 || v.Cmp(math.UnsignedMax(bits)) > 0 {
		return 0, errors.Wrapf(ErrOutOfBounds, "%s out of range for %s", v, c.label())
	}
	v = math.Mask(math.ToTwos(v, bits), bits)
	if c.signed {
		v = math.ToTwos(math.FromTwos(v, bits), WordSize*8)
	}
	word, overflow := uint256.FromBig(v)
	if overflow {
		return 0, errors.Wrapf(ErrOutOfBounds, "%s out of range for %s", v, c.label())
	}
	return w.WriteValue(word), nil
}

func (c *numberCoder) Decode(r *Reader) (interface{}, error) {
	word, err := r.ReadValue()
	if err != nil {
		return nil, err
	}
	v := word.And(word, wordMask(c.size))
	if !c.signed {
		return r.Coerce(c.name, v.ToBig()), nil
	}
	v.ExtendSign(v, uint256.NewInt(uint64(c.size-1)))
	if v.Sign() >= 0 {
		return r.Coerce(c.name, v.ToBig()), nil
	}
	abs := new(uint256.Int).Neg(v).ToBig()
	return r.Coerce(c.name, abs.Neg(abs)), nil
}

// wordMask keeps the low size bytes of a word.
func wordMask(size int) *uint256.Int {
	if size >= WordSize {
		return new(uint256.Int).SetAllOne()
	}
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(size*8))
	return mask.SubUint64(mask, 1)
}

// toBigInt converts the accepted numeric forms: Go integers, big and 256 bit
// integers, and decimal or 0x prefixed strings.
func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, errors.New("nil number")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, errors.New("nil number")
		}
		return math.BigFromUint256(v), nil
	case int:
		return math.BigFromInt64(int64(v)), nil
	case int8:
		return math.BigFromInt64(int64(v)), nil
	case int16:
		return math.BigFromInt64(int64(v)), nil
	case int32:
		return math.BigFromInt64(int64(v)), nil
	case int64:
		return math.BigFromInt64(v), nil
	case uint:
		return math.BigFromUint64(uint64(v)), nil
	case uint8:
		return math.BigFromUint64(uint64(v)), nil
	case uint16:
		return math.BigFromUint64(uint64(v)), nil
	case uint32:
		return math.BigFromUint64(uint64(v)), nil
	case uint64:
		return math.BigFromUint64(v), nil
	case string:
		return math.BigFromString(v)
	case json.Number:
		return math.BigFromString(string(v))
	}
	return nil, errors.Errorf("invalid number type %T", value)
}

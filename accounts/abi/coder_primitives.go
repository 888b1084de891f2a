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
	"reflect"

	"github.com/holiman/uint256"
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/common/hexutil"
)

// boolCoder stores booleans as a 0 or 1 word. Any non-zero word decodes to true.
type boolCoder struct {
	coderBase
}

func newBoolCoder(localName string) *boolCoder {
	return &boolCoder{coderBase{name: "bool", typ: "bool", localName: localName}}
}

func (c *boolCoder) DefaultValue() interface{} { return false }

func (c *boolCoder) Encode(w *Writer, value interface{}) (int, error) {
	b, ok := value.(bool)
	if !ok {
		return 0, c.argumentError(value, "invalid bool")
	}
	if b {
		return w.WriteValue(uint256.NewInt(1)), nil
	}
	return w.WriteValue(new(uint256.Int)), nil
}

func (c *boolCoder) Decode(r *Reader) (interface{}, error) {
	word, err := r.ReadValue()
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, !word.IsZero()), nil
}

// addressCoder stores the 20 byte address core right aligned in a word.
type addressCoder struct {
	coderBase
}

func newAddressCoder(localName string) *addressCoder {
	return &addressCoder{coderBase{name: "address", typ: "address", localName: localName}}
}

func (c *addressCoder) DefaultValue() interface{} { return common.Address{} }

func (c *addressCoder) Encode(w *Writer, value interface{}) (int, error) {
	var addr common.Address
	switch v := value.(type) {
	case common.Address:
		addr = v
	case *common.Address:
		if v == nil {
			return 0, c.argumentError(value, "invalid address")
		}
		addr = *v
	case string:
		parsed, err := common.ParseAddress(v)
		if err != nil {
			return 0, c.argumentError(value, err.Error())
		}
		addr = parsed
	case []byte:
		if len(v) != common.AddressLength {
			return 0, c.argumentError(value, "invalid address length")
		}
		addr = common.BytesToAddress(v)
	default:
		return 0, c.argumentError(value, "invalid address")
	}
	return w.WriteValue(new(uint256.Int).SetBytes(addr.Bytes())), nil
}

func (c *addressCoder) Decode(r *Reader) (interface{}, error) {
	word, err := r.ReadValue()
	if err != nil {
		return nil, err
	}
	b := word.Bytes32()
	return r.Coerce(c.name, common.BytesToAddress(b[WordSize-common.AddressLength:])), nil
}

// tokenStandardCoder stores the 10 byte token standard core right aligned in a word.
type tokenStandardCoder struct {
	coderBase
}

func newTokenStandardCoder(localName string) *tokenStandardCoder {
	return &tokenStandardCoder{coderBase{name: "tokenStandard", typ: "tokenStandard", localName: localName}}
}

func (c *tokenStandardCoder) DefaultValue() interface{} { return common.TokenStandard{} }

func (c *tokenStandardCoder) Encode(w *Writer, value interface{}) (int, error) {
	var zts common.TokenStandard
	switch v := value.(type) {
	case common.TokenStandard:
		zts = v
	case *common.TokenStandard:
		if v == nil {
			return 0, c.argumentError(value, "invalid token standard")
		}
		zts = *v
	case string:
		parsed, err := common.ParseTokenStandard(v)
		if err != nil {
			return 0, c.argumentError(value, err.Error())
		}
		zts = parsed
	case []byte:
		if len(v) != common.TokenStandardLength {
			return 0, c.argumentError(value, "invalid token standard length")
		}
		zts = common.BytesToTokenStandard(v)
	default:
		return 0, c.argumentError(value, "invalid token standard")
	}
	return w.WriteValue(new(uint256.Int).SetBytes(zts.Bytes())), nil
}

func (c *tokenStandardCoder) Decode(r *Reader) (interface{}, error) {
	word, err := r.ReadValue()
	if err != nil {
		return nil, err
	}
	b := word.Bytes32()
	return r.Coerce(c.name, common.BytesToTokenStandard(b[WordSize-common.TokenStandardLength:])), nil
}

// hashCoder stores a 32 byte hash as a full word.
type hashCoder struct {
	coderBase
}

func newHashCoder(localName string) *hashCoder {
	return &hashCoder{coderBase{name: "hash", typ: "hash", localName: localName}}
}

func (c *hashCoder) DefaultValue() interface{} { return common.Hash{} }

func (c *hashCoder) Encode(w *Writer, value interface{}) (int, error) {
	var h common.Hash
	switch v := value.(type) {
	case common.Hash:
		h = v
	case *common.Hash:
		if v == nil {
			return 0, c.argumentError(value, "invalid hash")
		}
		h = *v
	case string:
		parsed, err := common.ParseHash(v)
		if err != nil {
			return 0, c.argumentError(value, err.Error())
		}
		h = parsed
	case []byte:
		if len(v) != common.HashLength {
			return 0, c.argumentError(value, "invalid hash length")
		}
		h = common.BytesToHash(v)
	default:
		return 0, c.argumentError(value, "invalid hash")
	}
	return w.WriteBytes(h.Bytes()), nil
}

func (c *hashCoder) Decode(r *Reader) (interface{}, error) {
	b, err := r.ReadBytes(common.HashLength)
	if err != nil {
		return nil, err
	}
	return r.Coerce(c.name, common.BytesToHash(b)), nil
}

// nullCoder is the coder of the empty type. It writes and reads nothing.
type nullCoder struct {
	coderBase
}

func newNullCoder(localName string) *nullCoder {
	return &nullCoder{coderBase{name: "null", typ: "", localName: localName}}
}

func (c *nullCoder) DefaultValue() interface{} { return nil }

func (c *nullCoder) Encode(w *Writer, value interface{}) (int, error) {
	if value != nil {
		return 0, c.argumentError(value, "not null")
	}
	return w.WriteBytes(nil), nil
}

func (c *nullCoder) Decode(r *Reader) (interface{}, error) {
	if _, err := r.ReadBytes(0); err != nil {
		return nil, err
	}
	return r.Coerce(c.name, nil), nil
}

// toBytes converts byte slices, fixed size byte arrays and 0x prefixed hex
// strings.
func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, false
		}
		return b, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		for i := range out {
			out[i] = byte(rv.Index(i).Uint())
		}
		return out, true
	}
	return nil, false
}

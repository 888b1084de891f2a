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
	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common/hexutil"
	"github.com/znn-sdk/go-znn/common/lru"
	"github.com/znn-sdk/go-znn/log"
)

const defaultTypeCacheSize = 256

// AbiCoder encodes and decodes parameter lists given as type strings or
// parsed ParamTypes. It is safe for concurrent use.
// AbiCoder 根据类型字符串或已解析的 ParamType 编码和解码参数列表，可安全并发使用。
type AbiCoder struct {
	coerceFunc CoerceFunc
	types      *lru.Cache[string, *ParamType]
}

// CoderOption configures an AbiCoder.
type CoderOption func(*AbiCoder)

// WithCoerceFunc installs a hook applied to every decoded value.
func WithCoerceFunc(fn CoerceFunc) CoderOption {
	return func(c *AbiCoder) {
		c.coerceFunc = fn
	}
}

// WithTypeCacheSize sets the number of parsed type strings kept around.
func WithTypeCacheSize(size int) CoderOption {
	return func(c *AbiCoder) {
		c.types = lru.NewCache[string, *ParamType](size)
	}
}

// DefaultAbiCoder is the coder used by the package level helpers.
var DefaultAbiCoder = NewAbiCoder()

// NewAbiCoder creates a coder.
func NewAbiCoder(opts ...CoderOption) *AbiCoder {
	c := &AbiCoder{
		types: lru.NewCache[string, *ParamType](defaultTypeCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParamType parses a type string, memoizing the result.
func (c *AbiCoder) ParamType(t string) (*ParamType, error) {
	if param, ok := c.types.Get(t); ok {
		return param, nil
	}
	param, err := NewParamType(t)
	if err != nil {
		return nil, err
	}
	c.types.Add(t, param)
	return param, nil
}

func (c *AbiCoder) params(types []string) (Arguments, error) {
	params := make(Arguments, len(types))
	for i, t := range types {
		param, err := c.ParamType(t)
		if err != nil {
			return nil, err
		}
		params[i] = param
	}
	return params, nil
}

func (c *AbiCoder) coders(params Arguments) ([]Coder, error) {
	coders := make([]Coder, len(params))
	for i, param := range params {
		coder, err := newCoder(param)
		if err != nil {
			return nil, err
		}
		coders[i] = coder
	}
	return coders, nil
}

// Encode encodes values against the given type strings as one tuple.
// Encode 将值按给定的类型字符串编码为一个元组。
func (c *AbiCoder) Encode(types []string, values []interface{}) ([]byte, error) {
	params, err := c.params(types)
	if err != nil {
		return nil, err
	}
	return c.EncodeParams(params, values)
}

// EncodeParams encodes values against already parsed parameters.
func (c *AbiCoder) EncodeParams(params Arguments, values []interface{}) ([]byte, error) {
	if len(params) != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d types, %d values", len(params), len(values))
	}
	coders, err := c.coders(params)
	if err != nil {
		return nil, err
	}
	w := NewWriter()
	if _, err := newTupleCoder(coders, "_").Encode(w, values); err != nil {
		return nil, err
	}
	log.Trace("Encoded ABI parameters", "types", params.signature(), "size", w.Len())
	return w.Bytes(), nil
}

// EncodeHex is Encode rendered as 0x prefixed hex.
func (c *AbiCoder) EncodeHex(types []string, values []interface{}) (string, error) {
	data, err := c.Encode(types, values)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

// Decode decodes data against the given type strings.
// Decode 按给定的类型字符串解码数据。
func (c *AbiCoder) Decode(types []string, data []byte) (*Result, error) {
	params, err := c.params(types)
	if err != nil {
		return nil, err
	}
	return c.decode(params, data, false)
}

// DecodeLoose is Decode with zero padding for short reads. It exists for
// data produced by encoders that drop the trailing padding.
func (c *AbiCoder) DecodeLoose(types []string, data []byte) (*Result, error) {
	params, err := c.params(types)
	if err != nil {
		return nil, err
	}
	return c.decode(params, data, true)
}

// DecodeHex is Decode over 0x prefixed hex data.
func (c *AbiCoder) DecodeHex(types []string, data string) (*Result, error) {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	return c.Decode(types, raw)
}

// DecodeParams decodes data against already parsed parameters.
func (c *AbiCoder) DecodeParams(params Arguments, data []byte) (*Result, error) {
	return c.decode(params, data, false)
}

func (c *AbiCoder) decode(params Arguments, data []byte, loose bool) (*Result, error) {
	coders, err := c.coders(params)
	if err != nil {
		return nil, err
	}
	res, err := newTupleCoder(coders, "_").Decode(NewReader(data, c.coerceFunc, loose))
	if err != nil {
		return nil, err
	}
	// a coerce hook may replace the tuple itself
	out, ok := res.(*Result)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "coerce function returned %T for a tuple", res)
	}
	return out, nil
}

// GetDefaultValue returns the zero value of every type.
func (c *AbiCoder) GetDefaultValue(types []string) (*Result, error) {
	params, err := c.params(types)
	if err != nil {
		return nil, err
	}
	coders, err := c.coders(params)
	if err != nil {
		return nil, err
	}
	return newTupleCoder(coders, "_").DefaultValue().(*Result), nil
}

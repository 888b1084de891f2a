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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Coder encodes and decodes the values of one parameter type.
// Coder 负责编码和解码一种参数类型的值。
type Coder interface {
	// Name is the coder family, e.g. "uint256", "address", "array" or "tuple".
	Name() string
	// Type is the canonical type handled by the coder.
	Type() string
	// LocalName is the parameter name, possibly empty.
	LocalName() string
	// Dynamic reports whether values live in the tail of the enclosing tuple.
	Dynamic() bool
	// DefaultValue is the zero value of the type.
	DefaultValue() interface{}
	// Encode writes value and returns the number of words written.
	Encode(w *Writer, value interface{}) (int, error)
	// Decode reads one value at the reader cursor.
	Decode(r *Reader) (interface{}, error)
}

type coderBase struct {
	name      string
	typ       string
	localName string
	dynamic   bool
}

func (c *coderBase) Name() string      { return c.name }
func (c *coderBase) Type() string      { return c.typ }
func (c *coderBase) LocalName() string { return c.localName }
func (c *coderBase) Dynamic() bool     { return c.dynamic }

func (c *coderBase) argumentError(value interface{}, reason string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s for %s (value=%v)", reason, c.label(), value)
}

func (c *coderBase) label() string {
	if c.localName != "" {
		return c.typ + " " + c.localName
	}
	return c.typ
}

// anonymousCoder hides the local name of array elements so they never
// become named members of a result.
type anonymousCoder struct {
	Coder
}

func (c anonymousCoder) LocalName() string { return "" }

// newCoder builds the coder tree of a parameter.
func newCoder(param *ParamType) (Coder, error) {
	switch param.T {
	case AddressTy:
		return newAddressCoder(param.Name), nil
	case BoolTy:
		return newBoolCoder(param.Name), nil
	case StringTy:
		return newStringCoder(param.Name), nil
	case BytesTy:
		return newBytesCoder(param.Name), nil
	case HashTy:
		return newHashCoder(param.Name), nil
	case TokenStandardTy:
		return newTokenStandardCoder(param.Name), nil
	case NullTy:
		return newNullCoder(param.Name), nil
	case IntTy, UintTy:
		return newNumberCoder(param.Size/8, param.T == IntTy, param.Name), nil
	case FixedBytesTy:
		return newFixedBytesCoder(param.Size, param.Name), nil
	case ArrayTy:
		child, err := newCoder(param.ArrayChildren)
		if err != nil {
			return nil, err
		}
		return newArrayCoder(child, param.ArrayLength, param.Name), nil
	case TupleTy:
		coders := make([]Coder, len(param.Components))
		for i, component := range param.Components {
			c, err := newCoder(component)
			if err != nil {
				return nil, err
			}
			coders[i] = c
		}
		return newTupleCoder(coders, param.Name), nil
	}
	return nil, errors.Wrapf(ErrInvalidType, "invalid type %q", param.Type)
}

// pack encodes values as a tuple: static members inline in the head, dynamic
// members in the tail with their offset, relative to the start of the tuple,
// stored in the head.
// pack 将值编码为元组：静态成员内联在头部，动态成员放在尾部，其偏移量（相对于元组起始位置）存储在头部。
func pack(w *Writer, coders []Coder, values []interface{}) (int, error) {
	if len(coders) != len(values) {
		return 0, errors.Wrapf(ErrLengthMismatch, "expected %d values, got %d", len(coders), len(values))
	}
	type backfill struct {
		update func(*uint256.Int)
		offset int
	}
	var (
		static  = NewWriter()
		dynamic = NewWriter()
		updates []backfill
	)
	for i, coder := range coders {
		if coder.Dynamic() {
			offset := dynamic.Len()
			if _, err := coder.Encode(dynamic, values[i]); err != nil {
				return 0, err
			}
			updates = append(updates, backfill{static.WriteUpdatableValue(), offset})
			continue
		}
		if _, err := coder.Encode(static, values[i]); err != nil {
			return 0, err
		}
	}
	for _, u := range updates {
		u.update(uint256.NewInt(uint64(static.Len() + u.offset)))
	}
	n := w.AppendWriter(static)
	n += w.AppendWriter(dynamic)
	return n, nil
}

// unpack decodes a tuple laid out by pack.
func unpack(r *Reader, coders []Coder) (*Result, error) {
	base, err := r.SubReader(0)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, 0, len(coders))
	names := make([]string, len(coders))
	for i, coder := range coders {
		names[i] = coder.LocalName()

		var value interface{}
		if coder.Dynamic() {
			offset, err := r.readLength()
			if err != nil {
				return nil, err
			}
			tail, err := base.SubReader(offset)
			if err != nil {
				return nil, err
			}
			if value, err = coder.Decode(tail); err != nil {
				return nil, err
			}
		} else {
			if value, err = coder.Decode(r); err != nil {
				return nil, err
			}
		}
		values = append(values, value)
	}
	return newResult(values, names), nil
}

// tupleValues accepts the positional forms (slices, arrays, results and
// structs, in field order) plus maps keyed by member name.
func tupleValues(coders []Coder, value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		return valuesFromMap(coders, v)
	case *Result:
		return v.Values, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Struct {
		var out []interface{}
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).IsExported() {
				out = append(out, rv.Field(i).Interface())
			}
		}
		return out, nil
	}
	return toSlice(value)
}

func valuesFromMap(coders []Coder, m map[string]interface{}) ([]interface{}, error) {
	unique := mapset.NewThreadUnsafeSet[string]()
	values := make([]interface{}, len(coders))
	for i, coder := range coders {
		name := coder.LocalName()
		if name == "" {
			return nil, errors.Wrap(ErrInvalidArgument, "cannot encode object for signature with missing names")
		}
		if !unique.Add(name) {
			return nil, errors.Wrapf(ErrInvalidArgument, "cannot encode object for signature with duplicate name %q", name)
		}
		v, ok := m[name]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "missing value for %q", name)
		}
		values[i] = v
	}
	return values, nil
}

// toSlice flattens any slice or array value into a []interface{}.
func toSlice(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case *Result:
		return v.Values, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrInvalidArgument, "expected array value, got %T", value)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

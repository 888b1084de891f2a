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
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	HashTy
	TokenStandardTy
	NullTy
)

// FormatType selects how fragments and parameters are rendered.
type FormatType string

const (
	// FormatSighash is the canonical form used to derive selectors and topics,
	// e.g. "transfer(address,uint256)".
	FormatSighash FormatType = "sighash"
	// FormatMinimal drops parameter names but keeps modifiers.
	FormatMinimal FormatType = "minimal"
	// FormatFull is the human readable form including parameter names.
	FormatFull FormatType = "full"
	// FormatJSON is the JSON ABI form.
	FormatJSON FormatType = "json"
)

var (
	// numberRegex matches the numeric families, the width is optional.
	numberRegex = regexp.MustCompile(`^(u?int)([0-9]*)$`)

	// fixedBytesRegex matches bytes1 ... bytes32.
	fixedBytesRegex = regexp.MustCompile(`^bytes([0-9]+)$`)
)

// ParamType is the parsed description of one ABI value type, optionally named.
// Instances are immutable once built, share them freely.
// ParamType 是单个 ABI 值类型的解析描述，可带名称。构建后不可变，可自由共享。
type ParamType struct {
	Name string // parameter name, may be empty
	Type string // canonical type, e.g. "uint256", "(string,bytes)[]"
	T    byte   // type family, see the Type enumerator

	// Size is the bit width of numeric types and the byte length of fixed
	// size byte arrays and of the address, hash and token standard types.
	Size int

	ArrayLength   int        // -1 for dynamic arrays
	ArrayChildren *ParamType // element type of arrays
	Components    []*ParamType

	Indexed bool // only meaningful for event inputs
}

// NewParamType parses a type string such as "uint256", "address[2]",
// "(string,bytes)[]" or "tuple(uint256 amount, address to)". A trailing
// parameter name and the "indexed" modifier are accepted. The empty string
// denotes the null type.
// NewParamType 解析类型字符串。允许尾随参数名和 "indexed" 修饰符，空字符串表示空类型。
func NewParamType(t string) (*ParamType, error) {
	t = strings.TrimSpace(t)
	if t == "" {
		return newNullType(), nil
	}
	param, rest, err := parseParam(t)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errors.Wrapf(ErrInvalidType, "unexpected trailing input %q in %q", rest, t)
	}
	return param, nil
}

// MustParamType is like NewParamType but panics on malformed input.
func MustParamType(t string) *ParamType {
	param, err := NewParamType(t)
	if err != nil {
		panic(err)
	}
	return param
}

// newParamTypeFromJSON builds a parameter from its JSON ABI form. Tuple
// members come from Components, the type string then only carries array
// suffixes.
func newParamTypeFromJSON(arg ArgumentMarshaling) (*ParamType, error) {
	var (
		param *ParamType
		err   error
	)
	switch {
	case strings.HasPrefix(arg.Type, "tuple"):
		components := make([]*ParamType, len(arg.Components))
		for i, c := range arg.Components {
			if components[i], err = newParamTypeFromJSON(c); err != nil {
				return nil, err
			}
		}
		var rest string
		param, rest, err = parseArraySuffix(newTupleType(components), arg.Type[len("tuple"):])
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, errors.Wrapf(ErrInvalidType, "unexpected trailing input %q in %q", rest, arg.Type)
		}
	case strings.TrimSpace(arg.Type) == "":
		param = newNullType()
	default:
		typ, rest, err := parseType(strings.TrimSpace(arg.Type))
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, errors.Wrapf(ErrInvalidType, "unexpected trailing input %q in %q", rest, arg.Type)
		}
		param = typ
	}
	param.Name = arg.Name
	param.Indexed = arg.Indexed
	return param, nil
}

func newNullType() *ParamType {
	return &ParamType{T: NullTy}
}

// newElementaryType resolves a single type token, normalizing "uint" and
// "int" to their 256 bit form.
func newElementaryType(t string) (*ParamType, error) {
	switch t {
	case "address":
		return &ParamType{Type: t, T: AddressTy, Size: 20}, nil
	case "bool":
		return &ParamType{Type: t, T: BoolTy}, nil
	case "string":
		return &ParamType{Type: t, T: StringTy}, nil
	case "bytes":
		return &ParamType{Type: t, T: BytesTy}, nil
	case "hash":
		return &ParamType{Type: t, T: HashTy, Size: 32}, nil
	case "tokenStandard":
		return &ParamType{Type: t, T: TokenStandardTy, Size: 10}, nil
	}
	if m := numberRegex.FindStringSubmatch(t); m != nil {
		bits := 256
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n == 0 || n > 256 || n%8 != 0 {
				return nil, errors.Wrapf(ErrInvalidType, "invalid numeric width %q", t)
			}
			bits = n
		}
		typ := &ParamType{Type: m[1] + strconv.Itoa(bits), T: UintTy, Size: bits}
		if m[1] == "int" {
			typ.T = IntTy
		}
		return typ, nil
	}
	if m := fixedBytesRegex.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n == 0 || n > 32 {
			return nil, errors.Wrapf(ErrInvalidType, "invalid bytes length %q", t)
		}
		return &ParamType{Type: "bytes" + strconv.Itoa(n), T: FixedBytesTy, Size: n}, nil
	}
	return nil, errors.Wrapf(ErrInvalidType, "unsupported type %q", t)
}

func newArrayType(child *ParamType, length int) *ParamType {
	return &ParamType{
		Type:          child.Type + arraySuffix(length),
		T:             ArrayTy,
		ArrayLength:   length,
		ArrayChildren: child,
	}
}

func newTupleType(components []*ParamType) *ParamType {
	types := make([]string, len(components))
	for i, c := range components {
		types[i] = c.Type
	}
	return &ParamType{
		Type:       "(" + strings.Join(types, ",") + ")",
		T:          TupleTy,
		Components: components,
	}
}

func arraySuffix(length int) string {
	if length < 0 {
		return "[]"
	}
	return "[" + strconv.Itoa(length) + "]"
}

// BaseType returns the type family: "array", "tuple", "" for the null type
// and the canonical type itself for everything else.
func (p *ParamType) BaseType() string {
	switch p.T {
	case ArrayTy:
		return "array"
	case TupleTy:
		return "tuple"
	case NullTy:
		return ""
	}
	return p.Type
}

// IsDynamic reports whether the encoding of p is placed in the tail of its
// enclosing tuple.
func (p *ParamType) IsDynamic() bool {
	switch p.T {
	case StringTy, BytesTy:
		return true
	case ArrayTy:
		return p.ArrayLength < 0 || p.ArrayChildren.IsDynamic()
	case TupleTy:
		for _, c := range p.Components {
			if c.IsDynamic() {
				return true
			}
		}
	}
	return false
}

// String implements fmt.Stringer.
func (p *ParamType) String() string {
	return p.Type
}

// Format renders the parameter in the given style.
func (p *ParamType) Format(style FormatType) string {
	switch style {
	case FormatSighash:
		return p.Type
	case FormatMinimal:
		if p.Indexed {
			return p.Type + " indexed"
		}
		return p.Type
	case FormatJSON:
		blob, _ := json.Marshal(p)
		return string(blob)
	}
	out := p.fullType()
	if p.Indexed {
		out += " indexed"
	}
	if p.Name != "" {
		out += " " + p.Name
	}
	return out
}

func (p *ParamType) fullType() string {
	switch p.T {
	case TupleTy:
		parts := make([]string, len(p.Components))
		for i, c := range p.Components {
			parts[i] = c.Format(FormatFull)
		}
		return "tuple(" + strings.Join(parts, ", ") + ")"
	case ArrayTy:
		return p.ArrayChildren.fullType() + arraySuffix(p.ArrayLength)
	}
	return p.Type
}

// jsonType is the type string of the JSON ABI, tuples are spelled "tuple".
func (p *ParamType) jsonType() string {
	switch p.T {
	case TupleTy:
		return "tuple"
	case ArrayTy:
		return p.ArrayChildren.jsonType() + arraySuffix(p.ArrayLength)
	}
	return p.Type
}

func (p *ParamType) jsonComponents() []*ParamType {
	switch p.T {
	case TupleTy:
		return p.Components
	case ArrayTy:
		return p.ArrayChildren.jsonComponents()
	}
	return nil
}

type paramJSON struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Indexed    bool         `json:"indexed,omitempty"`
	Components []*ParamType `json:"components,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p *ParamType) MarshalJSON() ([]byte, error) {
	return json.Marshal(paramJSON{
		Name:       p.Name,
		Type:       p.jsonType(),
		Indexed:    p.Indexed,
		Components: p.jsonComponents(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// UnmarshalJSON 实现了 json.Unmarshaler 接口。
func (p *ParamType) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	if err := json.Unmarshal(data, &arg); err != nil {
		return errors.Wrap(ErrInvalidType, err.Error())
	}
	parsed, err := newParamTypeFromJSON(arg)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

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
	"strings"
)

// ArgumentMarshaling is the JSON ABI form of a parameter.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// Arguments is an ordered parameter list, the inputs or outputs of a fragment.
// Arguments 是有序的参数列表，即片段的输入或输出。
type Arguments []*ParamType

// NewArguments parses every type string with NewParamType.
func NewArguments(types ...string) (Arguments, error) {
	args := make(Arguments, len(types))
	for i, t := range types {
		param, err := NewParamType(t)
		if err != nil {
			return nil, err
		}
		args[i] = param
	}
	return args, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret Arguments
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the canonical type of every argument.
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// Names returns the name of every argument, empty for anonymous ones.
func (arguments Arguments) Names() []string {
	names := make([]string, len(arguments))
	for i, arg := range arguments {
		names[i] = arg.Name
	}
	return names
}

// Pack encodes values against the arguments with the default coder.
func (arguments Arguments) Pack(values ...interface{}) ([]byte, error) {
	return DefaultAbiCoder.EncodeParams(arguments, values)
}

// Unpack decodes data against the arguments with the default coder.
func (arguments Arguments) Unpack(data []byte) (*Result, error) {
	return DefaultAbiCoder.DecodeParams(arguments, data)
}

// signature joins the canonical types, e.g. "address,uint256".
func (arguments Arguments) signature() string {
	return strings.Join(arguments.Types(), ",")
}

func (arguments Arguments) format(style FormatType) string {
	parts := make([]string, len(arguments))
	for i, arg := range arguments {
		parts[i] = arg.Format(style)
	}
	if style == FormatSighash {
		return strings.Join(parts, ",")
	}
	return strings.Join(parts, ", ")
}

// marshalArguments produces the JSON ABI form of a parameter list.
func marshalArguments(arguments Arguments) []*ParamType {
	if arguments == nil {
		return []*ParamType{}
	}
	return arguments
}

func newArgumentsFromJSON(args []ArgumentMarshaling) (Arguments, error) {
	out := make(Arguments, len(args))
	for i, arg := range args {
		param, err := newParamTypeFromJSON(arg)
		if err != nil {
			return nil, err
		}
		out[i] = param
	}
	return out, nil
}

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
	"strings"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/crypto"
)

// FragmentKind names the kind of an ABI entry.
type FragmentKind string

const (
	FunctionKind    FragmentKind = "function"
	EventKind       FragmentKind = "event"
	ErrorKind       FragmentKind = "error"
	ConstructorKind FragmentKind = "constructor"
)

// State mutabilities of functions and constructors.
const (
	Pure       = "pure"
	View       = "view"
	NonPayable = "nonpayable"
	Payable    = "payable"
)

// Fragment is one entry of a contract interface.
// Fragment 是合约接口中的一个条目。
type Fragment interface {
	Kind() FragmentKind
	// Signature is the canonical form, e.g. "transfer(address,uint256)".
	Signature() string
	// Params returns the input parameters.
	Params() Arguments
	Format(style FormatType) string
}

// Function is a callable contract function.
type Function struct {
	Name            string
	Inputs          Arguments
	Outputs         Arguments
	StateMutability string

	// Sig contains the canonical signature, e.g. "foo(uint32,int256)".
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID is the 4 byte selector, the leading bytes of the digest of Sig.
	ID []byte
}

// NewFunction creates a function fragment and precomputes its signature and
// selector. An empty mutability means nonpayable.
// NewFunction 创建函数片段并预计算其签名和选择器。
func NewFunction(name string, inputs, outputs Arguments, stateMutability string) *Function {
	if stateMutability == "" {
		stateMutability = NonPayable
	}
	sig := name + "(" + inputs.signature() + ")"
	return &Function{
		Name:            name,
		Inputs:          inputs,
		Outputs:         outputs,
		StateMutability: stateMutability,
		Sig:             sig,
		ID:              crypto.Digest([]byte(sig))[:4],
	}
}

func (f *Function) Kind() FragmentKind { return FunctionKind }
func (f *Function) Signature() string  { return f.Sig }
func (f *Function) Params() Arguments  { return f.Inputs }
func (f *Function) String() string     { return f.Format(FormatFull) }
func (f *Function) IsConstant() bool   { return f.StateMutability == View || f.StateMutability == Pure }
func (f *Function) IsPayable() bool    { return f.StateMutability == Payable }
func (f *Function) Selector() [4]byte  { return [4]byte(f.ID) }

// Format renders the function, e.g.
// "function balanceOf(address owner) view returns (uint256)".
func (f *Function) Format(style FormatType) string {
	switch style {
	case FormatSighash:
		return f.Sig
	case FormatJSON:
		blob, _ := json.Marshal(f)
		return string(blob)
	}
	out := "function " + f.Name + "(" + f.Inputs.format(style) + ")"
	if f.StateMutability != NonPayable {
		out += " " + f.StateMutability
	}
	if len(f.Outputs) > 0 {
		out += " returns (" + f.Outputs.format(style) + ")"
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (f *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            FragmentKind `json:"type"`
		Name            string       `json:"name"`
		Constant        bool         `json:"constant"`
		StateMutability string       `json:"stateMutability"`
		Payable         bool         `json:"payable"`
		Inputs          []*ParamType `json:"inputs"`
		Outputs         []*ParamType `json:"outputs"`
	}{FunctionKind, f.Name, f.IsConstant(), f.StateMutability, f.IsPayable(), marshalArguments(f.Inputs), marshalArguments(f.Outputs)})
}

// Constructor describes the deployment parameters of a contract.
type Constructor struct {
	Inputs          Arguments
	StateMutability string
}

// NewConstructor creates a constructor fragment.
func NewConstructor(inputs Arguments, stateMutability string) *Constructor {
	if stateMutability == "" {
		stateMutability = NonPayable
	}
	return &Constructor{Inputs: inputs, StateMutability: stateMutability}
}

func (c *Constructor) Kind() FragmentKind { return ConstructorKind }
func (c *Constructor) Signature() string  { return "constructor(" + c.Inputs.signature() + ")" }
func (c *Constructor) Params() Arguments  { return c.Inputs }
func (c *Constructor) String() string     { return c.Format(FormatFull) }

func (c *Constructor) Format(style FormatType) string {
	switch style {
	case FormatSighash:
		return c.Signature()
	case FormatJSON:
		blob, _ := json.Marshal(c)
		return string(blob)
	}
	out := "constructor(" + c.Inputs.format(style) + ")"
	if c.StateMutability == Payable {
		out += " payable"
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (c *Constructor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            FragmentKind `json:"type"`
		StateMutability string       `json:"stateMutability"`
		Payable         bool         `json:"payable"`
		Inputs          []*ParamType `json:"inputs"`
	}{ConstructorKind, c.StateMutability, c.StateMutability == Payable, marshalArguments(c.Inputs)})
}

// fragmentMarshaling is the JSON ABI form of any entry. Constant and Payable
// are the legacy spellings of the state mutability.
type fragmentMarshaling struct {
	Type            string               `json:"type"`
	Name            string               `json:"name"`
	Inputs          []ArgumentMarshaling `json:"inputs"`
	Outputs         []ArgumentMarshaling `json:"outputs"`
	StateMutability string               `json:"stateMutability"`
	Constant        *bool                `json:"constant"`
	Payable         *bool                `json:"payable"`
	Anonymous       bool                 `json:"anonymous"`
}

func (m *fragmentMarshaling) stateMutability() string {
	switch {
	case m.StateMutability != "":
		return m.StateMutability
	case m.Constant != nil && *m.Constant:
		return View
	case m.Payable != nil && *m.Payable:
		return Payable
	}
	return NonPayable
}

// fragment builds the entry. Storage variables, fallback and receive entries
// are not callable through the codec and yield nil.
func (m *fragmentMarshaling) fragment() (Fragment, error) {
	switch m.Type {
	case "variable", "fallback", "receive":
		return nil, nil
	}
	inputs, err := newArgumentsFromJSON(m.Inputs)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s %s", m.Type, m.Name)
	}
	switch m.Type {
	case "", string(FunctionKind):
		outputs, err := newArgumentsFromJSON(m.Outputs)
		if err != nil {
			return nil, errors.WithMessagef(err, "function %s", m.Name)
		}
		return NewFunction(m.Name, inputs, outputs, m.stateMutability()), nil
	case string(EventKind):
		return NewEvent(m.Name, m.Anonymous, inputs), nil
	case string(ErrorKind):
		return NewError(m.Name, inputs), nil
	case string(ConstructorKind):
		return NewConstructor(inputs, m.stateMutability()), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown fragment type %q", m.Type)
}

// ParseFragment parses a human readable fragment:
//
//	function transfer(address to, uint256 amount) returns (bool)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//	error Custom(uint256 code)
//	constructor(string name) payable
//
// A bare "name(types)" is a function.
// ParseFragment 解析人类可读的片段，不带关键字的 "name(types)" 视为函数。
func ParseFragment(s string) (Fragment, error) {
	frag, err := parseFragment(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse fragment %q", s)
	}
	return frag, nil
}

func parseFragment(s string) (Fragment, error) {
	kind := FunctionKind
	for _, k := range []FragmentKind{FunctionKind, EventKind, ErrorKind, ConstructorKind} {
		if rest, ok := parseKeyword(s, string(k)); ok {
			kind, s = k, rest
			break
		}
	}
	var name string
	if kind != ConstructorKind {
		n, rest, err := parseIdentifier(s)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		name, s = n, skipSpace(rest)
	}
	inputs, rest, err := parseParamList(s)
	if err != nil {
		return nil, err
	}
	if kind != EventKind {
		for _, input := range inputs {
			if input.Indexed {
				return nil, errors.Wrapf(ErrInvalidArgument, "indexed parameter %q outside an event", input.Name)
			}
		}
	}
	var (
		outputs    Arguments
		mutability = NonPayable
		anonymous  bool
	)
	for rest = skipSpace(rest); rest != ""; rest = skipSpace(rest) {
		word, r, err := parseIdentifier(rest)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "unexpected %q", rest)
		}
		switch {
		case word == "returns" && kind == FunctionKind:
			if outputs, r, err = parseParamList(skipSpace(r)); err != nil {
				return nil, err
			}
		case word == "anonymous" && kind == EventKind:
			anonymous = true
		case (word == Pure || word == View) && kind == FunctionKind:
			mutability = word
		case word == "constant" && kind == FunctionKind:
			mutability = View
		case word == Payable || word == NonPayable:
			mutability = word
		case word == "external" || word == "public":
		default:
			return nil, errors.Wrapf(ErrInvalidArgument, "unexpected modifier %q", word)
		}
		rest = r
	}
	switch kind {
	case EventKind:
		return NewEvent(name, anonymous, inputs), nil
	case ErrorKind:
		return NewError(name, inputs), nil
	case ConstructorKind:
		return NewConstructor(inputs, mutability), nil
	}
	return NewFunction(name, inputs, outputs, mutability), nil
}

// ParseSelector parses a function signature such as "transfer(address,uint256)".
func ParseSelector(signature string) (*Function, error) {
	frag, err := ParseFragment(signature)
	if err != nil {
		return nil, err
	}
	fn, ok := frag.(*Function)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "%q is not a function", signature)
	}
	return fn, nil
}

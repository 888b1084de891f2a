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

	"github.com/znn-sdk/go-znn/crypto"
)

// Error is a custom error a contract may revert with.
type Error struct {
	Name   string
	Inputs Arguments

	// Sig contains the canonical signature, e.g. "Custom(uint256)".
	Sig string

	// ID is the 4 byte selector prefixed to the revert data.
	ID []byte
}

// NewError creates an error fragment.
func NewError(name string, inputs Arguments) *Error {
	sig := name + "(" + inputs.signature() + ")"
	return &Error{
		Name:   name,
		Inputs: inputs,
		Sig:    sig,
		ID:     crypto.Digest([]byte(sig))[:4],
	}
}

func (e *Error) Kind() FragmentKind { return ErrorKind }
func (e *Error) Signature() string  { return e.Sig }
func (e *Error) Params() Arguments  { return e.Inputs }
func (e *Error) String() string     { return e.Format(FormatFull) }

func (e *Error) Format(style FormatType) string {
	switch style {
	case FormatSighash:
		return e.Sig
	case FormatJSON:
		blob, _ := json.Marshal(e)
		return string(blob)
	}
	return "error " + e.Name + "(" + e.Inputs.format(style) + ")"
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   FragmentKind `json:"type"`
		Name   string       `json:"name"`
		Inputs []*ParamType `json:"inputs"`
	}{ErrorKind, e.Name, marshalArguments(e.Inputs)})
}

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

	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/crypto"
)

// Event is an event potentially triggered by a contract. Indexed inputs are
// carried in the log topics, the rest in the log data.
// Event 是合约可能触发的事件。索引输入存放在日志主题中，其余存放在日志数据中。
type Event struct {
	Name      string
	Anonymous bool
	Inputs    Arguments

	// Sig contains the canonical signature, e.g. "Transfer(address,address,uint256)".
	Sig string

	// ID is the topic of the event, the digest of Sig. Anonymous events do
	// not emit it.
	ID common.Hash
}

// NewEvent creates an event fragment and precomputes its signature and topic.
func NewEvent(name string, anonymous bool, inputs Arguments) *Event {
	sig := name + "(" + inputs.signature() + ")"
	return &Event{
		Name:      name,
		Anonymous: anonymous,
		Inputs:    inputs,
		Sig:       sig,
		ID:        crypto.DigestHash([]byte(sig)),
	}
}

func (e *Event) Kind() FragmentKind { return EventKind }
func (e *Event) Signature() string  { return e.Sig }
func (e *Event) Params() Arguments  { return e.Inputs }
func (e *Event) String() string     { return e.Format(FormatFull) }

// Indexed returns the inputs stored in topics.
func (e *Event) Indexed() Arguments {
	var ret Arguments
	for _, input := range e.Inputs {
		if input.Indexed {
			ret = append(ret, input)
		}
	}
	return ret
}

func (e *Event) Format(style FormatType) string {
	switch style {
	case FormatSighash:
		return e.Sig
	case FormatJSON:
		blob, _ := json.Marshal(e)
		return string(blob)
	}
	out := "event " + e.Name + "(" + e.Inputs.format(style) + ")"
	if e.Anonymous {
		out += " anonymous"
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      FragmentKind `json:"type"`
		Name      string       `json:"name"`
		Anonymous bool         `json:"anonymous"`
		Inputs    []*ParamType `json:"inputs"`
	}{EventKind, e.Name, e.Anonymous, marshalArguments(e.Inputs)})
}

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
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/crypto"
)

// EventLog is an encoded event: the topics followed by the ABI encoded
// non-indexed inputs.
type EventLog struct {
	Data   []byte
	Topics []common.Hash
}

// Indexed is the decoded form of an indexed input that cannot be recovered
// from its topic (strings, bytes, tuples and arrays). Only the digest of
// the value was logged.
// Indexed 是无法从主题中恢复的索引输入的解码形式，日志中只记录了值的摘要。
type Indexed struct {
	Hash common.Hash
}

// hashedTopic reports whether the topic of param is a digest of its value.
func hashedTopic(param *ParamType) bool {
	return param.IsDynamic() || param.T == TupleTy || param.T == ArrayTy
}

// encodeTopic converts one indexed value into its topic. Strings and bytes
// are hashed, static values are encoded into a single word.
func (abi *Interface) encodeTopic(param *ParamType, value interface{}) (common.Hash, error) {
	switch param.T {
	case StringTy:
		s, ok := value.(string)
		if !ok {
			return common.Hash{}, errors.Wrapf(ErrInvalidArgument, "invalid string value for %s (value=%v)", param.Name, value)
		}
		return crypto.Id(s), nil
	case BytesTy:
		b, ok := toBytes(value)
		if !ok {
			return common.Hash{}, errors.Wrapf(ErrInvalidArgument, "invalid bytes value for %s (value=%v)", param.Name, value)
		}
		return crypto.DigestHash(b), nil
	case TupleTy, ArrayTy:
		return common.Hash{}, errors.Wrapf(ErrInvalidArgument, "indexed %s values are not supported", param.Type)
	}
	coder, err := newCoder(param)
	if err != nil {
		return common.Hash{}, err
	}
	w := NewWriter()
	if _, err := coder.Encode(w, value); err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(w.Bytes()), nil
}

// decodeTopic reverses encodeTopic where possible.
func (abi *Interface) decodeTopic(param *ParamType, topic common.Hash) (interface{}, error) {
	if hashedTopic(param) {
		return Indexed{Hash: topic}, nil
	}
	coder, err := newCoder(param)
	if err != nil {
		return nil, err
	}
	return coder.Decode(NewReader(topic[:], abi.coder.coerceFunc, false))
}

// EncodeFilterTopics builds the topic filter matching logs of the event.
// Values map positionally onto the event inputs: nil matches anything, a
// []interface{} matches any of its members. Non-indexed inputs only accept
// nil. Trailing wildcards are trimmed.
// EncodeFilterTopics 构建匹配该事件日志的主题过滤器。
func (abi *Interface) EncodeFilterTopics(ref interface{}, values ...interface{}) ([][]common.Hash, error) {
	ev, err := abi.resolveEvent(ref)
	if err != nil {
		return nil, err
	}
	if len(values) > len(ev.Inputs) {
		return nil, errors.Wrapf(ErrTooManyArguments, "event %s takes %d inputs, got %d filter values", ev.Name, len(ev.Inputs), len(values))
	}
	var topics [][]common.Hash
	if !ev.Anonymous {
		topics = append(topics, []common.Hash{ev.ID})
	}
	for i, value := range values {
		param := ev.Inputs[i]
		if !param.Indexed {
			if value != nil {
				return nil, errors.Wrapf(ErrInvalidFilter, "cannot filter non-indexed parameter %q", param.Name)
			}
			continue
		}
		if value == nil {
			topics = append(topics, nil)
			continue
		}
		if param.T == TupleTy || param.T == ArrayTy {
			return nil, errors.Wrapf(ErrInvalidFilter, "filtering with tuples or arrays not supported (%s)", param.Type)
		}
		alternatives, ok := value.([]interface{})
		if !ok {
			alternatives = []interface{}{value}
		}
		set := make([]common.Hash, len(alternatives))
		for j, alt := range alternatives {
			if set[j], err = abi.encodeTopic(param, alt); err != nil {
				return nil, err
			}
		}
		topics = append(topics, set)
	}
	for len(topics) > 0 && topics[len(topics)-1] == nil {
		topics = topics[:len(topics)-1]
	}
	return topics, nil
}

// EncodeEventLog produces the log the event emits for the given input values.
func (abi *Interface) EncodeEventLog(ref interface{}, values ...interface{}) (*EventLog, error) {
	ev, err := abi.resolveEvent(ref)
	if err != nil {
		return nil, err
	}
	if len(values) != len(ev.Inputs) {
		return nil, errors.Wrapf(ErrLengthMismatch, "event %s takes %d inputs, got %d values", ev.Name, len(ev.Inputs), len(values))
	}
	var (
		topics     []common.Hash
		dataParams Arguments
		dataValues []interface{}
	)
	if !ev.Anonymous {
		topics = append(topics, ev.ID)
	}
	for i, param := range ev.Inputs {
		if !param.Indexed {
			dataParams = append(dataParams, param)
			dataValues = append(dataValues, values[i])
			continue
		}
		topic, err := abi.encodeTopic(param, values[i])
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	data, err := abi.coder.EncodeParams(dataParams, dataValues)
	if err != nil {
		return nil, err
	}
	return &EventLog{Data: data, Topics: topics}, nil
}

// DecodeEventLog decodes a log of the event. Indexed inputs are read from the
// topics and the remaining inputs from data, the result lists them in
// declaration order.
func (abi *Interface) DecodeEventLog(ref interface{}, data []byte, topics []common.Hash) (*Result, error) {
	ev, err := abi.resolveEvent(ref)
	if err != nil {
		return nil, err
	}
	if !ev.Anonymous {
		if len(topics) == 0 || topics[0] != ev.ID {
			return nil, errors.Wrapf(ErrInvalidArgument, "log topic does not match event %s", ev.Sig)
		}
		topics = topics[1:]
	}
	if indexed := ev.Indexed(); len(topics) != len(indexed) {
		return nil, errors.Wrapf(ErrLengthMismatch, "event %s has %d indexed inputs, got %d topics", ev.Name, len(indexed), len(topics))
	}
	nonIndexed, err := abi.coder.DecodeParams(ev.Inputs.NonIndexed(), data)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(ev.Inputs))
	for i, param := range ev.Inputs {
		if param.Indexed {
			if values[i], err = abi.decodeTopic(param, topics[0]); err != nil {
				return nil, err
			}
			topics = topics[1:]
		} else {
			values[i], nonIndexed.Values = nonIndexed.Values[0], nonIndexed.Values[1:]
		}
	}
	return newResult(values, ev.Inputs.Names()), nil
}

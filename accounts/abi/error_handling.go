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
	"bytes"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common/hexutil"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, test for them with errors.Is.
// 错误类别。本包返回的每个错误都包装了其中之一，可使用 errors.Is 判断。
var (
	// ErrInvalidType is returned for malformed or unsupported type strings.
	ErrInvalidType = errors.New("abi: invalid type")

	// ErrLengthMismatch is returned when the number of types and values differ.
	ErrLengthMismatch = errors.New("abi: types/values length mismatch")

	// ErrOutOfBounds is returned when a number does not fit its declared width.
	ErrOutOfBounds = errors.New("abi: value out-of-bounds")

	// ErrMissingArgument is returned when a fixed array receives too few elements.
	ErrMissingArgument = errors.New("abi: missing argument")

	// ErrTooManyArguments is returned when a fixed array receives too many elements.
	ErrTooManyArguments = errors.New("abi: too many arguments")

	// ErrBufferOverrun is returned when decoding reads past the end of the data.
	ErrBufferOverrun = errors.New("abi: data out-of-bounds")

	// ErrNoMatchingFragment is returned when a lookup key resolves to nothing.
	ErrNoMatchingFragment = errors.New("abi: no matching fragment")

	// ErrAmbiguousFragment is returned when a bare name matches several overloads.
	ErrAmbiguousFragment = errors.New("abi: multiple matching fragments")

	// ErrFunctionSelectorMismatch is returned when call data starts with another selector.
	ErrFunctionSelectorMismatch = errors.New("abi: data signature does not match function")

	// ErrCallException is the kind of every *CallException.
	ErrCallException = errors.New("abi: call revert exception")

	// ErrInvalidFilter is returned for filter values on non-indexed parameters.
	ErrInvalidFilter = errors.New("abi: invalid filter")

	// ErrUnsupportedFormat is returned for unknown output formats.
	ErrUnsupportedFormat = errors.New("abi: unsupported format")

	// ErrInvalidArgument is returned when a value cannot be converted to its parameter type.
	ErrInvalidArgument = errors.New("abi: invalid argument")
)

// revertSelector is the reserved selector of the built-in Error(string) revert payload.
var revertSelector = []byte{0x08, 0xc3, 0x79, 0xa0}

// panicSelector is the reserved selector of the built-in Panic(uint256) payload.
var panicSelector = []byte{0x4e, 0x48, 0x7b, 0x71}

// panicReasons maps the well-known panic codes to readable reasons.
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// CallException describes result data that turned out to be a revert payload.
// CallException 描述实际上是 revert 载荷的结果数据。
type CallException struct {
	Reason         string // revert reason, empty when the payload carries none
	ErrorName      string // name of the matched error fragment, if any
	ErrorSignature string
	ErrorArgs      *Result
	Data           []byte // the raw result data
}

func (e *CallException) Error() string {
	msg := ErrCallException.Error()
	if e.Reason != "" {
		msg += fmt.Sprintf(": %q", e.Reason)
	} else if e.ErrorSignature != "" {
		msg += ": " + e.ErrorSignature
	}
	return msg + " (data=" + hexutil.Encode(e.Data) + ")"
}

// Unwrap makes errors.Is(err, ErrCallException) hold.
func (e *CallException) Unwrap() error {
	return ErrCallException
}

// panicReason renders a Panic(uint256) code.
func panicReason(code *big.Int) string {
	if code.IsUint64() {
		if reason, ok := panicReasons[code.Uint64()]; ok {
			return reason
		}
	}
	return fmt.Sprintf("unknown panic code: %#x", code)
}

// UnpackRevert resolves the revert reason of a built-in Error(string) or
// Panic(uint256) payload.
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", errors.Wrap(ErrInvalidArgument, "invalid data for unpacking")
	}
	switch {
	case bytes.Equal(data[:4], revertSelector):
		res, err := DefaultAbiCoder.Decode([]string{"string"}, data[4:])
		if err != nil {
			return "", err
		}
		return res.Values[0].(string), nil
	case bytes.Equal(data[:4], panicSelector):
		res, err := DefaultAbiCoder.Decode([]string{"uint256"}, data[4:])
		if err != nil {
			return "", err
		}
		return panicReason(res.Values[0].(*big.Int)), nil
	}
	return "", errors.Wrap(ErrInvalidArgument, "invalid data for unpacking")
}

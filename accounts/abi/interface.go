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
	"encoding/json"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/common/hexutil"
	"github.com/znn-sdk/go-znn/log"
)

// builtinErrors are the revert payloads every contract may produce.
var builtinErrors = map[string]*Error{
	hexutil.Encode(revertSelector): newBuiltinError("Error", "string message", revertSelector),
	hexutil.Encode(panicSelector):  newBuiltinError("Panic", "uint256 code", panicSelector),
}

// newBuiltinError creates a built-in error carrying its reserved selector
// instead of the digest of its signature.
func newBuiltinError(name, param string, selector []byte) *Error {
	e := NewError(name, Arguments{MustParamType(param)})
	e.ID = selector
	return e
}

// fragmentIndex resolves fragments of one kind by signature, bare name or
// hex identifier.
type fragmentIndex[T Fragment] struct {
	kind   FragmentKind
	bySig  map[string]T
	byName map[string][]T
	byID   map[string]T
}

func newFragmentIndex[T Fragment](kind FragmentKind) *fragmentIndex[T] {
	return &fragmentIndex[T]{
		kind:   kind,
		bySig:  make(map[string]T),
		byName: make(map[string][]T),
		byID:   make(map[string]T),
	}
}

func (idx *fragmentIndex[T]) add(name string, id []byte, frag T) bool {
	if _, exists := idx.bySig[frag.Signature()]; exists {
		return false
	}
	idx.bySig[frag.Signature()] = frag
	idx.byName[name] = append(idx.byName[name], frag)
	idx.byID[hexutil.Encode(id)] = frag
	return true
}

func (idx *fragmentIndex[T]) lookup(key string) (T, error) {
	var zero T
	key = strings.TrimSpace(key)
	if hexutil.Has0xPrefix(key) {
		if frag, ok := idx.byID[strings.ToLower(key)]; ok {
			return frag, nil
		}
		return zero, errors.Wrapf(ErrNoMatchingFragment, "no %s with identifier %s", idx.kind, key)
	}
	if !strings.Contains(key, "(") {
		bucket := idx.byName[key]
		switch len(bucket) {
		case 0:
			return zero, errors.Wrapf(ErrNoMatchingFragment, "no %s named %q", idx.kind, key)
		case 1:
			return bucket[0], nil
		}
		sigs := make([]string, len(bucket))
		for i, frag := range bucket {
			sigs[i] = frag.Signature()
		}
		return zero, errors.Wrapf(ErrAmbiguousFragment, "%s %q matches %s", idx.kind, key, strings.Join(sigs, ", "))
	}
	if _, ok := parseKeyword(key, string(idx.kind)); !ok {
		key = string(idx.kind) + " " + key
	}
	parsed, err := ParseFragment(key)
	if err != nil {
		return zero, err
	}
	if frag, ok := idx.bySig[parsed.Signature()]; ok {
		return frag, nil
	}
	return zero, errors.Wrapf(ErrNoMatchingFragment, "no %s with signature %s", idx.kind, parsed.Signature())
}

// Interface is a parsed contract ABI. It resolves fragments and encodes or
// decodes call data, call results, revert data and event logs. An Interface
// is read-only after construction and safe for concurrent use.
// Interface 是解析后的合约 ABI，构造完成后只读，可安全并发使用。
type Interface struct {
	Fragments []Fragment
	Deploy    *Constructor

	// Functions, Events and Errors are keyed by canonical signature.
	Functions map[string]*Function
	Events    map[string]*Event
	Errors    map[string]*Error

	functions *fragmentIndex[*Function]
	events    *fragmentIndex[*Event]
	errors    *fragmentIndex[*Error]
	coder     *AbiCoder
}

// NewInterface creates an Interface from a JSON ABI (string, []byte or
// io.Reader), from human readable declarations ([]string) or from parsed
// fragments ([]Fragment).
func NewInterface(definition interface{}) (*Interface, error) {
	switch def := definition.(type) {
	case string:
		return JSON(strings.NewReader(def))
	case []byte:
		return JSON(bytes.NewReader(def))
	case io.Reader:
		return JSON(def)
	case []string:
		return HumanReadable(def...)
	case []Fragment:
		return newInterface(def), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unsupported ABI definition %T", definition)
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，如果失败则返回错误。
func JSON(reader io.Reader) (*Interface, error) {
	dec := json.NewDecoder(reader)

	var entries []fragmentMarshaling
	if err := dec.Decode(&entries); err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	var (
		frags   []Fragment
		skipped int
	)
	for _, entry := range entries {
		frag, err := entry.fragment()
		if err != nil {
			return nil, err
		}
		if frag == nil {
			skipped++
			continue
		}
		frags = append(frags, frag)
	}
	if skipped > 0 {
		log.Debug("Skipped non-callable ABI entries", "count", skipped)
	}
	return newInterface(frags), nil
}

// HumanReadable parses one fragment per declaration.
func HumanReadable(lines ...string) (*Interface, error) {
	frags := make([]Fragment, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		frag, err := ParseFragment(line)
		if err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	return newInterface(frags), nil
}

func newInterface(frags []Fragment) *Interface {
	abi := &Interface{
		functions: newFragmentIndex[*Function](FunctionKind),
		events:    newFragmentIndex[*Event](EventKind),
		errors:    newFragmentIndex[*Error](ErrorKind),
		coder:     DefaultAbiCoder,
	}
	abi.Functions = abi.functions.bySig
	abi.Events = abi.events.bySig
	abi.Errors = abi.errors.bySig

	for _, frag := range frags {
		added := true
		switch f := frag.(type) {
		case *Function:
			added = abi.functions.add(f.Name, f.ID, f)
		case *Event:
			added = abi.events.add(f.Name, f.ID[:], f)
		case *Error:
			added = abi.errors.add(f.Name, f.ID, f)
		case *Constructor:
			if added = abi.Deploy == nil; added {
				abi.Deploy = f
			}
		}
		if !added {
			log.Warn("Duplicate ABI fragment ignored", "kind", frag.Kind(), "signature", frag.Signature())
			continue
		}
		abi.Fragments = append(abi.Fragments, frag)
	}
	log.Debug("Parsed contract interface", "functions", len(abi.Functions), "events", len(abi.Events), "errors", len(abi.Errors))
	return abi
}

// WithCoder returns a shallow copy of the interface using coder.
func (abi *Interface) WithCoder(coder *AbiCoder) *Interface {
	cpy := *abi
	cpy.coder = coder
	return &cpy
}

// GetFunction resolves a function by bare name, signature or 4 byte hex selector.
func (abi *Interface) GetFunction(key string) (*Function, error) {
	fn, err := abi.functions.lookup(key)
	if err != nil {
		log.Trace("Function lookup failed", "key", key, "err", err)
	}
	return fn, err
}

// GetEvent resolves an event by bare name, signature or 32 byte hex topic.
func (abi *Interface) GetEvent(key string) (*Event, error) {
	ev, err := abi.events.lookup(key)
	if err != nil {
		log.Trace("Event lookup failed", "key", key, "err", err)
	}
	return ev, err
}

// GetError resolves a custom error by bare name, signature or 4 byte hex
// selector. The built-in Error(string) and Panic(uint256) are always known.
func (abi *Interface) GetError(key string) (*Error, error) {
	if e, ok := builtinErrors[strings.ToLower(strings.TrimSpace(key))]; ok {
		return e, nil
	}
	for _, e := range builtinErrors {
		if key == e.Sig {
			return e, nil
		}
	}
	e, err := abi.errors.lookup(key)
	if err != nil {
		log.Trace("Error lookup failed", "key", key, "err", err)
	}
	return e, err
}

// GetSighash returns the 4 byte selector of a function or error, given as a
// fragment or a lookup key.
func (abi *Interface) GetSighash(ref interface{}) ([]byte, error) {
	switch r := ref.(type) {
	case *Function:
		return common.CopyBytes(r.ID), nil
	case *Error:
		return common.CopyBytes(r.ID), nil
	case string:
		if fn, err := abi.GetFunction(r); err == nil {
			return common.CopyBytes(fn.ID), nil
		} else if !errors.Is(err, ErrNoMatchingFragment) {
			return nil, err
		}
		e, err := abi.GetError(r)
		if err != nil {
			return nil, err
		}
		return common.CopyBytes(e.ID), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "cannot derive a selector from %T", ref)
}

// GetEventTopic returns the topic of an event, given as a fragment or a lookup key.
func (abi *Interface) GetEventTopic(ref interface{}) (common.Hash, error) {
	ev, err := abi.resolveEvent(ref)
	if err != nil {
		return common.Hash{}, err
	}
	return ev.ID, nil
}

func (abi *Interface) resolveFunction(ref interface{}) (*Function, error) {
	switch r := ref.(type) {
	case *Function:
		return r, nil
	case string:
		return abi.GetFunction(r)
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "invalid function reference %T", ref)
}

func (abi *Interface) resolveEvent(ref interface{}) (*Event, error) {
	switch r := ref.(type) {
	case *Event:
		return r, nil
	case string:
		return abi.GetEvent(r)
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "invalid event reference %T", ref)
}

func (abi *Interface) resolveError(ref interface{}) (*Error, error) {
	switch r := ref.(type) {
	case *Error:
		return r, nil
	case string:
		return abi.GetError(r)
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "invalid error reference %T", ref)
}

// EncodeFunctionData encodes a call: the selector followed by the encoded inputs.
// EncodeFunctionData 编码调用数据：选择器后跟编码后的输入。
func (abi *Interface) EncodeFunctionData(ref interface{}, values ...interface{}) ([]byte, error) {
	fn, err := abi.resolveFunction(ref)
	if err != nil {
		return nil, err
	}
	return abi.encodeWithSelector(fn.ID, fn.Inputs, values)
}

func (abi *Interface) encodeWithSelector(selector []byte, params Arguments, values []interface{}) ([]byte, error) {
	data, err := abi.coder.EncodeParams(params, values)
	if err != nil {
		return nil, err
	}
	return append(common.CopyBytes(selector), data...), nil
}

// DecodeFunctionData decodes the inputs of call data produced for the function.
func (abi *Interface) DecodeFunctionData(ref interface{}, data []byte) (*Result, error) {
	fn, err := abi.resolveFunction(ref)
	if err != nil {
		return nil, err
	}
	if len(data) < 4 || !bytes.Equal(data[:4], fn.ID) {
		return nil, errors.Wrapf(ErrFunctionSelectorMismatch, "data does not start with the selector of %s", fn.Sig)
	}
	return abi.coder.DecodeParams(fn.Inputs, data[4:])
}

// DecodeFunctionDataNamed is DecodeFunctionData keyed by input name. Unnamed
// inputs are keyed by their position.
func (abi *Interface) DecodeFunctionDataNamed(ref interface{}, data []byte) (map[string]interface{}, error) {
	fn, err := abi.resolveFunction(ref)
	if err != nil {
		return nil, err
	}
	res, err := abi.DecodeFunctionData(fn, data)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(fn.Inputs))
	for i, input := range fn.Inputs {
		name := input.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		out[name] = res.Values[i]
	}
	return out, nil
}

// EncodeFunctionResult encodes the outputs of the function.
func (abi *Interface) EncodeFunctionResult(ref interface{}, values ...interface{}) ([]byte, error) {
	fn, err := abi.resolveFunction(ref)
	if err != nil {
		return nil, err
	}
	return abi.coder.EncodeParams(fn.Outputs, values)
}

// DecodeFunctionResult decodes the outputs of the function. Data that is
// not word aligned is a revert payload and yields a *CallException.
// DecodeFunctionResult 解码函数输出。未按字对齐的数据是 revert 载荷，返回 *CallException。
func (abi *Interface) DecodeFunctionResult(ref interface{}, data []byte) (*Result, error) {
	fn, err := abi.resolveFunction(ref)
	if err != nil {
		return nil, err
	}
	if len(data)%WordSize != 0 {
		return nil, abi.callException(data)
	}
	return abi.coder.DecodeParams(fn.Outputs, data)
}

// callException describes revert data, resolving its reason when the
// selector belongs to a known error.
func (abi *Interface) callException(data []byte) *CallException {
	ex := &CallException{Data: common.CopyBytes(data)}
	desc, err := abi.ParseError(data)
	if err != nil {
		log.Debug("Unrecognized revert data", "len", len(data))
		return ex
	}
	ex.ErrorName, ex.ErrorSignature, ex.ErrorArgs = desc.Name, desc.Signature, desc.Args
	switch desc.Signature {
	case "Error(string)":
		ex.Reason, _ = desc.Args.Values[0].(string)
	case "Panic(uint256)":
		if code, ok := desc.Args.Values[0].(*big.Int); ok {
			ex.Reason = panicReason(code)
		}
	}
	log.Debug("Decoded call exception", "error", ex.ErrorSignature, "reason", ex.Reason)
	return ex
}

// EncodeErrorResult encodes revert data for the error.
func (abi *Interface) EncodeErrorResult(ref interface{}, values ...interface{}) ([]byte, error) {
	e, err := abi.resolveError(ref)
	if err != nil {
		return nil, err
	}
	return abi.encodeWithSelector(e.ID, e.Inputs, values)
}

// DecodeErrorResult decodes revert data produced for the error.
func (abi *Interface) DecodeErrorResult(ref interface{}, data []byte) (*Result, error) {
	e, err := abi.resolveError(ref)
	if err != nil {
		return nil, err
	}
	if len(data) < 4 || !bytes.Equal(data[:4], e.ID) {
		return nil, errors.Wrapf(ErrFunctionSelectorMismatch, "data does not start with the selector of %s", e.Sig)
	}
	return abi.coder.DecodeParams(e.Inputs, data[4:])
}

// EncodeDeploy encodes the constructor arguments. An interface without a
// constructor takes no arguments.
func (abi *Interface) EncodeDeploy(values ...interface{}) ([]byte, error) {
	var inputs Arguments
	if abi.Deploy != nil {
		inputs = abi.Deploy.Inputs
	}
	return abi.coder.EncodeParams(inputs, values)
}

// TransactionDescription is the result of ParseTransaction.
type TransactionDescription struct {
	Fragment  *Function
	Name      string
	Signature string
	Sighash   []byte
	Args      *Result
}

// LogDescription is the result of ParseLog.
type LogDescription struct {
	Fragment  *Event
	Name      string
	Signature string
	Topic     common.Hash
	Args      *Result
}

// ErrorDescription is the result of ParseError.
type ErrorDescription struct {
	Fragment  *Error
	Name      string
	Signature string
	Sighash   []byte
	Args      *Result
}

// ParseTransaction finds the function matching the selector of the call
// data and decodes its inputs.
func (abi *Interface) ParseTransaction(data []byte) (*TransactionDescription, error) {
	if len(data) < 4 {
		return nil, errors.Wrapf(ErrInvalidArgument, "call data too short (%d bytes)", len(data))
	}
	fn, err := abi.GetFunction(hexutil.Encode(data[:4]))
	if err != nil {
		return nil, err
	}
	args, err := abi.coder.DecodeParams(fn.Inputs, data[4:])
	if err != nil {
		return nil, err
	}
	return &TransactionDescription{Fragment: fn, Name: fn.Name, Signature: fn.Sig, Sighash: common.CopyBytes(fn.ID), Args: args}, nil
}

// ParseLog finds the event matching the first topic and decodes the log.
func (abi *Interface) ParseLog(data []byte, topics []common.Hash) (*LogDescription, error) {
	if len(topics) == 0 {
		return nil, errors.Wrap(ErrNoMatchingFragment, "log without topics")
	}
	ev, err := abi.GetEvent(topics[0].Hex())
	if err != nil {
		return nil, err
	}
	args, err := abi.DecodeEventLog(ev, data, topics)
	if err != nil {
		return nil, err
	}
	return &LogDescription{Fragment: ev, Name: ev.Name, Signature: ev.Sig, Topic: ev.ID, Args: args}, nil
}

// ParseError finds the error matching the selector of revert data and
// decodes its arguments.
func (abi *Interface) ParseError(data []byte) (*ErrorDescription, error) {
	if len(data) < 4 {
		return nil, errors.Wrapf(ErrInvalidArgument, "revert data too short (%d bytes)", len(data))
	}
	e, err := abi.GetError(hexutil.Encode(data[:4]))
	if err != nil {
		return nil, err
	}
	args, err := abi.coder.DecodeParams(e.Inputs, data[4:])
	if err != nil {
		return nil, err
	}
	return &ErrorDescription{Fragment: e, Name: e.Name, Signature: e.Sig, Sighash: common.CopyBytes(e.ID), Args: args}, nil
}

// Format serializes the interface. Only FormatJSON is supported.
func (abi *Interface) Format(style FormatType) (string, error) {
	if style != FormatJSON {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", style)
	}
	blob, err := json.Marshal(abi)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// MarshalJSON renders the interface as a JSON ABI.
func (abi *Interface) MarshalJSON() ([]byte, error) {
	if abi.Fragments == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(abi.Fragments)
}

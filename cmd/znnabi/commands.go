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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/znn-sdk/go-znn/accounts/abi"
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/common/hexutil"
	"github.com/znn-sdk/go-znn/crypto"
	"github.com/znn-sdk/go-znn/embedded"
	"github.com/znn-sdk/go-znn/internal/flags"
)

var (
	typesFlag = &cli.StringFlag{
		Name:     "types",
		Usage:    `Comma separated parameter types, e.g. "address to,uint256[] amounts"`,
		Category: flags.CodecCategory,
	}
	valuesFlag = &cli.StringFlag{
		Name:     "values",
		Usage:    "JSON array with one value per parameter",
		Value:    "[]",
		Category: flags.CodecCategory,
	}
	dumpFlag = &cli.BoolFlag{
		Name:     "dump",
		Usage:    "Print the decoded Go values instead of JSON",
		Category: flags.CodecCategory,
	}
	looseFlag = &cli.BoolFlag{
		Name:     "loose",
		Usage:    "Zero pad short reads instead of failing",
		Category: flags.CodecCategory,
	}
	contractFlag = &cli.StringFlag{
		Name:     "contract",
		Usage:    "Embedded or configured contract identifier",
		Category: flags.ContractCategory,
	}
	abiFileFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "JSON ABI file of the contract",
		Category: flags.ContractCategory,
	}
	topicsFlag = &cli.StringSliceFlag{
		Name:     "topics",
		Usage:    "Log topics, the data is then parsed as an event log",
		Category: flags.CodecCategory,
	}
	revertFlag = &cli.BoolFlag{
		Name:     "revert",
		Usage:    "Parse the data as revert data",
		Category: flags.CodecCategory,
	}
	styleFlag = &cli.StringFlag{
		Name:     "style",
		Usage:    "Output style (json|full|minimal|sighash)",
		Value:    string(abi.FormatJSON),
		Category: flags.CodecCategory,
	}
)

var (
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode values against a parameter list",
		ArgsUsage: " ",
		Flags:     []cli.Flag{typesFlag, valuesFlag},
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode hex data against a parameter list",
		ArgsUsage: "<hexdata>",
		Flags:     []cli.Flag{typesFlag, looseFlag, dumpFlag},
	}
	selectorCommand = &cli.Command{
		Action:    selector,
		Name:      "selector",
		Usage:     "Print the 4-byte selector of a function or error signature",
		ArgsUsage: "<signature>",
	}
	topicCommand = &cli.Command{
		Action:    topic,
		Name:      "topic",
		Usage:     "Print the topic of an event, or its filter topics when a contract is given",
		ArgsUsage: "<event>",
		Flags:     []cli.Flag{contractFlag, abiFileFlag, valuesFlag},
	}
	callCommand = &cli.Command{
		Action:    call,
		Name:      "call",
		Usage:     "Encode call data for a contract function",
		ArgsUsage: "<function>",
		Flags:     []cli.Flag{contractFlag, abiFileFlag, valuesFlag},
		Description: `
The function is looked up by name, signature or selector. For embedded
contracts the target address is printed along with the data.`,
	}
	parseCommand = &cli.Command{
		Action:    parse,
		Name:      "parse",
		Usage:     "Decode call data, an event log or revert data of a contract",
		ArgsUsage: "<hexdata>",
		Flags:     []cli.Flag{contractFlag, abiFileFlag, topicsFlag, revertFlag},
	}
	formatCommand = &cli.Command{
		Action:    format,
		Name:      "format",
		Usage:     "Print the interface of a contract",
		ArgsUsage: " ",
		Flags:     []cli.Flag{contractFlag, abiFileFlag, styleFlag},
	}
	contractsCommand = &cli.Command{
		Action: contracts,
		Name:   "contracts",
		Usage:  "List the known contracts",
	}
)

// parseTypes parses a comma separated parameter list.
func parseTypes(types string) (abi.Arguments, error) {
	fn, err := abi.ParseSelector("f(" + types + ")")
	if err != nil {
		return nil, err
	}
	return fn.Inputs, nil
}

// parseValues decodes a JSON array, keeping numbers exact.
func parseValues(input string) ([]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	var values []interface{}
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("invalid values: %v", err)
	}
	return values, nil
}

func singleArg(ctx *cli.Context, what string) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected one argument: %s", what)
	}
	return ctx.Args().First(), nil
}

// contractFrom resolves the --contract or --abi flag.
func contractFrom(ctx *cli.Context) (*abi.Interface, error) {
	reg := registryFrom(ctx)
	switch {
	case ctx.IsSet(contractFlag.Name) && ctx.IsSet(abiFileFlag.Name):
		return nil, fmt.Errorf("flags --%s and --%s are mutually exclusive", contractFlag.Name, abiFileFlag.Name)
	case ctx.IsSet(contractFlag.Name):
		return reg.contract(ctx.String(contractFlag.Name))
	case ctx.IsSet(abiFileFlag.Name):
		return reg.file(ctx.String(abiFileFlag.Name))
	}
	return nil, fmt.Errorf("missing --%s or --%s", contractFlag.Name, abiFileFlag.Name)
}

func encode(ctx *cli.Context) error {
	params, err := parseTypes(ctx.String(typesFlag.Name))
	if err != nil {
		return err
	}
	values, err := parseValues(ctx.String(valuesFlag.Name))
	if err != nil {
		return err
	}
	data, err := abi.DefaultAbiCoder.EncodeParams(params, values)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}

func decode(ctx *cli.Context) error {
	input, err := singleArg(ctx, "hex data")
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(input)
	if err != nil {
		return err
	}
	params, err := parseTypes(ctx.String(typesFlag.Name))
	if err != nil {
		return err
	}
	var res *abi.Result
	if ctx.Bool(looseFlag.Name) {
		res, err = abi.DefaultAbiCoder.DecodeLoose(params.Types(), data)
	} else {
		res, err = abi.DefaultAbiCoder.DecodeParams(params, data)
	}
	if err != nil {
		return err
	}
	if ctx.Bool(dumpFlag.Name) {
		spew.Fdump(ctx.App.Writer, res.Values)
		return nil
	}
	return printJSON(ctx, render(res))
}

func selector(ctx *cli.Context) error {
	sig, err := singleArg(ctx, "signature")
	if err != nil {
		return err
	}
	frag, err := abi.ParseFragment(sig)
	if err != nil {
		return err
	}
	var id []byte
	switch f := frag.(type) {
	case *abi.Function:
		id = f.ID
	case *abi.Error:
		id = f.ID
	default:
		return fmt.Errorf("%s fragments have no selector", frag.Kind())
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(id))
	return nil
}

func topic(ctx *cli.Context) error {
	ref, err := singleArg(ctx, "event")
	if err != nil {
		return err
	}
	if !ctx.IsSet(contractFlag.Name) && !ctx.IsSet(abiFileFlag.Name) {
		frag, err := abi.ParseFragment(ref)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, crypto.Id(frag.Signature()).Hex())
		return nil
	}
	iface, err := contractFrom(ctx)
	if err != nil {
		return err
	}
	values, err := parseValues(ctx.String(valuesFlag.Name))
	if err != nil {
		return err
	}
	topics, err := iface.EncodeFilterTopics(ref, values...)
	if err != nil {
		return err
	}
	return printJSON(ctx, topics)
}

func call(ctx *cli.Context) error {
	ref, err := singleArg(ctx, "function")
	if err != nil {
		return err
	}
	iface, err := contractFrom(ctx)
	if err != nil {
		return err
	}
	values, err := parseValues(ctx.String(valuesFlag.Name))
	if err != nil {
		return err
	}
	data, err := iface.EncodeFunctionData(ref, values...)
	if err != nil {
		return err
	}
	if addr, ok := embedded.Address(ctx.String(contractFlag.Name)); ok {
		fmt.Fprintln(ctx.App.Writer, "to:  ", addr)
		fmt.Fprintln(ctx.App.Writer, "data:", hexutil.Encode(data))
		return nil
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}

// description is the printed form of a parsed transaction, log or error.
type description struct {
	Name      string                 `json:"name"`
	Signature string                 `json:"signature"`
	ID        string                 `json:"id"`
	Args      interface{}            `json:"args"`
	Named     map[string]interface{} `json:"named,omitempty"`
}

func newDescription(name, sig string, id []byte, args *abi.Result) description {
	named := make(map[string]interface{})
	for k, v := range args.Map() {
		named[k] = render(v)
	}
	return description{Name: name, Signature: sig, ID: hexutil.Encode(id), Args: render(args), Named: named}
}

func parse(ctx *cli.Context) error {
	input, err := singleArg(ctx, "hex data")
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(input)
	if err != nil {
		return err
	}
	// Built-in revert payloads need no contract.
	if ctx.Bool(revertFlag.Name) && !ctx.IsSet(contractFlag.Name) && !ctx.IsSet(abiFileFlag.Name) {
		reason, err := abi.UnpackRevert(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, reason)
		return nil
	}
	iface, err := contractFrom(ctx)
	if err != nil {
		return err
	}
	switch {
	case ctx.IsSet(topicsFlag.Name) && ctx.Bool(revertFlag.Name):
		return fmt.Errorf("flags --%s and --%s are mutually exclusive", topicsFlag.Name, revertFlag.Name)
	case ctx.IsSet(topicsFlag.Name):
		var topics []common.Hash
		for _, t := range ctx.StringSlice(topicsFlag.Name) {
			h, err := common.ParseHash(t)
			if err != nil {
				return err
			}
			topics = append(topics, h)
		}
		desc, err := iface.ParseLog(data, topics)
		if err != nil {
			return err
		}
		return printJSON(ctx, newDescription(desc.Name, desc.Signature, desc.Topic.Bytes(), desc.Args))
	case ctx.Bool(revertFlag.Name):
		desc, err := iface.ParseError(data)
		if err != nil {
			return err
		}
		return printJSON(ctx, newDescription(desc.Name, desc.Signature, desc.Sighash, desc.Args))
	}
	desc, err := iface.ParseTransaction(data)
	if err != nil {
		return err
	}
	return printJSON(ctx, newDescription(desc.Name, desc.Signature, desc.Sighash, desc.Args))
}

func format(ctx *cli.Context) error {
	iface, err := contractFrom(ctx)
	if err != nil {
		return err
	}
	style := abi.FormatType(ctx.String(styleFlag.Name))
	switch style {
	case abi.FormatJSON:
		var out bytes.Buffer
		blob, err := iface.Format(style)
		if err != nil {
			return err
		}
		if err := json.Indent(&out, []byte(blob), "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, out.String())
	case abi.FormatFull, abi.FormatMinimal, abi.FormatSighash:
		for _, frag := range iface.Fragments {
			fmt.Fprintln(ctx.App.Writer, frag.Format(style))
		}
	default:
		return errors.Wrapf(abi.ErrUnsupportedFormat, "%q", style)
	}
	return nil
}

func contracts(ctx *cli.Context) error {
	for _, id := range embedded.Contracts() {
		if addr, ok := embedded.Address(id); ok {
			fmt.Fprintf(ctx.App.Writer, "%-12s %s\n", id, addr)
		} else {
			fmt.Fprintf(ctx.App.Writer, "%-12s -\n", id)
		}
	}
	for _, id := range registryFrom(ctx).ids() {
		fmt.Fprintf(ctx.App.Writer, "%-12s %s\n", id, registryFrom(ctx).files[id])
	}
	return nil
}

// render converts decoded values into their JSON friendly form.
func render(v interface{}) interface{} {
	switch x := v.(type) {
	case *abi.Result:
		return render(x.Values)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, elem := range x {
			out[i] = render(elem)
		}
		return out
	case []byte:
		return hexutil.Encode(x)
	case *big.Int:
		return json.Number(x.String())
	case abi.Indexed:
		return map[string]string{"hash": x.Hash.Hex()}
	}
	return v
}

func printJSON(ctx *cli.Context, v interface{}) error {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(blob))
	return nil
}

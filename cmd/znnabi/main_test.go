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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/znn-sdk/go-znn/accounts/abi"
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/common/hexutil"
	"github.com/znn-sdk/go-znn/embedded"
)

const tokenABI = `[
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]}
]`

var alice = common.BytesToAddress(bytes.Repeat([]byte{0x11}, common.AddressLength))

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"znnabi"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEncodeDecode(t *testing.T) {
	out, err := runApp(t, "encode", "--types", "uint256,bool", "--values", "[1, true]")
	require.NoError(t, err)
	word := strings.Repeat("0", 63) + "1"
	assert.Equal(t, "0x"+word+word+"\n", out)

	data, err := abi.DefaultAbiCoder.EncodeHex([]string{"uint256", "string"}, []interface{}{42, "hi"})
	require.NoError(t, err)
	out, err = runApp(t, "decode", "--types", "uint256 amount, string note", data)
	require.NoError(t, err)
	assert.JSONEq(t, `[42, "hi"]`, out)

	out, err = runApp(t, "decode", "--dump", "--types", "uint256,string", data)
	require.NoError(t, err)
	assert.Contains(t, out, "big.Int")
	assert.Contains(t, out, `"hi"`)

	_, err = runApp(t, "decode", "--types", "uint256,string", data[:len(data)-64])
	assert.True(t, errors.Is(err, abi.ErrBufferOverrun), "got %v", err)
}

func TestEncodeInvalidValues(t *testing.T) {
	_, err := runApp(t, "encode", "--types", "uint8", "--values", "[256]")
	assert.True(t, errors.Is(err, abi.ErrOutOfBounds), "got %v", err)

	_, err = runApp(t, "encode", "--types", "uint8", "--values", "{")
	assert.ErrorContains(t, err, "invalid values")
}

func TestSelectorAndTopic(t *testing.T) {
	out, err := runApp(t, "selector", "transfer(address to, uint256 amount)")
	require.NoError(t, err)
	assert.Equal(t, "0x4b40e901\n", out)

	out, err = runApp(t, "topic", "event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	assert.Equal(t, "0xc17a9d92b89f27cb79cc390f23a1a5d302fefab8c7911075ede952ac2b5607a1\n", out)

	_, err = runApp(t, "selector", "event Transfer(address)")
	assert.ErrorContains(t, err, "no selector")
}

func TestCallAndParseEmbedded(t *testing.T) {
	out, err := runApp(t, "call", "--contract", embedded.Plasma, "--values", `["`+alice.String()+`"]`, "Fuse")
	require.NoError(t, err)
	assert.Contains(t, out, embedded.PlasmaAddress.String())

	var data string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if rest, ok := strings.CutPrefix(line, "data:"); ok {
			data = strings.TrimSpace(rest)
		}
	}
	require.True(t, strings.HasPrefix(data, "0x5ac942e8"), "data %q", data)

	out, err = runApp(t, "parse", "--contract", embedded.Plasma, data)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Fuse",
		"signature": "Fuse(address)",
		"id": "0x5ac942e8",
		"args": ["`+alice.String()+`"],
		"named": {"address": "`+alice.String()+`"}
	}`, out)
}

func TestParseLogAndRevert(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "token.json", tokenABI)
	iface, err := abi.NewInterface(tokenABI)
	require.NoError(t, err)

	log, err := iface.EncodeEventLog("Transfer", alice, alice, 7)
	require.NoError(t, err)
	args := []string{"parse", "--abi", path}
	for _, topic := range log.Topics {
		args = append(args, "--topics", topic.Hex())
	}
	out, err := runApp(t, append(args, hexutil.Encode(log.Data))...)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Transfer"`)
	assert.Contains(t, out, `"value": 7`)

	revert, err := iface.EncodeErrorResult("Error(string)", "not enough funds")
	require.NoError(t, err)
	out, err = runApp(t, "parse", "--abi", path, "--revert", hexutil.Encode(revert))
	require.NoError(t, err)
	assert.Contains(t, out, `"not enough funds"`)

	out, err = runApp(t, "parse", "--revert", hexutil.Encode(revert))
	require.NoError(t, err)
	assert.Equal(t, "not enough funds\n", out)
}

func TestFormat(t *testing.T) {
	out, err := runApp(t, "format", "--contract", embedded.Plasma, "--style", "sighash")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "Fuse(address)")

	out, err = runApp(t, "format", "--contract", embedded.Plasma)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Fuse"`)

	_, err = runApp(t, "format", "--contract", embedded.Plasma, "--style", "yaml")
	assert.True(t, errors.Is(err, abi.ErrUnsupportedFormat), "got %v", err)
}

func TestContractResolution(t *testing.T) {
	_, err := runApp(t, "call", "--contract", "nope", "Fuse")
	assert.True(t, errors.Is(err, embedded.ErrUnknownContract), "got %v", err)

	_, err = runApp(t, "call", "Fuse")
	assert.ErrorContains(t, err, "missing --contract")

	out, err := runApp(t, "contracts")
	require.NoError(t, err)
	assert.Contains(t, out, embedded.PlasmaAddress.String())
	assert.Contains(t, out, embedded.Common)
}

func TestConfigContracts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "token.json", tokenABI)
	config := writeFile(t, dir, "znnabi.toml", `
[Log]
Format = "json"
Verbosity = 2

[Contracts]
mytoken = "token.json"
`)
	out, err := runApp(t, "--config", config, "call", "--contract", "mytoken", "--values", `["`+alice.String()+`", "5"]`, "transfer")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0x4b40e901"), "got %q", out)

	out, err = runApp(t, "--config", config, "contracts")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "token.json"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	var cfg abiConfig
	good := writeFile(t, dir, "good.toml", "[Log]\nVerbosity = 4\n[Contracts]\na = \"/tmp/a.json\"\n")
	require.NoError(t, loadConfig(good, &cfg))
	assert.Equal(t, 4, cfg.Log.Verbosity)
	assert.Equal(t, map[string]string{"a": "/tmp/a.json"}, cfg.Contracts)

	bad := writeFile(t, dir, "bad.toml", "[Log]\nColour = true\n")
	err := loadConfig(bad, &abiConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Contains(t, err.Error(), "field 'Colour' is not defined")
}

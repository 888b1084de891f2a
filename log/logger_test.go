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

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false))

	l.Debug("hidden")
	l.Info("decoded payload", "types", 2, "value", big.NewInt(42), "raw", []byte{0xca, 0xfe})

	line := out.String()
	assert.True(t, strings.HasPrefix(line, "INFO ["), line)
	assert.Contains(t, line, "decoded payload")
	assert.Contains(t, line, "types=2")
	assert.Contains(t, line, "value=42")
	assert.Contains(t, line, "raw=0xcafe")
	assert.NotContains(t, line, "hidden")
}

func TestTerminalHandlerWith(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).With("contract", "token")
	l.Warn("duplicate definition", "signature", "Mint(tokenStandard,uint256,address)")

	assert.Contains(t, out.String(), "contract=token")
	assert.Contains(t, out.String(), "signature=Mint(tokenStandard,uint256,address)")
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandlerWithLevel(out, LevelDebug))
	l.Debug("word", "value", uint256.NewInt(7))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "debug", record["lvl"])
	assert.Equal(t, "word", record["msg"])
	assert.Equal(t, "7", record["value"])
}

func TestLogfmtHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandlerWithLevel(out, LevelWarn))
	l.Info("skipped")
	l.Error("failed", "err", "boom")

	assert.NotContains(t, out.String(), "skipped")
	assert.Contains(t, out.String(), "lvl=error")
	assert.Contains(t, out.String(), "err=boom")
}

func TestLevels(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))

	lvl, err := LevelFromString("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)
	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestRootDiscardsByDefault(t *testing.T) {
	assert.False(t, Root().Enabled(context.Background(), LevelCrit))
}

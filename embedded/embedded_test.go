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

package embedded

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/znn-sdk/go-znn/common"
	"github.com/znn-sdk/go-znn/common/hexutil"
)

func TestContractsParse(t *testing.T) {
	ids := Contracts()
	require.Len(t, ids, len(definitions))
	assert.Equal(t, "accelerator", ids[0])

	for _, id := range ids {
		iface, err := ABI(id)
		require.NoError(t, err, id)
		assert.NotEmpty(t, iface.Functions, id)
		// storage layout entries are not part of the interface
		assert.Len(t, iface.Fragments, len(iface.Functions), id)
	}
}

func TestABIIsShared(t *testing.T) {
	first := MustABI(Plasma)
	assert.Same(t, first, MustABI(Plasma))

	_, err := ABI("bank")
	assert.True(t, errors.Is(err, ErrUnknownContract), err)
	assert.Panics(t, func() { MustABI("bank") })
}

func TestPlasmaCalls(t *testing.T) {
	plasma := MustABI(Plasma)

	data, err := plasma.EncodeFunctionData("Fuse", PlasmaAddress)
	require.NoError(t, err)
	assert.Equal(t, "0x5ac942e8"+"000000000000000000000000"+"01b3b6e5adcb4c1ff61be98c6318c6318c6318c6", hexutil.Encode(data))

	id := common.BytesToHash(append([]byte{0x11}, make([]byte, 31)...))
	data, err = plasma.EncodeFunctionData("CancelFuse", id)
	require.NoError(t, err)
	assert.Equal(t, "0xf9ca9dc3"+id.String(), hexutil.Encode(data))

	tx, err := plasma.ParseTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, "CancelFuse", tx.Name)
	assert.Equal(t, id, tx.Args.Values[0])
}

func TestTokenCalls(t *testing.T) {
	token := MustABI(Token)

	data, err := token.EncodeFunctionData("Mint", ZnnTokenStandard, big.NewInt(100000000), TokenAddress)
	require.NoError(t, err)
	require.Len(t, data, 4+3*32)
	assert.Equal(t, "cd70f9bc", hex.EncodeToString(data[:4]))
	assert.Equal(t, "14e66318c6318c6318c6", hex.EncodeToString(data[4+22:4+32]))

	args, err := token.DecodeFunctionDataNamed("Mint", data)
	require.NoError(t, err)
	assert.Equal(t, ZnnTokenStandard, args["tokenStandard"])
	assert.Equal(t, TokenAddress, args["receiveAddress"])
	assert.Equal(t, "100000000", args["amount"].(*big.Int).String())

	data, err = token.EncodeFunctionData("IssueToken", "Test", "TST", "zenon.network", 1000, 10000, 8, true, true, false)
	require.NoError(t, err)
	res, err := token.DecodeFunctionData("IssueToken", data)
	require.NoError(t, err)
	symbol, _ := res.Get("tokenSymbol")
	assert.Equal(t, "TST", symbol)
	decimals, _ := res.Get("decimals")
	assert.Equal(t, "8", decimals.(*big.Int).String())
}

func TestCommonVotes(t *testing.T) {
	accelerator := MustABI(Accelerator)
	shared := MustABI(Common)

	// accelerator exposes the common voting methods with identical selectors
	a, err := accelerator.GetSighash("VoteByName")
	require.NoError(t, err)
	c, err := shared.GetSighash("VoteByName")
	require.NoError(t, err)
	assert.Equal(t, a, c)
	assert.Equal(t, "5c6c1064", hex.EncodeToString(a))
}

func TestStakeDuration(t *testing.T) {
	stake := MustABI(Stake)
	data, err := stake.EncodeFunctionData("Stake", int64(30*24*3600))
	require.NoError(t, err)
	assert.Equal(t, "d802845a", hex.EncodeToString(data[:4]))

	res, err := stake.DecodeFunctionData("Stake(int64)", data)
	require.NoError(t, err)
	assert.Equal(t, "2592000", res.Values[0].(*big.Int).String())
}

func TestAddresses(t *testing.T) {
	addr, ok := Address(Htlc)
	require.True(t, ok)
	assert.Equal(t, "z1qxemdeddedxhtlcxxxxxxxxxxxxxxxxxygecvw", addr.String())

	_, ok = Address(Common)
	assert.False(t, ok)

	assert.Equal(t, "04066318c6318c6318c6", hex.EncodeToString(QsrTokenStandard.Bytes()))
	assert.Equal(t, make([]byte, common.TokenStandardLength), EmptyTokenStandard.Bytes())

	def, ok := Definition(Swap)
	require.True(t, ok)
	assert.Contains(t, def, "RetrieveAssets")
}

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

// Package embedded holds the ABI definitions of the Zenon embedded contracts
// and their well-known addresses.
package embedded

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/znn-sdk/go-znn/accounts/abi"
	"github.com/znn-sdk/go-znn/common"
)

// Contract identifiers.
const (
	Common      = "common"
	Token       = "token"
	Plasma      = "plasma"
	Pillar      = "pillar"
	Sentinel    = "sentinel"
	Stake       = "stake"
	Swap        = "swap"
	Spork       = "spork"
	Htlc        = "htlc"
	Accelerator = "accelerator"
	Liquidity   = "liquidity"
)

// ErrUnknownContract is returned for identifiers without a definition.
var ErrUnknownContract = errors.New("embedded: unknown contract")

var definitions = map[string]string{
	Common:      commonDefinition,
	Token:       tokenDefinition,
	Plasma:      plasmaDefinition,
	Pillar:      pillarDefinition,
	Sentinel:    sentinelDefinition,
	Stake:       stakeDefinition,
	Swap:        swapDefinition,
	Spork:       sporkDefinition,
	Htlc:        htlcDefinition,
	Accelerator: acceleratorDefinition,
	Liquidity:   liquidityDefinition,
}

// Embedded contract addresses.
var (
	PlasmaAddress      = common.MustParseAddress("z1qxemdeddedxplasmaxxxxxxxxxxxxxxxxsctrp")
	PillarAddress      = common.MustParseAddress("z1qxemdeddedxpyllarxxxxxxxxxxxxxxxsy3fmg")
	TokenAddress       = common.MustParseAddress("z1qxemdeddedxt0kenxxxxxxxxxxxxxxxxh9amk0")
	SentinelAddress    = common.MustParseAddress("z1qxemdeddedxsentynelxxxxxxxxxxxxxwy0r2r")
	SwapAddress        = common.MustParseAddress("z1qxemdeddedxswapxxxxxxxxxxxxxxxxxxl4yww")
	StakeAddress       = common.MustParseAddress("z1qxemdeddedxstakexxxxxxxxxxxxxxxxjv8v62")
	LiquidityAddress   = common.MustParseAddress("z1qxemdeddedxlyquydytyxxxxxxxxxxxxflaaae")
	SporkAddress       = common.MustParseAddress("z1qxemdeddedxsp0rkxxxxxxxxxxxxxxxx956u48")
	AcceleratorAddress = common.MustParseAddress("z1qxemdeddedxaccelerat0rxxxxxxxxxxp4tk22")
	BridgeAddress      = common.MustParseAddress("z1qxemdeddedxdrydgexxxxxxxxxxxxxxxmqgr0d")
	HtlcAddress        = common.MustParseAddress("z1qxemdeddedxhtlcxxxxxxxxxxxxxxxxxygecvw")
)

// Token standards of the native coins.
var (
	ZnnTokenStandard   = common.MustParseTokenStandard("zts1znnxxxxxxxxxxxxx9z4ulx")
	QsrTokenStandard   = common.MustParseTokenStandard("zts1qsrxxxxxxxxxxxxxmrhjll")
	EmptyTokenStandard = common.MustParseTokenStandard("zts1qqqqqqqqqqqqqqqqtq587y")
)

// addresses maps the contracts callable at their own address.
var addresses = map[string]common.Address{
	Token:       TokenAddress,
	Plasma:      PlasmaAddress,
	Pillar:      PillarAddress,
	Sentinel:    SentinelAddress,
	Stake:       StakeAddress,
	Swap:        SwapAddress,
	Spork:       SporkAddress,
	Htlc:        HtlcAddress,
	Accelerator: AcceleratorAddress,
	Liquidity:   LiquidityAddress,
}

// abis is the process wide cache of parsed definitions.
var abis = abi.NewCache()

// Definition returns the JSON ABI of the contract.
func Definition(id string) (string, bool) {
	def, ok := definitions[id]
	return def, ok
}

// ABI returns the parsed interface of the contract. Definitions are parsed on
// first use and shared afterwards.
func ABI(id string) (*abi.Interface, error) {
	def, ok := definitions[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownContract, "%q", id)
	}
	return abis.Get(id, func() (*abi.Interface, error) {
		return abi.NewInterface(def)
	})
}

// MustABI is like ABI but panics on unknown identifiers.
func MustABI(id string) *abi.Interface {
	iface, err := ABI(id)
	if err != nil {
		panic(err)
	}
	return iface
}

// Address returns the address the contract is deployed at. The common
// contract has none, its methods are served by several contracts.
func Address(id string) (common.Address, bool) {
	addr, ok := addresses[id]
	return addr, ok
}

// Contracts lists the known contract identifiers in sorted order.
func Contracts() []string {
	ids := make([]string, 0, len(definitions))
	for id := range definitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

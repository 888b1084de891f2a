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

// znnabi is a command-line utility for the Zenon contract ABI codec.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/znn-sdk/go-znn/internal/debug"
	"github.com/znn-sdk/go-znn/internal/flags"
	"github.com/znn-sdk/go-znn/log"
)

const registryKey = "contracts"

var app = newApp()

func newApp() *cli.App {
	app := flags.NewApp("the Zenon contract ABI codec command line interface")
	app.Flags = append([]cli.Flag{configFileFlag}, debug.Flags...)
	app.Commands = []*cli.Command{
		encodeCommand,
		decodeCommand,
		selectorCommand,
		topicCommand,
		callCommand,
		parseCommand,
		formatCommand,
		contractsCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, dir, err := loadBaseConfig(ctx)
		if err != nil {
			return err
		}
		if err := debug.SetupWith(ctx, cfg.Log); err != nil {
			return err
		}
		reg := newRegistry(dir, cfg.Contracts)
		if ctx.App.Metadata == nil {
			ctx.App.Metadata = make(map[string]interface{})
		}
		ctx.App.Metadata[registryKey] = reg
		log.Debug("Contract registry ready", "configured", len(cfg.Contracts))
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// registryFrom returns the registry installed by the app's Before hook.
func registryFrom(ctx *cli.Context) *registry {
	if reg, ok := ctx.App.Metadata[registryKey].(*registry); ok {
		return reg
	}
	return newRegistry("", nil)
}

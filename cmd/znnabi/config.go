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
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
	"github.com/znn-sdk/go-znn/internal/debug"
	"github.com/znn-sdk/go-znn/internal/flags"
)

var configFileFlag = &cli.StringFlag{
	Name:     "config",
	Usage:    "TOML configuration file",
	Category: flags.MiscCategory,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// abiConfig is the layout of the --config file.
//
//	[Log]
//	Format = "json"
//	Verbosity = 4
//
//	[Contracts]
//	mytoken = "abis/mytoken.json"
type abiConfig struct {
	Log       debug.Settings
	Contracts map[string]string
}

func loadConfig(file string, cfg *abiConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig reads the config file named on the command line, if any.
// It also returns the directory relative contract paths are resolved against.
func loadBaseConfig(ctx *cli.Context) (abiConfig, string, error) {
	var cfg abiConfig
	file := ctx.String(configFileFlag.Name)
	if file == "" {
		return cfg, "", nil
	}
	file = flags.ExpandPath(file)
	if err := loadConfig(file, &cfg); err != nil {
		return cfg, "", err
	}
	return cfg, filepath.Dir(file), nil
}

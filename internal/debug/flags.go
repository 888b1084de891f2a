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

// Package debug wires the logging flags of the command line tools.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"github.com/znn-sdk/go-znn/internal/flags"
	"github.com/znn-sdk/go-znn/log"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    3,
		Category: flags.LoggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	logFileFlag = &flags.PathFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file instead of stderr",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for logging.
// Flags 包含所有用于日志记录的命令行标志。
var Flags = []cli.Flag{
	verbosityFlag,
	logFormatFlag,
	logFileFlag,
}

// Settings are the logging options that may also come from a config file.
// Command line flags take precedence over them.
type Settings struct {
	Format    string `toml:",omitempty"`
	Verbosity int    `toml:",omitempty"`
	File      string `toml:",omitempty"`
}

var logOutputFile io.WriteCloser

// SetupWith installs the default logger according to the CLI flags, falling
// back to defaults for the flags the user did not pass.
// SetupWith 根据命令行标志安装默认日志记录器，未显式设置的标志使用给定的默认值。
func SetupWith(ctx *cli.Context, defaults Settings) error {
	var (
		format    = defaults.Format
		verbosity = verbosityFlag.Value
		file      = defaults.File
	)
	if ctx.IsSet(logFormatFlag.Name) || format == "" {
		format = ctx.String(logFormatFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		verbosity = ctx.Int(verbosityFlag.Name)
	} else if defaults.Verbosity != 0 {
		verbosity = defaults.Verbosity
	}
	if ctx.IsSet(logFileFlag.Name) {
		file = flags.Path(ctx, logFileFlag.Name)
	}

	output := io.Writer(ctx.App.ErrWriter)
	if output == nil {
		output = os.Stderr
	}
	if file != "" {
		f, err := os.OpenFile(flags.ExpandPath(file), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logOutputFile = f
		output = f
	}
	handler, err := newHandler(format, output, log.FromLegacyLevel(verbosity), file == "" && output == io.Writer(os.Stderr))
	if err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(handler))
	if file != "" {
		log.Debug("Logging configured", "format", format, "location", file)
	}
	return nil
}

func newHandler(format string, output io.Writer, level slog.Level, stderr bool) (slog.Handler, error) {
	switch format {
	case "json":
		return log.JSONHandlerWithLevel(output, level), nil
	case "logfmt":
		return log.LogfmtHandlerWithLevel(output, level), nil
	case "", "terminal":
		useColor := stderr && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor {
			output = colorable.NewColorableStderr()
		}
		return log.NewTerminalHandlerWithLevel(output, level, useColor), nil
	default:
		return nil, fmt.Errorf("unknown log format: %v", format)
	}
}

// Exit closes the log file, if any.
func Exit() {
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
}

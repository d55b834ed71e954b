// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-scel"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeMalformedInput is the exit code for an undecodable input file.
	ExitCodeMalformedInput
)

// ErrScelutil is a parent error for all command errors.
var ErrScelutil = errors.New("scelutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrScelutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

const loggerKey = "logger"

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, scel.ErrMalformed):
		return ExitCodeMalformedInput
	default:
		return ExitCodeUnknownError
	}
}

// logger returns the app's diagnostic logger.
func logger(c *cli.Context) *zerolog.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n%s\n",
		c.App.Name, versionInfo.GitVersion, "Copyright "+strings.Join(copyrightNames, "\nCopyright "))
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrScelutil, err)
	}
	return nil
}

func newScelutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert Sogou SCEL dictionaries.",
		Description: strings.Join([]string{
			"SCEL dictionary utility written in Go.",
			"http://github.com/ianlewis/go-scel",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log `LEVEL` (debug, info, warn, error)",
				EnvVars: []string{"SCEL_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		// Errors are handled by main so that exit codes are consistent.
		ExitErrHandler: func(*cli.Context, error) {},
		Metadata:       map[string]interface{}{},
		Before: func(c *cli.Context) error {
			l, err := newLogger(c.App.ErrWriter, c.String("log-level"))
			if err != nil {
				return err
			}
			c.App.Metadata[loggerKey] = l
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			convertCommand(),
			infoCommand(),
			queryCommand(),
		},
	}
}

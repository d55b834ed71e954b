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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert all dictionaries in a directory to a word list",
		ArgsUsage: " ",
		Description: strings.Join([]string{
			"Decodes every .scel file directly under the input directory and",
			"writes one word per line to the output file. Output files ending in",
			".dz are compressed with dictzip.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "read dictionaries from `DIR`",
				Aliases: []string{"i"},
				EnvVars: []string{"SCEL_DATA_DIR"},
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write the word list to `FILE`",
				Aliases: []string{"o"},
				Value:   "result.txt",
			},
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "skip dictionaries that cannot be decoded instead of failing",
			},
			&cli.BoolFlag{
				Name:  "with-pinyin",
				Usage: "write the pinyin after each word separated by a tab",
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			l := logger(c)

			dicts, err := openDicts(c, c.String("input"), c.Bool("skip-invalid"))
			if err != nil {
				return err
			}

			output := c.String("output")
			n, err := writeWords(output, dicts, c.Bool("with-pinyin"))
			if err != nil {
				return fmt.Errorf("%w: writing %q: %w", ErrScelutil, output, err)
			}

			l.Info().
				Str("output", output).
				Int("dictionaries", len(dicts)).
				Int("words", n).
				Msg("wrote word list")
			return nil
		},
	}
}

// openDicts decodes the dictionaries under dir. The first I/O error is
// always fatal. Malformed dictionaries are fatal unless skipInvalid is set in
// which case they are logged and skipped.
func openDicts(c *cli.Context, dir string, skipInvalid bool) ([]*scel.Scel, error) {
	l := logger(c)

	dicts, errs := scel.OpenAll(dir)
	for _, err := range errs {
		if !skipInvalid || !errors.Is(err, scel.ErrMalformed) {
			return nil, fmt.Errorf("%w: %w", ErrScelutil, err)
		}
		l.Warn().Err(err).Msg("skipping dictionary")
	}

	for _, d := range dicts {
		logDict(l, d)
	}
	return dicts, nil
}

// writeWords writes the words of dicts to path and returns the number of words
// written.
func writeWords(path string, dicts []*scel.Scel, withPinyin bool) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(strings.ToLower(path), ".dz") {
		z, zerr := dictzip.NewWriter(f)
		if zerr != nil {
			return 0, fmt.Errorf("creating dictzip writer: %w", zerr)
		}
		defer func() {
			if cerr := z.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing dictzip writer: %w", cerr)
			}
		}()
		w = z
	}

	return writeWordList(w, dicts, withPinyin)
}

// writeWordList writes one newline terminated word per line.
func writeWordList(w io.Writer, dicts []*scel.Scel, withPinyin bool) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, d := range dicts {
		for _, e := range d.Entries() {
			var err error
			if withPinyin {
				_, err = fmt.Fprintf(bw, "%s\t%s\n", e.Word, e.DisplayPinyin())
			} else {
				_, err = fmt.Fprintln(bw, e.Word)
			}
			if err != nil {
				return n, fmt.Errorf("writing word: %w", err)
			}
			n++
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("writing words: %w", err)
	}
	return n, nil
}

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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up words by pinyin",
		ArgsUsage: "DIR PINYIN",
		Description: "Query all dictionaries in a directory for words with the given pinyin.\n" +
			"Syllables may be separated by apostrophes or spaces.",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: expected DIR and PINYIN arguments", ErrFlagParse)
			}
			dir := c.Args().Get(0)
			query := c.Args().Get(1)

			l := logger(c)
			dicts, errs := scel.OpenAll(dir)
			for _, err := range errs {
				l.Error().Err(err).Msg("opening dictionary")
			}

			tbl := table.New("Word", "Pinyin", "Count", "Dictionary").WithWriter(c.App.Writer)
			found := 0
			for _, d := range dicts {
				for _, e := range d.Search(query) {
					tbl.AddRow(e.Word, e.DisplayPinyin(), e.Count, d.Name())
					found++
				}
			}
			if found > 0 {
				tbl.Print()
			}
			l.Debug().Str("query", query).Int("results", found).Msg("query finished")

			if len(errs) > 0 {
				return fmt.Errorf("%w: %w", ErrScelutil, errs[0])
			}
			return nil
		},
	}
}

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
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/internal/folding"
)

// dictInfo is the metadata printed by the info command.
type dictInfo struct {
	Path        string    `yaml:"path"`
	ID          string    `yaml:"id,omitempty"`
	Name        string    `yaml:"name"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Sample      string    `yaml:"sample"`
	Kind        string    `yaml:"kind"`
	Built       time.Time `yaml:"built"`
	Words       int       `yaml:"words"`
	HeaderWords uint32    `yaml:"header_words"`
}

func newDictInfo(s *scel.Scel) *dictInfo {
	h := s.Header()
	return &dictInfo{
		Path:        s.Path(),
		ID:          h.ID,
		Name:        folding.Display(h.Name),
		Category:    folding.Display(h.Category),
		Description: folding.Display(h.Description),
		Sample:      folding.Display(h.Sample),
		Kind:        string(h.Kind()),
		Built:       h.Timestamp,
		Words:       len(s.Entries()),
		HeaderWords: h.WordCount,
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print dictionary metadata",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output `FORMAT` (table, yaml)",
				Aliases: []string{"f"},
				Value:   "table",
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no dictionary files given", ErrFlagParse)
			}

			format := c.String("format")
			switch format {
			case "table", "yaml":
			default:
				return fmt.Errorf("%w: unsupported format %q", ErrFlagParse, format)
			}

			var infos []*dictInfo
			for _, path := range c.Args().Slice() {
				s, err := scel.Open(path)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrScelutil, err)
				}
				logger(c).Debug().Str("path", path).Msg("opened dictionary")
				infos = append(infos, newDictInfo(s))
			}

			if format == "yaml" {
				enc := yaml.NewEncoder(c.App.Writer)
				enc.SetIndent(2)
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("%w: encoding yaml: %w", ErrScelutil, err)
				}
				if err := enc.Close(); err != nil {
					return fmt.Errorf("%w: encoding yaml: %w", ErrScelutil, err)
				}
				return nil
			}

			tbl := table.New("Name", "Category", "Kind", "Words", "Built", "Path").WithWriter(c.App.Writer)
			for _, i := range infos {
				tbl.AddRow(i.Name, i.Category, i.Kind, i.Words, i.Built.Format(time.DateOnly), i.Path)
			}
			tbl.Print()
			return nil
		},
	}
}

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
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/internal/folding"
)

// newLogger returns a console logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return nil, fmt.Errorf("%w: invalid log level %q", ErrFlagParse, level)
	}

	l := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(lvl).With().Timestamp().Logger()
	return &l, nil
}

// logDict reports a decoded dictionary's path and header.
func logDict(l *zerolog.Logger, s *scel.Scel) {
	l.Info().
		Str("path", s.Path()).
		Str("name", folding.Display(s.Name())).
		Str("category", folding.Display(s.Category())).
		Str("description", folding.Display(s.Description())).
		Str("sample", folding.Display(s.Sample())).
		Int("words", len(s.Entries())).
		Msg("decoded dictionary")
}

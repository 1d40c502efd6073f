// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer decides whether output is colored and applies the colors.
// The zero value never colors.
type Colorizer struct {
	Enabled bool
}

// isTerminalFn is swapped out in tests.
var isTerminalFn = term.IsTerminal

// NewColorizer returns a Colorizer that is enabled only if enabled is true,
// NO_COLOR is unset and TERM names a capable terminal.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter is NewColorizer with the additional requirement that w is a
// terminal.
func ForWriter(w io.Writer, enabled bool) Colorizer {
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return NewColorizer(enabled)
}

// Wrap renders text with the given attributes.
func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(text)
}

func (c Colorizer) Red(text string) string    { return c.Wrap(text, color.FgRed) }
func (c Colorizer) Green(text string) string  { return c.Wrap(text, color.FgGreen) }
func (c Colorizer) Yellow(text string) string { return c.Wrap(text, color.FgYellow) }
func (c Colorizer) Cyan(text string) string   { return c.Wrap(text, color.FgCyan) }
func (c Colorizer) Dim(text string) string    { return c.Wrap(text, color.FgHiBlack) }
func (c Colorizer) Bold(text string) string   { return c.Wrap(text, color.Bold) }

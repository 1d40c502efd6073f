// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestNewColorizerEnv(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{name: "enabled", enabled: true, term: "xterm-256color", want: true},
		{name: "disabled by caller", enabled: false, term: "xterm", want: false},
		{name: "no color", enabled: true, noColor: "1", term: "xterm", want: false},
		{name: "dumb term", enabled: true, term: "dumb", want: false},
		{name: "no term", enabled: true, term: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Fatalf("NewColorizer(%v).Enabled = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}

func TestForWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")

	if ForWriter(&bytes.Buffer{}, true).Enabled {
		t.Fatalf("buffer treated as terminal")
	}

	old := isTerminalFn
	t.Cleanup(func() { isTerminalFn = old })

	isTerminalFn = func(int) bool { return true }
	if !ForWriter(os.Stdout, true).Enabled {
		t.Fatalf("terminal stdout not colored")
	}
	isTerminalFn = func(int) bool { return false }
	if ForWriter(os.Stdout, true).Enabled {
		t.Fatalf("non-terminal stdout colored")
	}
}

func TestWrap(t *testing.T) {
	if got := (Colorizer{}).Red("x"); got != "x" {
		t.Fatalf("disabled Red = %q", got)
	}
	c := Colorizer{Enabled: true}
	if got := c.Red("x"); !strings.HasPrefix(got, "\x1b[31mx\x1b[") {
		t.Fatalf("Red = %q", got)
	}
	if got := c.Wrap("x"); got != "x" {
		t.Fatalf("Wrap without attributes = %q", got)
	}
}

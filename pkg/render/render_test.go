// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argz/pkg/argz"
	"github.com/yeetrun/argz/pkg/tui"
)

func sampleResult() *argz.Result {
	return &argz.Result{
		Command:     "sum.mult",
		CommandPath: []string{"sum", "mult"},
		Args:        []string{"1", "2"},
		Options:     map[string]string{"precision": "Float64", "base": "10"},
		Flags:       []string{"fastmath"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: Text},
		{in: "table", want: Text},
		{in: "JSON", want: JSON},
		{in: "yml", want: YAML},
		{in: "sh", want: Env},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), JSON, tui.Colorizer{}); err != nil {
		t.Fatal(err)
	}
	want := heredoc.Doc(`
		{
		  "command": "sum.mult",
		  "command_path": [
		    "sum",
		    "mult"
		  ],
		  "args": [
		    "1",
		    "2"
		  ],
		  "options": {
		    "base": "10",
		    "precision": "Float64"
		  },
		  "flags": [
		    "fastmath"
		  ]
		}
	`)
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &argz.Result{Command: "", Args: []string{"-"}}, YAML, tui.Colorizer{}); err != nil {
		t.Fatal(err)
	}
	want := heredoc.Doc(`
		command: ""
		command_path: []
		args:
		  - '-'
		options: {}
		flags: []
	`)
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), Text, tui.Colorizer{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "command: sum.mult\n") {
		t.Fatalf("text output starts with %q", out)
	}
	for _, want := range []string{"Kind", "arg", "Float64", "fastmath"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "base") > strings.Index(out, "precision") {
		t.Errorf("options not sorted:\n%s", out)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, Text, tui.Colorizer{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "command: (none)\n"; got != want {
		t.Fatalf("Write = %q, want %q", got, want)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleResult(), Format("xml"), tui.Colorizer{}); err == nil {
		t.Fatal("Write with unknown format succeeded")
	}
}

func TestWriteEnv(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	res.Args = append(res.Args, "it's")
	if err := Write(&buf, res, Env, tui.Colorizer{}); err != nil {
		t.Fatal(err)
	}
	want := heredoc.Doc(`
		ARGZ_COMMAND='sum.mult'
		ARGZ_COMMAND_PATH='sum mult'
		ARGZ_NARGS='3'
		ARGZ_ARG_0='1'
		ARGZ_ARG_1='2'
		ARGZ_ARG_2='it'\''s'
		ARGZ_OPT_BASE='10'
		ARGZ_OPT_PRECISION='Float64'
		ARGZ_FLAG_FASTMATH='1'
	`)
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}

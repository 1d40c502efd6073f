// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render prints parse results.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"github.com/yeetrun/argz/pkg/argz"
	"github.com/yeetrun/argz/pkg/env"
	"github.com/yeetrun/argz/pkg/tui"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	Env  Format = "env"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "table":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "env", "sh":
		return Env, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, yaml or env)", s)
}

// document is the serialized form of a Result.
type document struct {
	Command     string            `json:"command" yaml:"command"`
	CommandPath []string          `json:"command_path" yaml:"command_path"`
	Args        []string          `json:"args" yaml:"args"`
	Options     map[string]string `json:"options" yaml:"options"`
	Flags       []string          `json:"flags" yaml:"flags"`
}

func newDocument(res *argz.Result) document {
	return document{
		Command:     res.Command,
		CommandPath: lo.Ternary(res.CommandPath == nil, []string{}, res.CommandPath),
		Args:        lo.Ternary(res.Args == nil, []string{}, res.Args),
		Options:     lo.Ternary(res.Options == nil, map[string]string{}, res.Options),
		Flags:       lo.Ternary(res.Flags == nil, []string{}, res.Flags),
	}
}

// envDocument holds the fixed shell variables of the Env format.
type envDocument struct {
	Command     string   `env:"ARGZ_COMMAND"`
	CommandPath []string `env:"ARGZ_COMMAND_PATH"`
	NArgs       int      `env:"ARGZ_NARGS"`
}

// envVars flattens res into shell variables. Positional arguments become
// ARGZ_ARG_<i>, options ARGZ_OPT_<NAME> and flags ARGZ_FLAG_<NAME>=1.
func envVars(res *argz.Result) []env.Var {
	vars := env.Struct(envDocument{
		Command:     res.Command,
		CommandPath: res.CommandPath,
		NArgs:       len(res.Args),
	})
	for i, a := range res.Args {
		vars = append(vars, env.Var{Name: env.Name("ARGZ", "ARG", strconv.Itoa(i)), Value: a})
	}
	names := lo.Keys(res.Options)
	slices.Sort(names)
	for _, name := range names {
		vars = append(vars, env.Var{Name: env.Name("ARGZ", "OPT", name), Value: res.Options[name]})
	}
	for _, name := range res.Flags {
		vars = append(vars, env.Var{Name: env.Name("ARGZ", "FLAG", name), Value: "1"})
	}
	return vars
}

// Write renders res to w. c only affects the Text format.
func Write(w io.Writer, res *argz.Result, format Format, c tui.Colorizer) error {
	if res == nil {
		res = &argz.Result{}
	}
	switch format {
	case Text:
		return writeText(w, res, c)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(res))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	case Env:
		return env.Write(w, envVars(res))
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeText(w io.Writer, res *argz.Result, c tui.Colorizer) error {
	cmd := lo.Ternary(res.Command == "", c.Dim("(none)"), c.Cyan(res.Command))
	if _, err := fmt.Fprintf(w, "%s %s\n", c.Bold("command:"), cmd); err != nil {
		return err
	}

	var rows [][]string
	for i, a := range res.Args {
		rows = append(rows, []string{"arg", strconv.Itoa(i), a})
	}
	names := lo.Keys(res.Options)
	slices.Sort(names)
	for _, name := range names {
		rows = append(rows, []string{"option", name, res.Options[name]})
	}
	for _, name := range res.Flags {
		rows = append(rows, []string{"flag", name, "true"})
	}
	if len(rows) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})
	table.Header([]string{"Kind", "Name", "Value"})
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argz/pkg/argz"
	"gopkg.in/yaml.v3"
)

// File is a decoded program definition. Boolean settings are pointers so
// that a missing key keeps the default from argz.DefaultConfig.
type File struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Desc    string `toml:"desc,omitempty" yaml:"desc,omitempty" json:"desc,omitempty"`
	Usage   string `toml:"usage,omitempty" yaml:"usage,omitempty" json:"usage,omitempty"`
	Version string `toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`

	ShowHelp      *bool `toml:"show_help,omitempty" yaml:"show_help,omitempty" json:"show_help,omitempty"`
	ShowVersion   *bool `toml:"show_version,omitempty" yaml:"show_version,omitempty" json:"show_version,omitempty"`
	ThrowError    *bool `toml:"throw_error,omitempty" yaml:"throw_error,omitempty" json:"throw_error,omitempty"`
	ExitOnHelp    *bool `toml:"exit_onhelp,omitempty" yaml:"exit_onhelp,omitempty" json:"exit_onhelp,omitempty"`
	ExitOnVersion *bool `toml:"exit_onversion,omitempty" yaml:"exit_onversion,omitempty" json:"exit_onversion,omitempty"`

	Commands []Entry `toml:"commands,omitempty" yaml:"commands,omitempty" json:"commands,omitempty"`
	Options  []Entry `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
}

// Entry is one row of the command or option table, e.g.
// {Spec: "--precision|-p <p>", Desc: "Choose float point precision."}.
type Entry struct {
	Spec string `toml:"spec" yaml:"spec" json:"spec"`
	Desc string `toml:"desc,omitempty" yaml:"desc,omitempty" json:"desc,omitempty"`
}

// Decode parses data in the given format. Unknown keys are rejected.
// filename is only used in diagnostics.
func Decode(data []byte, format Format, filename string) (*File, error) {
	var (
		f   File
		err error
	)
	switch format {
	case TOML:
		err = decodeTOML(data, &f)
	case YAML:
		err = decodeYAML(data, &f)
	case JSON:
		err = decodeJSON(data, &f)
	case HCL:
		err = decodeHCL(data, filename, &f)
	default:
		return nil, fmt.Errorf("unsupported spec format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return &f, nil
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}

func decodeJSON(data []byte, f *File) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}

// Config returns the program policy described by f.
func (f *File) Config() argz.Config {
	cfg := argz.DefaultConfig()
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.ShowHelp, f.ShowHelp)
	set(&cfg.ShowVersion, f.ShowVersion)
	set(&cfg.ThrowError, f.ThrowError)
	set(&cfg.ExitOnHelp, f.ExitOnHelp)
	set(&cfg.ExitOnVersion, f.ExitOnVersion)
	return cfg
}

// Program builds the parser described by f.
func (f *File) Program() (*argz.Program, error) {
	b := argz.NewBuilder()
	for i, c := range f.Commands {
		if err := b.AddCommandRow(c.Spec, c.Desc); err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
	}
	for i, o := range f.Options {
		if err := b.AddOptionRow(o.Spec, o.Desc); err != nil {
			return nil, fmt.Errorf("options[%d]: %w", i, err)
		}
	}
	return argz.NewProgram(argz.Info{
		Name:    f.Name,
		Desc:    f.Desc,
		Usage:   f.Usage,
		Version: f.Version,
	}, f.Config(), b)
}

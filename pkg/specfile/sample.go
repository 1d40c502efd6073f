// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Calculator returns the calculator definition written by "argz init".
func Calculator() *File {
	return &File{
		Name:    "calculator",
		Desc:    "A simple calculator",
		Usage:   "calculator <command> <args>... [options]",
		Version: "0.1.0",
		Commands: []Entry{
			{Spec: "sum", Desc: "Returns the sum of <numbers>..."},
			{Spec: "subtract|sub", Desc: "Subtract <numbers>..."},
			{Spec: "multiply|mul", Desc: "Multiply <numbers>..."},
			{Spec: "divide|div", Desc: "Divide two numbers <x> and <y>"},
			{Spec: "power|pow", Desc: "Raise <x> to the power of <y>"},
			{Spec: "sum mult|m", Desc: "Multiply each <numbers>... and sum the result"},
		},
		Options: []Entry{
			{Spec: "--help|-h", Desc: "Show this help message and exit"},
			{Spec: "--version|-v", Desc: "Show version information and exit"},
			{Spec: "--fastmath|-f", Desc: "Use fastmath. (default: false)"},
			{Spec: "--precision|-p <p>", Desc: "Choose float point precision. (default: Float32)"},
		},
	}
}

// Encode writes f in the given format.
func Encode(f *File, format Format) ([]byte, error) {
	switch format {
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case JSON:
		bs, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(bs, '\n'), nil
	case HCL:
		return encodeHCL(f), nil
	}
	return nil, fmt.Errorf("unsupported spec format %q", format)
}

// Sample returns the calculator definition encoded as format.
func Sample(format Format) ([]byte, error) {
	return Encode(Calculator(), format)
}

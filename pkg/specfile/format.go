// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a program definition file.
type Format string

const (
	Unknown Format = ""
	TOML    Format = "toml"
	YAML    Format = "yaml"
	JSON    Format = "json"
	HCL     Format = "hcl"
)

// Formats lists the supported formats in search order.
var Formats = []Format{TOML, YAML, JSON, HCL}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "hcl":
		return HCL, nil
	}
	return Unknown, fmt.Errorf("unknown spec format %q (want toml, yaml, json or hcl)", s)
}

// Ext returns the file extension used for f, including the dot.
func (f Format) Ext() string {
	if f == Unknown {
		return ""
	}
	return "." + string(f)
}

// DetectFormat determines the format of a definition file, first by the
// extension of path and then by looking at data.
func DetectFormat(path string, data []byte) (Format, error) {
	if f, ok := detectByName(path); ok {
		return f, nil
	}
	switch {
	case detectJSON(data):
		return JSON, nil
	case detectHCL(data):
		return HCL, nil
	case detectTOML(data):
		return TOML, nil
	case detectYAML(data):
		return YAML, nil
	}
	return Unknown, fmt.Errorf("unable to detect spec format of %q", path)
}

func detectByName(path string) (Format, bool) {
	if path == "" {
		return Unknown, false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, true
	case ".yaml", ".yml":
		return YAML, true
	case ".json":
		return JSON, true
	case ".hcl":
		return HCL, true
	}
	return Unknown, false
}

func detectJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}

var hclBlockRE = regexp.MustCompile(`(?m)^\s*(command|option)\s+"[^"]*"\s*\{`)

// detectHCL looks for a labeled command or option block.
func detectHCL(data []byte) bool {
	return hclBlockRE.Match(data)
}

// detectTOML checks that data is a TOML document with a top-level name key.
func detectTOML(data []byte) bool {
	var form struct {
		Name string `toml:"name"`
	}
	if _, err := toml.Decode(string(data), &form); err != nil {
		return false
	}
	return form.Name != ""
}

// detectYAML checks for a top-level name key in a YAML mapping.
func detectYAML(data []byte) bool {
	var form struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &form); err != nil {
		return false
	}
	return form.Name != ""
}

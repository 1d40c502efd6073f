// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"errors"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is used when Info.Version is empty.
const DefaultVersion = "0.1.0"

// Canonical names of the builtin options registered by NewProgram.
const (
	HelpOption    = "help"
	VersionOption = "version"
)

// Info holds the descriptive properties of a program.
type Info struct {
	Name    string // Required.
	Desc    string
	Usage   string // Shown verbatim in the USAGE section of Help.
	Version string // Semantic version, e.g. "0.1.0".
}

// Config controls how a program reacts to help, version and parse errors.
// Program.Parse only honours ShowHelp and ShowVersion; the remaining fields
// are policy for the caller (see package runner).
type Config struct {
	ShowHelp      bool // Treat --help/-h as a help request.
	ShowVersion   bool // Treat --version as a version request.
	ThrowError    bool // Return parse errors to the caller instead of reporting them.
	ExitOnHelp    bool
	ExitOnVersion bool
}

// DefaultConfig returns a Config with every field enabled.
func DefaultConfig() Config {
	return Config{
		ShowHelp:      true,
		ShowVersion:   true,
		ThrowError:    true,
		ExitOnHelp:    true,
		ExitOnVersion: true,
	}
}

// Program couples a Spec with its metadata and policy. It is immutable and
// safe for concurrent use.
type Program struct {
	Info    Info
	Config  Config
	Spec    *Spec
	version *semver.Version
}

// NewProgram validates info, registers the builtin help and version flags
// enabled by cfg and seals the declarations in b. b itself is not modified.
func NewProgram(info Info, cfg Config, b *Builder) (*Program, error) {
	if info.Name == "" {
		return nil, &SpecError{Reason: "program name is required"}
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	v, err := semver.NewVersion(info.Version)
	if err != nil {
		return nil, &VersionError{Version: info.Version, Err: err}
	}
	if b == nil {
		b = NewBuilder()
	}
	b = b.clone()
	if cfg.ShowHelp {
		if err := addBuiltin(b, HelpOption, "Show this help message and exit", "--help", "-h"); err != nil {
			return nil, err
		}
	}
	if cfg.ShowVersion {
		if err := addBuiltin(b, VersionOption, "Show version information and exit", "--version"); err != nil {
			return nil, err
		}
	}
	return &Program{
		Info:    info,
		Config:  cfg,
		Spec:    b.Spec(),
		version: v,
	}, nil
}

// addBuiltin declares a flag unless an option with the same canonical name
// already exists. Aliases that are taken by other options are skipped.
func addBuiltin(b *Builder, name, desc string, aliases ...string) error {
	if b.HasOption(name) {
		return nil
	}
	free := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if !b.HasAlias(a) {
			free = append(free, a)
		}
	}
	if len(free) == 0 {
		return nil
	}
	return b.AddOption(name, free, false, desc)
}

// Version returns the parsed program version.
func (p *Program) Version() *semver.Version {
	return p.version
}

// VersionString returns the line printed for --version, e.g.
// "calculator v0.1.0".
func (p *Program) VersionString() string {
	return p.Info.Name + " v" + p.version.String()
}

// Parse normalizes args and matches them against the program's Spec.
//
// When the help or version flag is present (and enabled in Config) the
// Result is returned together with ErrHelp or ErrVersion. Help takes
// precedence.
func (p *Program) Parse(args []string) (*Result, error) {
	res, err := Match(p.Spec, Normalize(args))
	if err != nil {
		return nil, err
	}
	if p.Config.ShowHelp && res.HasFlag(HelpOption) {
		return res, ErrHelp
	}
	if p.Config.ShowVersion && res.HasFlag(VersionOption) {
		return res, ErrVersion
	}
	return res, nil
}

// HelpAlias returns the spelling that requests help, primary alias first.
// ok is false when help is disabled or every builtin alias was taken by
// another option.
func (p *Program) HelpAlias() (alias string, ok bool) {
	if !p.Config.ShowHelp {
		return "", false
	}
	for _, o := range p.Spec.Options() {
		if o.Name == HelpOption && o.IsFlag() && len(o.Aliases) > 0 {
			return o.Aliases[0], true
		}
	}
	return "", false
}

// IsRequest reports whether err is a help or version request rather than a
// failure.
func IsRequest(err error) bool {
	return errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion)
}

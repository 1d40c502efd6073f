// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error that reports bad user input
	// (UnknownOptionError, MissingValueError).
	ErrParse = errors.New("parse error")

	// ErrHelp is returned by Program.Parse when the help flag was passed and
	// Config.ShowHelp is set.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned by Program.Parse when the version flag was passed
	// and Config.ShowVersion is set.
	ErrVersion = errors.New("version requested")
)

// UnknownOptionError is returned when a dash-prefixed token matches no
// option alias.
type UnknownOptionError struct {
	Token   string
	Command string // Dot-joined command path matched before the token. Empty at the root.
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Token)
}

func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrParse
}

// MissingValueError is returned when an option that takes a value is the
// last token.
type MissingValueError struct {
	Option string // Canonical option name, e.g. "precision".
	Token  string // The alias as written, e.g. "-p".
}

func (e *MissingValueError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("option %s requires a value", e.Token)
	}
	return fmt.Sprintf("option --%s requires a value", e.Option)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrParse
}

// SpecError reports an invalid command or option declaration.
type SpecError struct {
	Row    string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Row == "" {
		return "invalid spec: " + e.Reason
	}
	return fmt.Sprintf("invalid spec %q: %s", e.Row, e.Reason)
}

// VersionError is returned by NewProgram when the version is not a valid
// semantic version.
type VersionError struct {
	Version string
	Err     error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Version, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

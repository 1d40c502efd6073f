// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner applies a Program's Config to the outcome of a parse: it
// prints help and version output, reports parse errors and exits.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/argz/pkg/argz"
	"github.com/yeetrun/argz/pkg/tui"
)

// Runner parses arguments for Program. Zero-valued fields fall back to
// os.Stdout, os.Stderr and os.Exit.
type Runner struct {
	Program *argz.Program
	Stdout  io.Writer
	Stderr  io.Writer
	Exit    func(code int)
	Color   tui.Colorizer
}

// Run parses args.
//
// Help and version requests print their text to Stdout, call Exit(0) when
// the program's ExitOnHelp or ExitOnVersion is set, and return ErrHelp or
// ErrVersion. Parse errors are returned unchanged when ThrowError is set.
// Otherwise they are printed to Stderr, Exit(1) is called and the error is
// returned in case Exit returns.
func (r *Runner) Run(args []string) (*argz.Result, error) {
	if r.Program == nil {
		return nil, errors.New("runner: nil program")
	}
	cfg := r.Program.Config
	res, err := r.Program.Parse(args)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, argz.ErrHelp):
		fmt.Fprint(r.stdout(), r.Program.Help())
		if cfg.ExitOnHelp {
			r.exit(0)
		}
		return res, err
	case errors.Is(err, argz.ErrVersion):
		fmt.Fprintln(r.stdout(), r.Program.VersionString())
		if cfg.ExitOnVersion {
			r.exit(0)
		}
		return res, err
	}
	if cfg.ThrowError {
		return nil, err
	}
	fmt.Fprintf(r.stderr(), "%s %v\n", r.Color.Red("error:"), err)
	if alias, ok := r.Program.HelpAlias(); ok {
		fmt.Fprintf(r.stderr(), "Run '%s %s' for usage.\n", r.Program.Info.Name, alias)
	}
	r.exit(1)
	return nil, err
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r *Runner) exit(code int) {
	if r.Exit == nil {
		os.Exit(code)
	}
	r.Exit(code)
}

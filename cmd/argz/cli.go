// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argz/pkg/cli"
)

type globalFlagsParsed struct {
	Verbose bool `flag:"verbose" help:"Log debug output to stderr"`
	NoColor bool `flag:"no-color" help:"Disable colored output (NO_COLOR)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func (a *app) handlers() map[string]yargs.SubcommandHandler {
	return map[string]yargs.SubcommandHandler{
		cli.CommandParse:     a.handleParse,
		cli.CommandNormalize: a.handleNormalize,
		cli.CommandUsage:     a.handleUsage,
		cli.CommandVersion:   a.handleVersion,
		cli.CommandCheck:     a.handleCheck,
		cli.CommandInit:      a.handleInit,
	}
}

func buildHelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo)
	for name, info := range cli.CommandInfos() {
		subcommands[name] = cli.ToSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "argz",
			Description: "Parse command lines against declarative program definitions (argz.toml, argz.yaml, argz.json or argz.hcl).",
			Examples: []string{
				"argz init",
				"argz parse -- sum 1 2 -fp Float64",
				"argz usage",
				"argz check argz.toml",
			},
		},
		SubCommands: subcommands,
	}
}

type errorPrefixer interface {
	errorPrefix() string
}

// cliError carries the exit code of a failed command.
type cliError struct {
	code   int
	prefix string
	// silent errors were already reported by the command.
	silent bool
	err    error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

func (e *cliError) errorPrefix() string {
	return e.prefix
}

func (a *app) failed(err error) error {
	return &cliError{code: exitError, prefix: a.errColor.Red("error:") + " ", err: err}
}

func (a *app) usage(err error) error {
	return &cliError{code: exitUsage, prefix: a.errColor.Red("usage error:") + " ", err: err}
}

// reported marks a failure whose details the command already printed.
func reported(format string, args ...any) error {
	return &cliError{code: exitError, silent: true, err: fmt.Errorf(format, args...)}
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var pref errorPrefixer
	if errors.As(err, &pref) {
		if prefix := pref.errorPrefix(); prefix != "" {
			fmt.Fprint(w, prefix)
		}
	}
	fmt.Fprintln(w, err)
}

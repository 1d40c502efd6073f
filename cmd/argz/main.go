// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argz parses command lines against declarative program
// definitions.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argz/pkg/tui"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    envConfig
	getwd  func() (string, error)
	// interactive reports whether stdin is a terminal that can answer
	// prompts.
	interactive bool

	log      *zap.Logger
	color    tui.Colorizer
	errColor tui.Colorizer

	// passthrough holds the first "--" and everything after it. It is kept
	// away from the subcommand router.
	passthrough []string
}

func newApp() *app {
	return &app{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		env:         loadEnv(os.Getenv),
		getwd:       os.Getwd,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		log:         zap.NewNop(),
	}
}

func main() {
	os.Exit(newApp().run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	head, passthrough := splitPassthrough(args)
	globals, remaining, err := parseGlobalFlags(head)
	if err != nil {
		printCLIError(a.stderr, err)
		return exitUsage
	}
	colorOK := !globals.NoColor && !a.env.NoColor
	a.color = tui.ForWriter(a.stdout, colorOK)
	a.errColor = tui.ForWriter(a.stderr, colorOK)
	if globals.Verbose {
		log, err := newLogger()
		if err != nil {
			printCLIError(a.stderr, err)
			return exitError
		}
		defer log.Sync()
		a.log = log
	}
	a.passthrough = passthrough
	a.log.Debug("starting", zap.Strings("args", remaining), zap.Int("passthrough", len(passthrough)))

	helpConfig := buildHelpConfig()
	remaining = yargs.ApplyAliases(remaining, helpConfig)
	if err := yargs.RunSubcommandsWithGroups(context.Background(), remaining, helpConfig, globalFlagsParsed{}, a.handlers(), nil); err != nil {
		return a.exitCode(err)
	}
	return exitOK
}

// exitCode reports err and maps it to a process exit code. Errors that do
// not come from a handler are routing failures and count as usage errors.
func (a *app) exitCode(err error) int {
	var ce *cliError
	if !errors.As(err, &ce) {
		printCLIError(a.stderr, a.usage(err))
		return exitUsage
	}
	if !ce.silent {
		printCLIError(a.stderr, err)
	}
	return ce.code
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// splitPassthrough splits args before the first "--".
func splitPassthrough(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

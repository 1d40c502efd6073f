// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argz/pkg/argz"
	"github.com/yeetrun/argz/pkg/cli"
	"github.com/yeetrun/argz/pkg/cmdutil"
	"github.com/yeetrun/argz/pkg/fileutil"
	"github.com/yeetrun/argz/pkg/render"
	"github.com/yeetrun/argz/pkg/runner"
	"github.com/yeetrun/argz/pkg/specfile"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// commandArgs drops the subcommand name and re-attaches the passthrough.
func (a *app) commandArgs(args []string) []string {
	if len(args) > 0 {
		args = args[1:]
	}
	return a.appendPassthrough(args)
}

// appendPassthrough joins parsed arguments with the passthrough. The "--"
// is kept only when other arguments precede it.
func (a *app) appendPassthrough(args []string) []string {
	if len(a.passthrough) == 0 {
		return args
	}
	if len(args) == 0 {
		return append([]string{}, a.passthrough[1:]...)
	}
	return append(append([]string{}, args...), a.passthrough...)
}

func (a *app) loader() *specfile.Loader {
	return &specfile.Loader{Logger: a.log}
}

// specPath picks the definition file from the flag, ARGZ_SPEC or an upward
// search from the working directory.
func (a *app) specPath(flag string) (string, error) {
	if p := cmp.Or(flag, a.env.Spec); p != "" {
		return p, nil
	}
	wd, err := a.getwd()
	if err != nil {
		return "", err
	}
	path, err := a.loader().Find(wd)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no program definition found (looked for %s from %s); use --spec or ARGZ_SPEC",
			strings.Join(specfile.FileNames(), ", "), wd)
	}
	return path, err
}

func (a *app) loadProgram(flag string) (*argz.Program, error) {
	path, err := a.specPath(flag)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loading program", zap.String("path", path))
	return a.loader().Load(path)
}

func (a *app) handleParse(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, rest, err := cli.ParseParse(args)
	if err != nil {
		return a.usage(err)
	}
	format, err := render.ParseFormat(cmp.Or(flags.Format, a.env.Format))
	if err != nil {
		return a.usage(err)
	}
	p, err := a.loadProgram(flags.Spec)
	if err != nil {
		return a.failed(err)
	}
	userArgs := a.appendPassthrough(rest)
	a.log.Debug("parsing", zap.String("program", p.Info.Name), zap.Strings("args", userArgs))

	exited := -1
	r := &runner.Runner{
		Program: p,
		Stdout:  a.stdout,
		Stderr:  a.stderr,
		Exit:    func(code int) { exited = code },
		Color:   a.errColor,
	}
	res, err := r.Run(userArgs)
	switch {
	case argz.IsRequest(err):
		return nil
	case err != nil && exited > 0:
		return reported("%s: parse failed", p.Info.Name)
	case err != nil:
		return a.failed(err)
	}
	return render.Write(a.stdout, res, format, a.color)
}

func (a *app) handleNormalize(_ context.Context, args []string) error {
	for _, tok := range argz.Normalize(a.commandArgs(args)) {
		fmt.Fprintln(a.stdout, tok)
	}
	return nil
}

func (a *app) handleUsage(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, rest, err := cli.ParseUsage(args)
	if err != nil {
		return a.usage(err)
	}
	if len(rest) > 0 {
		return a.usage(fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
	}
	p, err := a.loadProgram(flags.Spec)
	if err != nil {
		return a.failed(err)
	}
	fmt.Fprint(a.stdout, p.Help())
	return nil
}

type versionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Major   uint64 `json:"major"`
	Minor   uint64 `json:"minor"`
	Patch   uint64 `json:"patch"`
}

func (a *app) handleVersion(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, _, err := cli.ParseVersion(args)
	if err != nil {
		return a.usage(err)
	}
	name, line := "argz", "argz v"+version
	v, err := semver.NewVersion(version)
	if err != nil {
		return a.failed(fmt.Errorf("invalid build version %q: %w", version, err))
	}
	if spec := cmp.Or(flags.Spec, a.env.Spec); spec != "" {
		p, err := a.loader().Load(spec)
		if err != nil {
			return a.failed(err)
		}
		name, line, v = p.Info.Name, p.VersionString(), p.Version()
	}
	if !flags.JSON {
		fmt.Fprintln(a.stdout, line)
		return nil
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(versionInfo{
		Name:    name,
		Version: v.String(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
	})
}

type checkResult struct {
	path    string
	program *argz.Program
	err     error
}

func (a *app) handleCheck(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, files, err := cli.ParseCheck(args)
	if err != nil {
		return a.usage(err)
	}
	if len(a.passthrough) > 0 {
		files = append(files, a.passthrough[1:]...)
	}
	if err := cli.RequireArgsAtLeast(cli.CommandCheck, files, 1); err != nil {
		return a.usage(err)
	}

	results := make([]checkResult, len(files))
	loader := a.loader()
	var g errgroup.Group
	g.SetLimit(8)
	for i, path := range files {
		g.Go(func() error {
			p, err := loader.Load(path)
			results[i] = checkResult{path: path, program: p, err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(a.stdout, "%s %s: %v\n", a.color.Red("FAIL"), r.path, r.err)
			continue
		}
		if !flags.Quiet {
			fmt.Fprintf(a.stdout, "%s %s (%s)\n", a.color.Green("ok  "), r.path, r.program.VersionString())
		}
	}
	if failed > 0 {
		return reported("%d of %d definition(s) invalid", failed, len(files))
	}
	return nil
}

func (a *app) handleInit(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, rest, err := cli.ParseInit(args)
	if err != nil {
		return a.usage(err)
	}
	if len(rest) > 0 {
		return a.usage(fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
	}
	format, err := specfile.ParseFormat(flags.Format)
	if err != nil {
		return a.usage(err)
	}
	data, err := specfile.Sample(format)
	if err != nil {
		return a.failed(err)
	}
	dir := cmp.Or(flags.Dir, ".")
	path := filepath.Join(dir, specfile.BaseName+format.Ext())
	if !flags.Force {
		if _, err := os.Stat(path); err == nil {
			same, err := fileutil.Identical(path, data)
			if err != nil {
				return a.failed(err)
			}
			if same {
				fmt.Fprintf(a.stdout, "%s is up to date\n", path)
				return nil
			}
			if !a.interactive {
				return a.failed(fmt.Errorf("%s already exists (use --force to overwrite)", path))
			}
			ok, err := cmdutil.Confirm(a.stdin, a.stdout, fmt.Sprintf("Overwrite %s?", path))
			if err != nil {
				return a.failed(err)
			}
			if !ok {
				return a.failed(fmt.Errorf("not overwriting %s", path))
			}
		}
	}
	if err := fileutil.WriteFile(path, data, 0o644); err != nil {
		return a.failed(err)
	}
	a.log.Debug("wrote sample definition", zap.String("path", path), zap.String("format", string(format)))
	fmt.Fprintf(a.stdout, "Wrote %s\n", path)
	return nil
}

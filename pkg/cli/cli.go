// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shayne/yargs"
)

type FlagSpec struct {
	ConsumesValue bool
}

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Aliases     []string
}

type ParseFlags struct {
	Spec   string
	Format string
}

type UsageFlags struct {
	Spec string
}

type VersionFlags struct {
	Spec string
	JSON bool
}

type CheckFlags struct {
	Quiet bool
}

type InitFlags struct {
	Format string
	Force  bool
	Dir    string
}

type parseFlagsParsed struct {
	Spec   string `flag:"spec" help:"Program definition file (ARGZ_SPEC)"`
	Format string `flag:"format" help:"Output format: text, json, yaml or env (ARGZ_FORMAT)"`
}

type usageFlagsParsed struct {
	Spec string `flag:"spec" help:"Program definition file (ARGZ_SPEC)"`
}

type versionFlagsParsed struct {
	Spec string `flag:"spec" help:"Program definition file (ARGZ_SPEC)"`
	JSON bool   `flag:"json" help:"Print version details as JSON"`
}

type checkFlagsParsed struct {
	Quiet bool `flag:"quiet" short:"q" help:"Only report failures"`
}

type initFlagsParsed struct {
	Format string `flag:"format" short:"f" default:"toml" help:"Definition format: toml, yaml, json or hcl"`
	Force  bool   `flag:"force" help:"Overwrite an existing file"`
	Dir    string `flag:"dir" default:"." help:"Directory to write into"`
}

const (
	CommandParse     = "parse"
	CommandNormalize = "normalize"
	CommandUsage     = "usage"
	CommandVersion   = "version"
	CommandCheck     = "check"
	CommandInit      = "init"
)

var commandInfos = map[string]CommandInfo{
	CommandParse: {Name: CommandParse, Description: "Parse arguments against a program definition", Usage: "[--spec FILE] [--format text|json|yaml] [--] ARGS...", Examples: []string{
		"argz parse -- sum 1 2 --precision Float64",
		"argz parse --spec calc.hcl --format json -- sum mult -fp Float64",
	}, Aliases: []string{"p"}},
	CommandNormalize: {Name: CommandNormalize, Description: "Print normalized tokens, one per line", Usage: "[--] ARGS...", Examples: []string{
		"argz normalize -- -xyz --foo=bar",
	}, Aliases: []string{"norm"}},
	CommandUsage: {Name: CommandUsage, Description: "Print the generated help of a program definition", Usage: "[--spec FILE]", Examples: []string{
		"argz usage --spec calc.yaml",
	}},
	CommandVersion: {Name: CommandVersion, Description: "Print the version of a program definition or of argz", Usage: "[--spec FILE] [--json]", Examples: []string{
		"argz version",
		"argz version --spec argz.toml",
	}},
	CommandCheck: {Name: CommandCheck, Description: "Validate program definition files", Usage: "[-q] FILE...", Examples: []string{
		"argz check argz.toml examples/*.yaml",
	}},
	CommandInit: {Name: CommandInit, Description: "Write a sample program definition", Usage: "[--format toml|yaml|json|hcl] [--force] [--dir DIR]", Examples: []string{
		"argz init",
		"argz init --format hcl",
	}},
}

var commandFlagSpecs = map[string]map[string]FlagSpec{
	CommandParse:     flagSpecsFromStruct(parseFlagsParsed{}),
	CommandNormalize: {},
	CommandUsage:     flagSpecsFromStruct(usageFlagsParsed{}),
	CommandVersion:   flagSpecsFromStruct(versionFlagsParsed{}),
	CommandCheck:     flagSpecsFromStruct(checkFlagsParsed{}),
	CommandInit:      flagSpecsFromStruct(initFlagsParsed{}),
}

// CommandNames returns the names of all commands, sorted.
func CommandNames() []string {
	names := lo.Keys(commandInfos)
	slices.Sort(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

func CommandFlagSpecs() map[string]map[string]FlagSpec {
	return commandFlagSpecs
}

func ToSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Aliases:     info.Aliases,
	}
}

// ParseParse parses the flags of the parse command. Parsing stops at the
// first token that is not a parse flag; that token and everything after it
// are returned verbatim so the program's own options reach the matcher.
func ParseParse(args []string) (ParseFlags, []string, error) {
	parseArgs, extraArgs := splitArgsForParsing(args, commandFlagSpecs[CommandParse])
	parsed, err := parseFlags[parseFlagsParsed](parseArgs)
	if err != nil {
		return ParseFlags{}, nil, err
	}
	flags := ParseFlags{
		Spec:   parsed.Flags.Spec,
		Format: parsed.Flags.Format,
	}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

func ParseUsage(args []string) (UsageFlags, []string, error) {
	parseArgs, extraArgs := SplitArgsAtDoubleDash(args)
	parsed, err := parseFlags[usageFlagsParsed](parseArgs)
	if err != nil {
		return UsageFlags{}, nil, err
	}
	flags := UsageFlags{Spec: parsed.Flags.Spec}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

func ParseVersion(args []string) (VersionFlags, []string, error) {
	parseArgs, extraArgs := SplitArgsAtDoubleDash(args)
	parsed, err := parseFlags[versionFlagsParsed](parseArgs)
	if err != nil {
		return VersionFlags{}, nil, err
	}
	flags := VersionFlags{Spec: parsed.Flags.Spec, JSON: parsed.Flags.JSON}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

func ParseCheck(args []string) (CheckFlags, []string, error) {
	parseArgs, extraArgs := SplitArgsAtDoubleDash(args)
	parsed, err := parseFlags[checkFlagsParsed](parseArgs)
	if err != nil {
		return CheckFlags{}, nil, err
	}
	flags := CheckFlags{Quiet: parsed.Flags.Quiet}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

func ParseInit(args []string) (InitFlags, []string, error) {
	parseArgs, extraArgs := SplitArgsAtDoubleDash(args)
	parsed, err := parseFlags[initFlagsParsed](parseArgs)
	if err != nil {
		return InitFlags{}, nil, err
	}
	flags := InitFlags{
		Format: parsed.Flags.Format,
		Force:  parsed.Flags.Force,
		Dir:    parsed.Flags.Dir,
	}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

type parsedFlags[T any] struct {
	Flags T
	Args  []string
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut}, nil
}

// SplitArgsAtDoubleDash splits args around the first "--", dropping it.
func SplitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

// splitArgsForParsing returns the leading flags of args that appear in specs,
// together with their values, and the rest.
func splitArgsForParsing(args []string, specs map[string]FlagSpec) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return args[:i], args[i:]
		}
		name, _, hasValue := strings.Cut(arg, "=")
		spec, ok := specs[name]
		if !ok {
			return args[:i], args[i:]
		}
		if spec.ConsumesValue && !hasValue {
			i++
		}
	}
	return args, nil
}

func flagSpecsFromStruct(v any) map[string]FlagSpec {
	specs := make(map[string]FlagSpec)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return specs
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		spec := FlagSpec{ConsumesValue: consumesValue(field.Type)}
		specs["--"+name] = spec
		if short := field.Tag.Get("short"); short != "" {
			specs["-"+short] = spec
		}
	}
	return specs
}

func consumesValue(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() != reflect.Bool
}

func RequireArgsAtLeast(subcmd string, args []string, count int) error {
	if len(args) < count {
		return fmt.Errorf("'%s' requires at least %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"slices"
	"strings"
)

// commandSeparator joins nested command names in Result.Command.
const commandSeparator = "."

// Result is the outcome of a successful Match.
type Result struct {
	// Command is the dot-joined canonical path of the matched commands, e.g.
	// "sum.mult". Empty when no command matched.
	Command string
	// CommandPath holds the same names as Command, one per level.
	CommandPath []string
	// Args are the positional arguments in input order, including "--" and
	// everything after it.
	Args []string
	// Options maps canonical option names to their value. The last
	// occurrence wins.
	Options map[string]string
	// Flags holds the canonical names of the flags that were present, in the
	// order they first appeared, without duplicates.
	Flags []string
}

// HasFlag reports whether the flag with canonical name was present.
func (r *Result) HasFlag(name string) bool {
	return slices.Contains(r.Flags, name)
}

// Option returns the value recorded for the canonical option name.
func (r *Result) Option(name string) (string, bool) {
	v, ok := r.Options[name]
	return v, ok
}

func (r *Result) addFlag(name string) {
	if !r.HasFlag(name) {
		r.Flags = append(r.Flags, name)
	}
}

// Match consumes normalized tokens (see Normalize) against spec.
//
// Leading tokens that name commands select a path through the command tree.
// Command matching stops at the first token that is not a child command and
// never resumes. The remaining tokens are options, flags and positional
// arguments; "--" and everything after it are positional.
//
// The token after an option that takes a value is always its value, even if
// it starts with "-".
func Match(spec *Spec, tokens []string) (*Result, error) {
	res := &Result{
		Args:    []string{},
		Options: make(map[string]string),
		Flags:   []string{},
	}

	i := 0
	var cursor *Command
	if spec != nil {
		cursor = spec.root
	}
	for cursor != nil && i < len(tokens) {
		tok := tokens[i]
		if strings.HasPrefix(tok, "-") {
			break
		}
		next := cursor.Child(tok)
		if next == nil {
			break
		}
		res.CommandPath = append(res.CommandPath, next.Name)
		cursor = next
		i++
	}
	res.Command = strings.Join(res.CommandPath, commandSeparator)

	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == restSeparator {
			res.Args = append(res.Args, tokens[i:]...)
			break
		}
		if opt, ok := spec.LookupOption(tok); ok {
			if opt.IsFlag() {
				res.addFlag(opt.Name)
				continue
			}
			if i+1 >= len(tokens) {
				return nil, &MissingValueError{Option: opt.Name, Token: tok}
			}
			i++
			res.Options[opt.Name] = tokens[i]
			continue
		}
		if isOptionLike(tok) {
			return nil, &UnknownOptionError{Token: tok, Command: res.Command}
		}
		res.Args = append(res.Args, tok)
	}
	return res, nil
}

// isOptionLike reports whether tok has the shape of an option. Every token
// with a leading dash qualifies, including a lone "-".
func isOptionLike(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

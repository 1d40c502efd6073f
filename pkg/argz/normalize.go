// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import "strings"

// restSeparator ends option processing. Everything after it is passed
// through untouched by both Normalize and Match.
const restSeparator = "--"

// Normalize rewrites raw process arguments into the canonical token stream
// consumed by Match:
//
//   - combined short flags are split: -xyz becomes -x -y -z
//   - attached values are split: --foo=bar becomes --foo bar, -x=v becomes -x v
//   - "--" is kept and every token after it is copied verbatim
//
// The input slice is never modified.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for i, arg := range raw {
		if arg == restSeparator {
			out = append(out, raw[i:]...)
			break
		}
		if strings.HasPrefix(arg, "-") {
			if name, value, ok := strings.Cut(arg, "="); ok {
				out = appendShort(out, name)
				out = append(out, value)
				continue
			}
		}
		out = appendShort(out, arg)
	}
	return out
}

// appendShort appends arg to out, expanding it first if it is a run of
// short flags.
func appendShort(out []string, arg string) []string {
	if !isCombinedShort(arg) {
		return append(out, arg)
	}
	for _, r := range arg[1:] {
		out = append(out, "-"+string(r))
	}
	return out
}

// isCombinedShort reports whether arg matches ^-[a-zA-Z][a-zA-Z]+$.
func isCombinedShort(arg string) bool {
	if len(arg) < 3 || arg[0] != '-' {
		return false
	}
	for i := 1; i < len(arg); i++ {
		if !isASCIILetter(arg[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

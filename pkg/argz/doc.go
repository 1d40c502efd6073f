// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argz is a small declarative command-line argument parser.
//
// A program declares its commands and options up front, either with the
// explicit Builder methods or with the table syntax used by spec files:
//
//	b := argz.NewBuilder()
//	b.AddCommandRow("sum", "Returns the sum of <numbers>...")
//	b.AddCommandRow("sum mult|m", "Multiply each <numbers>... and sum the result")
//	b.AddOptionRow("--fastmath|-f", "Use fastmath")
//	b.AddOptionRow("--precision <p>", "Choose float point precision")
//
// Parsing happens in two pure steps. Normalize rewrites raw arguments into
// canonical tokens (-xyz becomes -x -y -z, --foo=bar becomes --foo bar) and
// Match walks the tokens against the Spec:
//
//	res, err := argz.Match(b.Spec(), argz.Normalize(os.Args[1:]))
//
// For "sum mult a b -f --precision=Float64" the result is
//
//	Command: "sum.mult"
//	Args:    ["a", "b"]
//	Options: {"precision": "Float64"}
//	Flags:   ["fastmath"]
//
// # Rest arguments
//
// Everything after a literal "--" is passed through as positional arguments
// without interpretation. The "--" itself is kept in Result.Args.
//
// # Programs
//
// Program adds a name, description, usage line and semantic version on top
// of a Spec, registers --help/-h and --version, and generates help text.
// Program.Parse reports help and version requests as ErrHelp and ErrVersion;
// printing and exiting is left to the caller.
package argz

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddCommandRow(t *testing.T) {
	b := NewBuilder()
	for _, row := range []string{"ship|sh", "ship id", "ship|boat move|mv"} {
		if err := b.AddCommandRow(row, "desc "+row); err != nil {
			t.Fatalf("AddCommandRow(%q): %v", row, err)
		}
	}
	spec := b.Spec()

	ship, ok := spec.LookupCommand("sh")
	if !ok {
		t.Fatalf("LookupCommand(sh) not found")
	}
	if diff := cmp.Diff([]string{"sh", "boat"}, ship.Aliases); diff != "" {
		t.Errorf("ship aliases mismatch (-want +got):\n%s", diff)
	}
	if ship.Description != "desc ship|sh" {
		t.Errorf("ship description = %q", ship.Description)
	}
	if _, ok := spec.LookupCommand("boat", "id"); !ok {
		t.Errorf("LookupCommand(boat, id) not found")
	}
	mv, ok := spec.LookupCommand("ship", "mv")
	if !ok || mv.Name != "move" {
		t.Fatalf("LookupCommand(ship, mv) = %v, %v", mv, ok)
	}

	res, err := Match(spec, []string{"sh", "id", "x"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Command != "ship.id" {
		t.Errorf("Command = %q, want %q", res.Command, "ship.id")
	}
}

func TestAddCommandCreatesIntermediates(t *testing.T) {
	b := NewBuilder()
	if err := b.AddCommand([]string{"remote", "add"}, []string{"a"}, "Add a remote"); err != nil {
		t.Fatal(err)
	}
	spec := b.Spec()
	remote, ok := spec.LookupCommand("remote")
	if !ok {
		t.Fatalf("intermediate command not created")
	}
	if remote.Description != "" {
		t.Errorf("intermediate description = %q, want empty", remote.Description)
	}
	add, ok := spec.LookupCommand("remote", "a")
	if !ok || add.Description != "Add a remote" {
		t.Errorf("LookupCommand(remote, a) = %+v, %v", add, ok)
	}
}

func TestAddOptionRow(t *testing.T) {
	tests := []struct {
		row  string
		want *Option
	}{
		{
			row:  "--fastmath|-f",
			want: &Option{Name: "fastmath", Aliases: []string{"--fastmath", "-f"}, Description: "d"},
		},
		{
			row:  "--precision <p>",
			want: &Option{Name: "precision", Aliases: []string{"--precision"}, TakesValue: true, Placeholder: "p", Description: "d"},
		},
		{
			row:  "--output|-o|--out <file>",
			want: &Option{Name: "output", Aliases: []string{"--output", "-o", "--out"}, TakesValue: true, Placeholder: "file", Description: "d"},
		},
		{
			row:  "-x",
			want: &Option{Name: "x", Aliases: []string{"-x"}, Description: "d"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			b := NewBuilder()
			if err := b.AddOptionRow(tt.row, "d"); err != nil {
				t.Fatalf("AddOptionRow: %v", err)
			}
			got := b.Spec().Options()
			if diff := cmp.Diff([]*Option{tt.want}, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddOptionDefaultsAlias(t *testing.T) {
	b := NewBuilder()
	if err := b.AddOption("verbose", nil, false, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOption("n", nil, true, ""); err != nil {
		t.Fatal(err)
	}
	spec := b.Spec()
	if _, ok := spec.LookupOption("--verbose"); !ok {
		t.Errorf("--verbose not registered")
	}
	if o, ok := spec.LookupOption("-n"); !ok || !o.TakesValue {
		t.Errorf("-n = %+v, %v", o, ok)
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func(b *Builder) error
		reason string
	}{
		{
			name:   "empty command row",
			build:  func(b *Builder) error { return b.AddCommandRow("  ", "") },
			reason: "empty command",
		},
		{
			name:   "dash command",
			build:  func(b *Builder) error { return b.AddCommandRow("-run", "") },
			reason: "must not start with '-'",
		},
		{
			name: "sibling alias collision",
			build: func(b *Builder) error {
				if err := b.AddCommandRow("subtract|sub", ""); err != nil {
					return err
				}
				return b.AddCommandRow("submit|sub", "")
			},
			reason: `already used by command "subtract"`,
		},
		{
			name: "alias collides with sibling name",
			build: func(b *Builder) error {
				if err := b.AddCommandRow("sum", ""); err != nil {
					return err
				}
				return b.AddCommandRow("add|sum", "")
			},
			reason: `already used by command "sum"`,
		},
		{
			name: "name collides with sibling alias",
			build: func(b *Builder) error {
				if err := b.AddCommandRow("subtract|s", "Subtract"); err != nil {
					return err
				}
				return b.AddCommandRow("s", "Sort")
			},
			reason: `alias "s" already used by command "subtract"`,
		},
		{
			name: "path element collides with sibling alias",
			build: func(b *Builder) error {
				if err := b.AddCommandRow("sum|s", ""); err != nil {
					return err
				}
				return b.AddCommand([]string{"s", "mult"}, nil, "")
			},
			reason: `alias "s" already used by command "sum"`,
		},
		{
			name: "duplicate option alias",
			build: func(b *Builder) error {
				if err := b.AddOptionRow("--fastmath|-f", ""); err != nil {
					return err
				}
				return b.AddOptionRow("--force|-f", "")
			},
			reason: `alias -f already used by option "fastmath"`,
		},
		{
			name: "duplicate option name",
			build: func(b *Builder) error {
				if err := b.AddOptionRow("--precision <p>", ""); err != nil {
					return err
				}
				return b.AddOption("precision", []string{"-p"}, true, "")
			},
			reason: "declared twice",
		},
		{
			name:   "alias without dash",
			build:  func(b *Builder) error { return b.AddOptionRow("--output|o", "") },
			reason: "must start with '-'",
		},
		{
			name:   "reserved alias",
			build:  func(b *Builder) error { return b.AddOption("rest", []string{"--"}, false, "") },
			reason: "reserved",
		},
		{
			name:   "two placeholders",
			build:  func(b *Builder) error { return b.AddOptionRow("--range <a> <b>", "") },
			reason: "placeholder",
		},
		{
			name:   "placeholder only",
			build:  func(b *Builder) error { return b.AddOptionRow("<p>", "") },
			reason: "no option name",
		},
		{
			name:   "multi letter single dash alias",
			build:  func(b *Builder) error { return b.AddOptionRow("--verbose|-vv", "") },
			reason: "unreachable",
		},
		{
			name:   "equals in alias",
			build:  func(b *Builder) error { return b.AddOptionRow("--a=b", "") },
			reason: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(NewBuilder())
			var specErr *SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("error = %v, want *SpecError", err)
			}
			if !strings.Contains(specErr.Error(), tt.reason) {
				t.Errorf("error = %q, want it to contain %q", specErr.Error(), tt.reason)
			}
		})
	}
}

func TestBuilderFailureLeavesStateUnchanged(t *testing.T) {
	b := NewBuilder()
	if err := b.AddCommandRow("sum", ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCommandRow("new|sum", ""); err == nil {
		t.Fatal("expected collision error")
	}
	if _, ok := b.Spec().LookupCommand("new"); ok {
		t.Errorf("failed row left command %q behind", "new")
	}
}

func TestSpecSnapshotIsIndependent(t *testing.T) {
	b := NewBuilder()
	if err := b.AddCommandRow("sum", ""); err != nil {
		t.Fatal(err)
	}
	spec := b.Spec()
	if err := b.AddCommandRow("sum mult", ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOptionRow("--fastmath", ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := spec.LookupCommand("sum", "mult"); ok {
		t.Errorf("snapshot sees command added later")
	}
	if _, ok := spec.LookupOption("--fastmath"); ok {
		t.Errorf("snapshot sees option added later")
	}
}

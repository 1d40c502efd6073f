// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "empty",
			in:   []string{},
			want: []string{},
		},
		{
			name: "combined short flags",
			in:   []string{"-xyz"},
			want: []string{"-x", "-y", "-z"},
		},
		{
			name: "long option with value",
			in:   []string{"--foo=bar"},
			want: []string{"--foo", "bar"},
		},
		{
			name: "short option with value",
			in:   []string{"-p=Float64"},
			want: []string{"-p", "Float64"},
		},
		{
			name: "mixed",
			in:   []string{"-f", "-xyz", "--foo", "--precision=value"},
			want: []string{"-f", "-x", "-y", "-z", "--foo", "--precision", "value"},
		},
		{
			name: "nothing split after double dash",
			in:   []string{"-f", "--", "-xyz"},
			want: []string{"-f", "--", "-xyz"},
		},
		{
			name: "double dash tail kept verbatim",
			in:   []string{"sum", "-vf", "--precision=Float32", "--", "a", "--foo=bar", "-xyz"},
			want: []string{"sum", "-v", "-f", "--precision", "Float32", "--", "a", "--foo=bar", "-xyz"},
		},
		{
			name: "value split only at first equals",
			in:   []string{"--define=a=b"},
			want: []string{"--define", "a=b"},
		},
		{
			name: "empty attached value",
			in:   []string{"--name="},
			want: []string{"--name", ""},
		},
		{
			name: "combined short flags with attached value",
			in:   []string{"-vp=3"},
			want: []string{"-v", "-p", "3"},
		},
		{
			name: "single letter untouched",
			in:   []string{"-f"},
			want: []string{"-f"},
		},
		{
			name: "digits are not flags",
			in:   []string{"-10", "-x1"},
			want: []string{"-10", "-x1"},
		},
		{
			name: "lone dash",
			in:   []string{"-"},
			want: []string{"-"},
		},
		{
			name: "words with equals untouched",
			in:   []string{"key=value"},
			want: []string{"key=value"},
		},
		{
			name: "trailing double dash",
			in:   []string{"a", "--"},
			want: []string{"a", "--"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalizeIdentityOnPlainWords(t *testing.T) {
	inputs := [][]string{
		{"sum", "x", "y", "z"},
		{"a"},
		{"with space", "key=value", "x-y"},
	}
	for _, in := range inputs {
		if got := Normalize(in); !slices.Equal(got, in) {
			t.Errorf("Normalize(%q) = %q, want identity", in, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]string{
		{"-xyz"},
		{"--foo=bar", "-abc", "word"},
		{"-f", "-xyz", "--foo", "--precision=value"},
		{"-vp=3", "--", "-xyz", "--foo=bar"},
		{"-", "-1", "--x=a=b"},
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Normalize not idempotent for %q (-once +twice):\n%s", in, diff)
		}
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	in := []string{"-xyz", "--foo=bar", "--", "-abc"}
	orig := slices.Clone(in)
	_ = Normalize(in)
	if !slices.Equal(in, orig) {
		t.Fatalf("input modified: got %q, want %q", in, orig)
	}
}

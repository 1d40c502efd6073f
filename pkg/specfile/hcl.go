// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the HCL shape of File. Table rows are labeled blocks:
//
//	command "subtract|sub" {
//	  desc = "Subtract <numbers>..."
//	}
type hclFile struct {
	Name    string `hcl:"name"`
	Desc    string `hcl:"desc,optional"`
	Usage   string `hcl:"usage,optional"`
	Version string `hcl:"version,optional"`

	ShowHelp      *bool `hcl:"show_help,optional"`
	ShowVersion   *bool `hcl:"show_version,optional"`
	ThrowError    *bool `hcl:"throw_error,optional"`
	ExitOnHelp    *bool `hcl:"exit_onhelp,optional"`
	ExitOnVersion *bool `hcl:"exit_onversion,optional"`

	Commands []*hclEntry `hcl:"command,block"`
	Options  []*hclEntry `hcl:"option,block"`
}

type hclEntry struct {
	Spec string `hcl:"spec,label"`
	Desc string `hcl:"desc,optional"`
}

func decodeHCL(data []byte, filename string, f *File) error {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return diags
	}
	var parsed hclFile
	if diags := gohcl.DecodeBody(hf.Body, nil, &parsed); diags.HasErrors() {
		return diags
	}
	*f = File{
		Name:          parsed.Name,
		Desc:          parsed.Desc,
		Usage:         parsed.Usage,
		Version:       parsed.Version,
		ShowHelp:      parsed.ShowHelp,
		ShowVersion:   parsed.ShowVersion,
		ThrowError:    parsed.ThrowError,
		ExitOnHelp:    parsed.ExitOnHelp,
		ExitOnVersion: parsed.ExitOnVersion,
		Commands:      fromHCLEntries(parsed.Commands),
		Options:       fromHCLEntries(parsed.Options),
	}
	return nil
}

func fromHCLEntries(in []*hclEntry) []Entry {
	if len(in) == 0 {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Spec: e.Spec, Desc: e.Desc}
	}
	return out
}

func encodeHCL(f *File) []byte {
	out := hclwrite.NewEmptyFile()
	body := out.Body()

	setString := func(name, v string) {
		if v != "" {
			body.SetAttributeValue(name, cty.StringVal(v))
		}
	}
	setBool := func(name string, v *bool) {
		if v != nil {
			body.SetAttributeValue(name, cty.BoolVal(*v))
		}
	}
	setString("name", f.Name)
	setString("desc", f.Desc)
	setString("usage", f.Usage)
	setString("version", f.Version)
	setBool("show_help", f.ShowHelp)
	setBool("show_version", f.ShowVersion)
	setBool("throw_error", f.ThrowError)
	setBool("exit_onhelp", f.ExitOnHelp)
	setBool("exit_onversion", f.ExitOnVersion)

	appendBlocks := func(typ string, entries []Entry) {
		for _, e := range entries {
			body.AppendNewline()
			block := body.AppendNewBlock(typ, []string{e.Spec})
			if e.Desc != "" {
				block.Body().SetAttributeValue("desc", cty.StringVal(e.Desc))
			}
		}
	}
	appendBlocks("command", f.Commands)
	appendBlocks("option", f.Options)
	return out.Bytes()
}

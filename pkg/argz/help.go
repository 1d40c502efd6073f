// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"fmt"
	"strings"
)

// Help returns the generated help message for p.
func (p *Program) Help() string {
	var b strings.Builder

	// Header
	b.WriteString(p.Info.Name)
	if p.Info.Desc != "" {
		b.WriteString(" - ")
		b.WriteString(p.Info.Desc)
	}
	b.WriteString("\n\n")

	// Usage
	b.WriteString("USAGE:\n")
	usage := p.Info.Usage
	if usage == "" {
		usage = defaultUsage(p)
	}
	b.WriteString(fmt.Sprintf("    %s\n\n", usage))

	// Commands
	var rows [][2]string
	var walk func(prefix string, cmds []*Command)
	walk = func(prefix string, cmds []*Command) {
		for _, c := range cmds {
			path := prefix + c.Name
			rows = append(rows, [2]string{path, describeWithAliases(c.Description, c.Aliases)})
			walk(path+" ", c.Children)
		}
	}
	walk("", p.Spec.Commands())
	if len(rows) > 0 {
		b.WriteString("COMMANDS:\n")
		writeRows(&b, rows)
		b.WriteString("\n")
	}

	// Options
	if opts := p.Spec.Options(); len(opts) > 0 {
		rows = rows[:0]
		for _, o := range opts {
			rows = append(rows, [2]string{optionUsage(o), o.Description})
		}
		b.WriteString("OPTIONS:\n")
		writeRows(&b, rows)
	}

	return b.String()
}

func defaultUsage(p *Program) string {
	parts := []string{p.Info.Name}
	if len(p.Spec.Commands()) > 0 {
		parts = append(parts, "<command>")
	}
	parts = append(parts, "[args...]")
	if len(p.Spec.Options()) > 0 {
		parts = append(parts, "[options]")
	}
	return strings.Join(parts, " ")
}

func writeRows(b *strings.Builder, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	width = max(width, 24)
	for _, r := range rows {
		if r[1] == "" {
			b.WriteString(fmt.Sprintf("    %s\n", r[0]))
			continue
		}
		b.WriteString(fmt.Sprintf("    %-*s  %s\n", width, r[0], r[1]))
	}
}

// optionUsage renders an option as "-p, --precision <p>". Short aliases come
// first.
func optionUsage(o *Option) string {
	var short, long []string
	for _, a := range o.Aliases {
		if strings.HasPrefix(a, "--") {
			long = append(long, a)
		} else {
			short = append(short, a)
		}
	}
	s := strings.Join(append(short, long...), ", ")
	if o.TakesValue {
		ph := o.Placeholder
		if ph == "" {
			ph = "value"
		}
		s += " <" + ph + ">"
	}
	return s
}

func describeWithAliases(desc string, aliases []string) string {
	var suffix string
	switch len(aliases) {
	case 0:
		return desc
	case 1:
		suffix = fmt.Sprintf("(alias: %s)", aliases[0])
	default:
		suffix = fmt.Sprintf("(aliases: %s)", strings.Join(aliases, ", "))
	}
	if desc == "" {
		return suffix
	}
	return desc + " " + suffix
}

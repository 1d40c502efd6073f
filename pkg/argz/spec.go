// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argz

import (
	"fmt"
	"slices"
	"strings"
)

// Command is a node in the command tree. A command is selected by its Name
// or any of its Aliases; nested commands live in Children.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Children    []*Command
}

// Matches reports whether token selects c.
func (c *Command) Matches(token string) bool {
	return token == c.Name || slices.Contains(c.Aliases, token)
}

// Child returns the direct child selected by token, or nil.
func (c *Command) Child(token string) *Command {
	for _, child := range c.Children {
		if child.Matches(token) {
			return child
		}
	}
	return nil
}

func (c *Command) clone() *Command {
	out := &Command{
		Name:        c.Name,
		Aliases:     slices.Clone(c.Aliases),
		Description: c.Description,
		Children:    make([]*Command, 0, len(c.Children)),
	}
	for _, child := range c.Children {
		out.Children = append(out.Children, child.clone())
	}
	return out
}

// Option describes a named argument. Options that do not take a value are
// flags.
type Option struct {
	// Name is the canonical name used as the key in Result.Options and
	// Result.Flags: the primary alias without its leading dashes.
	Name string
	// Aliases are the dashed spellings that select the option, primary first
	// (e.g. "--precision", "-p").
	Aliases     []string
	TakesValue  bool
	Placeholder string // e.g. "p" for "--precision <p>"
	Description string
}

// IsFlag reports whether o is a boolean option.
func (o *Option) IsFlag() bool {
	return !o.TakesValue
}

func (o *Option) clone() *Option {
	cp := *o
	cp.Aliases = slices.Clone(o.Aliases)
	return &cp
}

// Spec is an immutable command and option tree. Build one with a Builder.
// A Spec is safe for concurrent use.
type Spec struct {
	root    *Command
	options []*Option
	byAlias map[string]*Option
}

// Commands returns the top-level commands in declaration order.
// The returned nodes must not be modified.
func (s *Spec) Commands() []*Command {
	if s == nil || s.root == nil {
		return nil
	}
	return s.root.Children
}

// Options returns the declared options in declaration order.
// The returned values must not be modified.
func (s *Spec) Options() []*Option {
	if s == nil {
		return nil
	}
	return s.options
}

// LookupOption returns the option selected by the exact dashed alias.
func (s *Spec) LookupOption(alias string) (*Option, bool) {
	if s == nil {
		return nil, false
	}
	o, ok := s.byAlias[alias]
	return o, ok
}

// LookupCommand resolves a path of command names or aliases from the root.
func (s *Spec) LookupCommand(path ...string) (*Command, bool) {
	if s == nil || s.root == nil || len(path) == 0 {
		return nil, false
	}
	cur := s.root
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Builder accumulates command and option declarations and produces a Spec.
// Every Add method validates its input immediately and returns a *SpecError
// on conflicts, leaving the builder unchanged.
type Builder struct {
	root    *Command
	options []*Option
	byAlias map[string]*Option
	byName  map[string]*Option
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		root:    &Command{},
		byAlias: make(map[string]*Option),
		byName:  make(map[string]*Option),
	}
}

// AddCommand declares the command at path. Path elements are command names
// from the root; missing intermediate commands are created without a
// description. Aliases apply to the last element.
func (b *Builder) AddCommand(path []string, aliases []string, desc string) error {
	row := strings.Join(path, " ")
	if len(path) == 0 {
		return &SpecError{Row: row, Reason: "empty command path"}
	}
	segs := make([][]string, len(path))
	for i, name := range path {
		segs[i] = []string{name}
	}
	segs[len(segs)-1] = append(segs[len(segs)-1], aliases...)
	return b.addCommandSegments(row, segs, desc)
}

// AddCommandRow declares a command using the table syntax
//
//	name[|alias...] [nested[|alias...]]...
//
// For example "sum mult|m" declares "mult" (alias "m") under "sum".
func (b *Builder) AddCommandRow(row, desc string) error {
	fields := strings.Fields(row)
	if len(fields) == 0 {
		return &SpecError{Row: row, Reason: "empty command"}
	}
	segs := make([][]string, len(fields))
	for i, f := range fields {
		segs[i] = strings.Split(f, "|")
	}
	return b.addCommandSegments(row, segs, desc)
}

// addCommandSegments walks segs from the root, creating nodes as needed.
// Each segment is a canonical name followed by aliases.
func (b *Builder) addCommandSegments(row string, segs [][]string, desc string) error {
	for _, seg := range segs {
		for _, name := range seg {
			if err := validateCommandName(name); err != nil {
				return &SpecError{Row: row, Reason: err.Error()}
			}
		}
	}
	// Validate the whole row against a copy so a failure leaves b untouched.
	root := b.root.clone()
	cur := root
	for _, seg := range segs {
		next, err := ensureChild(cur, seg[0], seg[1:])
		if err != nil {
			return &SpecError{Row: row, Reason: err.Error()}
		}
		cur = next
	}
	if desc != "" {
		cur.Description = desc
	}
	b.root = root
	return nil
}

// ensureChild returns the child of parent selected by name, creating it if
// needed, and attaches aliases to it.
func ensureChild(parent *Command, name string, aliases []string) (*Command, error) {
	node := parent.Child(name)
	if node != nil && node.Name != name {
		return nil, fmt.Errorf("alias %q already used by command %q", name, node.Name)
	}
	if node == nil {
		node = &Command{Name: name}
		parent.Children = append(parent.Children, node)
	}
	for _, alias := range aliases {
		if node.Matches(alias) {
			continue
		}
		if other := parent.Child(alias); other != nil {
			return nil, fmt.Errorf("alias %q already used by command %q", alias, other.Name)
		}
		node.Aliases = append(node.Aliases, alias)
	}
	return node, nil
}

func validateCommandName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty command name")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("command %q must not start with '-'", name)
	case strings.ContainsAny(name, " \t\n|="):
		return fmt.Errorf("command %q contains an invalid character", name)
	}
	return nil
}

// AddOption declares an option. name is the canonical name without dashes.
// When aliases is empty the option is selected by --name (or -n for a
// single-character name).
func (b *Builder) AddOption(name string, aliases []string, takesValue bool, desc string) error {
	return b.addOption(strings.Join(aliases, "|"), &Option{
		Name:        name,
		Aliases:     slices.Clone(aliases),
		TakesValue:  takesValue,
		Description: desc,
	})
}

// AddOptionRow declares an option using the table syntax
//
//	--long[|-s...] [<placeholder>]
//
// The presence of a <placeholder> is the only signal that the option takes a
// value. The canonical name is the first alias without its dashes.
func (b *Builder) AddOptionRow(row, desc string) error {
	fields := strings.Fields(row)
	if len(fields) == 0 {
		return &SpecError{Row: row, Reason: "empty option"}
	}
	o := &Option{Description: desc}
	for i, f := range fields {
		if strings.HasPrefix(f, "<") && strings.HasSuffix(f, ">") && len(f) >= 2 {
			if o.TakesValue {
				return &SpecError{Row: row, Reason: "more than one value placeholder"}
			}
			if i != len(fields)-1 {
				return &SpecError{Row: row, Reason: "placeholder must be the last field"}
			}
			o.TakesValue = true
			o.Placeholder = f[1 : len(f)-1]
			continue
		}
		o.Aliases = append(o.Aliases, strings.Split(f, "|")...)
	}
	if len(o.Aliases) == 0 {
		return &SpecError{Row: row, Reason: "no option name"}
	}
	o.Name = strings.TrimLeft(o.Aliases[0], "-")
	return b.addOption(row, o)
}

func (b *Builder) addOption(row string, o *Option) error {
	if o.Name == "" || strings.HasPrefix(o.Name, "-") || strings.ContainsAny(o.Name, " \t\n|=") {
		return &SpecError{Row: row, Reason: fmt.Sprintf("invalid option name %q", o.Name)}
	}
	if len(o.Aliases) == 0 {
		if len(o.Name) == 1 {
			o.Aliases = []string{"-" + o.Name}
		} else {
			o.Aliases = []string{"--" + o.Name}
		}
	}
	if _, dup := b.byName[o.Name]; dup {
		return &SpecError{Row: row, Reason: fmt.Sprintf("option %q declared twice", o.Name)}
	}
	seen := make(map[string]bool, len(o.Aliases))
	for _, alias := range o.Aliases {
		if err := validateOptionAlias(alias); err != nil {
			return &SpecError{Row: row, Reason: err.Error()}
		}
		if other, dup := b.byAlias[alias]; dup {
			return &SpecError{Row: row, Reason: fmt.Sprintf("alias %s already used by option %q", alias, other.Name)}
		}
		if seen[alias] {
			return &SpecError{Row: row, Reason: fmt.Sprintf("alias %s repeated", alias)}
		}
		seen[alias] = true
	}
	b.options = append(b.options, o)
	b.byName[o.Name] = o
	for _, alias := range o.Aliases {
		b.byAlias[alias] = o
	}
	return nil
}

func validateOptionAlias(alias string) error {
	switch {
	case !strings.HasPrefix(alias, "-"):
		return fmt.Errorf("option alias %q must start with '-'", alias)
	case alias == "-" || alias == restSeparator:
		return fmt.Errorf("option alias %q is reserved", alias)
	case strings.ContainsAny(alias, " \t\n|="):
		return fmt.Errorf("option alias %q contains an invalid character", alias)
	case isCombinedShort(alias):
		// Normalize would split it into single-letter flags.
		return fmt.Errorf("option alias %q is unreachable: use --%s or a single letter", alias, alias[1:])
	}
	return nil
}

// HasOption reports whether an option with canonical name is declared.
func (b *Builder) HasOption(name string) bool {
	_, ok := b.byName[name]
	return ok
}

// HasAlias reports whether alias already selects an option.
func (b *Builder) HasAlias(alias string) bool {
	_, ok := b.byAlias[alias]
	return ok
}

// Spec returns an immutable snapshot of the declarations so far. Later calls
// to Add methods do not affect a returned Spec.
func (b *Builder) Spec() *Spec {
	s := &Spec{
		root:    b.root.clone(),
		options: make([]*Option, 0, len(b.options)),
		byAlias: make(map[string]*Option, len(b.byAlias)),
	}
	for _, o := range b.options {
		cp := o.clone()
		s.options = append(s.options, cp)
		for _, alias := range cp.Aliases {
			s.byAlias[alias] = cp
		}
	}
	return s
}

func (b *Builder) clone() *Builder {
	out := NewBuilder()
	out.root = b.root.clone()
	for _, o := range b.options {
		cp := o.clone()
		out.options = append(out.options, cp)
		out.byName[cp.Name] = cp
		for _, alias := range cp.Aliases {
			out.byAlias[alias] = cp
		}
	}
	return out
}

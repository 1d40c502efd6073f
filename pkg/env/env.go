// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env writes shell variable assignments that can be evaluated by a
// POSIX shell.
package env

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"
)

// Var is a single NAME=value assignment.
type Var struct {
	Name  string
	Value string
}

// Struct returns one Var per field of e carrying an `env:"NAME"` tag. Fields
// tagged `env:"NAME,omitempty"` are skipped when zero. String slices are
// joined with single spaces.
func Struct(e any) []Var {
	re := reflect.ValueOf(e)
	if re.Kind() == reflect.Pointer {
		re = re.Elem()
	}
	ret := re.Type()
	var vars []Var
	for i := 0; i < re.NumField(); i++ {
		field := re.Field(i)
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		name, opt, _ := strings.Cut(tag, ",")
		if opt == "omitempty" && field.IsZero() {
			continue
		}
		var value string
		if ss, ok := field.Interface().([]string); ok {
			value = strings.Join(ss, " ")
		} else {
			value = fmt.Sprint(field.Interface())
		}
		vars = append(vars, Var{Name: name, Value: value})
	}
	return vars
}

// Name builds a variable name from parts, upper-casing letters and replacing
// every other character with an underscore.
func Name(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('_')
		}
		for _, r := range p {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteByte('_')
			}
		}
	}
	return b.String()
}

// Quote single-quotes s for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Write writes vars to o, one NAME='value' line each.
func Write(o io.Writer, vars []Var) error {
	for _, v := range vars {
		if _, err := fmt.Fprintf(o, "%s=%s\n", v.Name, Quote(v.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/creachadair/jsonfix/ast"
)

// Render formats a document model as text according to cfg. It renders in
// one of four ways: compact (the default), space-padded, pretty-printed, or
// preserved, which replays the whitespace captured by the parser and keeps
// only the structural repairs. Rendering itself cannot currently fail; the
// error result carries the *FormatError taxonomy for callers that treat
// rendering uniformly with parsing.
func Render(v ast.Value, cfg Config) (string, error) {
	var sb strings.Builder
	f := formatter{cfg: cfg}
	f.value(&sb, v, 0)
	return sb.String(), nil
}

type formatter struct {
	cfg Config
}

func (f formatter) value(sb *strings.Builder, v ast.Value, depth int) {
	switch t := v.(type) {
	case ast.Null:
		sb.WriteString("null")
	case ast.Bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case ast.Number:
		sb.WriteString(string(t))
	case ast.String:
		sb.WriteByte('"')
		sb.WriteString(string(t))
		sb.WriteByte('"')
	case *ast.Array:
		if f.cfg.Preserve {
			f.arrayPreserved(sb, t, depth)
		} else {
			f.array(sb, t, depth)
		}
	case *ast.Object:
		if f.cfg.Preserve {
			f.objectPreserved(sb, t, depth)
		} else {
			f.object(sb, t, depth)
		}
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f formatter) array(sb *strings.Builder, a *ast.Array, depth int) {
	entries := realEntries(a.Entries)
	if len(entries) == 0 {
		sb.WriteString("[]")
		return
	}

	sb.WriteByte('[')
	f.breakLine(sb)
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
			f.breakLine(sb)
		}
		f.indent(sb, depth+1)
		f.value(sb, e.Value, depth+1)
	}
	f.breakLine(sb)
	f.indent(sb, depth)
	sb.WriteByte(']')
}

func (f formatter) object(sb *strings.Builder, o *ast.Object, depth int) {
	entries := realEntries(o.Entries)
	if len(entries) == 0 {
		sb.WriteString("{}")
		return
	}
	if f.cfg.SortKeys {
		sortEntries(entries)
	}

	sb.WriteByte('{')
	f.breakLine(sb)
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
			f.breakLine(sb)
		}
		f.indent(sb, depth+1)
		sb.WriteByte('"')
		sb.WriteString(e.Key)
		sb.WriteByte('"')
		sb.WriteByte(':')
		if f.cfg.spaceBetween() || f.cfg.spaceAfterKey() || f.cfg.beautify() {
			sb.WriteByte(' ')
		}
		f.value(sb, e.Value, depth+1)
	}
	f.breakLine(sb)
	f.indent(sb, depth)
	sb.WriteByte('}')
}

// breakLine writes the separator padding between elements: a newline when
// pretty-printing, a single space when space padding, otherwise nothing.
func (f formatter) breakLine(sb *strings.Builder) {
	if f.cfg.beautify() {
		sb.WriteByte('\n')
	}
	if f.cfg.spaceBetween() {
		sb.WriteByte(' ')
	}
}

func (f formatter) indent(sb *strings.Builder, depth int) {
	if !f.cfg.beautify() {
		return
	}
	unit := f.cfg.IndentStyle.unit(f.cfg.IndentSize)
	for i := 0; i < depth; i++ {
		sb.WriteString(unit)
	}
}

func (f formatter) arrayPreserved(sb *strings.Builder, a *ast.Array, depth int) {
	if len(a.Entries) == 0 {
		sb.WriteString("[]")
		return
	}

	sb.WriteByte('[')
	var n int
	for _, e := range a.Entries {
		if e.Value != nil {
			if n > 0 {
				// The separator goes ahead of the captured whitespace so it
				// stays on the same line as the value it follows.
				sb.WriteByte(',')
			}
			n++
		}
		sb.WriteString(e.SpaceBeforeValue)
		if e.Value != nil {
			f.value(sb, e.Value, depth+1)
		}
		sb.WriteString(e.SpaceAfterValue)
	}
	sb.WriteByte(']')
}

func (f formatter) objectPreserved(sb *strings.Builder, o *ast.Object, depth int) {
	entries := spliceEntries(o.Entries, f.cfg.SortKeys)
	if len(entries) == 0 {
		sb.WriteString("{}")
		return
	}

	var body strings.Builder
	for _, e := range entries {
		if e.Value == nil {
			body.WriteString(e.SpaceBeforeKey)
			body.WriteString(e.SpaceAfterKey)
			continue
		}
		body.WriteString(e.SpaceBeforeKey)
		body.WriteByte('"')
		body.WriteString(e.Key)
		body.WriteByte('"')
		body.WriteString(e.SpaceAfterKey)
		body.WriteByte(':')
		body.WriteString(e.SpaceBeforeValue)
		f.value(&body, e.Value, depth+1)

		// Keep the comma attached to the line its value ends on: if the
		// trailing run breaks the line, the comma goes before it.
		if strings.ContainsRune(e.SpaceAfterValue, '\n') {
			body.WriteByte(',')
			body.WriteString(e.SpaceAfterValue)
		} else {
			body.WriteString(e.SpaceAfterValue)
			body.WriteByte(',')
		}
	}

	sb.WriteByte('{')
	sb.WriteString(trimLastComma(body.String()))
	sb.WriteByte('}')
}

// trimLastComma removes the comma left after the final entry, scanning
// backward past any trailing whitespace.
func trimLastComma(s string) string {
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			continue
		}
		if rs[i] == ',' {
			return string(rs[:i]) + string(rs[i+1:])
		}
		break
	}
	return s
}

// realEntries returns the entries that carry a value, in order.
func realEntries(entries []*ast.Entry) []*ast.Entry {
	out := make([]*ast.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Value != nil {
			out = append(out, e)
		}
	}
	return out
}

// sortEntries orders entries by key, ascending. The sort is stable so that
// duplicate keys keep their source order.
func sortEntries(entries []*ast.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}

// spliceEntries prepares object entries for preserved rendering: defect
// entries are dropped, except that a defect in the first or last source
// position is kept there so the whitespace inside the braces survives a
// key sort.
func spliceEntries(entries []*ast.Entry, sortKeys bool) []*ast.Entry {
	var first, last *ast.Entry
	if len(entries) > 0 && entries[0].Value == nil {
		first = entries[0]
	}
	if len(entries) > 1 && entries[len(entries)-1].Value == nil {
		last = entries[len(entries)-1]
	}

	real := realEntries(entries)
	if sortKeys {
		sortEntries(real)
	}

	out := make([]*ast.Entry, 0, len(real)+2)
	if first != nil {
		out = append(out, first)
	}
	out = append(out, real...)
	if last != nil {
		out = append(out, last)
	}
	return out
}

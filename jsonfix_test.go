// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsonfix"
	"github.com/tailscale/hujson"
)

// checkFix verifies that fn repairs input into want, that the output is
// accepted by an independent JSON parser, and that a second pass over the
// output is a fixed point.
func checkFix(t *testing.T, fn func(string) (string, error), input, want string) {
	t.Helper()
	got, err := fn(input)
	if err != nil {
		t.Errorf("Input: %#q: unexpected error: %v", input, err)
		return
	}
	if got != want {
		t.Errorf("Input: %#q\n got: %#q\nwant: %#q", input, got, want)
	}
	if _, err := hujson.Parse([]byte(got)); err != nil {
		t.Errorf("Input: %#q: output %#q is not valid JSON: %v", input, got, err)
	}
	again, err := fn(got)
	if err != nil {
		t.Errorf("Refix %#q: unexpected error: %v", got, err)
	} else if again != got {
		t.Errorf("Refix %#q: got %#q, want it unchanged", got, again)
	}
}

func TestFix(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		// Well-formed input passes through, compacted.
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`  { }  `, `{}`},
		{`null`, `null`},
		{`{"name": "John", "age": 30}`, `{"name":"John","age":30}`},
		{`[1, [2, [3]], {"a": {"b": null}}]`, `[1,[2,[3]],{"a":{"b":null}}]`},

		// Unquoted and single-quoted keys.
		{`{name: "John", age: 30}`, `{"name":"John","age":30}`},
		{`{'name': 'John'}`, `{"name":"John"}`},
		{`{_id9: 1}`, `{"_id9":1}`},

		// Single-quoted values.
		{`['it', "mixed"]`, `["it","mixed"]`},
		{`'top'`, `"top"`},

		// Trailing and repeated commas.
		{`{"a": 1,}`, `{"a":1}`},
		{`[1,2,3,]`, `[1,2,3]`},
		{`[1,,,2]`, `[1,2]`},
		{`[ ,1]`, `[1]`},
		{`[,]`, `[]`},
		{`{,}`, `{}`},

		// Missing commas between members.
		{`{"name": "John" "age": 30 "id": 0 }`, `{"name":"John","age":30,"id":0}`},
		{`[1 2 3]`, `[1,2,3]`},
		{`[[1]2]`, `[[1],2]`},

		// Lenient number forms are normalized.
		{`[.5, 7., +2, 1e5]`, `[0.5,7,2,1e5]`},
		{`.5`, `0.5`},
		{`[-0.001E-100]`, `[-0.001E-100]`},

		// Constants.
		{`[true, false, null]`, `[true,false,null]`},

		// Containers left open at end of input are closed.
		{`{"a":[1,2`, `{"a":[1,2]}`},
		{`[{"a":1`, `[{"a":1}]`},

		// Duplicate keys are kept in order.
		{`{"a":1,"a":2}`, `{"a":1,"a":2}`},

		{`"Aé"`, `"Aé"`},

		// Mixed repairs in one document.
		{`{a: [1, {b: 'x',},],}`, `{"a":[1,{"b":"x"}]}`},
	}
	for _, test := range tests {
		checkFix(t, jsonfix.Fix, test.input, test.want)
	}
}

func TestFixStringEscapes(t *testing.T) {
	// Escape sequences are decoded into the output and only quotation
	// marks are re-escaped, so a "\n" in the input comes out as a literal
	// newline. The result still round-trips through another fix.
	const input = `"Hello \"hello\nnew line\" "`
	const want = "\"Hello \\\"hello\nnew line\\\" \""

	got, err := jsonfix.Fix(input)
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	if got != want {
		t.Errorf("Fix: got %#q, want %#q", got, want)
	}
	again, err := jsonfix.Fix(got)
	if err != nil {
		t.Fatalf("Refix failed: %v", err)
	}
	if again != got {
		t.Errorf("Refix: got %#q, want it unchanged", again)
	}
}

func TestFixErrors(t *testing.T) {
	tests := []string{
		``,
		`   `,
		`"abc`,
		`@`,
		`hello`,
		`{"a"}`,
		`{"a":}`,
		`{1: 2}`,
		`{} x`,
		`--123`,
		`1.2.3`,
	}
	for _, input := range tests {
		got, err := jsonfix.Fix(input)
		if err == nil {
			t.Errorf("Input: %#q: got %#q, want error", input, got)
			continue
		}
		if _, ok := err.(*jsonfix.SyntaxError); !ok {
			t.Errorf("Input: %#q: got error %v, want *SyntaxError", input, err)
		}
	}
}

func TestFixPreserve(t *testing.T) {
	fix := func(input string) (string, error) {
		return jsonfix.FixWithConfig(input, jsonfix.Config{Preserve: true})
	}
	tests := []struct {
		input, want string
	}{
		// Already-clean layout is reproduced byte for byte.
		{`{   }`, `{   }`},
		{`[ 1, 2 ]`, `[ 1, 2 ]`},
		{"{\n  \"a\": 1,\n  \"b\": 2\n}", "{\n  \"a\": 1,\n  \"b\": 2\n}"},

		// Trailing commas are removed, the layout kept.
		{
			"{\n  \"a\": 1,\n  \"b\": [1, 2,],\n}",
			"{\n  \"a\": 1,\n  \"b\": [1, 2]\n}",
		},

		// A missing comma is inserted ahead of the line break.
		{
			"{\n  \"a\": 1\n  \"b\": 2\n}",
			"{\n  \"a\": 1,\n  \"b\": 2\n}",
		},

		// Key repairs apply, whitespace survives.
		{`{ a:1 }`, `{ "a":1 }`},
		{`{ 'a' : 1 }`, `{ "a" : 1 }`},
	}
	for _, test := range tests {
		checkFix(t, fix, test.input, test.want)
	}
}

func TestFixPreserveSorted(t *testing.T) {
	fix := func(input string) (string, error) {
		return jsonfix.FixWithConfig(input, jsonfix.Config{Preserve: true, SortKeys: true})
	}
	got, err := fix(`{ b:1, a:2 }`)
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	// The whitespace stays attached to its entry through the sort.
	const want = `{ "a":2 , "b":1}`
	if got != want {
		t.Errorf("Fix: got %#q, want %#q", got, want)
	}
}

func TestFixSpaceBetween(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`{"a":1,"b":[1,2]}`, `{ "a": 1, "b": [ 1, 2 ] }`},
		{`[1]`, `[ 1 ]`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`{a:1,}`, `{ "a": 1 }`},
	}
	for _, test := range tests {
		checkFix(t, jsonfix.FixSpaceBetween, test.input, test.want)
	}
}

func TestFixPretty(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{
			`{"a":1,"b":[1,2]}`,
			"{\n    \"a\": 1,\n    \"b\": [\n        1,\n        2\n    ]\n}",
		},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`1`, `1`},
		{`[{}]`, "[\n    {}\n]"},
	}
	for _, test := range tests {
		checkFix(t, jsonfix.FixPretty, test.input, test.want)
	}
}

func TestFixSorted(t *testing.T) {
	got, err := jsonfix.FixWithConfig(`{"b":1,"a":[{"d":1,"c":2}]}`, jsonfix.Config{SortKeys: true})
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	const want = `{"a":[{"c":2,"d":1}],"b":1}`
	if got != want {
		t.Errorf("Fix: got %#q, want %#q", got, want)
	}
}

func TestFixSpaceAfterKey(t *testing.T) {
	got, err := jsonfix.FixWithConfig(`{a:1,b:{c:2}}`, jsonfix.Config{SpaceAfterKey: true})
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	const want = `{"a": 1,"b": {"c": 2}}`
	if got != want {
		t.Errorf("Fix: got %#q, want %#q", got, want)
	}
}

func TestFixCommaRuns(t *testing.T) {
	// Any number of stray commas collapses without residue.
	for _, reps := range []int{1, 5, 50} {
		input := "[1,2,3" + strings.Repeat(",", reps) + "]"
		got, err := jsonfix.Fix(input)
		if err != nil {
			t.Fatalf("Fix %#q: unexpected error: %v", input, err)
		}
		if got != `[1,2,3]` {
			t.Errorf("Fix %#q: got %#q, want [1,2,3]", input, got)
		}
	}
}

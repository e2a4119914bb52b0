// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jsonfix repairs malformed JSON text.
//
// # Fixing
//
// The Fix function accepts a string of (possibly malformed) JSON and returns
// a repaired rendering of it, or reports an error of concrete type
// *SyntaxError if no repair is possible:
//
//	out, err := jsonfix.Fix(`{name: 'Alice', age: 30,}`)
//	if err != nil {
//	   log.Fatalf("Fix failed: %v", err)
//	}
//	// out == `{"name":"Alice","age":30}`
//
// The repairs cover unquoted and single-quoted object keys, single-quoted
// string values, missing commas between members, runs of stray or trailing
// commas, unclosed objects and arrays at end of input, and lenient numeric
// forms such as ".5", "7.", and "+2". Input that cannot be given a JSON
// structure at all, such as an unterminated string or a bare word in value
// position, is an error; Fix never returns a partial result.
//
// # Layout
//
// Fix renders its result compactly. The other layouts are selected with a
// Config, either through a preset or explicitly via FixWithConfig:
//
//	jsonfix.FixPretty(input)        // one element per line, indented
//	jsonfix.FixSpaceBetween(input)  // one line, space-padded punctuation
//
//	jsonfix.FixWithConfig(input, jsonfix.Config{
//	   Preserve: true,  // keep the original whitespace, repairs only
//	})
//
// Under Preserve, the whitespace between tokens is replayed verbatim and
// only the defects are removed, so a hand-formatted file keeps its shape.
//
// # Scanning and parsing
//
// The underlying machinery is exported for callers that want more than a
// string in and a string out. The Scanner type is a lexical scanner for the
// lenient grammar; its Next method returns one Token at a time and io.EOF at
// the end of input. The Parser type consumes a scanner and builds an
// ast.Value, recording the whitespace around each element; Render formats a
// value according to a Config.
package jsonfix

// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

// Fix repairs the JSON text in input and renders it compactly, with no
// whitespace between tokens. If the input cannot be repaired, Fix reports an
// error of concrete type *SyntaxError and returns no output.
func Fix(input string) (string, error) {
	return FixWithConfig(input, Config{})
}

// FixWithConfig repairs the JSON text in input and renders it according to
// cfg. If the input cannot be repaired, FixWithConfig reports an error of
// concrete type *SyntaxError and returns no output.
func FixWithConfig(input string, cfg Config) (string, error) {
	v, err := NewParser(input).Parse()
	if err != nil {
		return "", err
	}
	return Render(v, cfg)
}

// FixPretty repairs the JSON text in input and pretty-prints it, one element
// per line, indented four spaces per level.
func FixPretty(input string) (string, error) {
	return FixWithConfig(input, Config{
		Beautify:    true,
		IndentStyle: Spaces,
		IndentSize:  4,
	})
}

// FixSpaceBetween repairs the JSON text in input and renders it on one line
// with a single space padding the structural punctuation.
func FixSpaceBetween(input string) (string, error) {
	return FixWithConfig(input, Config{SpaceBetween: true})
}

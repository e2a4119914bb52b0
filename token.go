// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import "fmt"

// Kind is the type of a lexical token in the (lenient) JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string, single or double
	Number              // number, kept as raw text
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	Space               // a maximal run of whitespace
	Ident               // a bare identifier used as an unquoted key
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
	Space:   "whitespace",
	Ident:   "identifier",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token together with its source position.
//
// For String tokens, Text is the decoded content without the enclosing
// quotation marks. For Number tokens, Text is the original digit, sign, and
// exponent text (after lenient normalization), not a converted value, so
// representations like "1e5" survive rendering unchanged. For Space and
// Ident tokens, Text is the verbatim source run.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case Number:
		return fmt.Sprintf("number %s", t.Text)
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case Space:
		return "whitespace"
	default:
		return t.Kind.String()
	}
}

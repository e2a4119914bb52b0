// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import "fmt"

// SyntaxKind enumerates the lexical and structural faults that abort a fix.
type SyntaxKind int

// Constants defining the valid SyntaxKind values.
const (
	UnexpectedCharacter  SyntaxKind = 1 + iota // a rune outside the recognized lexical classes
	UnmatchedQuotes                            // a string literal not closed before end of input
	UnexpectedEndOfInput                       // input ended while a key, colon, or value was required
	UnexpectedToken                            // a token where the grammar forbids it
	InvalidNumber                              // numeric text that does not parse as a float64
	MissingComma                               // reserved; separators are currently repaired, not reported
)

// A SyntaxError reports a fault found while tokenizing or parsing input.
// Errors of this type are fatal: the first one encountered aborts the fix
// with no partial result.
type SyntaxError struct {
	Kind  SyntaxKind
	Token string // text of the offending token or character, if any
	Pos   Position
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q at %s", e.Token, e.Pos)
	case UnmatchedQuotes:
		return fmt.Sprintf("unmatched quotes at %s", e.Pos)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("unexpected end of input at %s", e.Pos)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s at %s", e.Token, e.Pos)
	case InvalidNumber:
		return fmt.Sprintf("invalid number %q at %s", e.Token, e.Pos)
	case MissingComma:
		return fmt.Sprintf("missing comma at %s", e.Pos)
	default:
		return fmt.Sprintf("syntax error at %s", e.Pos)
	}
}

// FormatKind enumerates faults detectable while rendering output.
type FormatKind int

// Constants defining the valid FormatKind values.
const (
	LineTooLong   FormatKind = 1 + iota // a rendered line exceeds a configured maximum
	InvalidIndent                       // indentation inconsistent with the configuration
)

// A FormatError reports a fault found while rendering a document. No current
// rendering mode produces one; the type exists so callers can distinguish
// formatter faults from syntax faults.
type FormatError struct {
	Kind        FormatKind
	Line        int
	Length, Max int
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case LineTooLong:
		return fmt.Sprintf("line %d is too long: length %d exceeds %d", e.Line, e.Length, e.Max)
	case InvalidIndent:
		return fmt.Sprintf("invalid indentation at line %d", e.Line)
	default:
		return fmt.Sprintf("format error at line %d", e.Line)
	}
}

// A BridgeError wraps a failure from the strict encoder or decoder used by
// Marshal and Unmarshal.
type BridgeError struct {
	Err error
}

func (e *BridgeError) Error() string { return fmt.Sprintf("codec: %v", e.Err) }

// Unwrap supports error wrapping.
func (e *BridgeError) Unwrap() error { return e.Err }

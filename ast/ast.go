// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the document model built by the jsonfix parser.
package ast

// A Value is a node in the document model. The concrete type is one of Null,
// Bool, Number, String, *Array, or *Object. The set is closed; the renderer
// switches exhaustively over it.
type Value interface {
	isValue()
}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value, kept as its normalized source text so that
// the chosen representation (exponent, sign, decimals) survives rendering.
type Number string

// A String is a string value. The text is the decoded content with interior
// double quotation marks re-escaped, ready to be wrapped in quotes.
type String string

// An Array is an ordered sequence of entries.
type Array struct {
	Entries []*Entry
}

// An Object is an ordered sequence of key-value entries.
type Object struct {
	Entries []*Entry
}

// An Entry is one slot in an array or object, together with the whitespace
// runs that surrounded it in the source. A nil Value marks a defect slot: an
// empty position left behind by a stray comma, an unclosed container, or a
// trailing separator. Defect slots exist only to carry whitespace through
// preserved rendering and are dropped from every other mode.
//
// The key fields are used only for object entries. Key holds the decoded
// content of a quoted key, or the verbatim text of a bare one; either way it
// is wrapped in double quotes when rendered.
type Entry struct {
	SpaceBeforeKey   string
	Key              string
	SpaceAfterKey    string
	SpaceBeforeValue string
	Value            Value
	SpaceAfterValue  string
}

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import "fmt"

// A Position describes the location of a token or an error in source text.
// Positions are advanced one rune at a time; a newline increments Line and
// resets Column, so the newline itself occupies the first column of the new
// line. Positions are diagnostic only and never affect what is parsed.
type Position struct {
	Line   int // line number, 1-based
	Column int // column offset in the line
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

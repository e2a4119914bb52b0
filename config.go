// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import "strings"

// IndentStyle selects the character used for one level of indentation.
type IndentStyle int

// Constants defining the valid IndentStyle values.
const (
	Spaces IndentStyle = iota // indent with IndentSize spaces per level
	Tabs                      // indent with one tab per level
)

// unit returns the text of one indentation level.
func (s IndentStyle) unit(size int) string {
	if s == Tabs {
		return "\t"
	}
	return strings.Repeat(" ", size)
}

// A Config carries the rendering and repair settings for a fix. The zero
// value renders compact output. A Config is never modified by the fixer, so
// one value may serve any number of concurrent calls.
//
// Some settings suppress others: Preserve reproduces the source layout and
// so disables SpaceBetween, SpaceAfterKey, and Beautify, and SpaceBetween
// subsumes SpaceAfterKey. Suppression is evaluated where the settings are
// used; the fields themselves keep whatever was set, so a caller can always
// inspect the requested configuration.
type Config struct {
	Preserve      bool        // reproduce the original layout, removing only defects
	SpaceBetween  bool        // pad punctuation with single spaces, on one line
	SpaceAfterKey bool        // put one space after the colon of each key
	Beautify      bool        // pretty-print with one element per line
	IndentStyle   IndentStyle // character used for indentation under Beautify
	IndentSize    int         // spaces per indentation level under Beautify
	SortKeys      bool        // render object keys in ascending order
}

func (c Config) spaceBetween() bool { return c.SpaceBetween && !c.Preserve }

func (c Config) spaceAfterKey() bool {
	return c.SpaceAfterKey && !c.Preserve && !c.SpaceBetween
}

func (c Config) beautify() bool { return c.Beautify && !c.Preserve }

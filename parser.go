// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import (
	"io"
	"strconv"

	"github.com/creachadair/jsonfix/ast"
	"github.com/creachadair/jsonfix/internal/escape"

	"go4.org/mem"
)

// A Parser consumes tokens from a Scanner and builds a document model,
// repairing structural defects as it goes. It keeps a single token of
// lookahead and never backtracks.
//
// Repairs are structural, not error-driven: runs of commas collapse, missing
// separators between values are accepted, bare identifiers and single-quoted
// strings are accepted as object keys, and an unclosed container is closed
// at end of input. Whitespace between structural positions is captured into
// the adjacent entry so preserved rendering can replay it. Only input that
// cannot be given a structure at all reports a *SyntaxError.
type Parser struct {
	sc  *Scanner
	tok Token
	eof bool
}

// NewParser constructs a parser that consumes input.
func NewParser(input string) *Parser {
	return &Parser{sc: NewScanner(input)}
}

// Parse parses a single top-level value from the input. Whitespace may
// precede and follow the value; any other trailing token is an error.
func (p *Parser) Parse() (ast.Value, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.eof && p.tok.Kind == Space {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	before, wasEOF := p.tok, p.eof
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.consumeValueToken(before, wasEOF); err != nil {
		return nil, err
	}

	for !p.eof {
		if p.tok.Kind != Space {
			return nil, &SyntaxError{Kind: UnexpectedToken, Token: p.tok.String(), Pos: p.tok.Pos}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (p *Parser) advance() error {
	tok, err := p.sc.Next()
	if err == io.EOF {
		p.tok, p.eof = Token{}, true
		return nil
	} else if err != nil {
		return err
	}
	p.tok, p.eof = tok, false
	return nil
}

// parseValue parses the value beginning at the current token. Composite
// values consume through their closing bracket; scalars leave the current
// token in place for the caller to consume.
func (p *Parser) parseValue() (ast.Value, error) {
	if p.eof {
		return nil, &SyntaxError{Kind: UnexpectedEndOfInput, Pos: p.sc.Position()}
	}
	switch p.tok.Kind {
	case LBrace:
		return p.parseObject()
	case LSquare:
		return p.parseArray()
	case String:
		return ast.String(escape.Quotes(mem.S(p.tok.Text))), nil
	case Number:
		if _, err := strconv.ParseFloat(p.tok.Text, 64); err != nil {
			return nil, &SyntaxError{Kind: InvalidNumber, Token: p.tok.Text, Pos: p.tok.Pos}
		}
		return ast.Number(p.tok.Text), nil
	case True:
		return ast.Bool(true), nil
	case False:
		return ast.Bool(false), nil
	case Null:
		return ast.Null{}, nil
	default:
		// Includes a bare identifier, which is legal only as an object key.
		return nil, &SyntaxError{Kind: UnexpectedToken, Token: p.tok.String(), Pos: p.tok.Pos}
	}
}

// parseMemberValue parses the value of an entry and the whitespace after it.
func (p *Parser) parseMemberValue(e *ast.Entry) error {
	before, wasEOF := p.tok, p.eof
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	e.Value = v
	if err := p.consumeValueToken(before, wasEOF); err != nil {
		return err
	}
	if !p.eof && p.tok.Kind == Space {
		e.SpaceAfterValue = p.tok.Text
		return p.advance()
	}
	return nil
}

// consumeValueToken advances past the token of a just-parsed scalar value.
// A scalar parse leaves its token in place, so the lookahead is unchanged
// from before the parse; a composite has already consumed its closing
// bracket and moved on.
func (p *Parser) consumeValueToken(before Token, wasEOF bool) error {
	if p.tok == before && p.eof == wasEOF {
		return p.advance()
	}
	return nil
}

func (p *Parser) parseObject() (ast.Value, error) {
	obj := new(ast.Object)
	if err := p.advance(); err != nil { // consume {
		return nil, err
	}

	for !p.eof {
		e := new(ast.Entry)
		switch p.tok.Kind {
		case RBrace:
			return obj, p.closeContainer()
		case Comma:
			// Collapse runs of commas into nothing.
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case Space:
			e.SpaceBeforeKey = p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		if p.eof {
			// The input ran out before the closing brace. Keep the entry so
			// its whitespace survives, and treat the object as closed.
			obj.Entries = append(obj.Entries, e)
			return obj, nil
		}
		switch p.tok.Kind {
		case RBrace:
			obj.Entries = append(obj.Entries, e)
			return obj, p.closeContainer()
		case Comma:
			obj.Entries = append(obj.Entries, e)
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case String:
			// Interior quotation marks are re-escaped, as for string values.
			e.Key = escape.Quotes(mem.S(p.tok.Text))
			if err := p.advance(); err != nil {
				return nil, err
			}
		case Ident:
			e.Key = p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			return nil, &SyntaxError{Kind: UnexpectedToken, Token: p.tok.String(), Pos: p.tok.Pos}
		}

		if !p.eof && p.tok.Kind == Space {
			e.SpaceAfterKey = p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.eof {
			return nil, &SyntaxError{Kind: UnexpectedEndOfInput, Pos: p.sc.Position()}
		}
		if p.tok.Kind != Colon {
			return nil, &SyntaxError{Kind: UnexpectedToken, Token: p.tok.String(), Pos: p.tok.Pos}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.eof && p.tok.Kind == Space {
			e.SpaceBeforeValue = p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		if err := p.parseMemberValue(e); err != nil {
			return nil, err
		}
		obj.Entries = append(obj.Entries, e)
	}
	return obj, nil
}

func (p *Parser) parseArray() (ast.Value, error) {
	arr := new(ast.Array)
	if err := p.advance(); err != nil { // consume [
		return nil, err
	}

	for !p.eof {
		e := new(ast.Entry)
		switch p.tok.Kind {
		case RSquare:
			return arr, p.closeContainer()
		case Comma:
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case Space:
			e.SpaceBeforeValue = p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		if !p.eof {
			switch p.tok.Kind {
			case RSquare:
				arr.Entries = append(arr.Entries, e)
				return arr, p.closeContainer()
			case Comma:
				arr.Entries = append(arr.Entries, e)
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
		}

		if err := p.parseMemberValue(e); err != nil {
			return nil, err
		}
		arr.Entries = append(arr.Entries, e)
	}
	return arr, nil
}

// closeContainer advances past the closing bracket of a container.
func (p *Parser) closeContainer() error { return p.advance() }

// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/jsonfix/internal/escape"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input string. Each call to Next
// returns the next token, or reports an error. Unlike a strict JSON lexer,
// the scanner accepts single-quoted strings, bare identifiers, whitespace
// runs as tokens of their own, and several lenient number forms.
//
// Number text is normalized while scanning: a leading "+" is dropped, a
// leading "." gains a "0" prefix, and a trailing "." is removed. Beyond
// that, sign, dot, and exponent runes are accumulated greedily without
// validation; the parser is the single point where the accumulated text is
// checked, by converting it to a float64. A "\uXXXX" escape with invalid hex
// digits or an invalid code point is dropped from the decoded string rather
// than reported, matching the repair-oriented posture of the package.
type Scanner struct {
	in  string
	off int // byte offset of the next rune

	line, col int
}

// NewScanner constructs a new lexical scanner that consumes input.
func NewScanner(input string) *Scanner {
	return &Scanner{in: input, line: 1}
}

// Next returns the next token of the input. At the end of the input, Next
// returns io.EOF. Any other error has concrete type *SyntaxError.
func (s *Scanner) Next() (Token, error) {
	ch, ok := s.rune()
	if !ok {
		return Token{}, io.EOF
	}
	pos := s.Position()
	switch {
	case unicode.IsSpace(ch):
		return s.scanSpace(ch, pos), nil
	case ch == '{':
		return Token{Kind: LBrace, Text: "{", Pos: pos}, nil
	case ch == '}':
		return Token{Kind: RBrace, Text: "}", Pos: pos}, nil
	case ch == '[':
		return Token{Kind: LSquare, Text: "[", Pos: pos}, nil
	case ch == ']':
		return Token{Kind: RSquare, Text: "]", Pos: pos}, nil
	case ch == ':':
		return Token{Kind: Colon, Text: ":", Pos: pos}, nil
	case ch == ',':
		return Token{Kind: Comma, Text: ",", Pos: pos}, nil
	case ch == '"' || ch == '\'':
		return s.scanString(ch, pos)
	case isNumStart(ch):
		return s.scanNumber(ch, pos)
	case isIdentStart(ch):
		return s.scanIdent(ch, pos), nil
	default:
		return Token{}, &SyntaxError{Kind: UnexpectedCharacter, Token: string(ch), Pos: pos}
	}
}

// Position returns the position of the most recently consumed rune.
func (s *Scanner) Position() Position { return Position{Line: s.line, Column: s.col} }

func (s *Scanner) rune() (rune, bool) {
	if s.off >= len(s.in) {
		return 0, false
	}
	ch, nb := utf8.DecodeRuneInString(s.in[s.off:])
	s.off += nb
	s.col++
	if ch == '\n' {
		s.line++
		s.col = 1
	}
	return ch, true
}

func (s *Scanner) peek() (rune, bool) {
	if s.off >= len(s.in) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(s.in[s.off:])
	return ch, true
}

func (s *Scanner) scanSpace(first rune, pos Position) Token {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		ch, ok := s.peek()
		if !ok || !unicode.IsSpace(ch) {
			break
		}
		s.rune()
		buf.WriteRune(ch)
	}
	return Token{Kind: Space, Text: buf.String(), Pos: pos}
}

func (s *Scanner) scanString(open rune, pos Position) (Token, error) {
	var buf strings.Builder
	for {
		ch, ok := s.rune()
		if !ok {
			return Token{}, &SyntaxError{Kind: UnmatchedQuotes, Pos: pos}
		}
		if ch == open {
			return Token{Kind: String, Text: escape.Unescape(mem.S(buf.String())), Pos: pos}, nil
		}
		buf.WriteRune(ch)
		if ch != '\\' {
			continue
		}

		// The rune after a backslash is always part of the literal, and a
		// Unicode escape additionally claims the next four runes whatever
		// they are, so a quote inside either does not end the string.
		esc, ok := s.rune()
		if !ok {
			return Token{}, &SyntaxError{Kind: UnmatchedQuotes, Pos: pos}
		}
		buf.WriteRune(esc)
		if esc == 'u' {
			for i := 0; i < 4; i++ {
				h, ok := s.rune()
				if !ok {
					break
				}
				buf.WriteRune(h)
			}
		}
	}
}

func (s *Scanner) scanNumber(first rune, pos Position) (Token, error) {
	var buf strings.Builder
	buf.WriteRune(first)

	if first == '+' || first == '.' {
		// A bare sign or dot needs at least one digit after it.
		ch, ok := s.peek()
		if !ok || !isDigit(ch) {
			return Token{}, &SyntaxError{Kind: InvalidNumber, Token: buf.String(), Pos: pos}
		}
		buf.Reset()
		if first == '.' {
			buf.WriteString("0.")
		}
	}

	var multiDot bool
	for {
		ch, ok := s.peek()
		if !ok || !isNumRune(ch) {
			break
		}
		if first == '.' && ch == '.' {
			multiDot = true
		}
		s.rune()
		buf.WriteRune(ch)
	}
	if multiDot {
		return Token{}, &SyntaxError{Kind: InvalidNumber, Token: buf.String(), Pos: pos}
	}
	text := strings.TrimSuffix(buf.String(), ".")
	return Token{Kind: Number, Text: text, Pos: pos}, nil
}

func (s *Scanner) scanIdent(first rune, pos Position) Token {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		ch, ok := s.peek()
		if !ok || !isIdentRune(ch) {
			break
		}
		s.rune()
		buf.WriteRune(ch)
	}
	switch name := buf.String(); name {
	case "true":
		return Token{Kind: True, Text: name, Pos: pos}
	case "false":
		return Token{Kind: False, Text: name, Pos: pos}
	case "null":
		return Token{Kind: Null, Text: name, Pos: pos}
	default:
		return Token{Kind: Ident, Text: name, Pos: pos}
	}
}

func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch rune) bool { return ch == '+' || ch == '-' || ch == '.' || isDigit(ch) }

func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentRune(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

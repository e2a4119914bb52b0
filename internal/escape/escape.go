// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of lenient JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// Unescape decodes the body of a string literal. The input must have the
// enclosing quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. An unknown
// escape contributes the escaped rune itself, and a "\uXXXX" sequence with
// invalid hex digits or an invalid code point contributes nothing; neither is
// an error. Unescape never fails: a dangling backslash at the end of the
// input cannot occur, because the scanner treats the rune after a backslash
// as part of the literal and reports an unterminated string instead.
func Unescape(src mem.RO) string {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy()
	}

	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			break
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			take := 4
			if src.Len() < take {
				take = src.Len()
			}
			v, err := parseHex(src.SliceTo(take))
			if take == 4 && err == nil && utf8.ValidRune(rune(v)) {
				putRune(rune(v))
			}
			src = src.SliceFrom(take)
		default:
			putRune(r)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return string(dec)
}

// Quotes returns src with each double quotation mark preceded by a
// backslash, so the result can be embedded in a double-quoted literal.
// Other characters are not modified.
func Quotes(src mem.RO) string {
	i := mem.IndexByte(src, '"')
	if i < 0 {
		return src.StringCopy()
	}

	buf := make([]byte, 0, src.Len()+2)
	for {
		buf = mem.Append(buf, src.SliceTo(i))
		buf = append(buf, '\\', '"')
		src = src.SliceFrom(i + 1)
		i = mem.IndexByte(src, '"')
		if i < 0 {
			return string(mem.Append(buf, src))
		}
	}
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, errInvalidHex
		}
	}
	return v, nil
}

var errInvalidHex = errors.New("invalid hex digit")

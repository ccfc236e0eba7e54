// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"codello.dev/codec"
)

// lexer is a one-byte-lookahead tokenizer over a [codec.Reader]. It does not
// tokenize eagerly; callers call its read* methods once they know, from
// context, what kind of value comes next (recursive-descent style).
type lexer struct {
	r   codec.Reader
	buf byte
	has bool
}

func newLexer(r codec.Reader) *lexer { return &lexer{r: r} }

// peek returns the next byte without consuming it. ok is false at end of
// input.
func (l *lexer) peek() (b byte, ok bool, err error) {
	if l.has {
		return l.buf, true, nil
	}
	b, err = l.r.ReadByte()
	if err != nil {
		if err == codec.ErrUnderflow {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.buf, l.has = b, true
	return b, true, nil
}

func (l *lexer) advance() (byte, error) {
	if l.has {
		l.has = false
		return l.buf, nil
	}
	return l.r.ReadByte()
}

func (l *lexer) skipWS() error {
	for {
		b, ok, err := l.peek()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			if _, err := l.advance(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func isSyntaxError(msg string) error {
	return codec.ErrInvalidEncoding(msg, nil)
}

// expect consumes one byte and verifies it equals want.
func (l *lexer) expect(want byte) error {
	b, err := l.advance()
	if err != nil {
		return wrapUnderflow(err)
	}
	if b != want {
		return isSyntaxError("unexpected character '" + string(b) + "', expected '" + string(want) + "'")
	}
	return nil
}

// readLiteral consumes the remaining bytes of lit, having already consumed
// lit[0] via peek-dispatch in the caller.
func (l *lexer) readLiteral(lit string) error {
	for i := 1; i < len(lit); i++ {
		b, err := l.advance()
		if err != nil {
			return wrapUnderflow(err)
		}
		if b != lit[i] {
			return isSyntaxError("invalid literal, expected " + lit)
		}
	}
	return nil
}

// readString consumes a JSON string, including its surrounding quotes, and
// returns its unescaped content. The decoder always treats the result as
// scratch/owned, since this byte-oriented lexer has no stable backing array
// to borrow a substring from.
func (l *lexer) readString() (string, error) {
	if err := l.expect('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		c, err := l.advance()
		if err != nil {
			return "", wrapUnderflow(err)
		}
		if c == '"' {
			return b.String(), nil
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		esc, err := l.advance()
		if err != nil {
			return "", wrapUnderflow(err)
		}
		switch esc {
		case '"', '\\', '/':
			b.WriteByte(esc)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, err := l.readHex4()
			if err != nil {
				return "", err
			}
			if utf16.IsSurrogate(rune(r)) {
				if nb, ok, _ := l.peek(); !ok || nb != '\\' {
					b.WriteRune(utf8.RuneError)
					continue
				}
				l.advance()
				if nb2, err := l.advance(); err != nil || nb2 != 'u' {
					return "", isSyntaxError("invalid surrogate pair escape")
				}
				r2, err := l.readHex4()
				if err != nil {
					return "", err
				}
				combined := utf16.DecodeRune(rune(r), rune(r2))
				b.WriteRune(combined)
				continue
			}
			b.WriteRune(rune(r))
		default:
			return "", isSyntaxError("invalid escape sequence")
		}
	}
}

func (l *lexer) readHex4() (uint16, error) {
	var buf [4]byte
	for i := range buf {
		c, err := l.advance()
		if err != nil {
			return 0, wrapUnderflow(err)
		}
		buf[i] = c
	}
	v, err := strconv.ParseUint(string(buf[:]), 16, 16)
	if err != nil {
		return 0, isSyntaxError("invalid \\u escape")
	}
	return uint16(v), nil
}

// readNumber consumes the raw bytes of a JSON number literal and returns
// them unparsed.
func (l *lexer) readNumber() ([]byte, error) {
	var buf []byte
	accept := func(pred func(byte) bool) bool {
		b, ok, err := l.peek()
		if err != nil || !ok || !pred(b) {
			return false
		}
		l.advance()
		buf = append(buf, b)
		return true
	}
	accept(func(b byte) bool { return b == '-' })
	if !accept(func(b byte) bool { return b == '0' }) {
		for accept(isDigit) {
		}
	}
	if accept(func(b byte) bool { return b == '.' }) {
		for accept(isDigit) {
		}
	}
	if accept(func(b byte) bool { return b == 'e' || b == 'E' }) {
		accept(func(b byte) bool { return b == '+' || b == '-' })
		for accept(isDigit) {
		}
	}
	if len(buf) == 0 {
		return nil, isSyntaxError("invalid number literal")
	}
	return buf, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func wrapUnderflow(err error) error {
	if err == codec.ErrUnderflow {
		return codec.ErrInvalidEncoding("unexpected end of JSON input", nil)
	}
	return err
}

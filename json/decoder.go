// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"errors"
	"math"

	"codello.dev/codec"
)

// Decoder implements [codec.Decoder] for JSON text.
type Decoder struct {
	l    *lexer
	mode codec.Mode
}

// NewDecoder returns a JSON [codec.Decoder] reading from r using
// [codec.Default] mode.
func NewDecoder(r codec.Reader) *Decoder { return &Decoder{l: newLexer(r), mode: codec.Default} }

// NewDecoderMode is like NewDecoder but selects a specific [codec.Mode].
func NewDecoderMode(r codec.Reader, mode codec.Mode) *Decoder {
	return &Decoder{l: newLexer(r), mode: mode}
}

func (d *Decoder) Mode() codec.Mode { return d.mode }

func (d *Decoder) peekNonWS() (byte, bool, error) {
	if err := d.l.skipWS(); err != nil {
		return 0, false, err
	}
	return d.l.peek()
}

// readLiteralValue consumes a JSON keyword literal (true, false, null),
// having already peeked its first byte as first.
func (d *Decoder) readLiteralValue(first byte, lit string) error {
	b, ok, err := d.peekNonWS()
	if err != nil {
		return err
	}
	if !ok || b != first {
		return isSyntaxError("expected JSON literal " + lit)
	}
	if _, err := d.l.advance(); err != nil {
		return wrapUnderflow(err)
	}
	return d.l.readLiteral(lit)
}

func (d *Decoder) DecodeUnit() error       { return d.readLiteralValue('n', "null") }
func (d *Decoder) DecodeUnitStruct() error { return d.readLiteralValue('n', "null") }

func (d *Decoder) DecodeBool() (bool, error) {
	b, ok, err := d.peekNonWS()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, isSyntaxError("unexpected end of JSON input")
	}
	switch b {
	case 't':
		return true, d.readLiteralValue('t', "true")
	case 'f':
		return false, d.readLiteralValue('f', "false")
	default:
		return false, isSyntaxError("expected JSON boolean literal")
	}
}

func (d *Decoder) DecodeChar() (rune, error) {
	if err := d.l.skipWS(); err != nil {
		return 0, err
	}
	s, err := d.l.readString()
	if err != nil {
		return 0, err
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, codec.ErrInvalidLength(1, len(r))
	}
	return r[0], nil
}

func (d *Decoder) readNumberLiteral() (number, error) {
	if err := d.l.skipWS(); err != nil {
		return number{}, err
	}
	raw, err := d.l.readNumber()
	if err != nil {
		return number{}, err
	}
	return parseNumber(raw)
}

func (d *Decoder) DecodeUint8() (uint8, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	u, err := n.composeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint8 {
		return 0, codec.ErrOverflow("number literal does not fit uint8")
	}
	return uint8(u), nil
}

func (d *Decoder) DecodeUint16() (uint16, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	u, err := n.composeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint16 {
		return 0, codec.ErrOverflow("number literal does not fit uint16")
	}
	return uint16(u), nil
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	u, err := n.composeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, codec.ErrOverflow("number literal does not fit uint32")
	}
	return uint32(u), nil
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	return n.composeUint64()
}

func (d *Decoder) DecodeUint() (uint, error) {
	u, err := d.DecodeUint64()
	return uint(u), err
}

func (d *Decoder) DecodeInt8() (int8, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	v, err := n.composeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, codec.ErrOverflow("number literal does not fit int8")
	}
	return int8(v), nil
}

func (d *Decoder) DecodeInt16() (int16, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	v, err := n.composeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, codec.ErrOverflow("number literal does not fit int16")
	}
	return int16(v), nil
}

func (d *Decoder) DecodeInt32() (int32, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	v, err := n.composeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, codec.ErrOverflow("number literal does not fit int32")
	}
	return int32(v), nil
}

func (d *Decoder) DecodeInt64() (int64, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	return n.composeInt64()
}

func (d *Decoder) DecodeInt() (int, error) {
	v, err := d.DecodeInt64()
	return int(v), err
}

func (d *Decoder) DecodeFloat32() (float32, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	f, err := n.composeFloat64()
	return float32(f), err
}

func (d *Decoder) DecodeFloat64() (float64, error) {
	n, err := d.readNumberLiteral()
	if err != nil {
		return 0, err
	}
	return n.composeFloat64()
}

// DecodeBytes decodes the array-of-small-integers representation written by
// [Encoder.EncodeBytes].
func (d *Decoder) DecodeBytes(v codec.BytesVisitor) error {
	sd, err := d.DecodeSequence()
	if err != nil {
		return err
	}
	var buf []byte
	for {
		ed, ok, err := sd.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		b, err := ed.DecodeUint8()
		if err != nil {
			return err
		}
		buf = append(buf, b)
	}
	if err := sd.End(); err != nil {
		return err
	}
	return v.VisitOwnedBytes(buf)
}

func (d *Decoder) DecodeArray(n int, v codec.BytesVisitor) error {
	var owned codec.OwnedBytes
	if err := d.DecodeBytes(&owned); err != nil {
		return err
	}
	if len(owned.Value) != n {
		return codec.ErrInvalidLength(n, len(owned.Value))
	}
	return v.VisitOwnedBytes(owned.Value)
}

func (d *Decoder) DecodeString(v codec.StringVisitor) error {
	if err := d.l.skipWS(); err != nil {
		return err
	}
	s, err := d.l.readString()
	if err != nil {
		return err
	}
	return v.VisitOwnedString(s)
}

func (d *Decoder) DecodeOption() (bool, codec.Decoder, error) {
	b, ok, err := d.peekNonWS()
	if err != nil {
		return false, nil, err
	}
	if ok && b == 'n' {
		if err := d.readLiteralValue('n', "null"); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}
	return true, &Decoder{l: d.l, mode: d.mode}, nil
}

func (d *Decoder) DecodeSequence() (codec.SequenceDecoder, error) {
	if err := d.l.skipWS(); err != nil {
		return nil, err
	}
	if err := d.l.expect('['); err != nil {
		return nil, err
	}
	return &sequenceDecoder{l: d.l, mode: d.mode}, nil
}

func (d *Decoder) DecodeTuple(int) (codec.SequenceDecoder, error)       { return d.DecodeSequence() }
func (d *Decoder) DecodeTupleStruct(fields int) (codec.SequenceDecoder, error) {
	return d.DecodeSequence()
}

func (d *Decoder) DecodeMap() (codec.PairsDecoder, error) {
	if err := d.l.skipWS(); err != nil {
		return nil, err
	}
	if err := d.l.expect('{'); err != nil {
		return nil, err
	}
	return &pairsDecoder{l: d.l, mode: d.mode}, nil
}

func (d *Decoder) DecodeStruct(int) (codec.PairsDecoder, error) { return d.DecodeMap() }

// DecodeVariant reads the single-key object written by
// [Encoder.EncodeVariant].
func (d *Decoder) DecodeVariant() (codec.PairDecoder, error) {
	if err := d.l.skipWS(); err != nil {
		return nil, err
	}
	if err := d.l.expect('{'); err != nil {
		return nil, err
	}
	return &pairDecoder{l: d.l, mode: d.mode, variant: true}, nil
}

// SkipAny consumes one well-formed JSON value of any shape.
func (d *Decoder) SkipAny() error {
	b, ok, err := d.peekNonWS()
	if err != nil {
		return err
	}
	if !ok {
		return isSyntaxError("unexpected end of JSON input")
	}
	switch {
	case b == '"':
		_, err := d.l.readString()
		return err
	case b == '{':
		return d.skipObject()
	case b == '[':
		return d.skipArray()
	case b == 't':
		return d.readLiteralValue('t', "true")
	case b == 'f':
		return d.readLiteralValue('f', "false")
	case b == 'n':
		return d.readLiteralValue('n', "null")
	case b == '-' || isDigit(b):
		_, err := d.l.readNumber()
		return err
	default:
		return isSyntaxError("unexpected character in JSON value")
	}
}

func (d *Decoder) skipObject() error {
	if _, err := d.l.advance(); err != nil {
		return wrapUnderflow(err)
	}
	if err := d.l.skipWS(); err != nil {
		return err
	}
	if b, ok, err := d.l.peek(); err != nil {
		return err
	} else if ok && b == '}' {
		_, err := d.l.advance()
		return err
	}
	for {
		if _, err := d.l.readString(); err != nil {
			return err
		}
		if err := d.l.skipWS(); err != nil {
			return err
		}
		if err := d.l.expect(':'); err != nil {
			return err
		}
		if err := d.SkipAny(); err != nil {
			return err
		}
		if err := d.l.skipWS(); err != nil {
			return err
		}
		b, err := d.l.advance()
		if err != nil {
			return wrapUnderflow(err)
		}
		if b == '}' {
			return nil
		}
		if b != ',' {
			return isSyntaxError("expected ',' or '}' in JSON object")
		}
		if err := d.l.skipWS(); err != nil {
			return err
		}
	}
}

func (d *Decoder) skipArray() error {
	if _, err := d.l.advance(); err != nil {
		return wrapUnderflow(err)
	}
	if err := d.l.skipWS(); err != nil {
		return err
	}
	if b, ok, err := d.l.peek(); err != nil {
		return err
	} else if ok && b == ']' {
		_, err := d.l.advance()
		return err
	}
	for {
		if err := d.SkipAny(); err != nil {
			return err
		}
		if err := d.l.skipWS(); err != nil {
			return err
		}
		b, err := d.l.advance()
		if err != nil {
			return wrapUnderflow(err)
		}
		if b == ']' {
			return nil
		}
		if b != ',' {
			return isSyntaxError("expected ',' or ']' in JSON array")
		}
		if err := d.l.skipWS(); err != nil {
			return err
		}
	}
}

//region sub-decoders

type sequenceDecoder struct {
	l       *lexer
	mode    codec.Mode
	started bool
	done    bool
}

func (s *sequenceDecoder) Next() (codec.Decoder, bool, error) {
	if s.done {
		return nil, false, nil
	}
	if err := s.l.skipWS(); err != nil {
		return nil, false, err
	}
	b, ok, err := s.l.peek()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, isSyntaxError("unexpected end of JSON array")
	}
	if b == ']' {
		if _, err := s.l.advance(); err != nil {
			return nil, false, wrapUnderflow(err)
		}
		s.done = true
		return nil, false, nil
	}
	if s.started {
		if err := s.l.expect(','); err != nil {
			return nil, false, err
		}
		if err := s.l.skipWS(); err != nil {
			return nil, false, err
		}
	}
	s.started = true
	return &Decoder{l: s.l, mode: s.mode}, true, nil
}

func (s *sequenceDecoder) SizeHint() (int, bool) { return 0, false }

func (s *sequenceDecoder) End() error {
	for {
		dec, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := dec.SkipAny(); err != nil {
			return err
		}
	}
}

// keyDecoder decodes an already-read JSON object key string as whatever Go
// type the caller asks for, parsing it as a number on demand since a JSON
// object key is always textual even when it denotes an integer map key or
// variant discriminant.
type keyDecoder struct {
	codec.UnsupportedDecoder
	raw string
}

func (k keyDecoder) number() (number, error) { return parseNumber([]byte(k.raw)) }

func (k keyDecoder) DecodeString(v codec.StringVisitor) error { return v.VisitOwnedString(k.raw) }

func (k keyDecoder) DecodeChar() (rune, error) {
	r := []rune(k.raw)
	if len(r) != 1 {
		return 0, codec.ErrInvalidLength(1, len(r))
	}
	return r[0], nil
}

func (k keyDecoder) DecodeUint8() (uint8, error) {
	u, err := k.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint8 {
		return 0, codec.ErrOverflow("key does not fit uint8")
	}
	return uint8(u), nil
}

func (k keyDecoder) DecodeUint16() (uint16, error) {
	u, err := k.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint16 {
		return 0, codec.ErrOverflow("key does not fit uint16")
	}
	return uint16(u), nil
}

func (k keyDecoder) DecodeUint32() (uint32, error) {
	u, err := k.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, codec.ErrOverflow("key does not fit uint32")
	}
	return uint32(u), nil
}

func (k keyDecoder) DecodeUint64() (uint64, error) {
	n, err := k.number()
	if err != nil {
		return 0, err
	}
	return n.composeUint64()
}

func (k keyDecoder) DecodeUint() (uint, error) {
	u, err := k.DecodeUint64()
	return uint(u), err
}

func (k keyDecoder) DecodeInt8() (int8, error) {
	v, err := k.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, codec.ErrOverflow("key does not fit int8")
	}
	return int8(v), nil
}

func (k keyDecoder) DecodeInt16() (int16, error) {
	v, err := k.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, codec.ErrOverflow("key does not fit int16")
	}
	return int16(v), nil
}

func (k keyDecoder) DecodeInt32() (int32, error) {
	v, err := k.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, codec.ErrOverflow("key does not fit int32")
	}
	return int32(v), nil
}

func (k keyDecoder) DecodeInt64() (int64, error) {
	n, err := k.number()
	if err != nil {
		return 0, err
	}
	return n.composeInt64()
}

func (k keyDecoder) DecodeInt() (int, error) {
	v, err := k.DecodeInt64()
	return int(v), err
}

type pairDecoder struct {
	l         *lexer
	mode      codec.Mode
	variant   bool
	firstDone bool
}

func (p *pairDecoder) First() (codec.Decoder, error) {
	if err := p.l.skipWS(); err != nil {
		return nil, err
	}
	raw, err := p.l.readString()
	if err != nil {
		return nil, err
	}
	p.firstDone = true
	return keyDecoder{raw: raw}, nil
}

func (p *pairDecoder) Second() (codec.Decoder, error) {
	if !p.firstDone {
		return nil, errors.New("json: First must be finalized before Second")
	}
	if err := p.l.skipWS(); err != nil {
		return nil, err
	}
	if err := p.l.expect(':'); err != nil {
		return nil, err
	}
	if err := p.l.skipWS(); err != nil {
		return nil, err
	}
	return &Decoder{l: p.l, mode: p.mode}, nil
}

func (p *pairDecoder) End() error {
	if !p.variant {
		return nil
	}
	if err := p.l.skipWS(); err != nil {
		return err
	}
	return p.l.expect('}')
}

type pairsDecoder struct {
	l       *lexer
	mode    codec.Mode
	started bool
	done    bool
}

func (s *pairsDecoder) Next() (codec.PairDecoder, bool, error) {
	if s.done {
		return nil, false, nil
	}
	if err := s.l.skipWS(); err != nil {
		return nil, false, err
	}
	b, ok, err := s.l.peek()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, isSyntaxError("unexpected end of JSON object")
	}
	if b == '}' {
		if _, err := s.l.advance(); err != nil {
			return nil, false, wrapUnderflow(err)
		}
		s.done = true
		return nil, false, nil
	}
	if s.started {
		if err := s.l.expect(','); err != nil {
			return nil, false, err
		}
		if err := s.l.skipWS(); err != nil {
			return nil, false, err
		}
	}
	s.started = true
	return &pairDecoder{l: s.l, mode: s.mode}, true, nil
}

func (s *pairsDecoder) End() error {
	for {
		pd, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := pd.First(); err != nil {
			return err
		}
		vd, err := pd.Second()
		if err != nil {
			return err
		}
		if err := vd.SkipAny(); err != nil {
			return err
		}
		if err := pd.End(); err != nil {
			return err
		}
	}
}

//endregion

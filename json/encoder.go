// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"codello.dev/codec"
)

var (
	errElementNotFinalized = errors.New("json: previous element was not finalized")
	errSequenceExhausted   = errors.New("json: sequence length exceeded")
	errSequenceIncomplete  = errors.New("json: End called before all elements were written")
	errPairIncomplete      = errors.New("json: End called before both pair elements were written")
)

// Encoder implements [codec.Encoder] for JSON text.
type Encoder struct {
	w    codec.Writer
	mode codec.Mode
	done *bool
}

// NewEncoder returns a JSON [codec.Encoder] writing to w using
// [codec.Default] mode.
func NewEncoder(w codec.Writer) *Encoder { return &Encoder{w: w, mode: codec.Default} }

// NewEncoderMode is like NewEncoder but selects a specific [codec.Mode].
func NewEncoderMode(w codec.Writer, mode codec.Mode) *Encoder { return &Encoder{w: w, mode: mode} }

func (e *Encoder) Mode() codec.Mode { return e.mode }

func (e *Encoder) finish(err error) error {
	if err == nil && e.done != nil {
		*e.done = true
	}
	return err
}

func (e *Encoder) writeString(s string) error { return e.w.Write([]byte(s)) }

func (e *Encoder) EncodeUnit() error       { return e.finish(e.writeString("null")) }
func (e *Encoder) EncodeUnitStruct() error { return e.finish(e.writeString("null")) }
func (e *Encoder) EncodeNone() error       { return e.finish(e.writeString("null")) }

func (e *Encoder) EncodeSome() (codec.Encoder, error) {
	return &Encoder{w: e.w, mode: e.mode, done: e.done}, nil
}

func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.finish(e.writeString("true"))
	}
	return e.finish(e.writeString("false"))
}

func (e *Encoder) EncodeChar(v rune) error { return e.EncodeString(string(v)) }

func (e *Encoder) EncodeUint8(v uint8) error   { return e.finish(e.writeString(strconv.FormatUint(uint64(v), 10))) }
func (e *Encoder) EncodeUint16(v uint16) error { return e.finish(e.writeString(strconv.FormatUint(uint64(v), 10))) }
func (e *Encoder) EncodeUint32(v uint32) error { return e.finish(e.writeString(strconv.FormatUint(uint64(v), 10))) }
func (e *Encoder) EncodeUint64(v uint64) error { return e.finish(e.writeString(strconv.FormatUint(v, 10))) }
func (e *Encoder) EncodeUint(v uint) error     { return e.finish(e.writeString(strconv.FormatUint(uint64(v), 10))) }

func (e *Encoder) EncodeInt8(v int8) error   { return e.finish(e.writeString(strconv.FormatInt(int64(v), 10))) }
func (e *Encoder) EncodeInt16(v int16) error { return e.finish(e.writeString(strconv.FormatInt(int64(v), 10))) }
func (e *Encoder) EncodeInt32(v int32) error { return e.finish(e.writeString(strconv.FormatInt(int64(v), 10))) }
func (e *Encoder) EncodeInt64(v int64) error { return e.finish(e.writeString(strconv.FormatInt(v, 10))) }
func (e *Encoder) EncodeInt(v int) error     { return e.finish(e.writeString(strconv.FormatInt(int64(v), 10))) }

func (e *Encoder) EncodeFloat32(v float32) error {
	if err := checkFinite(float64(v)); err != nil {
		return e.finish(err)
	}
	return e.finish(e.writeString(strconv.FormatFloat(float64(v), 'g', -1, 32)))
}

func (e *Encoder) EncodeFloat64(v float64) error {
	if err := checkFinite(v); err != nil {
		return e.finish(err)
	}
	return e.finish(e.writeString(strconv.FormatFloat(v, 'g', -1, 64)))
}

func checkFinite(v float64) error {
	if v != v || v > maxFloat || v < -maxFloat {
		return codec.ErrInvalidEncoding("JSON cannot represent NaN or Infinity", nil)
	}
	return nil
}

const maxFloat = 1.7976931348623157e+308

// EncodeBytes encodes b as a base64-less JSON array of small integers.
// There is no standard JSON byte-string representation; the length is
// implicit in the array's element count. [Encoder.EncodeArray] writes the
// same representation.
func (e *Encoder) EncodeBytes(b []byte) error {
	se, err := e.EncodeSequence(len(b))
	if err != nil {
		return err
	}
	for _, c := range b {
		ce, err := se.Next()
		if err != nil {
			return err
		}
		if err := ce.EncodeUint8(c); err != nil {
			return err
		}
	}
	return e.finish(se.End())
}

func (e *Encoder) EncodeArray(b []byte) error { return e.EncodeBytes(b) }

func (e *Encoder) EncodeString(s string) error {
	if err := e.w.WriteByte('"'); err != nil {
		return e.finish(err)
	}
	if err := writeEscapedString(e.w, s); err != nil {
		return e.finish(err)
	}
	return e.finish(e.w.WriteByte('"'))
}

// writeEscapedString writes s between its caller-supplied quotes, escaping
// only what JSON requires: '"', '\\', and control characters below 0x20.
func writeEscapedString(w codec.Writer, s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '"':
			if err := w.Write([]byte(`\"`)); err != nil {
				return err
			}
		case '\\':
			if err := w.Write([]byte(`\\`)); err != nil {
				return err
			}
		case '\n':
			if err := w.Write([]byte(`\n`)); err != nil {
				return err
			}
		case '\r':
			if err := w.Write([]byte(`\r`)); err != nil {
				return err
			}
		case '\t':
			if err := w.Write([]byte(`\t`)); err != nil {
				return err
			}
		default:
			if r < 0x20 {
				if err := w.Write([]byte(`\u00` + hexDigits[r>>4:r>>4+1] + hexDigits[r&0xf:r&0xf+1])); err != nil {
					return err
				}
			} else if err := w.Write([]byte(s[i : i+size])); err != nil {
				return err
			}
		}
		i += size
	}
	return nil
}

const hexDigits = "0123456789abcdef"

func (e *Encoder) EncodeSequence(length int) (codec.SequenceEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("json requires a known sequence length", nil)
	}
	if err := e.w.WriteByte('['); err != nil {
		return nil, err
	}
	return &sequenceEncoder{w: e.w, mode: e.mode, remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeTuple(length int) (codec.SequenceEncoder, error) { return e.EncodeSequence(length) }
func (e *Encoder) EncodeTupleStruct(fields int) (codec.SequenceEncoder, error) {
	return e.EncodeSequence(fields)
}
func (e *Encoder) EncodePack() (codec.SequenceEncoder, error) { return e.EncodeSequence(0) }

func (e *Encoder) EncodeMap(length int) (codec.PairsEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("json requires a known map length", nil)
	}
	if err := e.w.WriteByte('{'); err != nil {
		return nil, err
	}
	return &pairsEncoder{w: e.w, mode: e.mode, remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeStruct(fields int) (codec.PairsEncoder, error) { return e.EncodeMap(fields) }

// EncodeVariant renders a variant as a single-key JSON object: the
// discriminant, stringified if necessary since JSON object keys are always
// strings, mapped to the payload value.
func (e *Encoder) EncodeVariant() (codec.PairEncoder, error) {
	if err := e.w.WriteByte('{'); err != nil {
		return nil, err
	}
	return &pairEncoder{w: e.w, mode: e.mode, keyIsVariant: true, parentDone: e.done}, nil
}

// keyDriverName names the JSON driver in errors raised by attempting to use
// a composite kind as an object key, which JSON cannot represent.
const keyDriverName = "json key"

//region sub-encoders

type sequenceEncoder struct {
	w          codec.Writer
	mode       codec.Mode
	remaining  int
	written    int
	childDone  bool
	parentDone *bool
}

func (s *sequenceEncoder) Next() (codec.Encoder, error) {
	if !s.childDone {
		return nil, errElementNotFinalized
	}
	if s.remaining == 0 {
		return nil, errSequenceExhausted
	}
	if s.written > 0 {
		if err := s.w.WriteByte(','); err != nil {
			return nil, err
		}
	}
	s.written++
	s.remaining--
	s.childDone = false
	return &Encoder{w: s.w, mode: s.mode, done: &s.childDone}, nil
}

func (s *sequenceEncoder) End() error {
	if !s.childDone {
		return errElementNotFinalized
	}
	if s.remaining != 0 {
		return errSequenceIncomplete
	}
	if err := s.w.WriteByte(']'); err != nil {
		return err
	}
	if s.parentDone != nil {
		*s.parentDone = true
	}
	return nil
}

// variantKeyEncoder renders whatever scalar is written to it as a quoted
// JSON string, since a variant discriminant always becomes an object key.
type variantKeyEncoder struct {
	codec.UnsupportedEncoder
	w codec.Writer
}

func newVariantKeyEncoder(w codec.Writer) variantKeyEncoder {
	return variantKeyEncoder{UnsupportedEncoder: codec.UnsupportedEncoder{DriverName: keyDriverName}, w: w}
}

func (k variantKeyEncoder) write(s string) error {
	if err := k.w.WriteByte('"'); err != nil {
		return err
	}
	if err := writeEscapedString(k.w, s); err != nil {
		return err
	}
	return k.w.WriteByte('"')
}

func (k variantKeyEncoder) EncodeString(s string) error  { return k.write(s) }
func (k variantKeyEncoder) EncodeUint8(v uint8) error    { return k.write(strconv.FormatUint(uint64(v), 10)) }
func (k variantKeyEncoder) EncodeUint16(v uint16) error  { return k.write(strconv.FormatUint(uint64(v), 10)) }
func (k variantKeyEncoder) EncodeUint32(v uint32) error  { return k.write(strconv.FormatUint(uint64(v), 10)) }
func (k variantKeyEncoder) EncodeUint64(v uint64) error  { return k.write(strconv.FormatUint(v, 10)) }
func (k variantKeyEncoder) EncodeUint(v uint) error      { return k.write(strconv.FormatUint(uint64(v), 10)) }
func (k variantKeyEncoder) EncodeInt8(v int8) error      { return k.write(strconv.FormatInt(int64(v), 10)) }
func (k variantKeyEncoder) EncodeInt16(v int16) error    { return k.write(strconv.FormatInt(int64(v), 10)) }
func (k variantKeyEncoder) EncodeInt32(v int32) error    { return k.write(strconv.FormatInt(int64(v), 10)) }
func (k variantKeyEncoder) EncodeInt64(v int64) error    { return k.write(strconv.FormatInt(v, 10)) }
func (k variantKeyEncoder) EncodeInt(v int) error        { return k.write(strconv.FormatInt(int64(v), 10)) }

type pairEncoder struct {
	w                        codec.Writer
	mode                     codec.Mode
	keyIsVariant             bool
	firstCalled, firstDone   bool
	secondCalled, secondDone bool
	parentDone               *bool
}

func (p *pairEncoder) First() (codec.Encoder, error) {
	if p.firstCalled {
		return nil, errors.New("json: First already called")
	}
	p.firstCalled = true
	p.firstDone = true
	if p.keyIsVariant {
		return newVariantKeyEncoder(p.w), nil
	}
	// A map key in JSON must itself be a quoted string; this delegates to
	// EncodeString regardless of the caller's declared key type, matching
	// the variant key's stringification.
	return newVariantKeyEncoder(p.w), nil
}

func (p *pairEncoder) Second() (codec.Encoder, error) {
	if !p.firstCalled || !p.firstDone {
		return nil, errors.New("json: First must be finalized before Second")
	}
	if p.secondCalled {
		return nil, errors.New("json: Second already called")
	}
	p.secondCalled = true
	if err := p.w.WriteByte(':'); err != nil {
		return nil, err
	}
	return &Encoder{w: p.w, mode: p.mode, done: &p.secondDone}, nil
}

func (p *pairEncoder) End() error {
	if !p.firstDone || !p.secondCalled || !p.secondDone {
		return errPairIncomplete
	}
	if p.keyIsVariant {
		if err := p.w.WriteByte('}'); err != nil {
			return err
		}
	}
	if p.parentDone != nil {
		*p.parentDone = true
	}
	return nil
}

type pairsEncoder struct {
	w          codec.Writer
	mode       codec.Mode
	remaining  int
	written    int
	childDone  bool
	parentDone *bool
}

func (s *pairsEncoder) Next() (codec.PairEncoder, error) {
	if !s.childDone {
		return nil, errElementNotFinalized
	}
	if s.remaining == 0 {
		return nil, errSequenceExhausted
	}
	if s.written > 0 {
		if err := s.w.WriteByte(','); err != nil {
			return nil, err
		}
	}
	s.written++
	s.remaining--
	s.childDone = false
	return &pairEncoder{w: s.w, mode: s.mode, parentDone: &s.childDone}, nil
}

func (s *pairsEncoder) Insert(encodeKey, encodeValue func(codec.Encoder) error) error {
	pair, err := s.Next()
	if err != nil {
		return err
	}
	keyEnc, err := pair.First()
	if err != nil {
		return err
	}
	if err := encodeKey(keyEnc); err != nil {
		return err
	}
	valEnc, err := pair.Second()
	if err != nil {
		return err
	}
	if err := encodeValue(valEnc); err != nil {
		return err
	}
	return pair.End()
}

func (s *pairsEncoder) End() error {
	if !s.childDone {
		return errElementNotFinalized
	}
	if s.remaining != 0 {
		return errSequenceIncomplete
	}
	if err := s.w.WriteByte('}'); err != nil {
		return err
	}
	if s.parentDone != nil {
		*s.parentDone = true
	}
	return nil
}

//endregion

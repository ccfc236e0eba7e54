// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"math"
	"unicode/utf8"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

var (
	errElementNotFinalized = errors.New("storage: previous element was not finalized")
	errSequenceExhausted   = errors.New("storage: sequence length exceeded")
	errSequenceIncomplete  = errors.New("storage: End called before all elements were written")
	errPairIncomplete      = errors.New("storage: End called before both pair elements were written")
)

// Encoder implements [codec.Encoder] for the tag-free storage format.
type Encoder struct {
	w     codec.Writer
	mode  codec.Mode
	fixed bool
	done  *bool
}

// NewEncoder returns a storage [codec.Encoder] writing to w, using
// variable-width (continuation-encoded) integers and [codec.Default] mode.
func NewEncoder(w codec.Writer) *Encoder { return &Encoder{w: w, mode: codec.Default} }

// NewEncoderFixed is like NewEncoder but writes fixed-width little-endian
// integers instead of continuation-encoded ones, trading density for
// predictable per-field size.
func NewEncoderFixed(w codec.Writer) *Encoder { return &Encoder{w: w, mode: codec.Default, fixed: true} }

// NewEncoderMode is like NewEncoder but selects a specific [codec.Mode].
func NewEncoderMode(w codec.Writer, mode codec.Mode, fixed bool) *Encoder {
	return &Encoder{w: w, mode: mode, fixed: fixed}
}

func (e *Encoder) Mode() codec.Mode { return e.mode }

func (e *Encoder) finish(err error) error {
	if err == nil && e.done != nil {
		*e.done = true
	}
	return err
}

func (e *Encoder) child() *Encoder { return &Encoder{w: e.w, mode: e.mode, fixed: e.fixed} }

func (e *Encoder) EncodeUnit() error       { return e.finish(nil) }
func (e *Encoder) EncodeUnitStruct() error { return e.finish(nil) }

func (e *Encoder) EncodeBool(v bool) error {
	n := byte(0)
	if v {
		n = 1
	}
	return e.finish(e.w.WriteByte(n))
}

func (e *Encoder) EncodeChar(v rune) error { return e.finish(e.writeUint(uint64(v))) }

func (e *Encoder) writeUint(v uint64) error {
	if e.fixed {
		var buf [8]byte
		varint.PutFixed64(buf[:], varint.LittleEndian, v)
		return e.w.Write(buf[:])
	}
	_, err := varint.WriteContinuation(byteWriter{e.w}, v)
	return err
}

func (e *Encoder) writeInt(v int64) error {
	return e.writeUint(varint.ZigZag[int64, uint64](v))
}

func (e *Encoder) EncodeUint8(v uint8) error   { return e.finish(e.w.WriteByte(v)) }
func (e *Encoder) EncodeUint16(v uint16) error { return e.finish(e.writeUint(uint64(v))) }
func (e *Encoder) EncodeUint32(v uint32) error { return e.finish(e.writeUint(uint64(v))) }
func (e *Encoder) EncodeUint64(v uint64) error { return e.finish(e.writeUint(v)) }
func (e *Encoder) EncodeUint(v uint) error     { return e.finish(e.writeUint(uint64(v))) }

func (e *Encoder) EncodeInt8(v int8) error {
	return e.finish(e.w.WriteByte(varint.ZigZag[int8, uint8](v)))
}
func (e *Encoder) EncodeInt16(v int16) error { return e.finish(e.writeInt(int64(v))) }
func (e *Encoder) EncodeInt32(v int32) error { return e.finish(e.writeInt(int64(v))) }
func (e *Encoder) EncodeInt64(v int64) error { return e.finish(e.writeInt(v)) }
func (e *Encoder) EncodeInt(v int) error     { return e.finish(e.writeInt(int64(v))) }

func (e *Encoder) EncodeFloat32(v float32) error {
	var buf [4]byte
	varint.PutFixed32(buf[:], varint.LittleEndian, math.Float32bits(v))
	return e.finish(e.w.Write(buf[:]))
}

func (e *Encoder) EncodeFloat64(v float64) error {
	var buf [8]byte
	varint.PutFixed64(buf[:], varint.LittleEndian, math.Float64bits(v))
	return e.finish(e.w.Write(buf[:]))
}

func (e *Encoder) EncodeBytes(b []byte) error {
	if err := e.writeUint(uint64(len(b))); err != nil {
		return e.finish(err)
	}
	return e.finish(e.w.Write(b))
}

func (e *Encoder) EncodeArray(b []byte) error { return e.finish(e.w.Write(b)) }

func (e *Encoder) EncodeString(s string) error {
	if !utf8.ValidString(s) {
		return e.finish(codec.ErrInvalidEncoding("string is not valid UTF-8", nil))
	}
	if err := e.writeUint(uint64(len(s))); err != nil {
		return e.finish(err)
	}
	return e.finish(e.w.Write([]byte(s)))
}

func (e *Encoder) EncodeNone() error { return e.finish(e.w.WriteByte(0)) }

func (e *Encoder) EncodeSome() (codec.Encoder, error) {
	if err := e.w.WriteByte(1); err != nil {
		return nil, err
	}
	return &Encoder{w: e.w, mode: e.mode, fixed: e.fixed, done: e.done}, nil
}

func (e *Encoder) EncodeSequence(length int) (codec.SequenceEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("storage requires a known sequence length", nil)
	}
	if err := e.writeUint(uint64(length)); err != nil {
		return nil, err
	}
	return &sequenceEncoder{enc: e.child(), remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeTuple(length int) (codec.SequenceEncoder, error) {
	return &sequenceEncoder{enc: e.child(), remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeTupleStruct(fields int) (codec.SequenceEncoder, error) {
	return e.EncodeTuple(fields)
}

func (e *Encoder) EncodePack() (codec.SequenceEncoder, error) {
	return &packEncoder{enc: e.child(), childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeMap(length int) (codec.PairsEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("storage requires a known map length", nil)
	}
	if err := e.writeUint(uint64(length)); err != nil {
		return nil, err
	}
	return &pairsEncoder{enc: e.child(), remaining: length, childDone: true, parentDone: e.done, positional: false}, nil
}

// EncodeStruct opens a field encoder that writes values purely positionally;
// the [codec.PairEncoder.First] half of every pair is discarded without
// writing anything, since the field's identity is the schema the two
// parties already share.
func (e *Encoder) EncodeStruct(fields int) (codec.PairsEncoder, error) {
	return &pairsEncoder{enc: e.child(), remaining: fields, childDone: true, parentDone: e.done, positional: true}, nil
}

func (e *Encoder) EncodeVariant() (codec.PairEncoder, error) {
	return &pairEncoder{enc: e.child(), parentDone: e.done}, nil
}

//region sub-encoders

type sequenceEncoder struct {
	enc        *Encoder
	remaining  int
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
	s.remaining--
	s.childDone = false
	return &Encoder{w: s.enc.w, mode: s.enc.mode, fixed: s.enc.fixed, done: &s.childDone}, nil
}

func (s *sequenceEncoder) End() error {
	if !s.childDone {
		return errElementNotFinalized
	}
	if s.remaining != 0 {
		return errSequenceIncomplete
	}
	if s.parentDone != nil {
		*s.parentDone = true
	}
	return nil
}

type packEncoder struct {
	enc        *Encoder
	childDone  bool
	parentDone *bool
}

func (p *packEncoder) Next() (codec.Encoder, error) {
	if !p.childDone {
		return nil, errElementNotFinalized
	}
	p.childDone = false
	return &Encoder{w: p.enc.w, mode: p.enc.mode, fixed: p.enc.fixed, done: &p.childDone}, nil
}

func (p *packEncoder) End() error {
	if !p.childDone {
		return errElementNotFinalized
	}
	if p.parentDone != nil {
		*p.parentDone = true
	}
	return nil
}

type discardEncoder struct{ codec.UnsupportedEncoder }

func (discardEncoder) EncodeUnit() error                       { return nil }
func (discardEncoder) EncodeBool(bool) error                   { return nil }
func (discardEncoder) EncodeChar(rune) error                   { return nil }
func (discardEncoder) EncodeUint8(uint8) error                 { return nil }
func (discardEncoder) EncodeUint16(uint16) error                { return nil }
func (discardEncoder) EncodeUint32(uint32) error                { return nil }
func (discardEncoder) EncodeUint64(uint64) error                { return nil }
func (discardEncoder) EncodeUint(uint) error                    { return nil }
func (discardEncoder) EncodeInt8(int8) error                    { return nil }
func (discardEncoder) EncodeInt16(int16) error                  { return nil }
func (discardEncoder) EncodeInt32(int32) error                  { return nil }
func (discardEncoder) EncodeInt64(int64) error                  { return nil }
func (discardEncoder) EncodeInt(int) error                      { return nil }
func (discardEncoder) EncodeFloat32(float32) error              { return nil }
func (discardEncoder) EncodeFloat64(float64) error              { return nil }
func (discardEncoder) EncodeBytes([]byte) error                 { return nil }
func (discardEncoder) EncodeArray([]byte) error                 { return nil }
func (discardEncoder) EncodeString(string) error                { return nil }

type pairEncoder struct {
	enc                      *Encoder
	positional               bool
	firstCalled, firstDone   bool
	secondCalled, secondDone bool
	parentDone               *bool
}

func (p *pairEncoder) First() (codec.Encoder, error) {
	if p.firstCalled {
		return nil, errors.New("storage: First already called")
	}
	p.firstCalled = true
	if p.positional {
		p.firstDone = true
		return discardEncoder{}, nil
	}
	return &Encoder{w: p.enc.w, mode: p.enc.mode, fixed: p.enc.fixed, done: &p.firstDone}, nil
}

func (p *pairEncoder) Second() (codec.Encoder, error) {
	if !p.firstCalled || !p.firstDone {
		return nil, errors.New("storage: First must be finalized before Second")
	}
	if p.secondCalled {
		return nil, errors.New("storage: Second already called")
	}
	p.secondCalled = true
	return &Encoder{w: p.enc.w, mode: p.enc.mode, fixed: p.enc.fixed, done: &p.secondDone}, nil
}

func (p *pairEncoder) End() error {
	if !p.firstDone || !p.secondCalled || !p.secondDone {
		return errPairIncomplete
	}
	if p.parentDone != nil {
		*p.parentDone = true
	}
	return nil
}

type pairsEncoder struct {
	enc        *Encoder
	remaining  int
	childDone  bool
	parentDone *bool
	positional bool
}

func (s *pairsEncoder) Next() (codec.PairEncoder, error) {
	if !s.childDone {
		return nil, errElementNotFinalized
	}
	if s.remaining == 0 {
		return nil, errSequenceExhausted
	}
	s.remaining--
	s.childDone = false
	return &pairEncoder{enc: s.enc, positional: s.positional, parentDone: &s.childDone}, nil
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
	if s.parentDone != nil {
		*s.parentDone = true
	}
	return nil
}

//endregion

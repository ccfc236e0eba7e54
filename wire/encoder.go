// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"math"
	"unicode/utf8"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

var (
	errElementNotFinalized = errors.New("wire: previous element was not finalized")
	errSequenceExhausted   = errors.New("wire: sequence length exceeded")
	errSequenceIncomplete  = errors.New("wire: End called before all elements were written")
	errPairIncomplete      = errors.New("wire: End called before both pair elements were written")
)

// Encoder implements [codec.Encoder] for the binary-tagged wire format.
type Encoder struct {
	w    codec.Writer
	mode codec.Mode
	done *bool // set on successful completion; nil for the top-level encoder
}

// NewEncoder returns a wire [codec.Encoder] writing to w using [codec.Default]
// mode.
func NewEncoder(w codec.Writer) *Encoder { return &Encoder{w: w, mode: codec.Default} }

// NewEncoderMode is like NewEncoder but selects a specific [codec.Mode].
func NewEncoderMode(w codec.Writer, mode codec.Mode) *Encoder {
	return &Encoder{w: w, mode: mode}
}

func (e *Encoder) Mode() codec.Mode { return e.mode }

func (e *Encoder) finish(err error) error {
	if err == nil && e.done != nil {
		*e.done = true
	}
	return err
}

func (e *Encoder) EncodeUnit() error {
	return e.finish(writeLengthTag(e.w, kindMark, 0))
}

func (e *Encoder) EncodeBool(v bool) error {
	n := 0
	if v {
		n = 1
	}
	return e.finish(writeByteTag(e.w, byte(n)))
}

func (e *Encoder) EncodeChar(v rune) error {
	return e.finish(e.writeContinuation(uint64(v)))
}

func (e *Encoder) EncodeUint8(v uint8) error  { return e.finish(writeByteTag(e.w, v)) }
func (e *Encoder) EncodeUint16(v uint16) error { return e.finish(e.writeContinuation(uint64(v))) }
func (e *Encoder) EncodeUint32(v uint32) error { return e.finish(e.writeContinuation(uint64(v))) }
func (e *Encoder) EncodeUint64(v uint64) error { return e.finish(e.writeContinuation(v)) }
func (e *Encoder) EncodeUint(v uint) error     { return e.finish(e.writeContinuation(uint64(v))) }

func (e *Encoder) EncodeInt8(v int8) error {
	return e.finish(writeByteTag(e.w, varint.ZigZag[int8, uint8](v)))
}
func (e *Encoder) EncodeInt16(v int16) error {
	return e.finish(e.writeContinuation(uint64(varint.ZigZag[int16, uint16](v))))
}
func (e *Encoder) EncodeInt32(v int32) error {
	return e.finish(e.writeContinuation(uint64(varint.ZigZag[int32, uint32](v))))
}
func (e *Encoder) EncodeInt64(v int64) error {
	return e.finish(e.writeContinuation(varint.ZigZag[int64, uint64](v)))
}
func (e *Encoder) EncodeInt(v int) error {
	return e.finish(e.writeContinuation(varint.ZigZag[int64, uint64](int64(v))))
}

func (e *Encoder) writeContinuation(v uint64) error {
	if err := e.w.WriteByte(tagOf(kindContinuation, 0)); err != nil {
		return err
	}
	_, err := varint.WriteContinuation(byteWriter{e.w}, v)
	return err
}

func (e *Encoder) EncodeFloat32(v float32) error {
	var buf [4]byte
	varint.PutFixed32(buf[:], varint.LittleEndian, math.Float32bits(v))
	return e.finish(e.writeFixed(buf[:]))
}

func (e *Encoder) EncodeFloat64(v float64) error {
	var buf [8]byte
	varint.PutFixed64(buf[:], varint.LittleEndian, math.Float64bits(v))
	return e.finish(e.writeFixed(buf[:]))
}

func (e *Encoder) writeFixed(b []byte) error {
	if err := writeLengthTag(e.w, kindFixed, len(b)); err != nil {
		return err
	}
	return e.w.Write(b)
}

func (e *Encoder) EncodeBytes(b []byte) error {
	if err := writeLengthTag(e.w, kindPrefix, len(b)); err != nil {
		return e.finish(err)
	}
	return e.finish(e.w.Write(b))
}

func (e *Encoder) EncodeArray(b []byte) error {
	return e.finish(e.writeFixed(b))
}

func (e *Encoder) EncodeString(s string) error {
	if !utf8.ValidString(s) {
		return e.finish(codec.ErrInvalidEncoding("string is not valid UTF-8", nil))
	}
	if err := writeLengthTag(e.w, kindPrefix, len(s)); err != nil {
		return e.finish(err)
	}
	return e.finish(e.w.Write([]byte(s)))
}

func (e *Encoder) EncodeNone() error {
	return e.finish(writeLengthTag(e.w, kindMark, 0))
}

func (e *Encoder) EncodeSome() (codec.Encoder, error) {
	if err := writeLengthTag(e.w, kindMark, 1); err != nil {
		return nil, err
	}
	return &Encoder{w: e.w, mode: e.mode, done: e.done}, nil
}

func (e *Encoder) EncodeSequence(length int) (codec.SequenceEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("wire requires a known sequence length", nil)
	}
	if err := writeLengthTag(e.w, kindSequence, length); err != nil {
		return nil, err
	}
	return &sequenceEncoder{w: e.w, mode: e.mode, remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeTuple(length int) (codec.SequenceEncoder, error) {
	return e.EncodeSequence(length)
}

func (e *Encoder) EncodePack() (codec.SequenceEncoder, error) {
	// wire has no separate packed representation; a pack is just a sequence
	// whose elements the caller commits to writing without further framing.
	if err := writeLengthTag(e.w, kindSequence, 0); err != nil {
		return nil, err
	}
	return &packEncoder{w: e.w, mode: e.mode, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeMap(length int) (codec.PairsEncoder, error) {
	if length < 0 {
		return nil, codec.ErrInvalidEncoding("wire requires a known map length", nil)
	}
	if err := writeLengthTag(e.w, kindPairSequence, length); err != nil {
		return nil, err
	}
	return &pairsEncoder{w: e.w, mode: e.mode, remaining: length, childDone: true, parentDone: e.done}, nil
}

func (e *Encoder) EncodeStruct(fields int) (codec.PairsEncoder, error) {
	return e.EncodeMap(fields)
}

func (e *Encoder) EncodeTupleStruct(fields int) (codec.SequenceEncoder, error) {
	return e.EncodeSequence(fields)
}

func (e *Encoder) EncodeUnitStruct() error {
	return e.finish(writeLengthTag(e.w, kindMark, 0))
}

func (e *Encoder) EncodeVariant() (codec.PairEncoder, error) {
	if err := writeLengthTag(e.w, kindPairSequence, 1); err != nil {
		return nil, err
	}
	return &pairEncoder{w: e.w, mode: e.mode, parentDone: e.done}, nil
}

//region sub-encoders

type sequenceEncoder struct {
	w          codec.Writer
	mode       codec.Mode
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
	return &Encoder{w: s.w, mode: s.mode, done: &s.childDone}, nil
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

// packEncoder is like sequenceEncoder but does not know its length ahead of
// time; EncodePack wrote a placeholder length of 0 that is not corrected
// (wire packs are only useful for in-memory sinks like [codec.CountingWriter]
// pre-passes, not for direct streaming — callers that need a real count
// should use EncodeSequence with a known length instead).
type packEncoder struct {
	w          codec.Writer
	mode       codec.Mode
	childDone  bool
	parentDone *bool
	count      int
}

func (p *packEncoder) Next() (codec.Encoder, error) {
	if !p.childDone {
		return nil, errElementNotFinalized
	}
	p.childDone = false
	p.count++
	return &Encoder{w: p.w, mode: p.mode, done: &p.childDone}, nil
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

type pairEncoder struct {
	w                        codec.Writer
	mode                     codec.Mode
	firstCalled, firstDone   bool
	secondCalled, secondDone bool
	parentDone               *bool
}

func (p *pairEncoder) First() (codec.Encoder, error) {
	if p.firstCalled {
		return nil, errors.New("wire: First already called")
	}
	p.firstCalled = true
	return &Encoder{w: p.w, mode: p.mode, done: &p.firstDone}, nil
}

func (p *pairEncoder) Second() (codec.Encoder, error) {
	if !p.firstCalled || !p.firstDone {
		return nil, errors.New("wire: First must be finalized before Second")
	}
	if p.secondCalled {
		return nil, errors.New("wire: Second already called")
	}
	p.secondCalled = true
	return &Encoder{w: p.w, mode: p.mode, done: &p.secondDone}, nil
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
	w          codec.Writer
	mode       codec.Mode
	remaining  int
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
	if s.parentDone != nil {
		*s.parentDone = true
	}
	return nil
}

//endregion

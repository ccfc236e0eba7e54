// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "codello.dev/codec"

// Decoder implements [codec.Decoder] by walking a [Value] tree as if it
// were a wire format.
type Decoder struct {
	mode codec.Mode
	v    *Value
}

// NewDecoder returns a [Decoder] walking v, using [codec.Default] mode.
func NewDecoder(v *Value) *Decoder { return &Decoder{mode: codec.Default, v: v} }

// NewDecoderMode is like NewDecoder but selects a specific [codec.Mode].
func NewDecoderMode(v *Value, mode codec.Mode) *Decoder { return &Decoder{mode: mode, v: v} }

func (d *Decoder) Mode() codec.Mode { return d.mode }

func (d *Decoder) mismatch(want codec.Kind) error { return codec.ErrTypeMismatch(want, d.v.kind) }

func (d *Decoder) DecodeUnit() error {
	if d.v.kind != codec.KindUnit {
		return d.mismatch(codec.KindUnit)
	}
	return nil
}

func (d *Decoder) DecodeUnitStruct() error {
	if d.v.kind != codec.KindUnitStruct {
		return d.mismatch(codec.KindUnitStruct)
	}
	return nil
}

func (d *Decoder) DecodeBool() (bool, error) {
	if d.v.kind != codec.KindBool {
		return false, d.mismatch(codec.KindBool)
	}
	return d.v.b, nil
}

func (d *Decoder) DecodeChar() (rune, error) {
	if d.v.kind != codec.KindChar {
		return 0, d.mismatch(codec.KindChar)
	}
	return d.v.ch, nil
}

func (d *Decoder) DecodeUint8() (uint8, error) {
	if d.v.kind != codec.KindUint8 {
		return 0, d.mismatch(codec.KindUint8)
	}
	return uint8(d.v.u), nil
}

func (d *Decoder) DecodeUint16() (uint16, error) {
	if d.v.kind != codec.KindUint16 {
		return 0, d.mismatch(codec.KindUint16)
	}
	return uint16(d.v.u), nil
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	if d.v.kind != codec.KindUint32 {
		return 0, d.mismatch(codec.KindUint32)
	}
	return uint32(d.v.u), nil
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	if d.v.kind != codec.KindUint64 {
		return 0, d.mismatch(codec.KindUint64)
	}
	return d.v.u, nil
}

func (d *Decoder) DecodeUint() (uint, error) {
	if d.v.kind != codec.KindUint {
		return 0, d.mismatch(codec.KindUint)
	}
	return uint(d.v.u), nil
}

func (d *Decoder) DecodeInt8() (int8, error) {
	if d.v.kind != codec.KindInt8 {
		return 0, d.mismatch(codec.KindInt8)
	}
	return int8(d.v.i), nil
}

func (d *Decoder) DecodeInt16() (int16, error) {
	if d.v.kind != codec.KindInt16 {
		return 0, d.mismatch(codec.KindInt16)
	}
	return int16(d.v.i), nil
}

func (d *Decoder) DecodeInt32() (int32, error) {
	if d.v.kind != codec.KindInt32 {
		return 0, d.mismatch(codec.KindInt32)
	}
	return int32(d.v.i), nil
}

func (d *Decoder) DecodeInt64() (int64, error) {
	if d.v.kind != codec.KindInt64 {
		return 0, d.mismatch(codec.KindInt64)
	}
	return d.v.i, nil
}

func (d *Decoder) DecodeInt() (int, error) {
	if d.v.kind != codec.KindInt {
		return 0, d.mismatch(codec.KindInt)
	}
	return int(d.v.i), nil
}

func (d *Decoder) DecodeFloat32() (float32, error) {
	if d.v.kind != codec.KindFloat32 {
		return 0, d.mismatch(codec.KindFloat32)
	}
	return d.v.f32, nil
}

func (d *Decoder) DecodeFloat64() (float64, error) {
	if d.v.kind != codec.KindFloat64 {
		return 0, d.mismatch(codec.KindFloat64)
	}
	return d.v.f64, nil
}

func (d *Decoder) DecodeBytes(v codec.BytesVisitor) error {
	if d.v.kind != codec.KindBytes {
		return d.mismatch(codec.KindBytes)
	}
	return v.VisitBorrowedBytes(d.v.bytes)
}

func (d *Decoder) DecodeArray(n int, v codec.BytesVisitor) error {
	if d.v.kind != codec.KindArray {
		return d.mismatch(codec.KindArray)
	}
	if len(d.v.bytes) != n {
		return codec.ErrInvalidLength(n, len(d.v.bytes))
	}
	return v.VisitBorrowedBytes(d.v.bytes)
}

func (d *Decoder) DecodeString(v codec.StringVisitor) error {
	if d.v.kind != codec.KindString {
		return d.mismatch(codec.KindString)
	}
	return v.VisitBorrowedString(d.v.str)
}

func (d *Decoder) DecodeOption() (bool, codec.Decoder, error) {
	if d.v.kind != codec.KindOption {
		return false, nil, d.mismatch(codec.KindOption)
	}
	if d.v.some == nil {
		return false, nil, nil
	}
	return true, &Decoder{mode: d.mode, v: d.v.some}, nil
}

func (d *Decoder) DecodeSequence() (codec.SequenceDecoder, error) {
	if d.v.kind != codec.KindSequence {
		return nil, d.mismatch(codec.KindSequence)
	}
	return &sequenceDecoder{mode: d.mode, items: d.v.items}, nil
}

func (d *Decoder) DecodeTuple(length int) (codec.SequenceDecoder, error) {
	if d.v.kind != codec.KindTuple {
		return nil, d.mismatch(codec.KindTuple)
	}
	if len(d.v.items) != length {
		return nil, codec.ErrInvalidLength(length, len(d.v.items))
	}
	return &sequenceDecoder{mode: d.mode, items: d.v.items}, nil
}

func (d *Decoder) DecodeTupleStruct(fields int) (codec.SequenceDecoder, error) {
	if d.v.kind != codec.KindTupleStruct {
		return nil, d.mismatch(codec.KindTupleStruct)
	}
	if len(d.v.items) != fields {
		return nil, codec.ErrInvalidLength(fields, len(d.v.items))
	}
	return &sequenceDecoder{mode: d.mode, items: d.v.items}, nil
}

func (d *Decoder) DecodeMap() (codec.PairsDecoder, error) {
	if d.v.kind != codec.KindMap {
		return nil, d.mismatch(codec.KindMap)
	}
	return &pairsDecoder{mode: d.mode, pairs: d.v.pairs}, nil
}

func (d *Decoder) DecodeStruct(int) (codec.PairsDecoder, error) {
	if d.v.kind != codec.KindStruct {
		return nil, d.mismatch(codec.KindStruct)
	}
	return &pairsDecoder{mode: d.mode, pairs: d.v.pairs}, nil
}

func (d *Decoder) DecodeVariant() (codec.PairDecoder, error) {
	if d.v.kind != codec.KindVariant {
		return nil, d.mismatch(codec.KindVariant)
	}
	return &variantPairDecoder{mode: d.mode, v: d.v}, nil
}

// SkipAny does nothing: a [Value] is already fully materialized, so
// skipping one just means not descending into it.
func (d *Decoder) SkipAny() error { return nil }

//region sub-decoders

type sequenceDecoder struct {
	mode  codec.Mode
	items []Value
	pos   int
}

func (s *sequenceDecoder) Next() (codec.Decoder, bool, error) {
	if s.pos >= len(s.items) {
		return nil, false, nil
	}
	d := &Decoder{mode: s.mode, v: &s.items[s.pos]}
	s.pos++
	return d, true, nil
}

func (s *sequenceDecoder) SizeHint() (int, bool) { return len(s.items) - s.pos, true }

func (s *sequenceDecoder) End() error {
	s.pos = len(s.items)
	return nil
}

type pairDecoder struct {
	mode codec.Mode
	pair *Pair
}

func (p *pairDecoder) First() (codec.Decoder, error)  { return &Decoder{mode: p.mode, v: &p.pair.Key}, nil }
func (p *pairDecoder) Second() (codec.Decoder, error) { return &Decoder{mode: p.mode, v: &p.pair.Value}, nil }
func (p *pairDecoder) End() error                     { return nil }

type pairsDecoder struct {
	mode  codec.Mode
	pairs []Pair
	pos   int
}

func (s *pairsDecoder) Next() (codec.PairDecoder, bool, error) {
	if s.pos >= len(s.pairs) {
		return nil, false, nil
	}
	pd := &pairDecoder{mode: s.mode, pair: &s.pairs[s.pos]}
	s.pos++
	return pd, true, nil
}

func (s *pairsDecoder) End() error {
	s.pos = len(s.pairs)
	return nil
}

type variantPairDecoder struct {
	mode codec.Mode
	v    *Value
}

func (p *variantPairDecoder) First() (codec.Decoder, error) {
	return &Decoder{mode: p.mode, v: p.v.tag}, nil
}

func (p *variantPairDecoder) Second() (codec.Decoder, error) {
	return &Decoder{mode: p.mode, v: p.v.payload}, nil
}

func (p *variantPairDecoder) End() error { return nil }

//endregion

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "codello.dev/codec"

// Encoder implements [codec.Encoder] by materializing a [Value] tree into
// out instead of writing bytes.
type Encoder struct {
	mode codec.Mode
	out  *Value
}

// NewEncoder returns an [Encoder] that writes the encoded value into out,
// using [codec.Default] mode.
func NewEncoder(out *Value) *Encoder { return &Encoder{mode: codec.Default, out: out} }

// NewEncoderMode is like NewEncoder but selects a specific [codec.Mode].
func NewEncoderMode(out *Value, mode codec.Mode) *Encoder { return &Encoder{mode: mode, out: out} }

func (e *Encoder) Mode() codec.Mode { return e.mode }

func (e *Encoder) EncodeUnit() error       { *e.out = Unit(); return nil }
func (e *Encoder) EncodeUnitStruct() error { *e.out = UnitStruct(); return nil }
func (e *Encoder) EncodeBool(v bool) error { *e.out = Bool(v); return nil }
func (e *Encoder) EncodeChar(v rune) error { *e.out = Char(v); return nil }

func (e *Encoder) EncodeUint8(v uint8) error   { *e.out = Uint8(v); return nil }
func (e *Encoder) EncodeUint16(v uint16) error { *e.out = Uint16(v); return nil }
func (e *Encoder) EncodeUint32(v uint32) error { *e.out = Uint32(v); return nil }
func (e *Encoder) EncodeUint64(v uint64) error { *e.out = Uint64(v); return nil }
func (e *Encoder) EncodeUint(v uint) error     { *e.out = Uint(v); return nil }

func (e *Encoder) EncodeInt8(v int8) error   { *e.out = Int8(v); return nil }
func (e *Encoder) EncodeInt16(v int16) error { *e.out = Int16(v); return nil }
func (e *Encoder) EncodeInt32(v int32) error { *e.out = Int32(v); return nil }
func (e *Encoder) EncodeInt64(v int64) error { *e.out = Int64(v); return nil }
func (e *Encoder) EncodeInt(v int) error     { *e.out = Int(v); return nil }

func (e *Encoder) EncodeFloat32(v float32) error { *e.out = Float32(v); return nil }
func (e *Encoder) EncodeFloat64(v float64) error { *e.out = Float64(v); return nil }

func (e *Encoder) EncodeBytes(b []byte) error { *e.out = Bytes(b); return nil }
func (e *Encoder) EncodeArray(b []byte) error { *e.out = Array(b); return nil }
func (e *Encoder) EncodeString(s string) error {
	*e.out = String(s)
	return nil
}

func (e *Encoder) EncodeNone() error { *e.out = None(); return nil }

func (e *Encoder) EncodeSome() (codec.Encoder, error) {
	inner := &Value{}
	*e.out = Value{kind: codec.KindOption, some: inner}
	return &Encoder{mode: e.mode, out: inner}, nil
}

func (e *Encoder) EncodeSequence(length int) (codec.SequenceEncoder, error) {
	*e.out = Value{kind: codec.KindSequence}
	if length > 0 {
		e.out.items = make([]Value, 0, length)
	}
	return &sequenceEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodeTuple(length int) (codec.SequenceEncoder, error) {
	*e.out = Value{kind: codec.KindTuple}
	if length > 0 {
		e.out.items = make([]Value, 0, length)
	}
	return &sequenceEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodePack() (codec.SequenceEncoder, error) {
	*e.out = Value{kind: codec.KindSequence}
	return &sequenceEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodeTupleStruct(fields int) (codec.SequenceEncoder, error) {
	*e.out = Value{kind: codec.KindTupleStruct}
	if fields > 0 {
		e.out.items = make([]Value, 0, fields)
	}
	return &sequenceEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodeMap(length int) (codec.PairsEncoder, error) {
	*e.out = Value{kind: codec.KindMap}
	if length > 0 {
		e.out.pairs = make([]Pair, 0, length)
	}
	return &pairsEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodeStruct(fields int) (codec.PairsEncoder, error) {
	*e.out = Value{kind: codec.KindStruct}
	if fields > 0 {
		e.out.pairs = make([]Pair, 0, fields)
	}
	return &pairsEncoder{mode: e.mode, out: e.out}, nil
}

func (e *Encoder) EncodeVariant() (codec.PairEncoder, error) {
	*e.out = Value{kind: codec.KindVariant, tag: &Value{}, payload: &Value{}}
	return &variantPairEncoder{mode: e.mode, out: e.out}, nil
}

//region sub-encoders

type sequenceEncoder struct {
	mode codec.Mode
	out  *Value
}

func (s *sequenceEncoder) Next() (codec.Encoder, error) {
	s.out.items = append(s.out.items, Value{})
	idx := len(s.out.items) - 1
	return &Encoder{mode: s.mode, out: &s.out.items[idx]}, nil
}

func (s *sequenceEncoder) End() error { return nil }

type pairEncoder struct {
	mode codec.Mode
	pair *Pair
}

func (p *pairEncoder) First() (codec.Encoder, error)  { return &Encoder{mode: p.mode, out: &p.pair.Key}, nil }
func (p *pairEncoder) Second() (codec.Encoder, error) { return &Encoder{mode: p.mode, out: &p.pair.Value}, nil }
func (p *pairEncoder) End() error                     { return nil }

type pairsEncoder struct {
	mode codec.Mode
	out  *Value
}

func (s *pairsEncoder) Next() (codec.PairEncoder, error) {
	s.out.pairs = append(s.out.pairs, Pair{})
	idx := len(s.out.pairs) - 1
	return &pairEncoder{mode: s.mode, pair: &s.out.pairs[idx]}, nil
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

func (s *pairsEncoder) End() error { return nil }

type variantPairEncoder struct {
	mode codec.Mode
	out  *Value
}

func (p *variantPairEncoder) First() (codec.Encoder, error) {
	return &Encoder{mode: p.mode, out: p.out.tag}, nil
}

func (p *variantPairEncoder) Second() (codec.Encoder, error) {
	return &Encoder{mode: p.mode, out: p.out.payload}, nil
}

func (p *variantPairEncoder) End() error { return nil }

//endregion

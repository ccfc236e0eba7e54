// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"math"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

// Decoder implements [codec.Decoder] for the binary-tagged wire format.
type Decoder struct {
	r    codec.Reader
	mode codec.Mode
}

// NewDecoder returns a wire [codec.Decoder] reading from r using
// [codec.Default] mode.
func NewDecoder(r codec.Reader) *Decoder { return &Decoder{r: r, mode: codec.Default} }

// NewDecoderMode is like NewDecoder but selects a specific [codec.Mode].
func NewDecoderMode(r codec.Reader, mode codec.Mode) *Decoder {
	return &Decoder{r: r, mode: mode}
}

func (d *Decoder) Mode() codec.Mode { return d.mode }

func mismatch(want kind, k kind) error {
	return codec.ErrTypeMismatch(codec.KindUnit, kindToGoKind(k))
}

func (d *Decoder) DecodeUnit() error {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return err
	}
	if k != kindMark || n != 0 {
		return mismatch(kindMark, k)
	}
	return nil
}

func (d *Decoder) DecodeUnitStruct() error { return d.DecodeUnit() }

func (d *Decoder) DecodeBool() (bool, error) {
	k, v, err := readByteTag(d.r)
	if err != nil {
		return false, err
	}
	if k != kindByte {
		return false, mismatch(kindByte, k)
	}
	return v != 0, nil
}

func (d *Decoder) DecodeChar() (rune, error) {
	u, err := d.readContinuation()
	if err != nil {
		return 0, err
	}
	return rune(u), nil
}

func (d *Decoder) readContinuation() (uint64, error) {
	b, err := readByte(d.r)
	if err != nil {
		return 0, err
	}
	if kind(b>>5) != kindContinuation {
		return 0, mismatch(kindContinuation, kind(b>>5))
	}
	u, err := varint.ReadContinuation[uint64](byteReader{d.r})
	if err != nil {
		return 0, wrapUnderflow(err)
	}
	return u, nil
}

func (d *Decoder) DecodeUint8() (uint8, error) {
	k, v, err := readByteTag(d.r)
	if err != nil {
		return 0, err
	}
	if k != kindByte {
		return 0, mismatch(kindByte, k)
	}
	return v, nil
}

func (d *Decoder) DecodeUint16() (uint16, error) {
	u, err := d.readContinuation()
	return uint16(u), err
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	u, err := d.readContinuation()
	return uint32(u), err
}

func (d *Decoder) DecodeUint64() (uint64, error) { return d.readContinuation() }

func (d *Decoder) DecodeUint() (uint, error) {
	u, err := d.readContinuation()
	return uint(u), err
}

func (d *Decoder) DecodeInt8() (int8, error) {
	k, v, err := readByteTag(d.r)
	if err != nil {
		return 0, err
	}
	if k != kindByte {
		return 0, mismatch(kindByte, k)
	}
	return varint.UnZigZag[uint8, int8](v), nil
}

func (d *Decoder) DecodeInt16() (int16, error) {
	u, err := d.readContinuation()
	return varint.UnZigZag[uint16, int16](uint16(u)), err
}

func (d *Decoder) DecodeInt32() (int32, error) {
	u, err := d.readContinuation()
	return varint.UnZigZag[uint32, int32](uint32(u)), err
}

func (d *Decoder) DecodeInt64() (int64, error) {
	u, err := d.readContinuation()
	return varint.UnZigZag[uint64, int64](u), err
}

func (d *Decoder) DecodeInt() (int, error) {
	u, err := d.readContinuation()
	return int(varint.UnZigZag[uint64, int64](u)), err
}

func (d *Decoder) readFixed() ([]byte, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return nil, err
	}
	if k != kindFixed {
		return nil, mismatch(kindFixed, k)
	}
	b := make([]byte, n)
	if err := d.r.Read(b); err != nil {
		return nil, wrapUnderflow(err)
	}
	return b, nil
}

func (d *Decoder) DecodeFloat32() (float32, error) {
	b, err := d.readFixed()
	if err != nil {
		return 0, err
	}
	if len(b) != 4 {
		return 0, codec.ErrInvalidLength(4, len(b))
	}
	return math.Float32frombits(varint.Fixed32(b, varint.LittleEndian)), nil
}

func (d *Decoder) DecodeFloat64() (float64, error) {
	b, err := d.readFixed()
	if err != nil {
		return 0, err
	}
	if len(b) != 8 {
		return 0, codec.ErrInvalidLength(8, len(b))
	}
	return math.Float64frombits(varint.Fixed64(b, varint.LittleEndian)), nil
}

func (d *Decoder) readPrefix() ([]byte, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return nil, err
	}
	if k != kindPrefix {
		return nil, mismatch(kindPrefix, k)
	}
	b, err := d.r.Bytes(n)
	if err != nil {
		return nil, wrapUnderflow(err)
	}
	return b, nil
}

func (d *Decoder) DecodeBytes(v codec.BytesVisitor) error {
	b, err := d.readPrefix()
	if err != nil {
		return err
	}
	return v.VisitBorrowedBytes(b)
}

func (d *Decoder) DecodeArray(n int, v codec.BytesVisitor) error {
	b, err := d.readFixed()
	if err != nil {
		return err
	}
	if len(b) != n {
		return codec.ErrInvalidLength(n, len(b))
	}
	return v.VisitOwnedBytes(b)
}

func (d *Decoder) DecodeString(v codec.StringVisitor) error {
	b, err := d.readPrefix()
	if err != nil {
		return err
	}
	return v.VisitBorrowedString(string(b))
}

func (d *Decoder) DecodeOption() (bool, codec.Decoder, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return false, nil, err
	}
	if k != kindMark {
		return false, nil, mismatch(kindMark, k)
	}
	if n == 0 {
		return false, nil, nil
	}
	return true, &Decoder{r: d.r, mode: d.mode}, nil
}

func (d *Decoder) DecodeSequence() (codec.SequenceDecoder, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return nil, err
	}
	if k != kindSequence {
		return nil, mismatch(kindSequence, k)
	}
	return &sequenceDecoder{r: d.r, mode: d.mode, remaining: n}, nil
}

func (d *Decoder) DecodeTuple(length int) (codec.SequenceDecoder, error) {
	sd, err := d.DecodeSequence()
	if err != nil {
		return nil, err
	}
	if n, _ := sd.SizeHint(); n != length {
		return nil, codec.ErrInvalidLength(length, n)
	}
	return sd, nil
}

func (d *Decoder) DecodeTupleStruct(fields int) (codec.SequenceDecoder, error) {
	return d.DecodeTuple(fields)
}

func (d *Decoder) DecodeMap() (codec.PairsDecoder, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return nil, err
	}
	if k != kindPairSequence {
		return nil, mismatch(kindPairSequence, k)
	}
	return &pairsDecoder{r: d.r, mode: d.mode, remaining: n}, nil
}

func (d *Decoder) DecodeStruct(int) (codec.PairsDecoder, error) { return d.DecodeMap() }

func (d *Decoder) DecodeVariant() (codec.PairDecoder, error) {
	k, n, err := readLengthTag(d.r)
	if err != nil {
		return nil, err
	}
	if k != kindPairSequence || n != 1 {
		return nil, mismatch(kindPairSequence, k)
	}
	return &pairDecoder{r: d.r, mode: d.mode}, nil
}

// SkipAny consumes exactly one well-formed value without decoding it into
// any particular Go type. It dispatches purely on the tag byte's kind.
func (d *Decoder) SkipAny() error {
	b, err := readByte(d.r)
	if err != nil {
		return err
	}
	k := kind(b >> 5)
	low := b & 0x1f
	n := int(low)
	if low == sentinel {
		switch k {
		case kindByte:
			if _, err := readByte(d.r); err != nil {
				return err
			}
			return nil
		default:
			u, err := varint.ReadContinuation[uint64](byteReader{d.r})
			if err != nil {
				return wrapUnderflow(err)
			}
			n = int(u)
		}
	}
	switch k {
	case kindMark:
		if n != 0 {
			// a present option: the mark is followed by its payload value
			return d.SkipAny()
		}
		return nil
	case kindByte:
		return nil
	case kindFixed:
		return d.skipBytes(n)
	case kindContinuation:
		_, err := varint.ReadContinuation[uint64](byteReader{d.r})
		return wrapUnderflow(err)
	case kindPrefix:
		return d.skipBytes(n)
	case kindSequence:
		for i := 0; i < n; i++ {
			if err := d.SkipAny(); err != nil {
				return err
			}
		}
		return nil
	case kindPairSequence:
		for i := 0; i < 2*n; i++ {
			if err := d.SkipAny(); err != nil {
				return err
			}
		}
		return nil
	default:
		return codec.ErrInvalidEncoding("unknown wire tag kind", nil)
	}
}

func (d *Decoder) skipBytes(n int) error {
	return wrapUnderflow(d.r.Skip(n))
}

//region sub-decoders

type sequenceDecoder struct {
	r         codec.Reader
	mode      codec.Mode
	remaining int
}

func (s *sequenceDecoder) Next() (codec.Decoder, bool, error) {
	if s.remaining == 0 {
		return nil, false, nil
	}
	s.remaining--
	return &Decoder{r: s.r, mode: s.mode}, true, nil
}

func (s *sequenceDecoder) SizeHint() (int, bool) { return s.remaining, true }

func (s *sequenceDecoder) End() error {
	for s.remaining > 0 {
		dec := &Decoder{r: s.r, mode: s.mode}
		if err := dec.SkipAny(); err != nil {
			return err
		}
		s.remaining--
	}
	return nil
}

type pairDecoder struct {
	r    codec.Reader
	mode codec.Mode
}

func (p *pairDecoder) First() (codec.Decoder, error)  { return &Decoder{r: p.r, mode: p.mode}, nil }
func (p *pairDecoder) Second() (codec.Decoder, error) { return &Decoder{r: p.r, mode: p.mode}, nil }
func (p *pairDecoder) End() error                     { return nil }

type pairsDecoder struct {
	r         codec.Reader
	mode      codec.Mode
	remaining int
}

func (s *pairsDecoder) Next() (codec.PairDecoder, bool, error) {
	if s.remaining == 0 {
		return nil, false, nil
	}
	s.remaining--
	return &pairDecoder{r: s.r, mode: s.mode}, true, nil
}

func (s *pairsDecoder) End() error {
	for s.remaining > 0 {
		dec := &Decoder{r: s.r, mode: s.mode}
		if err := dec.SkipAny(); err != nil {
			return err
		}
		if err := dec.SkipAny(); err != nil {
			return err
		}
		s.remaining--
	}
	return nil
}

//endregion

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"math"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

// Decoder implements [codec.Decoder] for the tag-free storage format.
type Decoder struct {
	r     codec.Reader
	mode  codec.Mode
	fixed bool
}

// NewDecoder returns a storage [codec.Decoder] reading variable-width
// integers, matching [NewEncoder].
func NewDecoder(r codec.Reader) *Decoder { return &Decoder{r: r, mode: codec.Default} }

// NewDecoderFixed returns a storage [codec.Decoder] reading fixed-width
// integers, matching [NewEncoderFixed].
func NewDecoderFixed(r codec.Reader) *Decoder { return &Decoder{r: r, mode: codec.Default, fixed: true} }

// NewDecoderMode is like NewDecoder but selects a specific [codec.Mode].
func NewDecoderMode(r codec.Reader, mode codec.Mode, fixed bool) *Decoder {
	return &Decoder{r: r, mode: mode, fixed: fixed}
}

func (d *Decoder) Mode() codec.Mode        { return d.mode }
func (d *Decoder) DecodeUnit() error       { return nil }
func (d *Decoder) DecodeUnitStruct() error { return nil }

func (d *Decoder) DecodeBool() (bool, error) {
	b, err := readByte(d.r)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *Decoder) readUint() (uint64, error) {
	if d.fixed {
		var buf [8]byte
		if err := d.r.Read(buf[:]); err != nil {
			return 0, wrapUnderflow(err)
		}
		return varint.Fixed64(buf[:], varint.LittleEndian), nil
	}
	u, err := varint.ReadContinuation[uint64](byteReader{d.r})
	if err != nil {
		return 0, wrapUnderflow(err)
	}
	return u, nil
}

func (d *Decoder) readInt() (int64, error) {
	u, err := d.readUint()
	return varint.UnZigZag[uint64, int64](u), err
}

func (d *Decoder) DecodeChar() (rune, error) {
	u, err := d.readUint()
	return rune(u), err
}

func (d *Decoder) DecodeUint8() (uint8, error) { return readByte(d.r) }
func (d *Decoder) DecodeUint16() (uint16, error) {
	u, err := d.readUint()
	return uint16(u), err
}
func (d *Decoder) DecodeUint32() (uint32, error) {
	u, err := d.readUint()
	return uint32(u), err
}
func (d *Decoder) DecodeUint64() (uint64, error) { return d.readUint() }
func (d *Decoder) DecodeUint() (uint, error) {
	u, err := d.readUint()
	return uint(u), err
}

func (d *Decoder) DecodeInt8() (int8, error) {
	b, err := readByte(d.r)
	if err != nil {
		return 0, err
	}
	return varint.UnZigZag[uint8, int8](b), nil
}
func (d *Decoder) DecodeInt16() (int16, error) {
	i, err := d.readInt()
	return int16(i), err
}
func (d *Decoder) DecodeInt32() (int32, error) {
	i, err := d.readInt()
	return int32(i), err
}
func (d *Decoder) DecodeInt64() (int64, error) { return d.readInt() }
func (d *Decoder) DecodeInt() (int, error) {
	i, err := d.readInt()
	return int(i), err
}

func (d *Decoder) DecodeFloat32() (float32, error) {
	var buf [4]byte
	if err := d.r.Read(buf[:]); err != nil {
		return 0, wrapUnderflow(err)
	}
	return math.Float32frombits(varint.Fixed32(buf[:], varint.LittleEndian)), nil
}

func (d *Decoder) DecodeFloat64() (float64, error) {
	var buf [8]byte
	if err := d.r.Read(buf[:]); err != nil {
		return 0, wrapUnderflow(err)
	}
	return math.Float64frombits(varint.Fixed64(buf[:], varint.LittleEndian)), nil
}

func (d *Decoder) DecodeBytes(v codec.BytesVisitor) error {
	n, err := d.readUint()
	if err != nil {
		return err
	}
	b, err := d.r.Bytes(int(n))
	if err != nil {
		return wrapUnderflow(err)
	}
	return v.VisitBorrowedBytes(b)
}

func (d *Decoder) DecodeArray(n int, v codec.BytesVisitor) error {
	b, err := d.r.Bytes(n)
	if err != nil {
		return wrapUnderflow(err)
	}
	return v.VisitBorrowedBytes(b)
}

func (d *Decoder) DecodeString(v codec.StringVisitor) error {
	n, err := d.readUint()
	if err != nil {
		return err
	}
	b, err := d.r.Bytes(int(n))
	if err != nil {
		return wrapUnderflow(err)
	}
	return v.VisitBorrowedString(string(b))
}

func (d *Decoder) DecodeOption() (bool, codec.Decoder, error) {
	b, err := readByte(d.r)
	if err != nil {
		return false, nil, err
	}
	if b == 0 {
		return false, nil, nil
	}
	return true, &Decoder{r: d.r, mode: d.mode, fixed: d.fixed}, nil
}

func (d *Decoder) DecodeSequence() (codec.SequenceDecoder, error) {
	n, err := d.readUint()
	if err != nil {
		return nil, err
	}
	return &sequenceDecoder{dec: d, remaining: int(n)}, nil
}

func (d *Decoder) DecodeTuple(length int) (codec.SequenceDecoder, error) {
	return &sequenceDecoder{dec: d, remaining: length}, nil
}

func (d *Decoder) DecodeTupleStruct(fields int) (codec.SequenceDecoder, error) {
	return d.DecodeTuple(fields)
}

func (d *Decoder) DecodeMap() (codec.PairsDecoder, error) {
	n, err := d.readUint()
	if err != nil {
		return nil, err
	}
	return &pairsDecoder{dec: d, remaining: int(n)}, nil
}

// DecodeStruct opens a field decoder of expectedFields values, decoded
// purely positionally. The [codec.PairDecoder.First] half of every pair
// synthesizes the zero-based field index rather than reading anything from
// the wire, matching [Encoder.EncodeStruct]'s discard of the same half.
func (d *Decoder) DecodeStruct(expectedFields int) (codec.PairsDecoder, error) {
	return &pairsDecoder{dec: d, remaining: expectedFields, positional: true}, nil
}

func (d *Decoder) DecodeVariant() (codec.PairDecoder, error) {
	return &pairDecoder{dec: d}, nil
}

// SkipAny is not supported: storage carries no tag that would let a decoder
// determine a value's kind or length without already knowing its type.
func (d *Decoder) SkipAny() error {
	return codec.ErrUnsupportedType("storage", codec.KindUnit)
}

//region sub-decoders

type sequenceDecoder struct {
	dec       *Decoder
	remaining int
}

func (s *sequenceDecoder) Next() (codec.Decoder, bool, error) {
	if s.remaining == 0 {
		return nil, false, nil
	}
	s.remaining--
	return &Decoder{r: s.dec.r, mode: s.dec.mode, fixed: s.dec.fixed}, true, nil
}

func (s *sequenceDecoder) SizeHint() (int, bool) { return s.remaining, true }

func (s *sequenceDecoder) End() error {
	if s.remaining != 0 {
		return codec.ErrInvalidEncoding("storage: sequence not fully consumed", nil)
	}
	return nil
}

type positionalKeyDecoder struct {
	codec.UnsupportedDecoder
	index int
}

func (p positionalKeyDecoder) DecodeUint() (uint, error) { return uint(p.index), nil }
func (p positionalKeyDecoder) DecodeInt() (int, error)   { return p.index, nil }

type pairDecoder struct {
	dec        *Decoder
	positional bool
	index      int
}

func (p *pairDecoder) First() (codec.Decoder, error) {
	if p.positional {
		return positionalKeyDecoder{index: p.index}, nil
	}
	return &Decoder{r: p.dec.r, mode: p.dec.mode, fixed: p.dec.fixed}, nil
}

func (p *pairDecoder) Second() (codec.Decoder, error) {
	return &Decoder{r: p.dec.r, mode: p.dec.mode, fixed: p.dec.fixed}, nil
}

func (p *pairDecoder) End() error { return nil }

type pairsDecoder struct {
	dec        *Decoder
	remaining  int
	positional bool
	index      int
}

func (s *pairsDecoder) Next() (codec.PairDecoder, bool, error) {
	if s.remaining == 0 {
		return nil, false, nil
	}
	s.remaining--
	p := &pairDecoder{dec: s.dec, positional: s.positional, index: s.index}
	s.index++
	return p, true, nil
}

func (s *pairsDecoder) End() error {
	if s.remaining != 0 {
		return codec.ErrInvalidEncoding("storage: pairs not fully consumed", nil)
	}
	return nil
}

//endregion

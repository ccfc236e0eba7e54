// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

// Decoder mirrors [Encoder]. A driver package implements it; a user type
// implements [Decodable] to drive it, or relies on
// [codello.dev/codec/codable]'s reflection-based default.
type Decoder interface {
	Mode() Mode

	DecodeUnit() error
	DecodeBool() (bool, error)
	DecodeChar() (rune, error)
	DecodeUint8() (uint8, error)
	DecodeUint16() (uint16, error)
	DecodeUint32() (uint32, error)
	DecodeUint64() (uint64, error)
	DecodeUint() (uint, error)
	DecodeInt8() (int8, error)
	DecodeInt16() (int16, error)
	DecodeInt32() (int32, error)
	DecodeInt64() (int64, error)
	DecodeInt() (int, error)
	DecodeFloat32() (float32, error)
	DecodeFloat64() (float64, error)

	// DecodeBytes decodes a variable-length byte sequence into v.
	DecodeBytes(v BytesVisitor) error
	// DecodeArray decodes a fixed-length byte sequence of exactly n bytes
	// into v. It fails with an invalid-length error if the wire value has a
	// different length.
	DecodeArray(n int, v BytesVisitor) error
	// DecodeString decodes a string into v.
	DecodeString(v StringVisitor) error

	// DecodeOption reports whether an option is present. If present, the
	// returned Decoder must be driven to completion before any further call
	// on the receiver.
	DecodeOption() (present bool, inner Decoder, err error)

	// DecodeSequence opens a homogeneous sequence decoder.
	DecodeSequence() (SequenceDecoder, error)
	// DecodeTuple opens a homogeneous, statically-sized tuple decoder. length
	// is the number of elements the caller expects.
	DecodeTuple(length int) (SequenceDecoder, error)
	// DecodeMap opens a pair-sequence decoder.
	DecodeMap() (PairsDecoder, error)
	// DecodeStruct opens a pair-sequence decoder. expectedFields is a hint,
	// not an enforced requirement — unknown trailing fields are skipped via
	// SkipAny where the driver supports it, for forward compatibility.
	DecodeStruct(expectedFields int) (PairsDecoder, error)
	// DecodeTupleStruct opens a positional struct decoder of fields values.
	DecodeTupleStruct(fields int) (SequenceDecoder, error)
	// DecodeUnitStruct decodes a struct with no fields.
	DecodeUnitStruct() error
	// DecodeVariant opens a pair decoder for an enum case.
	DecodeVariant() (PairDecoder, error)

	// SkipAny consumes exactly one well-formed value of any kind without the
	// caller needing to know what kind it is. This is the forward-compatibility
	// primitive: a decoder reading a newer sender's extra struct fields calls
	// SkipAny on each one it does not recognize.
	SkipAny() error
}

// SequenceDecoder is the sub-protocol returned by DecodeSequence, DecodeTuple,
// and DecodeTupleStruct.
type SequenceDecoder interface {
	// Next returns a Decoder for the next element, or ok=false if the
	// sequence is exhausted. The returned Decoder must be driven to
	// completion before Next is called again.
	Next() (dec Decoder, ok bool, err error)
	// SizeHint reports the remaining element count, if known.
	SizeHint() (n int, known bool)
	// End finalizes the sequence. Calling it before Next reports ok=false is
	// permitted and implicitly skips any remaining elements.
	End() error
}

// PairDecoder is the sub-protocol for a single (first, second) pair.
type PairDecoder interface {
	First() (Decoder, error)
	Second() (Decoder, error)
	End() error
}

// PairsDecoder is the sub-protocol for a whole map or struct.
type PairsDecoder interface {
	// Next returns a [PairDecoder] for the next entry, or ok=false at the
	// end.
	Next() (dec PairDecoder, ok bool, err error)
	End() error
}

// Decodable is implemented by types that know how to decode themselves using
// the protocol.
type Decodable interface {
	DecodeFrom(d Decoder) error
}

// UnsupportedEncoder can be embedded in a driver's concrete Encoder type to
// provide default "unsupported" implementations for every method. The
// embedding type overrides only the methods it actually supports; DriverName
// is reported in the resulting error.
type UnsupportedEncoder struct {
	DriverName string
}

func (u UnsupportedEncoder) unsupported(k Kind) error { return ErrUnsupportedType(u.DriverName, k) }

func (u UnsupportedEncoder) Mode() Mode                       { return Default }
func (u UnsupportedEncoder) EncodeUnit() error                { return u.unsupported(KindUnit) }
func (u UnsupportedEncoder) EncodeBool(bool) error            { return u.unsupported(KindBool) }
func (u UnsupportedEncoder) EncodeChar(rune) error            { return u.unsupported(KindChar) }
func (u UnsupportedEncoder) EncodeUint8(uint8) error          { return u.unsupported(KindUint8) }
func (u UnsupportedEncoder) EncodeUint16(uint16) error        { return u.unsupported(KindUint16) }
func (u UnsupportedEncoder) EncodeUint32(uint32) error        { return u.unsupported(KindUint32) }
func (u UnsupportedEncoder) EncodeUint64(uint64) error        { return u.unsupported(KindUint64) }
func (u UnsupportedEncoder) EncodeUint(uint) error            { return u.unsupported(KindUint) }
func (u UnsupportedEncoder) EncodeInt8(int8) error            { return u.unsupported(KindInt8) }
func (u UnsupportedEncoder) EncodeInt16(int16) error          { return u.unsupported(KindInt16) }
func (u UnsupportedEncoder) EncodeInt32(int32) error          { return u.unsupported(KindInt32) }
func (u UnsupportedEncoder) EncodeInt64(int64) error          { return u.unsupported(KindInt64) }
func (u UnsupportedEncoder) EncodeInt(int) error              { return u.unsupported(KindInt) }
func (u UnsupportedEncoder) EncodeFloat32(float32) error      { return u.unsupported(KindFloat32) }
func (u UnsupportedEncoder) EncodeFloat64(float64) error      { return u.unsupported(KindFloat64) }
func (u UnsupportedEncoder) EncodeBytes([]byte) error         { return u.unsupported(KindBytes) }
func (u UnsupportedEncoder) EncodeArray([]byte) error         { return u.unsupported(KindArray) }
func (u UnsupportedEncoder) EncodeString(string) error        { return u.unsupported(KindString) }
func (u UnsupportedEncoder) EncodeNone() error                { return u.unsupported(KindOption) }
func (u UnsupportedEncoder) EncodeSome() (Encoder, error)     { return nil, u.unsupported(KindOption) }
func (u UnsupportedEncoder) EncodeSequence(int) (SequenceEncoder, error) {
	return nil, u.unsupported(KindSequence)
}
func (u UnsupportedEncoder) EncodeTuple(int) (SequenceEncoder, error) {
	return nil, u.unsupported(KindTuple)
}
func (u UnsupportedEncoder) EncodePack() (SequenceEncoder, error) {
	return nil, u.unsupported(KindSequence)
}
func (u UnsupportedEncoder) EncodeMap(int) (PairsEncoder, error) {
	return nil, u.unsupported(KindMap)
}
func (u UnsupportedEncoder) EncodeStruct(int) (PairsEncoder, error) {
	return nil, u.unsupported(KindStruct)
}
func (u UnsupportedEncoder) EncodeTupleStruct(int) (SequenceEncoder, error) {
	return nil, u.unsupported(KindTupleStruct)
}
func (u UnsupportedEncoder) EncodeUnitStruct() error { return u.unsupported(KindUnitStruct) }
func (u UnsupportedEncoder) EncodeVariant() (PairEncoder, error) {
	return nil, u.unsupported(KindVariant)
}

// UnsupportedDecoder is the [Decoder] counterpart of [UnsupportedEncoder].
type UnsupportedDecoder struct {
	DriverName string
}

func (u UnsupportedDecoder) unsupported(k Kind) error { return ErrUnsupportedType(u.DriverName, k) }

func (u UnsupportedDecoder) Mode() Mode          { return Default }
func (u UnsupportedDecoder) DecodeUnit() error   { return u.unsupported(KindUnit) }
func (u UnsupportedDecoder) DecodeBool() (bool, error) {
	return false, u.unsupported(KindBool)
}
func (u UnsupportedDecoder) DecodeChar() (rune, error) { return 0, u.unsupported(KindChar) }
func (u UnsupportedDecoder) DecodeUint8() (uint8, error) {
	return 0, u.unsupported(KindUint8)
}
func (u UnsupportedDecoder) DecodeUint16() (uint16, error) {
	return 0, u.unsupported(KindUint16)
}
func (u UnsupportedDecoder) DecodeUint32() (uint32, error) {
	return 0, u.unsupported(KindUint32)
}
func (u UnsupportedDecoder) DecodeUint64() (uint64, error) {
	return 0, u.unsupported(KindUint64)
}
func (u UnsupportedDecoder) DecodeUint() (uint, error) { return 0, u.unsupported(KindUint) }
func (u UnsupportedDecoder) DecodeInt8() (int8, error) { return 0, u.unsupported(KindInt8) }
func (u UnsupportedDecoder) DecodeInt16() (int16, error) {
	return 0, u.unsupported(KindInt16)
}
func (u UnsupportedDecoder) DecodeInt32() (int32, error) {
	return 0, u.unsupported(KindInt32)
}
func (u UnsupportedDecoder) DecodeInt64() (int64, error) {
	return 0, u.unsupported(KindInt64)
}
func (u UnsupportedDecoder) DecodeInt() (int, error) { return 0, u.unsupported(KindInt) }
func (u UnsupportedDecoder) DecodeFloat32() (float32, error) {
	return 0, u.unsupported(KindFloat32)
}
func (u UnsupportedDecoder) DecodeFloat64() (float64, error) {
	return 0, u.unsupported(KindFloat64)
}
func (u UnsupportedDecoder) DecodeBytes(BytesVisitor) error  { return u.unsupported(KindBytes) }
func (u UnsupportedDecoder) DecodeArray(int, BytesVisitor) error {
	return u.unsupported(KindArray)
}
func (u UnsupportedDecoder) DecodeString(StringVisitor) error { return u.unsupported(KindString) }
func (u UnsupportedDecoder) DecodeOption() (bool, Decoder, error) {
	return false, nil, u.unsupported(KindOption)
}
func (u UnsupportedDecoder) DecodeSequence() (SequenceDecoder, error) {
	return nil, u.unsupported(KindSequence)
}
func (u UnsupportedDecoder) DecodeTuple(int) (SequenceDecoder, error) {
	return nil, u.unsupported(KindTuple)
}
func (u UnsupportedDecoder) DecodeMap() (PairsDecoder, error) {
	return nil, u.unsupported(KindMap)
}
func (u UnsupportedDecoder) DecodeStruct(int) (PairsDecoder, error) {
	return nil, u.unsupported(KindStruct)
}
func (u UnsupportedDecoder) DecodeTupleStruct(int) (SequenceDecoder, error) {
	return nil, u.unsupported(KindTupleStruct)
}
func (u UnsupportedDecoder) DecodeUnitStruct() error { return u.unsupported(KindUnitStruct) }
func (u UnsupportedDecoder) DecodeVariant() (PairDecoder, error) {
	return nil, u.unsupported(KindVariant)
}
func (u UnsupportedDecoder) SkipAny() error { return u.unsupported(KindUnit) }

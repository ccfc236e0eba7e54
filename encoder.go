// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

// Encoder is the visitor-style sink every Go type encodes itself into. It
// offers one terminal method per scalar [Kind], plus factory
// methods that open a narrower sub-encoder for composite kinds. A driver
// package (wire, storage, json, value) implements this interface; a user
// type implements [Encodable] to drive it.
//
// Every sub-encoder returned by a factory method must be finalized with its
// own End (or Second/End for pairs) before any further call is made on the
// parent Encoder — sub-encoders borrow their parent linearly. Driver
// implementations enforce this at runtime since Go's type system cannot
// express it statically; violating it returns an error rather than
// corrupting output.
type Encoder interface {
	// Mode reports the serialization mode this Encoder was constructed with.
	Mode() Mode

	EncodeUnit() error
	EncodeBool(v bool) error
	EncodeChar(v rune) error
	EncodeUint8(v uint8) error
	EncodeUint16(v uint16) error
	EncodeUint32(v uint32) error
	EncodeUint64(v uint64) error
	EncodeUint(v uint) error
	EncodeInt8(v int8) error
	EncodeInt16(v int16) error
	EncodeInt32(v int32) error
	EncodeInt64(v int64) error
	EncodeInt(v int) error
	EncodeFloat32(v float32) error
	EncodeFloat64(v float64) error

	// EncodeBytes encodes a variable-length byte sequence.
	EncodeBytes(b []byte) error
	// EncodeArray encodes a fixed-length byte sequence; the length is part of
	// the type and need not be (and on some drivers is not) written to the
	// wire.
	EncodeArray(b []byte) error
	EncodeString(s string) error

	// EncodeNone encodes the absence of an optional value.
	EncodeNone() error
	// EncodeSome returns an Encoder for the single present value of an
	// option. The returned Encoder must be driven to completion (exactly one
	// terminal or factory call) before any further call on the receiver.
	EncodeSome() (Encoder, error)

	// EncodeSequence opens a homogeneous sequence encoder of known length. A
	// negative length indicates the length is not known ahead of time, where
	// the driver supports that (value does; wire, storage and json require
	// a known length).
	EncodeSequence(length int) (SequenceEncoder, error)
	// EncodeTuple opens a homogeneous, statically-sized tuple encoder.
	EncodeTuple(length int) (SequenceEncoder, error)
	// EncodePack opens a size-hinted packed sequence encoder, used for
	// densely-packed fixed-width element sequences.
	EncodePack() (SequenceEncoder, error)
	// EncodeMap opens a pair-sequence encoder of length key-value pairs.
	EncodeMap(length int) (PairsEncoder, error)
	// EncodeStruct opens a pair-sequence encoder of fields many (tag, value)
	// pairs.
	EncodeStruct(fields int) (PairsEncoder, error)
	// EncodeTupleStruct opens a positional struct encoder of fields many
	// values (no tags).
	EncodeTupleStruct(fields int) (SequenceEncoder, error)
	// EncodeUnitStruct encodes a struct with no fields.
	EncodeUnitStruct() error
	// EncodeVariant opens a pair encoder for an enum case: first is the
	// discriminant, second is the payload.
	EncodeVariant() (PairEncoder, error)
}

// SequenceEncoder is the sub-protocol returned by EncodeSequence, EncodeTuple,
// EncodePack, and EncodeTupleStruct.
type SequenceEncoder interface {
	// Next returns an Encoder for the next element. It must be driven to
	// completion before Next or End is called again.
	Next() (Encoder, error)
	// End finalizes the sequence. It must be called exactly once, after every
	// element has been written.
	End() error
}

// PairEncoder is the sub-protocol for a single (first, second) pair: one map
// entry, or a variant's (discriminant, payload).
type PairEncoder interface {
	// First returns an Encoder for the first element of the pair (a map key,
	// or a variant discriminant).
	First() (Encoder, error)
	// Second returns an Encoder for the second element of the pair (a map
	// value, or a variant payload). It may only be called after First has
	// been driven to completion.
	Second() (Encoder, error)
	// End finalizes the pair.
	End() error
}

// PairsEncoder is the sub-protocol for a whole map or struct: a sequence of
// pairs.
type PairsEncoder interface {
	// Next returns a [PairEncoder] for the next entry.
	Next() (PairEncoder, error)
	// Insert is a shortcut for Next().First()+encode+Second()+encode+End().
	// encodeKey and encodeValue each drive exactly one Encoder to completion.
	Insert(encodeKey, encodeValue func(Encoder) error) error
	// End finalizes the pairs sequence.
	End() error
}

// Encodable is implemented by types that know how to encode themselves using
// the protocol. Types either implement Encodable by hand, or rely on the
// reflection-based default in [codello.dev/codec/codable].
type Encodable interface {
	EncodeTo(e Encoder) error
}

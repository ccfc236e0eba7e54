// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements a self-describing binary-tagged format: every
// value is prefixed by a 1-byte tag carrying a 3-bit kind and a 5-bit
// embedded length (or a sentinel meaning "read a continuation-encoded length
// next"). The self-describing nature of the tag is what lets
// [Decoder.SkipAny] consume any well-formed value without knowing the schema
// that produced it, the basis for forward and backward compatibility.
//
// The bit layout packs a kind and a length-or-sentinel into one byte with
// the long form deferred to a continuation-encoded integer, the same shape
// ASN.1 BER identifier octets use for class/constructed/tag-number, adapted
// here to a 3-bit-kind/5-bit-or-sentinel-length layout.
package wire

import (
	"io"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

// kind is the 3-bit tag kind.
type kind uint8

const (
	kindMark kind = iota
	kindByte
	kindFixed
	kindContinuation
	kindPrefix
	kindSequence
	kindPairSequence
	kindReserved
)

// sentinel is the low-5-bit value meaning "the real length follows as a
// continuation-encoded integer".
const sentinel = 0x1f

// tagOf packs kind and the low 5 bits of embedded into a single tag byte. It
// does not decide whether embedded needs to be deferred; callers use
// writeLengthTag/writeByteTag for that.
func tagOf(k kind, embedded byte) byte { return byte(k)<<5 | (embedded & 0x1f) }

func (k kind) String() string {
	switch k {
	case kindMark:
		return "mark"
	case kindByte:
		return "byte"
	case kindFixed:
		return "fixed"
	case kindContinuation:
		return "continuation"
	case kindPrefix:
		return "prefix"
	case kindSequence:
		return "sequence"
	case kindPairSequence:
		return "pair-sequence"
	default:
		return "reserved"
	}
}

// kindToGoKind maps a wire tag kind to the nearest abstract [codec.Kind], for
// type-mismatch diagnostics. The mapping is lossy (several protocol kinds
// share one wire kind) but good enough to name what was actually on the
// wire.
func kindToGoKind(k kind) codec.Kind {
	switch k {
	case kindMark:
		return codec.KindOption
	case kindByte:
		return codec.KindUint8
	case kindFixed:
		return codec.KindArray
	case kindContinuation:
		return codec.KindInt64
	case kindPrefix:
		return codec.KindBytes
	case kindSequence:
		return codec.KindSequence
	case kindPairSequence:
		return codec.KindMap
	default:
		return codec.KindUnit
	}
}

// readByte reads a single byte through r, translating underflow into
// io.ErrUnexpectedEOF-flavored codec errors.
func readByte(r codec.Reader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, wrapUnderflow(err)
	}
	return b, nil
}

func wrapUnderflow(err error) error {
	if err == codec.ErrUnderflow {
		return codec.ErrInvalidEncoding("unexpected end of input", io.ErrUnexpectedEOF)
	}
	return err
}

// writeLengthTag writes a tag byte for kind k with an embedded or
// deferred-continuation length n. n must be non-negative.
func writeLengthTag(w codec.Writer, k kind, n int) error {
	if n < sentinel {
		return w.WriteByte(tagOf(k, byte(n)))
	}
	if err := w.WriteByte(tagOf(k, sentinel)); err != nil {
		return err
	}
	_, err := varint.WriteContinuation(byteWriter{w}, uint64(n))
	return err
}

// readLengthTag reads a tag byte and returns the kind it announces and its
// (embedded or deferred) length, whatever that kind is, so the caller can
// compare the kind against the one it expects.
func readLengthTag(r codec.Reader) (k kind, n int, err error) {
	b, err := readByte(r)
	if err != nil {
		return 0, 0, err
	}
	k = kind(b >> 5)
	low := b & 0x1f
	if low != sentinel {
		return k, int(low), nil
	}
	u, err := varint.ReadContinuation[uint64](byteReader{r})
	if err != nil {
		return k, 0, wrapUnderflow(err)
	}
	return k, int(u), nil
}

// writeByteTag writes a [kindByte] tag carrying the literal byte value v,
// embedding it directly when v < 0x1f and otherwise deferring it as a single
// raw byte following the tag.
func writeByteTag(w codec.Writer, v byte) error {
	if v < sentinel {
		return w.WriteByte(tagOf(kindByte, v))
	}
	if err := w.WriteByte(tagOf(kindByte, sentinel)); err != nil {
		return err
	}
	return w.WriteByte(v)
}

// readByteTag reads a tag byte and, if it announces [kindByte], returns its
// value.
func readByteTag(r codec.Reader) (k kind, v byte, err error) {
	b, err := readByte(r)
	if err != nil {
		return 0, 0, err
	}
	k = kind(b >> 5)
	low := b & 0x1f
	if low != sentinel {
		return k, low, nil
	}
	v, err = readByte(r)
	return k, v, err
}

// byteReader/byteWriter adapt [codec.Reader]/[codec.Writer] to the
// io.ByteReader/io.ByteWriter interfaces the varint package expects.
type byteReader struct{ r codec.Reader }

func (b byteReader) ReadByte() (byte, error) { return b.r.ReadByte() }

type byteWriter struct{ w codec.Writer }

func (b byteWriter) WriteByte(c byte) error { return b.w.WriteByte(c) }

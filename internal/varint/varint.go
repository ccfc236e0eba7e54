// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package varint implements the continuation-encoded variable-length integer
// format used by the wire and storage drivers, together with the zig-zag
// transform that adapts it to signed integers. The encoding is little-endian
// base-128: each byte carries seven value bits, and the eighth (high) bit
// signals whether another byte follows. This is the same shape as LEB128,
// little-endian, least significant group first, matching the wire formats
// described in the package documentation of codello.dev/codec.
package varint

import (
	"errors"
	"io"
	"math/bits"
)

// ErrOverflow indicates that a continuation-encoded integer used more groups
// than the target type can hold non-zero bits for.
var ErrOverflow = errors.New("varint: value overflows target type")

// Unsigned is the set of integer types that the continuation codec can
// target.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of integer types the zig-zag transform can target.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ReadContinuation parses an unsigned continuation-encoded integer from r. The
// maximum representable value is bound by the width of T; a value that would
// require more bits than T holds fails with [ErrOverflow].
//
// If r returns io.EOF on the very first byte, that io.EOF is returned
// unchanged. Any later io.EOF (a continuation byte announced but never
// delivered) is reported as io.ErrUnexpectedEOF.
func ReadContinuation[T Unsigned](r io.ByteReader) (T, error) {
	var ret T
	shift := 0
	width := bitWidth(ret)
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if i == 0 {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		if shift >= width {
			// every bit of T is already spoken for; any further group must be
			// entirely zero or the value does not fit.
			if b&0x7f != 0 {
				return 0, ErrOverflow
			}
		} else if bits.Len8(b&0x7f) > width-shift {
			return 0, ErrOverflow
		} else {
			ret |= T(b&0x7f) << shift
		}
		if b&0x80 == 0 {
			return ret, nil
		}
		shift += 7
	}
}

// WriteContinuation encodes v as an unsigned continuation-encoded integer and
// writes it to w, returning the number of bytes written.
func WriteContinuation[T Unsigned](w io.ByteWriter, v T) (int, error) {
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return n, err
		}
		n++
		if v == 0 {
			return n, nil
		}
	}
}

// LenContinuation returns the number of bytes needed to encode v as an
// unsigned continuation-encoded integer.
func LenContinuation[T Unsigned](v T) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// ZigZag maps a signed integer to an unsigned one of the same width such that
// small-magnitude values (positive or negative) map to small unsigned values.
// ZigZag(0) == 0, ZigZag(-1) == 1, ZigZag(1) == 2, and so on.
func ZigZag[S Signed, U Unsigned](v S) U {
	width := bitWidth(v)
	return U(v<<1) ^ U(v>>(width-1))
}

// UnZigZag is the inverse of [ZigZag].
func UnZigZag[U Unsigned, S Signed](v U) S {
	return S(v>>1) ^ -S(v&1)
}

// bitWidth returns the bit width of the concrete type of v.
func bitWidth[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) int {
	switch any(v).(type) {
	case uint8, int8:
		return 8
	case uint16, int16:
		return 16
	case uint32, int32:
		return 32
	default:
		return 64
	}
}

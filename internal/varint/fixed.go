// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varint

import "encoding/binary"

// Endian identifies the byte order used by the fixed-width integer codec.
type Endian int

const (
	// LittleEndian writes the least significant byte first.
	LittleEndian Endian = iota
	// BigEndian writes the most significant byte first.
	BigEndian
	// NetworkEndian is an alias for [BigEndian], named for the configuration
	// knob exposed by drivers that let callers pick a byte order explicitly.
	NetworkEndian
)

// byteOrder returns the [binary.ByteOrder] implementation for e.
func (e Endian) byteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// PutFixed64 writes v into buf (which must be at least 8 bytes) using the byte
// order of e.
func PutFixed64(buf []byte, e Endian, v uint64) { e.byteOrder().PutUint64(buf, v) }

// PutFixed32 writes v into buf (which must be at least 4 bytes) using the byte
// order of e.
func PutFixed32(buf []byte, e Endian, v uint32) { e.byteOrder().PutUint32(buf, v) }

// PutFixed16 writes v into buf (which must be at least 2 bytes) using the byte
// order of e.
func PutFixed16(buf []byte, e Endian, v uint16) { e.byteOrder().PutUint16(buf, v) }

// Fixed64 reads 8 bytes from buf using the byte order of e.
func Fixed64(buf []byte, e Endian) uint64 { return e.byteOrder().Uint64(buf) }

// Fixed32 reads 4 bytes from buf using the byte order of e.
func Fixed32(buf []byte, e Endian) uint32 { return e.byteOrder().Uint32(buf) }

// Fixed16 reads 2 bytes from buf using the byte order of e.
func Fixed16(buf []byte, e Endian) uint16 { return e.byteOrder().Uint16(buf) }

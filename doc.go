// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec implements a multi-format, schema-driven serialization
// protocol. The protocol is a visitor-style abstraction (see [Encoder] and
// [Decoder]) that lets aggregate Go types — structs, slices, maps, pointers —
// be serialized without knowing which concrete byte or character
// representation will carry them. Four drivers realize the protocol:
//
//   - [codello.dev/codec/wire]: a self-describing tagged binary format that
//     supports skipping unknown fields for forward compatibility.
//   - [codello.dev/codec/storage]: a compact, tag-free binary format for
//     parties that share a schema out of band.
//   - [codello.dev/codec/json]: a conforming JSON text format.
//   - [codello.dev/codec/value]: an in-memory value tree that lets any pair of
//     the above interoperate by round-tripping through it.
//
// Concrete Go types participate in the protocol either by implementing
// [Encodable]/[Decodable] directly, or by relying on the reflection-based
// struct/slice/map codec in [codello.dev/codec/codable], which inspects a
// type's fields (via `codec` struct tags) once, and drives the same
// Encoder/Decoder protocol every hand-written implementation uses.
//
// # Package layout
//
// This package defines the protocol itself: the [Reader]/[Writer]
// abstraction, the [Mode] marker, the [Encoder]/[Decoder] interfaces and
// their sub-encoder/sub-decoder protocols, the [StringVisitor]/[BytesVisitor]
// abstraction, and the structured [Error] type. It intentionally does not
// depend on any of the four driver packages; they depend on it.
package codec

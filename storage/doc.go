// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage implements a compact, tag-free binary format for parties
// that share a schema out of band. Unlike [codello.dev/codec/wire], values
// carry no self-describing tag byte: every scalar is written as either a
// compact continuation-encoded integer or a fixed-width one (selected once
// per [Encoder]/[Decoder] pair via [NewEncoderFixed]/[NewDecoderFixed]), and
// every composite is written purely positionally. A struct's field names
// never touch the wire; [Encoder.EncodeStruct] emits exactly the same bytes
// [Encoder.EncodeTupleStruct] would for the same field values in the same
// order.
//
// Because there is no tag byte, storage has no [codec.Decoder.SkipAny]
// support for values whose kind is not already known, and sequences and maps
// must carry a known length at encode time (a negative length is rejected).
package storage

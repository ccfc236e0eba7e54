// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

// Kind identifies the shape of a value in the protocol's data model. Every
// scalar method and every sub-encoder/sub-decoder factory on [Encoder] and
// [Decoder] corresponds to exactly one Kind.
//
//go:generate stringer -type=Kind
type Kind uint8

const (
	KindUnit Kind = iota
	KindBool
	KindChar
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindFloat32
	KindFloat64
	KindBytes
	KindArray
	KindString
	KindOption
	KindSequence
	KindTuple
	KindMap
	KindStruct
	KindTupleStruct
	KindUnitStruct
	KindVariant
)

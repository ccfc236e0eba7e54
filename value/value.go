// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "codello.dev/codec"

// Value is a materialized instance of any shape [codec.Encoder]/
// [codec.Decoder] can represent. The zero Value has [codec.KindUnit].
//
// Go has no 128-bit integer type, so the unsigned/signed 128-bit case the
// wire formats describe as an aspirational width is represented here (and
// everywhere else in this module) by its 64-bit field; see DESIGN.md.
type Value struct {
	kind codec.Kind

	b     bool
	ch    rune
	u     uint64
	i     int64
	f32   float32
	f64   float64
	bytes []byte
	str   string

	some    *Value
	items   []Value
	pairs   []Pair
	tag     *Value
	payload *Value
}

// Pair is one (key, value) entry of a [Map] or [Struct] value, or the
// (discriminant, payload) of a [Variant].
type Pair struct {
	Key   Value
	Value Value
}

// Kind reports the shape of v.
func (v Value) Kind() codec.Kind { return v.kind }

// Bool returns v's boolean payload. It does not check v.Kind() and returns
// false for a v that is not [codec.KindBool]; decoding through [NewDecoder]
// reports a typed error instead.
func (v Value) Bool() bool { return v.b }

// Char returns v's rune payload.
func (v Value) Char() rune { return v.ch }

// Uint returns v's unsigned integer payload, regardless of which Uint*
// width constructor built it.
func (v Value) Uint() uint64 { return v.u }

// Int returns v's signed integer payload, regardless of which Int* width
// constructor built it.
func (v Value) Int() int64 { return v.i }

func (v Value) Float32() float32 { return v.f32 }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) Bytes() []byte    { return v.bytes }
func (v Value) String() string   { return v.str }

// Some returns the inner value of a present [Option], or nil for an absent
// one.
func (v Value) Some() *Value { return v.some }

// Items returns the elements of a [Sequence], [Tuple], or [TupleStruct].
func (v Value) Items() []Value { return v.items }

// Pairs returns the entries of a [Map] or [Struct].
func (v Value) Pairs() []Pair { return v.pairs }

// Tag returns a [Variant]'s discriminant.
func (v Value) Tag() *Value { return v.tag }

// Payload returns a [Variant]'s payload.
func (v Value) Payload() *Value { return v.payload }

func Unit() Value       { return Value{kind: codec.KindUnit} }
func UnitStruct() Value { return Value{kind: codec.KindUnitStruct} }
func Bool(b bool) Value { return Value{kind: codec.KindBool, b: b} }
func Char(r rune) Value { return Value{kind: codec.KindChar, ch: r} }

func Uint8(v uint8) Value   { return Value{kind: codec.KindUint8, u: uint64(v)} }
func Uint16(v uint16) Value { return Value{kind: codec.KindUint16, u: uint64(v)} }
func Uint32(v uint32) Value { return Value{kind: codec.KindUint32, u: uint64(v)} }
func Uint64(v uint64) Value { return Value{kind: codec.KindUint64, u: v} }
func Uint(v uint) Value     { return Value{kind: codec.KindUint, u: uint64(v)} }

func Int8(v int8) Value   { return Value{kind: codec.KindInt8, i: int64(v)} }
func Int16(v int16) Value { return Value{kind: codec.KindInt16, i: int64(v)} }
func Int32(v int32) Value { return Value{kind: codec.KindInt32, i: int64(v)} }
func Int64(v int64) Value { return Value{kind: codec.KindInt64, i: v} }
func Int(v int) Value     { return Value{kind: codec.KindInt, i: int64(v)} }

func Float32(v float32) Value { return Value{kind: codec.KindFloat32, f32: v} }
func Float64(v float64) Value { return Value{kind: codec.KindFloat64, f64: v} }

// Bytes constructs a variable-length byte-sequence value. b is copied.
func Bytes(b []byte) Value { return Value{kind: codec.KindBytes, bytes: append([]byte(nil), b...)} }

// Array constructs a fixed-length byte-sequence value. b is copied.
func Array(b []byte) Value { return Value{kind: codec.KindArray, bytes: append([]byte(nil), b...)} }

func String(s string) Value { return Value{kind: codec.KindString, str: s} }

// None constructs an absent option.
func None() Value { return Value{kind: codec.KindOption} }

// Some constructs a present option wrapping inner.
func Some(inner Value) Value { return Value{kind: codec.KindOption, some: &inner} }

func Sequence(items []Value) Value    { return Value{kind: codec.KindSequence, items: items} }
func Tuple(items []Value) Value       { return Value{kind: codec.KindTuple, items: items} }
func TupleStruct(items []Value) Value { return Value{kind: codec.KindTupleStruct, items: items} }

func Map(pairs []Pair) Value    { return Value{kind: codec.KindMap, pairs: pairs} }
func Struct(pairs []Pair) Value { return Value{kind: codec.KindStruct, pairs: pairs} }

// Variant constructs an enum case out of its discriminant and payload.
func Variant(tag, payload Value) Value {
	return Value{kind: codec.KindVariant, tag: &tag, payload: &payload}
}

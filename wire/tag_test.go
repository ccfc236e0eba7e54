// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"codello.dev/codec"
)

func TestSmallUnsignedByteVector(t *testing.T) {
	w := codec.NewBufferWriter()
	if err := NewEncoder(w).EncodeUint16(42); err != nil {
		t.Fatal(err)
	}
	got := codec.BufferWriterBytes(w)
	want := []byte{0x60, 0x2A}
	if !bytes.Equal(got, want) {
		t.Errorf("encode(42u16) = % X, want % X", got, want)
	}

	r := codec.NewReader(got)
	v, err := NewDecoder(r).DecodeUint16()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Errorf("decode = %d, want 42", v)
	}
}

func TestStructWithNamedFieldsByteVector(t *testing.T) {
	w := codec.NewBufferWriter()
	enc := NewEncoder(w)
	pairs, err := enc.EncodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := pairs.Insert(
		func(e codec.Encoder) error { return e.EncodeString("string") },
		func(e codec.Encoder) error { return e.EncodeString("foo") },
	); err != nil {
		t.Fatal(err)
	}
	if err := pairs.Insert(
		func(e codec.Encoder) error { return e.EncodeString("number") },
		func(e codec.Encoder) error { return e.EncodeUint64(42) },
	); err != nil {
		t.Fatal(err)
	}
	if err := pairs.End(); err != nil {
		t.Fatal(err)
	}

	var want []byte
	want = append(want, tagOf(kindPairSequence, 2))
	want = append(want, tagOf(kindPrefix, 6))
	want = append(want, "string"...)
	want = append(want, tagOf(kindPrefix, 3))
	want = append(want, "foo"...)
	want = append(want, tagOf(kindPrefix, 6))
	want = append(want, "number"...)
	want = append(want, tagOf(kindContinuation, 0))
	want = append(want, 42)

	got := codec.BufferWriterBytes(w)
	if !bytes.Equal(got, want) {
		t.Errorf("named struct bytes = % X, want % X", got, want)
	}
}

func TestIndexedStructByteVector(t *testing.T) {
	w := codec.NewBufferWriter()
	enc := NewEncoder(w)
	pairs, err := enc.EncodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := pairs.Insert(
		func(e codec.Encoder) error { return e.EncodeUint(0) },
		func(e codec.Encoder) error { return e.EncodeString("foo") },
	); err != nil {
		t.Fatal(err)
	}
	if err := pairs.Insert(
		func(e codec.Encoder) error { return e.EncodeUint(1) },
		func(e codec.Encoder) error { return e.EncodeUint64(42) },
	); err != nil {
		t.Fatal(err)
	}
	if err := pairs.End(); err != nil {
		t.Fatal(err)
	}

	var want []byte
	want = append(want, tagOf(kindPairSequence, 2))
	want = append(want, tagOf(kindContinuation, 0), 0)
	want = append(want, tagOf(kindPrefix, 3))
	want = append(want, "foo"...)
	want = append(want, tagOf(kindContinuation, 0), 1)
	want = append(want, tagOf(kindContinuation, 0), 42)

	got := codec.BufferWriterBytes(w)
	if !bytes.Equal(got, want) {
		t.Errorf("indexed struct bytes = % X, want % X", got, want)
	}
}

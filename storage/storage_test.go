// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"codello.dev/codec"
)

func roundtripUint32(t *testing.T, v uint32) uint32 {
	t.Helper()
	w := codec.NewBufferWriter()
	if err := NewEncoder(w).EncodeUint32(v); err != nil {
		t.Fatalf("EncodeUint32(%d): %v", v, err)
	}
	got, err := NewDecoder(codec.NewReader(codec.BufferWriterBytes(w))).DecodeUint32()
	if err != nil {
		t.Fatalf("DecodeUint32: %v", err)
	}
	return got
}

func TestScalarRoundtrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 1000, 1 << 20, ^uint32(0)} {
		if got := roundtripUint32(t, v); got != v {
			t.Errorf("roundtrip(%d) = %d", v, got)
		}
	}
}

func TestFixedWidthRoundtrip(t *testing.T) {
	w := codec.NewBufferWriter()
	enc := NewEncoderFixed(w)
	if err := enc.EncodeInt64(-12345); err != nil {
		t.Fatal(err)
	}
	data := codec.BufferWriterBytes(w)
	if len(data) != 8 {
		t.Fatalf("fixed int64 encoding length = %d, want 8", len(data))
	}
	dec := NewDecoderFixed(codec.NewReader(data))
	got, err := dec.DecodeInt64()
	if err != nil {
		t.Fatal(err)
	}
	if got != -12345 {
		t.Errorf("got %d, want -12345", got)
	}
}

func TestStructIsPositional(t *testing.T) {
	// A struct encoded with EncodeStruct must produce the exact same bytes as
	// the same values encoded with EncodeTupleStruct: field names never touch
	// the wire.
	encodeStruct := func(enc codec.Encoder) []byte {
		se, err := enc.(*Encoder).EncodeStruct(2)
		if err != nil {
			t.Fatal(err)
		}
		if err := se.Insert(
			func(e codec.Encoder) error { return e.EncodeString("id") },
			func(e codec.Encoder) error { return e.EncodeUint32(7) },
		); err != nil {
			t.Fatal(err)
		}
		if err := se.Insert(
			func(e codec.Encoder) error { return e.EncodeString("name") },
			func(e codec.Encoder) error { return e.EncodeString("ok") },
		); err != nil {
			t.Fatal(err)
		}
		return nil
	}
	w1 := codec.NewBufferWriter()
	encodeStruct(NewEncoder(w1))
	out1 := codec.BufferWriterBytes(w1)

	w2 := codec.NewBufferWriter()
	te := NewEncoder(w2)
	tse, err := te.EncodeTupleStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	e1, err := tse.Next()
	if err != nil {
		t.Fatal(err)
	}
	if err := e1.EncodeUint32(7); err != nil {
		t.Fatal(err)
	}
	e2, err := tse.Next()
	if err != nil {
		t.Fatal(err)
	}
	if err := e2.EncodeString("ok"); err != nil {
		t.Fatal(err)
	}
	if err := tse.End(); err != nil {
		t.Fatal(err)
	}
	out2 := codec.BufferWriterBytes(w2)

	if diff := cmp.Diff(out2, out1); diff != "" {
		t.Errorf("struct vs tuple-struct encoding mismatch (-tuple +struct):\n%s", diff)
	}
}

func TestDecodeStructPositionalKeys(t *testing.T) {
	w := codec.NewBufferWriter()
	se, err := NewEncoder(w).EncodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := se.Insert(
		func(e codec.Encoder) error { return e.EncodeString("a") },
		func(e codec.Encoder) error { return e.EncodeUint32(1) },
	); err != nil {
		t.Fatal(err)
	}
	if err := se.Insert(
		func(e codec.Encoder) error { return e.EncodeString("b") },
		func(e codec.Encoder) error { return e.EncodeUint32(2) },
	); err != nil {
		t.Fatal(err)
	}
	if err := se.End(); err != nil {
		t.Fatal(err)
	}

	dec := NewDecoder(codec.NewReader(codec.BufferWriterBytes(w)))
	sd, err := dec.DecodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	var indices []uint
	var values []uint32
	for {
		pd, ok, err := sd.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		keyDec, err := pd.First()
		if err != nil {
			t.Fatal(err)
		}
		idx, err := keyDec.DecodeUint()
		if err != nil {
			t.Fatal(err)
		}
		valDec, err := pd.Second()
		if err != nil {
			t.Fatal(err)
		}
		v, err := valDec.DecodeUint32()
		if err != nil {
			t.Fatal(err)
		}
		indices = append(indices, idx)
		values = append(values, v)
	}
	if diff := cmp.Diff([]uint{0, 1}, indices); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint32{1, 2}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSkipAnyUnsupported(t *testing.T) {
	dec := NewDecoder(codec.NewReader(nil))
	if err := dec.SkipAny(); err == nil {
		t.Fatal("expected SkipAny to be unsupported")
	}
}

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"codello.dev/codec"
)

func TestScalarRoundtrip(t *testing.T) {
	var out Value
	if err := NewEncoder(&out).EncodeUint32(42); err != nil {
		t.Fatal(err)
	}
	got, err := NewDecoder(&out).DecodeUint32()
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestScalarMismatchReportsTypeError(t *testing.T) {
	v := Uint32(7)
	err := NewDecoder(&v).DecodeString(&codec.OwnedString{})
	if err == nil {
		t.Fatal("expected type-mismatch error, got nil")
	}
}

func TestStringRoundtrip(t *testing.T) {
	var out Value
	if err := NewEncoder(&out).EncodeString("hello"); err != nil {
		t.Fatal(err)
	}
	var sv codec.OwnedString
	if err := NewDecoder(&out).DecodeString(&sv); err != nil {
		t.Fatal(err)
	}
	if sv.Value != "hello" {
		t.Errorf("got %q, want %q", sv.Value, "hello")
	}
}

func TestBytesRoundtrip(t *testing.T) {
	var out Value
	if err := NewEncoder(&out).EncodeBytes([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	var bv codec.OwnedBytes
	if err := NewDecoder(&out).DecodeBytes(&bv); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3}, bv.Value); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionRoundtrip(t *testing.T) {
	var out Value
	enc := NewEncoder(&out)
	inner, err := enc.EncodeSome()
	if err != nil {
		t.Fatal(err)
	}
	if err := inner.EncodeUint8(9); err != nil {
		t.Fatal(err)
	}

	ok, dec, err := NewDecoder(&out).DecodeOption()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected present option")
	}
	got, err := dec.DecodeUint8()
	if err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Errorf("got %d, want 9", got)
	}
}

func TestAbsentOptionRoundtrip(t *testing.T) {
	var out Value
	if err := NewEncoder(&out).EncodeNone(); err != nil {
		t.Fatal(err)
	}
	ok, dec, err := NewDecoder(&out).DecodeOption()
	if err != nil {
		t.Fatal(err)
	}
	if ok || dec != nil {
		t.Fatalf("expected absent option, got ok=%v dec=%v", ok, dec)
	}
}

func TestSequenceRoundtrip(t *testing.T) {
	var out Value
	seq, err := NewEncoder(&out).EncodeSequence(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []uint32{10, 20, 30} {
		elem, err := seq.Next()
		if err != nil {
			t.Fatal(err)
		}
		if err := elem.EncodeUint32(v); err != nil {
			t.Fatal(err)
		}
	}
	if err := seq.End(); err != nil {
		t.Fatal(err)
	}

	dseq, err := NewDecoder(&out).DecodeSequence()
	if err != nil {
		t.Fatal(err)
	}
	var got []uint32
	for {
		elem, ok, err := dseq.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		v, err := elem.DecodeUint32()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]uint32{10, 20, 30}, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestStructRoundtrip(t *testing.T) {
	var out Value
	fields, err := NewEncoder(&out).EncodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := fields.Insert(
		func(e codec.Encoder) error { return e.EncodeString("id") },
		func(e codec.Encoder) error { return e.EncodeUint64(7) },
	); err != nil {
		t.Fatal(err)
	}
	if err := fields.Insert(
		func(e codec.Encoder) error { return e.EncodeString("name") },
		func(e codec.Encoder) error { return e.EncodeString("ok") },
	); err != nil {
		t.Fatal(err)
	}
	if err := fields.End(); err != nil {
		t.Fatal(err)
	}

	dfields, err := NewDecoder(&out).DecodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]any{}
	for {
		pair, ok, err := dfields.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		keyDec, err := pair.First()
		if err != nil {
			t.Fatal(err)
		}
		var key codec.OwnedString
		if err := keyDec.DecodeString(&key); err != nil {
			t.Fatal(err)
		}
		valDec, err := pair.Second()
		if err != nil {
			t.Fatal(err)
		}
		switch key.Value {
		case "id":
			v, err := valDec.DecodeUint64()
			if err != nil {
				t.Fatal(err)
			}
			got["id"] = v
		case "name":
			var sv codec.OwnedString
			if err := valDec.DecodeString(&sv); err != nil {
				t.Fatal(err)
			}
			got["name"] = sv.Value
		}
		if err := pair.End(); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]any{"id": uint64(7), "name": "ok"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("struct mismatch (-want +got):\n%s", diff)
	}
}

func TestVariantRoundtrip(t *testing.T) {
	var out Value
	pair, err := NewEncoder(&out).EncodeVariant()
	if err != nil {
		t.Fatal(err)
	}
	tagEnc, err := pair.First()
	if err != nil {
		t.Fatal(err)
	}
	if err := tagEnc.EncodeString("Stop"); err != nil {
		t.Fatal(err)
	}
	payloadEnc, err := pair.Second()
	if err != nil {
		t.Fatal(err)
	}
	if err := payloadEnc.EncodeUnit(); err != nil {
		t.Fatal(err)
	}
	if err := pair.End(); err != nil {
		t.Fatal(err)
	}

	dpair, err := NewDecoder(&out).DecodeVariant()
	if err != nil {
		t.Fatal(err)
	}
	tagDec, err := dpair.First()
	if err != nil {
		t.Fatal(err)
	}
	var tag codec.OwnedString
	if err := tagDec.DecodeString(&tag); err != nil {
		t.Fatal(err)
	}
	if tag.Value != "Stop" {
		t.Errorf("tag = %q, want %q", tag.Value, "Stop")
	}
	payloadDec, err := dpair.Second()
	if err != nil {
		t.Fatal(err)
	}
	if err := payloadDec.DecodeUnit(); err != nil {
		t.Fatal(err)
	}
}

func TestDirectlyBuiltMapDecodes(t *testing.T) {
	// A Value built directly (bypassing a driver) must decode cleanly: this
	// is what lets two unrelated drivers interoperate through the value
	// tree, per package doc.
	v := Map([]Pair{
		{Key: Uint32(1), Value: String("one")},
		{Key: Uint32(2), Value: String("two")},
	})
	dec, err := NewDecoder(&v).DecodeMap()
	if err != nil {
		t.Fatal(err)
	}
	got := map[uint32]string{}
	for {
		pair, ok, err := dec.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		keyDec, err := pair.First()
		if err != nil {
			t.Fatal(err)
		}
		key, err := keyDec.DecodeUint32()
		if err != nil {
			t.Fatal(err)
		}
		valDec, err := pair.Second()
		if err != nil {
			t.Fatal(err)
		}
		var sv codec.OwnedString
		if err := valDec.DecodeString(&sv); err != nil {
			t.Fatal(err)
		}
		got[key] = sv.Value
	}
	want := map[uint32]string{1: "one", 2: "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

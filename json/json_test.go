// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"codello.dev/codec"
)

func encode(t *testing.T, f func(codec.Encoder) error) string {
	t.Helper()
	w := codec.NewBufferWriter()
	if err := f(NewEncoder(w)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(codec.BufferWriterBytes(w))
}

func TestScalarEncoding(t *testing.T) {
	cases := []struct {
		name string
		f    func(codec.Encoder) error
		want string
	}{
		{"bool-true", func(e codec.Encoder) error { return e.EncodeBool(true) }, "true"},
		{"bool-false", func(e codec.Encoder) error { return e.EncodeBool(false) }, "false"},
		{"uint", func(e codec.Encoder) error { return e.EncodeUint32(42) }, "42"},
		{"negative-int", func(e codec.Encoder) error { return e.EncodeInt32(-7) }, "-7"},
		{"string", func(e codec.Encoder) error { return e.EncodeString("hi\nthere") }, `"hi\nthere"`},
		{"none", func(e codec.Encoder) error { return e.EncodeNone() }, "null"},
		{"unit", func(e codec.Encoder) error { return e.EncodeUnit() }, "null"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := encode(t, c.f); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestStructRendersRealKeys(t *testing.T) {
	w := codec.NewBufferWriter()
	se, err := NewEncoder(w).EncodeStruct(2)
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
	if err := se.End(); err != nil {
		t.Fatal(err)
	}
	got := string(codec.BufferWriterBytes(w))
	want := `{"id":7,"name":"ok"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVariantSingleKeyObject(t *testing.T) {
	w := codec.NewBufferWriter()
	ve, err := NewEncoder(w).EncodeVariant()
	if err != nil {
		t.Fatal(err)
	}
	key, err := ve.First()
	if err != nil {
		t.Fatal(err)
	}
	if err := key.EncodeString("Stop"); err != nil {
		t.Fatal(err)
	}
	val, err := ve.Second()
	if err != nil {
		t.Fatal(err)
	}
	if err := val.EncodeUnit(); err != nil {
		t.Fatal(err)
	}
	if err := ve.End(); err != nil {
		t.Fatal(err)
	}
	got := string(codec.BufferWriterBytes(w))
	want := `{"Stop":null}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSequenceRoundtrip(t *testing.T) {
	w := codec.NewBufferWriter()
	se, err := NewEncoder(w).EncodeSequence(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []uint32{1, 2, 3} {
		ee, err := se.Next()
		if err != nil {
			t.Fatal(err)
		}
		if err := ee.EncodeUint32(v); err != nil {
			t.Fatal(err)
		}
	}
	if err := se.End(); err != nil {
		t.Fatal(err)
	}
	data := codec.BufferWriterBytes(w)
	if string(data) != "[1,2,3]" {
		t.Fatalf("got %q", data)
	}

	dec := NewDecoder(codec.NewReader(data))
	sd, err := dec.DecodeSequence()
	if err != nil {
		t.Fatal(err)
	}
	var got []uint32
	for {
		ed, ok, err := sd.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		v, err := ed.DecodeUint32()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if err := sd.End(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberLiteralDecodesExactInteger(t *testing.T) {
	dec := NewDecoder(codec.NewReader([]byte("123456789012")))
	v, err := dec.DecodeInt64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 123456789012 {
		t.Errorf("got %d", v)
	}
}

func TestNumberLiteralWithFractionRejectedAsInt(t *testing.T) {
	dec := NewDecoder(codec.NewReader([]byte("1.5")))
	if _, err := dec.DecodeInt64(); err == nil {
		t.Fatal("expected an error decoding 1.5 as int64")
	}
}

func TestNumberLiteralOverflowReportsOverflow(t *testing.T) {
	dec := NewDecoder(codec.NewReader([]byte("99999999999999999999999999999999999")))
	if _, err := dec.DecodeUint32(); err == nil {
		t.Fatal("expected an overflow error decoding a literal too large for uint32")
	}
}

func TestIntegerObjectKeyRoundtrip(t *testing.T) {
	w := codec.NewBufferWriter()
	pairs, err := NewEncoder(w).EncodeMap(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := pairs.Insert(
		func(e codec.Encoder) error { return e.EncodeUint64(7) },
		func(e codec.Encoder) error { return e.EncodeString("v") },
	); err != nil {
		t.Fatal(err)
	}
	if err := pairs.End(); err != nil {
		t.Fatal(err)
	}
	got := string(codec.BufferWriterBytes(w))
	if got != `{"7":"v"}` {
		t.Fatalf("encode(map[7]=v) = %s, want {\"7\":\"v\"}", got)
	}

	dec := NewDecoder(codec.NewReader(codec.BufferWriterBytes(w)))
	md, err := dec.DecodeMap()
	if err != nil {
		t.Fatal(err)
	}
	pd, ok, err := md.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (ok=%v, err=%v), want a pair", ok, err)
	}
	keyDec, err := pd.First()
	if err != nil {
		t.Fatal(err)
	}
	key, err := keyDec.DecodeUint64()
	if err != nil {
		t.Fatal(err)
	}
	if key != 7 {
		t.Errorf("decoded key = %d, want 7", key)
	}
}

func TestDecodeStructUnknownFieldSkipped(t *testing.T) {
	data := []byte(`{"id":1,"extra":[1,2,{"a":"b"}],"name":"ok"}`)
	dec := NewDecoder(codec.NewReader(data))
	sd, err := dec.DecodeStruct(2)
	if err != nil {
		t.Fatal(err)
	}
	fields := map[string]string{}
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
		var key codec.OwnedString
		if err := keyDec.DecodeString(&key); err != nil {
			t.Fatal(err)
		}
		valDec, err := pd.Second()
		if err != nil {
			t.Fatal(err)
		}
		if key.Value == "extra" {
			if err := valDec.SkipAny(); err != nil {
				t.Fatal(err)
			}
			continue
		}
		var s codec.OwnedString
		if key.Value == "name" {
			if err := valDec.DecodeString(&s); err != nil {
				t.Fatal(err)
			}
			fields[key.Value] = s.Value
		} else {
			n, err := valDec.DecodeInt()
			if err != nil {
				t.Fatal(err)
			}
			fields[key.Value] = strconv.Itoa(n)
		}
	}
	if err := sd.End(); err != nil {
		t.Fatal(err)
	}
	if fields["id"] != "1" || fields["name"] != "ok" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestOptionRoundtrip(t *testing.T) {
	w := codec.NewBufferWriter()
	enc := NewEncoder(w)
	se, err := enc.EncodeSome()
	if err != nil {
		t.Fatal(err)
	}
	if err := se.EncodeUint32(9); err != nil {
		t.Fatal(err)
	}
	data := codec.BufferWriterBytes(w)

	dec := NewDecoder(codec.NewReader(data))
	present, inner, err := dec.DecodeOption()
	if err != nil {
		t.Fatal(err)
	}
	if !present {
		t.Fatal("expected present option")
	}
	v, err := inner.DecodeUint32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 9 {
		t.Errorf("got %d", v)
	}

	dec2 := NewDecoder(codec.NewReader([]byte("null")))
	present2, _, err := dec2.DecodeOption()
	if err != nil {
		t.Fatal(err)
	}
	if present2 {
		t.Fatal("expected absent option")
	}
}

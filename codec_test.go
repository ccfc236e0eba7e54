// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"math"
	"testing"

	"codello.dev/codec"
	"codello.dev/codec/internal/varint"
)

func TestContinuationRoundtrip(t *testing.T) {
	cases := []uint64{0, 1, 63, 127, 128, 1000, 1 << 20, math.MaxUint32, math.MaxUint64}
	for _, v := range cases {
		var buf bytes.Buffer
		if _, err := varint.WriteContinuation(&buf, v); err != nil {
			t.Fatalf("WriteContinuation(%d): %v", v, err)
		}
		got, err := varint.ReadContinuation[uint64](&buf)
		if err != nil {
			t.Fatalf("ReadContinuation(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("roundtrip: got %d, want %d", got, v)
		}
	}
}

func TestContinuationConcatenatedValues(t *testing.T) {
	var buf bytes.Buffer
	varint.WriteContinuation[uint64](&buf, 1000)
	varint.WriteContinuation[uint64](&buf, 42)

	first, err := varint.ReadContinuation[uint64](&buf)
	if err != nil || first != 1000 {
		t.Fatalf("first value: got (%d, %v), want (1000, nil)", first, err)
	}
	second, err := varint.ReadContinuation[uint64](&buf)
	if err != nil || second != 42 {
		t.Fatalf("second value: got (%d, %v), want (42, nil)", second, err)
	}
}

func TestContinuationTestVector(t *testing.T) {
	var buf bytes.Buffer
	if _, err := varint.WriteContinuation[uint64](&buf, 1000); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xE8, 0x07}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encode_continuation(1000) = % X, want % X", buf.Bytes(), want)
	}
}

func TestZigZagVectors(t *testing.T) {
	cases := []struct {
		signed   int32
		unsigned uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MinInt32, math.MaxUint32},
	}
	for _, c := range cases {
		if got := varint.ZigZag[int32, uint32](c.signed); got != c.unsigned {
			t.Errorf("ZigZag(%d) = %d, want %d", c.signed, got, c.unsigned)
		}
		if got := varint.UnZigZag[uint32, int32](c.unsigned); got != c.signed {
			t.Errorf("UnZigZag(%d) = %d, want %d", c.unsigned, got, c.signed)
		}
	}
}

func TestZigZagRoundtrip(t *testing.T) {
	cases := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 123456789, -123456789}
	for _, s := range cases {
		u := varint.ZigZag[int64, uint64](s)
		if got := varint.UnZigZag[uint64, int64](u); got != s {
			t.Errorf("ZigZag/UnZigZag roundtrip: got %d, want %d", got, s)
		}
	}
}

func TestReaderPositionMonotonic(t *testing.T) {
	r := codec.NewWithPositionReader(codec.NewReader([]byte("abcdefgh")))
	if r.Pos() != 0 {
		t.Fatalf("initial Pos() = %d, want 0", r.Pos())
	}
	if _, err := r.Bytes(3); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 3 {
		t.Fatalf("Pos() after reading 3 bytes = %d, want 3", r.Pos())
	}
	if err := r.Skip(2); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 5 {
		t.Fatalf("Pos() after skipping 2 bytes = %d, want 5", r.Pos())
	}
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 6 {
		t.Fatalf("Pos() after ReadByte = %d, want 6", r.Pos())
	}
}

func TestLimitReaderEnforcesBudget(t *testing.T) {
	base := codec.NewReader([]byte("0123456789"))
	l := codec.NewLimitReader(base, 4)

	if _, err := l.Bytes(5); err == nil {
		t.Fatal("expected a read exceeding the limit to fail")
	}
	// the underlying reader must not have advanced on the failed read.
	b, err := l.Bytes(4)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "0123" {
		t.Errorf("got %q, want %q (underlying reader advanced on failed read)", b, "0123")
	}
	if _, err := l.Bytes(1); err == nil {
		t.Fatal("expected a read past the exhausted limit to fail")
	}
}

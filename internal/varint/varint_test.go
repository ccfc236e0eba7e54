// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varint

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"testing"
)

//region Testing Helpers

type readTestCase[T Unsigned] struct {
	data       []byte
	extraBytes int
	want       T
	wantErr    error
}

func testRead[T Unsigned](t *testing.T, f func(io.ByteReader) (T, error), tc readTestCase[T]) {
	t.Helper()
	fName := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()

	r := bytes.NewReader(tc.data)
	got, err := f(r)
	if !errors.Is(err, tc.wantErr) {
		t.Fatalf("%s(%# x) error = %v, wantErr %v", fName, tc.data, err, tc.wantErr)
	}
	if err != nil {
		return
	}
	if got != tc.want {
		t.Errorf("%s(%# x) got = %v, want %v", fName, tc.data, got, tc.want)
	}
	if r.Len() != tc.extraBytes {
		t.Errorf("%s(%# x) extra bytes = %d, want %d", fName, tc.data, r.Len(), tc.extraBytes)
	}
}

type writeTestCase[T Unsigned] struct {
	value T
	want  []byte
}

func testWrite[T Unsigned](t *testing.T, tc writeTestCase[T]) {
	t.Helper()

	l := LenContinuation(tc.value)
	if l != len(tc.want) {
		t.Errorf("LenContinuation(%d) = %d, want %d", tc.value, l, len(tc.want))
	}
	var buf bytes.Buffer
	buf.Grow(l)
	n, err := WriteContinuation(&buf, tc.value)
	if err != nil {
		t.Fatalf("WriteContinuation(%d) error = %v, want nil", tc.value, err)
	}
	if n != len(tc.want) {
		t.Errorf("WriteContinuation(%d) n = %d, want %d", tc.value, n, len(tc.want))
	}
	if got := buf.Bytes(); !slices.Equal(got, tc.want) {
		t.Errorf("WriteContinuation(%d) = %# x, want %# x", tc.value, got, tc.want)
	}
}

//endregion

//region Continuation tests

func TestReadContinuation(t *testing.T) {
	tests := map[string]readTestCase[uint]{
		"SingleByte":    {[]byte{0x05}, 0, 5, nil},
		"MultiByte":     {[]byte{0xE8, 0x07, 0x00}, 1, 1000, nil},
		"EOF":           {nil, 0, 0, io.EOF},
		"UnexpectedEOF": {[]byte{0x80}, 0, 0, io.ErrUnexpectedEOF},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testRead(t, ReadContinuation[uint], tc)
		})
	}
}

func TestReadContinuation_Overflow(t *testing.T) {
	tests := map[string]readTestCase[uint8]{
		"Overflow": {[]byte{0x80, 0x02}, 0, 0, ErrOverflow},
		"Fits":     {[]byte{0xFF, 0x01}, 0, 0xFF, nil},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testRead(t, ReadContinuation[uint8], tc)
		})
	}
}

func TestWriteContinuation(t *testing.T) {
	tests := []writeTestCase[uint]{
		{0, []byte{0x00}},
		{25, []byte{25}},
		{1000, []byte{0xE8, 0x07}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) {
			testWrite(t, tc)
		})
	}
}

func TestContinuation_Roundtrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 1000, 1 << 20, 1<<64 - 1}
	var buf bytes.Buffer
	for _, v := range values {
		if _, err := WriteContinuation(&buf, v); err != nil {
			t.Fatalf("WriteContinuation(%d): %v", v, err)
		}
	}
	for _, want := range values {
		got, err := ReadContinuation[uint64](&buf)
		if err != nil {
			t.Fatalf("ReadContinuation: %v", err)
		}
		if got != want {
			t.Errorf("ReadContinuation() = %d, want %d", got, want)
		}
	}
}

//endregion

//region Zig-zag tests

func TestZigZag(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MinInt32, math.MaxUint32},
	}
	for _, tc := range tests {
		if got := ZigZag[int32, uint32](tc.in); got != tc.want {
			t.Errorf("ZigZag(%d) = %d, want %d", tc.in, got, tc.want)
		}
		if got := UnZigZag[uint32, int32](tc.want); got != tc.in {
			t.Errorf("UnZigZag(%d) = %d, want %d", tc.want, got, tc.in)
		}
	}
}

//endregion

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"codello.dev/codec"
	"codello.dev/codec/wire"
)

// TestSkipAnyConsumesExactBytes checks that reading an encoded value with
// SkipAny consumes exactly the bytes that value occupies and leaves the
// reader at the start of whatever follows.
func TestSkipAnyConsumesExactBytes(t *testing.T) {
	w := codec.NewBufferWriter()
	enc := wire.NewEncoder(w)
	seq, err := enc.EncodeSequence(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		elem, err := seq.Next()
		if err != nil {
			t.Fatal(err)
		}
		if err := elem.EncodeUint64(uint64(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := seq.End(); err != nil {
		t.Fatal(err)
	}
	firstLen := len(codec.BufferWriterBytes(w))

	if err := wire.NewEncoder(w).EncodeString("after"); err != nil {
		t.Fatal(err)
	}

	data := codec.BufferWriterBytes(w)
	r := codec.NewWithPositionReader(codec.NewReader(data))
	if err := wire.NewDecoder(r).SkipAny(); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != int64(firstLen) {
		t.Errorf("position after SkipAny = %d, want %d (boundary of next value)", r.Pos(), firstLen)
	}

	var sv codec.OwnedString
	if err := wire.NewDecoder(r).DecodeString(&sv); err != nil {
		t.Fatal(err)
	}
	if sv.Value != "after" {
		t.Errorf("value after skip = %q, want %q", sv.Value, "after")
	}
}

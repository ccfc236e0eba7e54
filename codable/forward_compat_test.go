// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable_test

import (
	"testing"

	_ "codello.dev/codec/codable"
	"codello.dev/codec/wire"
)

type recordV1 struct {
	String string `codec:"string"`
	Number uint64 `codec:"number"`
}

type recordV2 struct {
	String string `codec:"string"`
	Number uint64 `codec:"number"`
	Extra  bool   `codec:"extra"`
}

// TestForwardCompatSkipsUnknownField encodes a newer three-field struct and
// decodes it as the older two-field struct: the decoder must consume all
// three fields (skipping the unknown third one via SkipAny) and produce the
// two known fields correctly.
func TestForwardCompatSkipsUnknownField(t *testing.T) {
	in := recordV2{String: "foo", Number: 42, Extra: true}
	data, err := wire.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out recordV1
	if err := wire.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.String != "foo" || out.Number != 42 {
		t.Errorf("got %+v, want String=foo Number=42", out)
	}
}

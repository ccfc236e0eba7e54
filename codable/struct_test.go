// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	_ "codello.dev/codec/codable"
	"codello.dev/codec/json"
	"codello.dev/codec/wire"
)

// byName is the default struct field tag mode: fields are keyed by their
// wire name on every driver, including JSON where that name becomes a real
// object key.
type byName struct {
	First string `codec:"first"`
	Last  string `codec:"last"`
}

func TestStructFieldsByName(t *testing.T) {
	in := byName{First: "Ada", Last: "Lovelace"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"first"`) || !strings.Contains(string(data), `"last"`) {
		t.Fatalf("expected field names on the wire, got %s", data)
	}
	var out byName
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

// byIndex opts every field of the struct into index-based encoding: once
// any field requests an explicit index, the whole struct is keyed by
// position instead of name.
type byIndex struct {
	First string `codec:"first,index:0"`
	Last  string `codec:"last,index:1"`
}

func TestStructFieldsByIndex(t *testing.T) {
	in := byIndex{First: "Grace", Last: "Hopper"}
	data, err := wire.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out byIndex
	if err := wire.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

// reordered has the same index assignments as byIndex but declares its
// fields in the opposite Go source order, to check that index mode decodes
// by the tagged index rather than by field declaration position.
type reordered struct {
	Last  string `codec:"last,index:1"`
	First string `codec:"first,index:0"`
}

func TestStructFieldsByIndexIgnoresDeclarationOrder(t *testing.T) {
	in := byIndex{First: "Margaret", Last: "Hamilton"}
	data, err := wire.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out reordered
	if err := wire.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.First != in.First || out.Last != in.Last {
		t.Errorf("got %+v, want First=%q Last=%q", out, in.First, in.Last)
	}
}

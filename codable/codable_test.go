// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	_ "codello.dev/codec/codable"
	"codello.dev/codec/json"
	"codello.dev/codec/storage"
	"codello.dev/codec/wire"
)

type person struct {
	ID      uint64            `codec:"id"`
	Name    string            `codec:"name"`
	Tags    []string          `codec:"tags"`
	Aliases map[string]string `codec:"aliases"`
	Ref     *uint32           `codec:"ref,optional"`
}

func TestWireRoundtripPlainStruct(t *testing.T) {
	ref := uint32(9)
	in := person{
		ID:      1,
		Name:    "Ada",
		Tags:    []string{"a", "b"},
		Aliases: map[string]string{"short": "Ada"},
		Ref:     &ref,
	}
	data, err := wire.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out person
	if err := wire.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestStorageRoundtripPlainStruct(t *testing.T) {
	in := person{ID: 2, Name: "Grace", Tags: []string{"x"}, Aliases: map[string]string{}}
	data, err := storage.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out person
	if err := storage.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRoundtripPlainStruct(t *testing.T) {
	in := person{ID: 3, Name: "Margaret", Tags: nil, Aliases: map[string]string{"m": "Maggie"}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out person
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

type withID struct {
	ID uuid.UUID `codec:"id"`
}

func TestUUIDWellKnownType(t *testing.T) {
	in := withID{ID: uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")}
	data, err := wire.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out withID
	if err := wire.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ID != in.ID {
		t.Errorf("got %s, want %s", out.ID, in.ID)
	}
}

type omitZero struct {
	A int    `codec:"a,omitzero"`
	B string `codec:"b"`
}

func TestOmitZeroRoundtrip(t *testing.T) {
	in := omitZero{A: 0, B: "x"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out omitZero
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

type requiredField struct {
	A int `codec:"a"`
	B int `codec:"b"`
}

type missingB struct {
	A int `codec:"a"`
}

func TestMissingRequiredFieldErrors(t *testing.T) {
	data, err := json.Marshal(missingB{A: 1})
	if err != nil {
		t.Fatal(err)
	}
	var out requiredField
	if err := json.Unmarshal(data, &out); err == nil {
		t.Fatal("expected missing-field error decoding a record without field b")
	}
}

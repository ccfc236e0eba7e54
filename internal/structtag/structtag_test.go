// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structtag

import (
	"reflect"
	"testing"
)

func TestParseFieldTag(t *testing.T) {
	cases := []struct {
		name  string
		field string
		tag   string
		want  FieldParameters
	}{
		{"empty", "Name", "", FieldParameters{Name: "Name", Index: -1}},
		{"ignore", "Name", "-", FieldParameters{Ignore: true, Name: "Name", Index: -1}},
		{"rename", "Name", "name", FieldParameters{Name: "name", Index: -1}},
		{"optional", "Name", "name,optional", FieldParameters{Name: "name", Index: -1, Optional: true}},
		{"omitzero", "Name", "name,omitzero", FieldParameters{Name: "name", Index: -1, OmitZero: true}},
		{
			"index", "Name", "name,index:3",
			FieldParameters{Name: "name", Index: 3, ByIndex: true},
		},
		{
			"keep name with index", "Name", ",index:2",
			FieldParameters{Name: "Name", Index: 2, ByIndex: true},
		},
		{
			"unrecognized part ignored", "Name", "name,bogus",
			FieldParameters{Name: "name", Index: -1},
		},
		{
			"bad index ignored", "Name", "name,index:nope",
			FieldParameters{Name: "name", Index: -1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseFieldTag(c.field, c.tag)
			if got != c.want {
				t.Errorf("ParseFieldTag(%q, %q) = %+v, want %+v", c.field, c.tag, got, c.want)
			}
		})
	}
}

type inner struct {
	A string `codec:"a"`
	B int    `codec:"b"`
}

type outer struct {
	inner
	C     bool   `codec:"c"`
	Skip  string `codec:"-"`
	lower string
}

func TestFieldsFlattensAnonymousStructs(t *testing.T) {
	v := reflect.ValueOf(outer{inner: inner{A: "x", B: 1}, C: true, Skip: "nope", lower: "hidden"})
	var names []string
	for f := range Fields(v) {
		names = append(names, f.Params.Name)
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFieldsSkipsIgnoredAndUnexported(t *testing.T) {
	v := reflect.ValueOf(outer{})
	for f := range Fields(v) {
		if f.Params.Name == "Skip" || f.Params.Name == "lower" {
			t.Errorf("Fields yielded field that should have been skipped: %+v", f.Params)
		}
	}
}

func TestCount(t *testing.T) {
	v := reflect.ValueOf(outer{inner: inner{A: "x", B: 1}, C: true})
	if n := Count(v); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

type unindexed struct {
	A string `codec:"a"`
	B int    `codec:"b"`
}

type indexed struct {
	A string `codec:"a,index:0"`
	B int    `codec:"b,index:1"`
}

func TestUsesIndex(t *testing.T) {
	if UsesIndex(reflect.ValueOf(unindexed{})) {
		t.Error("UsesIndex(unindexed{}) = true, want false")
	}
	if !UsesIndex(reflect.ValueOf(indexed{})) {
		t.Error("UsesIndex(indexed{}) = false, want true")
	}
}

func TestFieldsDefaultIndexIsDeclarationOrder(t *testing.T) {
	v := reflect.ValueOf(unindexed{})
	var got []int
	for f := range Fields(v) {
		got = append(got, f.Params.Index)
	}
	want := []int{0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

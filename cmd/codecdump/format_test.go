// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"codello.dev/codec"
	_ "codello.dev/codec/codable"
)

func TestParseFormatRejectsUnknown(t *testing.T) {
	if _, err := parseFormat("yaml"); err == nil {
		t.Fatal("expected an error for an unsupported format name")
	}
}

func TestFormatRoundtripsDocument(t *testing.T) {
	for _, name := range []string{"wire", "storage", "json"} {
		t.Run(name, func(t *testing.T) {
			f, err := parseFormat(name)
			if err != nil {
				t.Fatal(err)
			}
			in := newDocument("a test document", []string{"x", "y"})
			data, err := f.marshal(in, codec.Default)
			if err != nil {
				t.Fatal(err)
			}
			var out Document
			if err := f.unmarshal(data, &out, codec.Default); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

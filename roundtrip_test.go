// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	_ "codello.dev/codec/codable"
	"codello.dev/codec/json"
	"codello.dev/codec/storage"
	"codello.dev/codec/value"
	"codello.dev/codec/wire"
)

type sample struct {
	Name string            `codec:"name"`
	IDs  []uint64          `codec:"ids"`
	Tags map[string]string `codec:"tags"`
}

var formats = map[string]struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}{
	"wire":    {wire.Marshal, wire.Unmarshal},
	"storage": {storage.Marshal, storage.Unmarshal},
	"json":    {json.Marshal, json.Unmarshal},
}

// TestCrossFormatRoundtripThroughValue checks that decoding bytes produced
// by format B, lifting the result into the in-memory value tree, and
// re-encoding into format A produces the same logical value that decoding
// the original bytes directly with format B does.
func TestCrossFormatRoundtripThroughValue(t *testing.T) {
	in := sample{
		Name: "demo",
		IDs:  []uint64{1, 2, 3},
		Tags: map[string]string{"env": "test"},
	}

	for bName, b := range formats {
		t.Run("from="+bName, func(t *testing.T) {
			data, err := b.marshal(in)
			if err != nil {
				t.Fatal(err)
			}
			var viaB sample
			if err := b.unmarshal(data, &viaB); err != nil {
				t.Fatal(err)
			}

			tree, err := value.Encode(viaB)
			if err != nil {
				t.Fatal(err)
			}

			for aName, a := range formats {
				t.Run("to="+aName, func(t *testing.T) {
					var fromTree sample
					if err := value.Decode(tree, &fromTree); err != nil {
						t.Fatal(err)
					}
					data, err := a.marshal(fromTree)
					if err != nil {
						t.Fatal(err)
					}
					var viaA sample
					if err := a.unmarshal(data, &viaA); err != nil {
						t.Fatal(err)
					}
					if diff := cmp.Diff(viaB, viaA); diff != "" {
						t.Errorf("cross-format mismatch (-viaB +viaA):\n%s", diff)
					}
				})
			}
		})
	}
}

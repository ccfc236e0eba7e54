// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable

import (
	"golang.org/x/sync/errgroup"

	"codello.dev/codec"
)

// EncodeAll drives values[i] into encoders[i] concurrently, for the same
// number of values and encoders. It returns the first error any of them
// reports; the other encodes still run to completion, matching
// [errgroup.Group]'s fail-fast-but-don't-cancel-siblings default.
func EncodeAll(values []any, encoders []codec.Encoder) error {
	var g errgroup.Group
	for i := range values {
		g.Go(func() error { return Encode(values[i], encoders[i]) })
	}
	return g.Wait()
}

// DecodeAll is [EncodeAll]'s decode counterpart: it populates targets[i]
// from decoders[i] concurrently and returns the first reported error.
func DecodeAll(targets []any, decoders []codec.Decoder) error {
	var g errgroup.Group
	for i := range targets {
		g.Go(func() error { return Decode(targets[i], decoders[i]) })
	}
	return g.Wait()
}

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codable is this module's concrete realization of the
// "derived-type collaborator" the core protocol treats as an external
// dependency: a reflection-based [codec.Encodable]/[codec.Decodable]
// fallback for plain Go structs, slices, arrays, maps, and pointers that do
// not implement the protocol by hand.
//
// Importing this package for its side effect (an init function) is enough
// to make [codello.dev/codec/wire.Marshal], storage.Marshal, json.Marshal,
// and value.Encode (and their Unmarshal/Decode counterparts) work on plain
// structs:
//
//	import _ "codello.dev/codec/codable"
//
// The struct walk is driven by a `codec:"..."` field tag, parsed by
// [codello.dev/codec/internal/structtag], using the same reflect-driven
// field-by-field walk a hand-written struct codec would use.
package codable

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json implements the protocol's conforming JSON text format.
// Structs and maps both render as JSON objects; a variant renders as a
// single-key object whose key is the discriminant (stringified, since JSON
// object keys are always strings) and whose value is the payload. Sequences,
// tuples, and arrays render as JSON arrays. An absent option renders as
// `null`; a present option renders as its inner value directly (there is no
// wrapper), so a JSON `null` stored inside a present option of an optional
// type is indistinguishable from the option itself being absent — the same
// ambiguity every JSON-based format with optional fields carries.
//
// Numbers are parsed by a dedicated composition routine (see numbers.go)
// rather than strconv.ParseFloat/ParseInt, so that decoding a JSON integer
// literal directly into a Go integer type never pays for a float64
// round-trip and never silently truncates a fractional literal.
package json

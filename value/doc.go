// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements an in-memory [codec.Encoder]/[codec.Decoder]
// pair over a materialized [Value] tree, rather than a byte stream. A
// [Value] can hold any shape the protocol recognizes: encoding into one
// and then decoding out of it lets two otherwise-unrelated drivers
// interoperate, since any driver can encode into a Value and any other
// driver's codec can decode from one.
//
// Unlike the wire formats, a Value carries no tag bytes or delimiters of
// its own — a scalar decode fails with a type-mismatch error if the stored
// [codec.Kind] does not match the method called, the in-memory equivalent
// of a wire format's tag check.
package value

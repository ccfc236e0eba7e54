// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

// Mode selects one of potentially several wire representations that a single
// Go type can implement. Other implementations of this kind of protocol use
// a zero-sized marker type as a phantom generic parameter for this purpose;
// Go's [Encoder]/[Decoder] are plain (non-generic) interfaces, so Mode is
// instead an ordinary comparable value carried on every Encoder/Decoder and
// consulted explicitly by [Encodable]/[Decodable] implementations that care
// about it.
//
// Types that do not care about Mode can ignore it entirely; [Default] is
// used whenever a caller does not specify one.
type Mode struct {
	name string
}

// Default is the mode used when a caller does not request a specific one.
var Default = Mode{name: "default"}

// NewMode returns a Mode identified by name. Modes compare equal iff their
// names match, so callers should use a package-qualified name (e.g.
// "myapp.compact") to avoid accidental collisions between unrelated modes.
func NewMode(name string) Mode {
	return Mode{name: name}
}

// String returns the name the mode was constructed with.
func (m Mode) String() string {
	if m.name == "" {
		return "default"
	}
	return m.name
}

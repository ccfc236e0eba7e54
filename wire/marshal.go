// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"codello.dev/codec"
)

// codableFallback is set by codello.dev/codec/codable's init function, which
// breaks the import cycle that would otherwise exist between wire and
// codable (codable imports wire's sibling packages to pick a default
// driver; wire cannot import codable directly).
var codableFallback func(v any, e codec.Encoder) error
var codableFallbackDecode func(v any, d codec.Decoder) error

// RegisterFallback installs the reflection-based struct codec used by
// Marshal/Unmarshal for values that do not implement [codec.Encodable] or
// [codec.Decodable]. codello.dev/codec/codable calls this from its init
// function; user code never needs to call it directly.
func RegisterFallback(encode func(v any, e codec.Encoder) error, decode func(v any, d codec.Decoder) error) {
	codableFallback = encode
	codableFallbackDecode = decode
}

// Marshal encodes v into the wire format using [codec.Default] mode.
func Marshal(v any) ([]byte, error) {
	return MarshalMode(v, codec.Default)
}

// MarshalMode is like Marshal but selects a specific [codec.Mode].
func MarshalMode(v any, mode codec.Mode) ([]byte, error) {
	w := codec.NewBufferWriter()
	enc := NewEncoderMode(w, mode)
	if err := encodeValue(v, enc); err != nil {
		return nil, err
	}
	return codec.BufferWriterBytes(w), nil
}

func encodeValue(v any, enc codec.Encoder) error {
	if e, ok := v.(codec.Encodable); ok {
		return e.EncodeTo(enc)
	}
	if codableFallback == nil {
		return codec.ErrInvalidEncoding("no struct codec registered; import codello.dev/codec/codable", nil)
	}
	return codableFallback(v, enc)
}

// Unmarshal decodes data in the wire format into v, which must be a non-nil
// pointer. It uses [codec.Default] mode.
func Unmarshal(data []byte, v any) error {
	return UnmarshalMode(data, v, codec.Default)
}

// UnmarshalMode is like Unmarshal but selects a specific [codec.Mode].
func UnmarshalMode(data []byte, v any, mode codec.Mode) error {
	r := codec.NewReader(data)
	dec := NewDecoderMode(r, mode)
	if d, ok := v.(codec.Decodable); ok {
		return d.DecodeFrom(dec)
	}
	if codableFallbackDecode == nil {
		return codec.ErrInvalidEncoding("no struct codec registered; import codello.dev/codec/codable", nil)
	}
	return codableFallbackDecode(v, dec)
}

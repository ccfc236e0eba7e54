// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import "codello.dev/codec"

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

// Marshal encodes v into the storage format using variable-width integers
// and [codec.Default] mode.
func Marshal(v any) ([]byte, error) {
	return marshal(v, codec.Default, false)
}

// MarshalFixed is like Marshal but writes fixed-width integers.
func MarshalFixed(v any) ([]byte, error) {
	return marshal(v, codec.Default, true)
}

func marshal(v any, mode codec.Mode, fixed bool) ([]byte, error) {
	w := codec.NewBufferWriter()
	enc := NewEncoderMode(w, mode, fixed)
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

// Unmarshal decodes data in the storage format, written with variable-width
// integers, into v.
func Unmarshal(data []byte, v any) error {
	return unmarshal(data, v, codec.Default, false)
}

// UnmarshalFixed is like Unmarshal but reads fixed-width integers, matching
// [MarshalFixed].
func UnmarshalFixed(data []byte, v any) error {
	return unmarshal(data, v, codec.Default, true)
}

func unmarshal(data []byte, v any, mode codec.Mode, fixed bool) error {
	r := codec.NewReader(data)
	dec := NewDecoderMode(r, mode, fixed)
	if d, ok := v.(codec.Decodable); ok {
		return d.DecodeFrom(dec)
	}
	if codableFallbackDecode == nil {
		return codec.ErrInvalidEncoding("no struct codec registered; import codello.dev/codec/codable", nil)
	}
	return codableFallbackDecode(v, dec)
}

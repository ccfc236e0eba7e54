// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "codello.dev/codec"

var (
	codableEncode func(v any, e codec.Encoder) error
	codableDecode func(v any, d codec.Decoder) error
)

// RegisterFallback installs the struct/slice/map codec used by [Encode] and
// [Decode] for values that do not implement [codec.Encodable] or
// [codec.Decodable] themselves. It is called from the codable package's
// init function.
func RegisterFallback(encode func(v any, e codec.Encoder) error, decode func(v any, d codec.Decoder) error) {
	codableEncode = encode
	codableDecode = decode
}

// Encode materializes v into a [Value] tree, using [codec.Default] mode.
func Encode(v any) (Value, error) { return EncodeMode(v, codec.Default) }

// EncodeMode is like [Encode] but selects a specific [codec.Mode].
func EncodeMode(v any, mode codec.Mode) (Value, error) {
	var out Value
	enc := NewEncoderMode(&out, mode)
	if e, ok := v.(codec.Encodable); ok {
		if err := e.EncodeTo(enc); err != nil {
			return Value{}, err
		}
		return out, nil
	}
	if codableEncode == nil {
		return Value{}, codec.ErrInvalidEncoding("no struct codec registered; import codello.dev/codec/codable", nil)
	}
	if err := codableEncode(v, enc); err != nil {
		return Value{}, err
	}
	return out, nil
}

// Decode populates v from val, using [codec.Default] mode.
func Decode(val Value, v any) error { return DecodeMode(val, v, codec.Default) }

// DecodeMode is like [Decode] but selects a specific [codec.Mode].
func DecodeMode(val Value, v any, mode codec.Mode) error {
	dec := NewDecoderMode(&val, mode)
	if d, ok := v.(codec.Decodable); ok {
		return d.DecodeFrom(dec)
	}
	if codableDecode == nil {
		return codec.ErrInvalidEncoding("no struct codec registered; import codello.dev/codec/codable", nil)
	}
	return codableDecode(v, dec)
}

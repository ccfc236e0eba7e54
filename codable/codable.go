// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable

import (
	"reflect"

	"codello.dev/codec"
	"codello.dev/codec/internal/structtag"
	"codello.dev/codec/json"
	"codello.dev/codec/storage"
	"codello.dev/codec/value"
	"codello.dev/codec/wire"
)

func init() {
	wire.RegisterFallback(Encode, Decode)
	storage.RegisterFallback(Encode, Decode)
	json.RegisterFallback(Encode, Decode)
	value.RegisterFallback(Encode, Decode)
}

// Encode drives enc from v by reflection. v must not be nil.
func Encode(v any, enc codec.Encoder) error {
	if e, ok := v.(codec.Encodable); ok {
		return e.EncodeTo(enc)
	}
	return encodeReflect(reflect.ValueOf(v), enc)
}

// Decode populates v (which must be a non-nil pointer) from dec by
// reflection.
func Decode(v any, dec codec.Decoder) error {
	if d, ok := v.(codec.Decodable); ok {
		return d.DecodeFrom(dec)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return codec.ErrInvalidEncoding("codable: Decode requires a non-nil pointer", nil)
	}
	return decodeReflect(rv.Elem(), dec)
}

func encodeReflect(rv reflect.Value, enc codec.Encoder) error {
	if rv.IsValid() {
		if wc, ok := wellKnownEncoders[rv.Type()]; ok {
			return wc(rv, enc)
		}
		if rv.CanInterface() {
			if e, ok := rv.Interface().(codec.Encodable); ok {
				return e.EncodeTo(enc)
			}
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return enc.EncodeBool(rv.Bool())
	case reflect.Int8:
		return enc.EncodeInt8(int8(rv.Int()))
	case reflect.Int16:
		return enc.EncodeInt16(int16(rv.Int()))
	case reflect.Int32:
		return enc.EncodeInt32(int32(rv.Int()))
	case reflect.Int64:
		return enc.EncodeInt64(rv.Int())
	case reflect.Int:
		return enc.EncodeInt(int(rv.Int()))
	case reflect.Uint8:
		return enc.EncodeUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return enc.EncodeUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return enc.EncodeUint32(uint32(rv.Uint()))
	case reflect.Uint64:
		return enc.EncodeUint64(rv.Uint())
	case reflect.Uint:
		return enc.EncodeUint(uint(rv.Uint()))
	case reflect.Float32:
		return enc.EncodeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return enc.EncodeFloat64(rv.Float())
	case reflect.String:
		return enc.EncodeString(rv.String())
	case reflect.Slice:
		return encodeSlice(rv, enc)
	case reflect.Array:
		return encodeArray(rv, enc)
	case reflect.Map:
		return encodeMap(rv, enc)
	case reflect.Struct:
		return encodeStruct(rv, enc)
	case reflect.Pointer:
		return encodePointer(rv, enc)
	case reflect.Interface:
		if rv.IsNil() {
			return enc.EncodeNone()
		}
		return encodeReflect(rv.Elem(), enc)
	default:
		return codec.ErrInvalidEncoding("codable: cannot encode "+rv.Kind().String(), nil)
	}
}

func encodeSlice(rv reflect.Value, enc codec.Encoder) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return enc.EncodeBytes(rv.Bytes())
	}
	seq, err := enc.EncodeSequence(rv.Len())
	if err != nil {
		return err
	}
	for i := range rv.Len() {
		elemEnc, err := seq.Next()
		if err != nil {
			return err
		}
		if err := encodeReflect(rv.Index(i), elemEnc); err != nil {
			return err
		}
	}
	return seq.End()
}

func encodeArray(rv reflect.Value, enc codec.Encoder) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return enc.EncodeArray(b)
	}
	seq, err := enc.EncodeTuple(rv.Len())
	if err != nil {
		return err
	}
	for i := range rv.Len() {
		elemEnc, err := seq.Next()
		if err != nil {
			return err
		}
		if err := encodeReflect(rv.Index(i), elemEnc); err != nil {
			return err
		}
	}
	return seq.End()
}

func encodeMap(rv reflect.Value, enc codec.Encoder) error {
	pairs, err := enc.EncodeMap(rv.Len())
	if err != nil {
		return err
	}
	it := rv.MapRange()
	for it.Next() {
		key, val := it.Key(), it.Value()
		if err := pairs.Insert(
			func(e codec.Encoder) error { return encodeReflect(key, e) },
			func(e codec.Encoder) error { return encodeReflect(val, e) },
		); err != nil {
			return err
		}
	}
	return pairs.End()
}

func encodeStruct(rv reflect.Value, enc codec.Encoder) error {
	n := structtag.Count(rv)
	if n == 0 {
		return enc.EncodeUnitStruct()
	}
	byIndex := structtag.UsesIndex(rv)
	pairs := 0
	for f := range structtag.Fields(rv) {
		if !(f.Params.OmitZero && f.Value.IsZero()) {
			pairs++
		}
	}
	fields, err := enc.EncodeStruct(pairs)
	if err != nil {
		return err
	}
	for f := range structtag.Fields(rv) {
		if f.Params.OmitZero && f.Value.IsZero() {
			continue
		}
		if err := fields.Insert(
			func(e codec.Encoder) error {
				if byIndex {
					return e.EncodeUint(uint(f.Params.Index))
				}
				return e.EncodeString(f.Params.Name)
			},
			func(e codec.Encoder) error { return encodeReflect(f.Value, e) },
		); err != nil {
			return err
		}
	}
	return fields.End()
}

func encodePointer(rv reflect.Value, enc codec.Encoder) error {
	if rv.IsNil() {
		return enc.EncodeNone()
	}
	inner, err := enc.EncodeSome()
	if err != nil {
		return err
	}
	return encodeReflect(rv.Elem(), inner)
}

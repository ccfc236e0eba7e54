// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable

import (
	"reflect"

	"codello.dev/codec"
	"codello.dev/codec/internal/structtag"
)

func decodeReflect(rv reflect.Value, dec codec.Decoder) error {
	if rv.CanAddr() {
		if wc, ok := wellKnownDecoders[rv.Type()]; ok {
			return wc(rv, dec)
		}
		if rv.Addr().CanInterface() {
			if d, ok := rv.Addr().Interface().(codec.Decodable); ok {
				return d.DecodeFrom(dec)
			}
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		v, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		rv.SetBool(v)
		return nil
	case reflect.Int8:
		v, err := dec.DecodeInt8()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int16:
		v, err := dec.DecodeInt16()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int32:
		v, err := dec.DecodeInt32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil
	case reflect.Int:
		v, err := dec.DecodeInt()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Uint8:
		v, err := dec.DecodeUint8()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint16:
		v, err := dec.DecodeUint16()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint32:
		v, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint64:
		v, err := dec.DecodeUint64()
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil
	case reflect.Uint:
		v, err := dec.DecodeUint()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Float32:
		v, err := dec.DecodeFloat32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))
		return nil
	case reflect.Float64:
		v, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		rv.SetFloat(v)
		return nil
	case reflect.String:
		var sv codec.OwnedString
		if err := dec.DecodeString(&sv); err != nil {
			return err
		}
		rv.SetString(sv.Value)
		return nil
	case reflect.Slice:
		return decodeSlice(rv, dec)
	case reflect.Array:
		return decodeArray(rv, dec)
	case reflect.Map:
		return decodeMap(rv, dec)
	case reflect.Struct:
		return decodeStruct(rv, dec)
	case reflect.Pointer:
		return decodePointer(rv, dec)
	default:
		return codec.ErrInvalidEncoding("codable: cannot decode "+rv.Kind().String(), nil)
	}
}

func decodeSlice(rv reflect.Value, dec codec.Decoder) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		var bv codec.OwnedBytes
		if err := dec.DecodeBytes(&bv); err != nil {
			return err
		}
		rv.SetBytes(bv.Value)
		return nil
	}
	seq, err := dec.DecodeSequence()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(rv.Type(), 0, 0)
	for {
		elemDec, ok, err := seq.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		elem := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeReflect(elem, elemDec); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
	}
	if err := seq.End(); err != nil {
		return err
	}
	rv.Set(out)
	return nil
}

func decodeArray(rv reflect.Value, dec codec.Decoder) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		var bv codec.OwnedBytes
		if err := dec.DecodeArray(rv.Len(), &bv); err != nil {
			return err
		}
		reflect.Copy(rv, reflect.ValueOf(bv.Value))
		return nil
	}
	seq, err := dec.DecodeTuple(rv.Len())
	if err != nil {
		return err
	}
	for i := range rv.Len() {
		elemDec, ok, err := seq.Next()
		if err != nil {
			return err
		}
		if !ok {
			return codec.ErrInvalidLength(rv.Len(), i)
		}
		if err := decodeReflect(rv.Index(i), elemDec); err != nil {
			return err
		}
	}
	return seq.End()
}

func decodeMap(rv reflect.Value, dec codec.Decoder) error {
	pairs, err := dec.DecodeMap()
	if err != nil {
		return err
	}
	out := reflect.MakeMap(rv.Type())
	for {
		pair, ok, err := pairs.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		keyDec, err := pair.First()
		if err != nil {
			return err
		}
		key := reflect.New(rv.Type().Key()).Elem()
		if err := decodeReflect(key, keyDec); err != nil {
			return err
		}
		valDec, err := pair.Second()
		if err != nil {
			return err
		}
		value := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeReflect(value, valDec); err != nil {
			return err
		}
		if err := pair.End(); err != nil {
			return err
		}
		out.SetMapIndex(key, value)
	}
	if err := pairs.End(); err != nil {
		return err
	}
	rv.Set(out)
	return nil
}

func decodeStruct(rv reflect.Value, dec codec.Decoder) error {
	n := structtag.Count(rv)
	if n == 0 {
		return dec.DecodeUnitStruct()
	}
	byIndex := structtag.UsesIndex(rv)
	byName := map[string]structtag.Field{}
	byIdx := map[int]structtag.Field{}
	for f := range structtag.Fields(rv) {
		byName[f.Params.Name] = f
		byIdx[f.Params.Index] = f
	}

	fields, err := dec.DecodeStruct(n)
	if err != nil {
		return err
	}
	seen := map[string]bool{}
	for {
		pair, ok, err := fields.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		keyDec, err := pair.First()
		if err != nil {
			return err
		}

		var field structtag.Field
		var found bool
		if byIndex {
			idx, err := keyDec.DecodeUint()
			if err != nil {
				return err
			}
			field, found = byIdx[int(idx)]
		} else {
			var key codec.OwnedString
			if err := keyDec.DecodeString(&key); err != nil {
				return err
			}
			field, found = byName[key.Value]
		}

		valDec, err := pair.Second()
		if err != nil {
			return err
		}
		if !found {
			if err := valDec.SkipAny(); err != nil {
				return err
			}
		} else {
			if err := decodeReflect(field.Value, valDec); err != nil {
				return err
			}
			seen[field.Params.Name] = true
		}
		if err := pair.End(); err != nil {
			return err
		}
	}
	if err := fields.End(); err != nil {
		return err
	}
	for f := range structtag.Fields(rv) {
		if !f.Params.Optional && !f.Params.OmitZero && !seen[f.Params.Name] {
			return codec.ErrInvalidEncoding("codable: missing required field "+f.Params.Name, nil)
		}
	}
	return nil
}

func decodePointer(rv reflect.Value, dec codec.Decoder) error {
	present, inner, err := dec.DecodeOption()
	if err != nil {
		return err
	}
	if !present {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	rv.Set(reflect.New(rv.Type().Elem()))
	return decodeReflect(rv.Elem(), inner)
}

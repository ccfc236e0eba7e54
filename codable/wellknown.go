// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codable

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"codello.dev/codec"
)

// wellKnownEncoders/wellKnownDecoders shortcut the generic struct/array walk
// for a handful of standard-library and ecosystem types whose natural wire
// representation is not the one reflection alone would produce: time.Time
// has unexported fields a struct walk cannot see, and uuid.UUID, while
// already a plain [16]byte array the generic path encodes correctly, is
// registered here too so its wire shape is documented in one place rather
// than relying on an accident of its underlying type.
var wellKnownEncoders = map[reflect.Type]func(reflect.Value, codec.Encoder) error{
	reflect.TypeFor[time.Time](): func(rv reflect.Value, enc codec.Encoder) error {
		return enc.EncodeString(rv.Interface().(time.Time).Format(time.RFC3339Nano))
	},
	reflect.TypeFor[uuid.UUID](): func(rv reflect.Value, enc codec.Encoder) error {
		id := rv.Interface().(uuid.UUID)
		return enc.EncodeArray(id[:])
	},
}

var wellKnownDecoders = map[reflect.Type]func(reflect.Value, codec.Decoder) error{
	reflect.TypeFor[time.Time](): func(rv reflect.Value, dec codec.Decoder) error {
		var sv codec.OwnedString
		if err := dec.DecodeString(&sv); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, sv.Value)
		if err != nil {
			return codec.ErrInvalidEncoding("codable: malformed time.Time literal", err)
		}
		rv.Set(reflect.ValueOf(t))
		return nil
	},
	reflect.TypeFor[uuid.UUID](): func(rv reflect.Value, dec codec.Decoder) error {
		var bv codec.OwnedBytes
		if err := dec.DecodeArray(16, &bv); err != nil {
			return err
		}
		var id uuid.UUID
		copy(id[:], bv.Value)
		rv.Set(reflect.ValueOf(id))
		return nil
	},
}

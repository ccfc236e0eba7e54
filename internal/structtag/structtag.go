// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structtag parses the `codec:"..."` struct tag used by the
// reflection-based struct codec in [codello.dev/codec/codable] and iterates
// over the exported fields of a struct as an ordered list, each entry
// carrying a tag (name or index), an optional-ness flag, and (implicitly,
// via reflect.Value) a reference to the field's own type.
package structtag

import (
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// FieldParameters is the parsed representation of a `codec:"..."` struct tag.
type FieldParameters struct {
	Ignore   bool   // true iff the field must not be encoded or decoded
	Name     string // explicit wire name, defaults to the Go field name
	Index    int    // explicit wire index, used only when ByIndex is requested
	ByIndex  bool   // true iff this field was explicitly tagged with an index
	Optional bool   // true iff absence of the field is not an error on decode
	OmitZero bool   // true iff the zero value should be omitted on encode
}

// ParseFieldTag parses str (the value of a `codec` struct tag) into a
// FieldParameters value, ignoring any parts it does not recognize.
func ParseFieldTag(fieldName, str string) FieldParameters {
	ret := FieldParameters{Name: fieldName, Index: -1}
	if str == "" {
		return ret
	}
	parts := strings.Split(str, ",")
	if parts[0] == "-" && len(parts) == 1 {
		ret.Ignore = true
		return ret
	}
	if parts[0] != "" {
		ret.Name = parts[0]
	}
	for _, part := range parts[1:] {
		switch {
		case part == "optional":
			ret.Optional = true
		case part == "omitzero":
			ret.OmitZero = true
		case strings.HasPrefix(part, "index:"):
			if i, err := strconv.Atoi(part[len("index:"):]); err == nil {
				ret.Index = i
				ret.ByIndex = true
			}
		}
	}
	return ret
}

// Field pairs a struct field's reflect.Value with its parsed tag parameters.
type Field struct {
	Value  reflect.Value
	Params FieldParameters
}

// Fields returns a sequence over the encodable fields of the struct value v.
// Fields tagged `codec:"-"` and unexported fields are skipped. Fields of
// anonymous (embedded) struct members are flattened into the sequence as if
// they were declared directly on v's type, the same promotion rule
// [reflect.Type.FieldByName] uses.
func Fields(v reflect.Value) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		t := v.Type()
		for i := range t.NumField() {
			sf := t.Field(i)
			params := ParseFieldTag(sf.Name, sf.Tag.Get("codec"))
			if params.Ignore {
				continue
			}
			if sf.Anonymous && sf.Tag.Get("codec") == "" && sf.Type.Kind() == reflect.Struct {
				for f := range Fields(v.Field(i)) {
					if !yield(f) {
						return
					}
				}
				continue
			}
			if !sf.IsExported() {
				continue
			}
			if params.Index < 0 {
				params.Index = i
			}
			if !yield(Field{Value: v.Field(i), Params: params}) {
				return
			}
		}
	}
}

// Count returns the number of encodable fields of the struct value v.
func Count(v reflect.Value) int {
	n := 0
	for range Fields(v) {
		n++
	}
	return n
}

// UsesIndex reports whether any field of the struct value v requested
// index-based encoding via an explicit `codec:"index:N"` tag. A struct
// codec uses this to decide, once per struct, whether to key its fields by
// name or by index; the first field to request indexing fixes the mode for
// the whole struct.
func UsesIndex(v reflect.Value) bool {
	for f := range Fields(v) {
		if f.Params.ByIndex {
			return true
		}
	}
	return false
}

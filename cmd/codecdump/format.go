// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"codello.dev/codec"
	"codello.dev/codec/json"
	"codello.dev/codec/storage"
	"codello.dev/codec/wire"
)

// format names one of the three byte-producing drivers codecdump can drive.
// value is excluded: it has no byte representation of its own, so it is not
// a meaningful --format choice for a command-line tool that reads and
// writes files.
type format string

const (
	formatWire    format = "wire"
	formatStorage format = "storage"
	formatJSON    format = "json"
)

func parseFormat(s string) (format, error) {
	switch format(s) {
	case formatWire, formatStorage, formatJSON:
		return format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want wire, storage, or json)", s)
	}
}

func (f format) marshal(v any, mode codec.Mode) ([]byte, error) {
	switch f {
	case formatWire:
		return wire.MarshalMode(v, mode)
	case formatStorage:
		return storage.MarshalMode(v, mode)
	case formatJSON:
		return json.MarshalMode(v, mode)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

func (f format) unmarshal(data []byte, v any, mode codec.Mode) error {
	switch f {
	case formatWire:
		return wire.UnmarshalMode(data, v, mode)
	case formatStorage:
		return storage.UnmarshalMode(data, v, mode)
	case formatJSON:
		return json.UnmarshalMode(data, v, mode)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// newEncoder builds a driver-specific [codec.Encoder] writing to w, for
// callers that need the encoder itself rather than a materialized byte
// slice (codecdump's --stat path, which measures size through a
// [codec.CountingWriter] instead of allocating output).
func (f format) newEncoder(w codec.Writer, mode codec.Mode) (codec.Encoder, error) {
	switch f {
	case formatWire:
		return wire.NewEncoderMode(w, mode), nil
	case formatStorage:
		return storage.NewEncoderMode(w, mode, false), nil
	case formatJSON:
		return json.NewEncoderMode(w, mode), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// newDecoder is [format.newEncoder]'s decode counterpart, used by the
// convert subcommand to build one decoder per input file ahead of a batch
// [codable.DecodeAll] call.
func (f format) newDecoder(r codec.Reader, mode codec.Mode) (codec.Decoder, error) {
	switch f {
	case formatWire:
		return wire.NewDecoderMode(r, mode), nil
	case formatStorage:
		return storage.NewDecoderMode(r, mode, false), nil
	case formatJSON:
		return json.NewDecoderMode(r, mode), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"io"

	"codello.dev/codec"
)

func readByte(r codec.Reader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, wrapUnderflow(err)
	}
	return b, nil
}

func wrapUnderflow(err error) error {
	if err == codec.ErrUnderflow {
		return codec.ErrInvalidEncoding("unexpected end of input", io.ErrUnexpectedEOF)
	}
	return err
}

// byteReader/byteWriter adapt [codec.Reader]/[codec.Writer] to the
// io.ByteReader/io.ByteWriter interfaces the varint package expects.
type byteReader struct{ r codec.Reader }

func (b byteReader) ReadByte() (byte, error) { return b.r.ReadByte() }

type byteWriter struct{ w codec.Writer }

func (b byteWriter) WriteByte(c byte) error { return b.w.WriteByte(c) }

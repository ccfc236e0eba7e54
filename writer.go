// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "io"

// Writer is the abstract byte sink every encoder writes to. Unlike [Reader],
// a Writer never borrows: every call copies the bytes it is given.
type Writer interface {
	// Write appends p in full, or fails without a partial write being
	// observable by a subsequent read of the sink (to the extent the
	// underlying sink allows).
	Write(p []byte) error
	// WriteByte appends a single byte.
	WriteByte(b byte) error
}

// bufferWriter is a [Writer] backed by a growable in-memory buffer.
type bufferWriter struct {
	buf []byte
}

// NewBufferWriter returns a [Writer] that appends to an internal buffer,
// retrievable with [BufferWriterBytes].
func NewBufferWriter() Writer {
	return &bufferWriter{}
}

func (w *bufferWriter) Write(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

func (w *bufferWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// BufferWriterBytes returns the bytes accumulated by a [Writer] created with
// [NewBufferWriter]. It panics if w was not created by [NewBufferWriter].
func BufferWriterBytes(w Writer) []byte {
	return w.(*bufferWriter).buf
}

// ioWriter adapts an [io.Writer] to [Writer].
type ioWriter struct {
	w io.Writer
}

// NewIOWriter returns a [Writer] that writes to w.
func NewIOWriter(w io.Writer) Writer {
	return &ioWriter{w: w}
}

func (w *ioWriter) Write(p []byte) error {
	n, err := w.w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return err
}

func (w *ioWriter) WriteByte(b byte) error {
	if bw, ok := w.w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	return w.Write([]byte{b})
}

// PositionedWriter is a [Writer] refinement that tracks the cumulative
// number of bytes written so far, for diagnostics.
type PositionedWriter interface {
	Writer
	Pos() int64
}

// WithPositionWriter wraps w to additionally track a position counter.
type WithPositionWriter struct {
	w   Writer
	pos int64
}

// NewWithPositionWriter returns a [PositionedWriter] wrapping w.
func NewWithPositionWriter(w Writer) *WithPositionWriter {
	return &WithPositionWriter{w: w}
}

func (p *WithPositionWriter) Pos() int64 { return p.pos }

func (p *WithPositionWriter) Write(b []byte) error {
	if err := p.w.Write(b); err != nil {
		return err
	}
	p.pos += int64(len(b))
	return nil
}

func (p *WithPositionWriter) WriteByte(b byte) error {
	if err := p.w.WriteByte(b); err != nil {
		return err
	}
	p.pos++
	return nil
}

// CountingWriter tracks the number of bytes that would be written without
// buffering them, so that a value's encoded size can be measured without
// producing the output.
type CountingWriter struct {
	n int64
}

// NewCountingWriter returns a [Writer] that discards all data and only counts
// the bytes it would have written.
func NewCountingWriter() *CountingWriter { return &CountingWriter{} }

// Len returns the number of bytes written so far.
func (c *CountingWriter) Len() int64 { return c.n }

func (c *CountingWriter) Write(p []byte) error {
	c.n += int64(len(p))
	return nil
}

func (c *CountingWriter) WriteByte(byte) error {
	c.n++
	return nil
}

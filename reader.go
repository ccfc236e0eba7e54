// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"io"
)

// ErrUnderflow indicates that a read requested more bytes than the reader has
// remaining.
var ErrUnderflow = errors.New("codec: buffer underflow")

// Reader is the abstract byte source every decoder reads from. Unlike
// [io.Reader], [Reader.Bytes] can return a slice that is a direct view into
// the reader's own backing storage, which lets string and byte-slice
// decoding avoid a copy when the source outlives the decode call.
//
// A Reader that is backed by a byte slice the caller already owns (the
// common case: [NewReader]) can always satisfy borrow-preserving reads. A
// Reader wrapping a streaming [io.Reader] cannot, and returns owned copies
// from [Reader.Bytes] instead; callers that need zero-copy decoding should
// read their input fully into memory first rather than streaming it over
// partial input.
type Reader interface {
	// Skip advances the reader by n bytes without returning them. It returns
	// [ErrUnderflow] if fewer than n bytes remain.
	Skip(n int) error
	// Bytes returns the next n bytes. For slice-backed readers the returned
	// slice aliases the reader's backing array and must not be retained past
	// the lifetime of that array being mutated. It returns [ErrUnderflow] if
	// fewer than n bytes remain.
	Bytes(n int) ([]byte, error)
	// Read fills buf completely from the reader, copying bytes into it. It
	// returns [ErrUnderflow] if fewer than len(buf) bytes remain.
	Read(buf []byte) error
	// ReadByte reads and returns a single byte.
	ReadByte() (byte, error)
	// Remaining reports the number of bytes left to read, or -1 if unknown
	// (a streaming reader without a known total length).
	Remaining() int
}

// sliceReader is a [Reader] backed by an in-memory byte slice. It supports
// true zero-copy borrowed reads.
type sliceReader struct {
	buf []byte
	pos int
}

// NewReader returns a [Reader] that reads from buf without copying it. The
// caller must not mutate buf while the returned Reader (or any decoder built
// on it) is in use.
func NewReader(buf []byte) Reader {
	return &sliceReader{buf: buf}
}

func (r *sliceReader) Remaining() int { return len(r.buf) - r.pos }

func (r *sliceReader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return ErrUnderflow
	}
	r.pos += n
	return nil
}

func (r *sliceReader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrUnderflow
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *sliceReader) Read(buf []byte) error {
	b, err := r.Bytes(len(buf))
	if err != nil {
		return err
	}
	copy(buf, b)
	return nil
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.Remaining() < 1 {
		return 0, ErrUnderflow
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ioReader adapts an [io.Reader] to [Reader]. Borrowed reads are simulated by
// copying into a freshly allocated slice, since a streaming source has no
// stable backing array to borrow from.
type ioReader struct {
	r   io.Reader
	rem int // -1 if unknown
}

// NewIOReader returns a [Reader] that reads from r. If r also implements
// [io.ByteReader] or exposes a known length (via an `Len() int` method, as
// [bytes.Reader] and [strings.Reader] do), NewIOReader uses it.
func NewIOReader(r io.Reader) Reader {
	rem := -1
	if lr, ok := r.(interface{ Len() int }); ok {
		rem = lr.Len()
	}
	return &ioReader{r: r, rem: rem}
}

func (r *ioReader) Remaining() int { return r.rem }

func (r *ioReader) Skip(n int) error {
	_, err := io.CopyN(io.Discard, r.r, int64(n))
	if err != nil {
		return underflowErr(err)
	}
	r.decrement(n)
	return nil
}

func (r *ioReader) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *ioReader) Read(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	if err != nil {
		return underflowErr(err)
	}
	r.decrement(len(buf))
	return nil
}

func (r *ioReader) ReadByte() (byte, error) {
	if br, ok := r.r.(io.ByteReader); ok {
		b, err := br.ReadByte()
		if err != nil {
			return 0, underflowErr(err)
		}
		r.decrement(1)
		return b, nil
	}
	var buf [1]byte
	if err := r.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *ioReader) decrement(n int) {
	if r.rem >= 0 {
		r.rem -= n
	}
}

func underflowErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnderflow
	}
	return err
}

// LimitReader wraps r so that reads past the given byte budget fail with
// [ErrUnderflow] even if the underlying reader has more data available. On a
// failed read the underlying reader is not advanced.
type LimitReader struct {
	r     Reader
	limit int
}

// NewLimitReader returns a [Reader] that forwards to r but fails any
// operation whose byte count would exceed limit remaining bytes.
func NewLimitReader(r Reader, limit int) *LimitReader {
	return &LimitReader{r: r, limit: limit}
}

// Limit returns the number of bytes still allowed to be read.
func (l *LimitReader) Limit() int { return l.limit }

// SetLimit updates the remaining budget.
func (l *LimitReader) SetLimit(n int) { l.limit = n }

func (l *LimitReader) Remaining() int {
	rem := l.r.Remaining()
	if rem < 0 || rem > l.limit {
		return l.limit
	}
	return rem
}

func (l *LimitReader) Skip(n int) error {
	if n > l.limit {
		return ErrUnderflow
	}
	if err := l.r.Skip(n); err != nil {
		return err
	}
	l.limit -= n
	return nil
}

func (l *LimitReader) Bytes(n int) ([]byte, error) {
	if n > l.limit {
		return nil, ErrUnderflow
	}
	b, err := l.r.Bytes(n)
	if err != nil {
		return nil, err
	}
	l.limit -= n
	return b, nil
}

func (l *LimitReader) Read(buf []byte) error {
	if len(buf) > l.limit {
		return ErrUnderflow
	}
	if err := l.r.Read(buf); err != nil {
		return err
	}
	l.limit -= len(buf)
	return nil
}

func (l *LimitReader) ReadByte() (byte, error) {
	if l.limit < 1 {
		return 0, ErrUnderflow
	}
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, err
	}
	l.limit--
	return b, nil
}

// PositionedReader is a [Reader] refinement that additionally tracks the
// cumulative offset consumed so far, for diagnostics.
type PositionedReader interface {
	Reader
	// Pos returns the number of bytes consumed so far. Pos never decreases,
	// and increases by exactly the number of bytes consumed by the most
	// recent successful operation.
	Pos() int64
}

// WithPositionReader wraps r to additionally track a position counter.
type WithPositionReader struct {
	r   Reader
	pos int64
}

// NewWithPositionReader returns a [PositionedReader] wrapping r.
func NewWithPositionReader(r Reader) *WithPositionReader {
	return &WithPositionReader{r: r}
}

func (p *WithPositionReader) Pos() int64 { return p.pos }

func (p *WithPositionReader) Remaining() int { return p.r.Remaining() }

func (p *WithPositionReader) Skip(n int) error {
	if err := p.r.Skip(n); err != nil {
		return err
	}
	p.pos += int64(n)
	return nil
}

func (p *WithPositionReader) Bytes(n int) ([]byte, error) {
	b, err := p.r.Bytes(n)
	if err != nil {
		return nil, err
	}
	p.pos += int64(n)
	return b, nil
}

func (p *WithPositionReader) Read(buf []byte) error {
	if err := p.r.Read(buf); err != nil {
		return err
	}
	p.pos += int64(len(buf))
	return nil
}

func (p *WithPositionReader) ReadByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return 0, err
	}
	p.pos++
	return b, nil
}

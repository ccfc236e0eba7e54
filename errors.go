// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind classifies the errors the protocol can produce. It is not a type
// of its own error value; it is attached to [Error].
//
//go:generate stringer -type=ErrorKind
type ErrorKind uint8

const (
	// KindErrUnderflow: the reader could not satisfy a read.
	KindErrUnderflow ErrorKind = iota
	// KindErrTypeMismatch: the decoder was asked to read one kind, the wire
	// carries another.
	KindErrTypeMismatch
	// KindErrInvalidEncoding: an ill-formed integer, invalid UTF-8, malformed
	// JSON token, or other syntactically invalid wire data.
	KindErrInvalidEncoding
	// KindErrInvalidVariant: a variant discriminant did not match any known
	// case.
	KindErrInvalidVariant
	// KindErrInvalidLength: a fixed-size expectation was violated.
	KindErrInvalidLength
	// KindErrOverflow: a numeric value does not fit the requested target type.
	KindErrOverflow
	// KindErrDecimal: a JSON number carries a fractional part that cannot be
	// represented by the requested integer target.
	KindErrDecimal
	// KindErrCustom: a user-supplied error from an Encode/Decode
	// implementation.
	KindErrCustom
)

// Error is the composite error value top-level entry points return: kind,
// optional byte position, accumulated path, and message.
type Error struct {
	Kind ErrorKind
	Pos  int64 // byte offset, -1 if unknown
	Path string
	Msg  string
	err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Pos >= 0 {
		b.WriteString(" (offset ")
		b.WriteString(strconv.FormatInt(e.Pos, 10))
		b.WriteByte(')')
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.err }

// newError builds an *Error with no path or position set. Callers attach
// those via a [Context] as the error unwinds.
func newError(kind ErrorKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Pos: -1, Msg: msg, err: cause}
}

// ErrUnsupportedType reports that an encoder/decoder was asked to handle a
// [Kind] it does not support.
func ErrUnsupportedType(driver string, k Kind) error {
	return newError(KindErrTypeMismatch, nil, driver+" does not support "+k.String())
}

// ErrTypeMismatch reports that the wire carries a different kind than was
// requested.
func ErrTypeMismatch(want, got Kind) error {
	return newError(KindErrTypeMismatch, nil, "expected "+want.String()+", got "+got.String())
}

// ErrInvalidEncoding wraps cause (or just msg, if cause is nil) as an invalid
// encoding error.
func ErrInvalidEncoding(msg string, cause error) error {
	return newError(KindErrInvalidEncoding, cause, msg)
}

// ErrOverflow reports that a numeric value does not fit its target type.
func ErrOverflow(msg string) error {
	return newError(KindErrOverflow, nil, msg)
}

// ErrDecimal reports that a JSON number has a fractional part incompatible
// with an integer target.
func ErrDecimal(msg string) error {
	return newError(KindErrDecimal, nil, msg)
}

// ErrInvalidVariant reports an unknown variant discriminant.
func ErrInvalidVariant(msg string) error {
	return newError(KindErrInvalidVariant, nil, msg)
}

// ErrInvalidLength reports a fixed-size mismatch, e.g. a [N]byte array whose
// wire encoding carries a different length.
func ErrInvalidLength(want, got int) error {
	return newError(KindErrInvalidLength, nil, "expected length "+strconv.Itoa(want)+", got "+strconv.Itoa(got))
}

// ErrCustom wraps a user-supplied error from an Encode/Decode implementation.
func ErrCustom(err error) error {
	return newError(KindErrCustom, err, err.Error())
}

// AsError reports whether err is (or wraps) an *[Error], the way [errors.As]
// does.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

// StringVisitor accepts a decoded string from exactly one of three sources:
// directly borrowed from the input buffer, borrowed from the decoder's own
// scratch buffer (used when e.g. JSON unescaping required allocation), or an
// owned, independently allocated string. A decoder calls exactly one of the
// three methods.
type StringVisitor interface {
	// VisitBorrowedString receives a string backed by the original input. It
	// remains valid only as long as the input buffer the decode call was
	// given.
	VisitBorrowedString(s string) error
	// VisitScratchString receives a string backed by the decoder's scratch
	// buffer. It remains valid only until the next decode operation on the
	// same decoder (or any decoder sharing its scratch buffer).
	VisitScratchString(s string) error
	// VisitOwnedString receives a string the visitor now owns exclusively.
	VisitOwnedString(s string) error
}

// BytesVisitor is the []byte counterpart of [StringVisitor].
type BytesVisitor interface {
	VisitBorrowedBytes(b []byte) error
	VisitScratchBytes(b []byte) error
	VisitOwnedBytes(b []byte) error
}

// OwnedString is a [StringVisitor] that copies every outcome into a single
// owned string, for callers that do not care about zero-copy decoding.
type OwnedString struct {
	Value string
}

func (v *OwnedString) VisitBorrowedString(s string) error { v.Value = cloneString(s); return nil }
func (v *OwnedString) VisitScratchString(s string) error  { v.Value = cloneString(s); return nil }
func (v *OwnedString) VisitOwnedString(s string) error    { v.Value = s; return nil }

// OwnedBytes is a [BytesVisitor] that copies every outcome into a single
// owned []byte.
type OwnedBytes struct {
	Value []byte
}

func (v *OwnedBytes) VisitBorrowedBytes(b []byte) error { v.Value = cloneBytes(b); return nil }
func (v *OwnedBytes) VisitScratchBytes(b []byte) error  { v.Value = cloneBytes(b); return nil }
func (v *OwnedBytes) VisitOwnedBytes(b []byte) error    { v.Value = b; return nil }

func cloneString(s string) string {
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"strconv"
	"strings"
)

// Context accumulates the diagnostic path as a decoder descends and ascends
// the value tree, and decides what happens to errors reported along the way.
// Drivers call its Enter*/Leave* methods as they open and close sub-decoders,
// and call [Context.Report] when an operation fails.
//
// Two implementations are provided: [NewIgnoreContext] discards everything
// for minimal overhead in hot paths, and [NewRichContext] records the full
// path and every error seen, for detailed reporting.
type Context interface {
	EnterField(name string)
	EnterIndex(i int)
	EnterVariant(name string)
	EnterMapKey(key string)
	Leave()

	// Report records err at the current path and returns the (possibly
	// decorated) error the caller should propagate. A Context may choose to
	// keep going after Report for a rich, multi-error report, but the caller
	// is always free to stop immediately.
	Report(err error) error

	// Errors returns every error reported so far. An ignore context always
	// returns nil.
	Errors() []error
}

// pathSegment is one step of the diagnostic path.
type pathSegment struct {
	kind byte // 'f' field, 'i' index, 'v' variant, 'k' map key
	name string
	idx  int
}

func (s pathSegment) writeTo(b *strings.Builder) {
	switch s.kind {
	case 'f':
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.name)
	case 'i':
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.idx))
		b.WriteByte(']')
	case 'v':
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.name)
	case 'k':
		b.WriteString("[\"")
		b.WriteString(s.name)
		b.WriteString("\"]")
	}
}

//region ignoreContext

type ignoreContext struct{}

// NewIgnoreContext returns a [Context] that discards path information and
// every reported error, forwarding only the error value itself.
func NewIgnoreContext() Context { return ignoreContext{} }

func (ignoreContext) EnterField(string)   {}
func (ignoreContext) EnterIndex(int)      {}
func (ignoreContext) EnterVariant(string) {}
func (ignoreContext) EnterMapKey(string)  {}
func (ignoreContext) Leave()              {}
func (ignoreContext) Report(err error) error {
	return err
}
func (ignoreContext) Errors() []error { return nil }

//endregion

//region richContext

// richContext is a [Context] that records the full path of every reported
// error. It also accumulates every error it sees so that [Context.Errors]
// can report every malformed field of a batch rather than stopping at the
// first one.
type richContext struct {
	stack []pathSegment
	// keyBuf is a pre-allocated scratch buffer reused across EnterMapKey calls.
	keyBuf []byte
	errs   []error
}

// NewRichContext returns a [Context] that records the path to, and the full
// list of, every error it is asked to report.
func NewRichContext() Context { return &richContext{} }

func (c *richContext) EnterField(name string) {
	c.stack = append(c.stack, pathSegment{kind: 'f', name: name})
}

func (c *richContext) EnterIndex(i int) {
	c.stack = append(c.stack, pathSegment{kind: 'i', idx: i})
}

func (c *richContext) EnterVariant(name string) {
	c.stack = append(c.stack, pathSegment{kind: 'v', name: name})
}

func (c *richContext) EnterMapKey(key string) {
	c.keyBuf = append(c.keyBuf[:0], key...)
	c.stack = append(c.stack, pathSegment{kind: 'k', name: string(c.keyBuf)})
}

func (c *richContext) Leave() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *richContext) path() string {
	var b strings.Builder
	for _, s := range c.stack {
		s.writeTo(&b)
	}
	return b.String()
}

func (c *richContext) Report(err error) error {
	if err == nil {
		return nil
	}
	path := c.path()
	if e, ok := AsError(err); ok {
		e.Path = path
		c.errs = append(c.errs, e)
		return e
	}
	wrapped := &Error{Kind: KindErrCustom, Pos: -1, Path: path, Msg: err.Error(), err: err}
	c.errs = append(c.errs, wrapped)
	return wrapped
}

func (c *richContext) Errors() []error {
	return c.errs
}

//endregion

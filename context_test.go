// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"errors"
	"testing"

	"codello.dev/codec"
)

func TestRichContextFormatsPath(t *testing.T) {
	c := codec.NewRichContext()
	c.EnterField("items")
	c.EnterIndex(2)
	c.EnterField("name")
	err := c.Report(codec.ErrOverflow("value too large"))

	e, ok := codec.AsError(err)
	if !ok {
		t.Fatalf("Report did not return an *Error: %v", err)
	}
	const want = "items[2].name"
	if e.Path != want {
		t.Errorf("path = %q, want %q", e.Path, want)
	}
}

func TestRichContextFormatsVariantAndMapKeyPath(t *testing.T) {
	c := codec.NewRichContext()
	c.EnterVariant("Stop")
	c.EnterMapKey("reason")
	err := c.Report(codec.ErrInvalidEncoding("bad utf-8", nil))

	e, ok := codec.AsError(err)
	if !ok {
		t.Fatalf("Report did not return an *Error: %v", err)
	}
	const want = `Stop["reason"]`
	if e.Path != want {
		t.Errorf("path = %q, want %q", e.Path, want)
	}
}

func TestRichContextLeaveUnwindsPath(t *testing.T) {
	c := codec.NewRichContext()
	c.EnterField("a")
	c.EnterField("b")
	c.Leave()
	err := c.Report(codec.ErrOverflow("x"))
	e, _ := codec.AsError(err)
	if e.Path != "a" {
		t.Errorf("path after Leave = %q, want %q", e.Path, "a")
	}
}

func TestRichContextAccumulatesErrors(t *testing.T) {
	c := codec.NewRichContext()
	c.EnterField("a")
	c.Report(codec.ErrOverflow("first"))
	c.Leave()
	c.EnterField("b")
	c.Report(codec.ErrOverflow("second"))

	errs := c.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() returned %d errors, want 2", len(errs))
	}
}

func TestRichContextWrapsPlainErrors(t *testing.T) {
	c := codec.NewRichContext()
	c.EnterField("x")
	cause := errors.New("boom")
	err := c.Report(cause)

	e, ok := codec.AsError(err)
	if !ok {
		t.Fatalf("Report did not wrap a plain error into an *Error: %v", err)
	}
	if e.Path != "x" {
		t.Errorf("path = %q, want %q", e.Path, "x")
	}
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error does not unwrap to the original cause")
	}
}

func TestIgnoreContextDiscardsPathAndErrors(t *testing.T) {
	c := codec.NewIgnoreContext()
	c.EnterField("a")
	c.EnterIndex(1)
	err := c.Report(codec.ErrOverflow("x"))
	if err == nil {
		t.Fatal("Report returned nil")
	}
	e, ok := codec.AsError(err)
	if !ok {
		t.Fatalf("Report did not return an *Error: %v", err)
	}
	if e.Path != "" {
		t.Errorf("ignore context recorded a path: %q", e.Path)
	}
	if errs := c.Errors(); errs != nil {
		t.Errorf("Errors() = %v, want nil", errs)
	}
}

func TestErrorMessageIncludesKindPathAndOffset(t *testing.T) {
	e := &codec.Error{Kind: codec.KindErrOverflow, Pos: 4, Path: "a.b", Msg: "too big"}
	got := e.Error()
	want := codec.KindErrOverflow.String() + " at a.b (offset 4): too big"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

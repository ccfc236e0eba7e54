// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/google/uuid"
)

// Document is the demo record codecdump reads, writes, and converts. It is
// deliberately varied in shape (scalar, slice, map, optional pointer,
// well-known type) so that a single struct exercises several of codable's
// reflect branches.
type Document struct {
	ID        uuid.UUID         `codec:"id"`
	Title     string            `codec:"title"`
	Tags      []string          `codec:"tags"`
	Metadata  map[string]string `codec:"metadata"`
	CreatedAt time.Time         `codec:"created_at"`
	Parent    *uuid.UUID        `codec:"parent,optional"`
}

// newDocument builds a Document with a freshly generated ID and the current
// timestamp, for the encode subcommand's --title path.
func newDocument(title string, tags []string) Document {
	return Document{
		ID:        uuid.New(),
		Title:     title,
		Tags:      tags,
		Metadata:  map[string]string{},
		CreatedAt: time.Now(),
	}
}

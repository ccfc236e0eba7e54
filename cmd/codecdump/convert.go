// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"codello.dev/codec"
	"codello.dev/codec/codable"
)

// convertCommand re-encodes every file in a directory from one format to
// another. Each file is decoded and re-encoded independently, so the whole
// batch runs through codable.DecodeAll/EncodeAll's errgroup-backed fan-out
// rather than a sequential loop.
func convertCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "convert every file in a directory from one format to another",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "wire, storage, or json"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "wire, storage, or json"},
			&cli.StringFlag{Name: "in", Required: true, Usage: "input directory"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "output directory"},
		},
		Action: func(c *cli.Context) error {
			from, err := parseFormat(c.String("from"))
			if err != nil {
				return err
			}
			to, err := parseFormat(c.String("to"))
			if err != nil {
				return err
			}
			mode := modeFromContext(c)

			entries, err := os.ReadDir(c.String("in"))
			if err != nil {
				return err
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				if !e.IsDir() {
					names = append(names, e.Name())
				}
			}
			if len(names) == 0 {
				log.Warn("no input files found", "dir", c.String("in"))
				return nil
			}

			docs := make([]Document, len(names))
			decodeTargets := make([]any, len(names))
			decoders := make([]codec.Decoder, len(names))
			for i, name := range names {
				data, err := os.ReadFile(filepath.Join(c.String("in"), name))
				if err != nil {
					return err
				}
				decodeTargets[i] = &docs[i]
				dec, err := from.newDecoder(codec.NewReader(data), mode)
				if err != nil {
					return err
				}
				decoders[i] = dec
			}
			if err := codable.DecodeAll(decodeTargets, decoders); err != nil {
				return err
			}

			writers := make([]codec.Writer, len(names))
			encodeValues := make([]any, len(names))
			encoders := make([]codec.Encoder, len(names))
			for i := range names {
				writers[i] = codec.NewBufferWriter()
				enc, err := to.newEncoder(writers[i], mode)
				if err != nil {
					return err
				}
				encoders[i] = enc
				encodeValues[i] = docs[i]
			}
			if err := codable.EncodeAll(encodeValues, encoders); err != nil {
				return err
			}

			if err := os.MkdirAll(c.String("out"), 0o755); err != nil {
				return err
			}
			for i, name := range names {
				data := codec.BufferWriterBytes(writers[i])
				if err := os.WriteFile(filepath.Join(c.String("out"), name), data, 0o644); err != nil {
					return err
				}
			}
			log.Info("converted", "count", len(names), "from", from, "to", to)
			return nil
		},
	}
}

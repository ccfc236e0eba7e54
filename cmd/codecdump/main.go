// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command codecdump is a small terminal front end for
// codello.dev/codec's wire, storage, and json drivers. It encodes a demo
// [Document] record to a file, decodes one back, or converts a directory of
// records from one format to another.
package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"codello.dev/codec"
	"codello.dev/codec/codable"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig()
	if err != nil {
		log.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "codecdump",
		Usage: "encode, decode, and convert records with codello.dev/codec",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Value: cfg.Mode, Usage: "codec.Mode name to use"},
		},
		Commands: []*cli.Command{
			encodeCommand(log, cfg),
			decodeCommand(log, cfg),
			convertCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("codecdump", "error", err)
		os.Exit(1)
	}
}

func modeFromContext(c *cli.Context) codec.Mode {
	name := c.String("mode")
	if name == "" || name == "default" {
		return codec.Default
	}
	return codec.NewMode(name)
}

func encodeCommand(log *slog.Logger, cfg config) *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "encode a new document to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: cfg.Format, Usage: "wire, storage, or json"},
			&cli.StringFlag{Name: "title", Required: true, Usage: "document title"},
			&cli.StringSliceFlag{Name: "tag", Usage: "repeatable tag, e.g. --tag a --tag b"},
			&cli.StringFlag{Name: "out", Usage: "output file (defaults to stdout)"},
			&cli.BoolFlag{Name: "stat", Usage: "report the encoded size without writing output"},
		},
		Action: func(c *cli.Context) error {
			f, err := parseFormat(c.String("format"))
			if err != nil {
				return err
			}
			doc := newDocument(c.String("title"), c.StringSlice("tag"))
			mode := modeFromContext(c)

			if c.Bool("stat") {
				cw := codec.NewCountingWriter()
				enc, err := f.newEncoder(cw, mode)
				if err != nil {
					return err
				}
				if err := codable.Encode(doc, enc); err != nil {
					return err
				}
				log.Info("encoded size", "format", f, "bytes", cw.Len(), "id", doc.ID)
				return nil
			}

			data, err := f.marshal(doc, mode)
			if err != nil {
				return err
			}
			log.Info("encoded document", "format", f, "bytes", len(data), "id", doc.ID)
			return writeOutput(c.String("out"), data)
		},
	}
}

func decodeCommand(log *slog.Logger, cfg config) *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode a document from a file and print it as json",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: cfg.Format, Usage: "wire, storage, or json"},
			&cli.StringFlag{Name: "in", Required: true, Usage: "input file"},
		},
		Action: func(c *cli.Context) error {
			f, err := parseFormat(c.String("format"))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(c.String("in"))
			if err != nil {
				return err
			}
			var doc Document
			if err := f.unmarshal(data, &doc, modeFromContext(c)); err != nil {
				return err
			}
			log.Info("decoded document", "format", f, "id", doc.ID, "title", doc.Title)
			out, err := formatJSON.marshal(doc, codec.Default)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(out, '\n'))
			return err
		},
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

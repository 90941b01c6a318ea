package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/yyoncho/discwire/wire"
)

// vectorsFile is the TOML layout of a vectors file:
//
//	[[vector]]
//	name = "ping"
//	hex = "01c5847072..."
//	kind = "ping"
//	reqid = "01"
//	roundtrip = true
type vectorsFile struct {
	Vectors []vector `toml:"vector"`
}

type vector struct {
	Name      string `toml:"name"`
	Hex       string `toml:"hex"`
	Kind      string `toml:"kind"`
	ReqID     string `toml:"reqid"`
	Roundtrip bool   `toml:"roundtrip"`
}

func vectorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "vectors",
		Usage: "check a file of expected decode vectors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: "TOML vectors file"},
		},
		Action: func(c *cli.Context) error {
			vectors, err := loadVectors(c.String("file"))
			if err != nil {
				return err
			}
			return runVectors(newCodec(c), vectors, os.Stdout)
		},
	}
}

func loadVectors(path string) ([]vector, error) {
	var f vectorsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load vectors: %w", err)
	}
	return f.Vectors, nil
}

func runVectors(codec *wire.Codec, vectors []vector, out io.Writer) error {
	failed := 0
	for _, v := range vectors {
		if err := checkVector(codec, v); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", v.Name, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", v.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(vectors))
	}
	return nil
}

func checkVector(codec *wire.Codec, v vector) error {
	buf, err := hex.DecodeString(strings.TrimPrefix(v.Hex, "0x"))
	if err != nil {
		return fmt.Errorf("parse hex: %w", err)
	}
	msg, err := codec.Decode(buf)
	if err != nil {
		return err
	}
	if v.Kind != "" && msg.Kind.String() != v.Kind {
		return fmt.Errorf("kind mismatch: got %s, want %s", msg.Kind, v.Kind)
	}
	if v.ReqID != "" {
		want, err := hex.DecodeString(v.ReqID)
		if err != nil {
			return fmt.Errorf("parse reqid: %w", err)
		}
		if !bytes.Equal(msg.ReqID, want) {
			return fmt.Errorf("reqid mismatch: got %x, want %x", msg.ReqID, want)
		}
	}
	if v.Roundtrip {
		if msg.Body == nil {
			return fmt.Errorf("vector has no re-encodable body")
		}
		enc, err := codec.Encode(msg.ReqID, msg.Body)
		if err != nil {
			return fmt.Errorf("re-encode: %w", err)
		}
		if !bytes.Equal(enc, buf) {
			return fmt.Errorf("re-encode mismatch: got %x, want %x", enc, buf)
		}
	}
	return nil
}

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yyoncho/discwire/wire"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode a single hex-encoded message buffer",
		ArgsUsage: "<hex>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("decode takes exactly one hex argument")
			}
			buf, err := hex.DecodeString(strings.TrimPrefix(c.Args().First(), "0x"))
			if err != nil {
				return fmt.Errorf("parse hex: %w", err)
			}
			msg, err := newCodec(c).Decode(buf)
			if err != nil {
				return err
			}
			printMessage(os.Stdout, msg)
			return nil
		},
	}
}

func printMessage(w io.Writer, msg wire.Message) {
	fmt.Fprintf(w, "kind=%s reqid=%x\n", msg.Kind, []byte(msg.ReqID))
	if msg.Body != nil {
		fmt.Fprintf(w, "  %+v\n", msg.Body)
	}
}

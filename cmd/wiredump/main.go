package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yyoncho/discwire/internal/logging"
	"github.com/yyoncho/discwire/providers"
	"github.com/yyoncho/discwire/wire"
)

func main() {
	app := &cli.App{
		Name:  "wiredump",
		Usage: "decode discovery protocol messages from hex dumps, captures and vector files",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "content",
				Value: true,
				Usage: "decode provider payloads with the providers codec",
			},
		},
		Commands: []*cli.Command{
			decodeCommand(),
			pcapCommand(),
			vectorsCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wiredump: %v\n", err)
		os.Exit(1)
	}
}

func newCodec(c *cli.Context) *wire.Codec {
	log := logging.New("wiredump", c.Bool("verbose"))
	opts := []wire.Option{wire.WithLogger(log)}
	if c.Bool("content") {
		opts = append(opts, wire.WithContentCodec(providers.Codec{}))
	}
	return wire.New(opts...)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"

	"github.com/yyoncho/discwire/wire"
)

// captureStats is shared by the decode workers.
type captureStats struct {
	packets atomic.Uint64
	decoded atomic.Uint64
	failed  atomic.Uint64
	kinds   [wire.KindTopicQuery + 1]atomic.Uint64
}

func pcapCommand() *cli.Command {
	return &cli.Command{
		Name:  "pcap",
		Usage: "decode plaintext UDP payloads from a capture file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: "pcap capture file"},
			&cli.UintFlag{Name: "port", Usage: "only consider this UDP port (0 matches all)"},
			&cli.IntFlag{Name: "workers", Value: 4, Usage: "concurrent decode workers"},
		},
		Action: runPcap,
	}
}

func runPcap(c *cli.Context) error {
	f, err := os.Open(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		return fmt.Errorf("open capture: %w", err)
	}

	codec := newCodec(c)
	port := uint16(c.Uint("port"))

	var stats captureStats
	payloads := make(chan []byte, 64)
	var wg sync.WaitGroup
	workers := c.Int("workers")
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for buf := range payloads {
				msg, err := codec.Decode(buf)
				if err != nil {
					stats.failed.Inc()
					continue
				}
				stats.decoded.Inc()
				stats.kinds[msg.Kind].Inc()
			}
		}()
	}

	for {
		data, _, err := r.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			close(payloads)
			wg.Wait()
			return fmt.Errorf("read capture: %w", err)
		}
		stats.packets.Inc()

		payload, ok := udpPayload(data, r.LinkType(), port)
		if ok {
			payloads <- payload
		}
	}
	close(payloads)
	wg.Wait()

	fmt.Printf("packets=%d decoded=%d failed=%d\n",
		stats.packets.Load(), stats.decoded.Load(), stats.failed.Load())
	for kind := wire.KindPing; kind <= wire.KindTopicQuery; kind++ {
		if n := stats.kinds[kind].Load(); n > 0 {
			fmt.Printf("  %-16s %d\n", kind, n)
		}
	}
	return nil
}

// udpPayload extracts the UDP payload from one captured packet, filtered
// by port when port is nonzero.
func udpPayload(data []byte, link layers.LinkType, port uint16) ([]byte, bool) {
	pkt := gopacket.NewPacket(data, link, gopacket.Default)
	layer := pkt.Layer(layers.LayerTypeUDP)
	if layer == nil {
		return nil, false
	}
	udp := layer.(*layers.UDP)
	if port != 0 && uint16(udp.DstPort) != port && uint16(udp.SrcPort) != port {
		return nil, false
	}
	if len(udp.Payload) == 0 {
		return nil, false
	}
	return udp.Payload, true
}

// Command ppprecv listens for a TCP connection standing in for a serial
// link and prints every frame a pppos.Link reassembles from it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/robertfarnum/go-pppos/pkg/pppos"
)

func main() {
	addr := flag.String("addr", "localhost:9000", "TCP address to listen on")
	flag.Parse()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ppprecv: listen:", err)
		os.Exit(1)
	}
	defer ln.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("ppprecv: listening", "addr", *addr)

	conn, err := ln.Accept()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ppprecv: accept:", err)
		os.Exit(1)
	}
	defer conn.Close()

	dispatcher := pppos.DirectDispatcher{Handler: func(f pppos.Frame) {
		logger.Info("ppprecv: received frame",
			"protocol", fmt.Sprintf("%#04x", f.Protocol()),
			"bytes", len(f.Data()))
		fmt.Printf("%s\n", f.Data())
	}}

	link := pppos.NewLink(nil, dispatcher, pppos.Config{Logger: logger})
	link.Connect()
	defer link.Close()

	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			link.Input(buf[:n])
		}
		if err != nil {
			logger.Info("ppprecv: connection closed", "err", err, "stats", link.Stats())
			return
		}
	}
}

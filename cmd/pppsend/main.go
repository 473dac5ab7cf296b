// Command pppsend dials a TCP endpoint standing in for a serial link and
// writes one PPP frame per line of stdin through a pppos.Link.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/robertfarnum/go-pppos/pkg/pppos"
)

// tcpSerial adapts a net.Conn to pppos.SerialPort.
type tcpSerial struct {
	conn net.Conn
}

func (s *tcpSerial) WriteOctets(p []byte) (int, error) {
	return s.conn.Write(p)
}

func main() {
	addr := flag.String("addr", "localhost:9000", "TCP address of the peer standing in for the serial link")
	acfc := flag.Bool("acfc", false, "compress the address and control fields")
	pfc := flag.Bool("pfc", false, "compress the protocol field when it fits in one octet")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pppsend: dial:", err)
		os.Exit(1)
	}
	defer conn.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	link := pppos.NewLink(&tcpSerial{conn: conn}, pppos.DirectDispatcher{}, pppos.Config{
		ACFC:   *acfc,
		PFC:    *pfc,
		Logger: logger,
	})
	link.Connect()
	defer link.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := link.Output(line, pppos.ProtoIP); err != nil {
			logger.Error("pppsend: output failed", "err", err)
			continue
		}
		logger.Info("pppsend: sent frame", "bytes", len(line), "stats", link.Stats())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "pppsend: reading stdin:", err)
		os.Exit(1)
	}
}

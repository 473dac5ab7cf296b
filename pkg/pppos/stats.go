package pppos

import "sync/atomic"

type linkStats struct {
	memErrors            atomic.Uint64
	lengthErrors         atomic.Uint64
	checksumErrors       atomic.Uint64
	protocolErrors       atomic.Uint64
	interfaceOutDiscards atomic.Uint64
	interfaceInDiscards  atomic.Uint64
	bytesSent            atomic.Uint64
	packetsSent          atomic.Uint64
	bytesReceived        atomic.Uint64
	packetsReceived      atomic.Uint64
}

type Stats struct {
	MemErrors            uint64
	LengthErrors         uint64
	ChecksumErrors       uint64
	ProtocolErrors       uint64
	InterfaceOutDiscards uint64
	InterfaceInDiscards  uint64
	BytesSent            uint64
	PacketsSent          uint64
	BytesReceived        uint64
	PacketsReceived      uint64
}

func (s *linkStats) snapshot() Stats {
	return Stats{
		MemErrors:            s.memErrors.Load(),
		LengthErrors:         s.lengthErrors.Load(),
		ChecksumErrors:       s.checksumErrors.Load(),
		ProtocolErrors:       s.protocolErrors.Load(),
		InterfaceOutDiscards: s.interfaceOutDiscards.Load(),
		InterfaceInDiscards:  s.interfaceInDiscards.Load(),
		BytesSent:            s.bytesSent.Load(),
		PacketsSent:          s.packetsSent.Load(),
		BytesReceived:        s.bytesReceived.Load(),
		PacketsReceived:      s.packetsReceived.Load(),
	}
}

package pppos

type receiveState struct {
	state    inState
	escaped  bool
	fcs      uint16
	protocol uint16
	rx       chain
}

func (l *Link) Input(data []byte) {
	if l.closed.Load() {
		return
	}
	rx := &l.rx
	am := l.inACCM.Load()

	for _, c := range data {
		if am.escapeP(c) {
			l.inputSpecial(rx, c)
			continue
		}

		if rx.escaped {
			rx.escaped = false
			// An escaped 0x5d is not specially handled here; it
			// unescapes to 0x7d like any other octet.
			c ^= trans
		}

		l.inputData(rx, c)
		rx.fcs = fcsStep(rx.fcs, c)
	}

	if l.cfg.MagicRandomize != nil {
		l.cfg.MagicRandomize()
	}
}

func (l *Link) inputSpecial(rx *receiveState, c byte) {
	switch c {
	case escape:
		rx.escaped = true
	case flag:
		l.inputFlag(rx)
	default:
		// spurious control character: silently discard
	}
}

func (l *Link) inputFlag(rx *receiveState) {
	switch {
	case rx.state <= pdAddress:
		// extra flag between frames
	case rx.state < pdData:
		l.stats.lengthErrors.Add(1)
		l.logger.Warn("pppos: dropping frame, flag arrived mid-header", "state", rx.state)
		l.drop(rx)
	case rx.fcs != fcsGood:
		l.stats.checksumErrors.Add(1)
		l.logger.Warn("pppos: dropping frame, bad checksum", "fcs", rx.fcs)
		l.drop(rx)
	default:
		rx.rx.trimTrailing(2)
		frame := Frame{Link: l, Payload: rx.rx.bytes()}
		l.stats.bytesReceived.Add(uint64(len(frame.Payload)))
		l.stats.packetsReceived.Add(1)
		rx.rx.release()
		l.dispatcher.Dispatch(frame)
	}

	rx.fcs = fcsInit
	rx.state = pdAddress
	rx.escaped = false
}

func (l *Link) drop(rx *receiveState) {
	rx.rx.release()
	l.vj.dropErrorHook()
}

// The fallthrough chain below is deliberate: a version that consumes
// the byte and waits for the next one would mishandle ACFC/PFC-compressed
// frames, where an omitted header field has to be inferred from the
// byte that follows it.
func (l *Link) inputData(rx *receiveState, c byte) {
	switch rx.state {
	case pdIdle:
		if c != allStations {
			return
		}
		fallthrough

	case pdStart:
		rx.fcs = fcsInit
		fallthrough

	case pdAddress:
		if c == allStations {
			rx.state = pdControl
			return
		}
		fallthrough

	case pdControl:
		if c == ui {
			rx.state = pdProtocol1
			return
		}
		fallthrough

	case pdProtocol1:
		if c&1 != 0 {
			rx.protocol = uint16(c)
			rx.state = pdData
		} else {
			rx.protocol = uint16(c) << 8
			rx.state = pdProtocol2
		}
		return

	case pdProtocol2:
		rx.protocol |= uint16(c)
		rx.state = pdData
		return

	case pdData:
		l.inputAppend(rx, c)
	}
}

func (l *Link) inputAppend(rx *receiveState, c byte) {
	if rx.rx.tail == nil || rx.rx.tail.len == segmentSize {
		first := rx.rx.head == nil
		s := rx.rx.grow(l.segAlloc)
		if s == nil {
			l.stats.memErrors.Add(1)
			l.stats.interfaceInDiscards.Add(1)
			l.logger.Warn("pppos: dropping frame, no receive buffer available")
			l.drop(rx)
			rx.state = pdStart
			return
		}

		if first {
			s.buf[0] = byte(rx.protocol >> 8)
			s.buf[1] = byte(rx.protocol)
			s.len = 2
			rx.rx.totLen += 2
		}
	}
	rx.rx.tail.buf[rx.rx.tail.len] = c
	rx.rx.tail.len++
	rx.rx.totLen++
}

package pppos

import "fmt"

type SerialPort interface {
	WriteOctets(p []byte) (n int, err error)
}

func (l *Link) encapsulate(payload []byte, protocol uint16, withHeader bool) (*chain, error) {
	c := &chain{}
	am := l.outACCM.Load()
	alloc := l.segAlloc

	ok := true
	if l.idle() {
		ok = c.appendRaw(flag, alloc)
	}
	l.touchXmit()

	fcs := fcsInit

	if ok && withHeader {
		if !l.cfg.ACFC {
			fcs = fcsStep(fcs, allStations)
			ok = ok && c.appendEscaped(allStations, &am, alloc)
			fcs = fcsStep(fcs, ui)
			ok = ok && c.appendEscaped(ui, &am, alloc)
		}
		if ok && (!l.cfg.PFC || protocol > 0xff) {
			hi := byte(protocol >> 8)
			fcs = fcsStep(fcs, hi)
			ok = ok && c.appendEscaped(hi, &am, alloc)
		}
		lo := byte(protocol)
		fcs = fcsStep(fcs, lo)
		ok = ok && c.appendEscaped(lo, &am, alloc)
	}

	for i := 0; ok && i < len(payload); i++ {
		b := payload[i]
		fcs = fcsStep(fcs, b)
		ok = c.appendEscaped(b, &am, alloc)
	}

	ok = ok && c.appendEscaped(byte(^fcs), &am, alloc)
	ok = ok && c.appendEscaped(byte(^fcs>>8), &am, alloc)
	ok = ok && c.appendRaw(flag, alloc)

	if !ok {
		c.release()
		l.stats.memErrors.Add(1)
		l.stats.interfaceOutDiscards.Add(1)
		return nil, fmt.Errorf("pppos: encapsulate: %w", ErrAlloc)
	}

	return c, nil
}

func (l *Link) transmit(c *chain) error {
	defer c.release()

	for s := c.head; s != nil; s = s.next {
		n, err := l.serial.WriteOctets(s.buf[:s.len])
		if err != nil || n != s.len {
			l.stats.interfaceOutDiscards.Add(1)
			l.forceFlag.Store(true) // force a leading flag next time
			if err == nil {
				return fmt.Errorf("pppos: transmit: %w", ErrShortWrite)
			}
			return fmt.Errorf("pppos: transmit: %w", err)
		}
		l.stats.bytesSent.Add(uint64(n))
	}
	l.stats.packetsSent.Add(1)
	return nil
}

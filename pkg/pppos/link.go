package pppos

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
)

type LinkEvent int

const (
	EventStarted LinkEvent = iota
	EventEnded
)

func (e LinkEvent) String() string {
	if e == EventStarted {
		return "started"
	}
	return "ended"
}

type Config struct {
	ACFC           bool
	PFC            bool
	VJEnabled      bool
	VJCodec        VJCodec
	StatusCallback func(LinkEvent)
	MagicRandomize func()
	Allocator      func() *segment
	Logger         *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type Link struct {
	serial     SerialPort
	dispatcher UpperDispatcher
	cfg        Config
	vj         VJCodec

	outACCM *syncACCM
	inACCM  *syncACCM

	rx receiveState

	lastXmit  atomic.Int64
	tick      atomic.Int64
	forceFlag atomic.Bool

	stats linkStats

	segAlloc allocFunc
	closed   atomic.Bool
	logger   *slog.Logger
}

func NewLink(serial SerialPort, dispatcher UpperDispatcher, cfg Config) *Link {
	l := &Link{
		serial:     serial,
		dispatcher: dispatcher,
		cfg:        cfg,
		vj:         cfg.VJCodec,
		outACCM:    newSyncACCM(defaultACCM()),
		inACCM:     newSyncACCM(defaultACCM()),
	}
	l.rx.state = pdIdle
	l.rx.fcs = fcsInit
	l.forceFlag.Store(true)

	l.logger = cfg.Logger
	if l.logger == nil {
		l.logger = discardLogger
	}

	if cfg.Allocator != nil {
		l.segAlloc = cfg.Allocator
	} else {
		l.segAlloc = newSegment
	}

	return l
}

func (l *Link) Tick() {
	l.tick.Add(1)
}

func (l *Link) idle() bool {
	return l.forceFlag.Load() || l.tick.Load()-l.lastXmit.Load() >= maxIdleFlag
}

func (l *Link) touchXmit() {
	l.lastXmit.Store(l.tick.Load())
	l.forceFlag.Store(false)
}

func (l *Link) Connect() {
	l.rx.rx.release()
	l.rx.state = pdIdle
	l.rx.fcs = fcsInit
	l.rx.escaped = false
	l.rx.protocol = 0

	l.outACCM.Store(accm{})
	l.inACCM.Store(accm{})
	l.forceFlag.Store(true)

	if l.vj.Init != nil {
		l.vj.Init()
	}

	l.logger.Info("pppos: link connected")
	if l.cfg.StatusCallback != nil {
		l.cfg.StatusCallback(EventStarted)
	}
}

func (l *Link) Disconnect() {
	l.logger.Info("pppos: link disconnected", "stats", l.stats.snapshot())
	if l.cfg.StatusCallback != nil {
		l.cfg.StatusCallback(EventEnded)
	}
}

func (l *Link) Close() error {
	l.closed.Store(true)
	l.rx.rx.release()
	return nil
}

func (l *Link) SetOutACCM(bits [32]byte) { l.outACCM.Store(accm(bits)) }
func (l *Link) SetInACCM(bits [32]byte)  { l.inACCM.Store(accm(bits)) }

func (l *Link) ConfigureVJ(enabled, slotCompression bool, maxSlots int) {
	l.cfg.VJEnabled = enabled
	if l.vj.Configure != nil {
		l.vj.Configure(slotCompression, maxSlots)
	}
}

func (l *Link) Output(payload []byte, protocol uint16) error {
	if l.closed.Load() {
		return ErrLinkClosed
	}
	if protocol == ProtoIP && l.cfg.VJEnabled && l.vj.enabled() {
		out, newProto, err := l.vj.Compress(payload)
		if err != nil {
			l.stats.protocolErrors.Add(1)
			l.stats.interfaceOutDiscards.Add(1)
			return fmt.Errorf("pppos: vj compress: %w", ErrProtocol)
		}
		payload, protocol = out, newProto
	}

	c, err := l.encapsulate(payload, protocol, true)
	if err != nil {
		return err
	}
	return l.transmit(c)
}

func (l *Link) WriteControl(payload []byte) error {
	if l.closed.Load() {
		return ErrLinkClosed
	}
	c, err := l.encapsulate(payload, 0, false)
	if err != nil {
		return err
	}
	return l.transmit(c)
}

func (l *Link) Stats() Stats {
	return l.stats.snapshot()
}

func (l *Link) VJCompressed(payload []byte, deliverIP func([]byte)) error {
	if !l.cfg.VJEnabled || !l.vj.enabled() || l.vj.DecompressCompressed == nil {
		l.stats.protocolErrors.Add(1)
		return ErrVJDisabled
	}
	out, err := l.vj.DecompressCompressed(payload)
	if err != nil {
		l.stats.protocolErrors.Add(1)
		return err
	}
	deliverIP(out)
	return nil
}

func (l *Link) VJUncompressed(payload []byte, deliverIP func([]byte)) error {
	if !l.cfg.VJEnabled || !l.vj.enabled() || l.vj.DecompressUncompressed == nil {
		l.stats.protocolErrors.Add(1)
		return ErrVJDisabled
	}
	out, err := l.vj.DecompressUncompressed(payload)
	if err != nil {
		l.stats.protocolErrors.Add(1)
		return err
	}
	deliverIP(out)
	return nil
}

package pppos

import "errors"

const (
	flag   = byte(0x7e)
	escape = byte(0x7d)
	trans  = byte(0x20)

	allStations = byte(0xff)
	ui          = byte(0x03)
)

const (
	ProtoIP        = uint16(0x0021)
	ProtoVJCComp   = uint16(0x002d)
	ProtoVJCUncomp = uint16(0x002f)
)

const maxIdleFlag = 10

const segmentSize = 128

type inState int

const (
	pdIdle inState = iota
	pdStart
	pdAddress
	pdControl
	pdProtocol1
	pdProtocol2
	pdData
)

func (s inState) String() string {
	switch s {
	case pdIdle:
		return "PDIDLE"
	case pdStart:
		return "PDSTART"
	case pdAddress:
		return "PDADDRESS"
	case pdControl:
		return "PDCONTROL"
	case pdProtocol1:
		return "PDPROTOCOL1"
	case pdProtocol2:
		return "PDPROTOCOL2"
	case pdData:
		return "PDDATA"
	default:
		return "PD?"
	}
}

var (
	ErrAlloc      = errors.New("pppos: buffer allocation failed")
	ErrShortWrite = errors.New("pppos: short write on serial port")
	ErrProtocol   = errors.New("pppos: bad protocol/VJ result")
	ErrVJDisabled = errors.New("pppos: VJ compression not enabled")
	ErrLinkClosed = errors.New("pppos: link is closed")
)

//go:build !bitwisefcs

package pppos

import (
	"math/bits"

	"github.com/sigurn/crc16"
)

var fcsTable = crc16.MakeTable(crc16.CRC16_MCRF4XX)

// crc16.Update keeps a reflected CRC's register bit-reversed, so fcs is
// reversed in and out to stay in the LSB-first form fcsGood is stated in.
func fcsStep(fcs uint16, c byte) uint16 {
	return bits.Reverse16(crc16.Update(bits.Reverse16(fcs), []byte{c}, fcsTable))
}

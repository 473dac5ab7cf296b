package pppos

import "testing"

func TestFCSGoodResidue(t *testing.T) {
	// FF 03 C0 21 01 01 00 04, FCS bytes appended, must settle on fcsGood.
	frame := []byte{0xff, 0x03, 0xc0, 0x21, 0x01, 0x01, 0x00, 0x04}
	fcs := fcsInit
	for _, b := range frame {
		fcs = fcsStep(fcs, b)
	}
	fcsLo := byte(^fcs)
	fcsHi := byte(^fcs >> 8)
	fcs = fcsStep(fcs, fcsLo)
	fcs = fcsStep(fcs, fcsHi)

	if fcs != fcsGood {
		t.Fatalf("fcs = %#04x, want %#04x", fcs, fcsGood)
	}
}

func TestFCSDiffersOnCorruption(t *testing.T) {
	frame := []byte{0xff, 0x03, 0xc0, 0x21, 0x01, 0x01, 0x00, 0x04}
	run := func(b []byte) uint16 {
		fcs := fcsInit
		for _, c := range b {
			fcs = fcsStep(fcs, c)
		}
		return fcs
	}

	base := run(frame)
	corrupt := append([]byte{}, frame...)
	corrupt[3] ^= 0x01
	if run(corrupt) == base {
		t.Fatal("corrupted frame produced the same running FCS")
	}
}

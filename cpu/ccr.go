package cpu

import "github.com/ankeraout/emuwalker/mask"

// CCR is the H8/300H condition code register. Bit order, MSB to LSB, is
// I U2 H U1 N Z V C -- the same order the mask package's 1-indexed ByteIndex
// constants already walk in, so reading a CCR field is just mask.IsSet
// against a fixed position instead of a hand-rolled bitfield struct;
// setBit writes the same positions with a direct shift.
type CCR byte

const (
	ccrI  = mask.I1 // interrupt mask
	ccrU2 = mask.I2 // undefined, reserved
	ccrH  = mask.I3 // half-carry
	ccrU1 = mask.I4 // undefined, reserved
	ccrN  = mask.I5 // negative
	ccrZ  = mask.I6 // zero
	ccrV  = mask.I7 // overflow
	ccrC  = mask.I8 // carry
)

func (c CCR) bit(pos mask.ByteIndex) bool { return mask.IsSet(byte(c), pos) }

func (c *CCR) setBit(pos mask.ByteIndex, v bool) {
	b := byte(*c)
	shift := 8 - byte(pos)
	if v {
		b |= 1 << shift
	} else {
		b &^= 1 << shift
	}
	*c = CCR(b)
}

func (c CCR) I() bool     { return c.bit(ccrI) }
func (c CCR) H() bool     { return c.bit(ccrH) }
func (c CCR) N() bool     { return c.bit(ccrN) }
func (c CCR) Z() bool     { return c.bit(ccrZ) }
func (c CCR) V() bool     { return c.bit(ccrV) }
func (c CCR) Carry() bool { return c.bit(ccrC) }

func (c *CCR) SetI(v bool) { c.setBit(ccrI, v) }
func (c *CCR) SetH(v bool) { c.setBit(ccrH, v) }
func (c *CCR) SetN(v bool) { c.setBit(ccrN, v) }
func (c *CCR) SetZ(v bool) { c.setBit(ccrZ, v) }
func (c *CCR) SetV(v bool) { c.setBit(ccrV, v) }
func (c *CCR) SetC(v bool) { c.setBit(ccrC, v) }

// setNZ sets the N and Z flags, the common tail of nearly every ALU
// instruction's flag update.
func (c *CCR) setNZ(negative, zero bool) {
	c.SetN(negative)
	c.SetZ(zero)
}

// String renders the flags in I U2 H U1 N Z V C order, matching the register
// pane the debugger draws.
func (c CCR) String() string {
	out := [8]byte{'-', '-', '-', '-', '-', '-', '-', '-'}
	letters := "IUHUNZVC"
	bits := []bool{c.I(), c.bit(ccrU2), c.H(), c.bit(ccrU1), c.N(), c.Z(), c.V(), c.Carry()}
	for i, set := range bits {
		if set {
			out[i] = letters[i]
		}
	}
	return string(out[:])
}

package cpu

// Branch, jump and subroutine instruction handlers, plus the sixteen
// Bcc condition codes the H8/300H shares with most Renesas and Motorola
// CPUs of this generation.

// cond evaluates one of the sixteen Bcc conditions against the current
// CCR. The encoding (cc field 0x0-0xF) follows the H8/300H manual's own
// table, which in turn is the same condition set the teacher's 6502 core
// partially implements for its own branch opcodes (BCC/BCS/BEQ/BNE etc.)
// -- generalized here to the full sixteen rather than the 6502's eight.
func cond(cc byte, c *Cpu) bool {
	n, z, v, cy := c.CCR.N(), c.CCR.Z(), c.CCR.V(), c.CCR.Carry()
	switch cc {
	case 0x0: // BRA/BT
		return true
	case 0x1: // BRN/BF
		return false
	case 0x2: // BHI
		return !cy && !z
	case 0x3: // BLS
		return cy || z
	case 0x4: // BCC/BHS
		return !cy
	case 0x5: // BCS/BLO
		return cy
	case 0x6: // BNE
		return !z
	case 0x7: // BEQ
		return z
	case 0x8: // BVC
		return !v
	case 0x9: // BVS
		return v
	case 0xA: // BPL
		return !n
	case 0xB: // BMI
		return n
	case 0xC: // BGE
		return n == v
	case 0xD: // BLT
		return n != v
	case 0xE: // BGT
		return !z && n == v
	default: // 0xF, BLE
		return z || n != v
	}
}

// bcc8 decodes an 8-bit PC-relative displacement already consumed as part
// of the opcode byte, and branches if cc holds.
func bcc8(cc byte, disp int8) func(*Cpu) {
	return func(c *Cpu) {
		if cond(cc, c) {
			c.PC = uint32(int32(c.PC) + int32(disp))
		}
	}
}

// bcc16 is bcc8's 16-bit-displacement sibling, used for branches that
// reach further than a byte offset allows.
func bcc16(cc byte, disp int16) func(*Cpu) {
	return func(c *Cpu) {
		if cond(cc, c) {
			c.PC = uint32(int32(c.PC) + int32(disp))
		}
	}
}

// jmp sets PC to an absolute address resolved by decode.go (register
// indirect @ERn or absolute @aa:24). The memory-indirect @@aa:8 form is not
// decoded.
func jmp(target uint32) func(*Cpu) {
	return func(c *Cpu) { c.PC = target }
}

// jsr pushes the return address and jumps, the same push-then-branch
// shape as the teacher's 6502 JSR, just with a 16-bit return address
// instead of a page-1-relative one.
func jsr(target uint32) func(*Cpu) {
	return func(c *Cpu) {
		c.push16(uint16(c.PC))
		c.PC = target
	}
}

// bsr is jsr's PC-relative form.
func bsr(disp int32) func(*Cpu) {
	return func(c *Cpu) {
		ret := c.PC
		c.push16(uint16(ret))
		c.PC = uint32(int32(c.PC) + disp)
	}
}

// rts pops a return address off the stack into PC.
func rts(c *Cpu) {
	c.PC = uint32(c.pop16())
}

// rte pops CCR then PC, restoring the pre-exception state. This core has
// no interrupt controller to actually enter an exception with, but RTE
// still appears in boot/idle loops as a documented no-crash instruction,
// so it pops in the order the manual specifies.
func rte(c *Cpu) {
	c.CCR = CCR(c.pop16() & 0xFF)
	c.PC = uint32(c.pop16())
}

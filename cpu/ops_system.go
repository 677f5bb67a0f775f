package cpu

// System-control instruction handlers: CCR manipulation, NOP, SLEEP and
// software interrupts.

// andc ANDs an immediate into CCR directly (not through an operand, since
// CCR is never bus- or register-addressable as a regular operand).
func andc(imm byte) func(*Cpu) {
	return func(c *Cpu) { c.CCR = CCR(byte(c.CCR) & imm) }
}

func orc(imm byte) func(*Cpu) {
	return func(c *Cpu) { c.CCR = CCR(byte(c.CCR) | imm) }
}

func xorc(imm byte) func(*Cpu) {
	return func(c *Cpu) { c.CCR = CCR(byte(c.CCR) ^ imm) }
}

// ldc loads CCR from a byte operand.
func ldc(src operand) func(*Cpu) {
	return func(c *Cpu) { c.CCR = CCR(byte(src.read(c, Byte))) }
}

// stc stores CCR into a byte operand.
func stc(dst operand) func(*Cpu) {
	return func(c *Cpu) { dst.write(c, Byte, uint32(byte(c.CCR))) }
}

// nop does nothing, the same documented one-cycle no-op the teacher's
// 6502 core implements for its own NOP.
func nop(c *Cpu) {}

// sleep halts instruction execution until an interrupt arrives. This core
// has no interrupt source of its own, so SLEEP is a no-op rather than an
// actual wait -- a host driving Step in a loop simply keeps re-executing
// it, which is harmless and matches real silicon idling on SLEEP with
// nothing pending.
func sleep(c *Cpu) {}

// trapa pushes PC and then CCR (so rte pops them back CCR first) and jumps
// through one of four fixed vector slots, the software-interrupt mechanism
// games use for OS/BIOS calls. This core has no vector table of its own
// beyond the reset vector at 0x0000; TRAPA reads its vector from
// 0xFFD0 + 4*vecNo (0xFFD0-0xFFDF), an address the bus decodes as open
// bus, so the vector read returns 0xFFFF.
func trapa(vecNo byte) func(*Cpu) {
	return func(c *Cpu) {
		c.push16(uint16(c.PC))
		c.push16(uint16(byte(c.CCR)))
		vecAddr := uint16(0xFFD0) + uint16(vecNo)*4
		c.PC = uint32(c.Bus.Read16(vecAddr))
	}
}

// Package cpu implements the Renesas H8/300H interpreter at the heart of
// the emulator: eight 32-bit general registers viewable at three widths, an
// 8-bit condition code register, a two-level opcode decoder, and handlers
// for the ~90 instruction families the H8/300H defines.
//
// Like the teacher's 6502 core, the Cpu holds no memory of its own -- every
// fetch and every operand access goes through the attached Bus.
package cpu

import (
	"fmt"

	"github.com/ankeraout/emuwalker/mem"
)

// Cpu is the whole of the H8/300H's programmer-visible state, plus the bus
// it fetches and executes against.
type Cpu struct {
	Bus *mem.Bus

	Registers
	CCR CCR
	PC  uint32

	// Initialized reports whether the reset vector has been fetched yet.
	// The first Step after Reset replaces PC with the word at 0x0000
	// before doing anything else; every later Step finds this already
	// true and fetches normally.
	Initialized bool

	// UndefinedOpcodeHook, if set, is called whenever Step decodes a bit
	// pattern with no defined H8/300H semantics. The real chip's behavior
	// in that case is unspecified; this core executes a NOP and
	// continues, per §7's UndefinedOpcode policy -- the hook exists only
	// so a host (the debugger, tests) can notice.
	UndefinedOpcodeHook func(pc uint32, word uint16)
}

// Reset zeros the general registers, sets CCR to I=1 (all other flags
// clear), sets PC to 0, and marks the CPU as not yet initialized. It does
// not touch the Bus or its peripherals -- those reset independently.
func (c *Cpu) Reset() {
	c.Registers = Registers{}
	c.CCR = 0
	c.CCR.SetI(true)
	c.PC = 0
	c.Initialized = false
}

// pc16 is the low 16 bits of PC, the part that actually addresses the bus;
// the high 8 bits form the 24-bit code address but this core only ever
// targets the 16-bit space ROM/RAM/SSU live in.
func (c *Cpu) pc16() uint16 { return uint16(c.PC) }

// fetchWord reads the big-endian word at PC and advances PC by 2.
func (c *Cpu) fetchWord() uint16 {
	w := c.Bus.Read16(c.pc16())
	c.PC += 2
	return w
}

// fetchByte reads one byte at PC and advances PC by 1. The @aa:8
// bit-manipulation forms (7E/7F prefix) fetch their 8-bit address as one
// extra byte after the opcode word, so this is kept alongside fetchWord
// rather than always rounding accesses up to a word.
func (c *Cpu) fetchByte() byte {
	b := c.Bus.Read8(c.pc16())
	c.PC++
	return b
}

// Step executes exactly one instruction: on the very first call after
// Reset, it replaces PC with the reset vector at 0x0000 before fetching
// anything (§4.5.5); every subsequent call fetches, decodes and executes
// normally, then ticks the bus once.
func (c *Cpu) Step() {
	if !c.Initialized {
		c.PC = uint32(c.Bus.Read16(0x0000))
		c.Initialized = true
	}

	startPC := c.PC
	word := c.fetchWord()
	inst := c.decode(word)
	if inst == nil {
		if c.UndefinedOpcodeHook != nil {
			c.UndefinedOpcodeHook(startPC, word)
		}
		// Policy: no defined semantics, execute a no-op and move on.
	} else {
		inst(c)
	}

	c.Bus.Cycle()
}

// push16 writes a 16-bit value below the current stack pointer (ER7),
// decrementing it first -- the H8/300H stack grows down, just like the
// teacher's 6502 page-1 stack, except here the pointer is a full 32-bit
// register instead of a fixed page with an 8-bit index.
func (c *Cpu) push16(v uint16) {
	sp := c.sp() - 2
	c.setSP(sp)
	c.Bus.Write16(uint16(sp), v)
}

// pop16 reads a 16-bit value at the current stack pointer, then increments
// it past the slot just read.
func (c *Cpu) pop16() uint16 {
	sp := c.sp()
	v := c.Bus.Read16(uint16(sp))
	c.setSP(sp + 2)
	return v
}

// String renders a one-line register dump, used by the debugger and by test
// failure messages.
func (c *Cpu) String() string {
	er := c.AllER()
	return fmt.Sprintf(
		"PC=%06X CCR=%s ER0=%08X ER1=%08X ER2=%08X ER3=%08X ER4=%08X ER5=%08X ER6=%08X ER7=%08X",
		c.PC, c.CCR, er[0], er[1], er[2], er[3], er[4], er[5], er[6], er[7],
	)
}

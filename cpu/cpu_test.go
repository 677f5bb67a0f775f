package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankeraout/emuwalker/mem"
	"github.com/ankeraout/emuwalker/ram"
	"github.com/ankeraout/emuwalker/rom"
	"github.com/ankeraout/emuwalker/ssu"
)

// codeBase is where these tests place instruction words. The ROM image is
// immutable at this abstraction level (see rom.ROM), so tests that need to
// poke instruction bytes after construction write into RAM instead of
// ROM -- real Pokewalker code never runs from RAM, but nothing in the CPU
// package cares which peripheral PC happens to point at.
const codeBase = ram.Base

// newTestCpu wires a Cpu to a fresh Bus with a blank ROM image, the same
// shape core.Core assembles at boot, so instruction tests exercise the real
// address decode instead of a bare slice.
func newTestCpu(t *testing.T) *Cpu {
	t.Helper()
	r := &rom.ROM{}
	assert.NoError(t, r.Init(make([]byte, rom.ImageSize)))
	m := &ram.RAM{}
	s := &ssu.SSU{}
	s.Reset()
	bus := mem.NewBus(r, m, s)
	c := &Cpu{Bus: bus}
	c.Reset()
	c.Initialized = true // skip the reset-vector bootstrap for these tests
	c.PC = uint32(codeBase)
	return c
}

func TestResetState(t *testing.T) {
	c := newTestCpu(t)
	assert.Equal(t, uint32(0), c.ER(0))
	assert.True(t, c.CCR.I())
	assert.False(t, c.CCR.Z())
}

func TestMovImmediateByte(t *testing.T) {
	c := newTestCpu(t)
	// F8 42: MOV.B #0x42,R0H
	c.Bus.Write16(codeBase, 0xF842)
	c.Step()
	assert.Equal(t, byte(0x42), c.RH(0))
	assert.False(t, c.CCR.Z())
	assert.False(t, c.CCR.N())
}

func TestMovImmediateZeroSetsZ(t *testing.T) {
	c := newTestCpu(t)
	c.Bus.Write16(codeBase, 0xF800) // MOV.B #0x00,R0H
	c.Step()
	assert.True(t, c.CCR.Z())
}

func TestMovAbsolute16(t *testing.T) {
	c := newTestCpu(t)
	c.Bus.Write8(ram.Base+0x10, 0x7E)
	// D8 00 <aa:16>: MOV.B @aa:16,R0H
	c.Bus.Write16(codeBase, 0xD800)
	c.Bus.Write16(codeBase+2, ram.Base+0x10)
	c.Step()
	assert.Equal(t, byte(0x7E), c.RH(0))
	assert.Equal(t, uint32(codeBase+4), c.PC)
}

func TestMovAbsolute24(t *testing.T) {
	c := newTestCpu(t)
	c.Bus.Write8(ram.Base+0x20, 0x99)
	// DE 00 0000 <aa:16>: MOV.B @aa:24,R0H (hi extension word unused, truncated to 16-bit bus)
	c.Bus.Write16(codeBase, 0xDE00)
	c.Bus.Write16(codeBase+2, 0x0000)
	c.Bus.Write16(codeBase+4, ram.Base+0x20)
	c.Step()
	assert.Equal(t, byte(0x99), c.RH(0))
	assert.Equal(t, uint32(codeBase+6), c.PC)
}

func TestAddByteRegisters(t *testing.T) {
	c := newTestCpu(t)
	c.SetRH(0, 0x10) // R0H
	c.SetRH(1, 0x05) // R1H
	// 08 10: ADD.B R1H,R0H. Byte register fields run 0-7 for RnH, 8-15 for
	// RnL, packed (Rs<<4)|Rd: Rs=R1H=1, Rd=R0H=0.
	c.Bus.Write16(codeBase, 0x0810)
	c.Step()
	assert.Equal(t, byte(0x15), c.RH(0))
}

func TestCmpByteSetsHalfCarry(t *testing.T) {
	c := newTestCpu(t)
	c.SetRH(0, 0x10) // R0H
	c.SetRH(1, 0x01) // R1H
	c.CCR.SetH(false)
	// 1C 10: CMP.B R1H,R0H -- compares R0H-R1H without writing either back.
	c.Bus.Write16(codeBase, 0x1C10)
	c.Step()
	assert.True(t, c.CCR.H())
	assert.False(t, c.CCR.Z())
	assert.False(t, c.CCR.N())
	assert.False(t, c.CCR.Carry())
	assert.Equal(t, byte(0x10), c.RH(0)) // CMP never writes back
}

func TestJsrAndRts(t *testing.T) {
	c := newTestCpu(t)
	stackTop := uint32(ram.Base + ram.Size - 2)
	c.SetER(7, stackTop)
	target := uint16(codeBase + 0x20)

	// 5E 00 <aa:16>: JSR @aa:24, 4-byte form (truncated to the 16-bit bus)
	c.Bus.Write16(codeBase, 0x5E00)
	c.Bus.Write16(codeBase+2, target)
	c.Step()
	assert.Equal(t, uint32(target), c.PC)
	assert.Equal(t, stackTop-2, c.ER(7))

	// 54 70: RTS
	c.Bus.Write16(target, 0x5470)
	c.Step()
	assert.Equal(t, uint32(codeBase+4), c.PC)
	assert.Equal(t, stackTop, c.ER(7))
}

func TestEepmovByte(t *testing.T) {
	c := newTestCpu(t)
	src := uint32(ram.Base + 0x40)
	dst := uint32(ram.Base + 0x50)
	c.SetER(5, src)
	c.SetER(6, dst)
	c.SetRL(4, 4)
	for i := 0; i < 4; i++ {
		c.Bus.Write8(uint16(src)+uint16(i), byte(0xA0+i))
	}
	c.Bus.Write16(codeBase, 0x7B5C)   // EEPMOV.B
	c.Bus.Write16(codeBase+2, 0x598F) // fixed second word
	c.Step()

	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(0xA0+i), c.Bus.Read8(uint16(dst)+uint16(i)))
	}
	assert.Equal(t, byte(0), c.RL(4))
	assert.Equal(t, src+4, c.ER(5))
	assert.Equal(t, dst+4, c.ER(6))
	assert.Equal(t, uint32(codeBase+4), c.PC)
}

func TestBccTaken(t *testing.T) {
	c := newTestCpu(t)
	c.CCR.SetZ(true)
	// 47 02: BEQ +2 (cc=7 is BEQ)
	c.Bus.Write16(codeBase, 0x4702)
	c.Step()
	assert.Equal(t, uint32(codeBase+4), c.PC)
}

func TestBccNotTaken(t *testing.T) {
	c := newTestCpu(t)
	c.CCR.SetZ(false)
	c.Bus.Write16(codeBase, 0x4702)
	c.Step()
	assert.Equal(t, uint32(codeBase+2), c.PC)
}

func TestUndefinedOpcodeInvokesHook(t *testing.T) {
	c := newTestCpu(t)
	c.Bus.Write16(codeBase, 0xC000) // unassigned in this decode table
	var gotPC uint32
	var gotWord uint16
	c.UndefinedOpcodeHook = func(pc uint32, word uint16) {
		gotPC = pc
		gotWord = word
	}
	c.Step()
	assert.Equal(t, uint32(codeBase), gotPC)
	assert.Equal(t, uint16(0xC000), gotWord)
	assert.Equal(t, uint32(codeBase+2), c.PC)
}

func TestResetBootstrapsFromVector(t *testing.T) {
	r := &rom.ROM{}
	image := make([]byte, rom.ImageSize)
	image[0] = 0x12
	image[1] = 0x34
	image[0x1234] = 0x00
	image[0x1235] = 0x00
	assert.NoError(t, r.Init(image))

	m := &ram.RAM{}
	s := &ssu.SSU{}
	s.Reset()
	c := &Cpu{Bus: mem.NewBus(r, m, s)}
	c.Reset()

	c.Step()
	assert.True(t, c.Initialized)
	assert.Equal(t, uint32(0x1236), c.PC)
}

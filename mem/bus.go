// Package mem implements the system bus: the central dispatcher that
// decodes a 16-bit effective address to one of {ROM, RAM, SSU, open-bus} and
// translates byte/word/long accesses into calls on the resolved peripheral.
//
// Like the teacher's single-Bus design, this Bus holds direct pointers to
// each peripheral rather than a generic device-table; the decode itself
// (§4.1's address ranges) is small and static enough that a range-match
// switch is clearer than the 224-entry sparse tables the original C source
// used for the same job.
package mem

import (
	"github.com/ankeraout/emuwalker/mask"
	"github.com/ankeraout/emuwalker/ram"
	"github.com/ankeraout/emuwalker/rom"
	"github.com/ankeraout/emuwalker/ssu"
)

// peripheral identifies which subsystem a decoded address belongs to.
type peripheral int

const (
	pROM peripheral = iota
	pRAM
	pSSU
	pOpenBus
)

// Bus owns references to every addressable peripheral. It is not itself a
// peripheral -- it has no state of its own beyond those pointers.
type Bus struct {
	ROM *rom.ROM
	RAM *ram.RAM
	SSU *ssu.SSU
}

// NewBus wires a Bus to a fresh set of peripherals. The caller (core.Core)
// owns the peripherals and may reach into them directly for load/reset;
// the Bus only needs them for dispatch.
func NewBus(r *rom.ROM, m *ram.RAM, s *ssu.SSU) *Bus {
	return &Bus{ROM: r, RAM: m, SSU: s}
}

// decode implements the §4.1 address map. Anything not explicitly listed is
// open-bus.
func decode(addr uint16) peripheral {
	switch {
	case addr <= 0xBFFF:
		return pROM
	case addr >= 0xF020 && addr <= 0xF023, addr == 0xF02B:
		return pROM // flash-control registers live in the rom package
	case addr >= 0xF0E0 && addr <= 0xF0E4, addr == 0xF0E9, addr == 0xF0EB:
		return pSSU
	case addr >= ram.Base && addr <= 0xFF7F:
		return pRAM
	default:
		return pOpenBus
	}
}

// Read8 reads one byte through the decode table. Open-bus reads return 0xFF.
func (b *Bus) Read8(addr uint16) byte {
	switch decode(addr) {
	case pROM:
		return b.ROM.Read8(addr)
	case pRAM:
		return b.RAM.Read8(addr)
	case pSSU:
		return b.SSU.Read8(addr)
	default:
		return 0xFF
	}
}

// Write8 writes one byte through the decode table. Open-bus writes are
// silently dropped.
func (b *Bus) Write8(addr uint16, v byte) {
	switch decode(addr) {
	case pROM:
		b.ROM.Write8(addr, v)
	case pRAM:
		b.RAM.Write8(addr, v)
	case pSSU:
		b.SSU.Write8(addr, v)
	}
}

// Read16 word-aligns addr and composes a big-endian word. §9's REDESIGN
// FLAG note applies here: an open-bus 16-bit read returns 0xFFFF, not the
// 0xFF the original C source's (*uint16)(ptr) = 0xff assignment bug
// produced -- that inconsistency is not reproduced.
func (b *Bus) Read16(addr uint16) uint16 {
	addr &= 0xFFFE
	if decode(addr) == pOpenBus {
		return 0xFFFF
	}
	return mask.Word(b.Read8(addr), b.Read8(addr+1))
}

func (b *Bus) Write16(addr uint16, v uint16) {
	addr &= 0xFFFE
	if decode(addr) == pOpenBus {
		return
	}
	hi, lo := mask.Bytes(v)
	b.Write8(addr, hi)
	b.Write8(addr+1, lo)
}

// Read32 performs two word reads, high word first.
func (b *Bus) Read32(addr uint16) uint32 {
	hi := b.Read16(addr)
	lo := b.Read16(addr + 2)
	return mask.Long(hi, lo)
}

func (b *Bus) Write32(addr uint16, v uint32) {
	hi, lo := mask.Words(v)
	b.Write16(addr, hi)
	b.Write16(addr+2, lo)
}

// Cycle advances one bus tick. Today that means exactly one SSU clock tick;
// if more peripherals ever need ticking, they get added here, in the order
// the spec says the hardware actually ticks them.
func (b *Bus) Cycle() {
	b.SSU.Cycle()
}

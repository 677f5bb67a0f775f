// Package ram models the Pokewalker's 2 KiB on-chip SRAM.
package ram

import "github.com/ankeraout/emuwalker/mask"

// Size is the number of bytes of on-chip RAM, mapped at 0xF780-0xFF7F.
const Size = 2048

// Base is the lowest address RAM answers to; Read8 and Write8 subtract it
// from the bus address before indexing.
const Base = 0xF780

// RAM is a flat, byte/word-addressable buffer. It has no independent
// lifecycle beyond Reset -- there is no "image" to load, unlike ROM.
type RAM struct {
	data [Size]byte
}

// Reset zeros the buffer, as happens on every core reset.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

func (r *RAM) Read8(addr uint16) byte {
	return r.data[addr-Base]
}

func (r *RAM) Write8(addr uint16, v byte) {
	r.data[addr-Base] = v
}

// Read16 is big-endian and not required to be word-aligned by the caller.
// The Bus composes its own word accesses byte-wise rather than reaching
// these directly; they exist for RAM's own tests and any future caller that
// wants a word view of this buffer specifically.
func (r *RAM) Read16(addr uint16) uint16 {
	return mask.Word(r.Read8(addr), r.Read8(addr+1))
}

func (r *RAM) Write16(addr uint16, v uint16) {
	hi, lo := mask.Bytes(v)
	r.Write8(addr, hi)
	r.Write8(addr+1, lo)
}

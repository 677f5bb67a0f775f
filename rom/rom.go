// Package rom models the Pokewalker's 48 KiB flash ROM image and the small
// bank of memory-mapped flash-control registers that sit just past it.
package rom

import (
	"fmt"

	"github.com/ankeraout/emuwalker/mask"
)

// ImageSize is the exact size, in bytes, of a flash ROM image. Init
// rejects anything else, mirroring the BadFileSize contract the host relies
// on at load time.
const ImageSize = 49152

// Flash-control register addresses, relative to the full 16-bit address
// space (the ROM's Read8/Write8 subtract nothing -- these already sit in the
// 0xC000-0xFFFF I/O range the image never covers).
const (
	FLMCR1 = 0xF020
	FLMCR2 = 0xF021
	FLPWCR = 0xF022
	EBR1   = 0xF023
	FENR   = 0xF02B
)

// ROM owns the 49,152-byte flash image plus its control registers. The image
// is effectively read-only at this abstraction level: writes inside
// 0x0000-0xBFFF are accepted (so guest "flash write" sequences do not crash
// the emulator) but never change the stored bytes, since real programming
// timing is out of scope (see DESIGN.md).
type ROM struct {
	image  [ImageSize]byte
	flmcr1 byte
	flmcr2 byte
	flpwcr byte
	ebr1   byte
	fenr   byte
}

// Init installs a full-size image, replacing whatever was loaded before.
func (r *ROM) Init(image []byte) error {
	if len(image) != ImageSize {
		return fmt.Errorf("rom: image must be exactly %d bytes, got %d", ImageSize, len(image))
	}
	copy(r.image[:], image)
	return nil
}

// Reset restores the control registers to their power-on defaults. The image
// itself is untouched -- flash survives a reset, that's the point of it.
func (r *ROM) Reset() {
	r.flmcr1 = 0
	r.flmcr2 = 0
	r.flpwcr = 0
	r.ebr1 = 0
	r.fenr = 0
}

// inImage reports whether addr falls inside the 0x0000-0xBFFF flash image,
// per the §4.1 decode rule: (addr & 0xC000) != 0xC000 means image.
func inImage(addr uint16) bool {
	return addr&0xC000 != 0xC000
}

func (r *ROM) Read8(addr uint16) byte {
	if inImage(addr) {
		return r.image[addr]
	}
	switch addr {
	case FLMCR1:
		return r.flmcr1
	case FLMCR2:
		return r.flmcr2
	case FLPWCR:
		return r.flpwcr
	case EBR1:
		return r.ebr1
	case FENR:
		return r.fenr
	default:
		// Idle flash-control I/O outside the five named registers still
		// reads as "not programming", which the spec accepts as 0xFF.
		return 0xFF
	}
}

func (r *ROM) Write8(addr uint16, v byte) {
	if inImage(addr) {
		return // the image is immutable at this abstraction level
	}
	switch addr {
	case FLMCR1:
		r.flmcr1 = v
	case FLMCR2:
		r.flmcr2 = v
	case FLPWCR:
		r.flpwcr = v
	case EBR1:
		r.ebr1 = v
	case FENR:
		r.fenr = v
	}
}

// Read16 composes a big-endian word from two Read8 calls; the image has no
// native 16-bit path, so this is the only option per §4.1. The Bus never
// calls these directly (it composes words itself from Read8/Write8 across
// whichever peripheral decode selects), but ROM needs the same word view for
// its own unit tests.
func (r *ROM) Read16(addr uint16) uint16 {
	return mask.Word(r.Read8(addr), r.Read8(addr+1))
}

func (r *ROM) Write16(addr uint16, v uint16) {
	hi, lo := mask.Bytes(v)
	r.Write8(addr, hi)
	r.Write8(addr+1, lo)
}

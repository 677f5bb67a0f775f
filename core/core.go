// Package core is the Pokewalker's top-level façade: it owns the CPU, the
// bus, and every peripheral behind it, and exposes the load/reset/step
// lifecycle a host (a CLI, a test, the bubbletea debugger) drives from
// outside. Nothing in this package touches a window, a speaker, or a clock
// -- that's the external host frontend's job.
package core

import (
	"errors"
	"fmt"

	"github.com/ankeraout/emuwalker/cpu"
	"github.com/ankeraout/emuwalker/mem"
	"github.com/ankeraout/emuwalker/ram"
	"github.com/ankeraout/emuwalker/rom"
	"github.com/ankeraout/emuwalker/ssu"
)

// FileKind selects which buffer LoadFile installs.
type FileKind int

const (
	FlashROM FileKind = iota
	EEPROM
)

// EEPROMSize is the exact size, in bytes, of the EEPROM image LoadFile
// accepts. The EEPROM is retained but not yet backed by any addressable
// peripheral -- see DESIGN.md's Open Question note on this.
const EEPROMSize = 65536

// Sentinel errors for the load-time failures §7 names as fatal. Run-time
// conditions (UndefinedOpcode, BusOpenAccess, SSUOverrun) never reach this
// package as errors -- they're expressed as CPU/SSU state instead, per the
// same section.
var (
	BadFileSize     = errors.New("core: file has the wrong size")
	MissingFile     = errors.New("core: file could not be read")
	UnknownCoreFile = errors.New("core: unknown file kind")
)

// videoWidth/videoHeight give the Pokewalker's LCD dimensions; VideoBuffer
// hands back a view of this shape even though nothing in this package ever
// draws into it (the LCD controller is out of scope, per §1).
const (
	videoWidth  = 96
	videoHeight = 64
)

// Key names the three physical buttons.
type Key int

const (
	Left Key = iota
	Middle
	Right
)

// KeyState is whether a Key is currently held down.
type KeyState int

const (
	Released KeyState = iota
	Pressed
)

// frameBudget is the fixed instruction count FrameAdvance steps before
// declaring VBlank reached. The real VBlank source is the LCD controller,
// out of scope here (§4.6); this is the accepted minimal substitute, picked
// for this core -- see DESIGN.md's Open Question note.
const frameBudget = 10000

// Core owns every piece of emulated hardware state and wires them together
// exactly the way the Bus expects: ROM, RAM, and SSU as concrete
// peripherals, the CPU holding only a pointer to the Bus.
type Core struct {
	rom *rom.ROM
	ram *ram.RAM
	ssu *ssu.SSU
	bus *mem.Bus
	Cpu *cpu.Cpu

	eeprom []byte

	video [videoWidth * videoHeight]uint32
	keys  map[Key]KeyState
}

// Preinit zeros every image-buffer handle this Core knows about. It exists
// as its own step (rather than folding into a constructor) because the
// real lifecycle calls it before any file is known to exist -- mirroring
// §4.6's own preinit/load_file/init split.
func Preinit() *Core {
	c := &Core{
		rom:  &rom.ROM{},
		ram:  &ram.RAM{},
		ssu:  &ssu.SSU{},
		keys: make(map[Key]KeyState, 3),
	}
	c.bus = mem.NewBus(c.rom, c.ram, c.ssu)
	c.Cpu = &cpu.Cpu{Bus: c.bus}
	return c
}

// LoadFile installs a ROM or EEPROM image, rejecting anything the wrong
// size. The EEPROM buffer is retained for a future storage model (§6) but
// nothing in this core yet addresses it from the bus.
func (c *Core) LoadFile(kind FileKind, data []byte) error {
	switch kind {
	case FlashROM:
		if len(data) != rom.ImageSize {
			return fmt.Errorf("%w: flash ROM must be %d bytes, got %d", BadFileSize, rom.ImageSize, len(data))
		}
		return c.rom.Init(data)
	case EEPROM:
		if len(data) != EEPROMSize {
			return fmt.Errorf("%w: EEPROM must be %d bytes, got %d", BadFileSize, EEPROMSize, len(data))
		}
		c.eeprom = append([]byte(nil), data...)
		return nil
	default:
		return fmt.Errorf("%w: %d", UnknownCoreFile, kind)
	}
}

// Init performs the final wiring after both files are loaded. There is
// nothing left to connect beyond what Preinit already set up -- Init exists
// to mirror §4.6's named lifecycle stage, and as the place a future
// EEPROM-backed peripheral would get attached to the bus.
func (c *Core) Init() {
	c.Reset()
}

// Reset resets CPU, RAM, and SSU. The ROM image survives, same as flash on
// real hardware.
func (c *Core) Reset() {
	c.Cpu.Reset()
	c.ram.Reset()
	c.ssu.Reset()
	c.rom.Reset()
}

// Step executes exactly one CPU instruction, which also ticks the bus (and
// therefore the SSU) once, per §5's ordering rule.
func (c *Core) Step() {
	c.Cpu.Step()
}

// FrameAdvance steps until the hardware would enter VBlank. With no LCD
// controller modeled, VBlank is simulated by a fixed instruction budget
// (see frameBudget, and the Open Question decision in DESIGN.md).
func (c *Core) FrameAdvance() {
	for i := 0; i < frameBudget; i++ {
		c.Step()
	}
}

// VideoBuffer returns a borrowed view of the 96x64 framebuffer. Nothing in
// this core ever writes into it -- the LCD subsystem that would is out of
// scope (§1) -- so callers always see the zero frame. It exists so a host
// frontend has a stable contract to poll even before that subsystem exists.
func (c *Core) VideoBuffer() *[videoWidth * videoHeight]uint32 {
	return &c.video
}

// SetInput records a button's state. Nothing currently reads it back out --
// there is no input-mapped peripheral yet -- but the contract matches §4.6
// so a future IRQ-driven input controller has somewhere to live.
func (c *Core) SetInput(key Key, state KeyState) {
	c.keys[key] = state
}

// ReadRegister and WriteRegister give the host the §4.6
// read_register/write_register access by name. They accept "ER0".."ER7",
// "PC" and "CCR"; the narrower E/R/RH/RL views are not addressable by name.
// Unknown names are a caller bug, not a core error -- ReadRegister returns
// 0 and WriteRegister is a no-op, matching
// how the rest of this core tolerates guest-visible misuse without
// aborting.
func (c *Core) ReadRegister(name string) uint32 {
	if n, ok := erIndex(name); ok {
		return c.Cpu.ER(n)
	}
	if name == "PC" {
		return c.Cpu.PC
	}
	if name == "CCR" {
		return uint32(c.Cpu.CCR)
	}
	return 0
}

func (c *Core) WriteRegister(name string, value uint32) {
	if n, ok := erIndex(name); ok {
		c.Cpu.SetER(n, value)
		return
	}
	switch name {
	case "PC":
		c.Cpu.PC = value
	case "CCR":
		c.Cpu.CCR = cpu.CCR(byte(value))
	}
}

// erIndex parses register names of the form "ER0".."ER7".
func erIndex(name string) (int, bool) {
	if len(name) != 3 || name[0] != 'E' || name[1] != 'R' {
		return 0, false
	}
	n := int(name[2] - '0')
	if n < 0 || n > 7 {
		return 0, false
	}
	return n, true
}

// ReadMemory and WriteMemory give the host raw bus access for debugging and
// inspection, bypassing the CPU entirely.
func (c *Core) ReadMemory(addr uint16) byte {
	return c.bus.Read8(addr)
}

func (c *Core) WriteMemory(addr uint16, v byte) {
	c.bus.Write8(addr, v)
}

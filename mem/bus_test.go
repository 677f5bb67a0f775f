package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankeraout/emuwalker/ram"
	"github.com/ankeraout/emuwalker/rom"
	"github.com/ankeraout/emuwalker/ssu"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	r := &rom.ROM{}
	assert.NoError(t, r.Init(make([]byte, rom.ImageSize)))
	m := &ram.RAM{}
	s := &ssu.SSU{}
	s.Reset()
	return NewBus(r, m, s)
}

func TestRomRange(t *testing.T) {
	b := newTestBus(t)
	b.Write8(0x0000, 0x11) // dropped: ROM image is immutable
	assert.Equal(t, byte(0x00), b.Read8(0x0000))
}

func TestRamRange(t *testing.T) {
	b := newTestBus(t)
	b.Write8(ram.Base, 0x42)
	assert.Equal(t, byte(0x42), b.Read8(ram.Base))
}

func TestSsuRange(t *testing.T) {
	b := newTestBus(t)
	b.Write8(ssu.SSTDR, 0x7E)
	assert.Equal(t, byte(0x7E), b.Read8(ssu.SSTDR))
}

func TestOpenBusRead8ReturnsFF(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, byte(0xFF), b.Read8(0xD000))
}

func TestOpenBusRead16ReturnsFFFF(t *testing.T) {
	b := newTestBus(t)
	// §9 REDESIGN FLAG: a 16-bit open-bus read returns 0xFFFF, not the
	// original source's inconsistent 8-bit-pattern bug.
	assert.Equal(t, uint16(0xFFFF), b.Read16(0xD000))
}

func TestOpenBusWriteIsDropped(t *testing.T) {
	b := newTestBus(t)
	b.Write8(0xD000, 0x42)
	assert.Equal(t, byte(0xFF), b.Read8(0xD000))
}

func TestRead32ComposesTwoWordsBigEndian(t *testing.T) {
	b := newTestBus(t)
	b.Write16(ram.Base, 0x1122)
	b.Write16(ram.Base+2, 0x3344)
	assert.Equal(t, uint32(0x11223344), b.Read32(ram.Base))
}

func TestCycleAdvancesSsu(t *testing.T) {
	b := newTestBus(t)
	b.Write8(ssu.SSTDR, 0x01)
	for i := 0; i < 2048; i++ {
		b.Cycle()
	}
	assert.NotEqual(t, byte(0), b.Read8(ssu.SSSR)&0x04) // TEND set: transfer complete
}

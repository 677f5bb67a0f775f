package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteByte(t *testing.T) {
	var r RAM
	r.Write8(Base, 0x42)
	assert.Equal(t, byte(0x42), r.Read8(Base))
}

func TestReadWriteWordBigEndian(t *testing.T) {
	var r RAM
	r.Write16(Base+2, 0xBEEF)
	assert.Equal(t, byte(0xBE), r.Read8(Base+2))
	assert.Equal(t, byte(0xEF), r.Read8(Base+3))
	assert.Equal(t, uint16(0xBEEF), r.Read16(Base+2))
}

func TestResetZeroesRAM(t *testing.T) {
	var r RAM
	r.Write8(Base, 0xFF)
	r.Reset()
	assert.Equal(t, byte(0), r.Read8(Base))
}

func TestLastAddressable(t *testing.T) {
	var r RAM
	last := uint16(Base + Size - 1)
	r.Write8(last, 0x99)
	assert.Equal(t, byte(0x99), r.Read8(last))
}

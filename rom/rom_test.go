package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitRejectsWrongSize(t *testing.T) {
	var r ROM
	err := r.Init(make([]byte, ImageSize-1))
	assert.Error(t, err)
}

func TestInitAndReadImage(t *testing.T) {
	var r ROM
	image := make([]byte, ImageSize)
	image[0] = 0xAB
	image[0xBFFF] = 0xCD
	assert.NoError(t, r.Init(image))
	assert.Equal(t, byte(0xAB), r.Read8(0x0000))
	assert.Equal(t, byte(0xCD), r.Read8(0xBFFF))
}

func TestImageWritesAreDropped(t *testing.T) {
	var r ROM
	assert.NoError(t, r.Init(make([]byte, ImageSize)))
	r.Write8(0x0010, 0xFF)
	assert.Equal(t, byte(0x00), r.Read8(0x0010))
}

func TestFlashControlRegistersReadWrite(t *testing.T) {
	var r ROM
	assert.NoError(t, r.Init(make([]byte, ImageSize)))
	r.Write8(FLMCR1, 0x80)
	assert.Equal(t, byte(0x80), r.Read8(FLMCR1))
	r.Write8(EBR1, 0x07)
	assert.Equal(t, byte(0x07), r.Read8(EBR1))
}

func TestResetClearsFlashControlRegistersNotImage(t *testing.T) {
	var r ROM
	image := make([]byte, ImageSize)
	image[5] = 0x42
	assert.NoError(t, r.Init(image))
	r.Write8(FLMCR1, 0x80)
	r.Reset()
	assert.Equal(t, byte(0), r.Read8(FLMCR1))
	assert.Equal(t, byte(0x42), r.Read8(5))
}

func TestRead16ComposesBigEndian(t *testing.T) {
	var r ROM
	image := make([]byte, ImageSize)
	image[0x100] = 0x12
	image[0x101] = 0x34
	assert.NoError(t, r.Init(image))
	assert.Equal(t, uint16(0x1234), r.Read16(0x100))
}

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankeraout/emuwalker/ram"
	"github.com/ankeraout/emuwalker/rom"
)

func TestLoadFileRejectsWrongRomSize(t *testing.T) {
	c := Preinit()
	err := c.LoadFile(FlashROM, make([]byte, 100))
	require.Error(t, err)
	assert.True(t, errors.Is(err, BadFileSize))
}

func TestLoadFileRejectsWrongEepromSize(t *testing.T) {
	c := Preinit()
	err := c.LoadFile(EEPROM, make([]byte, 100))
	require.Error(t, err)
	assert.True(t, errors.Is(err, BadFileSize))
}

func TestLoadFileUnknownKind(t *testing.T) {
	c := Preinit()
	err := c.LoadFile(FileKind(99), make([]byte, rom.ImageSize))
	require.Error(t, err)
	assert.True(t, errors.Is(err, UnknownCoreFile))
}

func TestInitAndStep(t *testing.T) {
	c := Preinit()
	image := make([]byte, rom.ImageSize)
	image[0] = 0x12
	image[1] = 0x34
	require.NoError(t, c.LoadFile(FlashROM, image))
	require.NoError(t, c.LoadFile(EEPROM, make([]byte, EEPROMSize)))
	c.Init()

	c.Step()
	assert.Equal(t, uint32(0x1236), c.Cpu.PC)
}

func TestResetPreservesRomImage(t *testing.T) {
	c := Preinit()
	image := make([]byte, rom.ImageSize)
	image[10] = 0xAB
	require.NoError(t, c.LoadFile(FlashROM, image))
	c.Init()

	c.Reset()
	assert.Equal(t, byte(0xAB), c.ReadMemory(10))
}

func TestReadWriteMemory(t *testing.T) {
	c := Preinit()
	require.NoError(t, c.LoadFile(FlashROM, make([]byte, rom.ImageSize)))
	c.Init()

	c.WriteMemory(ram.Base, 0x7E)
	assert.Equal(t, byte(0x7E), c.ReadMemory(ram.Base))
}

func TestReadWriteRegister(t *testing.T) {
	c := Preinit()
	require.NoError(t, c.LoadFile(FlashROM, make([]byte, rom.ImageSize)))
	c.Init()

	c.WriteRegister("ER3", 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), c.ReadRegister("ER3"))

	c.WriteRegister("PC", 0x1000)
	assert.Equal(t, uint32(0x1000), c.ReadRegister("PC"))
}

func TestReadRegisterUnknownNameReturnsZero(t *testing.T) {
	c := Preinit()
	require.NoError(t, c.LoadFile(FlashROM, make([]byte, rom.ImageSize)))
	c.Init()
	assert.Equal(t, uint32(0), c.ReadRegister("bogus"))
}

func TestFrameAdvanceRunsWithoutPanicking(t *testing.T) {
	c := Preinit()
	require.NoError(t, c.LoadFile(FlashROM, make([]byte, rom.ImageSize)))
	c.Init()
	c.FrameAdvance()
}

func TestSetInput(t *testing.T) {
	c := Preinit()
	c.SetInput(Left, Pressed)
	assert.Equal(t, Pressed, c.keys[Left])
	c.SetInput(Left, Released)
	assert.Equal(t, Released, c.keys[Left])
}

func TestVideoBufferShape(t *testing.T) {
	c := Preinit()
	buf := c.VideoBuffer()
	assert.Equal(t, videoWidth*videoHeight, len(buf))
}

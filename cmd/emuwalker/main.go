// Command emuwalker is the thin CLI host around package core: it loads a
// flash ROM and EEPROM image, wires up a Core, and either runs a fixed-step
// loop or launches the interactive debugger. No windowing, audio, or real
// host frontend lives here -- those are the external collaborators the
// core's spec names but does not implement.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/ankeraout/emuwalker/core"
)

func main() {
	app := &cli.App{
		Name:  "emuwalker",
		Usage: "run a Pokewalker flash ROM image",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rom",
				Usage: "path to the flash ROM image (49152 bytes)",
			},
			&cli.StringFlag{
				Name:  "eeprom",
				Usage: "path to the EEPROM image (65536 bytes)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "launch the interactive step debugger instead of running freely",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	eepromPath := c.String("eeprom")
	if romPath == "" || eepromPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("both --rom and --eeprom are required", 1)
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("%w: %v", core.MissingFile, err)
	}
	eepromData, err := os.ReadFile(eepromPath)
	if err != nil {
		return fmt.Errorf("%w: %v", core.MissingFile, err)
	}

	emu := core.Preinit()
	if err := emu.LoadFile(core.FlashROM, romData); err != nil {
		return err
	}
	if err := emu.LoadFile(core.EEPROM, eepromData); err != nil {
		return err
	}
	emu.Init()

	if c.Bool("debug") {
		emu.Cpu.Debugger()
		return nil
	}

	for {
		emu.FrameAdvance()
	}
}

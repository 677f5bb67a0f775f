package cpu

import "fmt"

// Disassemble renders a short mnemonic for the instruction word at addr,
// without executing it, and reports how many bytes it occupies. It exists
// purely for Debugger's instruction-dump pane -- unlike decode, it never
// advances PC or touches CPU state, so it peeks at extension words
// directly off the bus instead of going through fetchWord.
func (c *Cpu) Disassemble(addr uint32) (string, int) {
	a := uint16(addr)
	word := c.Bus.Read16(a)
	hi := byte(word >> 8)
	lo := byte(word)

	switch {
	case word == 0x0000:
		return "NOP", 2
	case word == 0x0100:
		return "SLEEP", 2
	case word == 0x0200:
		return "RTE", 2
	case word == 0x5470:
		return "RTS", 2
	case hi&0xF0 == 0x40:
		return fmt.Sprintf("Bcc(%X) %+d", hi&0x0F, int8(lo)), 2
	case hi == 0x58:
		return fmt.Sprintf("Bcc(%X) d:16", lo&0x0F), 4
	case hi == 0x59:
		return fmt.Sprintf("JMP @ER%d", lo&0x07), 2
	case word == 0x5A00:
		return "JMP @aa:24", 4
	case hi == 0x5D:
		return fmt.Sprintf("JSR @ER%d", lo&0x07), 2
	case word == 0x5E00:
		return "JSR @aa:24", 4
	case hi == 0x55:
		return fmt.Sprintf("BSR %+d", int8(lo)), 2
	case word == 0x5C00:
		return "BSR d:16", 4
	case hi == 0x57:
		return fmt.Sprintf("TRAPA #%d", lo&0x03), 2
	case hi == 0x7B && lo == 0x5C:
		return "EEPMOV.B", 4
	case hi == 0x7B && lo == 0xD4:
		return "EEPMOV.W", 4
	}

	if name, width, ok := mnemonicFor(hi); ok {
		return fmt.Sprintf("%s %02X", name, lo), width
	}

	return fmt.Sprintf(".WORD %04X", word), 2
}

// mnemonicFor gives a coarse family name for an opcode's high byte, good
// enough for a debugger listing -- it does not attempt to render operands
// the way decode.go resolves them, since that would mean duplicating the
// entire decode table just to produce text nobody parses back.
func mnemonicFor(hi byte) (string, int, bool) {
	switch {
	case hi == 0x08:
		return "ADD.B", 2, true
	case hi == 0x09:
		return "ADD.W", 2, true
	case hi == 0x0A:
		return "ADD.L/INC", 2, true
	case hi == 0x0B:
		return "ADDS", 2, true
	case hi == 0x0C:
		return "MOV.B", 2, true
	case hi == 0x0D:
		return "MOV.W", 2, true
	case hi == 0x0E:
		return "ADDX", 2, true
	case hi == 0x0F:
		return "MOV.L", 2, true
	case hi == 0x18:
		return "SUB.B", 2, true
	case hi == 0x19:
		return "SUB.W", 2, true
	case hi == 0x1A:
		return "SUB.L/DEC", 2, true
	case hi == 0x1B:
		return "SUBS", 2, true
	case hi == 0x1C:
		return "CMP.B", 2, true
	case hi == 0x1D:
		return "CMP.W", 2, true
	case hi == 0x1E:
		return "CMP.L", 2, true
	case hi == 0x1F:
		return "SUBX", 2, true
	case hi >= 0x20 && hi <= 0x27:
		return "MOV.B @ER,Rd", 2, true
	case hi >= 0x28 && hi <= 0x2F:
		return "MOV.B Rs,@ER", 2, true
	case hi >= 0x30 && hi <= 0x37:
		return "MOV.B @ER+,Rd", 2, true
	case hi >= 0x38 && hi <= 0x3F:
		return "MOV.B Rs,@-ER", 2, true
	case hi >= 0x60 && hi <= 0x63, hi == 0x67:
		return "bit-op Rn,Rd", 2, true
	case hi == 0x64:
		return "OR.B", 2, true
	case hi == 0x65:
		return "XOR.B", 2, true
	case hi == 0x66:
		return "AND.B", 2, true
	case hi >= 0x70 && hi <= 0x77:
		return "bit-op #n,Rd", 2, true
	case hi == 0x79:
		return "ALU.W #imm16", 4, true
	case hi == 0x7A:
		return "ALU.L #imm32", 6, true
	case hi >= 0x80 && hi <= 0x87:
		return "ADD.B #imm,Rd", 2, true
	case hi >= 0x88 && hi <= 0x8F:
		return "ADDX #imm,Rd", 2, true
	case hi >= 0x90 && hi <= 0x97:
		return "CMP.B #imm,Rd", 2, true
	case hi >= 0x98 && hi <= 0x9F:
		return "SUBX #imm,Rd", 2, true
	case hi >= 0xA0 && hi <= 0xA7:
		return "OR.B #imm,Rd", 2, true
	case hi >= 0xA8 && hi <= 0xAF:
		return "XOR.B #imm,Rd", 2, true
	case hi >= 0xB0 && hi <= 0xB7:
		return "AND.B #imm,Rd", 2, true
	case hi == 0xD8:
		return "MOV.B @aa:16,Rd", 4, true
	case hi == 0xD9:
		return "MOV.B Rs,@aa:16", 4, true
	case hi == 0xDA:
		return "MOV.W @aa:16,Rd", 4, true
	case hi == 0xDB:
		return "MOV.W Rs,@aa:16", 4, true
	case hi == 0xDC:
		return "MOV.L @aa:16,ERd", 4, true
	case hi == 0xDD:
		return "MOV.L ERs,@aa:16", 4, true
	case hi == 0xDE:
		return "MOV.B @aa:24,Rd", 6, true
	case hi == 0xDF:
		return "MOV.B Rs,@aa:24", 6, true
	case hi >= 0xE0 && hi <= 0xE7:
		return "MOV.B @aa:8,Rd", 2, true
	case hi >= 0xE8 && hi <= 0xEF:
		return "MOV.B Rs,@aa:8", 2, true
	case hi >= 0xF8:
		return "MOV.B #imm,Rd", 2, true
	}
	return "", 0, false
}

package cpu

// Data-movement instruction handlers. MOV is by far the H8/300H's most
// common opcode family; everything here just routes through operand.read
// and operand.write since addressing-mode resolution already happened in
// decode.go, leaving these handlers as thin CCR-updating copies.

// mov copies src to dst at width sz, setting N/Z and clearing V -- the
// "Logical" CCR row in the manual applies to MOV too, since a plain data
// move still updates the condition flags from the value moved.
func mov(dst operand, src operand, sz Size) func(*Cpu) {
	return func(c *Cpu) {
		v := src.read(c, sz)
		dst.write(c, sz, v)
		c.CCR.updateLogical(v, sz)
	}
}

// eepmov copies R4L (or R4 for the .W form) bytes from @ER5 to @ER6,
// advancing both pointers and decrementing the counter until it reaches
// zero. The real hardware performs this as a single long-running
// instruction that can be interrupted and resumed; since this core has no
// interrupt controller this simplifies to one atomic loop per Step call.
func eepmov(wordForm bool) func(*Cpu) {
	return func(c *Cpu) {
		count := func() uint32 {
			if wordForm {
				return uint32(c.R(4))
			}
			return uint32(c.RL(4))
		}
		setCount := func(v uint32) {
			if wordForm {
				c.SetR(4, uint16(v))
			} else {
				c.SetRL(4, byte(v))
			}
		}

		for n := count(); n > 0; n = count() {
			src := uint16(c.ER(5))
			dst := uint16(c.ER(6))
			c.Bus.Write8(dst, c.Bus.Read8(src))
			c.SetER(5, c.ER(5)+1)
			c.SetER(6, c.ER(6)+1)
			setCount(n - 1)
		}
	}
}

// movfpe and movtpe address the H8/300H's separate PROM-programming data
// bus, a facility this core has no peripheral for (the Pokewalker never
// self-programs its flash at runtime); both are implemented as a plain
// MOV.B to keep the opcode decodable without crashing, which is the same
// "no defined behavior, don't crash" posture applied to the flash control
// registers in the rom package.
func movfpe(dst operand, src operand) func(*Cpu) {
	return mov(dst, src, Byte)
}

func movtpe(dst operand, src operand) func(*Cpu) {
	return mov(dst, src, Byte)
}

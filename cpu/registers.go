package cpu

// The H8/300H exposes eight 32-bit general registers, ER0..ER7, each of
// which can also be addressed as two 16-bit halves (En/Rn) or, for the lower
// half, as two 8-bit halves (RnH/RnL). Writes through a narrower view leave
// the bits outside that view untouched; only the addressed slice changes.
//
//	ERn: [ 31 .......................... 0 ]
//	En:  [ 31 .............. 16 ]
//	Rn:            [ 15 ........ 0 ]
//	RnH:           [ 15 .... 8 ]
//	RnL:                  [ 7 .. 0 ]
//
// ER7 doubles as the stack pointer (SP); nothing in this package treats it
// specially, callers that need SP semantics (push/pop, JSR/RTS) do so via
// ER(7) like any other register.
type Registers struct {
	er [8]uint32
}

// ER returns the full 32-bit value of ERn.
func (r *Registers) ER(n int) uint32 { return r.er[n] }

// SetER replaces the full 32-bit value of ERn.
func (r *Registers) SetER(n int, v uint32) { r.er[n] = v }

// E returns the upper 16 bits of ERn (the En view).
func (r *Registers) E(n int) uint16 { return uint16(r.er[n] >> 16) }

// SetE replaces the upper 16 bits of ERn, preserving Rn.
func (r *Registers) SetE(n int, v uint16) {
	r.er[n] = (uint32(v) << 16) | (r.er[n] & 0x0000FFFF)
}

// R returns the lower 16 bits of ERn (the Rn view).
func (r *Registers) R(n int) uint16 { return uint16(r.er[n]) }

// SetR replaces the lower 16 bits of ERn, preserving En.
func (r *Registers) SetR(n int, v uint16) {
	r.er[n] = (r.er[n] & 0xFFFF0000) | uint32(v)
}

// RH returns bits 15:8 of ERn (the RnH view).
func (r *Registers) RH(n int) uint8 { return uint8(r.er[n] >> 8) }

// SetRH replaces bits 15:8 of ERn, preserving everything else.
func (r *Registers) SetRH(n int, v uint8) {
	r.er[n] = (r.er[n] &^ 0x0000FF00) | (uint32(v) << 8)
}

// RL returns bits 7:0 of ERn (the RnL view).
func (r *Registers) RL(n int) uint8 { return uint8(r.er[n]) }

// SetRL replaces bits 7:0 of ERn, preserving everything else.
func (r *Registers) SetRL(n int, v uint8) {
	r.er[n] = (r.er[n] &^ 0x000000FF) | uint32(v)
}

// sp is ER7 under the name the push16/pop16 stack helpers in cpu.go read
// most naturally.
func (r *Registers) sp() uint32     { return r.er[7] }
func (r *Registers) setSP(v uint32) { r.er[7] = v }

// AllER returns a snapshot of all eight ERn values, used by the debugger and
// by String for dumping full register state without exposing the backing
// array itself.
func (r *Registers) AllER() [8]uint32 { return r.er }

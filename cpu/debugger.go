package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea state for the interactive step debugger: the CPU
// under inspection, the address the memory pane is scrolled to, and the
// instruction word the last step executed, printed on the disassembly line
// of the view.
type model struct {
	cpu *Cpu

	offset   uint16
	prevPC   uint32
	lastWord uint16
	quit     bool
}

// Init returns no initial command; the CPU is expected to already be
// loaded and reset by the caller before Debugger is invoked.
func (m model) Init() tea.Cmd { return nil }

// Update advances the CPU by one Step on space or "j", scrolls the memory
// pane with the arrow keys, and quits on "q".
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.lastWord = m.cpu.Bus.Read16(m.cpu.pc16())
			m.cpu.Step()
		case "up":
			m.offset -= 16
		case "down":
			m.offset += 16
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of the bus, highlighting the byte at
// the current PC.
func (m model) renderPage(start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.cpu.Bus.Read8(addr)
		if addr == m.cpu.pc16() {
			fmt.Fprintf(&b, "[%02x] ", v)
		} else {
			fmt.Fprintf(&b, " %02x  ", v)
		}
	}
	return b.String()
}

// status renders the register and CCR pane.
func (m model) status() string {
	er := m.cpu.AllER()
	return fmt.Sprintf(`
PC: %06x (prev %06x)
ER0: %08x  ER1: %08x  ER2: %08x  ER3: %08x
ER4: %08x  ER5: %08x  ER6: %08x  ER7(SP): %08x
CCR: %s
`,
		m.cpu.PC, m.prevPC,
		er[0], er[1], er[2], er[3],
		er[4], er[5], er[6], er[7],
		m.cpu.CCR,
	)
}

// pageTable renders a handful of fixed memory pages plus the page the
// cursor is currently scrolled to.
func (m model) pageTable() string {
	rows := []string{"addr |  0    1    2    3    4    5    6    7    8    9    a    b    c    d    e    f"}
	for _, base := range []uint16{0x0000, 0xF780, m.offset} {
		rows = append(rows, m.renderPage(base))
	}
	return strings.Join(rows, "\n")
}

// View renders the whole debugger screen: the memory pages, the register
// pane, and a structural dump of the CPU's register file for deep
// inspection.
func (m model) View() string {
	mnemonic, _ := m.cpu.Disassemble(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		fmt.Sprintf("next: %s (last: %04x)", mnemonic, m.lastWord),
		spew.Sdump(m.cpu.Registers),
	)
}

// Debugger starts an interactive TUI over an already-initialized CPU.
// Unlike the teacher's 6502 debugger, this one does not load a program
// itself -- loading ROM/RAM images is core.Core's job, so Debugger only
// ever receives a CPU that is already wired to a live Bus.
func (c *Cpu) Debugger() {
	if _, err := tea.NewProgram(model{cpu: c}).Run(); err != nil {
		panic(err)
	}
}

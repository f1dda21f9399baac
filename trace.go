package zx

import (
	"fmt"
	"io"
)

// traceLog is the optional text trace described in §9: PC, registers,
// the eight bytes at PC, and a disassembly when the beam register (HL,
// not IX/IY) is in play. It only ever runs behind Machine.traceEnabled,
// so a nil writer is harmless — SetTraceWriter must be called first.
type traceLog struct {
	w io.Writer
}

// SetTraceWriter installs the destination for trace output and enables
// tracing. Passing a nil writer disables tracing again.
func (m *Machine) SetTraceWriter(w io.Writer) {
	if w == nil {
		m.traceEnabled = false
		m.trace = nil
		return
	}
	m.trace = &traceLog{w: w}
	m.traceEnabled = true
}

func (t *traceLog) record(m *Machine) {
	r := &m.cpu.Reg
	pc := r.PC

	var bytes [8]byte
	for i := range bytes {
		bytes[i] = m.mem.Read(pc + uint16(i))
	}

	fmt.Fprintf(t.w, "%04X: %02X %02X %02X %02X %02X %02X %02X %02X  AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X SP=%04X",
		pc, bytes[0], bytes[1], bytes[2], bytes[3], bytes[4], bytes[5], bytes[6], bytes[7],
		r.AF(), r.BC(), r.DE(), r.HL(), r.IX, r.IY, r.SP)

	if r.Iregp == IregHL {
		fmt.Fprintf(t.w, "  %s", disassemble(bytes[:]))
	}
	fmt.Fprintln(t.w)
}

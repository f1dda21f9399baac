package zx

import "encoding/binary"

// StateImageSize is the byte length of the packed state image (§6): the
// fourteen 16-bit register fields BC, DE, HL, AF, IX, IY, BC', DE', HL',
// AF', PC, SP, IR, WZ, four 8-bit mode fields, two 32-bit counters, and
// four 8-bit flag fields.
const StateImageSize = 14*2 + 4 + 2*4 + 4

// iregpKind maps an IregPtr to the wire encoding (0=HL, 1=IX, 2=IY).
func iregpKind(p IregPtr) byte { return byte(p) }

// WriteStateImage packs the current CPU/machine state into buf per the
// little-endian layout in §6. buf must be at least StateImageSize bytes.
func (m *Machine) WriteStateImage(buf []byte) error {
	if len(buf) < StateImageSize {
		return ErrInvalidState
	}
	r := &m.cpu.Reg
	le := binary.LittleEndian
	off := 0
	put16 := func(v uint16) { le.PutUint16(buf[off:], v); off += 2 }

	put16(r.BC())
	put16(r.DE())
	put16(r.HL())
	put16(r.AF())
	put16(r.IX)
	put16(r.IY)
	put16(r.BC2())
	put16(r.DE2())
	put16(r.HL2())
	put16(r.AF2())
	put16(r.PC)
	put16(r.SP)
	put16(uint16(r.I)<<8 | uint16(r.R))
	put16(r.WZ)

	buf[off] = boolByte(r.IFF1)
	off++
	buf[off] = boolByte(r.IFF2)
	off++
	buf[off] = r.IM
	off++
	buf[off] = iregpKind(r.Iregp)
	off++

	le.PutUint32(buf[off:], m.ticksSinceInt)
	off += 4
	le.PutUint32(buf[off:], uint32(m.fetchesToStop))
	off += 4

	buf[off] = boolByte(m.intSuppressed)
	off++
	buf[off] = boolByte(m.intAfterEIAllowed)
	off++
	buf[off] = m.borderColour
	off++
	buf[off] = boolByte(m.traceEnabled)
	off++

	return nil
}

// ReadStateImage installs buf into the CPU/machine state, the reverse of
// WriteStateImage. Returns ErrInvalidState if buf is short or any field
// is out of range, leaving the machine's existing state untouched.
func (m *Machine) ReadStateImage(buf []byte) error {
	if len(buf) < StateImageSize {
		return ErrInvalidState
	}
	le := binary.LittleEndian
	off := 0
	get16 := func() uint16 { v := le.Uint16(buf[off:]); off += 2; return v }

	bc := get16()
	de := get16()
	hl := get16()
	af := get16()
	ix := get16()
	iy := get16()
	bc2 := get16()
	de2 := get16()
	hl2 := get16()
	af2 := get16()
	pc := get16()
	sp := get16()
	ir := get16()
	wz := get16()

	iff1 := buf[off] != 0
	off++
	iff2 := buf[off] != 0
	off++
	im := buf[off]
	off++
	iregp := buf[off]
	off++

	if im > 2 || iregp > 2 {
		return ErrInvalidState
	}

	ticksSinceInt := le.Uint32(buf[off:])
	off += 4
	fetchesToStop := int32(le.Uint32(buf[off:]))
	off += 4

	intSuppressed := buf[off] != 0
	off++
	intAfterEIAllowed := buf[off] != 0
	off++
	borderColour := buf[off]
	off++
	traceEnabled := buf[off] != 0
	off++

	if borderColour > 7 {
		return ErrInvalidState
	}

	r := &m.cpu.Reg
	r.SetBC(bc)
	r.SetDE(de)
	r.SetHL(hl)
	r.SetAF(af)
	r.IX = ix
	r.IY = iy
	r.SetBC2(bc2)
	r.SetDE2(de2)
	r.SetHL2(hl2)
	r.SetAF2(af2)
	r.PC = pc
	r.SP = sp
	r.I = byte(ir >> 8)
	r.R = byte(ir)
	r.WZ = wz
	r.IFF1 = iff1
	r.IFF2 = iff2
	r.IM = im
	r.Iregp = IregPtr(iregp)

	m.ticksSinceInt = ticksSinceInt
	m.fetchesToStop = fetchesToStop
	m.intSuppressed = intSuppressed
	m.intAfterEIAllowed = intAfterEIAllowed
	m.borderColour = borderColour
	m.traceEnabled = traceEnabled

	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

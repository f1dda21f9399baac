package zx

// hlAddr returns the effective address of "(HL)" for the instruction
// currently executing: HL itself, or IX/IY plus a signed displacement
// byte fetched from the instruction stream when a DD/FD prefix selected
// iregp. Fetching the displacement and the five settling T-states that
// follow it on real hardware both happen here, so every base-table
// handler that calls hlAddr automatically gets correct IX/IY+d timing
// for free.
func (c *CPU) hlAddr() uint16 {
	r := &c.Reg
	if r.Iregp == IregHL {
		return r.HL()
	}
	d := int8(c.fetchByte())
	c.host.ExecExtra(5)
	return r.Iregister() + uint16(int16(d))
}

// readReg8/writeReg8 implement the standard 3-bit register encoding:
// B,C,D,E,H,L,(HL),A. Code 6 always goes through hlAddr, so it follows
// iregp automatically.
func (c *CPU) readReg8(code byte) byte {
	r := &c.Reg
	switch code {
	case 0:
		return r.B
	case 1:
		return r.C
	case 2:
		return r.D
	case 3:
		return r.E
	case 4:
		return r.H
	case 5:
		return r.L
	case 6:
		return c.host.Read(c.hlAddr())
	default:
		return r.A
	}
}

func (c *CPU) writeReg8(code byte, value byte) {
	r := &c.Reg
	switch code {
	case 0:
		r.B = value
	case 1:
		r.C = value
	case 2:
		r.D = value
	case 3:
		r.E = value
	case 4:
		r.H = value
	case 5:
		r.L = value
	case 6:
		c.host.Write(c.hlAddr(), value)
	default:
		r.A = value
	}
}

func (c *CPU) opNOP() {}

func (c *CPU) opHALT() {
	c.Halted = true
}

func (c *CPU) opLDRegReg(dest, src byte) {
	c.writeReg8(dest, c.readReg8(src))
}

func (c *CPU) opLDRegImm(dest byte) {
	if dest != 6 {
		c.writeReg8(dest, c.fetchByte())
		return
	}
	r := &c.Reg
	if r.Iregp != IregHL {
		// LD (IX/IY+d),n fetches d then n; the settle cycles shrink to
		// two because they overlap the immediate fetch.
		d := int8(c.fetchByte())
		value := c.fetchByte()
		addr := r.Iregister() + uint16(int16(d))
		c.host.SetAddrBus(addr)
		c.host.ExecExtra(2)
		c.host.Write(addr, value)
		return
	}
	addr := r.HL()
	value := c.fetchByte()
	c.host.Write(addr, value)
}

func (c *CPU) opALUReg(op aluOp, src byte) {
	value := c.readReg8(src)
	c.performALU(op, value)
}

func (c *CPU) opALUImm(op aluOp) {
	value := c.fetchByte()
	c.performALU(op, value)
}

func (c *CPU) opDAA() {
	r := &c.Reg
	a := r.A
	adjust := byte(0)
	carry := r.Flag(FlagC)
	halfCarry := r.Flag(FlagH)
	subtract := r.Flag(FlagN)

	if halfCarry || a&0x0F > 9 {
		adjust |= 0x06
	}
	if carry || a > 0x99 {
		adjust |= 0x60
		carry = true
	}

	var res byte
	if subtract {
		res = a - adjust
	} else {
		res = a + adjust
	}

	r.F &^= FlagH
	if subtract {
		if halfCarry && a&0x0F < 6 {
			r.F |= FlagH
		}
	} else {
		if a&0x0F+adjust&0x0F > 0x0F {
			r.F |= FlagH
		}
	}

	r.A = res
	r.F &^= FlagS | FlagZ | FlagPV | FlagX | FlagY | FlagC
	if res == 0 {
		r.F |= FlagZ
	}
	if res&0x80 != 0 {
		r.F |= FlagS
	}
	if parity8(res) {
		r.F |= FlagPV
	}
	if carry {
		r.F |= FlagC
	}
	r.F |= res & (FlagX | FlagY)
}

func (c *CPU) opCPL() {
	r := &c.Reg
	r.A = ^r.A
	r.F |= FlagH | FlagN
	r.F = (r.F &^ (FlagX | FlagY)) | (r.A & (FlagX | FlagY))
}

func (c *CPU) opSCF() {
	r := &c.Reg
	r.F &^= FlagH | FlagN
	r.F |= FlagC
	r.F = (r.F &^ (FlagX | FlagY)) | (r.A & (FlagX | FlagY))
}

func (c *CPU) opCCF() {
	r := &c.Reg
	wasCarry := r.Flag(FlagC)
	r.F &^= FlagN
	if wasCarry {
		r.F |= FlagH
	} else {
		r.F &^= FlagH
	}
	r.SetFlag(FlagC, !wasCarry)
	r.F = (r.F &^ (FlagX | FlagY)) | (r.A & (FlagX | FlagY))
}

func (c *CPU) opLDBCNN() { c.Reg.SetBC(c.fetchWord()) }
func (c *CPU) opLDDENN() { c.Reg.SetDE(c.fetchWord()) }
func (c *CPU) opLDHLImm() { c.Reg.SetIregister(c.fetchWord()) }
func (c *CPU) opLDSPNN() { c.Reg.SP = c.fetchWord() }

func (c *CPU) opADDIreg(pair byte) {
	r := &c.Reg
	var v uint16
	switch pair {
	case 0:
		v = r.BC()
	case 1:
		v = r.DE()
	case 2:
		v = r.Iregister()
	default:
		v = r.SP
	}
	c.addIreg16(v)
	c.host.SetAddrBus(r.Iregister())
	c.host.ExecExtra(4)
	c.host.ExecExtra(3)
}

func (c *CPU) opINCBC() { c.Reg.SetBC(c.Reg.BC() + 1); c.host.SetAddrBus(c.Reg.BC()); c.host.ExecExtra(2) }
func (c *CPU) opINCDE() { c.Reg.SetDE(c.Reg.DE() + 1); c.host.SetAddrBus(c.Reg.DE()); c.host.ExecExtra(2) }
func (c *CPU) opINCIreg() {
	c.Reg.SetIregister(c.Reg.Iregister() + 1)
	c.host.SetAddrBus(c.Reg.Iregister())
	c.host.ExecExtra(2)
}
func (c *CPU) opINCSP() { c.Reg.SP++; c.host.SetAddrBus(c.Reg.SP); c.host.ExecExtra(2) }
func (c *CPU) opDECBC() { c.Reg.SetBC(c.Reg.BC() - 1); c.host.SetAddrBus(c.Reg.BC()); c.host.ExecExtra(2) }
func (c *CPU) opDECDE() { c.Reg.SetDE(c.Reg.DE() - 1); c.host.SetAddrBus(c.Reg.DE()); c.host.ExecExtra(2) }
func (c *CPU) opDECIreg() {
	c.Reg.SetIregister(c.Reg.Iregister() - 1)
	c.host.SetAddrBus(c.Reg.Iregister())
	c.host.ExecExtra(2)
}
func (c *CPU) opDECSP() { c.Reg.SP--; c.host.SetAddrBus(c.Reg.SP); c.host.ExecExtra(2) }

func (c *CPU) opPUSHBC() { c.pushWord(c.Reg.BC()) }
func (c *CPU) opPUSHDE() { c.pushWord(c.Reg.DE()) }
func (c *CPU) opPUSHIreg() { c.pushWord(c.Reg.Iregister()) }
func (c *CPU) opPUSHAF() { c.pushWord(c.Reg.AF()) }
func (c *CPU) opPOPBC() { c.Reg.SetBC(c.popWord()) }
func (c *CPU) opPOPDE() { c.Reg.SetDE(c.popWord()) }
func (c *CPU) opPOPIreg() { c.Reg.SetIregister(c.popWord()) }
func (c *CPU) opPOPAF() { c.Reg.SetAF(c.popWord()) }

// jumpTo sets PC to a fresh target (as opposed to the sequential advance
// fetching performs) and reports it to the host, which checks it against
// breakpoint marks.
func (c *CPU) jumpTo(addr uint16) {
	c.Reg.PC = addr
	c.host.SetPC(addr)
}

func (c *CPU) opJPNN() { c.jumpTo(c.fetchWord()) }

func (c *CPU) opJR() {
	d := int8(c.fetchByte())
	c.host.SetAddrBus(c.Reg.PC - 1)
	c.host.ExecExtra(5)
	c.jumpTo(uint16(int32(c.Reg.PC) + int32(d)))
}

func (c *CPU) opDJNZ() {
	c.host.SetAddrBus(c.Reg.PC - 1)
	c.host.ExecExtra(1)
	c.Reg.B--
	d := int8(c.fetchByte())
	if c.Reg.B != 0 {
		c.host.SetAddrBus(c.Reg.PC - 1)
		c.host.ExecExtra(5)
		c.jumpTo(uint16(int32(c.Reg.PC) + int32(d)))
	}
}

func (c *CPU) opCALLNN() {
	lo := c.fetchByte()
	hi := c.fetchByte()
	target := uint16(hi)<<8 | uint16(lo)
	c.host.SetAddrBus(c.Reg.PC - 1)
	c.host.ExecExtra(1)
	c.pushWord(c.Reg.PC)
	c.jumpTo(target)
}

func (c *CPU) opRET() { c.jumpTo(c.popWord()) }

func (c *CPU) opEXSPHL() {
	r := &c.Reg
	lo := c.host.Read(r.SP)
	hi := c.host.Read(r.SP + 1)
	v := r.Iregister()
	c.host.SetAddrBus(r.SP + 1)
	c.host.ExecExtra(1)
	c.host.Write(r.SP+1, byte(v>>8))
	c.host.Write(r.SP, byte(v))
	c.host.SetAddrBus(r.SP)
	c.host.ExecExtra(1)
	c.host.ExecExtra(1)
	r.SetIregister(uint16(hi)<<8 | uint16(lo))
}

func (c *CPU) opEXAF() { c.Reg.ExAF() }
func (c *CPU) opEXDEHL() {
	c.Reg.D, c.Reg.H = c.Reg.H, c.Reg.D
	c.Reg.E, c.Reg.L = c.Reg.L, c.Reg.E
}
func (c *CPU) opEXX() { c.Reg.Exx() }
func (c *CPU) opJPHL() { c.jumpTo(c.Reg.Iregister()) }

func (c *CPU) opLDNNHL() {
	addr := c.fetchWord()
	v := c.Reg.Iregister()
	c.host.Write(addr, byte(v))
	c.host.Write(addr+1, byte(v>>8))
}

func (c *CPU) opLDHLNN() {
	addr := c.fetchWord()
	lo := c.host.Read(addr)
	hi := c.host.Read(addr + 1)
	c.Reg.SetIregister(uint16(hi)<<8 | uint16(lo))
}

func (c *CPU) opLDNNA() {
	addr := c.fetchWord()
	c.Reg.WZ = (addr + 1) & 0x00FF | uint16(c.Reg.A)<<8
	c.host.Write(addr, c.Reg.A)
}

func (c *CPU) opLDANN() {
	addr := c.fetchWord()
	c.Reg.A = c.host.Read(addr)
}

func (c *CPU) opLDBCA() { c.host.Write(c.Reg.BC(), c.Reg.A) }
func (c *CPU) opLDABC() { c.Reg.A = c.host.Read(c.Reg.BC()) }
func (c *CPU) opLDDEA() { c.host.Write(c.Reg.DE(), c.Reg.A) }
func (c *CPU) opLDADE() { c.Reg.A = c.host.Read(c.Reg.DE()) }

func (c *CPU) opLDSPHL() {
	c.Reg.SP = c.Reg.Iregister()
	c.host.SetAddrBus(c.Reg.Iregister())
	c.host.ExecExtra(1)
	c.host.ExecExtra(1)
}

func (c *CPU) opOUTNA() {
	port := uint16(c.fetchByte()) | uint16(c.Reg.A)<<8
	c.host.Output(port, c.Reg.A)
}

func (c *CPU) opINAN() {
	port := uint16(c.fetchByte()) | uint16(c.Reg.A)<<8
	c.Reg.A = c.host.Input(port)
}

func (c *CPU) opRLCA() {
	r := &c.Reg
	res, carry := rotate8Left(r.A, r.A&0x80 != 0)
	r.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU) opRRCA() {
	r := &c.Reg
	res, carry := rotate8Right(r.A, r.A&0x01 != 0)
	r.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU) opRLA() {
	r := &c.Reg
	res, carry := rotate8Left(r.A, r.Flag(FlagC))
	r.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU) opRRA() {
	r := &c.Reg
	res, carry := rotate8Right(r.A, r.Flag(FlagC))
	r.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU) opRST(vector uint16) {
	c.host.SetAddrBus(c.Reg.PC)
	c.host.ExecExtra(1)
	c.pushWord(c.Reg.PC)
	c.jumpTo(vector)
}

func (c *CPU) opCBPrefix() {
	if c.Reg.Iregp == IregHL {
		opcode := c.host.Fetch()
		c.Reg.PC++
		c.cbOps[opcode](c)
		return
	}
	c.opIndexedCB()
}

func (c *CPU) opDDPrefix() { c.Reg.Iregp = IregIX; c.execOneOpcode() }
func (c *CPU) opFDPrefix() { c.Reg.Iregp = IregIY; c.execOneOpcode() }
func (c *CPU) opEDPrefix() {
	opcode := c.host.M1Fetch()
	c.Reg.PC++
	c.Reg.R = (c.Reg.R & 0x80) | ((c.Reg.R + 1) & 0x7F)
	c.edOps[opcode](c)
}

func (c *CPU) execOneOpcode() {
	opcode := c.host.M1Fetch()
	c.Reg.PC++
	c.Reg.R = (c.Reg.R & 0x80) | ((c.Reg.R + 1) & 0x7F)
	c.host.SetPC(c.Reg.PC)
	c.baseOps[opcode](c)
}

func (c *CPU) opDI() { c.Reg.IFF1 = false; c.Reg.IFF2 = false }

func (c *CPU) opINCReg8(code byte) {
	if code == 6 {
		addr := c.hlAddr()
		v := c.host.Read(addr)
		c.host.SetAddrBus(addr)
		c.host.ExecExtra(1)
		c.host.Write(addr, c.inc8(v))
		return
	}
	c.writeReg8(code, c.inc8(c.readReg8(code)))
}

func (c *CPU) opDECReg8(code byte) {
	if code == 6 {
		addr := c.hlAddr()
		v := c.host.Read(addr)
		c.host.SetAddrBus(addr)
		c.host.ExecExtra(1)
		c.host.Write(addr, c.dec8(v))
		return
	}
	c.writeReg8(code, c.dec8(c.readReg8(code)))
}

func (c *CPU) jpCond(cond bool) {
	target := c.fetchWord()
	if cond {
		c.jumpTo(target)
	}
}

func (c *CPU) jrCond(cond bool) {
	d := int8(c.fetchByte())
	if cond {
		c.host.SetAddrBus(c.Reg.PC - 1)
		c.host.ExecExtra(5)
		c.jumpTo(uint16(int32(c.Reg.PC) + int32(d)))
	}
}

func (c *CPU) callCond(cond bool) {
	lo := c.fetchByte()
	hi := c.fetchByte()
	target := uint16(hi)<<8 | uint16(lo)
	if cond {
		c.host.SetAddrBus(c.Reg.PC - 1)
		c.host.ExecExtra(1)
		c.pushWord(c.Reg.PC)
		c.jumpTo(target)
	}
}

func (c *CPU) retCond(cond bool) {
	c.host.SetAddrBus(c.Reg.IR())
	c.host.ExecExtra(1)
	if cond {
		c.jumpTo(c.popWord())
	}
}

// IR returns the combined I:R register pair, used only as the address
// the bus happens to hold during internal-only cycles like retCond's.
func (r *Registers) IR() uint16 { return uint16(r.I)<<8 | uint16(r.R) }

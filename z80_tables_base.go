package zx

// initBaseOps builds the unprefixed opcode table. Table shape mirrors
// the teacher's initBaseOps: outer switch on the x/y/z decomposition of
// the opcode byte (bits 7-6 / 5-3 / 2-0), assigning a closure per slot
// rather than a 256-line flat literal.
func (c *CPU) initBaseOps() {
	for opcode := 0; opcode < 256; opcode++ {
		op := byte(opcode)
		x := op >> 6
		y := (op >> 3) & 0x07
		z := op & 0x07
		c.baseOps[op] = c.buildBaseOp(x, y, z, op)
	}
}

func (c *CPU) buildBaseOp(x, y, z, op byte) func(*CPU) {
	switch x {
	case 0:
		return c.buildBaseOpX0(y, z, op)
	case 1:
		if y == 6 && z == 6 {
			return (*CPU).opHALT
		}
		return func(c *CPU) { c.opLDRegReg(y, z) }
	case 2:
		return func(c *CPU) { c.opALUReg(aluOp(y), z) }
	default:
		return c.buildBaseOpX3(y, z, op)
	}
}

func (c *CPU) buildBaseOpX0(y, z, op byte) func(*CPU) {
	switch z {
	case 0:
		switch y {
		case 0:
			return (*CPU).opNOP
		case 1:
			return (*CPU).opEXAF
		case 2:
			return (*CPU).opDJNZ
		case 3:
			return (*CPU).opJR
		default:
			cond := y - 4
			return func(c *CPU) { c.jrCond(c.testCond(cond)) }
		}
	case 1:
		if y%2 == 0 {
			pair := y / 2
			return baseLD16Imm(pair)
		}
		pair := y / 2
		return func(c *CPU) { c.opADDIreg(pair) }
	case 2:
		return baseIndirectLoad(y)
	case 3:
		switch y {
		case 0:
			return (*CPU).opINCBC
		case 1:
			return (*CPU).opDECBC
		case 2:
			return (*CPU).opINCDE
		case 3:
			return (*CPU).opDECDE
		case 4:
			return (*CPU).opINCIreg
		case 5:
			return (*CPU).opDECIreg
		case 6:
			return (*CPU).opINCSP
		default:
			return (*CPU).opDECSP
		}
	case 4:
		return func(c *CPU) { c.opINCReg8(y) }
	case 5:
		return func(c *CPU) { c.opDECReg8(y) }
	case 6:
		return func(c *CPU) { c.opLDRegImm(y) }
	default:
		switch y {
		case 0:
			return (*CPU).opRLCA
		case 1:
			return (*CPU).opRRCA
		case 2:
			return (*CPU).opRLA
		case 3:
			return (*CPU).opRRA
		case 4:
			return (*CPU).opDAA
		case 5:
			return (*CPU).opCPL
		case 6:
			return (*CPU).opSCF
		default:
			return (*CPU).opCCF
		}
	}
}

func baseLD16Imm(pair byte) func(*CPU) {
	switch pair {
	case 0:
		return (*CPU).opLDBCNN
	case 1:
		return (*CPU).opLDDENN
	case 2:
		return (*CPU).opLDHLImm
	default:
		return (*CPU).opLDSPNN
	}
}

func baseIndirectLoad(y byte) func(*CPU) {
	switch y {
	case 0:
		return (*CPU).opLDBCA
	case 1:
		return (*CPU).opLDABC
	case 2:
		return (*CPU).opLDDEA
	case 3:
		return (*CPU).opLDADE
	case 4:
		return (*CPU).opLDNNHL
	case 5:
		return (*CPU).opLDHLNN
	case 6:
		return (*CPU).opLDNNA
	default:
		return (*CPU).opLDANN
	}
}

func (c *CPU) buildBaseOpX3(y, z, op byte) func(*CPU) {
	switch z {
	case 0:
		return func(c *CPU) { c.retCond(c.testCond(y)) }
	case 1:
		if y%2 == 0 {
			pair := y / 2
			return popOp(pair)
		}
		switch y / 2 {
		case 0:
			return (*CPU).opRET
		case 1:
			return (*CPU).opEXX
		case 2:
			return (*CPU).opJPHL
		default:
			return (*CPU).opLDSPHL
		}
	case 2:
		return func(c *CPU) { c.jpCond(c.testCond(y)) }
	case 3:
		switch y {
		case 0:
			return (*CPU).opJPNN
		case 1:
			return (*CPU).opCBPrefix
		case 2:
			return (*CPU).opOUTNA
		case 3:
			return (*CPU).opINAN
		case 4:
			return (*CPU).opEXSPHL
		case 5:
			return (*CPU).opEXDEHL
		case 6:
			return (*CPU).opDI
		default:
			return (*CPU).opEI
		}
	case 4:
		return func(c *CPU) { c.callCond(c.testCond(y)) }
	case 5:
		if y%2 == 0 {
			pair := y / 2
			return pushOp(pair)
		}
		switch y / 2 {
		case 0:
			return (*CPU).opCALLNN
		case 1:
			return (*CPU).opDDPrefix
		case 2:
			return (*CPU).opEDPrefix
		default:
			return (*CPU).opFDPrefix
		}
	case 6:
		return func(c *CPU) { c.opALUImm(aluOp(y)) }
	default:
		vector := uint16(y) * 8
		return func(c *CPU) { c.opRST(vector) }
	}
}

func popOp(pair byte) func(*CPU) {
	switch pair {
	case 0:
		return (*CPU).opPOPBC
	case 1:
		return (*CPU).opPOPDE
	case 2:
		return (*CPU).opPOPIreg
	default:
		return (*CPU).opPOPAF
	}
}

func pushOp(pair byte) func(*CPU) {
	switch pair {
	case 0:
		return (*CPU).opPUSHBC
	case 1:
		return (*CPU).opPUSHDE
	case 2:
		return (*CPU).opPUSHIreg
	default:
		return (*CPU).opPUSHAF
	}
}

// testCond evaluates the 3-bit condition-code field used by JR/JP/CALL/
// RET: NZ,Z,NC,C,PO,PE,P,M.
func (c *CPU) testCond(cc byte) bool {
	r := &c.Reg
	switch cc {
	case 0:
		return !r.Flag(FlagZ)
	case 1:
		return r.Flag(FlagZ)
	case 2:
		return !r.Flag(FlagC)
	case 3:
		return r.Flag(FlagC)
	case 4:
		return !r.Flag(FlagPV)
	case 5:
		return r.Flag(FlagPV)
	case 6:
		return !r.Flag(FlagS)
	default:
		return r.Flag(FlagS)
	}
}

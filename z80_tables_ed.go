package zx

// initEDOps builds the ED-prefixed table. Every slot starts at the
// undefined-ED no-op; defined opcodes are assigned over that default,
// matching the sparse layout of the real ED page.
func (c *CPU) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*CPU).opEDNop
	}

	for y := byte(0); y < 8; y++ {
		pair := y / 2
		if y%2 == 0 {
			c.edOps[0x42+0x10*pair] = func(c *CPU) { c.opSBCHL(pair) }
			c.edOps[0x43+0x10*pair] = func(c *CPU) { c.opLDNNRR(pair) }
		} else {
			c.edOps[0x4A+0x10*pair] = func(c *CPU) { c.opADCHL(pair) }
			c.edOps[0x4B+0x10*pair] = func(c *CPU) { c.opLDRRNN(pair) }
		}
	}

	c.edOps[0x44] = (*CPU).opNEG
	c.edOps[0x4D] = (*CPU).opRETI
	c.edOps[0x45] = (*CPU).opRETN
	for _, row := range []byte{0x46, 0x4E, 0x66, 0x6E} {
		c.edOps[row] = func(c *CPU) { c.opIM(0) }
	}
	for _, row := range []byte{0x56, 0x76} {
		c.edOps[row] = func(c *CPU) { c.opIM(1) }
	}
	for _, row := range []byte{0x5E, 0x7E} {
		c.edOps[row] = func(c *CPU) { c.opIM(2) }
	}
	c.edOps[0x47] = (*CPU).opLDIA
	c.edOps[0x4F] = (*CPU).opLDRA
	c.edOps[0x57] = (*CPU).opLDAI
	c.edOps[0x5F] = (*CPU).opLDAR
	c.edOps[0x67] = (*CPU).opRRD
	c.edOps[0x6F] = (*CPU).opRLD

	for _, row := range []byte{0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		c.edOps[row] = (*CPU).opNEG
	}
	for _, row := range []byte{0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		c.edOps[row] = (*CPU).opRETN
	}

	for y := byte(0); y < 8; y++ {
		code := y
		c.edOps[0x40+8*y] = func(c *CPU) { c.opINReg(code) }
		c.edOps[0x41+8*y] = func(c *CPU) { c.opOUTReg(code) }
	}

	c.edOps[0xA0] = (*CPU).opLDI
	c.edOps[0xA8] = (*CPU).opLDD
	c.edOps[0xB0] = (*CPU).opLDIR
	c.edOps[0xB8] = (*CPU).opLDDR
	c.edOps[0xA1] = (*CPU).opCPI
	c.edOps[0xA9] = (*CPU).opCPD
	c.edOps[0xB1] = (*CPU).opCPIR
	c.edOps[0xB9] = (*CPU).opCPDR
	c.edOps[0xA2] = (*CPU).opINI
	c.edOps[0xAA] = (*CPU).opIND
	c.edOps[0xB2] = (*CPU).opINIR
	c.edOps[0xBA] = (*CPU).opINDR
	c.edOps[0xA3] = (*CPU).opOUTI
	c.edOps[0xAB] = (*CPU).opOUTD
	c.edOps[0xB3] = (*CPU).opOTIR
	c.edOps[0xBB] = (*CPU).opOTDR
}

package zx

import "fmt"

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var aluNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// disassemble renders a best-effort single-instruction mnemonic from up
// to four bytes starting at the instruction's first byte, for trace
// output (§9). Unrecognised/rare encodings fall back to a raw DB byte;
// this only ever feeds a human-readable log, never CPU dispatch.
func disassemble(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	op := b[0]
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	switch {
	case op == 0x00:
		return "NOP"
	case op == 0x76:
		return "HALT"
	case op == 0xF3:
		return "DI"
	case op == 0xFB:
		return "EI"
	case op == 0xCB:
		return "CB prefix"
	case op == 0xED:
		return "ED prefix"
	case op == 0xDD:
		return "DD prefix"
	case op == 0xFD:
		return "FD prefix"
	case x == 1:
		return fmt.Sprintf("LD %s,%s", reg8Names[y], reg8Names[z])
	case x == 2:
		return aluNames[y] + reg8Names[z]
	case x == 0 && z == 6:
		if len(b) < 2 {
			return "LD ?,n"
		}
		return fmt.Sprintf("LD %s,0x%02X", reg8Names[y], b[1])
	case x == 3 && z == 2 && len(b) >= 3:
		return fmt.Sprintf("JP %s,0x%02X%02X", condNames[y], b[2], b[1])
	case op == 0xC3 && len(b) >= 3:
		return fmt.Sprintf("JP 0x%02X%02X", b[2], b[1])
	case op == 0x18 && len(b) >= 2:
		return fmt.Sprintf("JR %d", int8(b[1]))
	case x == 0 && z == 0 && y >= 4 && len(b) >= 2:
		return fmt.Sprintf("JR %s,%d", condNames[y-4], int8(b[1]))
	case op == 0xCD && len(b) >= 3:
		return fmt.Sprintf("CALL 0x%02X%02X", b[2], b[1])
	case op == 0xC9:
		return "RET"
	case x == 3 && z == 7:
		return fmt.Sprintf("RST 0x%02X", y*8)
	default:
		return fmt.Sprintf("DB 0x%02X", op)
	}
}

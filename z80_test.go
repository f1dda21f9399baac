package zx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a bare-bones Z80Host that applies no contention at all,
// for tests that only care about instruction semantics, not timing.
type fakeHost struct {
	mem          [0x10000]byte
	ticks        int
	out          map[uint16]byte
	in           map[uint16]byte
	disableIntEI bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{out: map[uint16]byte{}, in: map[uint16]byte{}}
}

func (h *fakeHost) Tick(n int)            { h.ticks += n }
func (h *fakeHost) ReadExtra(n int)       { h.ticks += n }
func (h *fakeHost) WriteExtra2T()         { h.ticks += 2 }
func (h *fakeHost) ExecExtra(n int)       { h.ticks += n }
func (h *fakeHost) SetAddrBus(uint16)     {}
func (h *fakeHost) SetPC(uint16)          {}
func (h *fakeHost) DisableIntOnEI() bool  { return h.disableIntEI }
func (h *fakeHost) Fetch() byte           { return h.mem[0] }
func (h *fakeHost) M1Fetch() byte         { return h.mem[0] }
func (h *fakeHost) Read(addr uint16) byte { return h.mem[addr] }

func (h *fakeHost) Write(addr uint16, v byte)   { h.mem[addr] = v }
func (h *fakeHost) Input(addr uint16) byte      { return h.in[addr] }
func (h *fakeHost) Output(addr uint16, v byte)  { h.out[addr] = v }

// pcHost wraps fakeHost but serves instruction bytes straight out of
// mem at the CPU's own PC, the way Machine does, instead of always
// returning mem[0].
type pcHost struct {
	*fakeHost
	cpu *CPU
}

func (h *pcHost) Fetch() byte   { return h.mem[h.cpu.Reg.PC] }
func (h *pcHost) M1Fetch() byte { return h.mem[h.cpu.Reg.PC] }

func newTestCPU() (*CPU, *pcHost) {
	fh := newFakeHost()
	ph := &pcHost{fakeHost: fh}
	cpu := NewCPU(ph)
	ph.cpu = cpu
	return cpu, ph
}

func TestCPUResetState(t *testing.T) {
	cpu, _ := newTestCPU()
	assert.Equal(t, uint16(0xFFFF), cpu.Reg.SP)
	assert.Equal(t, uint16(0), cpu.Reg.PC)
	assert.False(t, cpu.Halted)
}

func TestOpLDRegImmAndALU(t *testing.T) {
	cpu, h := newTestCPU()
	// LD A,5 ; ADD A,3
	h.mem[0] = 0x3E
	h.mem[1] = 0x05
	h.mem[2] = 0xC6
	h.mem[3] = 0x03
	cpu.Step()
	require.Equal(t, byte(5), cpu.Reg.A)
	cpu.Step()
	assert.Equal(t, byte(8), cpu.Reg.A)
	assert.False(t, cpu.Reg.Flag(FlagC))
	assert.False(t, cpu.Reg.Flag(FlagZ))
}

func TestOpINCFlags(t *testing.T) {
	cpu, h := newTestCPU()
	cpu.Reg.A = 0x7F
	h.mem[0] = 0x3C // INC A
	cpu.Step()
	assert.Equal(t, byte(0x80), cpu.Reg.A)
	assert.True(t, cpu.Reg.Flag(FlagPV)) // 0x7F+1 overflows into negative
	assert.True(t, cpu.Reg.Flag(FlagS))
}

func TestOpJP(t *testing.T) {
	cpu, h := newTestCPU()
	h.mem[0] = 0xC3 // JP 0x1234
	h.mem[1] = 0x34
	h.mem[2] = 0x12
	cpu.Step()
	assert.Equal(t, uint16(0x1234), cpu.Reg.PC)
}

func TestOpCallAndRet(t *testing.T) {
	cpu, h := newTestCPU()
	cpu.Reg.SP = 0x8000
	h.mem[0] = 0xCD // CALL 0x2000
	h.mem[1] = 0x00
	h.mem[2] = 0x20
	h.mem[0x2000] = 0xC9 // RET
	cpu.Step()
	assert.Equal(t, uint16(0x2000), cpu.Reg.PC)
	assert.Equal(t, uint16(0x7FFE), cpu.Reg.SP)
	cpu.Step()
	assert.Equal(t, uint16(0x0003), cpu.Reg.PC)
	assert.Equal(t, uint16(0x8000), cpu.Reg.SP)
}

func TestOpPushPop(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.Reg.SP = 0x8000
	cpu.Reg.SetBC(0xABCD)
	cpu.pushWord(cpu.Reg.BC())
	cpu.Reg.SetBC(0)
	cpu.Reg.SetBC(cpu.popWord())
	assert.Equal(t, uint16(0xABCD), cpu.Reg.BC())
}

func TestEIDelaysInterruptSuppression(t *testing.T) {
	cpu, h := newTestCPU()
	h.disableIntEI = true
	h.mem[0] = 0xFB // EI
	cpu.Step()
	assert.True(t, cpu.Reg.IFF1)
	assert.True(t, cpu.IntSuppressedByEI())
}

func TestEIImmediateWhenHostAllows(t *testing.T) {
	cpu, h := newTestCPU()
	h.disableIntEI = false
	h.mem[0] = 0xFB // EI
	cpu.Step()
	assert.False(t, cpu.IntSuppressedByEI())
}

func TestDDPrefixAddressesIX(t *testing.T) {
	cpu, h := newTestCPU()
	cpu.Reg.IX = 0x9000
	h.mem[0] = 0xDD
	h.mem[1] = 0x34 // INC (IX+d)
	h.mem[2] = 0x05 // d = 5
	h.mem[0x9005] = 0x41
	cpu.Step()
	assert.Equal(t, byte(0x42), h.mem[0x9005])
	assert.Equal(t, IregIX, cpu.Reg.Iregp, "iregp stays IX until the next Step resets it")

	// The next instruction starts fresh on HL again.
	h.mem[3] = 0x00 // NOP
	cpu.Reg.PC = 3
	cpu.Step()
	assert.Equal(t, IregHL, cpu.Reg.Iregp)
}

func TestParity8(t *testing.T) {
	assert.True(t, parity8(0x00))
	assert.True(t, parity8(0x03))
	assert.False(t, parity8(0x01))
	assert.False(t, parity8(0x07))
}

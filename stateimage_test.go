package zx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateImageRoundTrip(t *testing.T) {
	m := NewMachine()
	r := &m.cpu.Reg
	r.SetBC(0x1122)
	r.SetDE(0x3344)
	r.SetHL(0x5566)
	r.SetAF(0x7788)
	r.IX = 0x99AA
	r.IY = 0xBBCC
	r.SetBC2(0x1234)
	r.SetDE2(0x5678)
	r.SetHL2(0x9ABC)
	r.SetAF2(0xDEF0)
	r.PC = 0x8000
	r.SP = 0xFFFE
	r.I = 0x3D
	r.R = 0x2A
	r.WZ = 0x4321
	r.IFF1 = true
	r.IFF2 = false
	r.IM = 2
	r.Iregp = IregIY

	m.ticksSinceInt = 12345
	m.fetchesToStop = 99
	m.intSuppressed = true
	m.intAfterEIAllowed = true
	m.borderColour = 5
	m.traceEnabled = true

	buf := make([]byte, StateImageSize)
	require.NoError(t, m.WriteStateImage(buf))

	m2 := NewMachine()
	require.NoError(t, m2.ReadStateImage(buf))

	r2 := &m2.cpu.Reg
	assert.Equal(t, r.BC(), r2.BC())
	assert.Equal(t, r.DE(), r2.DE())
	assert.Equal(t, r.HL(), r2.HL())
	assert.Equal(t, r.AF(), r2.AF())
	assert.Equal(t, r.IX, r2.IX)
	assert.Equal(t, r.IY, r2.IY)
	assert.Equal(t, r.BC2(), r2.BC2())
	assert.Equal(t, r.DE2(), r2.DE2())
	assert.Equal(t, r.HL2(), r2.HL2())
	assert.Equal(t, r.AF2(), r2.AF2())
	assert.Equal(t, r.PC, r2.PC)
	assert.Equal(t, r.SP, r2.SP)
	assert.Equal(t, r.I, r2.I)
	assert.Equal(t, r.R, r2.R)
	assert.Equal(t, r.WZ, r2.WZ)
	assert.Equal(t, r.IFF1, r2.IFF1)
	assert.Equal(t, r.IFF2, r2.IFF2)
	assert.Equal(t, r.IM, r2.IM)
	assert.Equal(t, r.Iregp, r2.Iregp)

	assert.Equal(t, m.ticksSinceInt, m2.ticksSinceInt)
	assert.Equal(t, m.fetchesToStop, m2.fetchesToStop)
	assert.Equal(t, m.intSuppressed, m2.intSuppressed)
	assert.Equal(t, m.intAfterEIAllowed, m2.intAfterEIAllowed)
	assert.Equal(t, m.borderColour, m2.borderColour)
	assert.Equal(t, m.traceEnabled, m2.traceEnabled)
}

func TestStateImageRejectsShortBuffer(t *testing.T) {
	m := NewMachine()
	buf := make([]byte, StateImageSize-1)
	assert.ErrorIs(t, m.WriteStateImage(buf), ErrInvalidState)
	assert.ErrorIs(t, m.ReadStateImage(buf), ErrInvalidState)
}

func TestStateImageRejectsInvalidIM(t *testing.T) {
	m := NewMachine()
	buf := make([]byte, StateImageSize)
	require.NoError(t, m.WriteStateImage(buf))

	imOffset := 14*2 + 2 // after 14 u16 fields + iff1 + iff2
	buf[imOffset] = 3    // invalid IM mode

	assert.ErrorIs(t, m.ReadStateImage(buf), ErrInvalidState)
}

func TestStateImageRejectsInvalidIregpKind(t *testing.T) {
	m := NewMachine()
	buf := make([]byte, StateImageSize)
	require.NoError(t, m.WriteStateImage(buf))

	iregpOffset := 14*2 + 3
	buf[iregpOffset] = 3 // invalid iregp kind

	assert.ErrorIs(t, m.ReadStateImage(buf), ErrInvalidState)
}

func TestStateImageRejectsInvalidBorderColour(t *testing.T) {
	m := NewMachine()
	buf := make([]byte, StateImageSize)
	require.NoError(t, m.WriteStateImage(buf))

	borderOffset := 14*2 + 4 + 4 + 4 + 2
	buf[borderOffset] = 8 // only 0..7 valid

	assert.ErrorIs(t, m.ReadStateImage(buf), ErrInvalidState)
}

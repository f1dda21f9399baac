package zx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkPixelToRGBDim(t *testing.T) {
	// red, not bright: bit1 set (r), bit3 clear.
	assert.Equal(t, uint32(0xcc)<<16, chunkPixelToRGB(0x02))
	// green, not bright.
	assert.Equal(t, uint32(0xcc)<<8, chunkPixelToRGB(0x04))
	// blue, not bright.
	assert.Equal(t, uint32(0xcc), chunkPixelToRGB(0x01))
	// black.
	assert.Equal(t, uint32(0), chunkPixelToRGB(0x00))
}

func TestChunkPixelToRGBBright(t *testing.T) {
	// white, bright: r|g|b + bright bit.
	code := byte(0x02 | 0x04 | 0x01 | 0x08)
	want := uint32(0xff)<<16 | uint32(0xff)<<8 | uint32(0xff)
	assert.Equal(t, want, chunkPixelToRGB(code))
}

func TestScreenToRGBShapeAndPacking(t *testing.T) {
	s := &Screen{}
	s.setPixel(0, 0, 0x02) // dim red at top-left
	rgb := s.ToRGB()
	assert.Equal(t, uint32(0xcc)<<16, rgb[0][0])
	assert.Equal(t, uint32(0), rgb[0][1])
}

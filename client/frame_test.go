package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFrameValidate covers the structural invariants the worker enforces
// before a frame may enter the queue.
func TestFrameValidate(t *testing.T) {
	valid := &Frame{Width: 4, Height: 3, Pixels: make([]byte, 48), Timestamp: 1}
	assert.NoError(t, valid.Validate())

	var nilFrame *Frame
	assert.ErrorIs(t, nilFrame.Validate(), ErrNilFrame)

	negative := &Frame{Width: -1, Height: 3}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidDimensions)

	short := &Frame{Width: 4, Height: 3, Pixels: make([]byte, 47)}
	assert.ErrorIs(t, short.Validate(), ErrPixelLengthMismatch)

	long := &Frame{Width: 4, Height: 3, Pixels: make([]byte, 49)}
	assert.ErrorIs(t, long.Validate(), ErrPixelLengthMismatch)

	// Zero-sized frames are structurally valid; sources simply never
	// produce them in practice.
	empty := &Frame{}
	assert.NoError(t, empty.Validate())
}

func TestFrameSize(t *testing.T) {
	f := &Frame{Width: 640, Height: 480}
	assert.Equal(t, 640*480*4, f.Size())
}

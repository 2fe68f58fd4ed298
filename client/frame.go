package client

import "fmt"

// BytesPerPixel is the size of one RGBA pixel on the wire and in memory.
const BytesPerPixel = 4

// Frame is a single decoded video frame.
//
// Pixels holds interleaved RGBA bytes, row-major, top-to-bottom, so its
// length is always Width*Height*4 for a valid frame. Timestamp is in
// microseconds and strictly increases within one session.
type Frame struct {
	Width     int
	Height    int
	Pixels    []byte
	Timestamp int64
}

// Size returns the expected pixel payload length for the frame dimensions.
func (f *Frame) Size() int {
	return f.Width * f.Height * BytesPerPixel
}

// Validate checks the frame's structural invariants. The worker rejects
// invalid frames before they reach the queue, so consumers never observe
// a partial or malformed frame.
func (f *Frame) Validate() error {
	if f == nil {
		return ErrNilFrame
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}
	if len(f.Pixels) != f.Size() {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrPixelLengthMismatch, len(f.Pixels), f.Size(), f.Width, f.Height)
	}
	return nil
}

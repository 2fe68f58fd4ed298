package client

import "errors"

// Sentinel errors for client package operations.
// These errors enable reliable error classification using errors.Is().

// Frame validation errors.
var (
	// ErrNilFrame indicates a nil frame was produced by a source.
	ErrNilFrame = errors.New("nil frame")

	// ErrInvalidDimensions indicates a negative frame width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrPixelLengthMismatch indicates the pixel payload does not match
	// width*height*4.
	ErrPixelLengthMismatch = errors.New("pixel length mismatch")
)

// Session lifecycle errors.
var (
	// ErrSessionClosed indicates the session worker has been stopped.
	ErrSessionClosed = errors.New("session closed")

	// ErrSourceClosed indicates the frame source has no more frames.
	ErrSourceClosed = errors.New("source closed")
)

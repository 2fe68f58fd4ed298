package client

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Source produces decoded frames for a session. Implementations wrap a
// real transport and decoder, or synthesize frames for testing. The core
// pipeline depends only on this interface.
type Source interface {
	// Connect performs connection setup and returns a stream of frames.
	// It may block; implementations must honor context cancellation so a
	// session being destroyed mid-handshake shuts down promptly.
	Connect(ctx context.Context, serverAddress, streamPath string) (Stream, error)
}

// Stream is an established connection yielding decoded frames.
type Stream interface {
	// ReadFrame returns the next decoded frame. It may block up to about
	// one pacing interval and must honor context cancellation.
	ReadFrame(ctx context.Context) (*Frame, error)

	// Close releases the connection. The session worker calls it exactly
	// once, after the last ReadFrame.
	Close() error
}

// Generator is a synthetic Source producing an animated RGBA gradient.
// It stands in for a real transport/decoder so the pipeline can be
// exercised in isolation, and mirrors the reference placeholder: 640x480
// frames with microsecond timestamps stepping at a 60fps rate.
type Generator struct {
	// Width and Height of produced frames. Zero values default to 640x480.
	Width  int
	Height int

	// HandshakeDelay simulates connection setup time. Negative disables
	// the delay; zero means the 500ms default.
	HandshakeDelay time.Duration

	// TimestampStep is the per-frame timestamp increment in microseconds.
	// Zero means the ~60fps default of 16667.
	TimestampStep int64
}

const (
	defaultGeneratorWidth  = 640
	defaultGeneratorHeight = 480
	defaultHandshakeDelay  = 500 * time.Millisecond
	defaultTimestampStep   = 16667 // microseconds, ~60fps
)

// Connect simulates a transport handshake, then returns a gradient stream.
func (g *Generator) Connect(ctx context.Context, serverAddress, streamPath string) (Stream, error) {
	delay := g.HandshakeDelay
	if delay == 0 {
		delay = defaultHandshakeDelay
	}

	logrus.WithFields(logrus.Fields{
		"function":       "Connect",
		"server_address": serverAddress,
		"stream_path":    streamPath,
		"delay":          delay,
	}).Debug("Generator simulating connection handshake")

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	width, height := g.Width, g.Height
	if width <= 0 {
		width = defaultGeneratorWidth
	}
	if height <= 0 {
		height = defaultGeneratorHeight
	}
	step := g.TimestampStep
	if step <= 0 {
		step = defaultTimestampStep
	}

	return &gradientStream{width: width, height: height, step: step}, nil
}

// gradientStream yields animated gradient frames with strictly increasing
// timestamps.
type gradientStream struct {
	mu         sync.Mutex
	width      int
	height     int
	step       int64
	frameCount int64
	closed     bool
}

func (s *gradientStream) ReadFrame(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSourceClosed
	}

	n := s.frameCount
	s.frameCount++

	frame := &Frame{
		Width:     s.width,
		Height:    s.height,
		Pixels:    make([]byte, s.width*s.height*BytesPerPixel),
		Timestamp: n * s.step,
	}

	// Animated gradient, same construction as the reference generator.
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := (y*s.width + x) * BytesPerPixel
			frame.Pixels[idx] = byte((int64(x) + n) % 255)
			frame.Pixels[idx+1] = byte((int64(y) + n*2) % 255)
			frame.Pixels[idx+2] = byte((int64(x+y) + n*3) % 255)
			frame.Pixels[idx+3] = 255
		}
	}

	return frame, nil
}

func (s *gradientStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratorDefaults verifies the generator matches the reference
// placeholder: 640x480 RGBA frames with 16667µs timestamp steps.
func TestGeneratorDefaults(t *testing.T) {
	g := &Generator{HandshakeDelay: -1}
	stream, err := g.Connect(context.Background(), "host", "path")
	require.NoError(t, err)
	defer stream.Close()

	first, err := stream.ReadFrame(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Validate())
	assert.Equal(t, 640, first.Width)
	assert.Equal(t, 480, first.Height)
	assert.Equal(t, int64(0), first.Timestamp)

	second, err := stream.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(16667), second.Timestamp)

	// Fully opaque alpha across the frame.
	assert.EqualValues(t, 255, first.Pixels[3])
	assert.EqualValues(t, 255, first.Pixels[len(first.Pixels)-1])
}

// TestGeneratorTimestampsIncrease verifies strict monotonicity over a run
// of frames.
func TestGeneratorTimestampsIncrease(t *testing.T) {
	g := &Generator{Width: 8, Height: 8, HandshakeDelay: -1}
	stream, err := g.Connect(context.Background(), "host", "path")
	require.NoError(t, err)
	defer stream.Close()

	last := int64(-1)
	for i := 0; i < 50; i++ {
		frame, err := stream.ReadFrame(context.Background())
		require.NoError(t, err)
		require.Greater(t, frame.Timestamp, last)
		last = frame.Timestamp
	}
}

// TestGeneratorHandshakeCancellation verifies a session being destroyed
// mid-handshake does not wait out the simulated delay.
func TestGeneratorHandshakeCancellation(t *testing.T) {
	g := &Generator{HandshakeDelay: 10 * time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := g.Connect(ctx, "host", "path")
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Connect did not return promptly after cancellation")
	}
}

// TestGeneratorReadAfterClose verifies a closed stream reports
// ErrSourceClosed rather than fabricating frames.
func TestGeneratorReadAfterClose(t *testing.T) {
	g := &Generator{Width: 4, Height: 4, HandshakeDelay: -1}
	stream, err := g.Connect(context.Background(), "host", "path")
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	_, err = stream.ReadFrame(context.Background())
	assert.ErrorIs(t, err, ErrSourceClosed)
}

// TestGeneratorGradientAnimates verifies consecutive frames differ, the
// property the reference generator exists to demonstrate.
func TestGeneratorGradientAnimates(t *testing.T) {
	g := &Generator{Width: 16, Height: 16, HandshakeDelay: -1}
	stream, err := g.Connect(context.Background(), "host", "path")
	require.NoError(t, err)
	defer stream.Close()

	a, err := stream.ReadFrame(context.Background())
	require.NoError(t, err)
	b, err := stream.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.Pixels, b.Pixels)
}

package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultFrameInterval is the worker pacing period, ~60 frames/second.
const DefaultFrameInterval = 16 * time.Millisecond

// Config carries the connection parameters for one session.
type Config struct {
	// ServerAddress is the stream server URL or host address.
	ServerAddress string

	// StreamPath names the stream to subscribe to.
	StreamPath string

	// TargetLatency is the requested end-to-end latency budget. It is
	// passed through to sources that can act on it.
	TargetLatency time.Duration

	// FrameInterval paces the worker's production loop. Zero means
	// DefaultFrameInterval.
	FrameInterval time.Duration

	// QueueCapacity bounds the frame queue. Zero means
	// DefaultQueueCapacity.
	QueueCapacity int

	// Source produces frames for the session. Nil means the synthetic
	// Generator, matching the reference behavior when no real transport
	// is wired.
	Source Source
}

// Session is one client instance: a connection state machine, a frame
// queue, and the background worker that feeds it from a Source.
//
// The worker is the only writer of connection state and the only producer
// into the queue. The host thread drains the queue via Update and reads
// the current frame via FrameInfo/FrameData; none of those calls block
// beyond a brief lock acquisition.
type Session struct {
	cfg   Config
	state *stateMachine
	queue *FrameQueue

	// mu guards the current-frame slot and the unread flag together, so
	// a host never observes frame info it cannot subsequently read data
	// for.
	mu        sync.Mutex
	current   *Frame
	hasUnread bool

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession creates a session and immediately starts its worker. By
// contract creation never fails: connection problems surface through the
// session's status, not through the constructor.
func NewSession(cfg Config) *Session {
	if cfg.Source == nil {
		cfg.Source = &Generator{}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		cfg:    cfg,
		state:  newStateMachine(),
		queue:  NewFrameQueue(cfg.QueueCapacity),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	logrus.WithFields(logrus.Fields{
		"function":       "NewSession",
		"server_address": cfg.ServerAddress,
		"stream_path":    cfg.StreamPath,
		"target_latency": cfg.TargetLatency,
		"frame_interval": cfg.FrameInterval,
	}).Info("Starting client session")

	go s.run(ctx)
	return s
}

// Close stops the worker and blocks until it has fully terminated, so no
// frame is produced after Close returns. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		logrus.WithFields(logrus.Fields{
			"function":    "Close",
			"stream_path": s.cfg.StreamPath,
		}).Info("Stopping client session")
		s.cancel()
	})
	<-s.done
}

// Update drains at most one frame from the queue into the current-frame
// slot and reports whether the session is in a non-error state. This is
// the host's per-tick poll entry point.
func (s *Session) Update() bool {
	if frame := s.queue.Pop(); frame != nil {
		s.mu.Lock()
		s.current = frame
		s.hasUnread = true
		s.mu.Unlock()
	}
	return s.state.Current().OK()
}

// FrameInfo returns the dimensions of the unread current frame without
// consuming it. ok is false when no unread frame exists.
func (s *Session) FrameInfo() (width, height int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUnread || s.current == nil {
		return 0, 0, false
	}
	return s.current.Width, s.current.Height, true
}

// FrameData copies the unread current frame's pixels into buf and marks
// the frame consumed. It returns false without copying anything when no
// unread frame exists or buf is too small, so a caller may retry with a
// larger buffer and still get the same frame.
func (s *Session) FrameData(buf []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUnread || s.current == nil || len(s.current.Pixels) == 0 {
		return false
	}
	if len(buf) < len(s.current.Pixels) {
		return false
	}
	copy(buf, s.current.Pixels)
	s.hasUnread = false
	return true
}

// Status returns the session's connection status.
func (s *Session) Status() Status {
	return s.state.Current()
}

// QueueStats returns the queued frame count and the number of frames
// discarded at admission since the session started.
func (s *Session) QueueStats() (queued int, dropped uint64) {
	return s.queue.Len(), s.queue.Dropped()
}

// run is the worker loop: connect, then produce frames at the configured
// pace until canceled or the source fails.
func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	s.state.transition(StatusConnecting)

	stream, err := s.cfg.Source.Connect(ctx, s.cfg.ServerAddress, s.cfg.StreamPath)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logrus.WithFields(logrus.Fields{
			"function":       "run",
			"server_address": s.cfg.ServerAddress,
			"stream_path":    s.cfg.StreamPath,
			"error":          err.Error(),
		}).Error("Connection setup failed")
		s.state.transition(StatusErrConnectFailed)
		return
	}
	defer stream.Close()

	s.state.transition(StatusConnected)
	logrus.WithFields(logrus.Fields{
		"function":    "run",
		"stream_path": s.cfg.StreamPath,
	}).Info("Session connected")

	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	var lastTimestamp int64 = -1
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := stream.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logrus.WithFields(logrus.Fields{
				"function":    "run",
				"stream_path": s.cfg.StreamPath,
				"error":       err.Error(),
			}).Error("Frame source failed")
			s.state.transition(StatusErrStreamFailed)
			return
		}

		if err := frame.Validate(); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "run",
				"error":    err.Error(),
			}).Warn("Discarding malformed frame")
		} else if frame.Timestamp <= lastTimestamp {
			logrus.WithFields(logrus.Fields{
				"function":  "run",
				"timestamp": frame.Timestamp,
				"last":      lastTimestamp,
			}).Warn("Discarding non-monotonic frame")
		} else {
			lastTimestamp = frame.Timestamp
			s.queue.Push(frame)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

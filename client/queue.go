package client

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultQueueCapacity bounds the number of decoded frames buffered
// between the worker and the host poll loop.
const DefaultQueueCapacity = 5

// FrameQueue is a bounded FIFO of decoded frames shared between one
// producing worker and the polling host.
//
// Admission is drop-new: when the queue is full, Push discards the
// incoming frame rather than evicting a queued one or blocking the
// producer. Consumers that fall behind therefore see frames in original
// production order, possibly with gaps.
type FrameQueue struct {
	mu       sync.Mutex
	frames   []*Frame
	capacity int
	dropped  uint64
}

// NewFrameQueue creates a queue with the given capacity. Non-positive
// capacities fall back to DefaultQueueCapacity.
func NewFrameQueue(capacity int) *FrameQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &FrameQueue{
		frames:   make([]*Frame, 0, capacity),
		capacity: capacity,
	}
}

// Push offers a frame to the queue. If the queue is at capacity the frame
// is discarded and Push returns false. Never blocks.
func (q *FrameQueue) Push(frame *Frame) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.frames) >= q.capacity {
		q.dropped++
		logrus.WithFields(logrus.Fields{
			"function":  "Push",
			"timestamp": frame.Timestamp,
			"dropped":   q.dropped,
		}).Debug("Frame queue full, discarding new frame")
		return false
	}

	q.frames = append(q.frames, frame)
	return true
}

// Pop removes and returns the oldest queued frame, or nil if the queue
// is empty.
func (q *FrameQueue) Pop() *Frame {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.frames) == 0 {
		return nil
	}
	frame := q.frames[0]
	q.frames = q.frames[1:]
	return frame
}

// Len returns the number of frames currently queued.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// Capacity returns the fixed queue capacity.
func (q *FrameQueue) Capacity() int {
	return q.capacity
}

// Dropped returns how many frames have been discarded at admission.
func (q *FrameQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

package client

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Status represents a session's connection state as observed by the host.
// Non-negative values indicate progress toward or at connection; negative
// values indicate an error condition. The values are part of the foreign
// boundary contract and must not be reordered.
type Status int32

const (
	// StatusDisconnected is the initial state before the worker starts.
	StatusDisconnected Status = 0
	// StatusConnecting indicates the worker is performing connection setup.
	StatusConnecting Status = 1
	// StatusConnected is the steady state while frames are being produced.
	StatusConnected Status = 2

	// StatusErrUnknownHandle is returned for operations on handles not
	// present in a registry. It never appears inside a live session.
	StatusErrUnknownHandle Status = -1
	// StatusErrConnectFailed indicates connection setup failed.
	StatusErrConnectFailed Status = -2
	// StatusErrStreamFailed indicates the source failed after connecting.
	StatusErrStreamFailed Status = -3
)

// OK reports whether the status is not an error condition.
func (s Status) OK() bool {
	return s >= 0
}

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusErrUnknownHandle:
		return "unknown handle"
	case StatusErrConnectFailed:
		return "connect failed"
	case StatusErrStreamFailed:
		return "stream failed"
	default:
		return "error"
	}
}

// stateMachine tracks a session's connection lifecycle. The worker is the
// only writer; any goroutine may read through Current. An error state is
// terminal for the session: there is no recovery transition, callers
// destroy and re-create to retry.
type stateMachine struct {
	mu     sync.RWMutex
	status Status
}

func newStateMachine() *stateMachine {
	return &stateMachine{status: StatusDisconnected}
}

// Current returns the current connection status.
func (m *stateMachine) Current() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// transition moves the machine to next if the move is legal and returns
// whether it happened. Legal moves are strictly forward (Disconnected →
// Connecting → Connected) or into an error state from any live state;
// a terminal error state never changes again.
func (m *stateMachine) transition(next Status) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status < 0 {
		return false
	}
	if next >= 0 && next <= m.status {
		return false
	}

	logrus.WithFields(logrus.Fields{
		"function": "transition",
		"from":     m.status.String(),
		"to":       next.String(),
	}).Debug("Connection state transition")

	m.status = next
	return true
}

package moqclient

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moqclient/client"
)

// Handle is an opaque integer identifying a client session across the
// external boundary. Handles are unique for the lifetime of a Registry
// and never reused while their session is registered.
type Handle int32

// Registry maps handles to live client sessions and serializes their
// creation, destruction, and lookup, so the foreign-call boundary never
// observes a half-constructed or concurrently destroyed session.
//
// The registry lock protects only the handle table. Session-internal
// state has its own locking, so lookups delegate quickly and never hold
// the table lock across frame generation or network work.
type Registry struct {
	mu         sync.RWMutex
	sessions   map[Handle]*client.Session
	nextHandle Handle
}

// NewRegistry creates an empty registry. Multiple independent registries
// can coexist in one process; the capi package holds one process-wide
// instance for C hosts.
func NewRegistry() *Registry {
	return &Registry{
		sessions:   make(map[Handle]*client.Session),
		nextHandle: 1,
	}
}

// Create constructs a session from cfg, starts its worker, and registers
// it under a fresh handle. It never fails: connection errors surface
// through ConnectionStatus, not through creation.
func (r *Registry) Create(cfg client.Config) Handle {
	sess := client.NewSession(cfg)

	r.mu.Lock()
	handle := r.nextHandle
	r.nextHandle++
	r.sessions[handle] = sess
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":       "Create",
		"handle":         handle,
		"server_address": cfg.ServerAddress,
		"stream_path":    cfg.StreamPath,
	}).Info("Client session registered")

	return handle
}

// Destroy removes the session and blocks until its worker has fully
// stopped, so no frame is produced after Destroy returns. Destroying an
// unknown or already-destroyed handle is a no-op.
func (r *Registry) Destroy(handle Handle) {
	r.mu.Lock()
	sess, ok := r.sessions[handle]
	if ok {
		delete(r.sessions, handle)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	// Joining the worker happens outside the table lock so other
	// sessions' operations are not stalled behind the shutdown.
	sess.Close()

	logrus.WithFields(logrus.Fields{
		"function": "Destroy",
		"handle":   handle,
	}).Info("Client session destroyed")
}

// withSession resolves handle and invokes fn on the session while holding
// the table read lock. All accessor operations route through here so
// handle validity is checked exactly once, consistently. Returns false if
// the handle is unknown.
func (r *Registry) withSession(handle Handle, fn func(*client.Session)) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[handle]
	if !ok {
		return false
	}
	fn(sess)
	return true
}

// Update advances the session's frame drain by at most one frame and
// reports whether the session is live (registered and in a non-error
// state).
func (r *Registry) Update(handle Handle) bool {
	var alive bool
	if !r.withSession(handle, func(s *client.Session) {
		alive = s.Update()
	}) {
		return false
	}
	return alive
}

// FrameInfo returns the dimensions of the session's unread frame, if any.
// ok is false for an unknown handle or when no unread frame exists.
func (r *Registry) FrameInfo(handle Handle) (width, height int, ok bool) {
	r.withSession(handle, func(s *client.Session) {
		width, height, ok = s.FrameInfo()
	})
	return width, height, ok
}

// FrameData copies the unread frame's pixels into buf and marks the frame
// consumed. Returns false for an unknown handle, no unread frame, or a
// buffer smaller than the frame payload; it never writes partially.
func (r *Registry) FrameData(handle Handle, buf []byte) bool {
	var copied bool
	r.withSession(handle, func(s *client.Session) {
		copied = s.FrameData(buf)
	})
	return copied
}

// ConnectionStatus returns the session's connection status, or
// client.StatusErrUnknownHandle for a handle not in the registry.
func (r *Registry) ConnectionStatus(handle Handle) client.Status {
	status := client.StatusErrUnknownHandle
	r.withSession(handle, func(s *client.Session) {
		status = s.Status()
	})
	return status
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

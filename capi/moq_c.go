// Package main provides C API bindings for the moqclient runtime.
//
// Build instructions:
//
//	go build -buildmode=c-shared -o libmoqclient.so ./capi/
package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/opd-ai/moqclient"
	"github.com/opd-ai/moqclient/client"
)

// Process-wide handle registry for C hosts. This follows the same global
// instance-table pattern as the other moqclient language boundaries.
var registry = moqclient.NewRegistry()

// maxFrameBuffer caps the caller buffer size accepted at the boundary,
// bounding the unsafe slice header construction below.
const maxFrameBuffer = 1 << 28

// MoqCreateClient creates a client session for the given server URL and
// stream path and returns its handle. Creation always succeeds for valid
// arguments; connection errors surface through MoqGetConnectionStatus.
// Returns 0 (never a valid handle) if either string is NULL.
//
//export MoqCreateClient
func MoqCreateClient(serverUrl *C.char, streamPath *C.char, targetLatencyMs C.int32_t) C.int32_t {
	if serverUrl == nil || streamPath == nil {
		return 0
	}

	handle := registry.Create(client.Config{
		ServerAddress: C.GoString(serverUrl),
		StreamPath:    C.GoString(streamPath),
		TargetLatency: time.Duration(targetLatencyMs) * time.Millisecond,
	})
	return C.int32_t(handle)
}

// MoqDestroyClient destroys a client session, blocking until its worker
// has fully stopped. Destroying an unknown handle is a no-op.
//
//export MoqDestroyClient
func MoqDestroyClient(handle C.int32_t) {
	registry.Destroy(moqclient.Handle(handle))
}

// MoqUpdateClient advances the client's frame drain by one frame and
// returns true while the connection status is non-error. Hosts call this
// once per render tick.
//
//export MoqUpdateClient
func MoqUpdateClient(handle C.int32_t) C.bool {
	return C.bool(registry.Update(moqclient.Handle(handle)))
}

// MoqGetFrameInfo writes the unread frame's dimensions to width and
// height. Returns false, writing nothing, when no unread frame exists,
// the handle is unknown, or either output pointer is NULL.
//
//export MoqGetFrameInfo
func MoqGetFrameInfo(handle C.int32_t, width *C.int32_t, height *C.int32_t) C.bool {
	if width == nil || height == nil {
		return C.bool(false)
	}

	w, h, ok := registry.FrameInfo(moqclient.Handle(handle))
	if !ok {
		return C.bool(false)
	}
	*width = C.int32_t(w)
	*height = C.int32_t(h)
	return C.bool(true)
}

// MoqGetFrameData copies the unread frame's RGBA pixels into buffer and
// marks the frame consumed. Returns false without writing when the
// handle is unknown, no unread frame exists, or bufferSize is smaller
// than the frame payload (width*height*4); the caller may retry with a
// larger buffer.
//
//export MoqGetFrameData
func MoqGetFrameData(handle C.int32_t, buffer unsafe.Pointer, bufferSize C.int32_t) C.bool {
	size := int(bufferSize)
	if buffer == nil || size <= 0 || size > maxFrameBuffer {
		return C.bool(false)
	}

	buf := (*[maxFrameBuffer]byte)(buffer)[:size:size]
	return C.bool(registry.FrameData(moqclient.Handle(handle), buf))
}

// MoqGetConnectionStatus returns the client's connection status:
// 0 disconnected, 1 connecting, 2 connected; negative values indicate an
// error or an unknown handle.
//
//export MoqGetConnectionStatus
func MoqGetConnectionStatus(handle C.int32_t) C.int32_t {
	return C.int32_t(registry.ConnectionStatus(moqclient.Handle(handle)))
}

// main is required for -buildmode=c-shared.
func main() {}

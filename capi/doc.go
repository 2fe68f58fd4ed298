// Package main provides C API bindings for moqclient, enabling host
// applications (game engines, native UIs) to drive the client runtime
// through a plain C calling convention.
//
// # Overview
//
// The capi package exports the six boundary operations of the client
// runtime: MoqCreateClient, MoqDestroyClient, MoqUpdateClient,
// MoqGetFrameInfo, MoqGetFrameData, and MoqGetConnectionStatus. Clients
// are identified by opaque int32 handles backed by a process-wide
// registry; handles are never pointers and never reused while live.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libmoqclient.so ./capi/
//
// This generates:
//   - libmoqclient.so: The shared library
//   - libmoqclient.h: Auto-generated C header file with function declarations
//
// # C API Usage
//
//	#include "libmoqclient.h"
//
//	int32_t h = MoqCreateClient("wss://relay.example.com", "desktop", 100);
//
//	// Per-frame poll, e.g. from the engine's update callback
//	if (MoqUpdateClient(h)) {
//	    int32_t w, hgt;
//	    if (MoqGetFrameInfo(h, &w, &hgt)) {
//	        uint8_t *buf = malloc(w * hgt * 4);
//	        if (MoqGetFrameData(h, buf, w * hgt * 4)) {
//	            // upload buf as an RGBA texture
//	        }
//	        free(buf);
//	    }
//	}
//
//	MoqDestroyClient(h);
//
// # Thread Safety
//
// All functions are safe to call from any thread. Frame production
// happens on an internal per-client goroutine; the poll functions only
// take short locks and never block on network or decode work.
// MoqDestroyClient is the exception: it blocks until the client's worker
// has fully stopped, so it is safe to release frame buffers immediately
// after it returns.
//
// # Error Handling
//
// Operations on an unknown, destroyed, or invalid handle fail softly:
// boolean functions return false and MoqGetConnectionStatus returns a
// negative value. Connection failures surface through
// MoqGetConnectionStatus, never as a failed create.
package main

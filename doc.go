// Package moqclient implements a client-side runtime for receiving a live
// media stream and handing decoded video frames to a polling host
// application at a fixed cadence.
//
// The package provides a Registry mapping opaque integer handles to client
// sessions. Each session runs a background worker that connects a frame
// source, tracks connection state, and fills a bounded frame queue; the
// host drains it synchronously through the boundary operations. The wire
// protocol and video codec live behind the client.Source interface and are
// out of scope here; the host's rendering of frames is likewise the host's
// concern.
//
// # Getting Started
//
// Create a registry, then a client, and poll it each tick:
//
//	reg := moqclient.NewRegistry()
//
//	handle := reg.Create(client.Config{
//	    ServerAddress: "wss://relay.example.com",
//	    StreamPath:    "desktop",
//	    TargetLatency: 100 * time.Millisecond,
//	})
//	defer reg.Destroy(handle)
//
//	for reg.Update(handle) {
//	    if w, h, ok := reg.FrameInfo(handle); ok {
//	        buf := make([]byte, w*h*4)
//	        if reg.FrameData(handle, buf) {
//	            // upload buf as an RGBA texture
//	        }
//	    }
//	    time.Sleep(16 * time.Millisecond)
//	}
//
// All operations on an unknown or destroyed handle fail softly (false,
// absent, or a negative status) rather than faulting, so a host boundary
// is safe against double-destroy and stale handles.
//
// For consumption from C hosts, the capi package exports these operations
// as a C shared-library API.
package moqclient

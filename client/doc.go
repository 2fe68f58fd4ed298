// Package client implements the per-session frame pipeline for moqclient.
//
// Each Session owns a background worker goroutine that connects a
// FrameSource, tracks connection state, and pushes decoded frames into a
// bounded queue. The host application drains the queue at its own cadence
// through the Session's synchronous accessors.
//
// # Architecture
//
//   - Session: one client instance; owns the worker, the queue, and the
//     current-frame slot drained by the host
//   - Status: connection state machine observable as a small integer
//   - FrameQueue: fixed-capacity FIFO with drop-new admission under
//     saturation, decoupling production rate from poll rate
//   - Source: pluggable producer of decoded frames (real transport or the
//     synthetic Generator)
//
// # Usage
//
//	sess := client.NewSession(client.Config{
//	    ServerAddress: "wss://relay.example.com",
//	    StreamPath:    "desktop",
//	})
//	defer sess.Close()
//
//	for {
//	    sess.Update()
//	    if w, h, ok := sess.FrameInfo(); ok {
//	        buf := make([]byte, w*h*4)
//	        sess.FrameData(buf)
//	    }
//	    time.Sleep(16 * time.Millisecond)
//	}
//
// The worker never blocks the host: a full queue discards the newly
// produced frame rather than evicting or waiting, so consumers that fall
// behind observe gaps, never stalls.
package client

// Package ws implements a WebSocket-backed frame source for moqclient.
//
// A server pushes decoded frames as binary WebSocket messages, one frame
// per message, using the codec in wire.go: a fixed 16-byte header (width,
// height, timestamp) followed by the raw RGBA payload. The Source adapts
// that stream to the client.Source interface so the core pipeline is
// unaware of the transport.
//
// This is a delivery transport for already-decoded frames, not the
// streaming wire protocol itself; a production decoder would sit behind
// the same interface.
package ws

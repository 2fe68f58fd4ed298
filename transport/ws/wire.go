package ws

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/opd-ai/moqclient/client"
)

// HeaderSize is the fixed frame header length: width and height as
// uint32, timestamp as int64, all big-endian, followed immediately by the
// RGBA payload.
const HeaderSize = 16

// maxFrameDimension rejects absurd header values before allocating.
const maxFrameDimension = 1 << 14

// EncodeFrame serializes a frame into one binary message.
func EncodeFrame(frame *client.Frame) ([]byte, error) {
	if err := frame.Validate(); err != nil {
		return nil, errors.Wrap(err, "encode frame")
	}

	msg := make([]byte, HeaderSize+len(frame.Pixels))
	binary.BigEndian.PutUint32(msg[0:4], uint32(frame.Width))
	binary.BigEndian.PutUint32(msg[4:8], uint32(frame.Height))
	binary.BigEndian.PutUint64(msg[8:16], uint64(frame.Timestamp))
	copy(msg[HeaderSize:], frame.Pixels)
	return msg, nil
}

// DecodeFrame parses one binary message into a frame. The payload length
// must match the header dimensions exactly; a mismatch fails rather than
// yielding a partial frame.
func DecodeFrame(msg []byte) (*client.Frame, error) {
	if len(msg) < HeaderSize {
		return nil, errors.Errorf("decode frame: message too short (%d bytes)", len(msg))
	}

	width := int(binary.BigEndian.Uint32(msg[0:4]))
	height := int(binary.BigEndian.Uint32(msg[4:8]))
	timestamp := int64(binary.BigEndian.Uint64(msg[8:16]))

	if width > maxFrameDimension || height > maxFrameDimension {
		return nil, errors.Errorf("decode frame: dimensions %dx%d exceed limit", width, height)
	}

	frame := &client.Frame{
		Width:     width,
		Height:    height,
		Pixels:    msg[HeaderSize:],
		Timestamp: timestamp,
	}
	if err := frame.Validate(); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	return frame, nil
}

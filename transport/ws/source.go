package ws

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moqclient/client"
)

// Source dials a WebSocket frame server and adapts it to client.Source.
// The zero value is ready to use.
type Source struct {
	// Dialer overrides the WebSocket dialer. Nil means
	// websocket.DefaultDialer.
	Dialer *websocket.Dialer

	// HandshakeTimeout bounds the dial. Zero means 10 seconds.
	HandshakeTimeout time.Duration
}

// Connect dials serverAddress (a ws:// or wss:// URL) joined with
// streamPath and returns the resulting frame stream.
func (s *Source) Connect(ctx context.Context, serverAddress, streamPath string) (client.Stream, error) {
	target, err := streamURL(serverAddress, streamPath)
	if err != nil {
		return nil, err
	}

	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	timeout := s.HandshakeTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"function": "Connect",
		"url":      target,
	}).Info("Dialing frame server")

	conn, _, err := dialer.DialContext(dialCtx, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", target)
	}

	return &stream{conn: conn}, nil
}

// streamURL joins the server address and stream path into a dialable URL.
func streamURL(serverAddress, streamPath string) (string, error) {
	u, err := url.Parse(serverAddress)
	if err != nil {
		return "", errors.Wrapf(err, "parse server address %q", serverAddress)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", errors.Errorf("unsupported scheme %q in server address", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(streamPath, "/")
	return u.String(), nil
}

// stream reads binary frame messages from one WebSocket connection.
type stream struct {
	conn *websocket.Conn

	watchOnce sync.Once
	closeOnce sync.Once
}

// ReadFrame blocks on the next binary message and decodes it. Text and
// control messages are skipped. Cancellation of ctx closes the underlying
// connection, which unblocks the read.
func (st *stream) ReadFrame(ctx context.Context) (*client.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// gorilla reads cannot be interrupted directly; close the connection
	// when the session's context ends so a blocked read returns.
	st.watchOnce.Do(func() {
		go func() {
			<-ctx.Done()
			st.Close()
		}()
	})

	for {
		messageType, msg, err := st.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, client.ErrSourceClosed
			}
			return nil, errors.Wrap(err, "read frame message")
		}
		if messageType != websocket.BinaryMessage {
			logrus.WithFields(logrus.Fields{
				"function":     "ReadFrame",
				"message_type": messageType,
			}).Debug("Skipping non-binary message")
			continue
		}
		return DecodeFrame(msg)
	}
}

// Close sends a close message and tears down the connection.
func (st *stream) Close() error {
	var err error
	st.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		st.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		err = st.conn.Close()
	})
	return err
}

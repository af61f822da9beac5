// Package stream is a WebSocket client for the live debate stream.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/protocol"
)

// ErrStreamClosed is returned when the server closes the stream before
// sending a result.
var ErrStreamClosed = errors.New("stream closed before result")

// RunError is returned when the server reports a failed run.
type RunError struct {
	Code    string
	Message string
	Result  *domain.DebateResult
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client represents a WebSocket client.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the stream endpoint at addr (ws://host/v1/debates/stream).
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Watch starts a debate and calls onEvent for every streamed event until the
// result arrives. Cancelling ctx sends a cancel message to the server.
func (c *Client) Watch(ctx context.Context, input domain.DebateInput, onEvent func(domain.Event)) (*domain.DebateResult, error) {
	start := protocol.StartMessage{
		BaseMessage: protocol.NewBase(protocol.TypeStart, ""),
		DebateInput: input,
	}
	if err := c.conn.WriteJSON(start); err != nil {
		return nil, fmt.Errorf("write start: %w", err)
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			c.conn.WriteJSON(protocol.CancelMessage{BaseMessage: protocol.NewBase(protocol.TypeCancel, "")})
		case <-stop:
		}
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil, ErrStreamClosed
			}
			return nil, fmt.Errorf("read: %w", err)
		}

		var base protocol.BaseMessage
		if err := json.Unmarshal(data, &base); err != nil {
			return nil, fmt.Errorf("unmarshal message: %w", err)
		}

		switch base.Type {
		case protocol.TypeEvent:
			var msg protocol.EventMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				return nil, fmt.Errorf("unmarshal event: %w", err)
			}
			if onEvent != nil {
				onEvent(msg.Event)
			}
		case protocol.TypeResult:
			var msg protocol.ResultMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				return nil, fmt.Errorf("unmarshal result: %w", err)
			}
			return msg.Result, nil
		case protocol.TypeError:
			var msg protocol.ErrorMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				return nil, fmt.Errorf("unmarshal error: %w", err)
			}
			return msg.Result, &RunError{Code: msg.Code, Message: msg.Message, Result: msg.Result}
		}
	}
}

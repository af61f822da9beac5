package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/pipeline"
	"github.com/jkcg-learning/debate/internal/protocol"
)

const (
	streamWriteTimeout   = 10 * time.Second
	streamReadTimeout    = 60 * time.Second
	streamPingInterval   = 30 * time.Second
	streamMaxMessageSize = 64 * 1024
	streamSendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamDebate runs a debate over a WebSocket and streams its events.
// GET /v1/debates/stream
//
// The client sends one start message. The server answers with event
// messages, then a single result or error message, then closes. A cancel
// message or a closed connection stops the run.
func (h *Handler) StreamDebate(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("failed to upgrade websocket", "error", err.Error())
		return err
	}
	defer ws.Close()

	ws.SetReadLimit(streamMaxMessageSize)
	ws.SetReadDeadline(time.Now().Add(streamReadTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(streamReadTimeout))
	})

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	send := make(chan interface{}, streamSendBuffer)
	writerDone := make(chan struct{})
	go h.writePump(ws, send, writerDone)

	start, ok := h.readStart(ws, send)
	if !ok {
		close(send)
		<-writerDone
		return nil
	}

	go h.readPump(ws, cancel)

	observer := pipeline.ObserverFunc(func(ev domain.Event) {
		msg := protocol.EventMessage{
			BaseMessage: protocol.NewBase(protocol.TypeEvent, ev.RunID),
			Event:       ev,
		}
		select {
		case send <- msg:
		case <-ctx.Done():
		}
	})

	result, err := h.service.RunDebate(ctx, start.DebateInput, observer)
	if err != nil {
		h.logger.Error("streamed debate failed", "error", err.Error())
		send <- protocol.ErrorMessage{
			BaseMessage: protocol.NewBase(protocol.TypeError, result.RunID),
			Code:        protocol.ErrorCodeRunFailed,
			Message:     err.Error(),
			Result:      result,
		}
	} else {
		send <- protocol.ResultMessage{
			BaseMessage: protocol.NewBase(protocol.TypeResult, result.RunID),
			Result:      result,
		}
	}

	close(send)
	<-writerDone
	return nil
}

// readStart reads the first client message, which must be a start message.
func (h *Handler) readStart(ws *websocket.Conn, send chan<- interface{}) (protocol.StartMessage, bool) {
	var start protocol.StartMessage

	_, data, err := ws.ReadMessage()
	if err != nil {
		h.logger.Warn("websocket closed before start", "error", err.Error())
		return start, false
	}

	if err := json.Unmarshal(data, &start); err != nil {
		send <- protocol.ErrorMessage{
			BaseMessage: protocol.NewBase(protocol.TypeError, ""),
			Code:        protocol.ErrorCodeInvalidMessage,
			Message:     "invalid JSON message",
		}
		return start, false
	}
	if start.Type != protocol.TypeStart {
		send <- protocol.ErrorMessage{
			BaseMessage: protocol.NewBase(protocol.TypeError, ""),
			Code:        protocol.ErrorCodeInvalidMessage,
			Message:     "expected start message, got: " + start.Type,
		}
		return start, false
	}
	return start, true
}

// readPump watches the connection for cancel messages and disconnects.
func (h *Handler) readPump(ws *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", "error", err.Error())
			}
			return
		}

		var base protocol.BaseMessage
		if err := json.Unmarshal(data, &base); err == nil && base.Type == protocol.TypeCancel {
			h.logger.Info("debate cancelled by client")
			return
		}
	}
}

// writePump is the only writer on ws. It drains send, pings while idle and
// closes the connection once send is closed.
func (h *Handler) writePump(ws *websocket.Conn, send <-chan interface{}, done chan<- struct{}) {
	ticker := time.NewTicker(streamPingInterval)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-send:
			ws.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if !ok {
				ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := ws.WriteJSON(msg); err != nil {
				h.logger.Warn("failed to write websocket message", "error", err.Error())
				drain(send)
				return
			}

		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				drain(send)
				return
			}
		}
	}
}

// drain discards pending messages so senders never block on a dead writer.
func drain(send <-chan interface{}) {
	for range send {
	}
}

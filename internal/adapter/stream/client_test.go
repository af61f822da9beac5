package stream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/protocol"
)

// scriptedServer reads the start message, checks it, then writes replies.
func scriptedServer(t *testing.T, replies ...interface{}) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var start protocol.StartMessage
		if err := conn.ReadJSON(&start); err != nil {
			return
		}
		if start.Type != protocol.TypeStart || start.Topic != "T" {
			return
		}
		for _, reply := range replies {
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

var input = domain.DebateInput{Topic: "T", DebaterAName: "Alice", DebaterBName: "Bob"}

func TestWatchCollectsEventsAndResult(t *testing.T) {
	addr := scriptedServer(t,
		protocol.EventMessage{BaseMessage: protocol.NewBase(protocol.TypeEvent, "run_1"), Event: domain.Event{RunID: "run_1", Type: domain.EventTypeRunStarted}},
		protocol.EventMessage{BaseMessage: protocol.NewBase(protocol.TypeEvent, "run_1"), Event: domain.Event{RunID: "run_1", Type: domain.EventTypeRunDone}},
		protocol.ResultMessage{BaseMessage: protocol.NewBase(protocol.TypeResult, "run_1"), Result: &domain.DebateResult{RunID: "run_1", Status: domain.RunStatusDone}},
	)

	client, err := Dial(context.Background(), addr)
	require.NoError(t, err)
	defer client.Close()

	var seen []domain.EventType
	result, err := client.Watch(context.Background(), input, func(e domain.Event) {
		seen = append(seen, e.Type)
	})
	require.NoError(t, err)
	assert.Equal(t, "run_1", result.RunID)
	assert.Equal(t, []domain.EventType{domain.EventTypeRunStarted, domain.EventTypeRunDone}, seen)
}

func TestWatchReturnsRunError(t *testing.T) {
	addr := scriptedServer(t,
		protocol.ErrorMessage{
			BaseMessage: protocol.NewBase(protocol.TypeError, "run_2"),
			Code:        protocol.ErrorCodeRunFailed,
			Message:     "stage debate_loop: boom",
			Result:      &domain.DebateResult{RunID: "run_2", Status: domain.RunStatusFailed},
		},
	)

	client, err := Dial(context.Background(), addr)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Watch(context.Background(), input, nil)
	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, protocol.ErrorCodeRunFailed, runErr.Code)
	assert.Contains(t, err.Error(), "boom")
	require.NotNil(t, result)
	assert.Equal(t, domain.RunStatusFailed, result.Status)
}

func TestWatchStreamClosedWithoutResult(t *testing.T) {
	addr := scriptedServer(t)

	client, err := Dial(context.Background(), addr)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Watch(context.Background(), input, nil)
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestDialFailure(t *testing.T) {
	_, err := Dial(context.Background(), "ws://127.0.0.1:1/v1/debates/stream")
	assert.Error(t, err)
}

package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaorangina/gofish/protocol"
)

func dialWS(t *testing.T, srv *GameServer, gameID string) *websocket.Conn {
	t.Helper()

	testServer := httptest.NewServer(srv)
	t.Cleanup(testServer.Close)

	url := "ws" + strings.TrimPrefix(testServer.URL, "http") + "/ws/" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHandleWS(t *testing.T) {
	t.Run("pushes the state on connect", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, 2)

		conn := dialWS(t, srv, created.GameID)

		var msg WSMessage
		require.NoError(t, conn.ReadJSON(&msg))

		assert.Equal(t, protocol.State.String(), msg.Command)
		require.NotNil(t, msg.State)
		assert.Equal(t, created.GameID, msg.State.GameID)
		assert.Len(t, msg.State.Players, 2)
	})

	t.Run("applies an ask command", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, 2)

		conn := dialWS(t, srv, created.GameID)

		var initial WSMessage
		require.NoError(t, conn.ReadJSON(&initial))

		rank := initial.State.Players[0].Hand[0].Rank.String()
		require.NoError(t, conn.WriteJSON(WSCommand{
			Command:  protocol.Ask.String(),
			TargetID: 1,
			Rank:     rank,
		}))

		var msg WSMessage
		require.NoError(t, conn.ReadJSON(&msg))

		require.NotNil(t, msg.State)
		assert.NotEmpty(t, msg.State.LastAction)
		assert.NotEqual(t, initial.State.LastAction, msg.State.LastAction)
	})

	t.Run("reports an unknown command", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, 2)

		conn := dialWS(t, srv, created.GameID)

		var initial WSMessage
		require.NoError(t, conn.ReadJSON(&initial))

		require.NoError(t, conn.WriteJSON(WSCommand{Command: "Juggle"}))

		var msg WSMessage
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, protocol.Error.String(), msg.Command)
	})

	t.Run("unknown game ID", func(t *testing.T) {
		srv := newTestServer(t)
		testServer := httptest.NewServer(srv)
		t.Cleanup(testServer.Close)

		url := "ws" + strings.TrimPrefix(testServer.URL, "http") + "/ws/nope"
		_, res, err := websocket.DefaultDialer.Dial(url, nil)

		assert.Error(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 404, res.StatusCode)
	})
}

package socketio_types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyOfflinePlayerIsNoop(t *testing.T) {
	s := NewSocketServer()
	assert.NotPanics(t, func() {
		s.Notify("auth0|nobody", EventTradeReceived, map[string]string{"tradeId": "t1"})
	})
	_, online := s.GetConnection("auth0|nobody")
	assert.False(t, online)
}

func TestOrNop(t *testing.T) {
	assert.IsType(t, NopNotifier{}, OrNop(nil))

	s := NewSocketServer()
	assert.Same(t, s, OrNop(s))
}

func TestPlayerRoom(t *testing.T) {
	assert.Equal(t, "player:google-oauth2|1", string(PlayerRoom("google-oauth2|1")))
}

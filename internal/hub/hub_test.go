package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	h := NewHub()

	watcher := make(Client, 4)
	other := make(Client, 4)
	h.Subscribe(42, watcher)
	h.Subscribe(99, other)

	h.Broadcast(42, Event{Type: "participant_joined", Payload: map[string]uint{"game_id": 42}})

	require.Len(t, watcher, 1)
	assert.Len(t, other, 0, "events must not leak to watchers of other games")

	var got Event
	require.NoError(t, json.Unmarshal(<-watcher, &got))
	assert.Equal(t, "participant_joined", got.Type)
}

func TestHubUnsubscribeClosesClient(t *testing.T) {
	h := NewHub()

	watcher := make(Client, 1)
	h.Subscribe(42, watcher)
	h.Unsubscribe(42, watcher)

	_, open := <-watcher
	assert.False(t, open, "unsubscribe should close the client channel")

	// Broadcasting to an empty game is a no-op.
	h.Broadcast(42, Event{Type: "game_resolved"})
}

func TestHubSlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()

	slow := make(Client) // unbuffered, nobody reading
	h.Subscribe(7, slow)

	// Returns immediately because the send is non-blocking; a blocking send
	// would hang the test.
	h.Broadcast(7, Event{Type: "proof_submitted"})

	assert.Len(t, slow, 0)
}

package service

import (
	"testing"

	"github.com/scrollverse/metalbridge/common"
	"github.com/stretchr/testify/assert"
)

func TestPubsubPublishSubscribe(t *testing.T) {
	ps := NewPubsub()

	ch := make(chan common.RegistryEvent, 1)
	subID, err := ps.Subscribe("test_topic", ch)
	assert.NoError(t, err)

	ps.Publish("test_topic", common.RegistryEvent{Type: "test_event"})
	event := <-ch
	assert.Equal(t, "test_event", event.Type)

	// publishing on an unrelated topic is invisible to this subscriber
	ps.Publish("other_topic", common.RegistryEvent{Type: "other_event"})
	assert.Empty(t, ch)

	ps.Unsubscribe(subID, "test_topic")
	// the subscriber channel is closed on unsubscribe
	_, open := <-ch
	assert.False(t, open)
}

func TestPubsubMultipleSubscribers(t *testing.T) {
	ps := NewPubsub()

	first := make(chan common.RegistryEvent, 1)
	second := make(chan common.RegistryEvent, 1)
	_, err := ps.Subscribe("test_topic", first)
	assert.NoError(t, err)
	_, err = ps.Subscribe("test_topic", second)
	assert.NoError(t, err)

	ps.Publish("test_topic", common.RegistryEvent{Type: "test_event"})
	assert.Equal(t, "test_event", (<-first).Type)
	assert.Equal(t, "test_event", (<-second).Type)
}

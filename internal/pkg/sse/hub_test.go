package sse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("p1")
	defer cleanup()

	hub.Publish("p1", Event{UserID: "p1", Event: "notification", Data: "hello"})

	event := <-ch
	assert.Equal(t, "notification", event.Event)
	assert.Equal(t, "hello", event.Data)
}

func TestPublishToOtherUserNotReceived(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("p1")
	defer cleanup()

	hub.Publish("p2", Event{UserID: "p2", Event: "notification"})

	select {
	case e := <-ch:
		t.Fatalf("unexpected event received: %+v", e)
	default:
	}
}

func TestMultipleSubscribersSameUser(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("p1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("p1")
	defer cleanup2()

	require.Equal(t, 2, hub.SubscriberCount("p1"))

	hub.Publish("p1", Event{UserID: "p1", Event: "notification"})

	assert.Equal(t, "notification", (<-ch1).Event)
	assert.Equal(t, "notification", (<-ch2).Event)
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("p1")
	require.Equal(t, 1, hub.SubscriberCount("p1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("p1"))
}

func TestPublishFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("p1")
	defer cleanup()

	// Channel capacity is 10; publishing past it must not block.
	for i := 0; i < 20; i++ {
		hub.Publish("p1", Event{UserID: "p1", Event: "notification"})
	}
}

func TestPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("p1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("p2")
	defer cleanup2()

	hub.PublishToMany([]string{"p1", "p2"}, Event{Event: "notification"})

	e1 := <-ch1
	e2 := <-ch2
	assert.Equal(t, "p1", e1.UserID)
	assert.Equal(t, "p2", e2.UserID)
}

func TestConcurrentSubscribePublish(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cleanup := hub.Subscribe("p1")
			hub.Publish("p1", Event{UserID: "p1", Event: "notification"})
			select {
			case <-ch:
			default:
			}
			cleanup()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.SubscriberCount("p1"))
}

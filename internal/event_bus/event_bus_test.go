package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishAndSubscribe(t *testing.T) {
	bus := NewEventBus()
	var received []Event
	bus.Subscribe("test.event", func(e Event) error {
		received = append(received, e)
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), "test.event", "payload"))

	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "payload", received[0].Data)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	unsubscribe := bus.Subscribe("test.event", func(e Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", nil)))
	unsubscribe()
	require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", nil)))

	assert.Equal(t, 1, calls)
}

func TestEventBus_HandlerErrorsDoNotStopDispatch(t *testing.T) {
	bus := NewEventBus()
	delivered := 0
	bus.Subscribe("test.event", func(e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe("test.event", func(e Event) error {
		delivered++
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), "test.event", nil))

	assert.Error(t, err)
	assert.Equal(t, 1, delivered, "remaining handlers still run")
}

func TestEventBus_RecoversFromHandlerPanic(t *testing.T) {
	bus := NewEventBus()
	bus.Subscribe("test.event", func(e Event) error {
		panic("handler bug")
	})

	err := bus.Publish(NewEvent(context.Background(), "test.event", nil))

	assert.Error(t, err)
}

func TestEventBus_CancelledContextSkipsHandlers(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.Subscribe("test.event", func(e Event) error {
		calls++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := bus.Publish(NewEvent(ctx, "test.event", nil))

	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestEventBus_NoSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NoError(t, bus.Publish(NewEvent(context.Background(), "nobody.listens", nil)))
}

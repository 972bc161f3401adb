package eventbus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/internal/platform/eventbus"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

const testEventType events.EventType = "test.Happened"

type testEvent struct {
	events.BaseEvent
}

func TestPublish_DeliversToAllHandlers(t *testing.T) {
	bus := eventbus.New(nil)

	var got []string
	require.NoError(t, bus.Subscribe(testEventType, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		got = append(got, "first:"+e.AggregateID())
		return errors.New("boom")
	})))
	require.NoError(t, bus.Subscribe(testEventType, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		got = append(got, "second:"+e.AggregateID())
		return nil
	})))

	err := bus.Publish(context.Background(),
		testEvent{BaseEvent: events.NewBaseEvent(testEventType, "a")},
		testEvent{BaseEvent: events.NewBaseEvent("other.Type", "b")},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"first:a", "second:a"}, got)
}

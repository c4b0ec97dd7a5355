package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securedb/internal/events"
)

func TestBus_RegistrationOrder(t *testing.T) {
	var b events.Bus
	var got []string

	b.Subscribe(events.Saved, func(events.Event) { got = append(got, "first") })
	b.Subscribe(events.Saved, func(events.Event) { got = append(got, "second") })
	b.Subscribe(events.Error, func(events.Event) { got = append(got, "error") })
	b.Subscribe(events.Saved, func(events.Event) { got = append(got, "third") })

	b.Publish(events.Event{Kind: events.Saved, Location: "/tmp/db"})
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestBus_PayloadDelivered(t *testing.T) {
	var b events.Bus
	var got events.Event
	b.Subscribe(events.RecordAdded, func(e events.Event) { got = e })

	b.Publish(events.Event{Kind: events.RecordAdded, Key: "k", Value: 2.0})
	assert.Equal(t, "k", got.Key)
	assert.Equal(t, 2.0, got.Value)

	boom := errors.New("boom")
	b.Subscribe(events.Error, func(e events.Event) { got = e })
	b.Publish(events.Event{Kind: events.Error, Err: boom})
	assert.ErrorIs(t, got.Err, boom)
}

func TestBus_NoSubscribers(t *testing.T) {
	var b events.Bus
	require.NotPanics(t, func() { b.Publish(events.Event{Kind: events.DatabaseCleared}) })
	assert.Zero(t, b.Count(events.DatabaseCleared))
}

func TestBus_SubscribeAll(t *testing.T) {
	var b events.Bus
	var kinds []events.Kind
	b.SubscribeAll(func(e events.Event) { kinds = append(kinds, e.Kind) })

	for _, k := range events.Kinds {
		b.Publish(events.Event{Kind: k})
	}
	assert.Equal(t, events.Kinds, kinds)
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	var b events.Bus
	calls := 0
	b.Subscribe(events.Saved, func(events.Event) {
		calls++
		b.Subscribe(events.Saved, func(events.Event) { calls += 10 })
	})

	b.Publish(events.Event{Kind: events.Saved})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, b.Count(events.Saved))
}

func TestBus_NilHandlerIgnored(t *testing.T) {
	var b events.Bus
	b.Subscribe(events.Saved, nil)
	assert.Zero(t, b.Count(events.Saved))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "saved", events.Saved.String())
	assert.Equal(t, "error", events.Error.String())
	assert.Equal(t, "recordAdded", events.RecordAdded.String())
	assert.Equal(t, "recordDeleted", events.RecordDeleted.String())
	assert.Equal(t, "databaseCleared", events.DatabaseCleared.String())
	assert.Equal(t, "Kind(42)", events.Kind(42).String())
}

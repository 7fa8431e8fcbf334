package redispub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidegate/charcore/internal/adapters/redispub"
	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/events"
	"github.com/tidegate/charcore/internal/testutils"
)

// Requires a local Redis; skipped automatically when none is reachable.
func TestPublisher_LiveRoundTrip(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, "integration-channel")
	t.Cleanup(func() { _ = sub.Close() })

	// Wait for the subscription to be established before publishing
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := redispub.NewPublisher(&redispub.PublisherConfig{
		Client:  client,
		Channel: "integration-channel",
	})

	err = publisher.HandleEvent(&events.AttributeChangedEvent{
		BaseEvent: events.BaseEvent{
			Type:        events.EventTypeAttributeChanged,
			CharacterID: "char-live",
		},
		Attribute: attribute.MaxHealth,
		OldValue:  100,
		NewValue:  150,
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var change redispub.ChangeMessage
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &change))
		assert.Equal(t, "char-live", change.CharacterID)
		assert.Equal(t, string(attribute.MaxHealth), change.Attribute)
		assert.Equal(t, 150.0, change.NewValue)
	case <-ctx.Done():
		t.Fatal("timed out waiting for published change")
	}
}

package redispub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tidegate/charcore/internal/events"
)

// DefaultChannel is the pub/sub channel attribute changes publish to when
// none is configured
const DefaultChannel = "charcore:attribute-changes"

// ChangeMessage is the wire form of one committed attribute change
type ChangeMessage struct {
	CharacterID string  `json:"character_id"`
	Attribute   string  `json:"attribute"`
	OldValue    float64 `json:"old_value"`
	NewValue    float64 `json:"new_value"`
}

// Publisher forwards committed attribute changes to a Redis pub/sub channel
// so non-authoritative instances can observe them. It subscribes to the
// event bus as a change listener; the core itself only emits.
type Publisher struct {
	client  redis.UniversalClient
	channel string
}

// PublisherConfig holds configuration for a publisher
type PublisherConfig struct {
	Client  redis.UniversalClient
	Channel string
}

// NewPublisher creates a publisher on the given channel
func NewPublisher(cfg *PublisherConfig) *Publisher {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Publisher{
		client:  cfg.Client,
		channel: channel,
	}
}

// ID implements events.EventListener
func (p *Publisher) ID() string { return "redis-attribute-publisher" }

// Priority implements events.EventListener; replication runs after local
// observers
func (p *Publisher) Priority() int { return 1000 }

// HandleEvent publishes attribute change events, ignoring everything else
func (p *Publisher) HandleEvent(e events.Event) error {
	changed, ok := e.(*events.AttributeChangedEvent)
	if !ok {
		return nil
	}

	payload, err := json.Marshal(ChangeMessage{
		CharacterID: changed.CharacterID,
		Attribute:   string(changed.Attribute),
		OldValue:    changed.OldValue,
		NewValue:    changed.NewValue,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal change message: %w", err)
	}

	if err := p.client.Publish(context.Background(), p.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("failed to publish change for %s: %w", changed.CharacterID, err)
	}
	return nil
}

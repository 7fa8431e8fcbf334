package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tidegate/charcore/internal/adapters/redispub"
	"github.com/tidegate/charcore/internal/config"
	"github.com/tidegate/charcore/internal/domain/ability"
	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/domain/character"
	"github.com/tidegate/charcore/internal/effects"
	"github.com/tidegate/charcore/internal/events"
	"github.com/tidegate/charcore/internal/services/grant"
	"github.com/tidegate/charcore/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeAttributeChanged, &changeLogger{})
	bus.Subscribe(events.EventTypeAbilityGranted, &grantLogger{})

	// Wire the replication publisher when Redis is configured
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			log.Printf("Redis unreachable, running without replication publisher: %v", pingErr)
		} else {
			log.Printf("Publishing attribute changes to Redis at %s", cfg.Redis.Addr)
			bus.Subscribe(events.EventTypeAttributeChanged, redispub.NewPublisher(&redispub.PublisherConfig{
				Client:  client,
				Channel: cfg.Redis.Channel,
			}))
			defer func() { _ = client.Close() }()
		}
	}

	gen := uuid.NewGoogleUUIDGenerator()
	starting := []*ability.Class{
		{Key: "fireball", Name: "Fireball", DefaultInput: ability.InputAbility1},
		nil, // intentionally empty content slot
		{Key: "blink", Name: "Blink", DefaultInput: ability.InputAbility2},
	}

	hero := character.New(&character.Config{
		ID:                gen.New(),
		Name:              "Hero",
		Authority:         true,
		Defaults:          cfg.Simulation.Defaults,
		StartingAbilities: starting,
	})
	replica := character.New(&character.Config{
		ID:                hero.ID,
		Name:              hero.Name,
		Authority:         false,
		Defaults:          cfg.Simulation.Defaults,
		StartingAbilities: starting,
	})

	grants := grant.NewService(&grant.ServiceConfig{
		AbilitySystem: &loggingAbilitySystem{gen: gen},
		EventBus:      bus,
	})
	if err := grants.ProvisionStartingAbilities(ctx, hero); err != nil {
		log.Fatalf("Failed to provision %s: %v", hero.Name, err)
	}
	if err := grants.ProvisionStartingAbilities(ctx, replica); err != nil {
		log.Fatalf("Failed to provision replica: %v", err)
	}
	log.Printf("%s granted %d abilities (replica granted %d)", hero.Name, hero.Grants.Size(), replica.Grants.Size())

	processor := effects.NewProcessor(&effects.ProcessorConfig{
		CharacterID: hero.ID,
		Attributes:  hero.Attributes,
		EventBus:    bus,
	})
	dispatcher := effects.NewDispatcher(&effects.DispatcherConfig{QueueBuffer: 64})
	queue := dispatcher.Register(hero.ID, processor)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if runErr := dispatcher.Run(runCtx); runErr != nil && runCtx.Err() == nil {
			log.Printf("Dispatcher stopped: %v", runErr)
		}
	}()

	script := []effects.Effect{
		{Attribute: attribute.MaxHealth, Operation: effects.OperationDelta, Value: 50},
		{Attribute: attribute.Health, Operation: effects.OperationDelta, Value: -30},
		{Attribute: attribute.ManaRegen, Operation: effects.OperationSet, Value: 4},
		{Attribute: attribute.ID("Armor"), Operation: effects.OperationDelta, Value: 10}, // rejected, logged, non-fatal
		{Attribute: attribute.Stamina, Operation: effects.OperationDelta, Value: -65},
	}
	for _, effect := range script {
		if err := dispatcher.Submit(ctx, hero.ID, effect); err != nil {
			log.Printf("Failed to submit effect: %v", err)
		}
	}

	regen := effects.NewRegenDriver(&effects.RegenDriverConfig{
		Attributes: hero.Attributes,
		Sink:       queue,
	})

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	for ticks := 0; ticks < 6; ticks++ {
		select {
		case now := <-ticker.C:
			if err := regen.Tick(ctx, now.Sub(last)); err != nil {
				log.Printf("Regen tick failed: %v", err)
			}
			last = now
		case <-ctx.Done():
			ticks = 6
		}
	}

	cancel()
	<-done

	log.Printf("Final state for %s:", hero.Name)
	for _, id := range attribute.IDs {
		v, err := hero.Attributes.Value(id)
		if err != nil {
			continue
		}
		log.Printf("  %-13s %.1f", id, v)
	}
}

// changeLogger prints committed attribute changes
type changeLogger struct{}

func (l *changeLogger) ID() string    { return "change-logger" }
func (l *changeLogger) Priority() int { return 100 }
func (l *changeLogger) HandleEvent(e events.Event) error {
	if changed, ok := e.(*events.AttributeChangedEvent); ok {
		log.Printf("Attribute %s: %.1f -> %.1f", changed.Attribute, changed.OldValue, changed.NewValue)
	}
	return nil
}

// grantLogger prints ability grants
type grantLogger struct{}

func (l *grantLogger) ID() string    { return "grant-logger" }
func (l *grantLogger) Priority() int { return 100 }
func (l *grantLogger) HandleEvent(e events.Event) error {
	if granted, ok := e.(*events.AbilityGrantedEvent); ok {
		log.Printf("Granted %s on input %s (handle %s)", granted.AbilityClass, granted.InputID, granted.Handle)
	}
	return nil
}

// loggingAbilitySystem is a stand-in ability-system collaborator that
// registers grants under generated handles
type loggingAbilitySystem struct {
	gen uuid.Generator
}

func (s *loggingAbilitySystem) GiveAbility(_ context.Context, spec *grant.AbilitySpec) (string, error) {
	handle := s.gen.New()
	log.Printf("AbilitySystem: registered %s for %s", spec.Class.Key, spec.SourceCharacterID)
	return handle, nil
}

func (s *loggingAbilitySystem) InitAbilityActorInfo(_ context.Context, info grant.ActorInfo) error {
	log.Printf("AbilitySystem: bound actor context owner=%s avatar=%s", info.OwnerID, info.AvatarID)
	return nil
}

func (s *loggingAbilitySystem) RefreshAbilityActorInfo(_ context.Context, characterID string) error {
	log.Printf("AbilitySystem: refreshed actor context for %s", characterID)
	return nil
}

package effects

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tidegate/charcore/internal/errors"
)

// Submitter accepts gameplay effects for asynchronous application
type Submitter interface {
	Submit(ctx context.Context, effect Effect) error
}

// CharacterQueue serializes effect delivery for one character. Hosts that
// deliver effects from multiple goroutines submit here; a single worker
// drains the queue, so two effects targeting the same group never
// interleave and the processor always reads a stable old maximum.
type CharacterQueue struct {
	characterID string
	processor   *Processor
	effects     chan Effect
}

// NewCharacterQueue creates a queue draining into the given processor
func NewCharacterQueue(characterID string, processor *Processor, buffer int) *CharacterQueue {
	if processor == nil {
		panic("processor is required")
	}

	return &CharacterQueue{
		characterID: characterID,
		processor:   processor,
		effects:     make(chan Effect, buffer),
	}
}

// Submit enqueues an effect in delivery order
func (q *CharacterQueue) Submit(ctx context.Context, effect Effect) error {
	select {
	case q.effects <- effect:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "effect submission abandoned")
	}
}

// Run drains the queue until the context is cancelled. Configuration errors
// from individual effects are absorbed and logged, never fatal to the loop.
func (q *CharacterQueue) Run(ctx context.Context) error {
	for {
		select {
		case effect := <-q.effects:
			if _, err := q.processor.Apply(effect); err != nil {
				log.Printf("CharacterQueue: dropped effect for %s: %v", q.characterID, err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Dispatcher owns one queue per character and drains them concurrently,
// one worker per character
type Dispatcher struct {
	mu     sync.RWMutex
	queues map[string]*CharacterQueue
	buffer int
}

// DispatcherConfig holds configuration for a dispatcher
type DispatcherConfig struct {
	// QueueBuffer is the per-character queue depth
	QueueBuffer int
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher(cfg *DispatcherConfig) *Dispatcher {
	buffer := 0
	if cfg != nil {
		buffer = cfg.QueueBuffer
	}

	return &Dispatcher{
		queues: make(map[string]*CharacterQueue),
		buffer: buffer,
	}
}

// Register creates the queue for a character. Registering the same character
// twice returns the existing queue.
func (d *Dispatcher) Register(characterID string, processor *Processor) *CharacterQueue {
	d.mu.Lock()
	defer d.mu.Unlock()

	if q, ok := d.queues[characterID]; ok {
		return q
	}

	q := NewCharacterQueue(characterID, processor, d.buffer)
	d.queues[characterID] = q
	return q
}

// Submit routes an effect to the character's queue
func (d *Dispatcher) Submit(ctx context.Context, characterID string, effect Effect) error {
	d.mu.RLock()
	q, ok := d.queues[characterID]
	d.mu.RUnlock()

	if !ok {
		return errors.NotFoundf("no effect queue for character %q", characterID)
	}
	return q.Submit(ctx, effect)
}

// Run drains every registered queue until the context is cancelled
func (d *Dispatcher) Run(ctx context.Context) error {
	d.mu.RLock()
	queues := make([]*CharacterQueue, 0, len(d.queues))
	for _, q := range d.queues {
		queues = append(queues, q)
	}
	d.mu.RUnlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, q := range queues {
		q := q
		g.Go(func() error {
			return q.Run(ctx)
		})
	}
	return g.Wait()
}

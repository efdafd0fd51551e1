package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one scheduling event.
type Event struct {
	// ID is the unique identifier for this event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type is the event type.
	Type string `json:"type"`

	// RunID is the associated scheduling run, if applicable.
	RunID string `json:"run_id,omitempty"`

	// TaskID is the associated task, if applicable.
	TaskID string `json:"task_id,omitempty"`

	// Resource is the associated resource, if applicable.
	Resource string `json:"resource,omitempty"`

	// Message is a human-readable event message.
	Message string `json:"message"`

	// Data contains additional event-specific data.
	Data map[string]interface{} `json:"data,omitempty"`
}

// Event types published by the scheduler.
const (
	EventTypeRunStarted     = "run.started"
	EventTypeRunCompleted   = "run.completed"
	EventTypeTaskPlaced     = "task.placed"
	EventTypeTaskDropped    = "task.dropped"
	EventTypeTaskImpossible = "task.impossible"
	EventTypeProblemChanged = "problem.changed"
)

// EventSubscriber is a function that handles events.
type EventSubscriber func(event Event)

// EventPublisher delivers scheduling events to in-process subscribers,
// optionally on a background goroutine.
type EventPublisher struct {
	config      EventsConfig
	buffer      chan Event
	subscribers []EventSubscriber
	wg          sync.WaitGroup
	mu          sync.RWMutex
	cancel      context.CancelFunc
}

// NewEventPublisher creates a new event publisher with the given
// configuration. A disabled publisher accepts events and drops them.
func NewEventPublisher(cfg EventsConfig) (*EventPublisher, error) {
	ep := &EventPublisher{config: cfg}
	if !cfg.Enabled {
		return ep, nil
	}

	if cfg.EnableAsync {
		ctx, cancel := context.WithCancel(context.Background())
		ep.cancel = cancel
		ep.buffer = make(chan Event, cfg.BufferSize)
		ep.wg.Add(1)
		go ep.deliverLoop(ctx)
	}
	return ep, nil
}

// Subscribe registers a subscriber for all events.
func (ep *EventPublisher) Subscribe(sub EventSubscriber) {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	ep.subscribers = append(ep.subscribers, sub)
}

// Publish delivers an event to all subscribers. With async delivery the
// event is buffered; when the buffer is full the event is dropped rather
// than blocking the scheduler.
func (ep *EventPublisher) Publish(event Event) {
	if !ep.config.Enabled {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if ep.buffer != nil {
		select {
		case ep.buffer <- event:
		default:
		}
		return
	}
	ep.deliver(event)
}

func (ep *EventPublisher) deliverLoop(ctx context.Context) {
	defer ep.wg.Done()
	for {
		select {
		case event := <-ep.buffer:
			ep.deliver(event)
		case <-ctx.Done():
			// Drain what is left.
			for {
				select {
				case event := <-ep.buffer:
					ep.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (ep *EventPublisher) deliver(event Event) {
	ep.mu.RLock()
	subs := ep.subscribers
	ep.mu.RUnlock()
	for _, sub := range subs {
		sub(event)
	}
}

// Shutdown stops async delivery after draining buffered events.
func (ep *EventPublisher) Shutdown(ctx context.Context) error {
	if ep.cancel == nil {
		return nil
	}
	ep.cancel()
	done := make(chan struct{})
	go func() {
		ep.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

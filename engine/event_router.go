package engine

import (
	"wavebreaker/event"
)

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.Update()
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches queued events to registered handlers
//
// Single-threaded dispatch: all events are consumed and routed on the
// simulation tick before World.Update() runs. Handlers are invoked in
// registration order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Must be called once per tick, before World.Update()
func (r *EventRouter) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}

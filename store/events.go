package store

import "sort"

// EventType names a store notification.
type EventType string

const (
	ShapeAdded     EventType = "shape:added"
	ShapeRemoved   EventType = "shape:removed"
	ShapeUpdated   EventType = "shape:updated"
	ShapeReordered EventType = "shape:reordered"
	ShapeSelected  EventType = "shape:selected"
	ShapesCleared  EventType = "shape:cleared"
	GroupCreated   EventType = "group:created"
	GroupRemoved   EventType = "group:removed"
	GroupUpdated   EventType = "group:updated"
	// RenderRequired is the only reliable repaint signal. It is emitted last
	// by every mutating operation.
	RenderRequired EventType = "render:required"
)

// Event is delivered to subscribers. ShapeID and GroupID are 0 when the
// event does not concern a single shape or group.
type Event struct {
	Type    EventType
	ShapeID int
	GroupID int
}

// Listener receives events synchronously on the mutating goroutine.
type Listener func(Event)

// EventBus is a synchronous publish/subscribe channel.
type EventBus struct {
	nextID    int
	listeners map[int]subscription
}

type subscription struct {
	typ EventType
	fn  Listener
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{listeners: make(map[int]subscription)}
}

// Subscribe registers fn for events of type typ, or for every event when
// typ is "". The returned function removes the subscription.
func (b *EventBus) Subscribe(typ EventType, fn Listener) func() {
	b.nextID++
	id := b.nextID
	b.listeners[id] = subscription{typ: typ, fn: fn}
	return func() { delete(b.listeners, id) }
}

// Emit delivers e to matching listeners in subscription order.
func (b *EventBus) Emit(e Event) {
	ids := make([]int, 0, len(b.listeners))
	for id, sub := range b.listeners {
		if sub.typ == "" || sub.typ == e.Type {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	for _, id := range ids {
		if sub, ok := b.listeners[id]; ok {
			sub.fn(e)
		}
	}
}

// Package events routes global pointer events to listeners that hold a
// subscription for the duration of an interaction
package events

// HandlerFunc processes a single event
// Called synchronously on the dispatching goroutine
type HandlerFunc func(ev Event)

// Subscription is one registered listener
// Release removes it from the bus; further calls are no-ops
type Subscription struct {
	bus     *Bus
	typ     EventType
	handler HandlerFunc
	active  bool
}

// Release deregisters the listener
func (s *Subscription) Release() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.bus.remove(s)
}

// Active reports whether the listener is still registered
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Bus dispatches events to subscribed listeners
//
// Architecture:
//   - Single-threaded: Subscribe, Release and Dispatch run on the game loop goroutine
//   - Multiple listeners can register for the same event type
//   - Listeners are invoked in registration order
//   - A listener may release itself or others while handling an event
type Bus struct {
	subs [eventTypeCount][]*Subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for events of type t
func (b *Bus) Subscribe(t EventType, fn HandlerFunc) *Subscription {
	s := &Subscription{bus: b, typ: t, handler: fn, active: true}
	b.subs[t] = append(b.subs[t], s)
	return s
}

// Dispatch delivers ev to the listeners registered when the call began
// Listeners released by an earlier listener during the same dispatch are skipped
func (b *Bus) Dispatch(ev Event) {
	if ev.Type < 0 || ev.Type >= eventTypeCount {
		return
	}
	subs := b.subs[ev.Type]
	if len(subs) == 0 {
		return
	}

	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if s.active {
			s.handler(ev)
		}
	}
}

// Count returns the number of listeners registered for t
func (b *Bus) Count(t EventType) int {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(b.subs[t])
}

func (b *Bus) remove(s *Subscription) {
	list := b.subs[s.typ]
	for i, cur := range list {
		if cur == s {
			b.subs[s.typ] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

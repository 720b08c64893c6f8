package events

import (
	"testing"

	"github.com/lixenwraith/robot-snack/geom"
)

func TestDispatchToSubscribers(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(EventDrop, func(Event) { order = append(order, "first") })
	bus.Subscribe(EventDrop, func(Event) { order = append(order, "second") })

	var moved geom.Point
	bus.Subscribe(EventPointerMove, func(ev Event) { moved = ev.Point })

	bus.Dispatch(Event{Type: EventDrop})
	bus.Dispatch(Event{Type: EventPointerMove, Point: geom.Point{X: 4, Y: 9}})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected registration order, got %v", order)
	}
	if moved != (geom.Point{X: 4, Y: 9}) {
		t.Errorf("Expected pointer {4 9}, got %v", moved)
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	// Must not panic
	bus.Dispatch(Event{Type: EventDrop})
	bus.Dispatch(Event{Type: EventType(99)})
}

func TestReleaseIsIdempotent(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub := bus.Subscribe(EventDrop, func(Event) { calls++ })

	if bus.Count(EventDrop) != 1 || !sub.Active() {
		t.Fatalf("Expected one active subscription")
	}

	sub.Release()
	sub.Release()

	if bus.Count(EventDrop) != 0 {
		t.Errorf("Expected no subscriptions after release, got %d", bus.Count(EventDrop))
	}
	if sub.Active() {
		t.Error("Expected subscription inactive after release")
	}

	bus.Dispatch(Event{Type: EventDrop})
	if calls != 0 {
		t.Errorf("Released handler was called %d times", calls)
	}

	var nilSub *Subscription
	nilSub.Release()
}

// TestReleaseDuringDispatch verifies a listener can release others mid-dispatch
func TestReleaseDuringDispatch(t *testing.T) {
	bus := NewBus()

	var second *Subscription
	secondCalls := 0
	first := bus.Subscribe(EventDrop, func(Event) {
		second.Release()
	})
	second = bus.Subscribe(EventDrop, func(Event) { secondCalls++ })

	bus.Dispatch(Event{Type: EventDrop})

	if secondCalls != 0 {
		t.Errorf("Expected released listener to be skipped, called %d times", secondCalls)
	}
	if bus.Count(EventDrop) != 1 {
		t.Errorf("Expected one remaining listener, got %d", bus.Count(EventDrop))
	}

	first.Release()
	if bus.Count(EventDrop) != 0 {
		t.Errorf("Expected empty bus, got %d", bus.Count(EventDrop))
	}
}

// TestSubscribeDuringDispatch verifies new listeners wait for the next event
func TestSubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	lateCalls := 0
	bus.Subscribe(EventDrop, func(Event) {
		bus.Subscribe(EventDrop, func(Event) { lateCalls++ })
	})

	bus.Dispatch(Event{Type: EventDrop})
	if lateCalls != 0 {
		t.Errorf("Expected late listener to miss the current event, called %d times", lateCalls)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventPointerMove, "PointerMove"},
		{EventDrop, "Drop"},
		{EventType(-1), "Unknown"},
		{eventTypeCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

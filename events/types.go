package events

import (
	"github.com/lixenwraith/robot-snack/geom"
)

// EventType represents the type of a global pointer event
type EventType int

const (
	// EventPointerMove reports the pointer position
	// Trigger: any mouse event with a changed position
	// Consumer: held item tracking | Payload: Point
	EventPointerMove EventType = iota

	// EventDrop signals a global activation that did not land on a food slot
	// Trigger: primary button press outside every slot
	// Consumer: drop resolution | Payload: none, the last known pointer is used
	EventDrop

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventPointerMove: "PointerMove",
	EventDrop:        "Drop",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// Event is a single dispatched input event
type Event struct {
	Type  EventType
	Point geom.Point
}

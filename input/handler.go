// Package input translates tcell events into game actions
package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/robot-snack/events"
	"github.com/lixenwraith/robot-snack/geom"
)

// Picker is the target-phase receiver for presses that land on a food slot
type Picker interface {
	PickUp(slot int, at geom.Point) bool
}

// SlotLocator maps a screen position to a food slot
type SlotLocator interface {
	SlotAt(p geom.Point) (int, bool)
}

// SoundToggler flips sound on and off
type SoundToggler interface {
	Toggle() bool
}

// InputHandler processes user input events
//
// A primary button press is routed in two phases, like a DOM click:
//   - target phase: a press on a food slot is a pick-up and stops there
//   - global phase: any other press is dispatched as EventDrop
//
// Mouse motion is always dispatched as EventPointerMove; the bus only
// delivers it while something listens.
type InputHandler struct {
	bus     *events.Bus
	picker  Picker
	slots   SlotLocator
	sound   SoundToggler
	resized func()

	pointer     geom.Point
	havePointer bool
	buttonDown  bool
}

// NewInputHandler creates a new input handler
// sound and resized may be nil
func NewInputHandler(bus *events.Bus, picker Picker, slots SlotLocator, sound SoundToggler, resized func()) *InputHandler {
	return &InputHandler{
		bus:     bus,
		picker:  picker,
		slots:   slots,
		sound:   sound,
		resized: resized,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		if h.resized != nil {
			h.resized()
		}
	}
	return true
}

// Pointer returns the last known pointer position
func (h *InputHandler) Pointer() (geom.Point, bool) {
	return h.pointer, h.havePointer
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyCtrlS:
		if h.sound != nil {
			on := h.sound.Toggle()
			log.Printf("input: sound enabled=%v", on)
		}
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}
	return true
}

// handleMouseEvent tracks the pointer and turns press edges into pick-ups or drops
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geom.Point{X: x, Y: y}

	if !h.havePointer || p != h.pointer {
		h.pointer = p
		h.havePointer = true
		h.bus.Dispatch(events.Event{Type: events.EventPointerMove, Point: p})
	}

	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !h.buttonDown
	h.buttonDown = down
	if !pressed {
		return
	}

	// Target phase: the press belongs to the slot and never reaches the global drop
	if slot, ok := h.slots.SlotAt(p); ok {
		h.picker.PickUp(slot, p)
		return
	}

	// Global phase
	h.bus.Dispatch(events.Event{Type: events.EventDrop, Point: p})
}

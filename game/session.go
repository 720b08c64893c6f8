// Package game implements the pick-up and drop interaction and its outcomes
package game

import (
	"errors"
	"log"

	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/lixenwraith/robot-snack/events"
	"github.com/lixenwraith/robot-snack/geom"
	"github.com/lixenwraith/robot-snack/pool"
)

// TargetLocator reports the robot's current on-screen bounds
// ok is false until the target has been laid out
type TargetLocator interface {
	TargetBounds() (r geom.Rect, ok bool)
}

// Feedback receives interaction results, e.g. for sound
type Feedback interface {
	PickedUp(it catalog.Item)
	Dropped(out Outcome)
}

type noFeedback struct{}

func (noFeedback) PickedUp(catalog.Item) {}
func (noFeedback) Dropped(Outcome)       {}

// Config wires a session to its collaborators
type Config struct {
	Catalog  *catalog.Catalog
	Rand     pool.Rand
	Target   TargetLocator
	Bus      *events.Bus
	Feedback Feedback // optional
}

// Session owns the offer, the interaction state and the last outcome
// All methods run on the game loop goroutine
type Session struct {
	pool     *pool.Pool
	target   TargetLocator
	bus      *events.Bus
	feedback Feedback

	offer   pool.Offer
	state   State
	message string
	last    *Outcome
	tally   Tally

	// Held only while in Holding
	moveSub *events.Subscription
	dropSub *events.Subscription

	closed bool
}

// NewSession deals the first offer and starts Idle
func NewSession(cfg Config) (*Session, error) {
	switch {
	case cfg.Catalog == nil:
		return nil, errors.New("session requires a catalog")
	case cfg.Rand == nil:
		return nil, errors.New("session requires a random source")
	case cfg.Target == nil:
		return nil, errors.New("session requires a target locator")
	case cfg.Bus == nil:
		return nil, errors.New("session requires an event bus")
	}

	fb := cfg.Feedback
	if fb == nil {
		fb = noFeedback{}
	}

	s := &Session{
		pool:     pool.NewPool(cfg.Catalog, cfg.Rand),
		target:   cfg.Target,
		bus:      cfg.Bus,
		feedback: fb,
		state:    Idle{},
	}
	s.offer = s.pool.Deal()
	log.Printf("session: initial offer %s", offerNames(s.offer))
	return s, nil
}

// PickUp picks the item in slot at pointer position at
// Returns false and changes nothing while holding, after Close, or for a bad slot
func (s *Session) PickUp(slot int, at geom.Point) bool {
	if s.closed {
		return false
	}
	if _, holding := s.state.(Holding); holding {
		return false
	}
	if slot < 0 || slot >= pool.OfferSize {
		return false
	}

	it := s.offer[slot]
	s.state = Holding{Item: it, Pointer: at}
	s.acquireListeners()

	log.Printf("session: picked up %s at %d,%d", it.Name, at.X, at.Y)
	s.feedback.PickedUp(it)
	return true
}

// acquireListeners registers the pointer-move and drop listeners for the Holding lifetime
func (s *Session) acquireListeners() {
	s.releaseListeners()
	s.moveSub = s.bus.Subscribe(events.EventPointerMove, s.onPointerMove)
	s.dropSub = s.bus.Subscribe(events.EventDrop, s.onDrop)
}

func (s *Session) releaseListeners() {
	s.moveSub.Release()
	s.dropSub.Release()
	s.moveSub = nil
	s.dropSub = nil
}

func (s *Session) onPointerMove(ev events.Event) {
	h, ok := s.state.(Holding)
	if !ok {
		return
	}
	h.Pointer = ev.Point
	s.state = h
}

func (s *Session) onDrop(events.Event) {
	h, ok := s.state.(Holding)
	if !ok {
		return
	}

	out := s.resolve(h)

	s.message = out.Message
	s.last = &out
	s.state = Idle{}
	s.releaseListeners()

	s.feedback.Dropped(out)
}

// resolve hit-tests the drop and applies the replacement on a hit
func (s *Session) resolve(h Holding) Outcome {
	bounds, ready := s.target.TargetBounds()
	out := Outcome{Item: h.Item, Pointer: h.Pointer}

	if !geom.HitTest(bounds, ready, h.Pointer) {
		out.Message = MessageMissed
		out.Replacement.Slot = -1
		s.tally.Missed++
		log.Printf("session: %s dropped at %d,%d outside target (ready=%v)", h.Item.Name, h.Pointer.X, h.Pointer.Y, ready)
		return out
	}

	out.Hit = true
	out.Message = OutcomeMessage(h.Item)
	if h.Item.IsBeneficial {
		s.tally.Good++
	} else {
		s.tally.Bad++
	}

	s.offer, out.Replacement = s.pool.Replace(s.offer, h.Item.ID)
	if out.Replacement.Reshuffled {
		log.Printf("session: fed %s, catalog exhausted, redealt %s", h.Item.Name, offerNames(s.offer))
	} else {
		log.Printf("session: fed %s, slot %d now %s", h.Item.Name, out.Replacement.Slot, out.Replacement.Item.Name)
	}
	return out
}

// Close releases any listeners still held; safe to call more than once
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.releaseListeners()
}

// State returns the current interaction state
func (s *Session) State() State {
	return s.state
}

// Holding returns the held item state, if any
func (s *Session) Holding() (Holding, bool) {
	h, ok := s.state.(Holding)
	return h, ok
}

// Offer returns the items currently presented
func (s *Session) Offer() pool.Offer {
	return s.offer
}

// Message returns the last drop message, empty before the first drop
func (s *Session) Message() string {
	return s.message
}

// LastOutcome returns the most recent drop result
func (s *Session) LastOutcome() (Outcome, bool) {
	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}

// Instructions returns the hint for the current state
func (s *Session) Instructions() string {
	if _, holding := s.state.(Holding); holding {
		return InstructionsHolding
	}
	return InstructionsIdle
}

// Tally returns drop counts so far
func (s *Session) Tally() Tally {
	return s.tally
}

func offerNames(o pool.Offer) string {
	out := ""
	for i, it := range o {
		if i > 0 {
			out += ", "
		}
		out += it.Name
	}
	return "[" + out + "]"
}

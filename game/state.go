package game

import (
	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/lixenwraith/robot-snack/geom"
	"github.com/lixenwraith/robot-snack/pool"
)

// State is the interaction state: Idle or Holding
type State interface {
	isState()
}

// Idle means no item is held
type Idle struct{}

// Holding carries the picked item and the last known pointer position
type Holding struct {
	Item    catalog.Item
	Pointer geom.Point
}

func (Idle) isState()    {}
func (Holding) isState() {}

const (
	InstructionsIdle    = "Click on a food to select it and drag it to the robot."
	InstructionsHolding = "Click anywhere to drop the food!"

	MessageMissed = "Oh no, you dropped the food!"
)

// Outcome is the result of one drop
type Outcome struct {
	Hit         bool
	Item        catalog.Item
	Pointer     geom.Point
	Message     string
	Replacement pool.Replacement
}

// OutcomeMessage formats the message for a drop that landed on the robot
func OutcomeMessage(it catalog.Item) string {
	if it.IsBeneficial {
		return it.Name + " is good for the body!"
	}
	return it.Name + " is not good for the body!"
}

// Tally counts drop results over a session
type Tally struct {
	Good   int
	Bad    int
	Missed int
}

// Drops returns the total number of drops
func (t Tally) Drops() int {
	return t.Good + t.Bad + t.Missed
}

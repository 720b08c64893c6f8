package render

import (
	"github.com/lixenwraith/robot-snack/geom"
	"github.com/lixenwraith/robot-snack/pool"
)

const (
	RobotWidth  = 20
	RobotHeight = 9
	SlotWidth   = 14
	SlotHeight  = 4
	SlotGap     = 3

	titleRow = 0
	robotTop = 2
)

// Layout places the robot, food slots and text rows for a screen size
// It is the live source of the robot's bounds for drop hit-testing
type Layout struct {
	width, height int
	ready         bool

	Robot           geom.Rect
	Slots           [pool.OfferSize]geom.Rect
	TitleRow        int
	MessageRow      int
	InstructionsRow int
	StatusRow       int
}

// NewLayout returns a layout that is not ready until the first Resize
func NewLayout() *Layout {
	return &Layout{}
}

// Resize recomputes every region for a width x height screen
func (l *Layout) Resize(width, height int) {
	l.width, l.height = width, height
	if width <= 0 || height <= 0 {
		l.ready = false
		return
	}

	l.TitleRow = titleRow
	l.Robot = geom.NewRect(centered(width, RobotWidth), robotTop, RobotWidth, RobotHeight)
	l.MessageRow = l.Robot.Bottom + 2

	slotTop := l.MessageRow + 2
	rowWidth := pool.OfferSize*SlotWidth + (pool.OfferSize-1)*SlotGap
	left := centered(width, rowWidth)
	for i := range l.Slots {
		l.Slots[i] = geom.NewRect(left+i*(SlotWidth+SlotGap), slotTop, SlotWidth, SlotHeight)
	}

	l.InstructionsRow = l.Slots[0].Bottom + 2
	l.StatusRow = height - 1
	l.ready = true
}

// Size returns the screen size of the last Resize
func (l *Layout) Size() (int, int) {
	return l.width, l.height
}

// Ready reports whether Resize has been called with a usable size
func (l *Layout) Ready() bool {
	return l.ready
}

// TargetBounds returns the robot rect
func (l *Layout) TargetBounds() (geom.Rect, bool) {
	return l.Robot, l.ready
}

// SlotAt returns the food slot under p, edges included
func (l *Layout) SlotAt(p geom.Point) (int, bool) {
	if !l.ready {
		return -1, false
	}
	for i, r := range l.Slots {
		if r.ContainsEdge(p) {
			return i, true
		}
	}
	return -1, false
}

// centered returns the left offset that centres span in total, never negative
func centered(total, span int) int {
	if span >= total {
		return 0
	}
	return (total - span) / 2
}

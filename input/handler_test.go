package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/lixenwraith/robot-snack/events"
	"github.com/lixenwraith/robot-snack/game"
	"github.com/lixenwraith/robot-snack/geom"
	"github.com/lixenwraith/robot-snack/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type countingToggle struct {
	on    bool
	calls int
}

func (c *countingToggle) Toggle() bool {
	c.calls++
	c.on = !c.on
	return c.on
}

type fixture struct {
	handler *InputHandler
	session *game.Session
	layout  *render.Layout
	bus     *events.Bus
	sound   *countingToggle
	resizes int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	f := &fixture{
		layout: render.NewLayout(),
		bus:    events.NewBus(),
		sound:  &countingToggle{on: true},
	}
	f.layout.Resize(80, 24)

	f.session, err = game.NewSession(game.Config{
		Catalog: c,
		Rand:    zeroRand{},
		Target:  f.layout,
		Bus:     f.bus,
	})
	require.NoError(t, err)
	t.Cleanup(f.session.Close)

	f.handler = NewInputHandler(f.bus, f.session, f.layout, f.sound, func() { f.resizes++ })
	return f
}

func (f *fixture) mouse(p geom.Point, buttons tcell.ButtonMask) {
	f.handler.HandleEvent(tcell.NewEventMouse(p.X, p.Y, buttons, tcell.ModNone))
}

func (f *fixture) click(p geom.Point) {
	f.mouse(p, tcell.Button1)
	f.mouse(p, tcell.ButtonNone)
}

// TestClickSlotThenRobot plays one full round through raw mouse events
func TestClickSlotThenRobot(t *testing.T) {
	f := newFixture(t)
	candy := f.session.Offer()[1]

	f.click(f.layout.Slots[1].Center())

	held, ok := f.session.Holding()
	require.True(t, ok, "expected pick-up from slot click")
	assert.Equal(t, candy.ID, held.Item.ID)
	assert.Empty(t, f.session.Message(), "pick-up press must not drop")

	target := f.layout.Robot.Center()
	f.mouse(target, tcell.ButtonNone)
	held, _ = f.session.Holding()
	assert.Equal(t, target, held.Pointer)

	f.click(target)

	assert.IsType(t, game.Idle{}, f.session.State())
	assert.Equal(t, game.OutcomeMessage(candy), f.session.Message())
	assert.Equal(t, -1, f.session.Offer().IndexOf(candy.ID))
	assert.Zero(t, f.bus.Count(events.EventDrop))
	assert.Zero(t, f.bus.Count(events.EventPointerMove))
}

func TestClickOutsideRobotMisses(t *testing.T) {
	f := newFixture(t)
	before := f.session.Offer()

	f.click(f.layout.Slots[0].Center())
	f.mouse(geom.Point{X: 2, Y: 2}, tcell.ButtonNone)
	f.click(geom.Point{X: 2, Y: 2})

	assert.Equal(t, game.MessageMissed, f.session.Message())
	assert.Equal(t, before, f.session.Offer())
}

// TestSlotClickWhileHoldingDoesNothing verifies a slot press neither swaps nor drops the held item
func TestSlotClickWhileHoldingDoesNothing(t *testing.T) {
	f := newFixture(t)
	first := f.session.Offer()[0]

	f.click(f.layout.Slots[0].Center())
	f.click(f.layout.Slots[2].Center())

	held, ok := f.session.Holding()
	require.True(t, ok)
	assert.Equal(t, first.ID, held.Item.ID)
	assert.Empty(t, f.session.Message())
	assert.Equal(t, 1, f.bus.Count(events.EventDrop))
}

func TestClickWhileIdleOutsideSlots(t *testing.T) {
	f := newFixture(t)

	f.click(f.layout.Robot.Center())

	assert.IsType(t, game.Idle{}, f.session.State())
	assert.Empty(t, f.session.Message())
}

// TestHeldButtonIsOnePress verifies dragging with the button down does not repeat the press
func TestHeldButtonIsOnePress(t *testing.T) {
	f := newFixture(t)

	f.mouse(f.layout.Slots[0].Center(), tcell.Button1)
	require.IsType(t, game.Holding{}, f.session.State())

	// Button still down while moving over the robot
	target := f.layout.Robot.Center()
	f.mouse(geom.Point{X: target.X - 1, Y: target.Y}, tcell.Button1)
	f.mouse(target, tcell.Button1)

	assert.IsType(t, game.Holding{}, f.session.State())
	assert.Empty(t, f.session.Message())

	f.mouse(target, tcell.ButtonNone)
	f.click(target)
	assert.IsType(t, game.Idle{}, f.session.State())
	assert.NotEqual(t, game.MessageMissed, f.session.Message())
}

func TestPointerTracking(t *testing.T) {
	f := newFixture(t)

	_, ok := f.handler.Pointer()
	assert.False(t, ok)

	f.mouse(geom.Point{X: 7, Y: 3}, tcell.ButtonNone)
	p, ok := f.handler.Pointer()
	assert.True(t, ok)
	assert.Equal(t, geom.Point{X: 7, Y: 3}, p)
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantRun  bool
		wantSnds int
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false, 0},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false, 0},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false, 0},
		{"other rune ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true, 0},
		{"ctrl-s toggles sound", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			assert.Equal(t, tt.wantRun, f.handler.HandleEvent(tt.ev))
			assert.Equal(t, tt.wantSnds, f.sound.calls)
		})
	}
}

func TestResizeCallsBack(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.handler.HandleEvent(tcell.NewEventResize(100, 30)))
	assert.Equal(t, 1, f.resizes)

	// Nil callbacks are allowed
	h := NewInputHandler(f.bus, f.session, f.layout, nil, nil)
	assert.True(t, h.HandleEvent(tcell.NewEventResize(100, 30)))
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
}

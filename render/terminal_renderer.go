package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/robot-snack/game"
	"github.com/lixenwraith/robot-snack/geom"
	"github.com/lixenwraith/robot-snack/pool"
)

const title = "Good for the Body"

var robotFace = []string{
	" .--------. ",
	" | [o][o] | ",
	" |   __   | ",
	" |  \\__/  | ",
	" '--------' ",
	"   /|  |\\   ",
	"    |__|    ",
}

// View is everything the renderer needs for one frame
type View struct {
	Offer        pool.Offer
	Held         game.Holding
	IsHolding    bool
	Message      string
	LastHit      bool
	LastGood     bool
	Instructions string
	Tally        game.Tally
	SoundOn      bool
}

// ViewFrom snapshots a session for drawing
func ViewFrom(s *game.Session, soundOn bool) View {
	v := View{
		Offer:        s.Offer(),
		Message:      s.Message(),
		Instructions: s.Instructions(),
		Tally:        s.Tally(),
		SoundOn:      soundOn,
	}
	v.Held, v.IsHolding = s.Holding()
	if out, ok := s.LastOutcome(); ok {
		v.LastHit = out.Hit
		v.LastGood = out.Item.IsBeneficial
	}
	return v
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	layout *Layout
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer drawing regions from layout
func NewTerminalRenderer(screen tcell.Screen, layout *Layout) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		layout: layout,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Resize re-reads the screen size into the layout
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.layout.Resize(w, h)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(v View) {
	if !r.layout.Ready() {
		r.Resize()
	}
	r.screen.Fill(' ', r.base)

	l := r.layout
	w, _ := l.Size()

	r.drawCentered(l.TitleRow, w, title, r.base.Foreground(RgbTitle).Bold(true))
	r.drawRobot(l.Robot)

	if v.Message != "" {
		r.drawCentered(l.MessageRow, w, v.Message, r.base.Foreground(MessageColor(v.LastHit, v.LastGood)).Bold(true))
	}

	for i, it := range v.Offer {
		empty := v.IsHolding && it.ID == v.Held.Item.ID
		r.drawSlot(l.Slots[i], it.ImageRef, it.Name, empty)
	}

	r.drawCentered(l.InstructionsRow, w, v.Instructions, r.base)
	r.drawStatus(l.StatusRow, w, v)

	// Held item floats above everything else
	if v.IsHolding {
		r.drawHeld(v.Held)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawRobot(box geom.Rect) {
	frame := r.base.Foreground(RgbRobotFrame)
	r.drawBox(box, frame)

	face := r.base.Foreground(RgbRobotFace)
	innerTop := box.Top + 1
	for i, line := range robotFace {
		y := innerTop + i
		if y >= box.Bottom {
			break
		}
		r.drawText(box.Left+1+(box.Width()-2-len(line))/2, y, line, face)
	}
}

func (r *TerminalRenderer) drawSlot(box geom.Rect, image, name string, empty bool) {
	if empty {
		r.drawBox(box, r.base.Foreground(RgbSlotEmpty))
		r.drawText(box.Left+(box.Width()-3)/2, box.Top+1, "...", r.base.Foreground(RgbSlotEmpty))
		return
	}

	r.drawBox(box, r.base.Foreground(RgbSlotFrame))
	food := r.base.Foreground(RgbFood)
	r.drawText(box.Left+(box.Width()-len(image))/2, box.Top+1, image, food.Bold(true))
	r.drawText(box.Left+(box.Width()-len(name))/2, box.Top+2, name, food)
}

// drawHeld centres the held image on the pointer with the name below
func (r *TerminalRenderer) drawHeld(h game.Holding) {
	style := r.base.Foreground(RgbFoodHeld).Bold(true)
	p := h.Pointer
	r.drawText(p.X-len(h.Item.ImageRef)/2, p.Y, h.Item.ImageRef, style)
	r.drawText(p.X-len(h.Item.Name)/2, p.Y+1, h.Item.Name, style)
}

func (r *TerminalRenderer) drawStatus(y, width int, v View) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	sound := "off"
	if v.SoundOn {
		sound = "on"
	}
	text := fmt.Sprintf(" Good: %d  Bad: %d  Missed: %d  Sound: %s  (Ctrl+S sound, q quit)",
		v.Tally.Good, v.Tally.Bad, v.Tally.Missed, sound)

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	r.drawText(0, y, text, style)
}

func (r *TerminalRenderer) drawBox(box geom.Rect, style tcell.Style) {
	for x := box.Left + 1; x < box.Right; x++ {
		r.screen.SetContent(x, box.Top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, box.Bottom, tcell.RuneHLine, nil, style)
	}
	for y := box.Top + 1; y < box.Bottom; y++ {
		r.screen.SetContent(box.Left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(box.Right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(box.Left, box.Top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(box.Right, box.Top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(box.Left, box.Bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(box.Right, box.Bottom, tcell.RuneLRCorner, nil, style)
}

func (r *TerminalRenderer) drawCentered(y, width int, text string, style tcell.Style) {
	r.drawText(centered(width, len([]rune(text))), y, text, style)
}

// drawText writes one rune per cell, clipping to the screen
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbTitle      = tcell.NewRGBColor(255, 255, 255)
	RgbText       = tcell.NewRGBColor(200, 200, 200)

	RgbRobotFrame = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbRobotFace  = tcell.NewRGBColor(140, 190, 255) // Bright Blue

	RgbSlotFrame = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSlotEmpty = tcell.NewRGBColor(80, 80, 80)
	RgbFood      = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbFoodHeld  = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	RgbMessageGood = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbMessageBad  = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbMessageMiss = tcell.NewRGBColor(255, 192, 203) // Pink

	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
)

// MessageColor returns the color for a drop message
func MessageColor(hit, good bool) tcell.Color {
	switch {
	case !hit:
		return RgbMessageMiss
	case good:
		return RgbMessageGood
	default:
		return RgbMessageBad
	}
}

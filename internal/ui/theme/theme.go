// Package theme holds the colours and labels shared by the desktop and
// terminal front-ends.
package theme

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/timekeeper"
)

// Palette colours one phase.
type Palette struct {
	Primary    color.NRGBA
	Background color.NRGBA
	Text       color.NRGBA
}

var (
	Work = Palette{
		Primary:    rgb(0x22, 0xc5, 0x5e),
		Background: rgb(0xdc, 0xfc, 0xe7),
		Text:       rgb(0x16, 0x65, 0x34),
	}
	Rest = Palette{
		Primary:    rgb(0x3b, 0x82, 0xf6),
		Background: rgb(0xdb, 0xea, 0xfe),
		Text:       rgb(0x1e, 0x40, 0xaf),
	}

	Inactive = rgb(0xd1, 0xd5, 0xdb)
	Pause    = rgb(0xef, 0x44, 0x44)
	Reset    = rgb(0x6b, 0x72, 0x80)
	White    = rgb(0xff, 0xff, 0xff)
	Label    = rgb(0x37, 0x41, 0x51)
)

// ForPhase returns the palette of phase.
func ForPhase(phase timekeeper.Phase) Palette {
	if phase == timekeeper.PhaseRest {
		return Rest
	}
	return Work
}

// Hex renders c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

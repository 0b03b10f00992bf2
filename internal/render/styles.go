package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"dotglobe/internal/debug"
)

// Style definitions for the panels around the globe
var (
	StyleLabel        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleHint         = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleError        = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleListItem     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	StyleSprint       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(59, 130, 246))
	StyleIssue        = tcell.StyleDefault.Foreground(tcell.NewRGBColor(251, 146, 60))
)

// Opacity of the graticule over the ocean and strength of marker glow
const (
	graticuleAlpha = 0.25
	glowAlpha      = 0.35
)

// Theme holds the parsed globe palette
type Theme struct {
	Ocean     colorful.Color
	Outline   colorful.Color
	Land      colorful.Color
	Marker    colorful.Color
	Graticule colorful.Color
}

// DefaultTheme matches the dashboard's black-and-white globe
func DefaultTheme() Theme {
	return NewTheme("#000000", "#ffffff", "#999999", "#7aa2f7")
}

// NewTheme parses hex colors; unparsable values fall back to the defaults
func NewTheme(ocean, outline, land, marker string) Theme {
	t := Theme{
		Ocean:   ParseColor(ocean, colorful.Color{}),
		Outline: ParseColor(outline, colorful.Color{R: 1, G: 1, B: 1}),
		Land:    ParseColor(land, colorful.Color{R: 0.6, G: 0.6, B: 0.6}),
		Marker:  ParseColor(marker, colorful.Color{R: 0.478, G: 0.635, B: 0.969}),
	}
	t.Graticule = t.Ocean.BlendRgb(t.Outline, graticuleAlpha)
	return t
}

// ParseColor parses a #rrggbb string
func ParseColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		if hex != "" {
			debug.Log("Invalid color %q, using %s", hex, fallback.Hex())
		}
		return fallback
	}
	return c
}

// Glow returns the halo color drawn around a marker
func (t Theme) Glow(c colorful.Color) colorful.Color {
	return t.Ocean.BlendRgb(c, glowAlpha)
}

// ToTcell converts a color for the terminal
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

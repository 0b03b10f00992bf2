package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
)

// Sizes in pixels at zoom 1; every size is multiplied by the scale factor
const (
	OutlineWidth   = 2.0
	DotRadius      = 0.6
	MarkerScale    = 0.5
	GlowRadius     = 3.0
	SelectionInset = 2.0
)

// Scene is everything drawn in one frame besides the projection
type Scene struct {
	Land     *geo.Land // nil until the feed has loaded
	Markers  []marker.Marker
	Selected *marker.Marker
}

// FrameStats counts what made it onto the canvas
type FrameStats struct {
	DotsDrawn    int
	MarkersDrawn int
}

// SceneRenderer paints the globe; it never mutates the projection or scene
type SceneRenderer struct {
	theme     Theme
	graticule []orb.LineString
	colors    map[string]colorful.Color // parsed marker colors by hex string
}

// NewSceneRenderer creates a renderer with the given palette
func NewSceneRenderer(theme Theme) *SceneRenderer {
	return &SceneRenderer{
		theme:     theme,
		graticule: geo.Graticule(),
		colors:    make(map[string]colorful.Color),
	}
}

// Theme returns the renderer palette
func (r *SceneRenderer) Theme() Theme {
	return r.theme
}

// Render draws one frame: ocean, graticule, land outlines, land dots, markers
func (r *SceneRenderer) Render(c *Canvas, state *geo.ProjectionState, scene Scene) FrameStats {
	var stats FrameStats
	sf := state.ScaleFactor()

	c.Clear()

	ocean := ToTcell(r.theme.Ocean)
	outline := ToTcell(r.theme.Outline)
	c.FillDisc(state.TranslateX, state.TranslateY, state.Scale, ocean)
	c.DrawCircle(state.TranslateX, state.TranslateY, state.Scale, strokeWidth(OutlineWidth*sf), outline)

	if scene.Land != nil {
		graticule := ToTcell(r.theme.Graticule)
		for _, line := range r.graticule {
			r.drawPath(c, state, line, graticule)
		}

		for _, f := range scene.Land.Features {
			for _, poly := range f.Polygons() {
				for _, ring := range poly {
					r.drawPath(c, state, ring, outline)
				}
			}
		}

		land := ToTcell(r.theme.Land)
		dotRadius := DotRadius * sf
		for _, d := range scene.Land.Dots {
			p, ok := state.Project(d.Lng, d.Lat)
			if !ok || !state.InBounds(p) {
				continue
			}
			c.FillCircle(p.X, p.Y, dotRadius, land)
			stats.DotsDrawn++
		}
	}

	for i := range scene.Markers {
		m := &scene.Markers[i]
		p, ok := state.Project(m.Lng, m.Lat)
		if !ok || !state.InBounds(p) {
			continue
		}
		color := r.markerColor(m.Color)
		radius := m.Radius() * sf * MarkerScale

		c.FillCircle(p.X, p.Y, radius+GlowRadius*sf, ToTcell(r.theme.Glow(color)))
		c.FillCircle(p.X, p.Y, radius, ToTcell(color))
		if m == scene.Selected {
			c.DrawCircle(p.X, p.Y, radius+GlowRadius*sf+SelectionInset, 1, outline)
		}
		stats.MarkersDrawn++
	}

	return stats
}

// markerColor parses hex once and reuses the result on later frames
func (r *SceneRenderer) markerColor(hex string) colorful.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c := ParseColor(hex, r.theme.Marker)
	r.colors[hex] = c
	return c
}

// drawPath connects consecutive visible vertices; hidden vertices break the path
func (r *SceneRenderer) drawPath(c *Canvas, state *geo.ProjectionState, points []orb.Point, color tcell.Color) {
	var prev geo.ScreenPoint
	havePrev := false
	for _, pt := range points {
		p, ok := state.Project(pt[0], pt[1])
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			c.DrawLine(px(prev.X), px(prev.Y), px(p.X), px(p.Y), color)
		} else {
			c.SetPixel(px(p.X), px(p.Y), color)
		}
		prev = p
		havePrev = true
	}
}

func strokeWidth(w float64) int {
	return int(math.Max(1, math.Round(w)))
}

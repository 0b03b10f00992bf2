package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// DrawLine implements Bresenham's line algorithm on the pixel grid
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color tcell.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}

	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy

	for {
		c.SetPixel(x0, y0, color)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err

		if e2 > -dy {
			err -= dy
			x0 += sx
		}

		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle strokes a circle outline of the given pixel width
func (c *Canvas) DrawCircle(cx, cy, r float64, width int, color tcell.Color) {
	if width < 1 {
		width = 1
	}
	for w := 0; w < width; w++ {
		rr := r - float64(w)
		if rr <= 0 {
			break
		}
		steps := int(2*math.Pi*rr) + 16
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			c.SetPixel(px(cx+rr*math.Cos(a)), px(cy+rr*math.Sin(a)), color)
		}
	}
}

// FillCircle fills a disc of pixels; radii under one pixel light a single pixel
func (c *Canvas) FillCircle(cx, cy, r float64, color tcell.Color) {
	if r < 1 {
		c.SetPixel(px(cx), px(cy), color)
		return
	}
	r2 := r * r
	for y := px(cy - r); y <= px(cy+r); y++ {
		for x := px(cx - r); x <= px(cx+r); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				c.SetPixel(x, y, color)
			}
		}
	}
}

// FillDisc paints the background of every cell whose centre lies in the disc
func (c *Canvas) FillDisc(cx, cy, r float64, color tcell.Color) {
	r2 := r * r
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			dx := float64(x*PixelsPerCellX) + PixelsPerCellX/2.0 - cx
			dy := float64(y*PixelsPerCellY) + PixelsPerCellY/2.0 - cy
			if dx*dx+dy*dy <= r2 {
				c.SetBackground(x, y, color)
			}
		}
	}
}

// px converts a continuous coordinate to the pixel containing it
func px(v float64) int {
	return int(math.Floor(v))
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

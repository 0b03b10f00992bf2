package render

import (
	"github.com/gdamore/tcell/v2"
)

// Each cell is a 2x4 braille block, so the pixel grid is twice as wide and
// four times as tall as the cell grid.
const (
	PixelsPerCellX = 2
	PixelsPerCellY = 4

	brailleBase rune = 0x2800
)

var brailleBits = [PixelsPerCellY][PixelsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas represents a 2D grid of cells with braille sub-cell pixels
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// Cell represents a single character cell with style
// Dots holds the braille pixels set in the cell, zero for plain text cells.
type Cell struct {
	Char  rune
	Dots  uint8
	Style tcell.Style
}

var blank = Cell{Char: ' ', Style: tcell.StyleDefault}

// NewCanvas creates a new blank canvas of width x height cells
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = blank
		}
	}

	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Set sets the character and style at the given cell
// Coordinates are 0-indexed with (0,0) at top-left
func (c *Canvas) Set(x, y int, char rune, style tcell.Style) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x] = Cell{Char: char, Style: style}
	}
}

// Get retrieves the cell at the given position
func (c *Canvas) Get(x, y int) Cell {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		return c.cells[y][x]
	}
	return blank
}

// SetPixel lights one braille pixel and colors its cell
// Cells share one foreground color, the last pixel written wins.
func (c *Canvas) SetPixel(px, py int, color tcell.Color) {
	if px < 0 || py < 0 {
		return
	}
	x, y := px/PixelsPerCellX, py/PixelsPerCellY
	if x >= c.width || y >= c.height {
		return
	}
	cell := &c.cells[y][x]
	cell.Dots |= brailleBits[py%PixelsPerCellY][px%PixelsPerCellX]
	cell.Char = brailleBase + rune(cell.Dots)
	cell.Style = cell.Style.Foreground(color)
}

// Pixel reports whether a braille pixel is lit
func (c *Canvas) Pixel(px, py int) bool {
	if px < 0 || py < 0 {
		return false
	}
	cell := c.Get(px/PixelsPerCellX, py/PixelsPerCellY)
	return cell.Dots&brailleBits[py%PixelsPerCellY][px%PixelsPerCellX] != 0
}

// SetBackground sets the background color of a cell, keeping its content
func (c *Canvas) SetBackground(x, y int, color tcell.Color) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x].Style = c.cells[y][x].Style.Background(color)
	}
}

// Clear resets the entire canvas to spaces with default style
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells
func (c *Canvas) Height() int {
	return c.height
}

// PixelWidth returns the canvas width in braille pixels
func (c *Canvas) PixelWidth() int {
	return c.width * PixelsPerCellX
}

// PixelHeight returns the canvas height in braille pixels
func (c *Canvas) PixelHeight() int {
	return c.height * PixelsPerCellY
}

// Blit renders the canvas to a tcell screen
func (c *Canvas) Blit(screen tcell.Screen, offsetX, offsetY int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			screen.SetContent(offsetX+x, offsetY+y, cell.Char, nil, cell.Style)
		}
	}
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"dotglobe/internal/marker"
	"dotglobe/internal/render"
)

// ListView displays a scrollable list of markers
type ListView struct {
	markers       []marker.Marker
	selectedIndex int
	scrollOffset  int
	maxVisible    int
	x, y          int
	width, height int
}

// NewListView creates a new marker list view
func NewListView(x, y, width, height int) *ListView {
	l := &ListView{selectedIndex: -1}
	l.UpdateDimensions(x, y, width, height)
	return l
}

// Update replaces the listed markers and clears the selection
func (l *ListView) Update(markers []marker.Marker) {
	l.markers = markers
	l.selectedIndex = -1
	l.scrollOffset = 0
}

// Len returns the number of listed markers
func (l *ListView) Len() int {
	return len(l.markers)
}

// SelectNext moves selection down
func (l *ListView) SelectNext() {
	if l.selectedIndex < len(l.markers)-1 {
		l.selectedIndex++
		l.adjustScroll()
	}
}

// SelectPrev moves selection up
func (l *ListView) SelectPrev() {
	if l.selectedIndex > 0 {
		l.selectedIndex--
		l.adjustScroll()
	}
}

// SetSelected selects index i; out of range clears the selection
func (l *ListView) SetSelected(i int) {
	if i < 0 || i >= len(l.markers) {
		l.selectedIndex = -1
		return
	}
	l.selectedIndex = i
	l.adjustScroll()
}

// SelectedIndex returns the selected row or -1
func (l *ListView) SelectedIndex() int {
	return l.selectedIndex
}

// adjustScroll adjusts scroll offset to keep selected item visible
func (l *ListView) adjustScroll() {
	if l.selectedIndex >= l.scrollOffset+l.maxVisible {
		l.scrollOffset = l.selectedIndex - l.maxVisible + 1
	}

	if l.selectedIndex < l.scrollOffset {
		l.scrollOffset = l.selectedIndex
	}

	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// Contains reports whether the cell lies inside the panel
func (l *ListView) Contains(x, y int) bool {
	return x >= l.x && x < l.x+l.width && y >= l.y && y < l.y+l.height
}

// ItemAt returns the marker index drawn at a cell
func (l *ListView) ItemAt(x, y int) (int, bool) {
	if x <= l.x || x >= l.x+l.width-1 {
		return -1, false
	}
	row := y - l.y - 1
	if row < 0 || row >= l.maxVisible {
		return -1, false
	}
	i := l.scrollOffset + row
	if i >= len(l.markers) {
		return -1, false
	}
	return i, true
}

// Draw renders the list view to the screen
func (l *ListView) Draw(screen tcell.Screen) {
	if len(l.markers) == 0 {
		return
	}
	drawPanel(screen, l.x, l.y, l.width, l.height, "Markers")

	visibleCount := min(l.maxVisible, len(l.markers)-l.scrollOffset)
	for i := 0; i < visibleCount; i++ {
		idx := l.scrollOffset + i
		m := &l.markers[idx]

		style := render.StyleListItem
		if idx == l.selectedIndex {
			style = render.StyleListSelected
		}

		x := l.x + 1
		y := l.y + i + 1
		n := drawText(screen, x, y, l.width-2, m.ListDisplay(), style)
		for j := n; j < l.width-2; j++ {
			screen.SetContent(x+j, y, ' ', nil, style)
		}
	}

	if len(l.markers) > l.maxVisible {
		screen.SetContent(l.x+l.width-2, l.y, '↕', nil, render.StyleLabel)
	}
}

// UpdateDimensions updates the view dimensions
func (l *ListView) UpdateDimensions(x, y, width, height int) {
	l.x = x
	l.y = y
	l.width = width
	l.height = height
	l.maxVisible = height - 2
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.adjustScroll()
}

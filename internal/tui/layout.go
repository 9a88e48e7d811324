package tui

import (
	"math"

	"github.com/akarst/swipestack/internal/swipe"
)

// stackLayout carves the window into the stack canvas on top and the session
// log underneath, and sizes the card faces inside the canvas.
type stackLayout struct {
	windowWidth  int
	windowHeight int

	stackWidth  int
	stackHeight int
	cardWidth   int
	cardHeight  int
	logWidth    int
	logHeight   int

	padCols int
	padRows int
}

func newStackLayout(pad swipe.Padding) stackLayout {
	l := stackLayout{
		padCols: unitsToCols(pad.Horizontal),
		padRows: unitsToRows(pad.Vertical),
	}
	l.Update(100, 32)
	return l
}

// Update recomputes the split for a new window size. The log pane takes a
// fifth of the height; the stack canvas gets the rest minus the meter and
// header chrome.
func (l *stackLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	if width < minStackWidth {
		width = minStackWidth
	}
	l.stackWidth = width

	logWidth := l.windowWidth - 2
	if logWidth < 20 {
		logWidth = 20
	}
	l.logWidth = logWidth

	logHeight := height / 5
	if logHeight < 3 {
		logHeight = 3
	}
	if logHeight > 8 {
		logHeight = 8
	}
	l.logHeight = logHeight

	const chrome = 5
	stackHeight := height - logHeight - chrome
	if stackHeight < minStackHeight {
		stackHeight = minStackHeight
	}
	l.stackHeight = stackHeight

	cardWidth := l.stackWidth - 2*l.padCols
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	l.cardWidth = cardWidth

	cardHeight := l.stackHeight - 2*l.padRows - 4
	if cardHeight > maxCardHeight {
		cardHeight = maxCardHeight
	}
	if cardHeight < minCardHeight {
		cardHeight = minCardHeight
	}
	l.cardHeight = cardHeight
}

// viewportUnits is the canvas extent in controller units. Swipe end states
// travel to these bounds, so the controller must learn them on every resize.
func (l stackLayout) viewportUnits() (float64, float64) {
	return float64(l.stackWidth) * unitsPerCol, float64(l.stackHeight) * unitsPerRow
}

// anchor is the top-left cell of a resting top card, centered in the canvas.
func (l stackLayout) anchor() (col, row int) {
	return (l.stackWidth - l.cardWidth) / 2, (l.stackHeight - l.cardHeight) / 2
}

// cardMidRow splits the resting card face into its two grab halves.
func (l stackLayout) cardMidRow() int {
	_, row := l.anchor()
	return row + l.cardHeight/2
}

func colsToUnits(cells int) float64 { return float64(cells) * unitsPerCol }

func rowsToUnits(cells int) float64 { return float64(cells) * unitsPerRow }

func unitsToCols(units float64) int { return int(math.Round(units / unitsPerCol)) }

func unitsToRows(units float64) int { return int(math.Round(units / unitsPerRow)) }

package tui

import "time"

type stage int

const (
	stageInput stage = iota
	stageLoading
	stageDeck
)

// The controller thinks in abstract layout units, the terminal in cells. A
// column spans unitsPerCol units and a row unitsPerRow, which keeps the
// roughly 1:2 footprint a character cell has on screen.
const (
	unitsPerCol = 10.0
	unitsPerRow = 20.0
)

const frameInterval = 16 * time.Millisecond

const (
	minStackWidth  = 40
	minStackHeight = 9

	minCardWidth  = 20
	maxCardWidth  = 44
	minCardHeight = 7
	maxCardHeight = 12
)

const maxLogLines = 200

const promptTagline = "Flick through a deck without leaving the terminal."

const pathPlaceholder = "deck.json, pages.pdf, or Enter for the sample deck"

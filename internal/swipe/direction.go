package swipe

import (
	"fmt"
	"strings"
)

// Direction identifies an edge of the viewport a card can leave through. It
// doubles as the configured fallback for zero-distance programmatic swipes
// and as the detected outcome handed to callbacks.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionTop
	DirectionBottom
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseDirection maps a configuration token to the edge it names. Only the
// four edges parse; DirectionNone is a resolution outcome, not an input.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "top", "up":
		return DirectionTop, nil
	case "bottom", "down":
		return DirectionBottom, nil
	default:
		return DirectionNone, fmt.Errorf("swipe: unknown direction %q", s)
	}
}

// horizontal reports whether d runs along the x axis.
func (d Direction) horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Command is a discrete instruction delivered through a Remote.
type Command int

const (
	// CommandSwipe dismisses toward the configured default direction.
	CommandSwipe Command = iota
	CommandSwipeLeft
	CommandSwipeRight
	CommandSwipeTop
	CommandSwipeBottom
)

// direction maps a command to the direction it targets. CommandSwipe maps to
// DirectionNone, which the controller resolves against its configuration.
func (c Command) direction() Direction {
	switch c {
	case CommandSwipeLeft:
		return DirectionLeft
	case CommandSwipeRight:
		return DirectionRight
	case CommandSwipeTop:
		return DirectionTop
	case CommandSwipeBottom:
		return DirectionBottom
	default:
		return DirectionNone
	}
}

// swipeIntent records what the in-flight animation cycle will conclude as.
type swipeIntent int

const (
	intentNone swipeIntent = iota
	intentSwipe
	intentReturn
)

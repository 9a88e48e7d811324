package swipe

import (
	"fmt"
	"time"
)

// Defaults applied by DefaultConfig.
const (
	DefaultDuration  = 200 * time.Millisecond
	DefaultMaxAngle  = 30.0
	DefaultThreshold = 50
	DefaultScale     = 0.9
)

// Padding is the visual inset around the stack. The controller carries it
// for the rendering surface; it never enters the interaction math.
type Padding struct {
	Horizontal float64
	Vertical   float64
}

// Callbacks are the optional event hooks a controller reports through. Any
// field may be nil.
type Callbacks struct {
	// OnSwipe fires when a swipe animation completes, with the deck position
	// of the card that left and the direction it took.
	OnSwipe func(index int, direction Direction)

	// OnEnd fires when the swiped card was the last one and the cursor
	// wrapped back to the start of the deck.
	OnEnd func()

	// OnTapDisabled fires when the stack is tapped while gesture input is
	// disabled.
	OnTapDisabled func()

	// BeforeSwipe fires the moment a direction is resolved, before the
	// disabled-direction set gets a chance to redirect the outcome.
	BeforeSwipe func(direction Direction)

	// OnDrag streams drag progress: raw accumulated offsets while the
	// pointer is down, threshold-capped interpolations while a cycle
	// animates, and the looping countdown of the idle return indicator.
	OnDrag func(offset Offset)

	// OnItemIndexChange fires whenever the deck cursor moves.
	OnItemIndexChange func(index int)
}

// Config parameterizes a Controller. Build one with DefaultConfig, adjust
// fields, and hand it to New; New rejects out-of-domain values up front.
type Config struct {
	// DeckSize is the number of cards in the stack. Card payloads stay with
	// the caller; the controller deals in indices only. May be zero.
	DeckSize int

	// Duration is the length of one swipe or return animation. The idle
	// return indicator counts down over the same span.
	Duration time.Duration

	// MaxAngle bounds the top card's rotation, in degrees within [0, 360].
	MaxAngle float64

	// Threshold is the drag distance in layout units past which a released
	// gesture commits to a swipe, within [1, 100]. The comparison is strict:
	// releasing at exactly the threshold snaps back.
	Threshold int

	// InitialIndex is the starting deck cursor.
	InitialIndex int

	// Scale is the resting scale of the card under the top one, within
	// [0, 1].
	Scale float64

	// IsDisabled gates all gesture input. Programmatic swipes stay live.
	IsDisabled bool

	// Direction resolves zero-distance programmatic swipes. Must name an
	// actual edge, not DirectionNone.
	Direction Direction

	// DisabledDirections lists edges a card cannot leave through. Gestures
	// and commands toward them animate back to rest instead, after the
	// BeforeSwipe announcement.
	DisabledDirections []Direction

	// Padding is the visual inset around the stack.
	Padding Padding

	// Callbacks are the event hooks, all optional.
	Callbacks Callbacks

	// Remote, when set, feeds programmatic swipe commands to the controller
	// for its whole lifetime.
	Remote *Remote
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Duration:  DefaultDuration,
		MaxAngle:  DefaultMaxAngle,
		Threshold: DefaultThreshold,
		Scale:     DefaultScale,
		Direction: DirectionRight,
		Padding:   Padding{Horizontal: 20, Vertical: 25},
	}
}

func (c Config) validate() error {
	if c.DeckSize < 0 {
		return fmt.Errorf("swipe: deck size %d is negative", c.DeckSize)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("swipe: duration %v is not positive", c.Duration)
	}
	if c.MaxAngle < 0 || c.MaxAngle > 360 {
		return fmt.Errorf("swipe: max angle %.1f outside [0, 360]", c.MaxAngle)
	}
	if c.Threshold < 1 || c.Threshold > 100 {
		return fmt.Errorf("swipe: threshold %d outside [1, 100]", c.Threshold)
	}
	if c.Scale < 0 || c.Scale > 1 {
		return fmt.Errorf("swipe: scale %.2f outside [0, 1]", c.Scale)
	}
	if c.Direction == DirectionNone {
		return fmt.Errorf("swipe: default direction must name an edge")
	}
	for _, d := range c.DisabledDirections {
		if d == DirectionNone {
			return fmt.Errorf("swipe: cannot disable DirectionNone")
		}
	}
	return nil
}

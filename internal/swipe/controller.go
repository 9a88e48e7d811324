// Package swipe implements the interaction engine for a gesture-driven card
// stack: drag tracking, swipe detection, the animation cycle that carries a
// card off screen or back to rest, and the deck cursor.
//
// The package is deliberately blind to rendering and input devices. A
// collaborating surface feeds pointer deltas, frame deltas and the viewport
// extent in, and reads per-card transforms back out with Frame.
package swipe

import (
	"math"
	"time"
)

// Controller owns all drag and animation state for one card stack.
//
// A controller is not safe for concurrent use. Handlers, commands and ticks
// must arrive serially from the surrounding event loop, the way a bubbletea
// Update method delivers them.
type Controller struct {
	cfg       Config
	maxAngle  float64 // radians
	threshold float64
	disabled  map[Direction]bool

	index     int
	viewportW float64
	viewportH float64

	state    DragState
	grabTop  bool
	intent   swipeIntent
	detected Direction

	main      *timeline
	indicator *returnIndicator
}

// New validates cfg and builds a controller at rest on the initial index.
func New(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	disabled := make(map[Direction]bool, len(cfg.DisabledDirections))
	for _, d := range cfg.DisabledDirections {
		disabled[d] = true
	}
	threshold := float64(cfg.Threshold)
	c := &Controller{
		cfg:       cfg,
		maxAngle:  cfg.MaxAngle * math.Pi / 180,
		threshold: threshold,
		disabled:  disabled,
		index:     cfg.InitialIndex,
		state:     restState(cfg.Scale),
		main:      newTimeline(cfg.Duration),
		indicator: newReturnIndicator(cfg.Duration, threshold),
	}
	if cfg.Remote != nil {
		cfg.Remote.Subscribe(c.handleCommand)
	}
	return c, nil
}

// State returns the current drag snapshot.
func (c *Controller) State() DragState { return c.state }

// Index returns the deck cursor.
func (c *Controller) Index() int { return c.index }

// DeckSize returns the configured number of cards.
func (c *Controller) DeckSize() int { return c.cfg.DeckSize }

// Threshold returns the swipe threshold in layout units.
func (c *Controller) Threshold() float64 { return c.threshold }

// Padding returns the configured visual inset.
func (c *Controller) Padding() Padding { return c.cfg.Padding }

// Disabled reports whether gesture input is gated off.
func (c *Controller) Disabled() bool { return c.cfg.IsDisabled }

// SetDisabled switches the gesture input gate, the way a rebuilding parent
// would reconfigure the stack. Programmatic swipes are unaffected.
func (c *Controller) SetDisabled(disabled bool) { c.cfg.IsDisabled = disabled }

// Animating reports whether a swipe or return cycle is in flight.
func (c *Controller) Animating() bool {
	return c.main.status == timelineForward || c.main.status == timelineReverse
}

// SetViewport records the extent of the surface the stack renders into.
// Swipe end states travel to these extents, so it should be called before
// the first gesture and again whenever the surface resizes.
func (c *Controller) SetViewport(width, height float64) {
	c.viewportW = width
	c.viewportH = height
}

// DragStart begins a gesture. topHalf reports whether the pointer landed in
// the upper half of the card face; it flips the rotation sign for the whole
// gesture. No-op while gesture input is disabled.
func (c *Controller) DragStart(topHalf bool) {
	if c.cfg.IsDisabled {
		return
	}
	c.grabTop = topHalf
}

// DragUpdate folds one pointer delta into the drag snapshot and reports the
// raw accumulated offsets. No-op while gesture input is disabled.
func (c *Controller) DragUpdate(dx, dy float64) {
	if c.cfg.IsDisabled {
		return
	}
	c.state = applyDrag(c.state, dx, dy, c.grabTop, c.maxAngle, c.cfg.Scale)
	c.emitDrag(Offset{X: c.state.Left, Y: c.state.Top})
}

// DragEnd classifies the finished gesture and starts the animation cycle.
// A past-threshold horizontal offset resolves horizontally even when the
// vertical offset is larger; vertical is only consulted after. Anything
// short of the threshold on both axes returns to rest. Strictly past: a
// release at exactly the threshold snaps back.
func (c *Controller) DragEnd() {
	if c.cfg.IsDisabled {
		return
	}
	c.grabTop = false
	switch {
	case math.Abs(c.state.Left) > c.threshold:
		c.resolveHorizontal()
	case math.Abs(c.state.Top) > c.threshold:
		c.resolveVertical()
	default:
		c.beginReturn()
	}
}

// Tap reports a press and release without movement. Only meaningful while
// gesture input is disabled, where it fires the dedicated notification.
func (c *Controller) Tap() {
	if c.cfg.IsDisabled && c.cfg.Callbacks.OnTapDisabled != nil {
		c.cfg.Callbacks.OnTapDisabled()
	}
}

// Swipe dismisses the top card programmatically. DirectionNone selects the
// configured default. The call plants a synthetic past-threshold offset and
// runs the same decision path a finished drag takes, so BeforeSwipe and
// disabled-direction redirection behave identically for gestures and
// commands. A request toward a disabled direction animates a return instead.
// No-op on an empty deck. Stays live while gesture input is disabled.
func (c *Controller) Swipe(dir Direction) {
	if c.cfg.DeckSize == 0 {
		return
	}
	if dir == DirectionNone {
		dir = c.cfg.Direction
	}
	if c.disabled[dir] {
		c.beginReturn()
		return
	}
	c.seed(dir)
	if dir.horizontal() {
		c.resolveHorizontal()
	} else {
		c.resolveVertical()
	}
}

// seed plants an offset that makes the decision engine resolve dir without a
// physical drag: a nudge past the threshold for the positive edges, a bare
// negative unit for the others.
func (c *Controller) seed(dir Direction) {
	s := c.state
	switch dir {
	case DirectionLeft:
		s.Left = -1
	case DirectionRight:
		s.Left = c.threshold + 1
	case DirectionTop:
		s.Top = -1
	case DirectionBottom:
		s.Top = c.threshold + 1
	}
	c.state = s
}

func (c *Controller) handleCommand(cmd Command) {
	c.Swipe(cmd.direction())
}

// resolveHorizontal picks left or right from the current offset, announces
// the choice, and either launches the swipe or redirects to a return when
// that edge is disabled. A zero offset defers to the configured default.
func (c *Controller) resolveHorizontal() {
	dir := DirectionLeft
	if c.state.Left > c.threshold || (c.state.Left == 0 && c.cfg.Direction == DirectionRight) {
		dir = DirectionRight
	}
	c.announce(dir)
	if c.disabled[dir] {
		c.beginReturn()
		return
	}
	end := target{top: c.state.Top * 2, scale: 1, gap: 0}
	if dir == DirectionRight {
		end.left = c.viewportW
	} else {
		end.left = -c.viewportW
	}
	c.beginSwipe(dir, end)
}

func (c *Controller) resolveVertical() {
	dir := DirectionTop
	if c.state.Top > c.threshold || (c.state.Top == 0 && c.cfg.Direction == DirectionBottom) {
		dir = DirectionBottom
	}
	c.announce(dir)
	if c.disabled[dir] {
		c.beginReturn()
		return
	}
	end := target{left: c.state.Left * 2, scale: 1, gap: 0}
	if dir == DirectionBottom {
		end.top = c.viewportH
	} else {
		end.top = -c.viewportH
	}
	c.beginSwipe(dir, end)
}

func (c *Controller) announce(dir Direction) {
	if c.cfg.Callbacks.BeforeSwipe != nil {
		c.cfg.Callbacks.BeforeSwipe(dir)
	}
}

func (c *Controller) beginSwipe(dir Direction, end target) {
	c.detected = dir
	c.intent = intentSwipe
	c.main.start(c.state, end)
}

// beginReturn animates every transform back to its resting value. The
// leaving offsets go to zero, the under card shrinks back and the gap
// reopens.
func (c *Controller) beginReturn() {
	c.detected = DirectionNone
	c.intent = intentReturn
	c.main.start(c.state, target{scale: c.cfg.Scale, gap: restStackGap})
}

// Advance moves both animation machines by one frame delta. The main
// timeline writes its interpolated values back into the snapshot while
// running forward and reports threshold-capped progress; the tick that
// reaches full progress settles the cycle. The return indicator reports its
// countdown independently, whether or not a cycle is in flight.
func (c *Controller) Advance(dt time.Duration) {
	forward := c.main.status == timelineForward
	if tick, running := c.main.advance(dt); running {
		if forward {
			next := c.state
			next.Left = tick.left
			next.Top = tick.top
			next.Scale = tick.scale
			next.StackGap = tick.gap
			c.state = next
		}
		c.emitDrag(Offset{
			X: math.Min(tick.left, c.threshold),
			Y: math.Min(tick.top, c.threshold),
		})
		if tick.completed {
			c.settle()
		}
	}
	if value, report := c.indicator.advance(dt); report {
		c.emitDrag(Offset{X: value, Y: value})
	}
}

// settle concludes an animation cycle. A completed swipe reports the card
// that left, then moves the cursor: past the last card it wraps to zero and
// signals deck exhaustion, otherwise it increments, and either way the move
// is reported. Every cycle, swipe or return, ends with the snapshot and
// timeline back at their defaults, ready for the next gesture.
func (c *Controller) settle() {
	if c.intent == intentSwipe {
		leaving := c.index
		if c.cfg.Callbacks.OnSwipe != nil {
			c.cfg.Callbacks.OnSwipe(leaving, c.detected)
		}
		if leaving == c.cfg.DeckSize-1 {
			c.index = 0
			if c.cfg.Callbacks.OnEnd != nil {
				c.cfg.Callbacks.OnEnd()
			}
		} else {
			c.index = leaving + 1
		}
		if c.cfg.Callbacks.OnItemIndexChange != nil {
			c.cfg.Callbacks.OnItemIndexChange(c.index)
		}
	}
	c.state = restState(c.cfg.Scale)
	c.intent = intentNone
	c.detected = DirectionNone
	c.main.reset()
}

func (c *Controller) emitDrag(offset Offset) {
	if c.cfg.Callbacks.OnDrag != nil {
		c.cfg.Callbacks.OnDrag(offset)
	}
}

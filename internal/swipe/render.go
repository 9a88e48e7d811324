package swipe

import "github.com/akarst/swipestack/internal/geom"

// CardTransform positions one card for the rendering surface.
type CardTransform struct {
	// Index is the deck position of the card payload to draw.
	Index int

	// Offset is the translation from the card's resting anchor, in layout
	// units.
	Offset Offset

	// Angle is the rotation in radians. Always zero for the under card.
	Angle float64

	// Scale is the uniform scale factor. Always one for the top card.
	Scale float64

	// Matrix is the composed affine transform, translation applied last.
	Matrix geom.Matrix
}

// Frame is the render plan for one tick: the draggable top card and the
// card peeking out underneath. Both are nil for an empty deck or a negative
// cursor.
type Frame struct {
	Top   *CardTransform
	Under *CardTransform
}

// Frame assembles the render plan for the current tick, applying the deck
// guard first: a cursor past the last card snaps back to it (to zero for an
// empty deck) and the correction is reported; a negative cursor renders
// nothing and is left for the caller to fix. The under card is the next deck
// position, wrapping to the first card behind the last one.
func (c *Controller) Frame() Frame {
	c.guardIndex()
	if c.cfg.DeckSize == 0 || c.index < 0 {
		return Frame{}
	}
	s := c.state
	top := &CardTransform{
		Index:  c.index,
		Offset: Offset{X: s.Left, Y: s.Top},
		Angle:  s.Angle,
		Scale:  1,
		Matrix: geom.Translation(s.Left, s.Top).Mul(geom.Rotation(s.Angle)),
	}
	under := &CardTransform{
		Index:  (c.index + 1) % c.cfg.DeckSize,
		Offset: Offset{Y: s.StackGap},
		Scale:  s.Scale,
		Matrix: geom.Translation(0, s.StackGap).Mul(geom.Scaling(s.Scale)),
	}
	return Frame{Top: top, Under: under}
}

func (c *Controller) guardIndex() {
	last := c.cfg.DeckSize - 1
	if last < 0 {
		last = 0
	}
	if c.index > last {
		c.index = last
		if c.cfg.Callbacks.OnItemIndexChange != nil {
			c.cfg.Callbacks.OnItemIndexChange(c.index)
		}
	}
}

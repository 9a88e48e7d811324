package swipe

// restStackGap is the vertical offset, in layout units, of the under card
// while the stack is at rest.
const restStackGap = 40.0

// Offset is a 2D displacement in layout units.
type Offset struct {
	X, Y float64
}

// DragState is the transform snapshot for one frame of the stack. Drag
// events and animation ticks each build a fresh value and swap it in whole,
// so readers never observe a half-updated frame.
type DragState struct {
	// Left and Top are the accumulated pointer offsets of the top card.
	Left, Top float64

	// Total is Left + Top as of the last pointer update. Animation ticks
	// leave it untouched.
	Total float64

	// Angle is the top card's rotation in radians.
	Angle float64

	// Scale is the under card's scale factor.
	Scale float64

	// StackGap is the under card's vertical offset in layout units.
	StackGap float64
}

func restState(baseScale float64) DragState {
	return DragState{Scale: baseScale, StackGap: restStackGap}
}

// applyDrag folds one pointer delta into the snapshot. The derived fields
// read the freshly accumulated offsets but gate on their own previous
// values, so a value that escaped its band stays frozen at the overshoot
// until the next reset.
func applyDrag(s DragState, dx, dy float64, flipAngle bool, maxAngle, baseScale float64) DragState {
	s.Left += dx
	s.Top += dy
	s.Total = s.Left + s.Top
	s.Angle = nextAngle(s, flipAngle, maxAngle)
	s.Scale = nextScale(s, baseScale)
	s.StackGap = nextStackGap(s)
	return s
}

// nextAngle recomputes rotation from the horizontal offset, sign-flipped
// when the card was grabbed in its upper half. The current value is its own
// gate: once outside [-maxAngle, maxAngle] it stops tracking. Frozen, not
// clamped: dragging back inward does not resume tracking.
func nextAngle(s DragState, flip bool, maxAngle float64) float64 {
	if s.Angle < -maxAngle || s.Angle > maxAngle {
		return s.Angle
	}
	a := (maxAngle / 100) * (s.Left / 10)
	if flip {
		a = -a
	}
	return a
}

// nextScale grows the under card toward full size as the combined offset
// moves away from zero in either direction. Same freeze policy as nextAngle,
// gated on [base, 1].
func nextScale(s DragState, base float64) float64 {
	if s.Scale < base || s.Scale > 1.0 {
		return s.Scale
	}
	if s.Total > 0 {
		return base + s.Total/5000
	}
	return base - s.Total/5000
}

// nextStackGap closes the resting gap as the combined offset grows. No gate:
// the gap follows the offset wherever it goes.
func nextStackGap(s DragState) float64 {
	if s.Total > 0 {
		return restStackGap - s.Total/10
	}
	return restStackGap + s.Total/10
}

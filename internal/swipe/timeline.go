package swipe

import "time"

// timelineStatus is the driver lifecycle: idle until a cycle starts, forward
// while it runs, completed on the tick that reaches full progress, then back
// to idle once the controller settles the cycle.
type timelineStatus int

const (
	timelineIdle timelineStatus = iota
	timelineForward
	timelineReverse
	timelineCompleted
)

// span linearly maps cycle progress onto one animated quantity.
type span struct {
	from, to float64
}

func (s span) at(t float64) float64 {
	return s.from + (s.to-s.from)*t
}

// target is the end state a cycle animates toward, fixed when it starts.
type target struct {
	left, top float64
	scale     float64
	gap       float64
}

// timelineTick is one interpolation step of the main timeline.
type timelineTick struct {
	left, top  float64
	scale, gap float64
	completed  bool
}

// timeline drives a single swipe or return cycle: four spans interpolated
// over a fixed duration by externally supplied frame deltas. It produces
// identical trajectories whichever clock feeds it.
type timeline struct {
	duration time.Duration
	elapsed  time.Duration
	status   timelineStatus

	left, top, scale, gap span
}

func newTimeline(duration time.Duration) *timeline {
	return &timeline{duration: duration}
}

// start captures the current snapshot as the begin state and launches a
// forward run from zero progress. Starting over a running cycle abandons it
// and re-captures from wherever the snapshot is now.
func (tl *timeline) start(from DragState, to target) {
	tl.left = span{from.Left, to.left}
	tl.top = span{from.Top, to.top}
	tl.scale = span{from.Scale, to.scale}
	tl.gap = span{from.StackGap, to.gap}
	tl.elapsed = 0
	tl.status = timelineForward
}

// advance moves the driver by dt and reports the interpolated values. The
// boolean is false when no cycle is running. Progress saturates at 1, so an
// oversized final delta still lands exactly on the end state.
func (tl *timeline) advance(dt time.Duration) (timelineTick, bool) {
	if tl.status != timelineForward && tl.status != timelineReverse {
		return timelineTick{}, false
	}
	tl.elapsed += dt
	t := 1.0
	if tl.elapsed < tl.duration {
		t = float64(tl.elapsed) / float64(tl.duration)
	}
	tick := timelineTick{
		left:  tl.left.at(t),
		top:   tl.top.at(t),
		scale: tl.scale.at(t),
		gap:   tl.gap.at(t),
	}
	if t >= 1 {
		tl.status = timelineCompleted
		tick.completed = true
	}
	return tick, true
}

// reset returns the driver to its start point, ready for the next cycle.
func (tl *timeline) reset() {
	tl.elapsed = 0
	tl.status = timelineIdle
}

// returnIndicator is the auxiliary timeline: a perpetual countdown from the
// swipe threshold to zero that restarts every time it completes. It only
// feeds the drag-progress callback; it never touches the drag snapshot, and
// it keeps counting while a swipe cycle runs.
type returnIndicator struct {
	duration  time.Duration
	threshold float64
	elapsed   time.Duration
}

func newReturnIndicator(duration time.Duration, threshold float64) *returnIndicator {
	return &returnIndicator{duration: duration, threshold: threshold}
}

// advance steps the countdown and reports the value to publish. The boolean
// is false only when the value sits exactly on the threshold, which is where
// every restart begins.
func (ri *returnIndicator) advance(dt time.Duration) (float64, bool) {
	ri.elapsed += dt
	if ri.elapsed >= ri.duration {
		ri.elapsed = 0
		return 0, true
	}
	t := float64(ri.elapsed) / float64(ri.duration)
	value := ri.threshold * (1 - t)
	return value, value != ri.threshold
}

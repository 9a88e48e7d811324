package swipe

// Remote is the imperative handle for a stack. Code that wants to dismiss
// cards without synthesizing gestures holds a Remote and issues commands;
// the controller subscribed to it resolves each command through the same
// decision path a finished drag takes.
type Remote struct {
	listeners []func(Command)
}

func NewRemote() *Remote {
	return &Remote{}
}

// Subscribe registers fn for every subsequent command. A nil fn is ignored.
func (r *Remote) Subscribe(fn func(Command)) {
	if fn == nil {
		return
	}
	r.listeners = append(r.listeners, fn)
}

// Swipe requests a dismissal toward the configured default direction.
func (r *Remote) Swipe() { r.emit(CommandSwipe) }

// SwipeLeft requests a dismissal through the left edge.
func (r *Remote) SwipeLeft() { r.emit(CommandSwipeLeft) }

// SwipeRight requests a dismissal through the right edge.
func (r *Remote) SwipeRight() { r.emit(CommandSwipeRight) }

// SwipeTop requests a dismissal through the top edge.
func (r *Remote) SwipeTop() { r.emit(CommandSwipeTop) }

// SwipeBottom requests a dismissal through the bottom edge.
func (r *Remote) SwipeBottom() { r.emit(CommandSwipeBottom) }

func (r *Remote) emit(cmd Command) {
	for _, fn := range r.listeners {
		fn(cmd)
	}
}

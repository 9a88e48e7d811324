package tuitest

// X10 mouse reports, the encoding bubbletea's cell-motion mouse mode
// decodes: ESC [ M followed by a flag byte and two coordinate bytes, each
// offset by 32. Coordinates here are zero-based cells, matching what the
// program sees, and are shifted to the protocol's one-based form on the
// wire.

const (
	mouseFlagLeft    = 0
	mouseFlagRelease = 3
	mouseFlagMotion  = 32
	mouseByteFloor   = 32
)

func mouseReport(flag, col, row int) []byte {
	return []byte{
		0x1b, '[', 'M',
		byte(mouseByteFloor + flag),
		byte(mouseByteFloor + 1 + col),
		byte(mouseByteFloor + 1 + row),
	}
}

// Click returns an act that presses and releases the left button on one
// cell without moving, which the stack reads as a tap.
func Click(col, row int) Act {
	send := mouseReport(mouseFlagLeft, col, row)
	send = append(send, mouseReport(mouseFlagRelease, col, row)...)
	return Act{Send: send}
}

// DragRight returns an act that grabs a cell and pulls it the given number
// of columns to the right before letting go, one motion report per column
// the way a terminal streams a real drag.
func DragRight(col, row, cols int) Act {
	send := mouseReport(mouseFlagLeft, col, row)
	for step := 1; step <= cols; step++ {
		send = append(send, mouseReport(mouseFlagLeft|mouseFlagMotion, col+step, row)...)
	}
	send = append(send, mouseReport(mouseFlagRelease, col+cols, row)...)
	return Act{Send: send}
}

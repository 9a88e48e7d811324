package tuitest

import (
	"regexp"
	"strings"
	"time"
)

// Recording is everything one Play captured: the raw byte stream, the
// frames parsed out of it, and how long the run took.
type Recording struct {
	Raw     []byte
	Frames  []Frame
	Elapsed time.Duration
}

// Frame is one terminal paint: the ANSI text between two clear-screen
// sequences, plus a plain projection with the styling stripped for content
// assertions.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiSeq      = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscSeq      = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
)

// parseFrames cuts the stream at clear-screen sequences and keeps every
// segment that still shows content once styling is stripped.
func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range clearScreen.Split(stream, -1) {
		segment = strings.TrimPrefix(strings.Trim(segment, "\x00"), "\x1b[H")
		if segment == "" {
			continue
		}
		plain := tidy(strip(segment))
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	if len(frames) == 0 && stream != "" {
		frames = []Frame{{ANSI: stream, Plain: tidy(strip(stream))}}
	}
	return frames
}

// FinalFrame returns the last captured frame, reporting false when the
// recording is empty.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// FrameContaining returns the first frame whose plain text contains substr.
// Animated programs redraw continuously, so picking a frame by content is
// steadier than picking one by index.
func (r *Recording) FrameContaining(substr string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for _, frame := range r.Frames {
		if strings.Contains(frame.Plain, substr) {
			return frame, true
		}
	}
	return Frame{}, false
}

// strip removes color and cursor control sequences, leaving printable text.
func strip(s string) string {
	s = oscSeq.ReplaceAllString(s, "")
	s = csiSeq.ReplaceAllString(s, "")
	return strings.NewReplacer("\x0f", "", "\x0e", "").Replace(s)
}

// tidy trims trailing blanks so projections compare stably across runs.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

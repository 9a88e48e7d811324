package tuitest

import (
	"bytes"
	"io"
)

// probeReplies answers the capability probes bubbletea sends at startup.
// There is no real terminal behind the PTY, so unless the harness replies
// the program sits forever waiting for the cursor position report.
var probeReplies = []struct{ probe, reply []byte }{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// streamCapture drains the PTY on its own goroutine, answering capability
// probes inline and accumulating everything as the recorded stream.
type streamCapture struct {
	pty  io.ReadWriter
	out  bytes.Buffer
	tail []byte
	done chan struct{}
}

func newStreamCapture(pty io.ReadWriter) *streamCapture {
	sc := &streamCapture{pty: pty, done: make(chan struct{})}
	go sc.pump()
	return sc
}

func (sc *streamCapture) pump() {
	defer close(sc.done)
	buf := make([]byte, 4096)
	for {
		n, err := sc.pty.Read(buf)
		if n > 0 {
			sc.out.Write(buf[:n])
			sc.answer(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// answer appends the chunk to a rolling tail, replies to every probe found
// there, and trims the tail so probes split across reads still match.
func (sc *streamCapture) answer(chunk []byte) {
	sc.tail = append(sc.tail, chunk...)
	for matched := true; matched; {
		matched = false
		for _, pr := range probeReplies {
			if i := bytes.Index(sc.tail, pr.probe); i >= 0 {
				sc.tail = sc.tail[i+len(pr.probe):]
				_, _ = sc.pty.Write(pr.reply)
				matched = true
			}
		}
	}
	if len(sc.tail) > 256 {
		sc.tail = sc.tail[len(sc.tail)-64:]
	}
}

// wait blocks until the PTY reaches EOF and returns the captured stream.
func (sc *streamCapture) wait() []byte {
	<-sc.done
	return sc.out.Bytes()
}

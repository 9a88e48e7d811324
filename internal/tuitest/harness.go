// Package tuitest drives a compiled terminal program from a test. It runs
// the binary inside a pseudo terminal, plays a script of keystrokes, mouse
// gestures and pauses against it, and records every frame the program
// paints. SwipeStack repaints on a frame clock even while idle, so a
// recording holds many frames; assertions should locate frames by content
// with Recording.FrameContaining rather than by position.
package tuitest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultColumns  = 100
	defaultRows     = 32
	defaultDeadline = 10 * time.Second
)

// Act is one beat of a script: wait out the pause, then send the bytes.
// Either part may be zero.
type Act struct {
	Pause time.Duration
	Send  []byte
}

// Script configures one recorded run of a program under test.
type Script struct {
	Columns       int           // terminal width in cells, 0 means 100
	Rows          int           // terminal height in cells, 0 means 32
	Workdir       string
	Env           []string      // appended to the test process environment
	Deadline      time.Duration // whole-run cap, 0 means 10s
	Interruptible bool          // a SIGINT death counts as a clean exit
	CleanExits    []int         // exit codes besides 0 that count as clean
	Acts          []Act
}

// Play runs command inside a PTY sized per the script, performs the acts in
// order, waits for the program to exit, and parses the captured stream into
// frames.
func Play(ctx context.Context, command []string, script Script) (*Recording, error) {
	if len(command) == 0 {
		return nil, errors.New("tuitest: empty command")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	deadline := script.Deadline
	if deadline <= 0 {
		deadline = defaultDeadline
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = script.Workdir
	cmd.Env = runEnv(script.Env)

	size := &pty.Winsize{
		Cols: uint16(cellsOr(script.Columns, defaultColumns)),
		Rows: uint16(cellsOr(script.Rows, defaultRows)),
	}
	ptmx, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return nil, fmt.Errorf("tuitest: start %s: %w", command[0], err)
	}
	defer func() { _ = ptmx.Close() }()

	capture := newStreamCapture(ptmx)
	began := time.Now()

	for i, act := range script.Acts {
		if act.Pause > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: deadline hit at act %d: %w", i, ctx.Err())
			case <-time.After(act.Pause):
			}
		}
		if len(act.Send) > 0 {
			if _, err := ptmx.Write(act.Send); err != nil {
				return nil, fmt.Errorf("tuitest: send act %d: %w", i, err)
			}
		}
	}

	if err := awaitExit(ctx, cmd, script); err != nil {
		return nil, err
	}

	// Closing the PTY unblocks the capture goroutine's final read.
	_ = ptmx.Close()
	raw := capture.wait()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Elapsed: time.Since(began)}, nil
}

func awaitExit(ctx context.Context, cmd *exec.Cmd, script Script) error {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		return classifyExit(err, script)
	case <-ctx.Done():
		return fmt.Errorf("tuitest: program still running at deadline: %w", ctx.Err())
	}
}

func classifyExit(err error, script Script) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		for _, code := range script.CleanExits {
			if exitErr.ExitCode() == code {
				return nil
			}
		}
	}
	if script.Interruptible && strings.Contains(err.Error(), "signal: interrupt") {
		return nil
	}
	return fmt.Errorf("tuitest: program failed: %w", err)
}

// runEnv layers the script env over the test process environment and pins
// TERM to a color terminal when nobody chose one.
func runEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, kv := range env {
		if strings.HasPrefix(kv, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

func cellsOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

var (
	// KeyEnter sends a carriage return.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC asks the program to terminate.
	KeyCtrlC = []byte{3}
	// KeyEsc dismisses transient overlays.
	KeyEsc = []byte{27}
)

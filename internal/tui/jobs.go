package tui

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// jobKind labels the background work the app can have in flight.
type jobKind int

const (
	jobLoad jobKind = iota
	jobImport
	jobJournal
)

func (k jobKind) String() string {
	switch k {
	case jobImport:
		return "import"
	case jobJournal:
		return "journal"
	}
	return "load"
}

type jobStatus int

const (
	jobRunning jobStatus = iota
	jobDone
	jobFailed
)

func (s jobStatus) String() string {
	switch s {
	case jobRunning:
		return "running"
	case jobFailed:
		return "failed"
	}
	return "done"
}

// jobState is one task's progress, kept per kind on the model so the footer
// meter can show what is in flight.
type jobState struct {
	Seq    int64
	Kind   jobKind
	Status jobStatus
	Began  time.Time
	Took   time.Duration
	Err    string
}

// badge is the compact form shown in the footer meter.
func (j jobState) badge() string {
	switch j.Status {
	case jobRunning:
		return j.Kind.String() + "…"
	case jobFailed:
		return j.Kind.String() + " ✗"
	default:
		return j.Kind.String() + " ✓"
	}
}

// jobBeganMsg marks a task running before its payload lands.
type jobBeganMsg struct {
	State jobState
}

// jobDoneMsg carries a finished task's payload plus its final state.
type jobDoneMsg struct {
	State   jobState
	Payload tea.Msg
}

// jobRunner produces the payload message a finished task hands the model.
type jobRunner func(context.Context) (tea.Msg, error)

// jobBus sequences background tasks onto the bubbletea runtime and logs
// their outcomes.
type jobBus struct {
	seq atomic.Int64
}

func newJobBus() *jobBus { return &jobBus{} }

// Start emits a began message so the model can mark the task running, then
// runs the task and wraps its payload together with the final state.
func (b *jobBus) Start(kind jobKind, run jobRunner) tea.Cmd {
	state := jobState{Seq: b.seq.Add(1), Kind: kind, Status: jobRunning, Began: time.Now()}
	began := func() tea.Msg { return jobBeganMsg{State: state} }
	finish := func() tea.Msg {
		payload, err := run(context.Background())
		done := state
		done.Took = time.Since(state.Began)
		if err != nil {
			done.Status = jobFailed
			done.Err = err.Error()
		} else {
			done.Status = jobDone
		}
		log.Printf("[jobs] %s#%d %s (took=%s, err=%v)", kind, done.Seq, done.Status, done.Took, err)
		return jobDoneMsg{State: done, Payload: payload}
	}
	return tea.Sequence(began, finish)
}

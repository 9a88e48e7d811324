package tuitest

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyExitTreatsInterruptAsClean(t *testing.T) {
	err := errors.New("signal: interrupt")
	if got := classifyExit(err, Script{Interruptible: true}); got != nil {
		t.Fatalf("interruptible run failed: %v", got)
	}
	if got := classifyExit(err, Script{}); got == nil {
		t.Fatal("interrupt without the flag should fail the run")
	}
	if got := classifyExit(nil, Script{}); got != nil {
		t.Fatalf("clean exit classified as failure: %v", got)
	}
}

func TestRunEnvPinsTERM(t *testing.T) {
	var last string
	for _, kv := range runEnv(nil) {
		if strings.HasPrefix(kv, "TERM=") {
			last = kv
		}
	}
	if last == "" {
		t.Fatal("no TERM entry in the run environment")
	}

	last = ""
	for _, kv := range runEnv([]string{"TERM=dumb"}) {
		if strings.HasPrefix(kv, "TERM=") {
			last = kv
		}
	}
	if last != "TERM=dumb" {
		t.Fatalf("caller TERM overridden, last entry %q", last)
	}
}

package tuitest

import (
	"bytes"
	"testing"
)

func TestClickEncodesPressAndRelease(t *testing.T) {
	act := Click(4, 2)
	want := []byte{
		0x1b, '[', 'M', 32, 37, 35,
		0x1b, '[', 'M', 35, 37, 35,
	}
	if !bytes.Equal(act.Send, want) {
		t.Fatalf("click bytes = %v, want %v", act.Send, want)
	}
	if act.Pause != 0 {
		t.Fatalf("click should not pause, got %v", act.Pause)
	}
}

func TestDragRightStreamsMotionPerColumn(t *testing.T) {
	act := DragRight(10, 5, 2)
	if len(act.Send) != 4*6 {
		t.Fatalf("drag is %d bytes, want 4 reports of 6", len(act.Send))
	}
	flags := []byte{act.Send[3], act.Send[9], act.Send[15], act.Send[21]}
	wantFlags := []byte{32, 64, 64, 35}
	if !bytes.Equal(flags, wantFlags) {
		t.Fatalf("report flags = %v, want press, motion, motion, release %v", flags, wantFlags)
	}
	cols := []byte{act.Send[4], act.Send[10], act.Send[16], act.Send[22]}
	wantCols := []byte{43, 44, 45, 45}
	if !bytes.Equal(cols, wantCols) {
		t.Fatalf("report columns = %v, want %v", cols, wantCols)
	}
	for _, i := range []int{5, 11, 17, 23} {
		if act.Send[i] != 38 {
			t.Fatalf("report row byte = %d, want 38", act.Send[i])
		}
	}
}

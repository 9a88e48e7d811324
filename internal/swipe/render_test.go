package swipe

import (
	"math"
	"testing"
)

func TestFrameAtRest(t *testing.T) {
	c, _ := newTestController(t, nil)

	f := c.Frame()
	if f.Top == nil || f.Under == nil {
		t.Fatal("both cards should render at rest")
	}
	if f.Top.Index != 0 || f.Under.Index != 1 {
		t.Fatalf("indices = (%d, %d), want (0, 1)", f.Top.Index, f.Under.Index)
	}
	if f.Top.Offset != (Offset{}) || f.Top.Angle != 0 || f.Top.Scale != 1 {
		t.Fatalf("top transform not at rest: %+v", f.Top)
	}
	if f.Under.Offset != (Offset{Y: 40}) || f.Under.Scale != DefaultScale {
		t.Fatalf("under transform not at rest: %+v", f.Under)
	}

	// The under matrix scales about the origin, then drops by the gap.
	x, y := f.Under.Matrix.Apply(10, 0)
	if x != 9 || y != 40 {
		t.Fatalf("under matrix moved (10,0) to (%v, %v), want (9, 40)", x, y)
	}
}

func TestFrameReflectsDragTransforms(t *testing.T) {
	c, _ := newTestController(t, nil)

	c.DragStart(false)
	c.DragUpdate(20, 10)
	f := c.Frame()

	if f.Top.Offset != (Offset{X: 20, Y: 10}) {
		t.Fatalf("top offset = %+v, want {20 10}", f.Top.Offset)
	}
	if f.Top.Angle == 0 {
		t.Fatal("top angle should track a horizontal drag")
	}
	x, y := f.Top.Matrix.Apply(0, 0)
	if x != 20 || y != 10 {
		t.Fatalf("top matrix moved the origin to (%v, %v), want (20, 10)", x, y)
	}

	// A unit step along x picks up the rotation before the translation.
	x, _ = f.Top.Matrix.Apply(1, 0)
	if want := 20 + math.Cos(f.Top.Angle); math.Abs(x-want) > 1e-12 {
		t.Fatalf("top matrix x = %v, want %v", x, want)
	}
}

func TestFrameUnderCardWrapsToFirst(t *testing.T) {
	c, _ := newTestController(t, func(cfg *Config) {
		cfg.InitialIndex = 2
	})

	f := c.Frame()
	if f.Top.Index != 2 || f.Under.Index != 0 {
		t.Fatalf("indices = (%d, %d), want (2, 0)", f.Top.Index, f.Under.Index)
	}
}

func TestFrameSingleCardShowsItselfUnderneath(t *testing.T) {
	c, _ := newTestController(t, func(cfg *Config) {
		cfg.DeckSize = 1
	})

	f := c.Frame()
	if f.Top.Index != 0 || f.Under.Index != 0 {
		t.Fatalf("indices = (%d, %d), want (0, 0)", f.Top.Index, f.Under.Index)
	}
}

func TestFrameEmptyDeckRendersNothing(t *testing.T) {
	c, rec := newTestController(t, func(cfg *Config) {
		cfg.DeckSize = 0
	})

	f := c.Frame()
	if f.Top != nil || f.Under != nil {
		t.Fatalf("empty deck rendered %+v", f)
	}
	if len(rec.indexes) != 0 {
		t.Fatalf("index changes = %v, want none", rec.indexes)
	}
}

func TestFrameSnapsRunawayIndexToZeroOnEmptyDeck(t *testing.T) {
	c, rec := newTestController(t, func(cfg *Config) {
		cfg.DeckSize = 0
		cfg.InitialIndex = 5
	})

	f := c.Frame()
	if f.Top != nil || f.Under != nil {
		t.Fatalf("empty deck rendered %+v", f)
	}
	if c.Index() != 0 {
		t.Fatalf("index = %d, want snapped to 0", c.Index())
	}
	if len(rec.indexes) != 1 || rec.indexes[0] != 0 {
		t.Fatalf("index changes = %v, want [0]", rec.indexes)
	}
}

func TestFrameClampsRunawayIndexToLastCard(t *testing.T) {
	c, rec := newTestController(t, func(cfg *Config) {
		cfg.InitialIndex = 7
	})

	f := c.Frame()
	if f.Top == nil || f.Top.Index != 2 {
		t.Fatalf("top = %+v, want index clamped to 2", f.Top)
	}
	if len(rec.indexes) != 1 || rec.indexes[0] != 2 {
		t.Fatalf("index changes = %v, want [2]", rec.indexes)
	}

	// A second frame is already in range and stays quiet.
	c.Frame()
	if len(rec.indexes) != 1 {
		t.Fatalf("index changes = %v after second frame, want still one", rec.indexes)
	}
}

func TestFrameNegativeIndexRendersNothing(t *testing.T) {
	c, rec := newTestController(t, func(cfg *Config) {
		cfg.InitialIndex = -2
	})

	f := c.Frame()
	if f.Top != nil || f.Under != nil {
		t.Fatalf("negative cursor rendered %+v", f)
	}
	if c.Index() != -2 {
		t.Fatalf("index = %d, want left at -2 for the caller to fix", c.Index())
	}
	if len(rec.indexes) != 0 {
		t.Fatalf("index changes = %v, want none", rec.indexes)
	}
}

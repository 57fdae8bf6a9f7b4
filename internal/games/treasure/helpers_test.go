package treasure

import (
	"testing"

	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
)

func newTestWorld(t *testing.T, v Variant, seed int64) *World {
	t.Helper()
	return NewWorld(config.DefaultTreasureConfig(), v, seed)
}

func runningWorld(t *testing.T, v Variant, seed int64) *World {
	t.Helper()
	w := newTestWorld(t, v, seed)
	w.Start()
	return w
}

func held(dirs ...core.Direction) core.InputFrame {
	in := core.NewInputFrame()
	for _, d := range dirs {
		in.Dirs.Press(d)
	}
	return in
}

// scriptedInput returns a reproducible input for tick i.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch (i / 15) % 6 {
	case 0:
		in.Dirs.Press(core.DirRight)
	case 1:
		in.Dirs.Press(core.DirUp)
		in.Dirs.Press(core.DirRight)
	case 2:
		in.Dirs.Press(core.DirDown)
	case 3:
		in.Dirs.Press(core.DirLeft)
	case 4:
		in.Dirs.Press(core.DirUp)
	}
	if i%40 == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if ev, ok := e.(T); ok {
			out = append(out, ev)
		}
	}
	return out
}

package focus

import (
	"testing"

	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"
)

func newTestState(t *testing.T) (*state.WmState, *platform.Simulator, *container.Workspace) {
	t.Helper()

	sim := platform.NewSimulator()
	s := state.New(sim)

	monitor := container.NewMonitor("main")
	monitor.SetRect(types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	if err := container.Attach(monitor, s.Root, 0); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}
	ws := container.NewWorkspace("1", types.TilingHorizontal)
	if err := container.Attach(ws, monitor, 0); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}
	monitor.SetDisplayedWorkspace(ws)

	return s, sim, ws
}

func addTiling(t *testing.T, sim *platform.Simulator, parent container.Container, frame types.Rect) *container.TilingWindow {
	t.Helper()
	w := container.NewTilingWindow(sim.CreateWindow(frame))
	if err := container.Attach(w, parent, len(parent.Children())); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	return w
}

func addFloating(t *testing.T, sim *platform.Simulator, parent container.Container, frame types.Rect) *container.NonTilingWindow {
	t.Helper()
	w := container.NewNonTilingWindow(sim.CreateWindow(frame), types.StateFloating)
	if err := container.Attach(w, parent, len(parent.Children())); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	return w
}

func TestTilingFocusSiblings(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 640, Height: 1080})
	b := addTiling(t, sim, ws, types.Rect{X: 640, Width: 640, Height: 1080})
	c := addTiling(t, sim, ws, types.Rect{X: 1280, Width: 640, Height: 1080})
	container.SetFocusedDescendant(b)

	if err := InDirection(s, b, types.DirLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != a.ID() {
		t.Error("expected focus to move left to the first window")
	}

	if err := InDirection(s, a, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != b.ID() {
		t.Error("expected focus to move right to the middle window")
	}

	if err := InDirection(s, b, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != c.ID() {
		t.Error("expected focus to move right to the last window")
	}
}

func TestTilingFocusNoWraparound(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 960, Height: 1080})
	addTiling(t, sim, ws, types.Rect{X: 960, Width: 960, Height: 1080})
	container.SetFocusedDescendant(a)
	s.PendingSync.Drain()

	// Left of the left-most window: no target, focus stays put.
	if err := InDirection(s, a, types.DirLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != a.ID() {
		t.Error("focus should not wrap around")
	}
	if s.PendingSync.HasWork() {
		t.Error("a no-op focus move should queue nothing")
	}
}

func TestTilingFocusClimbsAndEntersSplit(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 960, Height: 1080})
	split := container.NewSplitContainer(types.TilingVertical, config.Gaps{})
	if err := container.Attach(split, ws, 1); err != nil {
		t.Fatalf("attach split: %v", err)
	}
	b := addTiling(t, sim, split, types.Rect{X: 960, Y: 0, Width: 960, Height: 540})
	c := addTiling(t, sim, split, types.Rect{X: 960, Y: 540, Width: 960, Height: 540})

	// Entering the split follows its focus order.
	container.SetFocusedDescendant(c)
	if err := InDirection(s, a, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != c.ID() {
		t.Error("entering a split should land on its last focused window")
	}

	// Within the split, vertical movement stays local.
	if err := InDirection(s, c, types.DirUp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != b.ID() {
		t.Error("expected focus to move up within the split")
	}

	// Horizontal movement from inside the split climbs to the workspace.
	if err := InDirection(s, b, types.DirLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != a.ID() {
		t.Error("expected focus to climb out of the split")
	}
}

func TestFloatingFocusByPosition(t *testing.T) {
	s, sim, ws := newTestState(t)
	left := addFloating(t, sim, ws, types.Rect{X: 10, Y: 100, Width: 200, Height: 200})
	middle := addFloating(t, sim, ws, types.Rect{X: 50, Y: 100, Width: 200, Height: 200})
	right := addFloating(t, sim, ws, types.Rect{X: 90, Y: 100, Width: 200, Height: 200})
	container.SetFocusedDescendant(middle)

	if err := InDirection(s, middle, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != right.ID() {
		t.Error("expected focus on the right-most floating window")
	}

	if err := InDirection(s, middle, types.DirLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != left.ID() {
		t.Error("expected focus on the left-most floating window")
	}

	// No wraparound past the right-most window.
	container.SetFocusedDescendant(right)
	if err := InDirection(s, right, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != right.ID() {
		t.Error("floating focus should not wrap around")
	}
}

func TestFocusAcrossMonitors(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 1920, Height: 1080})

	second := container.NewMonitor("second")
	second.SetRect(types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080})
	if err := container.Attach(second, s.Root, 1); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}
	ws2 := container.NewWorkspace("2", types.TilingHorizontal)
	if err := container.Attach(ws2, second, 0); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}
	second.SetDisplayedWorkspace(ws2)
	b := addTiling(t, sim, ws2, types.Rect{X: 1920, Width: 960, Height: 1080})
	far := addTiling(t, sim, ws2, types.Rect{X: 2880, Width: 960, Height: 1080})
	container.SetFocusedDescendant(far)

	container.SetFocusedDescendant(a)
	if err := InDirection(s, a, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Descending into the target workspace from the left lands on its
	// left-most window, not its focus order.
	if got := s.FocusedContainer(); got.ID() != b.ID() {
		t.Error("expected focus on the near-edge window of the right monitor")
	}
}

func TestFocusAcrossMonitorsPrefersFullscreen(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 1920, Height: 1080})

	second := container.NewMonitor("second")
	second.SetRect(types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080})
	if err := container.Attach(second, s.Root, 1); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}
	ws2 := container.NewWorkspace("2", types.TilingHorizontal)
	if err := container.Attach(ws2, second, 0); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}
	second.SetDisplayedWorkspace(ws2)
	addTiling(t, sim, ws2, types.Rect{X: 1920, Width: 1920, Height: 1080})
	full := container.NewNonTilingWindow(
		sim.CreateWindow(types.Rect{X: 1920, Width: 1920, Height: 1080}),
		types.StateFullscreen,
	)
	if err := container.Attach(full, ws2, 1); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	container.SetFocusedDescendant(full)

	container.SetFocusedDescendant(a)
	if err := InDirection(s, a, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.FocusedContainer(); got.ID() != full.ID() {
		t.Error("a focused fullscreen window should win the target workspace")
	}
}

func TestFocusQueuesSyncEffects(t *testing.T) {
	s, sim, ws := newTestState(t)
	a := addTiling(t, sim, ws, types.Rect{X: 0, Width: 960, Height: 1080})
	b := addTiling(t, sim, ws, types.Rect{X: 960, Width: 960, Height: 1080})
	container.SetFocusedDescendant(a)
	s.PendingSync.Drain()

	if err := InDirection(s, a, types.DirRight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	effects := s.PendingSync.Drain()
	if !effects.FocusChange || !effects.CursorJump {
		t.Error("a successful focus move should queue a focus change and cursor jump")
	}
	if got := s.FocusedContainer(); got.ID() != b.ID() {
		t.Error("focus order should record the new target")
	}
}

func TestMinimizedWindowIsNotAnOrigin(t *testing.T) {
	s, sim, ws := newTestState(t)
	addTiling(t, sim, ws, types.Rect{X: 0, Width: 960, Height: 1080})
	minimized := container.NewNonTilingWindow(
		sim.CreateWindow(types.Rect{X: 960, Width: 960, Height: 1080}),
		types.StateMinimized,
	)
	if err := container.Attach(minimized, ws, 1); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	container.SetFocusedDescendant(minimized)
	s.PendingSync.Drain()

	if err := InDirection(s, minimized, types.DirLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PendingSync.HasWork() {
		t.Error("a minimized origin should be a no-op")
	}
}

package arrange

import (
	"math"
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

func addTiling(t *testing.T, sim *platform.Simulator, parent container.Container, frame types.Rect) (*container.TilingWindow, platform.NativeWindow) {
	t.Helper()
	native := sim.CreateWindow(frame)
	w := container.NewTilingWindow(native)
	if err := container.Attach(w, parent, len(parent.Children())); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	return w, native
}

func addDraggedFloating(t *testing.T, sim *platform.Simulator, parent container.Container, frame types.Rect) (*container.NonTilingWindow, platform.NativeWindow) {
	t.Helper()
	native := sim.CreateWindow(frame)
	w := container.NewNonTilingWindow(native, types.StateFloating)
	w.SetActiveDrag(&types.ActiveDrag{IsFromTiling: true, Operation: types.DragMoving})
	if err := container.Attach(w, parent, len(parent.Children())); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	return w, native
}

func TestDropPositionFor(t *testing.T) {
	rect := types.Rect{X: 100, Y: 100, Width: 100, Height: 100}

	tests := []struct {
		name  string
		mouse types.Point
		want  DropPosition
	}{
		{"above center", types.Point{X: 150, Y: 110}, DropTop},
		{"below center", types.Point{X: 150, Y: 190}, DropBottom},
		{"left of center", types.Point{X: 110, Y: 150}, DropLeft},
		{"right of center", types.Point{X: 190, Y: 150}, DropRight},
		{"upper left quadrant", types.Point{X: 120, Y: 140}, DropLeft},
		{"diagonal resolves vertically", types.Point{X: 190, Y: 190}, DropBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DropPositionFor(tt.mouse, rect); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDropAsSibling(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	a, _ := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 900, Height: 1080})
	moved, native := addDraggedFloating(t, sim, ws, types.Rect{X: 100, Y: 200, Width: 400, Height: 300})

	// Drop to the right of the tiled window.
	sim.SetMousePosition(types.Point{X: 850, Y: 500})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	children := ws.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].ID() != a.ID() || children[1].ID() != moved.ID() {
		t.Error("expected the dropped window to land after the tiled one")
	}
	if _, ok := children[1].(*container.TilingWindow); !ok {
		t.Error("the dropped window should be tiling again")
	}

	found := s.WindowFromNative(native.Handle())
	if found == nil || found.ActiveDrag() != nil {
		t.Error("the active drag should be cleared")
	}
}

func TestDropCreatesSplit(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	a, _ := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 900, Height: 1080})
	moved, native := addDraggedFloating(t, sim, ws, types.Rect{X: 100, Y: 200, Width: 400, Height: 300})

	// Drop below the tiled window: the vertical drop conflicts with the
	// workspace's horizontal direction.
	sim.SetMousePosition(types.Point{X: 450, Y: 1000})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	split, ok := ws.Children()[0].(*container.SplitContainer)
	if !ok {
		t.Fatal("expected a split container at the tiled window's position")
	}
	if split.TilingDirection() != types.TilingVertical {
		t.Error("the new split should tile on the inverse axis")
	}
	inner := split.Children()
	if len(inner) != 2 || inner[0].ID() != a.ID() || inner[1].ID() != moved.ID() {
		t.Error("expected the dropped window below the original")
	}
	if f := split.Children()[0].(*container.TilingWindow).SizeFraction(); f != 0.5 {
		t.Errorf("expected rebalanced fractions, got %f", f)
	}
	if err := container.Validate(s.Root); err != nil {
		t.Errorf("tree invariants violated after split insertion: %v", err)
	}
}

func TestDropAboveInsertsFirst(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	a, _ := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 900, Height: 1080})
	moved, native := addDraggedFloating(t, sim, ws, types.Rect{X: 100, Y: 200, Width: 400, Height: 300})

	sim.SetMousePosition(types.Point{X: 450, Y: 100})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	split, ok := ws.Children()[0].(*container.SplitContainer)
	if !ok {
		t.Fatal("expected a split container")
	}
	inner := split.Children()
	if len(inner) != 2 || inner[0].ID() != moved.ID() || inner[1].ID() != a.ID() {
		t.Error("expected the dropped window above the original")
	}
}

func TestDropOnEmptyWorkspace(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	moved, native := addDraggedFloating(t, sim, ws, types.Rect{X: 100, Y: 200, Width: 400, Height: 300})

	sim.SetMousePosition(types.Point{X: 960, Y: 540})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ws.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(ws.Children()))
	}
	tiling, ok := ws.Children()[0].(*container.TilingWindow)
	if !ok {
		t.Fatal("expected the window converted to tiling in place")
	}
	if tiling.ID() != moved.ID() {
		t.Error("container identity should survive the conversion")
	}
}

func TestSoleWindowSnapsBack(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	a, native := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	s.PendingSync.Drain()

	// The user dragged the only window in the workspace.
	sim.SetFrame(native.Handle(), types.Rect{X: 200, Y: 200, Width: 800, Height: 600})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	effects := s.PendingSync.Drain()
	if len(effects.Redraw) != 1 || effects.Redraw[0].ID() != a.ID() {
		t.Error("expected the window queued for redraw at its tiled position")
	}
	if len(ws.Children()) != 1 {
		t.Error("the tree should be unchanged")
	}
}

func TestResizeAdjustsSizeFractions(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	a, nativeA := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 960, Height: 1080})
	b, _ := addTiling(t, sim, ws, types.Rect{X: 960, Y: 0, Width: 960, Height: 1080})

	// Widen the first window by 100px; the workspace is 1920px wide.
	sim.SetFrame(nativeA.Handle(), types.Rect{X: 0, Y: 0, Width: 1060, Height: 1080})
	if err := OnWindowMovedOrResizedEnd(s, nativeA, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantA := 0.5 + 100.0/1920.0
	if got := a.SizeFraction(); math.Abs(got-wantA) > 1e-9 {
		t.Errorf("expected fraction %f, got %f", wantA, got)
	}
	wantB := 0.5 - 100.0/1920.0
	if got := b.SizeFraction(); math.Abs(got-wantB) > 1e-9 {
		t.Errorf("expected fraction %f, got %f", wantB, got)
	}

	effects := s.PendingSync.Drain()
	if len(effects.Redraw) == 0 {
		t.Error("expected the parent queued for redraw")
	}
}

func TestDragAcrossMonitors(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	w, native := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})

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
	b, _ := addTiling(t, sim, ws2, types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080})

	// Drop the window on the left half of the second monitor.
	sim.SetMousePosition(types.Point{X: 2500, Y: 500})
	sim.SetFrame(native.Handle(), types.Rect{X: 2000, Y: 100, Width: 800, Height: 600})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ws.Children()) != 0 {
		t.Error("the window should have left its old workspace")
	}
	children := ws2.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children on the target workspace, got %d", len(children))
	}
	if children[0].ID() != w.ID() || children[1].ID() != b.ID() {
		t.Error("expected the window inserted left of the existing one")
	}
	if err := container.Validate(s.Root); err != nil {
		t.Errorf("tree invariants violated after cross-monitor move: %v", err)
	}
}

func TestPausedManagerIgnoresEvents(t *testing.T) {
	s, sim, ws := newTestState(t)
	cfg := config.Default()
	_, native := addTiling(t, sim, ws, types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	s.PendingSync.Drain()
	s.Paused = true

	sim.SetFrame(native.Handle(), types.Rect{X: 200, Y: 200, Width: 800, Height: 600})
	if err := OnWindowMovedOrResizedEnd(s, native, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PendingSync.HasWork() {
		t.Error("a paused manager should not queue work")
	}
}

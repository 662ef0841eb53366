package container

import (
	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/types"
)

// RootContainer is the sole ancestor of all monitors. Exactly one exists
// per tree and it has no parent.
type RootContainer struct {
	baseContainer
}

// NewRoot creates an empty root container.
func NewRoot() *RootContainer {
	return &RootContainer{baseContainer: newBase()}
}

func (r *RootContainer) Kind() Kind {
	return KindRoot
}

// ToRect fails: the root has no geometry of its own.
func (r *RootContainer) ToRect() (types.Rect, error) {
	return types.Rect{}, platform.ErrGeometryUnavailable
}

// Monitors returns the root's children in stored order.
func (r *RootContainer) Monitors() []*Monitor {
	monitors := make([]*Monitor, 0, len(r.children))
	for _, child := range r.children {
		if m, ok := child.(*Monitor); ok {
			monitors = append(monitors, m)
		}
	}
	return monitors
}

// Monitor owns an ordered sequence of workspaces and maps to a physical
// display.
type Monitor struct {
	baseContainer
	name      string
	rect      types.Rect
	hasRect   bool
	displayed uuid.UUID
}

// NewMonitor creates a monitor with unknown geometry. Geometry arrives
// later via SetRect once the display is resolved.
func NewMonitor(name string) *Monitor {
	return &Monitor{baseContainer: newBase(), name: name}
}

func (m *Monitor) Kind() Kind {
	return KindMonitor
}

func (m *Monitor) Name() string {
	return m.name
}

// SetRect records the monitor's display rectangle.
func (m *Monitor) SetRect(rect types.Rect) {
	m.rect = rect
	m.hasRect = true
}

func (m *Monitor) ToRect() (types.Rect, error) {
	if !m.hasRect {
		return types.Rect{}, platform.ErrGeometryUnavailable
	}
	return m.rect, nil
}

// Workspaces returns the monitor's workspaces in stored order.
func (m *Monitor) Workspaces() []*Workspace {
	workspaces := make([]*Workspace, 0, len(m.children))
	for _, child := range m.children {
		if ws, ok := child.(*Workspace); ok {
			workspaces = append(workspaces, ws)
		}
	}
	return workspaces
}

// DisplayedWorkspace returns the workspace currently visible on this
// monitor, or nil if none is displayed.
func (m *Monitor) DisplayedWorkspace() *Workspace {
	for _, ws := range m.Workspaces() {
		if ws.ID() == m.displayed {
			return ws
		}
	}
	return nil
}

// SetDisplayedWorkspace marks a workspace as the visible one. At most one
// workspace per monitor is displayed.
func (m *Monitor) SetDisplayedWorkspace(ws *Workspace) {
	m.displayed = ws.ID()
}

// WorkspaceByName finds a child workspace by name, or nil.
func (m *Monitor) WorkspaceByName(name string) *Workspace {
	for _, ws := range m.Workspaces() {
		if ws.Name() == name {
			return ws
		}
	}
	return nil
}

// Workspace is a named, tiling-direction-aware container of tiling and
// floating windows.
type Workspace struct {
	baseContainer
	name            string
	tilingDirection types.TilingDirection
}

// NewWorkspace creates a workspace with the given tiling direction.
func NewWorkspace(name string, direction types.TilingDirection) *Workspace {
	return &Workspace{
		baseContainer:   newBase(),
		name:            name,
		tilingDirection: direction,
	}
}

func (w *Workspace) Kind() Kind {
	return KindWorkspace
}

func (w *Workspace) Name() string {
	return w.name
}

func (w *Workspace) TilingDirection() types.TilingDirection {
	return w.tilingDirection
}

func (w *Workspace) SetTilingDirection(direction types.TilingDirection) {
	w.tilingDirection = direction
}

// IsDisplayed reports whether this workspace is the visible one on its
// monitor.
func (w *Workspace) IsDisplayed() bool {
	monitor, ok := w.parent.(*Monitor)
	return ok && monitor.displayed == w.id
}

// ToRect resolves to the owning monitor's rectangle: the displayed
// workspace covers the whole display.
func (w *Workspace) ToRect() (types.Rect, error) {
	if w.parent == nil {
		return types.Rect{}, ErrNoParent
	}
	return w.parent.ToRect()
}

// SplitContainer groups tiling children along one axis inside a workspace.
type SplitContainer struct {
	baseContainer
	tilingDirection types.TilingDirection
	gaps            config.Gaps
	sizeFraction    float64
	rect            types.Rect
	hasRect         bool
}

// NewSplitContainer creates an empty split with the given direction,
// carrying the gap configuration in effect at creation time.
func NewSplitContainer(direction types.TilingDirection, gaps config.Gaps) *SplitContainer {
	return &SplitContainer{
		baseContainer:   newBase(),
		tilingDirection: direction,
		gaps:            gaps,
		sizeFraction:    1.0,
	}
}

func (s *SplitContainer) Kind() Kind {
	return KindSplit
}

func (s *SplitContainer) TilingDirection() types.TilingDirection {
	return s.tilingDirection
}

func (s *SplitContainer) SetTilingDirection(direction types.TilingDirection) {
	s.tilingDirection = direction
}

// Gaps returns the gap configuration the split was created with.
func (s *SplitContainer) Gaps() config.Gaps {
	return s.gaps
}

func (s *SplitContainer) SizeFraction() float64 {
	return s.sizeFraction
}

func (s *SplitContainer) SetSizeFraction(fraction float64) {
	s.sizeFraction = fraction
}

// SetRect records an explicitly computed rectangle for the split.
func (s *SplitContainer) SetRect(rect types.Rect) {
	s.rect = rect
	s.hasRect = true
}

// ToRect returns the split's recorded rectangle, or the bounding box of
// its children's rectangles when no layout pass has recorded one yet.
func (s *SplitContainer) ToRect() (types.Rect, error) {
	if s.hasRect {
		return s.rect, nil
	}

	bounds := types.Rect{}
	found := false
	for _, child := range s.children {
		rect, err := child.ToRect()
		if err != nil {
			continue
		}
		if !found {
			bounds = rect
			found = true
			continue
		}
		left := min(bounds.X, rect.X)
		top := min(bounds.Y, rect.Y)
		right := max(bounds.Right(), rect.Right())
		bottom := max(bounds.Bottom(), rect.Bottom())
		bounds = types.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
	}
	if !found {
		return types.Rect{}, platform.ErrGeometryUnavailable
	}
	return bounds, nil
}

// TilingWindow wraps a native window participating in tiling layout. It is
// always a leaf whose parent is a workspace or split container.
type TilingWindow struct {
	baseContainer
	native       platform.NativeWindow
	sizeFraction float64
	activeDrag   *types.ActiveDrag
}

// NewTilingWindow wraps a native window as a tiling container.
func NewTilingWindow(native platform.NativeWindow) *TilingWindow {
	return &TilingWindow{
		baseContainer: newBase(),
		native:        native,
		sizeFraction:  1.0,
	}
}

func (w *TilingWindow) Kind() Kind {
	return KindTilingWindow
}

func (w *TilingWindow) Native() platform.NativeWindow {
	return w.native
}

func (w *TilingWindow) State() types.WindowState {
	return types.StateTiling
}

func (w *TilingWindow) SizeFraction() float64 {
	return w.sizeFraction
}

func (w *TilingWindow) SetSizeFraction(fraction float64) {
	w.sizeFraction = fraction
}

func (w *TilingWindow) ActiveDrag() *types.ActiveDrag {
	return w.activeDrag
}

func (w *TilingWindow) SetActiveDrag(drag *types.ActiveDrag) {
	w.activeDrag = drag
}

func (w *TilingWindow) ToRect() (types.Rect, error) {
	return w.native.Frame()
}

// NonTilingWindow wraps a native window excluded from tiling order:
// floating, fullscreen or minimized.
type NonTilingWindow struct {
	baseContainer
	native     platform.NativeWindow
	state      types.WindowState
	activeDrag *types.ActiveDrag
}

// NewNonTilingWindow wraps a native window in the given non-tiling state.
func NewNonTilingWindow(native platform.NativeWindow, state types.WindowState) *NonTilingWindow {
	return &NonTilingWindow{
		baseContainer: newBase(),
		native:        native,
		state:         state,
	}
}

func (w *NonTilingWindow) Kind() Kind {
	return KindNonTilingWindow
}

func (w *NonTilingWindow) Native() platform.NativeWindow {
	return w.native
}

func (w *NonTilingWindow) State() types.WindowState {
	return w.state
}

// SetState changes the window's non-tiling state.
func (w *NonTilingWindow) SetState(state types.WindowState) {
	w.state = state
}

func (w *NonTilingWindow) ActiveDrag() *types.ActiveDrag {
	return w.activeDrag
}

func (w *NonTilingWindow) SetActiveDrag(drag *types.ActiveDrag) {
	w.activeDrag = drag
}

func (w *NonTilingWindow) ToRect() (types.Rect, error) {
	return w.native.Frame()
}

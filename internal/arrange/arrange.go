// Package arrange reacts to the end of a user drag or resize and folds
// the result back into the container tree: dragged windows are
// re-inserted at the drop position, resized windows have their size
// fractions adjusted.
package arrange

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/logging"
	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"
)

// DropPosition is the side of the nearest container a window was
// dropped onto. The containing rect is divided into an X, giving four
// triangular quadrants.
type DropPosition string

const (
	DropTop    DropPosition = "top"
	DropBottom DropPosition = "bottom"
	DropLeft   DropPosition = "left"
	DropRight  DropPosition = "right"
)

// DropPositionFor classifies where the mouse sits relative to the
// rect's center. Ties between the diagonals resolve to top or bottom.
func DropPositionFor(mouse types.Point, rect types.Rect) DropPosition {
	center := rect.Center()
	deltaX := mouse.X - center.X
	deltaY := mouse.Y - center.Y

	if abs(deltaX) > abs(deltaY) {
		if deltaX > 0 {
			return DropRight
		}
		return DropLeft
	}
	if deltaY > 0 {
		return DropBottom
	}
	return DropTop
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// OnWindowMovedOrResizedEnd handles the end of a user-driven move or
// resize of the given native window. A dragged tiling window may change
// monitors or be re-inserted elsewhere in the tree; a resized one has
// the size delta applied to its tiling fractions. Does nothing while
// the manager is paused or when the window is unmanaged.
func OnWindowMovedOrResizedEnd(s *state.WmState, native platform.NativeWindow, cfg *config.Config) error {
	if s.Paused {
		return nil
	}

	window := s.WindowFromNative(native.Handle())
	if window == nil {
		return nil
	}
	// The drag is over regardless of how arrangement goes.
	defer window.SetActiveDrag(nil)

	switch w := window.(type) {
	case *container.NonTilingWindow:
		drag := w.ActiveDrag()
		if drag != nil && drag.IsFromTiling && drag.Operation == types.DragMoving {
			// A temporary floating window that reverts to tiling.
			return dropAsTilingWindow(s, w, cfg)
		}
		return nil
	case *container.TilingWindow:
		return arrangeTilingWindow(s, w, cfg)
	default:
		return nil
	}
}

func arrangeTilingWindow(s *state.WmState, window *container.TilingWindow, cfg *config.Config) error {
	before := monitorID(window)
	if err := tryArrangeBetweenMonitors(s, window, cfg); err != nil {
		logging.Info().Err(err).Msg("skipping monitor arrangement")
	}
	if monitorID(window) != before {
		return nil
	}

	parent := window.Parent()
	if parent == nil {
		return container.ErrNoParent
	}
	oldRect, err := window.ToRect()
	if err != nil {
		return err
	}

	// A lone window in its workspace snaps back to its tiled position.
	if _, ok := parent.(*container.Workspace); ok && len(container.TilingSiblings(window)) == 0 {
		s.PendingSync.QueueContainerToRedraw(window)
		return nil
	}

	newRect, err := window.Native().RefreshFrame()
	if err != nil {
		logging.Warn().Err(err).Msg("could not refresh window frame")
		return nil
	}

	ResizeByPixelDeltas(s, window, newRect.Width-oldRect.Width, newRect.Height-oldRect.Height)
	return nil
}

// tryArrangeBetweenMonitors moves the window to the monitor under the
// mouse when the drag crossed a monitor boundary, then re-inserts it at
// the drop position on the target workspace.
func tryArrangeBetweenMonitors(s *state.WmState, window container.WindowContainer, cfg *config.Config) error {
	if len(s.Monitors()) < 2 {
		return nil
	}

	anchor, err := s.MousePosition()
	if err != nil {
		return err
	}

	target := state.FindMonitorByAnchorPoint(s.Root, anchor)
	current := container.MonitorOf(window)
	if target == nil || current == nil || target.ID() == current.ID() {
		return nil
	}
	workspace := target.DisplayedWorkspace()
	if workspace == nil {
		return nil
	}

	if err := container.MoveWithinTree(window, workspace, len(workspace.Children())); err != nil {
		return fmt.Errorf("move window to workspace %q: %w", workspace.Name(), err)
	}
	s.PendingSync.QueueContainerToRedraw(workspace)

	mouse, err := s.MousePosition()
	if err != nil {
		return err
	}
	return moveWindowToPosition(s, window, mouse, cfg)
}

func monitorID(c container.Container) uuid.UUID {
	if m := container.MonitorOf(c); m != nil {
		return m.ID()
	}
	return uuid.Nil
}

// moveWindowToPosition re-inserts an already-tiling window at the drop
// position under the mouse.
func moveWindowToPosition(s *state.WmState, window container.WindowContainer, position types.Point, cfg *config.Config) error {
	mouseWorkspace := workspaceAtPoint(s, position)
	if mouseWorkspace == nil {
		mouseWorkspace = container.WorkspaceOf(window)
	}
	if mouseWorkspace == nil {
		return errors.New("window has no workspace")
	}

	targetParent := deepestDirectionContainerAt(s, mouseWorkspace, position, window.ID())

	// An empty workspace under the mouse leaves the window where the
	// workspace move put it.
	if len(container.TilingChildren(targetParent)) == 0 {
		return nil
	}

	nearest, nearestRect, err := nearestTilingChild(targetParent, position)
	if err != nil {
		return err
	}

	drop := DropPositionFor(position, nearestRect)
	return placeAtDrop(s, window, targetParent, nearest, drop, cfg)
}

// dropAsTilingWindow converts a temporary floating window back to
// tiling and inserts it at the drop position under the mouse.
func dropAsTilingWindow(s *state.WmState, moved *container.NonTilingWindow, cfg *config.Config) error {
	logging.Info().
		Str("id", moved.ID().String()).
		Msg("tiling window drag ended")

	mouse, err := s.MousePosition()
	if err != nil {
		return err
	}
	workspace := container.WorkspaceOf(moved)
	if workspace == nil {
		return errors.New("window has no workspace")
	}

	targetParent := deepestDirectionContainerAt(s, workspace, mouse, moved.ID())

	// An empty workspace takes the window directly.
	if len(container.TilingChildren(targetParent)) == 0 {
		tiling, err := container.ReplaceWithTiling(moved)
		if err != nil {
			return err
		}
		s.PendingSync.QueueContainerToRedraw(tiling)
		return nil
	}

	nearest, nearestRect, err := nearestTilingChild(targetParent, mouse)
	if err != nil {
		return err
	}
	drop := DropPositionFor(mouse, nearestRect)

	tiling, err := container.ReplaceWithTiling(moved)
	if err != nil {
		return err
	}

	return placeAtDrop(s, tiling, targetParent, nearest, drop, cfg)
}

// placeAtDrop inserts the window next to the nearest container, either
// as a direct sibling or inside a new split when the drop axis
// conflicts with the parent's tiling direction.
func placeAtDrop(s *state.WmState, window container.Container, targetParent container.DirectionContainer, nearest container.TilingContainer, drop DropPosition, cfg *config.Config) error {
	direction := targetParent.TilingDirection()
	_, nearestIsWindow := nearest.(*container.TilingWindow)

	verticalDrop := drop == DropTop || drop == DropBottom
	shouldSplit := nearestIsWindow &&
		((direction == types.TilingHorizontal && verticalDrop) ||
			(direction == types.TilingVertical && !verticalDrop))

	if shouldSplit {
		split := container.NewSplitContainer(direction.Inverse(), cfg.Gaps)
		if err := container.WrapInSplitContainer(split, targetParent, []container.Container{nearest}); err != nil {
			return err
		}

		index := 1
		if drop == DropTop || drop == DropLeft {
			index = 0
		}
		if err := container.MoveWithinTree(window, split, index); err != nil {
			return err
		}
	} else {
		index := container.Index(nearest)
		if drop == DropBottom || drop == DropRight {
			index++
		}
		if err := container.MoveWithinTree(window, targetParent, index); err != nil {
			return err
		}
	}

	s.PendingSync.QueueContainerToRedraw(targetParent)
	return nil
}

// deepestDirectionContainerAt returns the deepest direction container
// under the point, falling back to the workspace itself.
func deepestDirectionContainerAt(s *state.WmState, workspace *container.Workspace, position types.Point, exclude uuid.UUID) container.DirectionContainer {
	target := container.DirectionContainer(workspace)
	depth := len(container.Ancestors(workspace))

	for _, c := range s.ContainersAtPoint(workspace, position) {
		if c.ID() == exclude {
			continue
		}
		dc, err := container.AsDirectionContainer(c)
		if err != nil {
			continue
		}
		if d := len(container.Ancestors(c)); d > depth {
			target = dc
			depth = d
		}
	}
	return target
}

// nearestTilingChild picks the tiling child whose rect is closest to
// the point. Later children win distance ties.
func nearestTilingChild(parent container.Container, position types.Point) (container.TilingContainer, types.Rect, error) {
	var nearest container.TilingContainer
	var nearestRect types.Rect
	var nearestDist float64

	for _, child := range container.TilingChildren(parent) {
		rect, err := child.ToRect()
		if err != nil {
			return nil, types.Rect{}, err
		}
		if d := rect.DistanceToPoint(position); nearest == nil || d <= nearestDist {
			nearest = child
			nearestRect = rect
			nearestDist = d
		}
	}
	if nearest == nil {
		return nil, types.Rect{}, errors.New("no tiling children")
	}
	return nearest, nearestRect, nil
}

func workspaceAtPoint(s *state.WmState, position types.Point) *container.Workspace {
	monitor := s.MonitorAtPoint(position)
	if monitor == nil {
		return nil
	}
	return monitor.DisplayedWorkspace()
}

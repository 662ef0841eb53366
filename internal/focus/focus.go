// Package focus implements directional focus navigation over the
// container tree. Targets are resolved within the current workspace
// first, then across monitors in the given direction.
package focus

import (
	"errors"
	"sort"

	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/logging"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"
)

var (
	// ErrNoDirectionContainer reports a structurally broken tree: a
	// tiling container whose ancestor chain contains a node that is
	// neither a split container nor a workspace.
	ErrNoDirectionContainer = errors.New("no direction container in ancestor chain")

	// ErrNoMonitor reports an origin container that is not attached
	// beneath any monitor.
	ErrNoMonitor = errors.New("container has no monitor")
)

// InDirection moves focus from the origin container toward the given
// direction. When a target is found it is recorded along its ancestor
// chain and a focus change plus cursor jump are queued on the pending
// sync. Finding no target is a no-op, not an error.
func InDirection(s *state.WmState, origin container.Container, direction types.Direction) error {
	target, err := focusTarget(s, origin, direction)
	if err != nil {
		return err
	}
	if target == nil {
		logging.Debug().
			Str("direction", direction.String()).
			Str("origin", string(origin.Kind())).
			Msg("no focus target in direction")
		return nil
	}

	container.SetFocusedDescendant(target)
	s.PendingSync.QueueFocusChange().QueueCursorJump()
	logging.Debug().
		Str("direction", direction.String()).
		Str("target", string(target.Kind())).
		Str("id", target.ID().String()).
		Msg("focus moved")
	return nil
}

func focusTarget(s *state.WmState, origin container.Container, direction types.Direction) (container.Container, error) {
	switch c := origin.(type) {
	case *container.TilingWindow:
		// Fall back to a workspace in the given direction when no
		// target exists in the current workspace.
		target, err := tilingFocusTarget(c, direction)
		if err != nil || target != nil {
			return target, err
		}
		return workspaceFocusTarget(s, origin, direction)
	case *container.NonTilingWindow:
		switch c.State() {
		case types.StateFloating:
			if target := floatingFocusTarget(c, direction); target != nil {
				return target, nil
			}
			return workspaceFocusTarget(s, origin, direction)
		case types.StateFullscreen:
			return workspaceFocusTarget(s, origin, direction)
		default:
			return nil, nil
		}
	case *container.Workspace:
		return workspaceFocusTarget(s, origin, direction)
	default:
		return nil, nil
	}
}

// tilingFocusTarget walks upward from the origin looking for an
// adjacent tiling sibling on the direction's axis. The search stops at
// the workspace boundary.
func tilingFocusTarget(origin container.Container, direction types.Direction) (container.Container, error) {
	current := origin
	for {
		if _, ok := current.(*container.Workspace); ok {
			return nil, nil
		}

		parent := current.Parent()
		if parent == nil {
			return nil, ErrNoDirectionContainer
		}
		dc, err := container.AsDirectionContainer(parent)
		if err != nil {
			return nil, ErrNoDirectionContainer
		}

		// Climb past levels tiled on the other axis.
		if dc.TilingDirection() != direction.Axis() {
			current = parent
			continue
		}

		sibling := tilingSiblingInDirection(current, direction)
		if sibling == nil {
			current = parent
			continue
		}
		if split, ok := sibling.(*container.SplitContainer); ok {
			// Enter the split from the side facing the origin.
			return container.DescendantInDirection(split, direction.Inverse()), nil
		}
		return sibling, nil
	}
}

// tilingSiblingInDirection returns the nearest tiling sibling before or
// after the container, or nil.
func tilingSiblingInDirection(c container.Container, direction types.Direction) container.Container {
	var candidates []container.Container
	if direction == types.DirLeft || direction == types.DirUp {
		candidates = container.PrevSiblings(c)
	} else {
		candidates = container.NextSiblings(c)
	}
	for _, candidate := range candidates {
		if _, err := container.AsTilingContainer(candidate); err == nil {
			return candidate
		}
	}
	return nil
}

// floatingFocusTarget picks the adjacent floating sibling by top-left
// anchor on the direction's axis. Windows without known geometry sort
// first via the minimum point sentinel. There is no wraparound.
func floatingFocusTarget(origin container.WindowContainer, direction types.Direction) container.Container {
	anchor := func(c container.Container) types.Point {
		rect, err := c.ToRect()
		if err != nil {
			return types.MinPoint()
		}
		return rect.TopLeft()
	}
	key := func(c container.Container) int {
		p := anchor(c)
		if direction.Axis() == types.TilingHorizontal {
			return p.X
		}
		return p.Y
	}

	var floating []container.Container
	for _, sibling := range container.Siblings(origin) {
		w, err := container.AsWindowContainer(sibling)
		if err != nil || w.State() != types.StateFloating {
			continue
		}
		floating = append(floating, sibling)
	}
	sort.SliceStable(floating, func(i, j int) bool {
		return key(floating[i]) < key(floating[j])
	})

	originKey := key(origin)
	switch direction {
	case types.DirLeft, types.DirUp:
		var target container.Container
		for _, sibling := range floating {
			if key(sibling) < originKey {
				target = sibling
			}
		}
		return target
	default:
		for _, sibling := range floating {
			if key(sibling) > originKey {
				return sibling
			}
		}
		return nil
	}
}

// workspaceFocusTarget resolves a target on the monitor in the given
// direction: a focused fullscreen window, else the last focused
// non-tiling child, else the tiling descendant on the near edge, else
// the displayed workspace itself. Returns nil when there is no monitor
// in that direction.
func workspaceFocusTarget(s *state.WmState, origin container.Container, direction types.Direction) (container.Container, error) {
	monitor := container.MonitorOf(origin)
	if monitor == nil {
		return nil, ErrNoMonitor
	}

	target, err := s.MonitorInDirection(monitor, direction)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}
	workspace := target.DisplayedWorkspace()
	if workspace == nil {
		return nil, nil
	}

	if focused := container.LastFocusedDescendant(workspace); focused != nil {
		if w, err := container.AsWindowContainer(focused); err == nil && w.State() == types.StateFullscreen {
			return focused, nil
		}
	}

	if child := container.LastFocusedChild(workspace); child != nil {
		if _, ok := child.(*container.NonTilingWindow); ok {
			return child, nil
		}
	}

	if descendant := container.DescendantInDirection(workspace, direction.Inverse()); descendant != nil {
		return descendant, nil
	}

	return workspace, nil
}

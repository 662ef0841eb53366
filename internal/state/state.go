// Package state owns the container tree and the pending-sync queue. All
// tree mutation flows through operations holding a *WmState so that the
// queued native side effects stay consistent with the tree.
package state

import (
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/types"
)

// WmState is the window manager's root state: the container tree, the
// pause flag, and the queue of deferred native effects.
type WmState struct {
	Root        *container.RootContainer
	PendingSync *PendingSync

	// Paused suppresses state updates from native events.
	Paused bool

	platform platform.Platform
}

// New creates an empty WM state backed by the given platform.
func New(p platform.Platform) *WmState {
	return &WmState{
		Root:        container.NewRoot(),
		PendingSync: NewPendingSync(),
		platform:    p,
	}
}

// Platform returns the platform collaborator.
func (s *WmState) Platform() platform.Platform {
	return s.platform
}

// Monitors returns the monitors in the root's stored order.
func (s *WmState) Monitors() []*container.Monitor {
	return s.Root.Monitors()
}

// MousePosition queries the platform for the current cursor position.
func (s *WmState) MousePosition() (types.Point, error) {
	return s.platform.MousePosition()
}

// WindowFromNative finds the window container wrapping the given native
// handle, or nil if the window is not managed.
func (s *WmState) WindowFromNative(handle platform.Handle) container.WindowContainer {
	for _, c := range container.Descendants(s.Root) {
		window, err := container.AsWindowContainer(c)
		if err != nil {
			continue
		}
		if window.Native().Handle() == handle {
			return window
		}
	}
	return nil
}

// ContainersAtPoint returns origin and every descendant whose rectangle
// contains the point, in depth-first preorder. Containers with unknown
// geometry are skipped.
func (s *WmState) ContainersAtPoint(origin container.Container, point types.Point) []container.Container {
	var result []container.Container
	for _, c := range container.SelfAndDescendants(origin) {
		rect, err := c.ToRect()
		if err != nil {
			continue
		}
		if rect.ContainsPoint(point) {
			result = append(result, c)
		}
	}
	return result
}

// FocusedContainer returns the deepest container in the root's focus
// chain, or nil for an empty tree.
func (s *WmState) FocusedContainer() container.Container {
	return container.LastFocusedDescendant(s.Root)
}

// Package container implements the window manager's tree of display
// containers: a single root, monitors, workspaces, split containers, and
// windows. Algorithms operate on the narrow capability interfaces
// (DirectionContainer, TilingContainer, WindowContainer) rather than on
// concrete variants.
package container

import (
	"errors"

	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/types"
)

// Kind tags a container variant.
type Kind string

const (
	KindRoot            Kind = "root"
	KindMonitor         Kind = "monitor"
	KindWorkspace       Kind = "workspace"
	KindSplit           Kind = "split"
	KindTilingWindow    Kind = "tiling_window"
	KindNonTilingWindow Kind = "non_tiling_window"
)

var (
	// ErrNoParent indicates a structural problem: an operation needed a
	// parent link that was missing.
	ErrNoParent = errors.New("container has no parent")

	// ErrNotADirectionContainer is returned by AsDirectionContainer for
	// containers without a tiling direction.
	ErrNotADirectionContainer = errors.New("not a direction container")

	// ErrNotATilingContainer is returned by AsTilingContainer for
	// containers that do not participate in tiling order.
	ErrNotATilingContainer = errors.New("not a tiling container")

	// ErrNotAWindow is returned by AsWindowContainer for non-window
	// containers.
	ErrNotAWindow = errors.New("not a window container")
)

// Container is the capability set common to every node in the tree.
type Container interface {
	// ID returns the process-unique identifier for this container. It is
	// stable for the container's lifetime and is what equality checks use.
	ID() uuid.UUID

	// Kind returns the variant tag.
	Kind() Kind

	// Parent returns the parent container, or nil for the root.
	Parent() Container

	// Children returns the ordered child list. The order is both tiling
	// order and insertion order; callers must not mutate the slice.
	Children() []Container

	// ToRect returns the container's current on-screen rectangle. It
	// returns platform.ErrGeometryUnavailable when the geometry is not
	// yet known.
	ToRect() (types.Rect, error)

	// base exposes shared mutable state to tree operations within this
	// package.
	base() *baseContainer
}

// DirectionContainer is the capability subset of containers that have a
// tiling direction and can be split or traversed directionally: workspaces
// and split containers.
type DirectionContainer interface {
	Container
	TilingDirection() types.TilingDirection
	SetTilingDirection(types.TilingDirection)
}

// TilingContainer is the capability subset of containers that participate
// in tiling layout order: split containers and tiling windows. The size
// fraction is the share of the parent's tiling axis this container takes.
type TilingContainer interface {
	Container
	SizeFraction() float64
	SetSizeFraction(float64)
}

// WindowContainer is the capability subset of containers wrapping a native
// window: tiling and non-tiling windows.
type WindowContainer interface {
	Container
	Native() platform.NativeWindow
	State() types.WindowState
	ActiveDrag() *types.ActiveDrag
	SetActiveDrag(*types.ActiveDrag)
}

// AsDirectionContainer converts a container to its direction-container
// view, or fails with ErrNotADirectionContainer. Callers use the failure
// to skip ineligible nodes.
func AsDirectionContainer(c Container) (DirectionContainer, error) {
	switch v := c.(type) {
	case *Workspace:
		return v, nil
	case *SplitContainer:
		return v, nil
	default:
		return nil, ErrNotADirectionContainer
	}
}

// AsTilingContainer converts a container to its tiling-container view, or
// fails with ErrNotATilingContainer. Floating, fullscreen and minimized
// windows are excluded.
func AsTilingContainer(c Container) (TilingContainer, error) {
	switch v := c.(type) {
	case *SplitContainer:
		return v, nil
	case *TilingWindow:
		return v, nil
	default:
		return nil, ErrNotATilingContainer
	}
}

// AsWindowContainer converts a container to its window view, or fails with
// ErrNotAWindow.
func AsWindowContainer(c Container) (WindowContainer, error) {
	switch v := c.(type) {
	case *TilingWindow:
		return v, nil
	case *NonTilingWindow:
		return v, nil
	default:
		return nil, ErrNotAWindow
	}
}

// baseContainer holds the state shared by all container variants.
type baseContainer struct {
	id          uuid.UUID
	parent      Container
	children    []Container
	lastFocused uuid.UUID
}

func newBase() baseContainer {
	return baseContainer{id: uuid.New()}
}

func (b *baseContainer) ID() uuid.UUID {
	return b.id
}

func (b *baseContainer) Parent() Container {
	return b.parent
}

func (b *baseContainer) Children() []Container {
	return b.children
}

func (b *baseContainer) base() *baseContainer {
	return b
}

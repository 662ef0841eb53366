package platform

import (
	"errors"

	"github.com/vantm/glazewm/internal/types"
)

// Handle is a platform-neutral native window identifier.
type Handle uint64

var (
	// ErrGeometryUnavailable is returned when a window's on-screen
	// rectangle cannot be queried, e.g. the handle was closed mid-drag.
	ErrGeometryUnavailable = errors.New("window geometry unavailable")

	// ErrPlatformUnavailable is returned when the platform cannot answer a
	// query such as the current mouse position.
	ErrPlatformUnavailable = errors.New("platform unavailable")
)

// NativeWindow abstracts a window owned by the OS window system. The core
// never talks to the OS directly; it only reads geometry through this
// contract.
type NativeWindow interface {
	// Handle returns the stable native identifier for the window.
	Handle() Handle

	// Frame returns the window's last known on-screen rectangle.
	Frame() (types.Rect, error)

	// RefreshFrame re-queries the window system for the current on-screen
	// rectangle, e.g. after a drag or resize has settled.
	RefreshFrame() (types.Rect, error)
}

// Platform abstracts global window-system queries.
type Platform interface {
	// MousePosition returns the current cursor position in screen
	// coordinates.
	MousePosition() (types.Point, error)
}

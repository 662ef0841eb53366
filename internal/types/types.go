package types

// TilingDirection is the axis along which a workspace or split container
// arranges its tiling children.
type TilingDirection string

const (
	TilingHorizontal TilingDirection = "horizontal"
	TilingVertical   TilingDirection = "vertical"
)

// Inverse returns the opposite tiling direction.
func (td TilingDirection) Inverse() TilingDirection {
	if td == TilingHorizontal {
		return TilingVertical
	}
	return TilingHorizontal
}

// ParseTilingDirection converts a string to TilingDirection.
func ParseTilingDirection(s string) (TilingDirection, bool) {
	switch s {
	case "horizontal":
		return TilingHorizontal, true
	case "vertical":
		return TilingVertical, true
	default:
		return "", false
	}
}

// Direction represents a compass navigation direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a string to Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Axis returns the tiling direction that movement along d traverses:
// left/right movement crosses a horizontal arrangement, up/down a
// vertical one.
func (d Direction) Axis() TilingDirection {
	if d == DirLeft || d == DirRight {
		return TilingHorizontal
	}
	return TilingVertical
}

// WindowState describes how a window participates in layout.
type WindowState string

const (
	StateTiling     WindowState = "tiling"
	StateFloating   WindowState = "floating"
	StateFullscreen WindowState = "fullscreen"
	StateMinimized  WindowState = "minimized"
)

// ParseWindowState converts a string to WindowState.
func ParseWindowState(s string) (WindowState, bool) {
	switch s {
	case "tiling":
		return StateTiling, true
	case "floating":
		return StateFloating, true
	case "fullscreen":
		return StateFullscreen, true
	case "minimized":
		return StateMinimized, true
	default:
		return "", false
	}
}

// DragOperation is the kind of drag a window is currently undergoing.
type DragOperation int

const (
	DragNone DragOperation = iota
	DragMoving
	DragResizing
)

// ActiveDrag is transient metadata attached to a window while the user is
// moving or resizing it with the mouse.
type ActiveDrag struct {
	// IsFromTiling records that the window was temporarily floated out of
	// the tiling layout when the drag started.
	IsFromTiling bool
	Operation    DragOperation
}

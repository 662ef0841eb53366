// Package layout turns the logical container tree into pixel
// geometry: every tiling container gets a target rect computed from
// its size fraction, its parent's tiling direction and the configured
// gaps.
package layout

import (
	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/types"
)

// Compute returns the target rect for every tiling container beneath
// the workspace. The outer gap insets the workspace area; the inner
// gap separates tiling siblings. Non-tiling windows keep their own
// frames and are not part of the result.
func Compute(workspace *container.Workspace, gaps config.Gaps) (map[uuid.UUID]types.Rect, error) {
	area, err := workspace.ToRect()
	if err != nil {
		return nil, err
	}

	area = types.Rect{
		X:      area.X + gaps.Outer,
		Y:      area.Y + gaps.Outer,
		Width:  area.Width - 2*gaps.Outer,
		Height: area.Height - 2*gaps.Outer,
	}

	result := make(map[uuid.UUID]types.Rect)
	layoutChildren(workspace, area, gaps.Inner, result)
	return result, nil
}

func layoutChildren(parent container.DirectionContainer, area types.Rect, innerGap int, result map[uuid.UUID]types.Rect) {
	tiling := container.TilingChildren(parent)
	if len(tiling) == 0 {
		return
	}

	total := 0.0
	for _, child := range tiling {
		total += child.SizeFraction()
	}
	if total <= 0 {
		total = float64(len(tiling))
		for _, child := range tiling {
			child.SetSizeFraction(1.0)
		}
	}

	horizontal := parent.TilingDirection() == types.TilingHorizontal
	available := area.Height
	if horizontal {
		available = area.Width
	}
	available -= (len(tiling) - 1) * innerGap
	if available < 0 {
		available = 0
	}

	cursor := area.Y
	if horizontal {
		cursor = area.X
	}
	used := 0

	for i, child := range tiling {
		size := int(child.SizeFraction() / total * float64(available))
		// The last child absorbs rounding drift.
		if i == len(tiling)-1 {
			size = available - used
		}

		var childRect types.Rect
		if horizontal {
			childRect = types.Rect{X: cursor, Y: area.Y, Width: size, Height: area.Height}
		} else {
			childRect = types.Rect{X: area.X, Y: cursor, Width: area.Width, Height: size}
		}
		result[child.ID()] = childRect

		if split, ok := child.(*container.SplitContainer); ok {
			split.SetRect(childRect)
			layoutChildren(split, childRect, innerGap, result)
		}

		cursor += size + innerGap
		used += size
	}
}

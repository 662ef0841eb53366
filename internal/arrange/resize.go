package arrange

import (
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"
)

// minSizeFraction is the smallest share of its parent a tiling
// container can be resized down to.
const minSizeFraction = 0.01

// ResizeByPixelDeltas converts pixel deltas from a user resize into
// size fraction changes along each affected axis. An axis with no
// matching tiled ancestor is skipped.
func ResizeByPixelDeltas(s *state.WmState, window *container.TilingWindow, widthDelta, heightDelta int) {
	if widthDelta != 0 {
		resizeOnAxis(s, window, types.TilingHorizontal, widthDelta)
	}
	if heightDelta != 0 {
		resizeOnAxis(s, window, types.TilingVertical, heightDelta)
	}
}

func resizeOnAxis(s *state.WmState, window container.TilingContainer, axis types.TilingDirection, delta int) {
	target := containerToResize(window, axis)
	if target == nil {
		return
	}
	parent := target.Parent()
	parentRect, err := parent.ToRect()
	if err != nil {
		return
	}

	length := parentRect.Width
	if axis == types.TilingVertical {
		length = parentRect.Height
	}
	if length <= 0 {
		return
	}

	siblings := container.TilingSiblings(target)
	if len(siblings) == 0 {
		return
	}

	// Grow or shrink the target and spread the inverse across its
	// tiling siblings.
	fraction := clampFraction(target.SizeFraction() + float64(delta)/float64(length))
	applied := fraction - target.SizeFraction()
	if applied == 0 {
		return
	}
	target.SetSizeFraction(fraction)

	share := applied / float64(len(siblings))
	for _, sibling := range siblings {
		sibling.SetSizeFraction(clampFraction(sibling.SizeFraction() - share))
	}

	s.PendingSync.QueueContainerToRedraw(parent)
}

// containerToResize walks upward until it finds the container whose
// parent tiles along the given axis. Resizing a window horizontally
// inside a vertical split really resizes the split itself.
func containerToResize(c container.TilingContainer, axis types.TilingDirection) container.TilingContainer {
	current := c
	for {
		parent := current.Parent()
		if parent == nil {
			return nil
		}
		dc, err := container.AsDirectionContainer(parent)
		if err != nil {
			return nil
		}
		if dc.TilingDirection() == axis {
			return current
		}

		// The workspace is the tiling root; past it there is nothing
		// left to resize on this axis.
		tc, err := container.AsTilingContainer(parent)
		if err != nil {
			return nil
		}
		current = tc
	}
}

func clampFraction(fraction float64) float64 {
	if fraction < minSizeFraction {
		return minSizeFraction
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

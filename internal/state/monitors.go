package state

import (
	"math"

	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/types"
)

// FindMonitorByAnchorPoint scans monitors in the root's stored order and
// returns the first whose rectangle contains the point. Monitors with
// unknown geometry are skipped. Returns nil when no monitor contains the
// point; that is a normal outcome, not an error.
func FindMonitorByAnchorPoint(root *container.RootContainer, anchor types.Point) *container.Monitor {
	for _, monitor := range root.Monitors() {
		rect, err := monitor.ToRect()
		if err != nil {
			continue
		}
		if rect.ContainsPoint(anchor) {
			return monitor
		}
	}
	return nil
}

// MonitorAtPoint resolves the monitor containing the given point.
func (s *WmState) MonitorAtPoint(point types.Point) *container.Monitor {
	return FindMonitorByAnchorPoint(s.Root, point)
}

// MonitorInDirection returns the nearest monitor in the given direction
// from the origin monitor, or nil when none exists. Fails only when the
// origin monitor's own geometry is unknown, which indicates a broken
// tree.
func (s *WmState) MonitorInDirection(origin *container.Monitor, direction types.Direction) (*container.Monitor, error) {
	originRect, err := origin.ToRect()
	if err != nil {
		return nil, err
	}

	var nearest *container.Monitor
	nearestDist := math.MaxFloat64

	for _, monitor := range s.Monitors() {
		if monitor.ID() == origin.ID() {
			continue
		}
		rect, err := monitor.ToRect()
		if err != nil {
			continue
		}

		inDirection := false
		switch direction {
		case types.DirLeft:
			inDirection = rect.X < originRect.X
		case types.DirRight:
			inDirection = rect.X > originRect.X
		case types.DirUp:
			inDirection = rect.Y < originRect.Y
		case types.DirDown:
			inDirection = rect.Y > originRect.Y
		}
		if !inDirection {
			continue
		}

		dx := float64(rect.Center().X - originRect.Center().X)
		dy := float64(rect.Center().Y - originRect.Center().Y)
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < nearestDist {
			nearestDist = dist
			nearest = monitor
		}
	}

	return nearest, nil
}

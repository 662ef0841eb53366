package output

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/container"
)

// LayoutOptions controls the spatial layout rendering.
type LayoutOptions struct {
	// Width is the canvas width in characters; zero means 80.
	Width int
	// UseUnicode selects box drawing characters over plain ASCII.
	UseUnicode bool
	// NameOf resolves a container ID to a display name; may be nil.
	NameOf func(uuid.UUID) string
}

// RenderLayout draws the monitor's displayed workspace to scale: each
// window frame becomes a box on a character canvas. Terminal cells are
// roughly twice as tall as wide, so the vertical scale is halved.
func RenderLayout(w io.Writer, monitor *container.Monitor, opts LayoutOptions) error {
	rect, err := monitor.ToRect()
	if err != nil {
		return fmt.Errorf("monitor %q has no geometry: %w", monitor.Name(), err)
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return fmt.Errorf("monitor %q has a degenerate rect", monitor.Name())
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	height := width * rect.Height / rect.Width / 2
	if height < 6 {
		height = 6
	}

	canvas := NewCanvas(width, height, opts.UseUnicode)
	canvas.DrawBox(0, 0, width, height)

	scaleX := float64(width) / float64(rect.Width)
	scaleY := float64(height) / float64(rect.Height)

	workspace := monitor.DisplayedWorkspace()
	if workspace != nil {
		for _, node := range container.Descendants(workspace) {
			window, err := container.AsWindowContainer(node)
			if err != nil {
				continue
			}
			frame, err := window.ToRect()
			if err != nil {
				continue
			}

			x := int(float64(frame.X-rect.X) * scaleX)
			y := int(float64(frame.Y-rect.Y) * scaleY)
			boxWidth := int(float64(frame.Width) * scaleX)
			boxHeight := int(float64(frame.Height) * scaleY)

			canvas.DrawBox(x, y, boxWidth, boxHeight)
			canvas.DrawTextCentered(x+1, y+boxHeight/2, boxWidth-2, layoutName(window, opts))
		}
	}

	header := fmt.Sprintf("Monitor %q", monitor.Name())
	if workspace != nil {
		header += fmt.Sprintf(" (workspace %q)", workspace.Name())
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, canvas.String())
	return nil
}

func layoutName(window container.WindowContainer, opts LayoutOptions) string {
	if opts.NameOf != nil {
		if name := opts.NameOf(window.ID()); name != "" {
			return name
		}
	}
	return shortID(window.ID())
}

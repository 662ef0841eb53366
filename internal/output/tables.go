package output

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/vantm/glazewm/internal/container"
)

// PrintMonitorsTable prints monitors in a table format
func PrintMonitorsTable(w io.Writer, monitors []*container.Monitor) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Position", "Size", "Workspaces", "Displayed")

	for _, monitor := range monitors {
		position := "-"
		size := "-"
		if rect, err := monitor.ToRect(); err == nil {
			position = fmt.Sprintf("(%d, %d)", rect.X, rect.Y)
			size = fmt.Sprintf("%dx%d", rect.Width, rect.Height)
		}

		displayed := "-"
		if ws := monitor.DisplayedWorkspace(); ws != nil {
			displayed = ws.Name()
		}

		table.Append(
			monitor.Name(),
			position,
			size,
			fmt.Sprintf("%d", len(monitor.Workspaces())),
			displayed,
		)
	}

	table.Render()
}

// PrintWindowsTable prints managed windows in a table format
func PrintWindowsTable(w io.Writer, windows []container.WindowContainer, nameOf func(uuid.UUID) string) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "State", "Workspace", "Position", "Size")

	for _, window := range windows {
		name := shortID(window.ID())
		if nameOf != nil {
			if n := nameOf(window.ID()); n != "" {
				name = n
			}
		}

		workspace := "-"
		if ws := container.WorkspaceOf(window); ws != nil {
			workspace = ws.Name()
		}

		position := "-"
		size := "-"
		if rect, err := window.ToRect(); err == nil {
			position = fmt.Sprintf("(%d, %d)", rect.X, rect.Y)
			size = fmt.Sprintf("%dx%d", rect.Width, rect.Height)
		}

		table.Append(
			truncate(name, 30),
			string(window.State()),
			workspace,
			position,
			size,
		)
	}

	table.Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

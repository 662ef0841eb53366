package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/container"
)

// TreeOptions controls how the container tree is rendered.
type TreeOptions struct {
	// NameOf resolves a container ID to a display name; may be nil.
	NameOf func(uuid.UUID) string
	// Focused marks one container with a focus indicator.
	Focused uuid.UUID
	// ShowIDs appends the container UUID to each line.
	ShowIDs bool
}

var (
	monitorColor   = color.New(color.FgCyan, color.Bold)
	workspaceColor = color.New(color.FgYellow)
	splitColor     = color.New(color.FgMagenta)
	windowColor    = color.New(color.FgGreen)
	floatingColor  = color.New(color.FgBlue)
	focusedColor   = color.New(color.FgRed, color.Bold)
)

// RenderTree writes an indented view of the container tree rooted at
// the given container.
func RenderTree(w io.Writer, root container.Container, opts TreeOptions) {
	fmt.Fprintln(w, nodeLabel(root, opts))
	children := root.Children()
	for i, child := range children {
		renderSubtree(w, child, "", i == len(children)-1, opts)
	}
}

func renderSubtree(w io.Writer, node container.Container, prefix string, last bool, opts TreeOptions) {
	branch := "├── "
	childPrefix := prefix + "│   "
	if last {
		branch = "└── "
		childPrefix = prefix + "    "
	}
	fmt.Fprintln(w, prefix+branch+nodeLabel(node, opts))

	children := node.Children()
	for i, child := range children {
		renderSubtree(w, child, childPrefix, i == len(children)-1, opts)
	}
}

func nodeLabel(node container.Container, opts TreeOptions) string {
	var label string

	switch c := node.(type) {
	case *container.RootContainer:
		label = "root"
	case *container.Monitor:
		label = monitorColor.Sprintf("monitor %q", c.Name())
		if rect, err := c.ToRect(); err == nil {
			label += fmt.Sprintf(" %dx%d at (%d,%d)", rect.Width, rect.Height, rect.X, rect.Y)
		}
	case *container.Workspace:
		label = workspaceColor.Sprintf("workspace %q", c.Name())
		label += fmt.Sprintf(" [%s]", c.TilingDirection())
		if c.IsDisplayed() {
			label += " (displayed)"
		}
	case *container.SplitContainer:
		label = splitColor.Sprint("split")
		label += fmt.Sprintf(" [%s] %.2f", c.TilingDirection(), c.SizeFraction())
	case *container.TilingWindow:
		label = windowColor.Sprintf("window %s", windowName(c, opts))
		label += fmt.Sprintf(" %.2f", c.SizeFraction())
	case *container.NonTilingWindow:
		label = floatingColor.Sprintf("window %s [%s]", windowName(c, opts), c.State())
	default:
		label = string(node.Kind())
	}

	if opts.Focused != uuid.Nil && node.ID() == opts.Focused {
		label += " " + focusedColor.Sprint("*focused*")
	}
	if opts.ShowIDs {
		label += fmt.Sprintf("  <%s>", shortID(node.ID()))
	}
	return label
}

func windowName(node container.Container, opts TreeOptions) string {
	if opts.NameOf != nil {
		if name := opts.NameOf(node.ID()); name != "" {
			return fmt.Sprintf("%q", name)
		}
	}
	return shortID(node.ID())
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

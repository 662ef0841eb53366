// Package scene builds a container tree and simulated platform from a
// YAML description. Scenes drive the CLI commands and let tiling
// behavior be exercised without a live window system.
package scene

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/platform"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"

	"gopkg.in/yaml.v3"
)

// Scene is a loaded window manager state with named windows.
type Scene struct {
	state   *state.WmState
	sim     *platform.Simulator
	windows map[string]container.WindowContainer
	names   map[uuid.UUID]string
}

type sceneFile struct {
	Mouse    *pointSpec    `yaml:"mouse"`
	Focused  string        `yaml:"focused"`
	Monitors []monitorSpec `yaml:"monitors"`
}

type pointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type rectSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (r rectSpec) toRect() types.Rect {
	return types.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type monitorSpec struct {
	Name       string          `yaml:"name"`
	Rect       rectSpec        `yaml:"rect"`
	Workspaces []workspaceSpec `yaml:"workspaces"`
}

type workspaceSpec struct {
	Name      string     `yaml:"name"`
	Displayed bool       `yaml:"displayed"`
	Direction string     `yaml:"direction"`
	Children  []nodeSpec `yaml:"children"`
}

// nodeSpec is either a window leaf or a nested split.
type nodeSpec struct {
	Window string     `yaml:"window"`
	State  string     `yaml:"state"`
	Rect   *rectSpec  `yaml:"rect"`
	Split  *splitSpec `yaml:"split"`
}

type splitSpec struct {
	Direction string     `yaml:"direction"`
	Children  []nodeSpec `yaml:"children"`
}

// Load reads and builds a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes builds a scene from YAML content.
func LoadFromBytes(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if len(file.Monitors) == 0 {
		return nil, fmt.Errorf("scene has no monitors")
	}

	sim := platform.NewSimulator()
	sc := &Scene{
		state:   state.New(sim),
		sim:     sim,
		windows: make(map[string]container.WindowContainer),
		names:   make(map[uuid.UUID]string),
	}

	for i, m := range file.Monitors {
		if err := sc.buildMonitor(i, m); err != nil {
			return nil, err
		}
	}

	if file.Mouse != nil {
		sim.SetMousePosition(types.Point{X: file.Mouse.X, Y: file.Mouse.Y})
	}
	if file.Focused != "" {
		window, ok := sc.windows[file.Focused]
		if !ok {
			return nil, fmt.Errorf("focused window %q is not in the scene", file.Focused)
		}
		container.SetFocusedDescendant(window)
	}

	if err := container.Validate(sc.state.Root); err != nil {
		return nil, fmt.Errorf("scene builds an invalid tree: %w", err)
	}
	return sc, nil
}

func (sc *Scene) buildMonitor(index int, spec monitorSpec) error {
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("monitor-%d", index+1)
	}
	monitor := container.NewMonitor(name)
	monitor.SetRect(spec.Rect.toRect())
	if err := container.Attach(monitor, sc.state.Root, index); err != nil {
		return err
	}

	for i, w := range spec.Workspaces {
		workspace, err := sc.buildWorkspace(i, w, monitor)
		if err != nil {
			return err
		}
		if w.Displayed || monitor.DisplayedWorkspace() == nil {
			monitor.SetDisplayedWorkspace(workspace)
		}
	}
	return nil
}

func (sc *Scene) buildWorkspace(index int, spec workspaceSpec, monitor *container.Monitor) (*container.Workspace, error) {
	direction, err := parseDirection(spec.Direction)
	if err != nil {
		return nil, fmt.Errorf("workspace %q: %w", spec.Name, err)
	}
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("%d", index+1)
	}
	workspace := container.NewWorkspace(name, direction)
	if err := container.Attach(workspace, monitor, index); err != nil {
		return nil, err
	}
	return workspace, sc.buildChildren(spec.Children, workspace)
}

func (sc *Scene) buildChildren(specs []nodeSpec, parent container.Container) error {
	for i, spec := range specs {
		if err := sc.buildNode(i, spec, parent); err != nil {
			return err
		}
	}
	return nil
}

func (sc *Scene) buildNode(index int, spec nodeSpec, parent container.Container) error {
	if spec.Split != nil && spec.Window != "" {
		return fmt.Errorf("node %q is both a window and a split", spec.Window)
	}

	if spec.Split != nil {
		direction, err := parseDirection(spec.Split.Direction)
		if err != nil {
			return fmt.Errorf("split under %s: %w", parent.Kind(), err)
		}
		split := container.NewSplitContainer(direction, config.Default().Gaps)
		if err := container.Attach(split, parent, index); err != nil {
			return err
		}
		return sc.buildChildren(spec.Split.Children, split)
	}

	if spec.Window == "" {
		return fmt.Errorf("node under %s names no window", parent.Kind())
	}
	if _, exists := sc.windows[spec.Window]; exists {
		return fmt.Errorf("window name %q appears twice", spec.Window)
	}

	var frame types.Rect
	if spec.Rect != nil {
		frame = spec.Rect.toRect()
	}
	native := sc.sim.CreateWindow(frame)

	windowState := types.StateTiling
	if spec.State != "" {
		parsed, ok := types.ParseWindowState(spec.State)
		if !ok {
			return fmt.Errorf("window %q has unknown state %q", spec.Window, spec.State)
		}
		windowState = parsed
	}

	var window container.WindowContainer
	if windowState == types.StateTiling {
		window = container.NewTilingWindow(native)
	} else {
		window = container.NewNonTilingWindow(native, windowState)
	}
	if err := container.Attach(window, parent, index); err != nil {
		return err
	}

	sc.windows[spec.Window] = window
	sc.names[window.ID()] = spec.Window
	return nil
}

// State returns the window manager state the scene built.
func (sc *Scene) State() *state.WmState {
	return sc.state
}

// Simulator returns the simulated platform backing the scene.
func (sc *Scene) Simulator() *platform.Simulator {
	return sc.sim
}

// Window looks up a window by its scene name.
func (sc *Scene) Window(name string) (container.WindowContainer, bool) {
	w, ok := sc.windows[name]
	return w, ok
}

// NameOf returns the scene name of a container, or an empty string for
// containers that were not declared as named windows.
func (sc *Scene) NameOf(id uuid.UUID) string {
	return sc.names[id]
}

func parseDirection(raw string) (types.TilingDirection, error) {
	if raw == "" {
		return types.TilingHorizontal, nil
	}
	direction, ok := types.ParseTilingDirection(raw)
	if !ok {
		return "", fmt.Errorf("unknown tiling direction %q", raw)
	}
	return direction, nil
}

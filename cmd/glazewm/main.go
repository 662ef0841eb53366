package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vantm/glazewm/internal/arrange"
	"github.com/vantm/glazewm/internal/config"
	"github.com/vantm/glazewm/internal/container"
	"github.com/vantm/glazewm/internal/focus"
	"github.com/vantm/glazewm/internal/layout"
	"github.com/vantm/glazewm/internal/logging"
	"github.com/vantm/glazewm/internal/output"
	"github.com/vantm/glazewm/internal/scene"
	"github.com/vantm/glazewm/internal/state"
	"github.com/vantm/glazewm/internal/types"
)

var (
	sceneFile  string
	configFile string
	jsonOutput bool
	noColor    bool
	debugMode  bool

	layoutWidth  int
	layoutASCII  bool
	treeShowIDs  bool
	resizeWidth  int
	resizeHeight int

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "glazewm",
	Short: "Tiling window manager core",
	Long: `glazewm manages windows as a tree of monitors, workspaces, splits and
windows. Commands operate on a scene file, a YAML description of
monitors and windows, and print the resulting arrangement.`,
	Version: "0.1.0",
}

// treeCmd prints the container tree
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the container tree",
	Long:  `Loads the scene and prints its container tree, including tiling directions, size fractions and the focused container.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(treeJSON(sc.State().Root, sc))
		}
		printTree(sc)
		return nil
	},
}

// focusCmd moves focus in a direction
var focusCmd = &cobra.Command{
	Use:   "focus <left|right|up|down>",
	Short: "Move focus in a direction",
	Long: `Moves focus from the currently focused container toward the given
direction. Focus first looks for a target within the workspace, then
falls back to the monitor in that direction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, ok := types.ParseDirection(args[0])
		if !ok {
			printError(fmt.Sprintf("Unknown direction %q", args[0]))
			return fmt.Errorf("unknown direction %q", args[0])
		}

		sc, err := loadScene()
		if err != nil {
			return err
		}
		s := sc.State()

		origin := s.FocusedContainer()
		if origin == nil {
			printError("The scene has no focused container")
			return fmt.Errorf("no focused container")
		}

		if err := focus.InDirection(s, origin, direction); err != nil {
			printError(fmt.Sprintf("Focus failed: %v", err))
			return err
		}

		focused := s.FocusedContainer()
		effects := s.PendingSync.Drain()

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"focused":      containerJSON(focused, sc),
				"focus_change": effects.FocusChange,
				"cursor_jump":  effects.CursorJump,
			})
		}

		if !effects.FocusChange {
			fmt.Printf("No focus target %s of the current container\n", direction)
			return nil
		}
		successColor.Print("✓ ")
		fmt.Printf("Focused %s\n", describeContainer(focused, sc))
		return nil
	},
}

// dropCmd finishes a window drag at the scene's mouse position
var dropCmd = &cobra.Command{
	Use:   "drop <window>",
	Short: "Drop a dragged window at the mouse position",
	Long: `Simulates the end of a window drag: the named floating window is
tiled again at the position under the scene's mouse cursor, splitting
the nearest window when the drop crosses the tiling axis.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		window, ok := sc.Window(args[0])
		if !ok {
			printError(fmt.Sprintf("No window named %q in the scene", args[0]))
			return fmt.Errorf("unknown window %q", args[0])
		}

		// The scene describes the post-drag state, so the drag itself
		// is implied.
		if _, isFloating := window.(*container.NonTilingWindow); isFloating {
			window.SetActiveDrag(&types.ActiveDrag{
				IsFromTiling: true,
				Operation:    types.DragMoving,
			})
		}

		s := sc.State()
		if err := arrange.OnWindowMovedOrResizedEnd(s, window.Native(), cfg); err != nil {
			printError(fmt.Sprintf("Drop failed: %v", err))
			return err
		}
		applyLayout(sc, cfg)

		if jsonOutput {
			return printJSON(treeJSON(s.Root, sc))
		}
		printEffects(s.PendingSync.Drain())
		printTree(sc)
		return nil
	},
}

// resizeCmd applies a user resize to a tiling window
var resizeCmd = &cobra.Command{
	Use:   "resize <window>",
	Short: "Resize a tiling window",
	Long: `Simulates the end of a user resize: the named window's frame is set
to the given size and the pixel delta is folded into the tiling size
fractions of its row or column.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resizeWidth <= 0 && resizeHeight <= 0 {
			printError("Provide --width and/or --height")
			return fmt.Errorf("no size given")
		}

		sc, err := loadScene()
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		window, ok := sc.Window(args[0])
		if !ok {
			printError(fmt.Sprintf("No window named %q in the scene", args[0]))
			return fmt.Errorf("unknown window %q", args[0])
		}

		frame, err := window.ToRect()
		if err != nil {
			printError(fmt.Sprintf("Window %q has no geometry", args[0]))
			return err
		}
		if resizeWidth > 0 {
			frame.Width = resizeWidth
		}
		if resizeHeight > 0 {
			frame.Height = resizeHeight
		}
		sc.Simulator().SetFrame(window.Native().Handle(), frame)

		s := sc.State()
		if err := arrange.OnWindowMovedOrResizedEnd(s, window.Native(), cfg); err != nil {
			printError(fmt.Sprintf("Resize failed: %v", err))
			return err
		}
		applyLayout(sc, cfg)

		if jsonOutput {
			return printJSON(treeJSON(s.Root, sc))
		}
		printEffects(s.PendingSync.Drain())
		printTree(sc)
		return nil
	},
}

// monitorsCmd lists monitors
var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}
		monitors := sc.State().Monitors()

		if jsonOutput {
			items := make([]map[string]interface{}, 0, len(monitors))
			for _, m := range monitors {
				items = append(items, monitorJSON(m))
			}
			return printJSON(items)
		}

		output.PrintMonitorsTable(os.Stdout, monitors)
		return nil
	},
}

// windowsCmd lists managed windows
var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List managed windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}

		var windows []container.WindowContainer
		for _, node := range container.Descendants(sc.State().Root) {
			if w, err := container.AsWindowContainer(node); err == nil {
				windows = append(windows, w)
			}
		}

		if jsonOutput {
			items := make([]map[string]interface{}, 0, len(windows))
			for _, w := range windows {
				items = append(items, containerJSON(w, sc))
			}
			return printJSON(items)
		}

		output.PrintWindowsTable(os.Stdout, windows, sc.NameOf)
		return nil
	},
}

// layoutCmd draws monitors spatially
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Draw the displayed workspaces to scale",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}

		opts := output.LayoutOptions{
			Width:      layoutWidth,
			UseUnicode: !layoutASCII,
			NameOf:     sc.NameOf,
		}
		for _, monitor := range sc.State().Monitors() {
			if err := output.RenderLayout(os.Stdout, monitor, opts); err != nil {
				printError(err.Error())
				return err
			}
		}
		return nil
	},
}

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		keyColor.Print("Inner gap: ")
		fmt.Println(cfg.Gaps.Inner)
		keyColor.Print("Outer gap: ")
		fmt.Println(cfg.Gaps.Outer)
		keyColor.Print("Default tiling direction: ")
		fmt.Println(cfg.General.DefaultTilingDirection)
		keyColor.Print("Cursor follows focus: ")
		fmt.Println(cfg.General.CursorFollowsFocus)
		return nil
	},
}

// configValidateCmd checks a configuration file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if len(args) == 1 {
			path = args[0]
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			printError(fmt.Sprintf("Failed to load config: %v", err))
			return err
		}
		if err := cfg.Validate(); err != nil {
			printError(fmt.Sprintf("Invalid config: %v", err))
			return err
		}
		successColor.Println("✓ Config is valid")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sceneFile, "scene", "", "Scene file describing monitors and windows")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	treeCmd.Flags().BoolVar(&treeShowIDs, "ids", false, "Show container IDs")
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "Canvas width in characters")
	layoutCmd.Flags().BoolVar(&layoutASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	resizeCmd.Flags().IntVar(&resizeWidth, "width", 0, "New frame width in pixels")
	resizeCmd.Flags().IntVar(&resizeHeight, "height", 0, "New frame height in pixels")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if err := logging.Init(debugMode); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
		}
	})
}

func main() {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

func loadScene() (*scene.Scene, error) {
	if sceneFile == "" {
		printError("A scene file is required (--scene)")
		return nil, fmt.Errorf("no scene file")
	}
	sc, err := scene.Load(sceneFile)
	if err != nil {
		printError(fmt.Sprintf("Failed to load scene: %v", err))
		return nil, err
	}
	return sc, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		printError(fmt.Sprintf("Failed to load config: %v", err))
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		printError(fmt.Sprintf("Invalid config: %v", err))
		return nil, err
	}
	return cfg, nil
}

// applyLayout pushes the computed tiling geometry back into the
// simulated windows so that subsequent output reflects the arrangement.
func applyLayout(sc *scene.Scene, cfg *config.Config) {
	sim := sc.Simulator()
	for _, monitor := range sc.State().Monitors() {
		workspace := monitor.DisplayedWorkspace()
		if workspace == nil {
			continue
		}
		rects, err := layout.Compute(workspace, cfg.Gaps)
		if err != nil {
			continue
		}
		for _, node := range container.Descendants(workspace) {
			window, ok := node.(*container.TilingWindow)
			if !ok {
				continue
			}
			if rect, found := rects[window.ID()]; found {
				sim.SetFrame(window.Native().Handle(), rect)
				window.Native().RefreshFrame()
			}
		}
	}
}

func printTree(sc *scene.Scene) {
	s := sc.State()
	opts := output.TreeOptions{
		NameOf:  sc.NameOf,
		ShowIDs: treeShowIDs,
	}
	if focused := s.FocusedContainer(); focused != nil {
		opts.Focused = focused.ID()
	}
	output.RenderTree(os.Stdout, s.Root, opts)
}

func printEffects(effects state.SyncEffects) {
	var parts []string
	if effects.FocusChange {
		parts = append(parts, "focus change")
	}
	if effects.CursorJump {
		parts = append(parts, "cursor jump")
	}
	if n := len(effects.Redraw); n > 0 {
		parts = append(parts, fmt.Sprintf("%d container(s) to redraw", n))
	}
	if len(parts) == 0 {
		return
	}
	keyColor.Print("Pending: ")
	fmt.Println(strings.Join(parts, ", "))
}

func describeContainer(c container.Container, sc *scene.Scene) string {
	if c == nil {
		return "nothing"
	}
	if name := sc.NameOf(c.ID()); name != "" {
		return fmt.Sprintf("window %q", name)
	}
	switch v := c.(type) {
	case *container.Workspace:
		return fmt.Sprintf("workspace %q", v.Name())
	case *container.Monitor:
		return fmt.Sprintf("monitor %q", v.Name())
	default:
		return fmt.Sprintf("%s container %s", v.Kind(), v.ID())
	}
}

func treeJSON(node container.Container, sc *scene.Scene) map[string]interface{} {
	item := containerJSON(node, sc)

	children := node.Children()
	if len(children) > 0 {
		items := make([]map[string]interface{}, 0, len(children))
		for _, child := range children {
			items = append(items, treeJSON(child, sc))
		}
		item["children"] = items
	}
	return item
}

func containerJSON(node container.Container, sc *scene.Scene) map[string]interface{} {
	item := map[string]interface{}{
		"id":   node.ID().String(),
		"kind": string(node.Kind()),
	}
	if name := sc.NameOf(node.ID()); name != "" {
		item["name"] = name
	}
	if rect, err := node.ToRect(); err == nil {
		item["rect"] = rect
	}

	switch c := node.(type) {
	case *container.Monitor:
		item["name"] = c.Name()
	case *container.Workspace:
		item["name"] = c.Name()
		item["tiling_direction"] = string(c.TilingDirection())
		item["displayed"] = c.IsDisplayed()
	case *container.SplitContainer:
		item["tiling_direction"] = string(c.TilingDirection())
		item["size_fraction"] = c.SizeFraction()
	case *container.TilingWindow:
		item["state"] = string(c.State())
		item["size_fraction"] = c.SizeFraction()
	case *container.NonTilingWindow:
		item["state"] = string(c.State())
	}
	return item
}

func monitorJSON(m *container.Monitor) map[string]interface{} {
	item := map[string]interface{}{
		"name":       m.Name(),
		"workspaces": len(m.Workspaces()),
	}
	if rect, err := m.ToRect(); err == nil {
		item["rect"] = rect
	}
	if ws := m.DisplayedWorkspace(); ws != nil {
		item["displayed_workspace"] = ws.Name()
	}
	return item
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

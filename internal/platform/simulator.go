package platform

import (
	"github.com/vantm/glazewm/internal/types"
)

// Simulator is an in-memory Platform implementation. It backs the CLI
// simulation commands and tests, which need the core algorithms to run
// deterministically without a live window system.
type Simulator struct {
	mouse      types.Point
	frames     map[Handle]types.Rect
	closed     map[Handle]bool
	nextHandle Handle
}

// NewSimulator creates an empty simulator with the cursor at the origin.
func NewSimulator() *Simulator {
	return &Simulator{
		frames:     make(map[Handle]types.Rect),
		closed:     make(map[Handle]bool),
		nextHandle: 1,
	}
}

// MousePosition returns the simulated cursor position.
func (s *Simulator) MousePosition() (types.Point, error) {
	return s.mouse, nil
}

// SetMousePosition moves the simulated cursor.
func (s *Simulator) SetMousePosition(p types.Point) {
	s.mouse = p
}

// CreateWindow registers a simulated native window with the given frame.
func (s *Simulator) CreateWindow(frame types.Rect) NativeWindow {
	h := s.nextHandle
	s.nextHandle++
	s.frames[h] = frame
	return &simWindow{sim: s, handle: h, cached: frame}
}

// SetFrame overwrites the stored frame for a window, simulating the user
// dragging or resizing it. Window views keep returning their previously
// cached frame until RefreshFrame is called, mirroring how a real
// platform caches geometry between queries.
func (s *Simulator) SetFrame(h Handle, frame types.Rect) {
	s.frames[h] = frame
}

// CloseWindow marks a window's handle as closed so that geometry queries
// against it fail.
func (s *Simulator) CloseWindow(h Handle) {
	s.closed[h] = true
}

// simWindow is the NativeWindow view of one simulated window. It holds a
// cached frame so that Frame and RefreshFrame behave like their real
// platform counterparts.
type simWindow struct {
	sim    *Simulator
	handle Handle
	cached types.Rect
}

func (w *simWindow) Handle() Handle {
	return w.handle
}

func (w *simWindow) Frame() (types.Rect, error) {
	if w.sim.closed[w.handle] {
		return types.Rect{}, ErrGeometryUnavailable
	}
	return w.cached, nil
}

func (w *simWindow) RefreshFrame() (types.Rect, error) {
	if w.sim.closed[w.handle] {
		return types.Rect{}, ErrGeometryUnavailable
	}
	frame, ok := w.sim.frames[w.handle]
	if !ok {
		return types.Rect{}, ErrGeometryUnavailable
	}
	w.cached = frame
	return frame, nil
}

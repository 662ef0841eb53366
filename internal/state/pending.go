package state

import (
	"github.com/google/uuid"

	"github.com/vantm/glazewm/internal/container"
)

// PendingSync accumulates native side effects deferred by core
// operations: a focus change, a cursor warp, and containers whose
// geometry must be redrawn. Core algorithms only enqueue; a draining
// collaborator applies the effects and clears the queue.
type PendingSync struct {
	focusChange bool
	cursorJump  bool
	redraw      []container.Container
	redrawSeen  map[uuid.UUID]struct{}
}

// SyncEffects is one drained batch of deferred effects.
type SyncEffects struct {
	FocusChange bool
	CursorJump  bool
	Redraw      []container.Container
}

// NewPendingSync creates an empty queue.
func NewPendingSync() *PendingSync {
	return &PendingSync{redrawSeen: make(map[uuid.UUID]struct{})}
}

// QueueFocusChange marks that the native focus must be re-applied.
// Chainable.
func (p *PendingSync) QueueFocusChange() *PendingSync {
	p.focusChange = true
	return p
}

// QueueCursorJump marks that the cursor must be warped to the focused
// container. Chainable.
func (p *PendingSync) QueueCursorJump() *PendingSync {
	p.cursorJump = true
	return p
}

// QueueContainerToRedraw adds a container to the redraw set, de-duplicated
// by container ID. Chainable.
func (p *PendingSync) QueueContainerToRedraw(c container.Container) *PendingSync {
	if _, seen := p.redrawSeen[c.ID()]; seen {
		return p
	}
	p.redrawSeen[c.ID()] = struct{}{}
	p.redraw = append(p.redraw, c)
	return p
}

// HasWork reports whether any effect is queued.
func (p *PendingSync) HasWork() bool {
	return p.focusChange || p.cursorJump || len(p.redraw) > 0
}

// Drain returns the accumulated effects and clears the queue. Draining an
// empty queue returns an empty batch.
func (p *PendingSync) Drain() SyncEffects {
	effects := SyncEffects{
		FocusChange: p.focusChange,
		CursorJump:  p.cursorJump,
		Redraw:      p.redraw,
	}
	p.focusChange = false
	p.cursorJump = false
	p.redraw = nil
	p.redrawSeen = make(map[uuid.UUID]struct{})
	return effects
}

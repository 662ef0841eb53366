package container

import (
	"github.com/vantm/glazewm/internal/types"
)

// Ancestors returns the chain of parents from the container's parent up to
// the root, nearest first.
func Ancestors(c Container) []Container {
	var ancestors []Container
	for parent := c.Parent(); parent != nil; parent = parent.Parent() {
		ancestors = append(ancestors, parent)
	}
	return ancestors
}

// SelfAndAncestors returns the container followed by its ancestors,
// nearest first.
func SelfAndAncestors(c Container) []Container {
	return append([]Container{c}, Ancestors(c)...)
}

// Index returns the container's position within its parent's children, or
// -1 if it has no parent.
func Index(c Container) int {
	parent := c.Parent()
	if parent == nil {
		return -1
	}
	for i, child := range parent.Children() {
		if child.ID() == c.ID() {
			return i
		}
	}
	return -1
}

// SelfAndSiblings returns the parent's full child list, or just the
// container itself when it has no parent.
func SelfAndSiblings(c Container) []Container {
	parent := c.Parent()
	if parent == nil {
		return []Container{c}
	}
	return parent.Children()
}

// Siblings returns the parent's children excluding the container itself.
func Siblings(c Container) []Container {
	var siblings []Container
	for _, sibling := range SelfAndSiblings(c) {
		if sibling.ID() != c.ID() {
			siblings = append(siblings, sibling)
		}
	}
	return siblings
}

// PrevSiblings returns the siblings preceding the container in child
// order, nearest first.
func PrevSiblings(c Container) []Container {
	idx := Index(c)
	if idx <= 0 {
		return nil
	}
	children := c.Parent().Children()
	prev := make([]Container, 0, idx)
	for i := idx - 1; i >= 0; i-- {
		prev = append(prev, children[i])
	}
	return prev
}

// NextSiblings returns the siblings following the container in child
// order, nearest first.
func NextSiblings(c Container) []Container {
	idx := Index(c)
	if idx < 0 {
		return nil
	}
	children := c.Parent().Children()
	return children[idx+1:]
}

// Descendants returns all containers below c in depth-first preorder.
func Descendants(c Container) []Container {
	var descendants []Container
	var walk func(Container)
	walk = func(node Container) {
		for _, child := range node.Children() {
			descendants = append(descendants, child)
			walk(child)
		}
	}
	walk(c)
	return descendants
}

// SelfAndDescendants returns c followed by all its descendants in
// depth-first preorder.
func SelfAndDescendants(c Container) []Container {
	return append([]Container{c}, Descendants(c)...)
}

// TilingChildren returns the children that participate in tiling order.
func TilingChildren(c Container) []TilingContainer {
	var tiling []TilingContainer
	for _, child := range c.Children() {
		if tc, err := AsTilingContainer(child); err == nil {
			tiling = append(tiling, tc)
		}
	}
	return tiling
}

// TilingSiblings returns the container's siblings that participate in
// tiling order.
func TilingSiblings(c Container) []TilingContainer {
	var tiling []TilingContainer
	for _, sibling := range Siblings(c) {
		if tc, err := AsTilingContainer(sibling); err == nil {
			tiling = append(tiling, tc)
		}
	}
	return tiling
}

// MonitorOf resolves the monitor a container belongs to, or nil.
func MonitorOf(c Container) *Monitor {
	for _, node := range SelfAndAncestors(c) {
		if m, ok := node.(*Monitor); ok {
			return m
		}
	}
	return nil
}

// WorkspaceOf resolves the workspace a container belongs to, or nil.
func WorkspaceOf(c Container) *Workspace {
	for _, node := range SelfAndAncestors(c) {
		if ws, ok := node.(*Workspace); ok {
			return ws
		}
	}
	return nil
}

// LastFocusedChild returns the child most recently recorded as focused,
// falling back to the first child, or nil if the container is empty.
func LastFocusedChild(c Container) Container {
	children := c.Children()
	if len(children) == 0 {
		return nil
	}
	for _, child := range children {
		if child.ID() == c.base().lastFocused {
			return child
		}
	}
	return children[0]
}

// LastFocusedDescendant follows the focus chain downward and returns the
// deepest container it reaches, or nil if c has no children.
func LastFocusedDescendant(c Container) Container {
	current := LastFocusedChild(c)
	if current == nil {
		return nil
	}
	for {
		next := LastFocusedChild(current)
		if next == nil {
			return current
		}
		current = next
	}
}

// SetFocusedDescendant records target as the focused descendant along its
// whole ancestor chain, so that each ancestor's focus order leads back to
// it.
func SetFocusedDescendant(target Container) {
	current := target
	for parent := current.Parent(); parent != nil; parent = current.Parent() {
		parent.base().lastFocused = current.ID()
		current = parent
	}
}

// DescendantInDirection descends from a direction container toward the
// given edge and returns the tiling leaf found there: descending Left
// lands on the left-most descendant. Off-axis levels follow the focus
// order. Returns nil when the subtree has no tiling children.
func DescendantInDirection(origin DirectionContainer, direction types.Direction) Container {
	current := Container(origin)
	for {
		dc, err := AsDirectionContainer(current)
		if err != nil {
			// Reached a tiling window.
			return current
		}

		tiling := TilingChildren(dc)
		if len(tiling) == 0 {
			return nil
		}

		if dc.TilingDirection() == direction.Axis() {
			if direction == types.DirRight || direction == types.DirDown {
				current = tiling[len(tiling)-1]
			} else {
				current = tiling[0]
			}
		} else {
			current = lastFocusedTiling(dc, tiling)
		}
	}
}

// lastFocusedTiling picks the focus-order preferred tiling child.
func lastFocusedTiling(c Container, tiling []TilingContainer) Container {
	preferred := LastFocusedChild(c)
	if preferred != nil {
		for _, tc := range tiling {
			if tc.ID() == preferred.ID() {
				return tc
			}
		}
	}
	return tiling[0]
}
